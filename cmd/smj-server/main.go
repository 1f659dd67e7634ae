package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"smj-server/internal/assets"
	"smj-server/internal/catalog"
	"smj-server/internal/config"
	"smj-server/internal/index"
	"smj-server/internal/logging"
	"smj-server/internal/server"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "path to a config file (default: ./config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		bootLog := logging.New("info")
		bootLog.Fatal().Err(err).Msg("configuration")
	}
	log := logging.New(cfg.Log.Level)

	store, err := assets.NewStore(cfg.Paths.Uploads)
	if err != nil {
		log.Fatal().Err(err).Msg("open asset store")
	}

	idx, err := index.New(cfg.Index.Backend)
	if err != nil {
		log.Fatal().Err(err).Msg("select index backend")
	}
	if err := idx.Initialize(cfg.Index.Path); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Index.Path).Msg("open index")
	}

	svc, err := catalog.Open(cfg.Paths.Data, store, idx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open catalog")
	}

	app := server.New(svc, log)
	go func() {
		if err := app.Listen(cfg.Server.Listen); err != nil {
			log.Fatal().Err(err).Msg("listen")
		}
	}()
	log.Info().
		Str("listen", cfg.Server.Listen).
		Str("index_backend", cfg.Index.Backend).
		Msg("smj-server up")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	svc.Flush()
	if err := idx.Close(); err != nil {
		log.Error().Err(err).Msg("close index")
	}
}
