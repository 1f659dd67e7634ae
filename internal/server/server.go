// Package server is the HTTP face of the catalog: routing, body parsing,
// and status mapping. All behavior lives in the catalog service.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"smj-server/internal/catalog"
	"smj-server/internal/logging"
)

// New builds the fiber app with every route wired to the catalog service.
func New(svc *catalog.Service, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             512 * 1024 * 1024,
	})
	app.Use(logging.RequestLogger(log))

	auth := NewAuthHandler(svc)
	media := NewMediaHandler(svc)
	lists := NewListHandler(svc)
	bookmarks := NewBookmarkHandler(svc)
	search := NewSearchHandler(svc)

	api := app.Group("/api")

	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	api.Get("/search", search.Tracks)

	api.Get("/lists", lists.GetAll)
	api.Post("/lists", lists.Create)
	api.Delete("/lists/:list", lists.Delete)
	api.Get("/list/:list", lists.Items)
	api.Post("/list/:list/:filename", lists.AddItem)
	api.Delete("/list/:list/:filename", lists.RemoveItem)

	api.Get("/bookmarks", bookmarks.GetAll)
	api.Post("/bookmarks", bookmarks.Add)
	api.Delete("/bookmarks/:mediaType/:filename", bookmarks.Remove)

	// Category routes go last: the static routes above must win.
	api.Get("/:mediaType", media.List)
	api.Post("/:mediaType/upload", media.Upload)
	api.Get("/:mediaType/thumbnail/:filename", media.Thumbnail)
	api.Get("/:mediaType/:filename", media.Fetch)
	api.Delete("/:mediaType/:filename", media.Delete)

	return app
}
