package catalog

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"smj-server/internal/assets"
	"smj-server/internal/index"
	"smj-server/internal/thumbnail"
)

// Service is the catalog's single handle: the three record tables, the
// asset store, and the music side effects (thumbnail extraction and
// metadata indexing). It is built once at startup and shared by request
// handlers.
type Service struct {
	Users     *Users
	Lists     *Lists
	Bookmarks *Bookmarks
	Assets    *assets.Store

	extractor *thumbnail.Extractor
	idx       index.Datastore
	log       zerolog.Logger
	sideJobs  sync.WaitGroup
}

// Open creates the record tables under dataDir (users.csv, lists.csv,
// bookmarks.csv) and wires them to the given asset store and index backend.
func Open(dataDir string, store *assets.Store, idx index.Datastore, log zerolog.Logger) (*Service, error) {
	users, err := OpenUsers(filepath.Join(dataDir, "users.csv"))
	if err != nil {
		return nil, err
	}
	lists, err := OpenLists(filepath.Join(dataDir, "lists.csv"))
	if err != nil {
		return nil, err
	}
	bookmarks, err := OpenBookmarks(filepath.Join(dataDir, "bookmarks.csv"))
	if err != nil {
		return nil, err
	}

	return &Service{
		Users:     users,
		Lists:     lists,
		Bookmarks: bookmarks,
		Assets:    store,
		extractor: thumbnail.NewExtractor(store),
		idx:       idx,
		log:       log,
	}, nil
}

// ListMedia returns the category's asset names under the per-category
// listing policy.
func (s *Service) ListMedia(category string) ([]string, error) {
	return s.Assets.List(category)
}

// UploadMedia stores the asset and returns the name it was stored under.
// For music, thumbnail extraction and metadata indexing run detached; their
// failures are logged and never affect the upload's result.
func (s *Service) UploadMedia(category, filename string, r io.Reader) (string, error) {
	stored, err := s.Assets.Save(category, filename, r)
	if err != nil {
		return "", err
	}

	if category == assets.Music {
		s.sideJobs.Add(1)
		go func() {
			defer s.sideJobs.Done()
			s.processMusic(stored)
		}()
	}
	return stored, nil
}

// FetchMedia returns a reader over the asset's bytes.
func (s *Service) FetchMedia(category, filename string) (io.ReadSeekCloser, error) {
	return s.Assets.Open(category, filename)
}

// FetchThumbnail returns a reader over the asset's derived thumbnail.
func (s *Service) FetchThumbnail(category, filename string) (io.ReadSeekCloser, error) {
	return s.Assets.OpenThumbnail(category, filename)
}

// DeleteMedia removes the asset (and, for music, its thumbnail and index
// entry). A missing asset is not an error.
func (s *Service) DeleteMedia(category, filename string) error {
	if err := s.Assets.Delete(category, filename); err != nil {
		return err
	}
	if category == assets.Music {
		// Let in-flight post-upload work drain first, so a just-uploaded
		// track cannot be re-indexed after its entry is removed.
		s.sideJobs.Wait()
		if err := s.idx.Remove(filename); err != nil {
			s.log.Warn().Err(err).Str("filename", filename).Msg("index removal failed")
		}
	}
	return nil
}

// SearchTracks queries the music metadata index.
func (s *Service) SearchTracks(query string) ([]index.Track, error) {
	return s.idx.Search(query)
}

// Flush blocks until all detached side effects have finished. Used on
// shutdown and by tests.
func (s *Service) Flush() {
	s.sideJobs.Wait()
}

// processMusic runs the best-effort post-upload work: cover art, then
// metadata indexing.
func (s *Service) processMusic(filename string) {
	if err := s.extractor.Extract(assets.Music, filename); err != nil {
		s.log.Warn().Err(err).Str("filename", filename).Msg("thumbnail extraction failed")
	}

	f, err := s.Assets.Open(assets.Music, filename)
	if err != nil {
		s.log.Warn().Err(err).Str("filename", filename).Msg("index scan failed")
		return
	}
	defer f.Close()

	track, err := index.ReadTrack(filename, f)
	if err != nil {
		s.log.Warn().Err(err).Str("filename", filename).Msg("index scan failed")
		return
	}
	if err := s.idx.IndexBatch([]*index.Track{track}); err != nil {
		s.log.Warn().Err(err).Str("filename", filename).Msg("indexing failed")
	}
}
