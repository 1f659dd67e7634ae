// Package index maintains a searchable metadata index over the music
// category. It is fed by uploads and trimmed by deletions; backends are
// interchangeable and selected at startup.
package index

import "github.com/pkg/errors"

// Track is one indexed music asset's metadata. Filename is the asset-store
// key and doubles as the index document ID.
type Track struct {
	Filename    string `json:"filename"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	Genre       string `json:"genre"`
	TrackNumber int    `json:"tracknumber"`
	DiscNumber  int    `json:"discnumber"`
}

// Datastore is the interface that any index backend must implement.
type Datastore interface {
	// Initialize prepares the backend (create tables, open index).
	Initialize(path string) error

	// Close cleans up resources.
	Close() error

	// IndexBatch adds or updates a batch of tracks, keyed by filename.
	IndexBatch(batch []*Track) error

	// Remove drops the track with the given filename; absent is a no-op.
	Remove(filename string) error

	// Count returns the total number of indexed tracks.
	Count() (int, error)

	// Search returns tracks matching the query string. An empty query
	// returns all tracks, ordered by artist, album, disc, track.
	Search(query string) ([]Track, error)

	// Clear removes all data from the index.
	Clear() error
}

// Backend names accepted by New.
const (
	BackendSQLite = "sqlite"
	BackendBleve  = "bleve"
)

// New returns an uninitialized backend by name.
func New(backend string) (Datastore, error) {
	switch backend {
	case BackendSQLite:
		return &SQLiteStore{}, nil
	case BackendBleve:
		return &BleveStore{}, nil
	default:
		return nil, errors.Errorf("index: unknown backend %q", backend)
	}
}
