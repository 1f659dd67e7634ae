//go:build !cgo

package index

import "github.com/pkg/errors"

// SQLiteStore is unavailable without cgo; the bleve backend still works.
type SQLiteStore struct{}

var errNoCgo = errors.New("index: SQLite backend requires a cgo build; select the bleve backend or rebuild with CGO_ENABLED=1")

func (s *SQLiteStore) Initialize(path string) error { return errNoCgo }

func (s *SQLiteStore) Close() error { return nil }

func (s *SQLiteStore) Clear() error { return errNoCgo }

func (s *SQLiteStore) IndexBatch(batch []*Track) error { return errNoCgo }

func (s *SQLiteStore) Remove(filename string) error { return errNoCgo }

func (s *SQLiteStore) Count() (int, error) { return 0, errNoCgo }

func (s *SQLiteStore) Search(input string) ([]Track, error) { return nil, errNoCgo }
