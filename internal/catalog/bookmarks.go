package catalog

import (
	"smj-server/internal/recordfile"
)

// Bookmark flags a (media type, filename) pair.
type Bookmark struct {
	MediaType string `json:"media_type"`
	Filename  string `json:"filename"`
}

var bookmarkFields = []string{"media_type", "filename"}

// Bookmarks is the bookmark table; pairs are unique.
type Bookmarks struct {
	t *recordfile.Table
}

// OpenBookmarks opens the bookmark table at path, creating it when absent.
func OpenBookmarks(path string) (*Bookmarks, error) {
	t, err := recordfile.Open(path, bookmarkFields)
	if err != nil {
		return nil, err
	}
	return &Bookmarks{t: t}, nil
}

// All returns every bookmark in file order.
func (b *Bookmarks) All() ([]Bookmark, error) {
	recs, err := b.t.LoadAll()
	if err != nil {
		return nil, err
	}
	marks := make([]Bookmark, 0, len(recs))
	for _, r := range recs {
		marks = append(marks, Bookmark{MediaType: r["media_type"], Filename: r["filename"]})
	}
	return marks, nil
}

// Add bookmarks a pair. Returns ErrAlreadyBookmarked on a duplicate,
// ErrMissingFields when either half is empty.
func (b *Bookmarks) Add(mediaType, filename string) error {
	if mediaType == "" || filename == "" {
		return ErrMissingFields
	}
	rec := recordfile.Record{"media_type": mediaType, "filename": filename}
	return b.t.Insert(rec, func(recs []recordfile.Record) error {
		for _, r := range recs {
			if r["media_type"] == mediaType && r["filename"] == filename {
				return ErrAlreadyBookmarked
			}
		}
		return nil
	})
}

// Remove deletes the matching bookmark; removing an absent pair is a no-op.
func (b *Bookmarks) Remove(mediaType, filename string) error {
	return b.t.Filter(func(r recordfile.Record) bool {
		return !(r["media_type"] == mediaType && r["filename"] == filename)
	})
}
