// Package thumbnail materializes embedded audio cover art as a sibling
// image asset.
package thumbnail

import (
	"bytes"

	"github.com/dhowden/tag"
	"github.com/pkg/errors"

	"smj-server/internal/assets"
)

// Extractor pulls the first embedded picture out of an audio file's tag
// container and stores it as <filename>.jpg next to the original.
type Extractor struct {
	store *assets.Store
}

// NewExtractor returns an Extractor writing through the given store.
func NewExtractor(store *assets.Store) *Extractor {
	return &Extractor{store: store}
}

// Extract parses the asset's tags and writes its cover art, if any. A file
// with no embedded picture is not an error. Callers treat any returned
// error as best-effort: it is logged, never surfaced.
func (e *Extractor) Extract(category, filename string) error {
	f, err := e.store.Open(category, filename)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return errors.Wrapf(err, "thumbnail: parse tags of %s", filename)
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil
	}

	_, err = e.store.Save(category, assets.ThumbnailName(filename), bytes.NewReader(pic.Data))
	return err
}
