package index

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/pkg/errors"
)

// ReadTrack parses the audio stream's tag container into a Track keyed by
// filename. Missing tags fall back to the filename and "unknown" markers so
// every indexed track is searchable.
func ReadTrack(filename string, r io.ReadSeeker) (*Track, error) {
	m, err := tag.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrapf(err, "index: parse tags of %s", filename)
	}

	track, _ := m.Track()
	disc, _ := m.Disc()

	artist := m.Artist()
	if albumArtist := m.AlbumArtist(); albumArtist != "" {
		artist = albumArtist
	}
	if artist == "" {
		artist = "unknown artist"
	}

	title := m.Title()
	if title == "" {
		title = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	album := m.Album()
	if album == "" {
		album = "unknown album"
	}

	genre := m.Genre()
	if genre == "" {
		genre = "unknown genre"
	}

	return &Track{
		Filename:    filename,
		Title:       title,
		Artist:      artist,
		Album:       album,
		Genre:       genre,
		TrackNumber: track,
		DiscNumber:  disc,
	}, nil
}
