package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestBookmarks(t *testing.T) *Bookmarks {
	t.Helper()
	b, err := OpenBookmarks(filepath.Join(t.TempDir(), "bookmarks.csv"))
	require.NoError(t, err)
	return b
}

func TestBookmarkSetSemantics(t *testing.T) {
	b := openTestBookmarks(t)

	require.NoError(t, b.Add("music", "song.mp3"))
	assert.ErrorIs(t, b.Add("music", "song.mp3"), ErrAlreadyBookmarked)

	// Same filename under another category is a different bookmark.
	require.NoError(t, b.Add("videos", "song.mp3"))

	all, err := b.All()
	require.NoError(t, err)
	assert.Equal(t, []Bookmark{
		{MediaType: "music", Filename: "song.mp3"},
		{MediaType: "videos", Filename: "song.mp3"},
	}, all)
}

func TestBookmarkAddRequiresBothFields(t *testing.T) {
	b := openTestBookmarks(t)

	assert.ErrorIs(t, b.Add("", "song.mp3"), ErrMissingFields)
	assert.ErrorIs(t, b.Add("music", ""), ErrMissingFields)
}

func TestBookmarkRemove(t *testing.T) {
	b := openTestBookmarks(t)
	require.NoError(t, b.Add("music", "song.mp3"))
	require.NoError(t, b.Add("photos", "pic.png"))

	require.NoError(t, b.Remove("music", "song.mp3"))
	// Removing again is a no-op.
	require.NoError(t, b.Remove("music", "song.mp3"))

	all, err := b.All()
	require.NoError(t, err)
	assert.Equal(t, []Bookmark{{MediaType: "photos", Filename: "pic.png"}}, all)
}
