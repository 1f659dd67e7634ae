package assets

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func saveString(t *testing.T, s *Store, category, name, body string) string {
	t.Helper()
	stored, err := s.Save(category, name, strings.NewReader(body))
	require.NoError(t, err)
	return stored
}

func TestSaveSanitizesTraversal(t *testing.T) {
	s := newTestStore(t)

	stored, err := s.Save(Music, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", stored)

	ok, err := s.Exists(Music, "passwd")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSaveRejectsBadInput(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save("documents", "a.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrBadCategory)

	_, err = s.Save(Music, "..", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrBadFilename)
}

func TestSaveOverwritesSilently(t *testing.T) {
	s := newTestStore(t)
	saveString(t, s, Music, "song.mp3", "first")
	saveString(t, s, Music, "song.mp3", "second")

	f, err := s.Open(Music, "song.mp3")
	require.NoError(t, err)
	defer f.Close()
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "second", string(body))
}

func TestListExcludesThumbnailsOutsidePhotos(t *testing.T) {
	s := newTestStore(t)
	saveString(t, s, Music, "song.mp3", "audio")
	saveString(t, s, Music, ThumbnailName("song.mp3"), "img")
	saveString(t, s, Videos, "clip.mp4", "video")
	saveString(t, s, Videos, "poster.JPG", "img")
	saveString(t, s, Photos, "holiday.jpg", "img")
	saveString(t, s, Photos, "scan.png", "img")

	music, err := s.List(Music)
	require.NoError(t, err)
	assert.Equal(t, []string{"song.mp3"}, music)

	videos, err := s.List(Videos)
	require.NoError(t, err)
	assert.Equal(t, []string{"clip.mp4"}, videos)

	photos, err := s.List(Photos)
	require.NoError(t, err)
	assert.Equal(t, []string{"holiday.jpg", "scan.png"}, photos)
}

func TestListOrderedByName(t *testing.T) {
	s := newTestStore(t)
	saveString(t, s, Photos, "zebra.png", "img")
	saveString(t, s, Photos, "apple.png", "img")
	saveString(t, s, Photos, "mango.png", "img")

	names, err := s.List(Photos)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple.png", "mango.png", "zebra.png"}, names)
}

func TestOpenMissingAsset(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Open(Music, "nope.mp3")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.OpenThumbnail(Music, "nope.mp3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenThumbnail(t *testing.T) {
	s := newTestStore(t)
	saveString(t, s, Music, "song.mp3", "audio")
	saveString(t, s, Music, ThumbnailName("song.mp3"), "cover bytes")

	f, err := s.OpenThumbnail(Music, "song.mp3")
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, f)
	require.NoError(t, err)
	assert.Equal(t, "cover bytes", buf.String())
}

func TestDeleteCascadesToThumbnail(t *testing.T) {
	s := newTestStore(t)
	saveString(t, s, Music, "song.mp3", "audio")
	saveString(t, s, Music, ThumbnailName("song.mp3"), "img")

	require.NoError(t, s.Delete(Music, "song.mp3"))

	ok, err := s.Exists(Music, "song.mp3")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = s.Exists(Music, ThumbnailName("song.mp3"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteWithoutThumbnailSucceeds(t *testing.T) {
	s := newTestStore(t)
	saveString(t, s, Music, "song.mp3", "audio")

	assert.NoError(t, s.Delete(Music, "song.mp3"))
	// A second delete is a no-op.
	assert.NoError(t, s.Delete(Music, "song.mp3"))
}
