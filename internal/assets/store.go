// Package assets stores media files on disk, one directory per category,
// with derived thumbnails living next to their primary asset under the
// <filename>.jpg naming convention.
package assets

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Recognized media categories.
const (
	Music  = "music"
	Videos = "videos"
	Photos = "photos"
)

// Categories lists every recognized category.
var Categories = []string{Music, Videos, Photos}

// ThumbnailSuffix is appended to a music asset's name to form its derived
// thumbnail's name.
const ThumbnailSuffix = ".jpg"

var (
	// ErrBadCategory means the category is not one of Categories.
	ErrBadCategory = errors.New("unknown media category")

	// ErrNotFound means no asset exists under the given name.
	ErrNotFound = errors.New("asset not found")

	// ErrBadFilename means the client-supplied name is empty after
	// sanitization.
	ErrBadFilename = errors.New("invalid filename")
)

// Store is a directory-per-category asset store rooted at a single upload
// directory.
type Store struct {
	root string
}

// NewStore opens (and if needed creates) the category directories under
// root.
func NewStore(root string) (*Store, error) {
	for _, c := range Categories {
		if err := os.MkdirAll(filepath.Join(root, c), 0o755); err != nil {
			return nil, errors.Wrap(err, "assets: create category dir")
		}
	}
	return &Store{root: root}, nil
}

// ValidCategory reports whether category is recognized.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ThumbnailName returns the derived thumbnail name for a primary asset.
func ThumbnailName(filename string) string {
	return filename + ThumbnailSuffix
}

// Sanitize reduces a client-supplied name to its final path component,
// which defeats directory traversal. The remaining name keeps spaces and
// original characters, like the uploads it came from.
func Sanitize(filename string) (string, error) {
	name := filepath.Base(filepath.FromSlash(filename))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", ErrBadFilename
	}
	return name, nil
}

// Save writes the asset under its sanitized name and returns that name.
// An existing asset of the same name is overwritten silently.
func (s *Store) Save(category, filename string, r io.Reader) (string, error) {
	if !ValidCategory(category) {
		return "", ErrBadCategory
	}
	name, err := Sanitize(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.root, category, name))
	if err != nil {
		return "", errors.Wrap(err, "assets: create")
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", errors.Wrap(err, "assets: write")
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", errors.Wrap(err, "assets: sync")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "assets: close")
	}
	return name, nil
}

// List returns asset names in directory order, which os.ReadDir yields
// sorted by name. For music and videos, names ending in the thumbnail
// suffix are excluded; that hides derived thumbnails at the cost of also
// hiding a .jpg uploaded as a primary asset in those categories. Photos
// list everything.
func (s *Store) List(category string) ([]string, error) {
	if !ValidCategory(category) {
		return nil, ErrBadCategory
	}
	entries, err := os.ReadDir(filepath.Join(s.root, category))
	if err != nil {
		return nil, errors.Wrap(err, "assets: read dir")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if category != Photos && strings.HasSuffix(strings.ToLower(name), ThumbnailSuffix) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Open returns a reader over the asset's bytes.
func (s *Store) Open(category, filename string) (io.ReadSeekCloser, error) {
	path, err := s.Path(category, filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "%s/%s", category, filename)
	}
	if err != nil {
		return nil, errors.Wrap(err, "assets: open")
	}
	return f, nil
}

// OpenThumbnail returns a reader over the asset's derived thumbnail.
func (s *Store) OpenThumbnail(category, filename string) (io.ReadSeekCloser, error) {
	return s.Open(category, ThumbnailName(filename))
}

// Exists reports whether the asset is present.
func (s *Store) Exists(category, filename string) (bool, error) {
	path, err := s.Path(category, filename)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "assets: stat")
	}
	return true, nil
}

// Delete removes the primary asset if present. For music it also removes
// the derived thumbnail; a missing thumbnail never fails the deletion.
func (s *Store) Delete(category, filename string) error {
	path, err := s.Path(category, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "assets: remove")
	}

	if category == Music {
		thumb := path + ThumbnailSuffix
		if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "assets: remove thumbnail")
		}
	}
	return nil
}

// Path resolves the on-disk location of an asset without checking that it
// exists.
func (s *Store) Path(category, filename string) (string, error) {
	if !ValidCategory(category) {
		return "", ErrBadCategory
	}
	name, err := Sanitize(filename)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, category, name), nil
}
