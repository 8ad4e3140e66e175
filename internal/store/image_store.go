package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trendline/internal/domain"
)

const imageExt = ".png"

// ImageStore writes PNG files into one directory.
type ImageStore struct {
	dir string
}

// NewImageStore returns a store rooted at dir. An empty dir means the
// current working directory.
func NewImageStore(dir string) *ImageStore {
	if dir == "" {
		dir = "."
	}
	return &ImageStore{dir: dir}
}

var _ domain.ImageStore = (*ImageStore)(nil)

// Path returns the absolute path an image called name is stored at.
func (s *ImageStore) Path(name string) (string, error) {
	return filepath.Abs(filepath.Join(s.dir, FileName(name)))
}

// SaveImage writes png as <name>.png and returns its absolute path.
func (s *ImageStore) SaveImage(name string, png []byte) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := writeFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", path, err)
	}
	return path, nil
}

// OpenImage reads an image previously returned by SaveImage.
func (s *ImageStore) OpenImage(path string) ([]byte, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrImageNotFound, path)
	}
	return b, nil
}

// FileName maps a country name to its image file name. Path separators are
// replaced so a name can never leave the output directory.
func FileName(name string) string {
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		name = "_" + name
	}
	return name + imageExt
}
