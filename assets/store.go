package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrNotFound = errors.New("assets: not found")

// FSStore resolves asset paths to decoded images, preferring an
// on-disk copy under assets/ so sprites can be swapped without
// rebuilding. Decoded images are cached by cleaned path; animation
// drivers probe the same paths once per cache build, but several
// drivers may share a sequence.
type FSStore struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Resolve loads the image at the assets-relative path. A missing file
// reports ErrNotFound, which ends a frame sequence.
func (s *FSStore) Resolve(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	if img, ok := s.cache[clean]; ok {
		return img, nil
	}

	data, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean)))
	if err != nil {
		data, err = fs.ReadFile(s.fsys, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: resolve %s: %w", path, ErrNotFound)
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	s.cache[clean] = img
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
