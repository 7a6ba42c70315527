package main

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed styles
var stylesFS embed.FS

// loadStyleAsset reads a styles-relative file, preferring an on-disk
// copy so sheets and hook scripts can be edited while the app runs.
func loadStyleAsset(name string) ([]byte, error) {
	clean := filepath.ToSlash(name)
	if data, err := os.ReadFile(filepath.FromSlash(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(stylesFS, clean)
}
