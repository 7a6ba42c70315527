package style

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

// Sheet is a parsed style sheet: named classes carrying custom
// properties and an optional declarative background block.
type Sheet struct {
	Classes map[string]Class `yaml:"classes"`
}

type Class struct {
	Props      map[string]any `yaml:"props"`
	Background *BackgroundDef `yaml:"background"`
}

type BackgroundDef struct {
	Color   string  `yaml:"color"`
	Stretch bool    `yaml:"stretch"`
	Alpha   float32 `yaml:"alpha"`
}

func ParseSheet(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("style: unmarshal sheet: %w", err)
	}
	return &s, nil
}

// LoadSheet reads a sheet by fs-relative path, preferring an on-disk
// copy so sheets can be edited without rebuilding.
func LoadSheet(fsys fs.FS, name string) (*Sheet, error) {
	clean := filepath.ToSlash(name)
	data, err := os.ReadFile(filepath.FromSlash(clean))
	if err != nil {
		data, err = fs.ReadFile(fsys, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("style: load %s: %w", name, err)
	}
	return ParseSheet(data)
}

// Background resolves the background record declared by the class
// chain. Later classes win field by field; an unset alpha means
// opaque.
func (s *Sheet) Background(classes ...string) (Background, error) {
	var bg Background
	bg.Alpha = 1
	for _, name := range classes {
		cl, ok := s.Classes[name]
		if !ok || cl.Background == nil {
			continue
		}
		def := cl.Background
		if strings.TrimSpace(def.Color) != "" {
			c, err := csscolorparser.Parse(def.Color)
			if err != nil {
				return Background{}, fmt.Errorf("style: class %s background color: %w", name, err)
			}
			r, g, b, a := c.RGBA255()
			bg.Color = color.NRGBA{R: r, G: g, B: b, A: a}
		}
		if def.Stretch {
			bg.Stretch = true
		}
		if def.Alpha > 0 {
			bg.Alpha = def.Alpha
		}
	}
	return bg, nil
}
