// Package anim cycles pre-rendered sprite frames through the
// background slot of UI elements. Each animated element gets its own
// Driver, a small state machine stepped once per host tick; a Runner
// owns the drivers for a whole UI. Which elements animate, and how,
// is declared entirely in style properties.
package anim

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/flipbook/style"
)

// Style property names read from an element's computed style.
const (
	PropTemplate = "spritepath_template"
	PropDigits   = "spritepath_filenamedigits"
	PropEnabled  = "enabled"
	PropFPS      = "fps"
)

// Placeholder is the template token replaced with the padded frame
// index when probing asset paths.
const Placeholder = "{n}"

// Store resolves an asset path to a decoded image. Any error ends the
// frame sequence at that index; the driver never retries a failed
// path within one cache build.
type Store interface {
	Resolve(path string) (*ebiten.Image, error)
}

// Element is the driver's view of an animated UI node. Property reads
// report ok=false when the property is absent or the node is gone;
// SetBackground reports whether the write landed. The driver treats
// both as "not ready" and keeps polling rather than failing.
type Element interface {
	StringProp(name string) (string, bool)
	IntProp(name string) (int, bool)
	Background() (style.Background, bool)
	SetBackground(style.Background) bool
}
