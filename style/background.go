package style

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Background is the background slot of an element's rendered style.
// The animation writer swaps Image and leaves every other field as the
// style sheet declared it.
type Background struct {
	Image   *ebiten.Image
	Color   color.Color
	Stretch bool
	Alpha   float32
}
