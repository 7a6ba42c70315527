package anim

import "github.com/hajimehoshi/ebiten/v2"

// WriteBackground swaps only the image slot of the element's
// background record, leaving color, stretch and every other field as
// they were. Returns false when the element is gone; the caller
// treats that as a no-op, not an error.
func WriteBackground(el Element, img *ebiten.Image) bool {
	bg, ok := el.Background()
	if !ok {
		return false
	}
	bg.Image = img
	return el.SetBackground(bg)
}
