package anim

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ZeroPad renders i in decimal, left-padded with zeros to at least
// width characters. Values wider than width are not truncated.
func ZeroPad(i, width int) string {
	return fmt.Sprintf("%0*d", width, i)
}

// ResolveFrames probes the template against the store for indices
// 0, 1, 2, ... with the first {n} replaced by the padded index, and
// returns the images for every consecutive hit starting at 0. The
// first miss ends the sequence, so a miss at index 0 yields an empty
// slice. Runs to completion without yielding; content sequences are
// expected to be short.
func ResolveFrames(store Store, template string, digits int) []*ebiten.Image {
	var frames []*ebiten.Image
	for i := 0; ; i++ {
		path := strings.Replace(template, Placeholder, ZeroPad(i, digits), 1)
		img, err := store.Resolve(path)
		if err != nil {
			return frames
		}
		frames = append(frames, img)
	}
}
