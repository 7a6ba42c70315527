package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawBackgrounds renders each node's background into its container's
// laid-out rect. Call after the ebitenui layout pass and before the
// ebitenui draw so widget content sits on top.
func (t *Tree) DrawBackgrounds(screen *ebiten.Image) {
	for _, n := range t.nodes {
		if n.Detached() {
			continue
		}
		rect := n.container.GetWidget().Rect
		if rect.Empty() {
			continue
		}

		bg := n.bg
		if bg.Color != nil {
			screen.SubImage(rect).(*ebiten.Image).Fill(bg.Color)
		}
		if bg.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		if bg.Stretch {
			b := bg.Image.Bounds()
			if b.Dx() > 0 && b.Dy() > 0 {
				op.GeoM.Scale(
					float64(rect.Dx())/float64(b.Dx()),
					float64(rect.Dy())/float64(b.Dy()),
				)
			}
		}
		op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
		if bg.Alpha > 0 && bg.Alpha < 1 {
			op.ColorScale.ScaleAlpha(bg.Alpha)
		}
		screen.DrawImage(bg.Image, op)
	}
}
