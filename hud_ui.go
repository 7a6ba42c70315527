package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/ui"
)

// buildHUD constructs the demo widget tree, registers the style-driven
// nodes and starts one animation driver per marked node. The banner
// and the tile animate; the bottom panel only carries a static
// background color.
func (g *Game) buildHUD() error {
	g.tree = ui.NewTree()

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	banner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(480, 96),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	banner.AddChild(widget.NewText(
		widget.TextOpts.Text("flipbook demo", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	if err := g.addStyledNode(banner, "walk-banner"); err != nil {
		return err
	}

	tile := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 160),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	if err := g.addStyledNode(tile, "pulse-tile"); err != nil {
		return err
	}

	restartBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
			Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
		}),
		widget.ButtonOpts.Text("Restart", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.runner.Restart()
		}),
	)

	footer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	footer.AddChild(restartBtn)
	footer.AddChild(widget.NewText(
		widget.TextOpts.Text("Tab toggles the HUD", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	if err := g.addStyledNode(footer, "static-panel"); err != nil {
		return err
	}

	root.AddChild(banner)
	root.AddChild(tile)
	root.AddChild(footer)

	g.eui = &ebitenui.UI{Container: root}
	g.runner = anim.NewRunner(g.tree.Select(animatedMarker), g.store)
	g.runner.StartAll()
	return nil
}

// addStyledNode registers the container under its style class. Classes
// that declare a sprite path template get the animated marker so the
// runner picks them up.
func (g *Game) addStyledNode(container *widget.Container, class string) error {
	bg, err := g.sheet.Background(class)
	if err != nil {
		return err
	}

	styles := g.sheet.Computed(class)
	markers := []string{class}
	if _, ok := styles.GetString(anim.PropTemplate); ok {
		markers = append(markers, animatedMarker)
	}

	g.tree.Add(ui.NewNode(container, styles, bg, markers...))
	return nil
}
