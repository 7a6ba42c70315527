package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/assets"
	"github.com/milk9111/flipbook/script"
	"github.com/milk9111/flipbook/style"
	"github.com/milk9111/flipbook/ui"
)

const (
	baseWidth  = 960
	baseHeight = 540
)

// animatedMarker tags the nodes the runner should drive.
const animatedMarker = "animated"

type Game struct {
	ticks int
	debug bool

	sheetName string
	sheet     *style.Sheet
	store     *assets.FSStore

	tree   *ui.Tree
	eui    *ebitenui.UI
	runner *anim.Runner

	hook    *script.Hook
	watcher *style.Watcher

	hudVisible bool
}

func NewGame(sheetName string, debug bool) (*Game, error) {
	sheet, err := style.LoadSheet(stylesFS, sheetName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:     debug,
		sheetName: sheetName,
		sheet:     sheet,
		store:     assets.NewFSStore(assets.FS),
	}

	g.loadHook()

	if watcher, err := style.NewWatcher("styles"); err != nil {
		log.Printf("style watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	if err := g.buildHUD(); err != nil {
		return nil, err
	}
	g.hudVisible = true

	return g, nil
}

func (g *Game) loadHook() {
	src, err := loadStyleAsset("styles/hud.tengo")
	if err != nil {
		g.hook = nil
		return
	}
	hook, err := script.Compile(src)
	if err != nil {
		log.Printf("style hook disabled: %v", err)
		g.hook = nil
		return
	}
	g.hook = hook
}

func (g *Game) Update() error {
	g.ticks++

	g.pollWatcher()
	g.handleInput()
	g.applyScriptOverrides()

	g.runner.Update(time.Now())
	if g.eui != nil {
		g.eui.Update()
	}

	return nil
}

func (g *Game) handleInput() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return
	}

	if g.hudVisible {
		// The tree is discarded, not unwound: drivers are cancelled
		// and every node reports absent from here on.
		g.runner.StopAll()
		g.tree.DetachAll()
		g.eui = nil
		g.hudVisible = false
		return
	}

	if err := g.buildHUD(); err != nil {
		log.Printf("rebuild hud: %v", err)
		return
	}
	g.hudVisible = true
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("style change: %s", name)
			if err := g.reload(); err != nil {
				log.Printf("style reload: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("style watcher: %v", err)
		default:
			return
		}
	}
}

// reload re-reads the sheet and hook and rebuilds the HUD so every
// node picks up fresh computed styles and every driver starts over
// with an empty frame cache.
func (g *Game) reload() error {
	sheet, err := style.LoadSheet(stylesFS, g.sheetName)
	if err != nil {
		return err
	}
	g.sheet = sheet
	g.loadHook()

	if !g.hudVisible {
		return nil
	}
	g.runner.StopAll()
	g.tree.DetachAll()
	return g.buildHUD()
}

func (g *Game) applyScriptOverrides() {
	if g.hook == nil || g.tree == nil {
		return
	}

	overrides, err := g.hook.Overrides(g.ticks)
	if err != nil {
		log.Printf("style hook disabled: %v", err)
		g.hook = nil
		return
	}

	for _, n := range g.tree.Nodes() {
		n.Style().ClearOverrides()
	}
	for class, props := range overrides {
		for _, n := range g.tree.Query(class) {
			for name, value := range props {
				n.Style().SetOverride(name, value)
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 32, A: 255})

	if g.tree != nil {
		g.tree.DrawBackgrounds(screen)
	}
	if g.eui != nil {
		g.eui.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.0f    drivers: %d", ebiten.ActualTPS(), g.runner.Running()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
