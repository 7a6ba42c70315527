package ui

import (
	"slices"
	"sync/atomic"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/style"
)

// Node binds an ebitenui container to its computed style and the
// background record the draw pass renders behind it. A Node outlives
// nothing: once the host detaches it, every read reports absent and
// every write is dropped, so a driver still holding the node just
// idles.
type Node struct {
	markers   []string
	container *widget.Container

	styles   *style.Computed
	bg       style.Background
	detached atomic.Bool
}

var _ anim.Element = (*Node)(nil)

func NewNode(container *widget.Container, styles *style.Computed, bg style.Background, markers ...string) *Node {
	return &Node{
		markers:   slices.Clone(markers),
		container: container,
		styles:    styles,
		bg:        bg,
	}
}

func (n *Node) Container() *widget.Container {
	return n.container
}

func (n *Node) HasMarker(marker string) bool {
	return slices.Contains(n.markers, marker)
}

// Style exposes the computed style for host-side overrides.
func (n *Node) Style() *style.Computed {
	return n.styles
}

// Detach marks the node as gone. Safe to call from any goroutine.
func (n *Node) Detach() {
	n.detached.Store(true)
}

func (n *Node) Detached() bool {
	return n.detached.Load()
}

func (n *Node) StringProp(name string) (string, bool) {
	if n.detached.Load() {
		return "", false
	}
	return n.styles.GetString(name)
}

func (n *Node) IntProp(name string) (int, bool) {
	if n.detached.Load() {
		return 0, false
	}
	return n.styles.GetInt(name)
}

func (n *Node) Background() (style.Background, bool) {
	if n.detached.Load() {
		return style.Background{}, false
	}
	return n.bg, true
}

func (n *Node) SetBackground(bg style.Background) bool {
	if n.detached.Load() {
		return false
	}
	n.bg = bg
	return true
}
