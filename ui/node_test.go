package ui

import (
	"testing"

	"github.com/milk9111/flipbook/style"
)

const testSheet = `
classes:
  banner:
    props:
      spritepath_template: "sprites/walk_{n}.png"
      spritepath_filenamedigits: 2
      enabled: 1
  plain:
    background:
      color: "#101010"
`

func loadTestSheet(t *testing.T) *style.Sheet {
	t.Helper()
	sheet, err := style.ParseSheet([]byte(testSheet))
	if err != nil {
		t.Fatalf("parse sheet: %v", err)
	}
	return sheet
}

func TestNodeDetachSemantics(t *testing.T) {
	sheet := loadTestSheet(t)
	n := NewNode(nil, sheet.Computed("banner"), style.Background{Stretch: true}, "animated", "banner")

	if v, ok := n.StringProp("spritepath_template"); !ok || v != "sprites/walk_{n}.png" {
		t.Fatalf("unexpected template %q ok=%v", v, ok)
	}
	if v, ok := n.IntProp("enabled"); !ok || v != 1 {
		t.Fatalf("unexpected enabled %d ok=%v", v, ok)
	}
	if bg, ok := n.Background(); !ok || !bg.Stretch {
		t.Fatalf("expected background before detach, got %+v ok=%v", bg, ok)
	}
	if !n.SetBackground(style.Background{}) {
		t.Fatalf("expected write before detach to land")
	}

	n.Detach()

	if _, ok := n.StringProp("spritepath_template"); ok {
		t.Fatalf("detached node must report string properties absent")
	}
	if _, ok := n.IntProp("enabled"); ok {
		t.Fatalf("detached node must report int properties absent")
	}
	if _, ok := n.Background(); ok {
		t.Fatalf("detached node must report no background")
	}
	if n.SetBackground(style.Background{Stretch: true}) {
		t.Fatalf("write to a detached node must be dropped")
	}
}

func TestTreeQueryAndSelect(t *testing.T) {
	sheet := loadTestSheet(t)
	tree := NewTree()

	a := NewNode(nil, sheet.Computed("banner"), style.Background{}, "animated", "banner")
	b := NewNode(nil, sheet.Computed("banner"), style.Background{}, "animated")
	c := NewNode(nil, sheet.Computed("plain"), style.Background{}, "plain")
	tree.Add(a)
	tree.Add(b)
	tree.Add(c)
	tree.Add(nil) // ignored

	if got := tree.Query("animated"); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("unexpected query result %v", got)
	}
	if got := tree.Query("plain"); len(got) != 1 || got[0] != c {
		t.Fatalf("unexpected query result %v", got)
	}

	sel := tree.Select("animated")
	if got := sel.AnimatedElements(); len(got) != 2 {
		t.Fatalf("expected 2 animated elements, got %d", len(got))
	}

	// Detached nodes drop out of queries, and a later selection sees
	// the smaller set.
	b.Detach()
	if got := tree.Query("animated"); len(got) != 1 || got[0] != a {
		t.Fatalf("detached node must drop out of queries, got %v", got)
	}
	if got := sel.AnimatedElements(); len(got) != 1 {
		t.Fatalf("expected 1 animated element after detach, got %d", len(got))
	}

	tree.DetachAll()
	if got := tree.Query("animated"); len(got) != 0 {
		t.Fatalf("expected empty query after DetachAll, got %v", got)
	}
}
