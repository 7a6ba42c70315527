package anim

import (
	"testing"
	"time"
)

type fakeRegistry struct {
	elements []Element
}

func (r *fakeRegistry) AnimatedElements() []Element {
	return r.elements
}

func TestRunnerStartStop(t *testing.T) {
	store := newSequenceStore("sprites/walk_%s.png", 2, 4)
	a, b := walkElement(), walkElement()
	reg := &fakeRegistry{elements: []Element{a, b}}
	r := NewRunner(reg, store)

	r.StartAll()
	if r.Running() != 2 {
		t.Fatalf("expected 2 drivers, got %d", r.Running())
	}

	// Starting twice must not duplicate drivers.
	r.StartAll()
	if r.Running() != 2 {
		t.Fatalf("expected StartAll to be idempotent, got %d drivers", r.Running())
	}

	now := time.Unix(0, 0)
	r.Update(now)           // settle
	r.Update(now.Add(tick)) // first advance
	if len(a.writes) != 1 || len(b.writes) != 1 {
		t.Fatalf("expected one render per element, got %d and %d", len(a.writes), len(b.writes))
	}

	r.StopAll()
	if r.Running() != 0 {
		t.Fatalf("expected no drivers after StopAll, got %d", r.Running())
	}
	r.Update(now.Add(time.Second))
	if len(a.writes) != 1 || len(b.writes) != 1 {
		t.Fatalf("stopped runner must not render")
	}
}

func TestRunnerRestartStartsOver(t *testing.T) {
	store := newSequenceStore("sprites/walk_%s.png", 2, 4)
	el := walkElement()
	reg := &fakeRegistry{elements: []Element{el}}
	r := NewRunner(reg, store)

	r.StartAll()
	now := time.Unix(0, 0)
	r.Update(now)                             // settle
	r.Update(now.Add(tick))                   // frame 1
	r.Update(now.Add(tick + 100*time.Millisecond)) // frame 2
	if last := el.writes[len(el.writes)-1]; last != frameImage(store, 2) {
		t.Fatalf("expected to reach frame 2 before restart")
	}

	r.Restart()
	if r.Running() != 1 {
		t.Fatalf("expected 1 driver after restart, got %d", r.Running())
	}

	// The fresh driver settles for a tick and then starts the cycle
	// over from frame 1.
	writes := len(el.writes)
	now = now.Add(time.Second)
	r.Update(now)
	if len(el.writes) != writes {
		t.Fatalf("expected no render on the settle tick after restart")
	}
	r.Update(now.Add(tick))
	if last := el.writes[len(el.writes)-1]; last != frameImage(store, 1) {
		t.Fatalf("expected restarted driver to render frame 1")
	}
}

func TestRunnerRestartPicksUpNewElements(t *testing.T) {
	store := newSequenceStore("sprites/walk_%s.png", 2, 4)
	reg := &fakeRegistry{elements: []Element{walkElement()}}
	r := NewRunner(reg, store)

	r.StartAll()
	if r.Running() != 1 {
		t.Fatalf("expected 1 driver, got %d", r.Running())
	}

	reg.elements = append(reg.elements, walkElement())
	r.Restart()
	if r.Running() != 2 {
		t.Fatalf("expected restart to re-query the registry, got %d drivers", r.Running())
	}
}
