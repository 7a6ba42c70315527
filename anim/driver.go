package anim

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFPS is used when an element declares no fps, or declares a
// non-positive one.
const DefaultFPS = 60

type driverState int

const (
	// stateSettle gives the host one tick to finish attaching styles
	// before the driver does any work.
	stateSettle driverState = iota
	// stateProbe builds the frame cache, polling every tick until the
	// path properties appear and index 0 resolves.
	stateProbe
	// stateGate checks the enabled flag; disabled elements idle on
	// frame 0.
	stateGate
	// stateAdvance steps the frame, renders it and waits out the
	// frame duration.
	stateAdvance
)

// Driver animates one element's background. It is a cooperative task:
// the host calls Step once per tick, and the driver runs until its
// next suspension point. Missing properties, an unresolvable frame 0
// and a vanished element all degrade to idle polling; the driver
// never returns an error and only stops when cancelled.
type Driver struct {
	element Element
	store   Store

	state     driverState
	frames    []*ebiten.Image
	frame     int
	wakeAt    time.Time
	cancelled bool
}

func NewDriver(el Element, store Store) *Driver {
	return &Driver{element: el, store: store}
}

// Cancel stops the driver. Observed at the next Step, never mid-step.
func (d *Driver) Cancel() {
	d.cancelled = true
}

// Frames returns the size of the frame cache, zero until the path
// properties resolve.
func (d *Driver) Frames() int {
	return len(d.frames)
}

// Frame returns the current frame index.
func (d *Driver) Frame() int {
	return d.frame
}

// Step resumes the driver and runs until it suspends again. Returning
// with no deadline set means "resume next tick"; after rendering a
// frame the driver sleeps out the frame duration in wall time.
func (d *Driver) Step(now time.Time) {
	if d.cancelled || now.Before(d.wakeAt) {
		return
	}
	for {
		switch d.state {
		case stateSettle:
			d.state = stateProbe
			return
		case stateProbe:
			if len(d.frames) == 0 {
				template, okT := d.element.StringProp(PropTemplate)
				digits, okD := d.element.IntProp(PropDigits)
				if !okT || !okD {
					// Not configured yet. Re-read next tick.
					return
				}
				d.frames = ResolveFrames(d.store, template, digits)
				if len(d.frames) == 0 {
					// Frame 0 didn't resolve. Re-probe next tick.
					return
				}
				d.frame = 0
			}
			d.state = stateGate
		case stateGate:
			if v, ok := d.element.IntProp(PropEnabled); !ok || v != 1 {
				d.frame = 0
				WriteBackground(d.element, d.frames[0])
				d.state = stateProbe
				return
			}
			d.state = stateAdvance
		case stateAdvance:
			d.frame = (d.frame + 1) % len(d.frames)
			WriteBackground(d.element, d.frames[d.frame])
			d.wakeAt = now.Add(FrameDuration(d.element))
			d.state = stateProbe
			return
		}
	}
}

// FrameDuration reads the element's fps property and converts it to a
// per-frame delay. Absent or non-positive values fall back to
// DefaultFPS.
func FrameDuration(el Element) time.Duration {
	fps, ok := el.IntProp(PropFPS)
	if !ok || fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(float64(time.Second) / float64(fps))
}
