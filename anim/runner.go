package anim

import "time"

// Registry enumerates the elements that currently want background
// animation. Queried on every start so a rebuilt UI tree is picked up
// by Restart.
type Registry interface {
	AnimatedElements() []Element
}

// Runner owns one driver per animated element and multiplexes them
// onto the host's update tick. Drivers share nothing; stepping order
// is registry order.
type Runner struct {
	registry Registry
	store    Store
	drivers  []*Driver
	started  bool
}

func NewRunner(registry Registry, store Store) *Runner {
	return &Runner{registry: registry, store: store}
}

// StartAll creates a driver for every element the registry reports.
// Calling it while started is a no-op; use Restart to pick up a
// changed element set.
func (r *Runner) StartAll() {
	if r.started {
		return
	}
	for _, el := range r.registry.AnimatedElements() {
		r.drivers = append(r.drivers, NewDriver(el, r.store))
	}
	r.started = true
}

// StopAll cancels and discards every driver. Frame caches die with
// their drivers; a later start rebuilds them from scratch.
func (r *Runner) StopAll() {
	for _, d := range r.drivers {
		d.Cancel()
	}
	r.drivers = nil
	r.started = false
}

func (r *Runner) Restart() {
	r.StopAll()
	r.StartAll()
}

// Update steps every driver that is due. Call once per host tick from
// the game's Update.
func (r *Runner) Update(now time.Time) {
	for _, d := range r.drivers {
		d.Step(now)
	}
}

// Running reports the number of active drivers.
func (r *Runner) Running() int {
	return len(r.drivers)
}
