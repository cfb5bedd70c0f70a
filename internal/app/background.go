package app

import (
	"time"

	"harmonia/internal/layout"
	"harmonia/internal/logger"
	"harmonia/internal/mode"
	"harmonia/internal/simulation"
)

// Surface is the window the background is mounted on. Click listeners run in registration
// order until one returns true. Both registrations return a function that removes the listener.
type Surface interface {
	Size() (width, height int)
	OnClick(fn func(x, y float32, now time.Time) bool) (cancel func())
	OnResize(fn func(width, height int)) (cancel func())
}

// Renderer draws a simulation and owns the GPU resources released by Close.
type Renderer interface {
	Draw(sim *simulation.Simulation)
	Close()
}

// RendererFactory builds the renderer for a layout when the background mounts.
type RendererFactory func(l *layout.Layout) Renderer

// Background is the animated scene behind the selector: simulation, renderer and its two
// surface listeners. Mount and Close bracket its lifetime; Close is safe to call any number of times.
type Background struct {
	layout      *layout.Layout
	newRenderer RendererFactory
	log         *logger.Logger
	opts        []simulation.Option

	sim      *simulation.Simulation
	renderer Renderer
	cancels  []func()
}

// NewBackground returns an unmounted background. newRenderer may be nil (headless).
func NewBackground(l *layout.Layout, newRenderer RendererFactory, log *logger.Logger, opts ...simulation.Option) *Background {
	return &Background{layout: l, newRenderer: newRenderer, log: log, opts: opts}
}

// Mount creates the simulation for mode m sized to s and registers click and resize listeners.
// A nil surface does nothing. Mounting again tears the previous mount down first.
func (b *Background) Mount(s Surface, m mode.Mode) {
	if s == nil {
		return
	}
	b.Close()

	w, h := s.Size()
	opts := append(append([]simulation.Option(nil), b.opts...), simulation.WithViewport(w, h))
	sim := simulation.New(b.layout, m, opts...)
	b.sim = sim
	if b.newRenderer != nil {
		b.renderer = b.newRenderer(b.layout)
	}
	b.cancels = []func(){
		s.OnClick(b.click),
		s.OnResize(sim.Resize),
	}
	b.log.Infof("background mounted (%dx%d, mode %s)", w, h, m)
}

func (b *Background) click(x, y float32, now time.Time) bool {
	if b.sim == nil || !b.sim.Click(x, y, now) {
		return false
	}
	if b.sim.Lights.On {
		b.log.Infof("lights on")
	} else {
		b.log.Infof("lights off")
	}
	return true
}

// Close unregisters the listeners, releases the renderer and drops the simulation.
func (b *Background) Close() {
	if b.sim == nil {
		return
	}
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
	if b.renderer != nil {
		b.renderer.Close()
		b.renderer = nil
	}
	b.sim = nil
	b.log.Infof("background unmounted")
}

// Mounted reports whether the background is live.
func (b *Background) Mounted() bool {
	return b.sim != nil
}

// Simulation returns the live simulation, or nil when unmounted.
func (b *Background) Simulation() *simulation.Simulation {
	return b.sim
}

// SetMode passes m to the simulation.
func (b *Background) SetMode(m mode.Mode) {
	if b.sim != nil {
		b.sim.SetMode(m)
	}
}

// Tick advances the simulation.
func (b *Background) Tick(now time.Time) {
	if b.sim != nil {
		b.sim.Tick(now)
	}
}

// Draw renders the current state.
func (b *Background) Draw() {
	if b.sim != nil && b.renderer != nil {
		b.renderer.Draw(b.sim)
	}
}
