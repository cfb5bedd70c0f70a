package app

import (
	"time"

	"harmonia/internal/logger"
	"harmonia/internal/mode"
	"harmonia/internal/selector"
)

// Host owns the current mode. It renders the selector and the background as siblings:
// the selector reports picks to SetMode, which pushes the mode down into the background.
type Host struct {
	log        *logger.Logger
	mode       mode.Mode
	selector   *selector.Selector
	background *Background
	cancels    []func()
}

// NewHost returns a host starting in initial.
func NewHost(bg *Background, initial mode.Mode, log *logger.Logger) *Host {
	h := &Host{log: log, mode: initial, background: bg}
	h.selector = selector.New(initial, h.SetMode)
	return h
}

// Start lays out the selector on s, registers its listeners ahead of the background's so bar
// clicks never reach the scene, and mounts the background. A nil surface does nothing.
func (h *Host) Start(s Surface) {
	if s == nil {
		return
	}
	h.Stop()
	h.selector.Layout(s.Size())
	h.cancels = []func(){
		s.OnClick(func(x, y float32, _ time.Time) bool { return h.selector.Click(x, y) }),
		s.OnResize(h.selector.Layout),
	}
	h.background.Mount(s, h.mode)
}

// Stop unregisters the selector listeners and tears the background down. Safe to repeat.
func (h *Host) Stop() {
	for _, cancel := range h.cancels {
		cancel()
	}
	h.cancels = nil
	h.background.Close()
}

// SetMode makes m current for the selector and the scene.
func (h *Host) SetMode(m mode.Mode) {
	if !m.Valid() || m == h.mode {
		return
	}
	h.mode = m
	h.selector.SetCurrent(m)
	h.background.SetMode(m)
	h.log.Infof("mode %s", m)
}

// Mode returns the current mode.
func (h *Host) Mode() mode.Mode {
	return h.mode
}

// Selector returns the mode selector.
func (h *Host) Selector() *selector.Selector {
	return h.selector
}

// Background returns the scene background.
func (h *Host) Background() *Background {
	return h.background
}

// Update advances one frame.
func (h *Host) Update(now time.Time) {
	h.background.Tick(now)
}
