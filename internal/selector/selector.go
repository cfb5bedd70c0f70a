package selector

import "harmonia/internal/mode"

// Bar geometry in pixels. The bar spans the window bottom; buttons sit in a centered
// content column no wider than maxContentWidth, spread with equal space around each.
const (
	BarHeight       = 64
	maxContentWidth = 896
	sidePadding     = 16
	buttonPadX      = 16
	buttonHeight    = 40
	charWidth       = 10 // fallback text width per byte when no Measure is set
)

// Rect is an axis-aligned rectangle in window pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r (left/top edges inclusive).
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is one mode button after layout.
type Button struct {
	Mode   mode.Mode
	Label  string
	Bounds Rect
	Active bool
}

// Selector is the bottom bar with one button per mode. It does not own the mode: a click
// reports the picked mode through onSelect and the owner calls SetCurrent.
type Selector struct {
	// Measure returns the pixel width of a label. Set by the UI layer to match its font.
	Measure func(text string) float32

	current  mode.Mode
	onSelect func(mode.Mode)
	buttons  [len(mode.All)]Button
	bar      Rect
}

// New returns a selector showing current as active. onSelect may be nil.
func New(current mode.Mode, onSelect func(mode.Mode)) *Selector {
	s := &Selector{current: current, onSelect: onSelect}
	for i, m := range mode.All {
		s.buttons[i] = Button{Mode: m, Label: m.Label(), Active: m == current}
	}
	return s
}

// Layout positions the bar and buttons for a window of width x height.
func (s *Selector) Layout(width, height int) {
	w, h := float32(width), float32(height)
	s.bar = Rect{X: 0, Y: h - BarHeight, W: w, H: BarHeight}

	content := w - 2*sidePadding
	if content > maxContentWidth {
		content = maxContentWidth
	}
	if content < 0 {
		content = 0
	}
	left := (w - content) / 2

	var total float32
	widths := make([]float32, len(s.buttons))
	for i := range s.buttons {
		widths[i] = s.measure(s.buttons[i].Label) + 2*buttonPadX
		total += widths[i]
	}
	gap := (content - total) / float32(len(s.buttons))
	if gap < 0 {
		gap = 0
	}
	x := left + gap/2
	y := s.bar.Y + (BarHeight-buttonHeight)/2
	for i := range s.buttons {
		s.buttons[i].Bounds = Rect{X: x, Y: y, W: widths[i], H: buttonHeight}
		x += widths[i] + gap
	}
}

func (s *Selector) measure(text string) float32 {
	if s.Measure != nil {
		return s.Measure(text)
	}
	return float32(len(text) * charWidth)
}

// Bar returns the bar rectangle from the last Layout.
func (s *Selector) Bar() Rect {
	return s.bar
}

// Buttons returns a copy of the buttons in display order.
func (s *Selector) Buttons() []Button {
	out := make([]Button, len(s.buttons))
	copy(out, s.buttons[:])
	return out
}

// Current returns the mode shown as active.
func (s *Selector) Current() mode.Mode {
	return s.current
}

// SetCurrent marks m as the active button.
func (s *Selector) SetCurrent(m mode.Mode) {
	s.current = m
	for i := range s.buttons {
		s.buttons[i].Active = s.buttons[i].Mode == m
	}
}

// HitTest returns the mode whose button contains (x, y).
func (s *Selector) HitTest(x, y float32) (mode.Mode, bool) {
	for _, b := range s.buttons {
		if b.Bounds.Contains(x, y) {
			return b.Mode, true
		}
	}
	return mode.DeepWork, false
}

// Click handles a pointer click. A click on a button reports its mode to onSelect.
// It returns true when the click landed anywhere on the bar, so the scene behind it should ignore it.
func (s *Selector) Click(x, y float32) bool {
	if !s.bar.Contains(x, y) {
		return false
	}
	if m, ok := s.HitTest(x, y); ok && s.onSelect != nil {
		s.onSelect(m)
	}
	return true
}
