package selector

import (
	"testing"

	"harmonia/internal/mode"
)

func center(r Rect) (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

func TestButtonsInModeOrder(t *testing.T) {
	s := New(mode.DeepWork, nil)
	s.Layout(1280, 720)
	buttons := s.Buttons()
	if len(buttons) != 4 {
		t.Fatalf("got %d buttons", len(buttons))
	}
	labels := []string{"deep work", "creative", "study", "sleep"}
	for i, b := range buttons {
		if b.Mode != mode.All[i] || b.Label != labels[i] {
			t.Errorf("button %d = %v %q", i, b.Mode, b.Label)
		}
		if i > 0 && b.Bounds.X <= buttons[i-1].Bounds.X+buttons[i-1].Bounds.W {
			t.Errorf("button %d overlaps the previous one", i)
		}
	}
}

func TestLayoutCentersContent(t *testing.T) {
	s := New(mode.DeepWork, nil)
	s.Layout(1280, 720)
	bar := s.Bar()
	if bar.Y != 720-BarHeight || bar.W != 1280 {
		t.Fatalf("bar = %+v", bar)
	}
	b := s.Buttons()
	left := b[0].Bounds.X - (1280-maxContentWidth)/2
	right := (1280+maxContentWidth)/2 - (b[3].Bounds.X + b[3].Bounds.W)
	if diff := left - right; diff > 0.01 || diff < -0.01 {
		t.Errorf("content not centered: left margin %g, right margin %g", left, right)
	}
}

func TestClickSelectsMode(t *testing.T) {
	var got []mode.Mode
	s := New(mode.DeepWork, func(m mode.Mode) { got = append(got, m) })
	s.Layout(1024, 768)
	for _, b := range s.Buttons() {
		x, y := center(b.Bounds)
		if !s.Click(x, y) {
			t.Fatalf("click on %v not consumed", b.Mode)
		}
	}
	if len(got) != 4 {
		t.Fatalf("selections = %v", got)
	}
	for i, m := range mode.All {
		if got[i] != m {
			t.Errorf("selection %d = %v, want %v", i, got[i], m)
		}
	}
}

func TestClickOutsideBar(t *testing.T) {
	called := false
	s := New(mode.DeepWork, func(mode.Mode) { called = true })
	s.Layout(1024, 768)
	if s.Click(512, 100) {
		t.Error("click above the bar was consumed")
	}
	if called {
		t.Error("onSelect called for a click outside the bar")
	}
}

func TestClickOnBarBackground(t *testing.T) {
	called := false
	s := New(mode.DeepWork, func(mode.Mode) { called = true })
	s.Layout(1024, 768)
	if !s.Click(1, 767) {
		t.Error("click on bar background should be consumed")
	}
	if called {
		t.Error("bar background selected a mode")
	}
}

func TestSetCurrent(t *testing.T) {
	s := New(mode.DeepWork, nil)
	s.SetCurrent(mode.Study)
	if s.Current() != mode.Study {
		t.Fatalf("Current() = %v", s.Current())
	}
	for _, b := range s.Buttons() {
		if b.Active != (b.Mode == mode.Study) {
			t.Errorf("%v active = %v", b.Mode, b.Active)
		}
	}
}

func TestMeasureHook(t *testing.T) {
	s := New(mode.DeepWork, nil)
	s.Measure = func(string) float32 { return 50 }
	s.Layout(1280, 720)
	for _, b := range s.Buttons() {
		if b.Bounds.W != 50+2*buttonPadX {
			t.Errorf("%v width = %g", b.Mode, b.Bounds.W)
		}
	}
}

func TestNarrowWindow(t *testing.T) {
	s := New(mode.DeepWork, nil)
	s.Layout(100, 200)
	if _, ok := s.HitTest(-5, -5); ok {
		t.Error("hit outside window")
	}
	b := s.Buttons()
	x, y := center(b[0].Bounds)
	if m, ok := s.HitTest(x, y); !ok || m != mode.DeepWork {
		t.Errorf("HitTest at first button = %v, %v", m, ok)
	}
}
