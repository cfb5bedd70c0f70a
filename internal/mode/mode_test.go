package mode

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseRoundTrip(t *testing.T) {
	for _, m := range All {
		got, err := Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestParseNormalizes(t *testing.T) {
	got, err := Parse("  Deep-Work ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DeepWork {
		t.Errorf("got %v, want deep-work", got)
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("focus"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestTableContents(t *testing.T) {
	tests := []struct {
		mode  Mode
		id    string
		name  string
		desc  string
		prim  string
		light string
	}{
		{DeepWork, "deep-work", "Deep Work", "Intense concentration mode", "#1a1a2e", "#4a90e2"},
		{Creative, "creative", "Creative", "Inspiration and creativity", "#2d3436", "#e350b8"},
		{Study, "study", "Study", "Academic focus mode", "#2c3e50", "#f5a623"},
		{Sleep, "sleep", "Sleep", "Relaxation and rest", "#1e272e", "#f8f8f8"},
	}
	for _, tt := range tests {
		c := tt.mode.Config()
		if c.ID != tt.id || c.Name != tt.name || c.Description != tt.desc {
			t.Errorf("%v: got %+v", tt.mode, c)
		}
		if c.Colors.Primary.Hex() != tt.prim {
			t.Errorf("%v primary = %s, want %s", tt.mode, c.Colors.Primary.Hex(), tt.prim)
		}
		if c.Light.Hex() != tt.light {
			t.Errorf("%v light = %s, want %s", tt.mode, c.Light.Hex(), tt.light)
		}
	}
}

func TestLEDIsScaledLight(t *testing.T) {
	for _, m := range All {
		c := m.Config()
		want := colorful.Color{R: c.Light.R * LEDScale, G: c.Light.G * LEDScale, B: c.Light.B * LEDScale}
		if c.LED != want {
			t.Errorf("%v LED = %+v, want %+v", m, c.LED, want)
		}
	}
}

func TestConfigIsACopy(t *testing.T) {
	c := Study.Config()
	c.Name = "changed"
	c.LED.R = 0
	if Study.Config().Name != "Study" || Study.Config().LED.R == 0 {
		t.Fatal("mutating a returned Config leaked into the table")
	}
}

func TestLabel(t *testing.T) {
	if got := DeepWork.Label(); got != "deep work" {
		t.Errorf("Label() = %q", got)
	}
	if got := Sleep.Label(); got != "sleep" {
		t.Errorf("Label() = %q", got)
	}
}

func TestInvalidMode(t *testing.T) {
	m := Mode(42)
	if m.Valid() {
		t.Fatal("Mode(42) should be invalid")
	}
	if m.String() != "unknown" {
		t.Errorf("String() = %q", m.String())
	}
	if _, err := m.MarshalText(); err == nil {
		t.Error("expected MarshalText error")
	}
}

func TestTextRoundTrip(t *testing.T) {
	var m Mode
	if err := m.UnmarshalText([]byte("sleep")); err != nil {
		t.Fatal(err)
	}
	b, err := m.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "sleep" {
		t.Errorf("MarshalText = %q", b)
	}
}
