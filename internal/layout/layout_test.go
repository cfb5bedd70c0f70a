package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultScene(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if l.Strips.Count != 3 || l.Strips.Bulbs != 24 {
		t.Fatalf("strips = %d x %d, want 3 x 24", l.Strips.Count, l.Strips.Bulbs)
	}
	if got := len(l.Strips.BulbPositions()); got != 72 {
		t.Errorf("bulb positions = %d, want 72", got)
	}
	if l.Chain.Position != (Vec3{0.5, 2.25, 0}) {
		t.Errorf("chain position = %v", l.Chain.Position)
	}
	if l.Lamp.Point.Intensity != 4 || l.Lamp.Spot.Intensity != 3 || l.Lamp.OffIntensity != 0.1 {
		t.Errorf("lamp intensities = %g, %g, off %g", l.Lamp.Point.Intensity, l.Lamp.Spot.Intensity, l.Lamp.OffIntensity)
	}
	if l.Camera.Fovy != 75 || l.Camera.Position != (Vec3{0, 2, 5}) {
		t.Errorf("camera = %+v", l.Camera)
	}
	if l.Background.Hex() != "#1a1a1a" {
		t.Errorf("background = %s", l.Background.Hex())
	}
	sway := 0
	for _, p := range l.Props {
		if p.Sway {
			sway++
		}
	}
	if sway != 2 {
		t.Errorf("sway props = %d, want 2 (cup and tea)", sway)
	}
}

func TestBulbSpacing(t *testing.T) {
	s := Strips{Count: 2, Length: 8, Height: 2.5, Spacing: 0.5, Bulbs: 3, BulbDepth: 0.03}
	got := s.BulbPositions()
	want := []Vec3{
		{-4, 2.5, 0.03}, {0, 2.5, 0.03}, {4, 2.5, 0.03},
		{-4, 2, 0.03}, {0, 2, 0.03}, {4, 2, 0.03},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bulb %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseRejects(t *testing.T) {
	base, err := os.ReadFile("scene.yaml")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		old  string
		new  string
		want string
	}{
		{"bad color", `background: "#1a1a1a"`, `background: "teal"`, "hex-color"},
		{"unknown key", `background: "#1a1a1a"`, "background: \"#1a1a1a\"\nfog: true", "fog"},
		{"bad shape", "shape: cube", "shape: torus", "unknown shape"},
		{"zero chain radius", "radius: 0.01\n  length: 0.5", "radius: 0\n  length: 0.5", "chain"},
		{"bad fovy", "fovy: 75", "fovy: 190", "fovy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(string(base), tt.old, tt.new, 1)
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	l, err := Load("")
	if err != nil || l == nil {
		t.Fatalf("Load(\"\") = %v, %v", l, err)
	}

	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := strings.Replace(string(defaultScene), "count: 3", "count: 1", 1)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	l, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Strips.Count != 1 {
		t.Errorf("strip count = %d, want 1", l.Strips.Count)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAlpha(t *testing.T) {
	if (Prop{}).Alpha() != 1 {
		t.Error("omitted opacity should be opaque")
	}
	if (Prop{Opacity: 0.3}).Alpha() != 0.3 {
		t.Error("explicit opacity not kept")
	}
}
