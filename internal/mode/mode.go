package mode

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Mode is one of the four focus presets. The zero value is DeepWork, which is also the startup default.
type Mode int

const (
	DeepWork Mode = iota
	Creative
	Study
	Sleep
)

// LEDScale dims the light color for the LED strips.
const LEDScale = 0.7

// All lists the modes in button order.
var All = [...]Mode{DeepWork, Creative, Study, Sleep}

// Palette holds the three UI colors of a mode.
type Palette struct {
	Primary   colorful.Color
	Secondary colorful.Color
	Accent    colorful.Color
}

// Config is the display metadata and colors of a mode. Values are copies of the static table.
type Config struct {
	ID          string
	Name        string
	Description string
	Colors      Palette
	// Light is the ambient light tint; LED is Light scaled by LEDScale.
	Light colorful.Color
	LED   colorful.Color
}

type entry struct {
	id, name, description            string
	primary, secondary, accent, light string
}

var entries = [...]entry{
	DeepWork: {"deep-work", "Deep Work", "Intense concentration mode", "#1a1a2e", "#16213e", "#0f3460", "#4a90e2"},
	Creative: {"creative", "Creative", "Inspiration and creativity", "#2d3436", "#636e72", "#b2bec3", "#e350b8"},
	Study:    {"study", "Study", "Academic focus mode", "#2c3e50", "#34495e", "#3498db", "#f5a623"},
	Sleep:    {"sleep", "Sleep", "Relaxation and rest", "#1e272e", "#2f3542", "#57606f", "#f8f8f8"},
}

// table is built once at package init and never written afterwards.
var table = buildTable()

func buildTable() [len(entries)]Config {
	var out [len(entries)]Config
	for i, e := range entries {
		light := mustHex(e.light)
		out[i] = Config{
			ID:          e.id,
			Name:        e.name,
			Description: e.description,
			Colors: Palette{
				Primary:   mustHex(e.primary),
				Secondary: mustHex(e.secondary),
				Accent:    mustHex(e.accent),
			},
			Light: light,
			LED:   Scale(light, LEDScale),
		}
	}
	return out
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Scale multiplies each channel of c by f.
func Scale(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	return m >= DeepWork && m <= Sleep
}

// Config returns the static configuration for m. Invalid modes yield the DeepWork entry.
func (m Mode) Config() Config {
	if !m.Valid() {
		return table[DeepWork]
	}
	return table[m]
}

// String returns the mode identifier, e.g. "deep-work".
func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return entries[m].id
}

// Label is the button caption: the identifier with its dash replaced by a space.
func (m Mode) Label() string {
	return strings.Replace(m.String(), "-", " ", 1)
}

// Parse maps an identifier such as "study" to its Mode. Matching ignores case and surrounding space.
func Parse(s string) (Mode, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	for _, m := range All {
		if entries[m].id == id {
			return m, nil
		}
	}
	return DeepWork, errors.Errorf("unknown mode %q", s)
}

// MarshalText implements encoding.TextMarshaler so modes round-trip through config files.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
