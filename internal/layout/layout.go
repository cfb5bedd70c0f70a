package layout

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed scene.yaml
var defaultScene []byte

// Vec3 is an (x, y, z) triple written as a YAML flow sequence: [x, y, z].
type Vec3 [3]float32

// Color is a hex color ("#rrggbb" or "#rgb") decoded into linear 0..1 channels.
type Color struct {
	colorful.Color
}

// UnmarshalYAML parses a scalar hex string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := colorful.Hex(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	c.Color = parsed
	return nil
}

// MarshalYAML writes the color back as a hex string.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// Shape names understood by the renderer.
const (
	ShapeCube     = "cube"
	ShapeCylinder = "cylinder"
	ShapeSphere   = "sphere"
)

// Prop is one piece of static geometry. Position is the shape's center.
// Size is (width, height, depth) for cubes, (radiusTop, radiusBottom, height) for cylinders
// and (radius, _, _) for spheres.
type Prop struct {
	Name     string  `yaml:"name"`
	Shape    string  `yaml:"shape"`
	Position Vec3    `yaml:"position"`
	Size     Vec3    `yaml:"size"`
	Color    Color   `yaml:"color"`
	Opacity  float32 `yaml:"opacity,omitempty"`
	Emissive bool    `yaml:"emissive,omitempty"` // glows with the lamp instead of being lit by it
	Sway     bool    `yaml:"sway,omitempty"`     // part of the tea cup group
}

type Ambient struct {
	Color     Color   `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
}

type Camera struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	Fovy     float32 `yaml:"fovy"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

type PointLight struct {
	Position  Vec3    `yaml:"position"`
	Color     Color   `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
	Range     float32 `yaml:"range"`
}

type SpotLight struct {
	Position  Vec3    `yaml:"position"`
	Target    Vec3    `yaml:"target"`
	Color     Color   `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
	Angle     float32 `yaml:"angle"`
	Distance  float32 `yaml:"distance"`
}

// Lamp holds the two mode-independent lamp lights. OffIntensity is the floor both drop to when
// the chain turns the lights off.
type Lamp struct {
	Point        PointLight `yaml:"point"`
	Spot         SpotLight  `yaml:"spot"`
	OffIntensity float32    `yaml:"off_intensity"`
}

// Strips describes the LED strips: Count horizontal strips of Length, the top one at Height,
// each next one Spacing lower, with Bulbs evenly spaced bulbs.
type Strips struct {
	Count         int     `yaml:"count"`
	Length        float32 `yaml:"length"`
	Height        float32 `yaml:"height"`
	Spacing       float32 `yaml:"spacing"`
	Bulbs         int     `yaml:"bulbs"`
	BulbRadius    float32 `yaml:"bulb_radius"`
	BulbDepth     float32 `yaml:"bulb_depth"`
	GlowIntensity float32 `yaml:"glow_intensity"`
	Color         Color   `yaml:"color"`
}

type Chain struct {
	Position Vec3    `yaml:"position"`
	Radius   float32 `yaml:"radius"`
	Length   float32 `yaml:"length"`
	Color    Color   `yaml:"color"`
}

type Bulb struct {
	Position          Vec3    `yaml:"position"`
	Radius            float32 `yaml:"radius"`
	Color             Color   `yaml:"color"`
	EmissiveIntensity float32 `yaml:"emissive_intensity"`
}

type Smoke struct {
	Color   Color   `yaml:"color"`
	Opacity float32 `yaml:"opacity"`
}

// Layout is the whole static scene. It is read once at startup and treated as immutable.
type Layout struct {
	Background Color   `yaml:"background"`
	Ambient    Ambient `yaml:"ambient"`
	Camera     Camera  `yaml:"camera"`
	Lamp       Lamp    `yaml:"lamp"`
	Strips     Strips  `yaml:"strips"`
	Chain      Chain   `yaml:"chain"`
	Bulb       Bulb    `yaml:"bulb"`
	Smoke      Smoke   `yaml:"smoke"`
	Props      []Prop  `yaml:"props"`
}

// Default returns the built-in scene.
func Default() (*Layout, error) {
	l, err := Parse(defaultScene)
	if err != nil {
		return nil, errors.Wrap(err, "embedded scene")
	}
	return l, nil
}

// Load reads a layout from path. An empty path returns the built-in scene.
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read layout")
	}
	l, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "layout %s", path)
	}
	return l, nil
}

// Parse decodes and validates a YAML layout document. Unknown keys are rejected.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, errors.Wrap(err, "decode layout")
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the values the simulation depends on.
func (l *Layout) Validate() error {
	if l.Strips.Count < 0 || l.Strips.Bulbs < 0 {
		return errors.Errorf("strips: negative count (%d strips, %d bulbs)", l.Strips.Count, l.Strips.Bulbs)
	}
	if l.Strips.Bulbs == 1 {
		return errors.New("strips: need at least 2 bulbs per strip to space them")
	}
	if l.Chain.Radius <= 0 || l.Chain.Length <= 0 {
		return errors.Errorf("chain: radius and length must be positive (got %g, %g)", l.Chain.Radius, l.Chain.Length)
	}
	if l.Camera.Fovy <= 0 || l.Camera.Fovy >= 180 {
		return errors.Errorf("camera: fovy %g out of range (0, 180)", l.Camera.Fovy)
	}
	if l.Camera.Near <= 0 || l.Camera.Far <= l.Camera.Near {
		return errors.Errorf("camera: invalid clip planes near=%g far=%g", l.Camera.Near, l.Camera.Far)
	}
	if l.Lamp.OffIntensity < 0 {
		return errors.Errorf("lamp: off_intensity %g is negative", l.Lamp.OffIntensity)
	}
	for i, p := range l.Props {
		switch p.Shape {
		case ShapeCube, ShapeCylinder, ShapeSphere:
		default:
			return errors.Errorf("props[%d] %q: unknown shape %q", i, p.Name, p.Shape)
		}
	}
	return nil
}

// BulbPositions returns the center of every LED bulb, strip by strip, left to right.
func (s Strips) BulbPositions() []Vec3 {
	out := make([]Vec3, 0, s.Count*s.Bulbs)
	if s.Bulbs < 2 {
		return out
	}
	step := s.Length / float32(s.Bulbs-1)
	for i := 0; i < s.Count; i++ {
		y := s.StripY(i)
		for j := 0; j < s.Bulbs; j++ {
			out = append(out, Vec3{-s.Length/2 + float32(j)*step, y, s.BulbDepth})
		}
	}
	return out
}

// StripY is the height of strip i (0 is the top strip).
func (s Strips) StripY(i int) float32 {
	return s.Height - float32(i)*s.Spacing
}

// Alpha is the prop's opacity; an omitted opacity means fully opaque.
func (p Prop) Alpha() float32 {
	if p.Opacity <= 0 || p.Opacity > 1 {
		return 1
	}
	return p.Opacity
}
