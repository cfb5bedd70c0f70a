package simulation

import (
	"harmonia/internal/layout"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	bulbOnIntensity  = 1.0
	bulbOffIntensity = 0.0
	glowOffIntensity = 0.0
	glowRange        = 0.05
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// Bulb is one LED on a strip. Color and Emissive follow the focus mode; EmissiveIntensity
// follows the light switch.
type Bulb struct {
	Position          mgl32.Vec3
	Color             colorful.Color
	Emissive          colorful.Color
	EmissiveIntensity float32
}

// PointLight is a colored light at a position. Intensity 0 means dark.
type PointLight struct {
	Position  mgl32.Vec3
	Color     colorful.Color
	Intensity float32
	Range     float32
}

// SpotLight is a point light aimed at Target with a cone half-angle Angle (radians).
type SpotLight struct {
	PointLight
	Target mgl32.Vec3
	Angle  float32
}

// Lights holds every light-emitting element, split once at construction into the LED strip
// elements (bulbs and their glow lights) and the two lamp lights. Only the LED elements react to
// mode changes; all of them react to the switch.
type Lights struct {
	On        bool
	Bulbs     []Bulb
	Glows     []PointLight // Glows[i] sits on Bulbs[i]
	LampPoint PointLight
	LampSpot  SpotLight

	pointOn, spotOn, lampOff, glowOn float32
}

func newLights(l *layout.Layout) Lights {
	positions := l.Strips.BulbPositions()
	lt := Lights{
		On:    true,
		Bulbs: make([]Bulb, len(positions)),
		Glows: make([]PointLight, len(positions)),
		LampPoint: PointLight{
			Position:  vec(l.Lamp.Point.Position),
			Color:     l.Lamp.Point.Color.Color,
			Intensity: l.Lamp.Point.Intensity,
			Range:     l.Lamp.Point.Range,
		},
		LampSpot: SpotLight{
			PointLight: PointLight{
				Position:  vec(l.Lamp.Spot.Position),
				Color:     l.Lamp.Spot.Color.Color,
				Intensity: l.Lamp.Spot.Intensity,
				Range:     l.Lamp.Spot.Distance,
			},
			Target: vec(l.Lamp.Spot.Target),
			Angle:  l.Lamp.Spot.Angle,
		},
		pointOn: l.Lamp.Point.Intensity,
		spotOn:  l.Lamp.Spot.Intensity,
		lampOff: l.Lamp.OffIntensity,
		glowOn:  l.Strips.GlowIntensity,
	}
	for i, p := range positions {
		lt.Bulbs[i] = Bulb{
			Position:          vec(p),
			Color:             white,
			Emissive:          white,
			EmissiveIntensity: bulbOnIntensity,
		}
		lt.Glows[i] = PointLight{
			Position:  vec(p),
			Color:     white,
			Intensity: l.Strips.GlowIntensity,
			Range:     glowRange,
		}
	}
	return lt
}

// Toggle flips the switch and applies the matching intensities. The lamp never goes fully dark:
// it drops to its off floor while the LEDs go to zero.
func (lt *Lights) Toggle() {
	lt.On = !lt.On
	bulb, glow := float32(bulbOffIntensity), float32(glowOffIntensity)
	point, spot := lt.lampOff, lt.lampOff
	if lt.On {
		bulb, glow = bulbOnIntensity, lt.glowOn
		point, spot = lt.pointOn, lt.spotOn
	}
	for i := range lt.Bulbs {
		lt.Bulbs[i].EmissiveIntensity = bulb
	}
	for i := range lt.Glows {
		lt.Glows[i].Intensity = glow
	}
	lt.LampPoint.Intensity = point
	lt.LampSpot.Intensity = spot
}

// Recolor sets the LED color. Bulbs that are currently dark keep their old color; glow lights
// always take the new one. Intensities and the lamp are untouched.
func (lt *Lights) Recolor(c colorful.Color) {
	for i := range lt.Bulbs {
		if lt.Bulbs[i].EmissiveIntensity > 0 {
			lt.Bulbs[i].Color = c
			lt.Bulbs[i].Emissive = c
		}
	}
	for i := range lt.Glows {
		lt.Glows[i].Color = c
	}
}

func vec(v layout.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
