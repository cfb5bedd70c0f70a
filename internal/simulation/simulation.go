package simulation

import (
	"math"
	"math/rand/v2"
	"time"

	"harmonia/internal/layout"
	"harmonia/internal/mode"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	swayRate      = 0.001 // radians of phase per millisecond
	swayAmplitude = 0.05
)

// Simulation owns all mutable scene state. Tick, Click, SetMode and Resize must be called from
// one goroutine (the frame loop); nothing here locks.
type Simulation struct {
	Smoke  *Smoke
	Chain  ChainState
	Lights Lights
	Camera Camera

	// ChainPos is the current center of the pull chain; its x follows the jiggle.
	ChainPos mgl32.Vec3
	// CupYaw is the tea cup group's rotation around y, in radians.
	CupYaw float32

	chainRadius float32
	chainLength float32
	mode        mode.Mode
	frames      uint64
}

// Option configures a Simulation.
type Option func(*options)

type options struct {
	rng           *rand.Rand
	width, height int
}

// WithSeed makes the smoke deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses r as the smoke's random source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithViewport sets the initial viewport size in pixels.
func WithViewport(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// New builds the simulation for layout l and applies the initial mode m.
func New(l *layout.Layout, m mode.Mode, opts ...Option) *Simulation {
	o := options{width: 1, height: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	s := &Simulation{
		Smoke:       NewSmoke(SmokeCount, o.rng),
		Chain:       newChainState(l.Chain.Position[0]),
		Lights:      newLights(l),
		Camera:      newCamera(l.Camera, o.width, o.height),
		ChainPos:    vec(l.Chain.Position),
		chainRadius: l.Chain.Radius,
		chainLength: l.Chain.Length,
	}
	s.SetMode(m)
	return s
}

// Tick advances the simulation to now: chain swing, smoke, cup sway.
func (s *Simulation) Tick(now time.Time) {
	if s.Chain.Active {
		s.ChainPos[0] = s.Chain.Offset(now)
	}
	s.Smoke.Step()
	s.CupYaw = sway(now)
	s.frames++
}

func sway(now time.Time) float32 {
	phase := math.Mod(float64(now.UnixMilli())*swayRate, 2*math.Pi)
	return math32.Sin(float32(phase)) * swayAmplitude
}

// ChainShape returns the chain's pick volume at its current position.
func (s *Simulation) ChainShape() Cylinder {
	return Cylinder{Center: s.ChainPos, Radius: s.chainRadius, Height: s.chainLength}
}

// Hit reports whether a click at viewport pixel (x, y) lands on the pull chain.
func (s *Simulation) Hit(x, y float32) bool {
	ndc, ok := s.Camera.NDC(x, y)
	if !ok {
		return false
	}
	_, hit := s.ChainShape().Intersect(s.Camera.RayThrough(ndc))
	return hit
}

// Click handles a pointer click at viewport pixel (x, y). A click on the chain flips the lights
// and starts the chain swing at now; anything else is ignored. It reports whether the chain was hit.
func (s *Simulation) Click(x, y float32, now time.Time) bool {
	if !s.Hit(x, y) {
		return false
	}
	s.Lights.Toggle()
	s.Chain.Trigger(now)
	return true
}

// SetMode recolors the LED strips for m. Applying the same mode again changes nothing.
func (s *Simulation) SetMode(m mode.Mode) {
	s.mode = m
	s.Lights.Recolor(m.Config().LED)
}

// Mode returns the last applied mode.
func (s *Simulation) Mode() mode.Mode {
	return s.mode
}

// Resize updates the camera for a new viewport.
func (s *Simulation) Resize(width, height int) {
	s.Camera.Resize(width, height)
}

// Frames returns the number of ticks so far.
func (s *Simulation) Frames() uint64 {
	return s.frames
}
