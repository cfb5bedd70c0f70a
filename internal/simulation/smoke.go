package simulation

import "math/rand/v2"

const (
	// SmokeCount is the fixed number of smoke particles.
	SmokeCount = 200

	smokeCeiling     = 1.0
	smokeBaseY       = -0.6
	smokeSpawnHeight = 0.1   // initial spawn spreads this far above smokeBaseY
	smokeSpread      = 0.2   // x/z spawn disc is [-spread/2, spread/2)
	smokeDrift       = 0.005 // horizontal velocity range is [-drift/2, drift/2)
	smokeRise        = 0.01  // vertical velocity range is [0, rise)
	smokeMinSize     = 0.01
	smokeSizeRange   = 0.015
	smokeGrowth      = 0.0001
)

// Particle is a copy of one smoke particle's state.
type Particle struct {
	Position [3]float32
	Velocity [3]float32
	Size     float32
}

// Smoke is a fixed-size particle system stored as flat buffers ready for upload:
// Positions and Velocities hold 3 floats per particle, Sizes one.
// The buffers are allocated once in NewSmoke and only mutated in place.
type Smoke struct {
	Positions  []float32
	Velocities []float32
	Sizes      []float32
	rng        *rand.Rand
	dirty      bool
	resets     uint64
}

// NewSmoke spawns count particles just above the cup.
func NewSmoke(count int, rng *rand.Rand) *Smoke {
	s := &Smoke{
		Positions:  make([]float32, count*3),
		Velocities: make([]float32, count*3),
		Sizes:      make([]float32, count),
		rng:        rng,
		dirty:      true,
	}
	for i := 0; i < count; i++ {
		s.respawn(i)
		s.Positions[i*3+1] = smokeBaseY + s.rng.Float32()*smokeSpawnHeight
	}
	return s
}

// Len returns the particle count. It never changes after construction.
func (s *Smoke) Len() int {
	return len(s.Sizes)
}

// Particle returns particle i.
func (s *Smoke) Particle(i int) Particle {
	j := i * 3
	return Particle{
		Position: [3]float32{s.Positions[j], s.Positions[j+1], s.Positions[j+2]},
		Velocity: [3]float32{s.Velocities[j], s.Velocities[j+1], s.Velocities[j+2]},
		Size:     s.Sizes[i],
	}
}

// SetParticle overwrites particle i.
func (s *Smoke) SetParticle(i int, p Particle) {
	j := i * 3
	copy(s.Positions[j:j+3], p.Position[:])
	copy(s.Velocities[j:j+3], p.Velocity[:])
	s.Sizes[i] = p.Size
	s.dirty = true
}

// Step advances every particle by one frame: integrate, grow, and recycle the ones that rose
// above the ceiling. The buffers are marked dirty unconditionally.
func (s *Smoke) Step() {
	for i := range s.Sizes {
		j := i * 3
		s.Positions[j] += s.Velocities[j]
		s.Positions[j+1] += s.Velocities[j+1]
		s.Positions[j+2] += s.Velocities[j+2]
		s.Sizes[i] += smokeGrowth

		if s.Positions[j+1] > smokeCeiling {
			s.respawn(i)
			s.resets++
		}
	}
	s.dirty = true
}

// respawn puts particle i back at the base of the column with a fresh velocity and size.
func (s *Smoke) respawn(i int) {
	j := i * 3
	s.Positions[j] = (s.rng.Float32() - 0.5) * smokeSpread
	s.Positions[j+1] = smokeBaseY
	s.Positions[j+2] = (s.rng.Float32() - 0.5) * smokeSpread
	s.Velocities[j] = (s.rng.Float32() - 0.5) * smokeDrift
	s.Velocities[j+1] = s.rng.Float32() * smokeRise
	s.Velocities[j+2] = (s.rng.Float32() - 0.5) * smokeDrift
	s.Sizes[i] = smokeMinSize + s.rng.Float32()*smokeSizeRange
}

// Dirty reports whether the buffers changed since the last ClearDirty.
func (s *Smoke) Dirty() bool {
	return s.dirty
}

// ClearDirty is called by the renderer after it consumed the buffers.
func (s *Smoke) ClearDirty() {
	s.dirty = false
}

// Resets returns how many particles have been recycled so far.
func (s *Smoke) Resets() uint64 {
	return s.resets
}
