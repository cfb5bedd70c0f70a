package simulation

import (
	"time"

	"github.com/chewxy/math32"
)

const (
	jiggleDuration  = 1000 * time.Millisecond
	jiggleAmplitude = 0.1
	jiggleFrequency = 15
)

// ChainState drives the decaying sideways swing of the pull chain after a click.
// One value lives for the whole scene and is restarted on every click.
type ChainState struct {
	Active    bool
	Start     time.Time
	Duration  time.Duration
	Amplitude float32
	Frequency float32
	Base      float32 // resting x of the chain
}

func newChainState(base float32) ChainState {
	return ChainState{
		Duration:  jiggleDuration,
		Amplitude: jiggleAmplitude,
		Frequency: jiggleFrequency,
		Base:      base,
	}
}

// Trigger (re)starts the swing at now.
func (c *ChainState) Trigger(now time.Time) {
	c.Active = true
	c.Start = now
}

// Offset returns the chain's x at now and advances the state. An inactive chain stays at Base.
// Once Duration has elapsed the swing ends and Base is returned exactly.
func (c *ChainState) Offset(now time.Time) float32 {
	if !c.Active {
		return c.Base
	}
	elapsed := now.Sub(c.Start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= c.Duration {
		c.Active = false
		return c.Base
	}
	ms := float32(elapsed) / float32(time.Millisecond)
	progress := float32(elapsed) / float32(c.Duration)
	easing := 1 - math32.Pow(1-progress, 3)
	offset := math32.Sin(ms*c.Frequency/1000) * c.Amplitude * (1 - easing)
	return c.Base + offset
}
