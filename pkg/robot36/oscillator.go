// ABOUTME: Phase-continuous complex oscillator
// ABOUTME: Rotates a complex state per tick and emits the real part as int16
package robot36

import (
	"math"
	"math/cmplx"
)

// InitialState has magnitude 1/sqrt(2), so state*32767 always fits an int16.
const InitialState = complex(0.5, 0.5)

// Oscillator produces one sample per Tick. Frequency changes only alter the
// rotation step, never the accumulated phase, so the waveform has no jumps.
// An Oscillator is not safe for concurrent use.
type Oscillator struct {
	state   complex128
	hzToRad float64
	rate    int
}

// NewOscillator returns an oscillator for the given sample rate starting at
// InitialState.
func NewOscillator(rate int) *Oscillator {
	return NewOscillatorAt(rate, InitialState)
}

// NewOscillatorAt returns an oscillator that starts from state.
func NewOscillatorAt(rate int, state complex128) *Oscillator {
	return &Oscillator{
		state:   state,
		hzToRad: 2 * math.Pi / float64(rate),
		rate:    rate,
	}
}

// Tick advances the phase by freq*2pi/rate and returns the new sample.
func (o *Oscillator) Tick(freq float64) int16 {
	o.state *= cmplx.Exp(complex(0, freq*o.hzToRad))
	return int16(real(o.state) * math.MaxInt16)
}

// State returns the current complex state.
func (o *Oscillator) State() complex128 { return o.state }

// Magnitude returns |state|.
func (o *Oscillator) Magnitude() float64 { return cmplx.Abs(o.state) }

// Phase returns the current phase angle in radians.
func (o *Oscillator) Phase() float64 { return cmplx.Phase(o.state) }

// Rate returns the sample rate the oscillator was built for.
func (o *Oscillator) Rate() int { return o.rate }

// advance returns start rotated by the phase accumulated over ticks whose
// frequencies sum to cycles (in Hz*ticks).
func advance(start complex128, rate int, cycles float64) complex128 {
	return start * cmplx.Rect(1, cycles*(2*math.Pi/float64(rate)))
}
