// ABOUTME: Converts protocol durations into sample counts
// ABOUTME: Holds the six Robot36 line segment lengths for one sample rate
package robot36

import "math"

// Robot36 line segment durations in seconds.
const (
	HorizontalSyncSeconds = 0.009
	SyncPorchSeconds      = 0.003
	PorchSeconds          = 0.0015
	SeparatorSeconds      = 0.0045
	LumaSeconds           = 0.088
	ChromaSeconds         = 0.044
)

// Ticks returns floor(rate*seconds), the number of samples a segment of the
// given duration occupies.
func Ticks(rate int, seconds float64) int {
	return int(math.Floor(float64(rate) * seconds))
}

// Timing is the per-segment sample count for one sample rate.
type Timing struct {
	HorizontalSync int
	SyncPorch      int
	Porch          int
	Separator      int
	Luma           int
	Chroma         int
}

// NewTiming computes the segment lengths for rate.
func NewTiming(rate int) Timing {
	return Timing{
		HorizontalSync: Ticks(rate, HorizontalSyncSeconds),
		SyncPorch:      Ticks(rate, SyncPorchSeconds),
		Porch:          Ticks(rate, PorchSeconds),
		Separator:      Ticks(rate, SeparatorSeconds),
		Luma:           Ticks(rate, LumaSeconds),
		Chroma:         Ticks(rate, ChromaSeconds),
	}
}

// PairLen is the number of samples one even/odd row pair occupies.
func (t Timing) PairLen() int {
	return 2*(t.HorizontalSync+t.SyncPorch+t.Luma+t.Separator+t.Porch) + 2*t.Chroma
}
