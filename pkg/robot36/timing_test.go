// ABOUTME: Tests for duration to sample count conversion
// ABOUTME: Pins segment lengths at common rates and checks monotonicity
package robot36

import "testing"

func TestNewTiming(t *testing.T) {
	tests := []struct {
		rate int
		want Timing
		pair int
	}{
		{8000, Timing{HorizontalSync: 72, SyncPorch: 24, Porch: 12, Separator: 36, Luma: 704, Chroma: 352}, 2400},
		{11025, Timing{HorizontalSync: 99, SyncPorch: 33, Porch: 16, Separator: 49, Luma: 970, Chroma: 485}, 3304},
		{44100, Timing{HorizontalSync: 396, SyncPorch: 132, Porch: 66, Separator: 198, Luma: 3880, Chroma: 1940}, 13224},
		// float64 rounding puts 48000*0.009 and 48000*0.0045 just below 432 and 216
		{48000, Timing{HorizontalSync: 431, SyncPorch: 144, Porch: 72, Separator: 215, Luma: 4224, Chroma: 2112}, 14396},
	}

	for _, tt := range tests {
		got := NewTiming(tt.rate)
		if got != tt.want {
			t.Errorf("NewTiming(%d) = %+v, want %+v", tt.rate, got, tt.want)
		}
		if got.PairLen() != tt.pair {
			t.Errorf("NewTiming(%d).PairLen() = %d, want %d", tt.rate, got.PairLen(), tt.pair)
		}
	}
}

func TestTicksMonotonic(t *testing.T) {
	durations := []float64{
		HorizontalSyncSeconds, SyncPorchSeconds, PorchSeconds,
		SeparatorSeconds, LumaSeconds, ChromaSeconds, LeaderSeconds, 0.01, 0.03,
	}

	for _, d := range durations {
		prev := Ticks(1, d)
		for rate := 2; rate <= 96000; rate++ {
			cur := Ticks(rate, d)
			if cur < prev {
				t.Fatalf("Ticks(%d, %v) = %d < Ticks(%d, %v) = %d", rate, d, cur, rate-1, d, prev)
			}
			prev = cur
		}
	}
}

func TestTicksZero(t *testing.T) {
	if got := Ticks(48000, 0); got != 0 {
		t.Errorf("Ticks(48000, 0) = %d, want 0", got)
	}
	if got := Ticks(0, 0.3); got != 0 {
		t.Errorf("Ticks(0, 0.3) = %d, want 0", got)
	}
}
