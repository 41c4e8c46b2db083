// ABOUTME: Parallel rendering of a whole transmission into memory
// ABOUTME: Seeds each row pair with its analytically accumulated phase
package robot36

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// unit is an independently renderable run of segments.
type unit struct {
	first, last int // plan indexes, last exclusive
	offset      int // first sample
	length      int
}

// units splits the plan into the header and one unit per row pair.
func (e *Encoder) units() []unit {
	bounds := []int{0, 1 + len(visHeader)}
	for i := bounds[1] + segmentsPerPair; i <= len(e.plan); i += segmentsPerPair {
		bounds = append(bounds, i)
	}

	units := make([]unit, 0, len(bounds)-1)
	offset := 0
	for i := 0; i+1 < len(bounds); i++ {
		u := unit{first: bounds[i], last: bounds[i+1], offset: offset}
		for _, s := range e.plan[u.first:u.last] {
			u.length += s.Ticks
		}
		offset += u.length
		units = append(units, u)
	}
	return units
}

// cycles sums the frequencies of every tick in u.
func (e *Encoder) cycles(u unit) float64 {
	var sum float64
	for _, s := range e.plan[u.first:u.last] {
		if !s.IsScan() {
			sum += s.Frequency * float64(s.Ticks)
			continue
		}
		for t := 0; t < s.Ticks; t++ {
			sum += e.frequency(s, t)
		}
	}
	return sum
}

func (e *Encoder) renderUnit(u unit, osc *Oscillator, out []int16) {
	n := 0
	for _, s := range e.plan[u.first:u.last] {
		for t := 0; t < s.Ticks; t++ {
			out[n] = osc.Tick(e.frequency(s, t))
			n++
		}
	}
}

// Render produces the complete waveform using up to workers goroutines
// (GOMAXPROCS when workers <= 0). Every row pair starts from the phase the
// sequential oscillator would have reached, computed from the sum of all
// earlier frequencies, so samples agree with Encode to within one LSB.
func (e *Encoder) Render(ctx context.Context, workers int) ([]int16, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	units := e.units()
	sums := make([]float64, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, u := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sums[i] = e.cycles(u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]int16, e.length)

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var acc float64
	for i, u := range units {
		start := advance(InitialState, e.rate, acc)
		acc += sums[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e.renderUnit(u, NewOscillatorAt(e.rate, start), out[u.offset:u.offset+u.length])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
