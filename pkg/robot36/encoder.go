// ABOUTME: Robot36 protocol sequencer
// ABOUTME: Lays out VIS header and line segments and drives the oscillator per sample
package robot36

import (
	"fmt"
	"io"
	"iter"
	"time"
)

// Tone frequencies in Hz.
const (
	SyncFrequency          = 1200.0
	SyncPorchFrequency     = 1500.0
	PorchFrequency         = 1900.0
	EvenSeparatorFrequency = 1500.0
	OddSeparatorFrequency  = 2300.0
	BlackFrequency         = 1500.0
	WhiteFrequency         = 2300.0
)

// SegmentKind names a section of the transmission.
type SegmentKind int

const (
	KindLeader SegmentKind = iota
	KindVIS
	KindHorizontalSync
	KindSyncPorch
	KindLuma
	KindSeparator
	KindPorch
	KindChromaV
	KindChromaU
)

func (k SegmentKind) String() string {
	switch k {
	case KindLeader:
		return "leader"
	case KindVIS:
		return "vis"
	case KindHorizontalSync:
		return "hsync"
	case KindSyncPorch:
		return "sync-porch"
	case KindLuma:
		return "luma"
	case KindSeparator:
		return "separator"
	case KindPorch:
		return "porch"
	case KindChromaV:
		return "chroma-v"
	case KindChromaU:
		return "chroma-u"
	}
	return fmt.Sprintf("SegmentKind(%d)", int(k))
}

// Segment is a run of Ticks samples. Tone segments hold Frequency for every
// tick; scan segments (luma, chroma) derive it per tick from image row Row.
type Segment struct {
	Kind      SegmentKind
	Frequency float64
	Ticks     int
	Row       int // -1 for header segments
}

// IsScan reports whether the segment reads pixel data.
func (s Segment) IsScan() bool {
	return s.Kind == KindLuma || s.Kind == KindChromaV || s.Kind == KindChromaU
}

// segmentsPerPair is the number of segments emitted for one row pair.
const segmentsPerPair = 12

// Encoder turns an Image into Robot36 audio at a fixed sample rate. The plan
// is computed once; an Encoder may be traversed any number of times and from
// several goroutines, each traversal using its own Oscillator.
type Encoder struct {
	img       *Image
	rate      int
	timing    Timing
	plan      []Segment
	headerLen int
	length    int
}

// NewEncoder prepares an encoder for img at rate samples per second.
func NewEncoder(img *Image, rate int) (*Encoder, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}

	e := &Encoder{
		img:    img,
		rate:   rate,
		timing: NewTiming(rate),
	}
	e.plan = e.buildPlan()
	for i, s := range e.plan {
		if i < len(visHeader)+1 {
			e.headerLen += s.Ticks
		}
		e.length += s.Ticks
	}

	return e, nil
}

func (e *Encoder) buildPlan() []Segment {
	t := e.timing
	plan := make([]Segment, 0, 1+len(visHeader)+Height/2*segmentsPerPair)

	plan = append(plan, Segment{Kind: KindLeader, Frequency: 0, Ticks: Ticks(e.rate, LeaderSeconds), Row: -1})
	for _, tone := range visHeader {
		plan = append(plan, Segment{Kind: KindVIS, Frequency: tone.Frequency, Ticks: Ticks(e.rate, tone.Seconds), Row: -1})
	}

	for y := 0; y < Height; y += 2 {
		plan = append(plan,
			Segment{Kind: KindHorizontalSync, Frequency: SyncFrequency, Ticks: t.HorizontalSync, Row: y},
			Segment{Kind: KindSyncPorch, Frequency: SyncPorchFrequency, Ticks: t.SyncPorch, Row: y},
			Segment{Kind: KindLuma, Ticks: t.Luma, Row: y},
			Segment{Kind: KindSeparator, Frequency: EvenSeparatorFrequency, Ticks: t.Separator, Row: y},
			Segment{Kind: KindPorch, Frequency: PorchFrequency, Ticks: t.Porch, Row: y},
			Segment{Kind: KindChromaV, Ticks: t.Chroma, Row: y},

			Segment{Kind: KindHorizontalSync, Frequency: SyncFrequency, Ticks: t.HorizontalSync, Row: y + 1},
			Segment{Kind: KindSyncPorch, Frequency: SyncPorchFrequency, Ticks: t.SyncPorch, Row: y + 1},
			Segment{Kind: KindLuma, Ticks: t.Luma, Row: y + 1},
			Segment{Kind: KindSeparator, Frequency: OddSeparatorFrequency, Ticks: t.Separator, Row: y + 1},
			Segment{Kind: KindPorch, Frequency: PorchFrequency, Ticks: t.Porch, Row: y + 1},
			Segment{Kind: KindChromaU, Ticks: t.Chroma, Row: y + 1},
		)
	}

	return plan
}

// Rate returns the output sample rate.
func (e *Encoder) Rate() int { return e.rate }

// Timing returns the segment lengths in use.
func (e *Encoder) Timing() Timing { return e.timing }

// Image returns the encoded image.
func (e *Encoder) Image() *Image { return e.img }

// Segments returns a copy of the transmission plan.
func (e *Encoder) Segments() []Segment {
	plan := make([]Segment, len(e.plan))
	copy(plan, e.plan)
	return plan
}

// Len returns the total number of samples Encode produces.
func (e *Encoder) Len() int { return e.length }

// HeaderLen returns the number of samples in the leader and VIS header.
func (e *Encoder) HeaderLen() int { return e.headerLen }

// PairLen returns the number of samples per row pair.
func (e *Encoder) PairLen() int { return e.timing.PairLen() }

// Duration returns the playback length of the transmission.
func (e *Encoder) Duration() time.Duration {
	return time.Duration(e.length) * time.Second / time.Duration(e.rate)
}

// Frequencies yields the target frequency of every sample in order.
func (e *Encoder) Frequencies() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		c := cursor{enc: e}
		for {
			f, ok := c.next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Encode yields the waveform lazily. Each call starts a new traversal from
// the beginning of the transmission.
func (e *Encoder) Encode() iter.Seq[int16] {
	return func(yield func(int16) bool) {
		s := e.Stream()
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stream returns a pull-style reader positioned at the first sample.
func (e *Encoder) Stream() *Stream {
	return &Stream{
		cur: cursor{enc: e},
		osc: NewOscillator(e.rate),
	}
}

// frequency returns the target frequency of tick within s.
func (e *Encoder) frequency(s Segment, tick int) float64 {
	switch s.Kind {
	case KindLuma:
		x := column(tick, s.Ticks)
		return scanFrequency(uint16(e.img.Y(x, s.Row)))
	case KindChromaV:
		x0 := column(tick, s.Ticks)
		x1 := min(x0+1, Width-1)
		return scanFrequency((uint16(e.img.V(x0, s.Row)) + uint16(e.img.V(x1, s.Row))) / 2)
	case KindChromaU:
		x0 := column(tick, s.Ticks)
		x1 := min(x0+1, Width-1)
		return scanFrequency((uint16(e.img.U(x0, s.Row)) + uint16(e.img.U(x1, s.Row))) / 2)
	}
	return s.Frequency
}

// column maps a scan tick onto a source column, truncating.
func column(tick, ticks int) int {
	return int(float64(Width-1) * float64(tick) / float64(ticks))
}

// scanFrequency maps a channel level onto the 1500-2300 Hz video band.
func scanFrequency(level uint16) float64 {
	return BlackFrequency + (WhiteFrequency-BlackFrequency)*float64(level)/255
}

// cursor walks the plan one tick at a time.
type cursor struct {
	enc  *Encoder
	seg  int
	tick int
	pos  int
}

func (c *cursor) next() (float64, bool) {
	plan := c.enc.plan
	for c.seg < len(plan) {
		s := plan[c.seg]
		if c.tick < s.Ticks {
			f := c.enc.frequency(s, c.tick)
			c.tick++
			c.pos++
			return f, true
		}
		c.seg++
		c.tick = 0
	}
	return 0, false
}

// Stream reads samples one at a time or in blocks. Stopping early is safe;
// what has been read is a valid prefix of the transmission.
type Stream struct {
	cur cursor
	osc *Oscillator
}

// Next returns the next sample, or false once the transmission is complete.
func (s *Stream) Next() (int16, bool) {
	f, ok := s.cur.next()
	if !ok {
		return 0, false
	}
	return s.osc.Tick(f), true
}

// Read fills samples and returns the count written. It returns io.EOF once
// every sample has been read.
func (s *Stream) Read(samples []int16) (int, error) {
	if s.Remaining() == 0 {
		return 0, io.EOF
	}

	n := 0
	for n < len(samples) {
		v, ok := s.Next()
		if !ok {
			break
		}
		samples[n] = v
		n++
	}
	return n, nil
}

// Position returns the number of samples produced so far.
func (s *Stream) Position() int { return s.cur.pos }

// Remaining returns the number of samples still to come.
func (s *Stream) Remaining() int { return s.cur.enc.length - s.cur.pos }

// Segment returns the segment the next sample belongs to, or false at the end.
func (s *Stream) Segment() (Segment, bool) {
	plan := s.cur.enc.plan
	seg, tick := s.cur.seg, s.cur.tick
	for seg < len(plan) && tick >= plan[seg].Ticks {
		seg++
		tick = 0
	}
	if seg >= len(plan) {
		return Segment{}, false
	}
	return plan[seg], true
}
