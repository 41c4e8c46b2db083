// ABOUTME: Encode job that streams a Robot36 transmission into an audio writer
// ABOUTME: Writes in fixed-size chunks and reports progress after each one
package transmit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/killertux/robot36-encoder/pkg/audio"
	"github.com/killertux/robot36-encoder/pkg/audio/encode"
	"github.com/killertux/robot36-encoder/pkg/robot36"
)

// Options control how a job runs
type Options struct {
	ChunkSamples int  // samples per Write
	Parallel     bool // render in memory with Encoder.Render first
	Workers      int  // Render goroutines, 0 = GOMAXPROCS
	Debug        bool
}

// Progress is reported after every chunk
type Progress struct {
	JobID   string
	Written int
	Total   int
	Segment robot36.Segment // segment of the next sample
	Elapsed time.Duration
}

// Fraction returns completion in [0,1]
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Written) / float64(p.Total)
}

// Job encodes one image
type Job struct {
	ID      string
	Encoder *robot36.Encoder
	Format  audio.Format
	opts    Options
}

// NewJob prepares an encoder for img at format's sample rate
func NewJob(img *robot36.Image, format audio.Format, opts Options) (*Job, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if opts.ChunkSamples <= 0 {
		return nil, fmt.Errorf("chunk size must be positive: %d", opts.ChunkSamples)
	}

	enc, err := robot36.NewEncoder(img, format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	return &Job{
		ID:      uuid.New().String(),
		Encoder: enc,
		Format:  format,
		opts:    opts,
	}, nil
}

// Run writes the whole transmission to w and closes it. A cancelled context
// stops after the current chunk; the output is then a valid but truncated
// transmission.
func (j *Job) Run(ctx context.Context, w encode.Writer, progress func(Progress)) (err error) {
	start := time.Now()
	log.Printf("[%s] encoding %d samples (%v at %d Hz, %s)",
		j.ID, j.Encoder.Len(), j.Encoder.Duration(), j.Format.SampleRate, j.Format.Codec)

	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to finalise output: %w", cerr))
		}
	}()

	var src sampleSource
	if j.opts.Parallel {
		samples, err := j.Encoder.Render(ctx, j.opts.Workers)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if j.opts.Debug {
			log.Printf("[%s] rendered in %v", j.ID, time.Since(start))
		}
		src = &sliceSource{samples: samples}
	} else {
		src = j.Encoder.Stream()
	}

	buf := make([]int16, j.opts.ChunkSamples)
	written := 0
	for {
		if err := ctx.Err(); err != nil {
			log.Printf("[%s] cancelled after %d of %d samples", j.ID, written, j.Encoder.Len())
			return err
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			if err := w.Write(buf[:n]); err != nil {
				return fmt.Errorf("write failed at sample %d: %w", written, err)
			}
			written += n
		}

		if progress != nil {
			p := Progress{JobID: j.ID, Written: written, Total: j.Encoder.Len(), Elapsed: time.Since(start)}
			if seg, ok := j.segmentAt(src); ok {
				p.Segment = seg
			}
			progress(p)
		}

		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return fmt.Errorf("read failed: %w", rerr)
		}
	}

	log.Printf("[%s] wrote %d samples in %v", j.ID, written, time.Since(start).Round(time.Millisecond))
	return nil
}

func (j *Job) segmentAt(src sampleSource) (robot36.Segment, bool) {
	if s, ok := src.(*robot36.Stream); ok {
		return s.Segment()
	}
	return robot36.Segment{}, false
}

// sampleSource is satisfied by *robot36.Stream and rendered buffers
type sampleSource interface {
	Read(samples []int16) (int, error)
}

type sliceSource struct {
	samples []int16
	pos     int
}

func (s *sliceSource) Read(samples []int16) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, nil
}
