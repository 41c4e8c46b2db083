// ABOUTME: Tests for the encode job
// ABOUTME: Checks full output, progress reporting, parallel mode and cancellation
package transmit

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/killertux/robot36-encoder/pkg/audio"
	"github.com/killertux/robot36-encoder/pkg/audio/encode"
	"github.com/killertux/robot36-encoder/pkg/robot36"
)

// memWriter records samples and whether Close was called
type memWriter struct {
	samples []int16
	closed  bool
	failAt  int
}

func (m *memWriter) Write(samples []int16) error {
	if m.failAt > 0 && len(m.samples)+len(samples) > m.failAt {
		return errors.New("disk full")
	}
	m.samples = append(m.samples, samples...)
	return nil
}

func (m *memWriter) Close() error {
	m.closed = true
	return nil
}

func testImage(t *testing.T) *robot36.Image {
	t.Helper()
	buf := make([]byte, robot36.RGBLength)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	img, err := robot36.FromRGB(buf)
	if err != nil {
		t.Fatalf("FromRGB() failed: %v", err)
	}
	return img
}

func newJob(t *testing.T, opts Options) *Job {
	t.Helper()
	job, err := NewJob(testImage(t), audio.Mono(audio.CodecPCM, 8000, 16), opts)
	if err != nil {
		t.Fatalf("NewJob() failed: %v", err)
	}
	return job
}

func TestNewJob(t *testing.T) {
	job := newJob(t, Options{ChunkSamples: 1024})

	if _, err := uuid.Parse(job.ID); err != nil {
		t.Errorf("job ID %q is not a UUID: %v", job.ID, err)
	}
	if job.Encoder.Rate() != 8000 {
		t.Errorf("encoder rate = %d, want 8000", job.Encoder.Rate())
	}

	if _, err := NewJob(testImage(t), audio.Mono(audio.CodecPCM, 8000, 16), Options{}); err == nil {
		t.Error("NewJob() accepted a zero chunk size")
	}
	if _, err := NewJob(testImage(t), audio.Mono("ogg", 8000, 16), Options{ChunkSamples: 1}); err == nil {
		t.Error("NewJob() accepted an invalid format")
	}
}

func TestRunWritesWholeTransmission(t *testing.T) {
	job := newJob(t, Options{ChunkSamples: 4000})

	var buf bytes.Buffer
	w, err := encode.New(&buf, job.Format)
	if err != nil {
		t.Fatalf("encode.New() failed: %v", err)
	}

	var reports []Progress
	if err := job.Run(context.Background(), w, func(p Progress) { reports = append(reports, p) }); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if buf.Len() != job.Encoder.Len()*2 {
		t.Fatalf("output = %d bytes, want %d", buf.Len(), job.Encoder.Len()*2)
	}

	i := 0
	for want := range job.Encoder.Encode() {
		got := int16(binary.LittleEndian.Uint16(buf.Bytes()[i*2:]))
		if got != want {
			t.Fatalf("sample %d = %d, want %d", i, got, want)
		}
		i++
	}

	if len(reports) == 0 {
		t.Fatal("no progress reported")
	}
	prev := 0
	for _, p := range reports {
		if p.Written < prev || p.JobID != job.ID || p.Total != job.Encoder.Len() {
			t.Fatalf("bad progress report %+v", p)
		}
		prev = p.Written
	}
	if last := reports[len(reports)-1]; last.Written != last.Total || last.Fraction() != 1 {
		t.Errorf("final progress = %+v", last)
	}
	if reports[0].Segment.Kind != robot36.KindVIS {
		t.Errorf("segment after first chunk = %v, want vis", reports[0].Segment.Kind)
	}
}

func TestRunParallel(t *testing.T) {
	seq := &memWriter{}
	if err := newJob(t, Options{ChunkSamples: 999}).Run(context.Background(), seq, nil); err != nil {
		t.Fatalf("sequential Run() failed: %v", err)
	}

	par := &memWriter{}
	if err := newJob(t, Options{ChunkSamples: 4096, Parallel: true, Workers: 3}).Run(context.Background(), par, nil); err != nil {
		t.Fatalf("parallel Run() failed: %v", err)
	}

	if len(seq.samples) != len(par.samples) {
		t.Fatalf("lengths differ: %d vs %d", len(seq.samples), len(par.samples))
	}
	for i := range seq.samples {
		if d := int(seq.samples[i]) - int(par.samples[i]); d < -1 || d > 1 {
			t.Fatalf("sample %d: sequential %d, parallel %d", i, seq.samples[i], par.samples[i])
		}
	}
	if !seq.closed || !par.closed {
		t.Error("Run() did not close the writer")
	}
}

func TestRunCancelled(t *testing.T) {
	job := newJob(t, Options{ChunkSamples: 1000})
	ctx, cancel := context.WithCancel(context.Background())

	w := &memWriter{}
	calls := 0
	err := job.Run(ctx, w, func(p Progress) {
		calls++
		if calls == 3 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if len(w.samples) != 3000 {
		t.Errorf("wrote %d samples before cancelling, want 3000", len(w.samples))
	}
	if !w.closed {
		t.Error("writer not closed after cancellation")
	}
}

func TestRunWriteError(t *testing.T) {
	job := newJob(t, Options{ChunkSamples: 1000})
	w := &memWriter{failAt: 2500}

	err := job.Run(context.Background(), w, nil)
	if err == nil {
		t.Fatal("Run() succeeded despite write failure")
	}
	if !w.closed {
		t.Error("writer not closed after failure")
	}
}

func TestProgressFraction(t *testing.T) {
	if got := (Progress{}).Fraction(); got != 0 {
		t.Errorf("empty Fraction() = %v", got)
	}
	if got := (Progress{Written: 1, Total: 4}).Fraction(); got != 0.25 {
		t.Errorf("Fraction() = %v, want 0.25", got)
	}
}
