// ABOUTME: Encoder application orchestration shared by the binaries
// ABOUTME: Coordinates output, audio writer, encode job and progress display
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/killertux/robot36-encoder/internal/config"
	"github.com/killertux/robot36-encoder/internal/transmit"
	"github.com/killertux/robot36-encoder/internal/ui"
	"github.com/killertux/robot36-encoder/pkg/audio/decode"
	"github.com/killertux/robot36-encoder/pkg/audio/encode"
	"github.com/killertux/robot36-encoder/pkg/robot36"
)

// Stdout is the output name that writes to standard output
const Stdout = "-"

// Options describe one encode
type Options struct {
	Config config.Config
	Input  string // shown in logs and the TUI
	Output string // file path or Stdout
}

// UseTUI reports whether progress goes to the TUI. Writing audio to stdout
// always disables it.
func (o Options) UseTUI() bool {
	return !o.Config.NoTUI && o.Output != Stdout
}

// SetupLogging sends the standard logger to the log file, plus the console
// when the TUI is off. The returned file must be closed by the caller.
func SetupLogging(opts Options) (io.Closer, error) {
	f, err := os.OpenFile(opts.Config.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	if opts.UseTUI() {
		log.SetOutput(f)
	} else if opts.Output == Stdout {
		// stdout carries the audio
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}
	return f, nil
}

// Run encodes img into opts.Output
func Run(ctx context.Context, img *robot36.Image, opts Options) error {
	cfg := opts.Config
	format, err := cfg.AudioFormat(opts.Output)
	if err != nil {
		return err
	}

	job, err := transmit.NewJob(img, format, transmit.Options{
		ChunkSamples: cfg.ChunkSamples,
		Parallel:     cfg.Parallel,
		Workers:      cfg.Workers,
		Debug:        cfg.Debug,
	})
	if err != nil {
		return err
	}

	out, err := openOutput(opts.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	w, err := encode.New(out, format)
	if err != nil {
		return fmt.Errorf("failed to create %s writer: %w", format.Codec, err)
	}

	log.Printf("Encoding %s -> %s (%s, %d Hz, %d-bit, job %s)",
		opts.Input, opts.Output, format.Codec, format.SampleRate, format.BitDepth, job.ID)

	if opts.UseTUI() {
		err = runWithTUI(ctx, job, w, opts)
	} else {
		err = job.Run(ctx, w, logProgress(cfg.Debug))
	}
	if err != nil {
		return err
	}

	if cerr := out.Close(); cerr != nil {
		return fmt.Errorf("failed to close output: %w", cerr)
	}
	log.Printf("Wrote %s (%v of audio)", opts.Output, job.Encoder.Duration())

	if cfg.Verify && opts.Output != Stdout {
		return verify(job, opts.Output)
	}
	return nil
}

func verify(job *transmit.Job, path string) error {
	samples, format, err := decode.ReadFile(path, job.Format)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if format != job.Format {
		return fmt.Errorf("verify: file format %+v, want %+v", format, job.Format)
	}
	if err := transmit.Verify(job.Encoder, samples, job.Tolerance()); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	log.Printf("Verified %d samples in %s", len(samples), path)
	return nil
}

func runWithTUI(ctx context.Context, job *transmit.Job, w encode.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := ui.New()
	t.Update(ui.StatusMsg{
		JobID:  job.ID,
		Input:  opts.Input,
		Output: opts.Output,
		Format: fmt.Sprintf("%s %dHz %d-bit", job.Format.Codec, job.Format.SampleRate, job.Format.BitDepth),
		Total:  job.Encoder.Len(),
	})

	go func() {
		select {
		case <-t.QuitChan():
			log.Printf("Received quit signal from TUI")
			cancel()
		case <-ctx.Done():
		}
	}()

	result := make(chan error, 1)
	go func() {
		err := job.Run(ctx, w, func(p transmit.Progress) {
			t.Update(statusFromProgress(p))
		})
		result <- err
		t.Done(err)
	}()

	if err := t.Run(); err != nil {
		cancel()
		<-result
		return fmt.Errorf("TUI error: %w", err)
	}

	// The TUI can exit on q before the job notices the cancellation
	return <-result
}

func statusFromProgress(p transmit.Progress) ui.StatusMsg {
	msg := ui.StatusMsg{
		Written: p.Written,
		Elapsed: p.Elapsed,
	}
	if p.Segment.Ticks > 0 {
		msg.Segment = p.Segment.Kind.String()
		msg.Row = p.Segment.Row
	}
	return msg
}

// logProgress logs every tenth of the transmission, or every chunk with debug
func logProgress(debug bool) func(transmit.Progress) {
	next := 0.1
	return func(p transmit.Progress) {
		if debug {
			log.Printf("[%s] %d/%d samples, next segment %s row %d",
				p.JobID, p.Written, p.Total, p.Segment.Kind, p.Segment.Row)
			return
		}
		if f := p.Fraction(); f >= next {
			log.Printf("[%s] %3.0f%% (%v)", p.JobID, f*100, p.Elapsed.Round(time.Millisecond))
			for next <= f {
				next += 0.1
			}
		}
	}
}

// output is an audio destination that may or may not be a seekable file
type output interface {
	io.Writer
	Close() error
}

type stdoutOutput struct{ io.Writer }

func (stdoutOutput) Close() error { return nil }

func openOutput(path string) (output, error) {
	if path == Stdout {
		// Hide *os.File so encoders do not try to seek a pipe
		return stdoutOutput{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, nil
}
