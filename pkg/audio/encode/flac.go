// ABOUTME: FLAC container writer
// ABOUTME: Buffers int16 samples into verbatim frames encoded with mewkiz/flac
package encode

import (
	"fmt"
	"io"

	"github.com/killertux/robot36-encoder/pkg/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// FLACBlockSize is the number of samples per frame
const FLACBlockSize = 4096

// FLACWriter writes a FLAC stream. When the destination is seekable the
// StreamInfo block is rewritten on Close with the sample count and MD5.
type FLACWriter struct {
	enc     *flac.Encoder
	format  audio.Format
	pending []int32
	closed  bool
}

// writerOnly hides Close so the flac encoder never closes the destination.
type writerOnly struct{ io.Writer }

// writeSeekerOnly hides Close but keeps Seek for the StreamInfo rewrite.
type writeSeekerOnly struct{ io.WriteSeeker }

// NewFLAC creates a FLAC writer on w
func NewFLAC(w io.Writer, format audio.Format) (*FLACWriter, error) {
	if format.Codec != audio.CodecFLAC {
		return nil, fmt.Errorf("invalid codec for FLAC writer: %s", format.Codec)
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	var dst io.Writer = writerOnly{w}
	if ws, ok := w.(io.WriteSeeker); ok {
		dst = writeSeekerOnly{ws}
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  16,    // adjusted by encoder
		BlockSizeMax:  65535, // adjusted by encoder
		SampleRate:    uint32(format.SampleRate),
		NChannels:     uint8(format.Channels),
		BitsPerSample: uint8(format.BitDepth),
	}

	enc, err := flac.NewEncoder(dst, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create flac encoder: %w", err)
	}

	return &FLACWriter{
		enc:     enc,
		format:  format,
		pending: make([]int32, 0, FLACBlockSize),
	}, nil
}

// Write buffers samples and emits a frame for every full block
func (w *FLACWriter) Write(samples []int16) error {
	if w.closed {
		return fmt.Errorf("flac writer closed")
	}

	for _, s := range samples {
		w.pending = append(w.pending, audio.Scale(s, w.format.BitDepth))
		if len(w.pending) == FLACBlockSize {
			if err := w.flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *FLACWriter) flush() error {
	if len(w.pending) == 0 {
		return nil
	}

	samples := make([]int32, len(w.pending))
	copy(samples, w.pending)
	w.pending = w.pending[:0]

	f := &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: false,
			BlockSize:         uint16(len(samples)),
			SampleRate:        uint32(w.format.SampleRate),
			Channels:          frame.ChannelsMono,
			BitsPerSample:     uint8(w.format.BitDepth),
		},
		Subframes: []*frame.Subframe{{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			Samples:   samples,
			NSamples:  len(samples),
		}},
	}

	if err := w.enc.WriteFrame(f); err != nil {
		return fmt.Errorf("flac frame write failed: %w", err)
	}
	return nil
}

// Close writes the final partial frame and completes the stream
func (w *FLACWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.flush(); err != nil {
		return err
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("flac close failed: %w", err)
	}
	return nil
}
