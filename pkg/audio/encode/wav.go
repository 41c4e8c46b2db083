// ABOUTME: WAV container writer
// ABOUTME: Streams int16 samples into a RIFF/WAVE file via go-audio/wav
package encode

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/killertux/robot36-encoder/pkg/audio"
)

// wavFormatPCM is the WAVE_FORMAT_PCM tag
const wavFormatPCM = 1

// WAVWriter writes a WAV file. The header sizes are patched on Close, which
// is why the destination must be seekable.
type WAVWriter struct {
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	bitDepth int
}

// NewWAV creates a WAV writer on ws
func NewWAV(ws io.WriteSeeker, format audio.Format) (*WAVWriter, error) {
	if format.Codec != audio.CodecWAV {
		return nil, fmt.Errorf("invalid codec for WAV writer: %s", format.Codec)
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	enc := wav.NewEncoder(ws, format.SampleRate, format.BitDepth, format.Channels, wavFormatPCM)

	return &WAVWriter{
		enc: enc,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: format.Channels,
				SampleRate:  format.SampleRate,
			},
			SourceBitDepth: format.BitDepth,
		},
		bitDepth: format.BitDepth,
	}, nil
}

// Write appends samples to the data chunk
func (w *WAVWriter) Write(samples []int16) error {
	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]
	for i, s := range samples {
		w.buf.Data[i] = int(audio.Scale(s, w.bitDepth))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("wav write failed: %w", err)
	}
	return nil
}

// Close patches the RIFF and data chunk sizes
func (w *WAVWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("wav close failed: %w", err)
	}
	return nil
}
