// ABOUTME: Encoder and Writer interface definitions
// ABOUTME: Common interfaces for turning int16 samples into container bytes
package encode

import (
	"fmt"
	"io"

	"github.com/killertux/robot36-encoder/pkg/audio"
)

// Encoder encodes PCM int16 samples to wire bytes
type Encoder interface {
	// Encode converts PCM samples to encoded audio data
	Encode(samples []int16) ([]byte, error)

	// Close releases encoder resources
	Close() error
}

// Writer streams samples into a container on an underlying io.Writer.
// Close finalises the container but never closes the destination.
type Writer interface {
	// Write appends samples to the output
	Write(samples []int16) error

	// Close flushes buffered data and completes headers
	Close() error
}

// New returns the Writer for format.Codec. WAV needs an io.WriteSeeker;
// FLAC rewrites its stream header when the destination is seekable.
func New(w io.Writer, format audio.Format) (Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	switch format.Codec {
	case audio.CodecPCM:
		return NewPCMWriter(w, format)
	case audio.CodecWAV:
		ws, ok := w.(io.WriteSeeker)
		if !ok {
			return nil, fmt.Errorf("wav output requires a seekable destination")
		}
		return NewWAV(ws, format)
	case audio.CodecFLAC:
		return NewFLAC(w, format)
	}

	return nil, fmt.Errorf("unsupported codec: %s", format.Codec)
}
