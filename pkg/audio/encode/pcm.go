// ABOUTME: PCM audio encoder
// ABOUTME: Encodes int16 samples to 16-bit or 24-bit little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/killertux/robot36-encoder/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct {
	bitDepth int
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (*PCMEncoder, error) {
	if format.Codec != audio.CodecPCM {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}

	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	return &PCMEncoder{
		bitDepth: format.BitDepth,
	}, nil
}

// Encode converts int16 samples to PCM bytes
func (e *PCMEncoder) Encode(samples []int16) ([]byte, error) {
	if e.bitDepth == 24 {
		// 24-bit PCM: 3 bytes per sample, 16-bit value in the top bytes
		output := make([]byte, len(samples)*3)
		for i, sample := range samples {
			b := audio.SampleTo24Bit(audio.Scale(sample, 24))
			copy(output[i*3:], b[:])
		}
		return output, nil
	}

	// 16-bit PCM: 2 bytes per sample
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(sample))
	}
	return output, nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}

// PCMWriter writes headerless PCM, suitable for piping
type PCMWriter struct {
	w   io.Writer
	enc *PCMEncoder
}

// NewPCMWriter creates a raw PCM writer on w
func NewPCMWriter(w io.Writer, format audio.Format) (*PCMWriter, error) {
	enc, err := NewPCM(format)
	if err != nil {
		return nil, err
	}
	return &PCMWriter{w: w, enc: enc}, nil
}

// Write encodes and writes samples
func (p *PCMWriter) Write(samples []int16) error {
	data, err := p.enc.Encode(samples)
	if err != nil {
		return err
	}
	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("pcm write failed: %w", err)
	}
	return nil
}

// Close releases the encoder
func (p *PCMWriter) Close() error {
	return p.enc.Close()
}
