// ABOUTME: PCM audio decoder
// ABOUTME: Decodes 16-bit and 24-bit little-endian PCM to int16 samples
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/killertux/robot36-encoder/pkg/audio"
)

// PCMDecoder decodes PCM audio
type PCMDecoder struct {
	bitDepth int
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (*PCMDecoder, error) {
	if format.Codec != audio.CodecPCM {
		return nil, fmt.Errorf("invalid codec for PCM decoder: %s", format.Codec)
	}

	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	return &PCMDecoder{
		bitDepth: format.BitDepth,
	}, nil
}

// Decode converts PCM bytes to samples. A trailing partial sample is ignored.
func (d *PCMDecoder) Decode(data []byte) ([]int16, error) {
	if d.bitDepth == 24 {
		numSamples := len(data) / 3
		samples := make([]int16, numSamples)
		for i := range numSamples {
			b := [3]byte{data[i*3], data[i*3+1], data[i*3+2]}
			samples[i] = audio.Unscale(audio.SampleFrom24Bit(b), 24)
		}
		return samples, nil
	}

	numSamples := len(data) / 2
	samples := make([]int16, numSamples)
	for i := range numSamples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}

// ReadPCM decodes a whole raw stream
func ReadPCM(r io.Reader, format audio.Format) ([]int16, audio.Format, error) {
	dec, err := NewPCM(format)
	if err != nil {
		return nil, format, err
	}
	defer dec.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, format, fmt.Errorf("failed to read pcm: %w", err)
	}
	if len(data)%format.BytesPerSample() != 0 {
		return nil, format, fmt.Errorf("pcm stream truncated: %d bytes is not a multiple of %d",
			len(data), format.BytesPerSample())
	}

	samples, err := dec.Decode(data)
	return samples, format, err
}
