// ABOUTME: WAV audio reader
// ABOUTME: Decodes mono PCM WAV files with go-audio/wav
package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/killertux/robot36-encoder/pkg/audio"
)

// ReadWAV decodes a whole WAV file
func ReadWAV(r io.ReadSeeker) ([]int16, audio.Format, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, audio.Format{}, fmt.Errorf("not a valid wav file")
	}

	format := audio.Mono(audio.CodecWAV, int(dec.SampleRate), int(dec.BitDepth))
	if dec.NumChans != 1 {
		return nil, format, fmt.Errorf("unsupported channel count: %d (supported: 1)", dec.NumChans)
	}
	if err := format.Validate(); err != nil {
		return nil, format, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, format, fmt.Errorf("failed to read wav data: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = audio.Unscale(int32(s), format.BitDepth)
	}
	return samples, format, nil
}
