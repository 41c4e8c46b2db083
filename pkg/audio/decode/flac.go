// ABOUTME: FLAC audio reader
// ABOUTME: Decodes mono FLAC streams frame by frame with mewkiz/flac
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/killertux/robot36-encoder/pkg/audio"
	"github.com/mewkiz/flac"
)

// ReadFLAC decodes a whole FLAC stream
func ReadFLAC(r io.Reader) ([]int16, audio.Format, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("failed to parse flac header: %w", err)
	}
	defer stream.Close()

	format := audio.Mono(audio.CodecFLAC, int(stream.Info.SampleRate), int(stream.Info.BitsPerSample))
	if stream.Info.NChannels != 1 {
		return nil, format, fmt.Errorf("unsupported channel count: %d (supported: 1)", stream.Info.NChannels)
	}
	if err := format.Validate(); err != nil {
		return nil, format, err
	}

	samples := make([]int16, 0, stream.Info.NSamples)
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, format, fmt.Errorf("flac frame %d: %w", len(samples), err)
		}

		for _, s := range frame.Subframes[0].Samples {
			samples = append(samples, audio.Unscale(s, format.BitDepth))
		}
	}

	return samples, format, nil
}
