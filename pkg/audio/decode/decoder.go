// ABOUTME: Decoder interface and file reader
// ABOUTME: Reads transmissions written by the encode package back into int16 samples
package decode

import (
	"fmt"
	"os"

	"github.com/killertux/robot36-encoder/pkg/audio"
)

// Decoder decodes raw audio chunks to 16-bit samples
type Decoder interface {
	// Decode converts encoded audio data to samples
	Decode(data []byte) ([]int16, error)

	// Close releases decoder resources
	Close() error
}

// ReadFile decodes a whole file, choosing the container from the extension.
// Raw PCM has no header so raw supplies its rate and bit depth.
func ReadFile(path string, raw audio.Format) ([]int16, audio.Format, error) {
	codec, ok := audio.CodecForPath(path)
	if !ok {
		return nil, audio.Format{}, fmt.Errorf("unknown audio file type: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch codec {
	case audio.CodecWAV:
		return ReadWAV(f)
	case audio.CodecFLAC:
		return ReadFLAC(f)
	}

	raw.Codec = audio.CodecPCM
	return ReadPCM(f, raw)
}
