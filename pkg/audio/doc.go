// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the output Format and sample width conversions
// Package audio provides the output format description shared by the
// container writers in pkg/audio/encode.
//
// The encoder produces signed 16-bit mono samples. This package describes
// how they are stored:
//   - Format: codec (pcm, wav, flac), sample rate, channels, bit depth
//   - Scale: widen a 16-bit sample to 24-bit, left-justified
//   - 24-bit packing helpers for raw PCM
//
// Example:
//
//	format := audio.Mono(audio.CodecWAV, 48000, 16)
//	if err := format.Validate(); err != nil {
//	    return err
//	}
package audio
