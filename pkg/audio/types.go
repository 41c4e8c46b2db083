// ABOUTME: Audio type definitions
// ABOUTME: Describes output formats and converts 16-bit samples between widths
package audio

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Supported container codecs
const (
	CodecPCM  = "pcm"
	CodecWAV  = "wav"
	CodecFLAC = "flac"
)

// Format describes an output audio stream
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// Mono returns a single channel format, the only layout SSTV uses
func Mono(codec string, sampleRate, bitDepth int) Format {
	return Format{
		Codec:      codec,
		SampleRate: sampleRate,
		Channels:   1,
		BitDepth:   bitDepth,
	}
}

// Validate checks that the format can be written
func (f Format) Validate() error {
	switch f.Codec {
	case CodecPCM, CodecWAV, CodecFLAC:
	default:
		return fmt.Errorf("unsupported codec: %q (supported: pcm, wav, flac)", f.Codec)
	}
	if f.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", f.SampleRate)
	}
	if f.Channels != 1 {
		return fmt.Errorf("unsupported channel count: %d (supported: 1)", f.Channels)
	}
	if f.BitDepth != 16 && f.BitDepth != 24 {
		return fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", f.BitDepth)
	}
	return nil
}

// BytesPerSample returns the packed size of one sample
func (f Format) BytesPerSample() int {
	return f.BitDepth / 8
}

// Duration returns the playback time of n samples per channel
func (f Format) Duration(n int) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(f.SampleRate)
}

// CodecForPath guesses the codec from a file extension
func CodecForPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return CodecWAV, true
	case ".flac":
		return CodecFLAC, true
	case ".pcm", ".raw", ".s16", ".s16le":
		return CodecPCM, true
	}
	return "", false
}

// Scale widens a 16-bit sample to bitDepth, left-justified
func Scale(sample int16, bitDepth int) int32 {
	if bitDepth == 24 {
		return SampleFromInt16(sample)
	}
	return int32(sample)
}

// Unscale narrows a bitDepth sample back to 16 bits
func Unscale(sample int32, bitDepth int) int16 {
	if bitDepth == 24 {
		return int16(sample >> 8)
	}
	return int16(sample)
}

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	// Left-shift to position 16-bit value in upper bits
	return int32(sample) << 8
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	// Take lower 24 bits, pack little-endian
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	// Reconstruct 24-bit value and sign-extend to 32-bit
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF // Set upper 8 bits to 1 for negative values
	}
	return val
}
