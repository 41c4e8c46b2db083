// ABOUTME: Tests for audio types
// ABOUTME: Tests sample conversion functions
package audio

import (
	"strings"
	"testing"
	"time"
)

func TestSampleFromInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int16
		expected int32
	}{
		{"zero", 0, 0},
		{"positive", 100, 100 << 8},
		{"negative", -100, -100 << 8},
		{"max", 32767, 32767 << 8},
		{"min", -32768, -32768 << 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSampleTo24Bit(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected [3]byte
	}{
		{"zero", 0, [3]byte{0, 0, 0}},
		{"positive", 0x123456, [3]byte{0x56, 0x34, 0x12}},
		{"negative", -256, [3]byte{0x00, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleTo24Bit(tt.input)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSampleFrom24Bit(t *testing.T) {
	tests := []struct {
		name     string
		input    [3]byte
		expected int32
	}{
		{"zero", [3]byte{0, 0, 0}, 0},
		{"positive", [3]byte{0x56, 0x34, 0x12}, 0x123456},
		{"negative", [3]byte{0x00, 0xFF, 0xFF}, -256},
		{"max positive", [3]byte{0xFF, 0xFF, 0x7F}, Max24Bit},
		{"max negative", [3]byte{0x00, 0x00, 0x80}, Min24Bit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFrom24Bit(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestRoundTrip16BitThrough24BitPacking(t *testing.T) {
	// 16-bit samples widened for 24-bit output keep their value in the top bytes
	samples := []int16{0, 100, -100, 1000, -1000, 32767, -32768}

	for _, original := range samples {
		packed := SampleTo24Bit(Scale(original, 24))
		result := SampleFrom24Bit(packed) >> 8
		if int16(result) != original {
			t.Errorf("round-trip failed: %d -> %v -> %d", original, packed, result)
		}
	}
}

func TestRoundTrip24Bit(t *testing.T) {
	// Test that 24-bit samples survive round-trip conversion
	samples := []int32{0, 100000, -100000, Max24Bit, Min24Bit}

	for _, original := range samples {
		bytes := SampleTo24Bit(original)
		result := SampleFrom24Bit(bytes)
		// Mask to 24-bit for comparison
		expected := original & 0xFFFFFF
		if expected&0x800000 != 0 {
			expected |= ^0xFFFFFF
		}
		if result != expected {
			t.Errorf("round-trip failed: %d -> %v -> %d (expected %d)", original, bytes, result, expected)
		}
	}
}

func TestFormatValidate(t *testing.T) {
	tests := []struct {
		name        string
		format      Format
		wantErr     bool
		errContains string
	}{
		{"wav 16-bit", Mono(CodecWAV, 48000, 16), false, ""},
		{"flac 24-bit", Mono(CodecFLAC, 44100, 24), false, ""},
		{"pcm 16-bit", Mono(CodecPCM, 8000, 16), false, ""},
		{"unknown codec", Mono("opus", 48000, 16), true, "unsupported codec"},
		{"zero rate", Mono(CodecWAV, 0, 16), true, "invalid sample rate"},
		{"stereo", Format{Codec: CodecWAV, SampleRate: 48000, Channels: 2, BitDepth: 16}, true, "channel count"},
		{"32-bit", Mono(CodecWAV, 48000, 32), true, "unsupported bit depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	f := Mono(CodecWAV, 48000, 16)
	if got := f.Duration(1785600); got != 37200*time.Millisecond {
		t.Errorf("Duration() = %v, want 37.2s", got)
	}
	if got := (Format{}).Duration(100); got != 0 {
		t.Errorf("Duration() with zero rate = %v, want 0", got)
	}
	if got := f.BytesPerSample(); got != 2 {
		t.Errorf("BytesPerSample() = %d, want 2", got)
	}
}

func TestCodecForPath(t *testing.T) {
	tests := []struct {
		path  string
		codec string
		ok    bool
	}{
		{"out.wav", CodecWAV, true},
		{"OUT.WAV", CodecWAV, true},
		{"/tmp/x.flac", CodecFLAC, true},
		{"x.raw", CodecPCM, true},
		{"x.s16le", CodecPCM, true},
		{"x.mp3", "", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		codec, ok := CodecForPath(tt.path)
		if codec != tt.codec || ok != tt.ok {
			t.Errorf("CodecForPath(%q) = %q, %v, want %q, %v", tt.path, codec, ok, tt.codec, tt.ok)
		}
	}
}

func TestScale(t *testing.T) {
	if got := Scale(-100, 16); got != -100 {
		t.Errorf("Scale(-100, 16) = %d", got)
	}
	if got := Scale(-100, 24); got != -100<<8 {
		t.Errorf("Scale(-100, 24) = %d", got)
	}
}

func TestUnscale(t *testing.T) {
	for _, s := range []int16{0, 1, -1, 32767, -32768, 12345} {
		for _, depth := range []int{16, 24} {
			if got := Unscale(Scale(s, depth), depth); got != s {
				t.Errorf("Unscale(Scale(%d, %d)) = %d", s, depth, got)
			}
		}
	}
}
