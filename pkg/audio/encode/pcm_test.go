// ABOUTME: Unit tests for PCM encoder and writer
// ABOUTME: Tests 16-bit and 24-bit little-endian PCM output
package encode

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/killertux/robot36-encoder/pkg/audio"
)

func TestNewPCM(t *testing.T) {
	tests := []struct {
		name        string
		format      audio.Format
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid 16-bit PCM",
			format:  audio.Mono(audio.CodecPCM, 48000, 16),
			wantErr: false,
		},
		{
			name:    "valid 24-bit PCM",
			format:  audio.Mono(audio.CodecPCM, 48000, 24),
			wantErr: false,
		},
		{
			name:        "invalid codec",
			format:      audio.Mono(audio.CodecWAV, 48000, 16),
			wantErr:     true,
			errContains: "invalid codec",
		},
		{
			name:        "unsupported bit depth",
			format:      audio.Mono(audio.CodecPCM, 48000, 32),
			wantErr:     true,
			errContains: "unsupported bit depth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewPCM(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewPCM() expected error, got nil")
				} else if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewPCM() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("NewPCM() unexpected error = %v", err)
			}
			if encoder == nil {
				t.Errorf("NewPCM() returned nil encoder")
			}
		})
	}
}

func TestPCMEncoder_Encode16Bit(t *testing.T) {
	encoder, err := NewPCM(audio.Mono(audio.CodecPCM, 48000, 16))
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []int16{0, 32767, -32768, 0x1234, -0x5678}

	output, err := encoder.Encode(samples)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	if len(output) != len(samples)*2 {
		t.Fatalf("Encode() output size = %d, want %d", len(output), len(samples)*2)
	}

	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(output[i*2:]))
		if got != want {
			t.Errorf("Sample %d: got %d, want %d", i, got, want)
		}
	}
}

func TestPCMEncoder_Encode24Bit(t *testing.T) {
	encoder, err := NewPCM(audio.Mono(audio.CodecPCM, 48000, 24))
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []int16{0, 32767, -32768, 0x1234, -0x5678}

	output, err := encoder.Encode(samples)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	if len(output) != len(samples)*3 {
		t.Fatalf("Encode() output size = %d, want %d", len(output), len(samples)*3)
	}

	for i, want := range samples {
		got := audio.SampleFrom24Bit([3]byte{output[i*3], output[i*3+1], output[i*3+2]})
		if got != int32(want)<<8 {
			t.Errorf("Sample %d: got %d, want %d", i, got, int32(want)<<8)
		}
	}
}

func TestPCMWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewPCMWriter(&buf, audio.Mono(audio.CodecPCM, 8000, 16))
	if err != nil {
		t.Fatalf("NewPCMWriter() failed: %v", err)
	}

	if err := w.Write([]int16{1, -1}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Write([]int16{256}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	want := []byte{0x01, 0x00, 0xFF, 0xFF, 0x00, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("output = % x, want % x", buf.Bytes(), want)
	}
}
