// ABOUTME: Round-trip tests for the file readers
// ABOUTME: Writes each container with the encode package and reads it back
package decode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/killertux/robot36-encoder/pkg/audio"
	"github.com/killertux/robot36-encoder/pkg/audio/encode"
)

func testSamples() []int16 {
	samples := make([]int16, 10000)
	for i := range samples {
		samples[i] = int16(i*37 - 16000)
	}
	samples[0] = -32768
	samples[1] = 32767
	return samples
}

func writeFile(t *testing.T, name string, format audio.Format, samples []int16) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	w, err := encode.New(f, format)
	if err != nil {
		t.Fatalf("encode.New() failed: %v", err)
	}
	// Uneven writes exercise the FLAC block buffering
	if err := w.Write(samples[:1234]); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Write(samples[1234:]); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	return path
}

func TestReadFileRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		codec string
		depth int
	}{
		{"pcm16", "a.pcm", audio.CodecPCM, 16},
		{"pcm24", "a.raw", audio.CodecPCM, 24},
		{"wav16", "a.wav", audio.CodecWAV, 16},
		{"wav24", "a.wav", audio.CodecWAV, 24},
		{"flac16", "a.flac", audio.CodecFLAC, 16},
		{"flac24", "a.flac", audio.CodecFLAC, 24},
	}

	want := testSamples()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := audio.Mono(tt.codec, 11025, tt.depth)
			path := writeFile(t, tt.file, format, want)

			got, gotFormat, err := ReadFile(path, audio.Mono("", 11025, tt.depth))
			if err != nil {
				t.Fatalf("ReadFile() failed: %v", err)
			}

			if gotFormat != format {
				t.Errorf("format = %+v, want %+v", gotFormat, format)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("sample %d = %d, want %d", i, got[i], want[i])
				}
			}
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := ReadFile(filepath.Join(dir, "a.ogg"), audio.Format{}); err == nil {
		t.Error("expected error for unknown extension")
	}
	if _, _, err := ReadFile(filepath.Join(dir, "missing.wav"), audio.Format{}); err == nil {
		t.Error("expected error for missing file")
	}

	junk := filepath.Join(dir, "junk.wav")
	if err := os.WriteFile(junk, []byte("not audio at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadFile(junk, audio.Format{}); err == nil {
		t.Error("expected error for invalid wav")
	}

	junkFLAC := filepath.Join(dir, "junk.flac")
	if err := os.WriteFile(junkFLAC, []byte("not audio at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadFile(junkFLAC, audio.Format{}); err == nil {
		t.Error("expected error for invalid flac")
	}
}
