// ABOUTME: Encoder configuration loaded from YAML and command-line flags
// ABOUTME: Provides defaults, validation and output format resolution
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/killertux/robot36-encoder/pkg/audio"
	"github.com/killertux/robot36-encoder/pkg/imageio"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSampleRate   = 48000
	DefaultBitDepth     = 16
	DefaultChunkSamples = 4096

	MinSampleRate = 8000
	MaxSampleRate = 192000
)

// Config holds everything needed to run one encode
type Config struct {
	SampleRate   int    `yaml:"sample_rate"`
	Format       string `yaml:"format"` // pcm, wav, flac; empty = from output extension
	BitDepth     int    `yaml:"bit_depth"`
	Fit          string `yaml:"fit"` // fit, fill, stretch
	Parallel     bool   `yaml:"parallel"`
	Workers      int    `yaml:"workers"` // 0 = GOMAXPROCS
	ChunkSamples int    `yaml:"chunk_samples"`
	LogFile      string `yaml:"log_file"`
	Debug        bool   `yaml:"debug"`
	NoTUI        bool   `yaml:"no_tui"`
	Verify       bool   `yaml:"verify"` // read the output back and compare
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		SampleRate:   DefaultSampleRate,
		BitDepth:     DefaultBitDepth,
		Fit:          string(imageio.FitLetterbox),
		ChunkSamples: DefaultChunkSamples,
		LogFile:      "robot36-encoder.log",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and names
func (c Config) Validate() error {
	if c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate {
		return fmt.Errorf("sample rate %d out of range [%d, %d]", c.SampleRate, MinSampleRate, MaxSampleRate)
	}
	if c.BitDepth != 16 && c.BitDepth != 24 {
		return fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", c.BitDepth)
	}
	switch c.Format {
	case "", audio.CodecPCM, audio.CodecWAV, audio.CodecFLAC:
	default:
		return fmt.Errorf("unsupported format: %q (supported: pcm, wav, flac)", c.Format)
	}
	if _, err := imageio.ParseFit(c.Fit); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if c.ChunkSamples <= 0 {
		return fmt.Errorf("chunk_samples must be positive: %d", c.ChunkSamples)
	}
	return nil
}

// AudioFormat resolves the container for output. An explicit Format wins;
// otherwise the extension decides and stdout ("-") defaults to raw PCM.
func (c Config) AudioFormat(output string) (audio.Format, error) {
	codec := c.Format
	if codec == "" {
		if output == "-" {
			codec = audio.CodecPCM
		} else if guessed, ok := audio.CodecForPath(output); ok {
			codec = guessed
		} else {
			return audio.Format{}, fmt.Errorf("cannot infer format from %q, set -format", output)
		}
	}
	if output == "-" && codec == audio.CodecWAV {
		return audio.Format{}, fmt.Errorf("wav output cannot be written to stdout")
	}

	format := audio.Mono(codec, c.SampleRate, c.BitDepth)
	return format, format.Validate()
}
