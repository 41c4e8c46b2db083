// ABOUTME: Command-line flag binding for the encoder configuration
// ABOUTME: Flags given on the command line override values from the YAML file
package config

import (
	"flag"
)

// Flags binds the shared encoder flags to a FlagSet
type Flags struct {
	fs     *flag.FlagSet
	path   string
	values Config
}

// BindFlags registers the encoder flags on fs. Call Resolve after fs.Parse.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, values: Default()}
	v := &f.values

	fs.StringVar(&f.path, "config", "", "YAML config file")
	fs.IntVar(&v.SampleRate, "rate", v.SampleRate, "Output sample rate in Hz")
	fs.StringVar(&v.Format, "format", v.Format, "Output format: pcm, wav, flac (default: from -out extension)")
	fs.IntVar(&v.BitDepth, "bit-depth", v.BitDepth, "Output bit depth: 16 or 24")
	fs.StringVar(&v.Fit, "fit", v.Fit, "Resize mode for images that are not 320x240: fit, fill, stretch")
	fs.BoolVar(&v.Parallel, "parallel", v.Parallel, "Render the transmission in parallel before writing")
	fs.IntVar(&v.Workers, "workers", v.Workers, "Render workers for -parallel (0 = GOMAXPROCS)")
	fs.IntVar(&v.ChunkSamples, "chunk", v.ChunkSamples, "Samples per output write")
	fs.StringVar(&v.LogFile, "log-file", v.LogFile, "Log file path")
	fs.BoolVar(&v.Debug, "debug", v.Debug, "Enable debug logging")
	fs.BoolVar(&v.NoTUI, "no-tui", v.NoTUI, "Disable TUI, use streaming logs instead")
	fs.BoolVar(&v.Verify, "verify", v.Verify, "Decode the written file and compare it with the encoder output")

	return f
}

// Path returns the -config value
func (f *Flags) Path() string {
	return f.path
}

// Resolve loads the config file if one was given, applies every flag that was
// set explicitly and validates the result.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.path != "" {
		loaded, err := Load(f.path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "rate":
			cfg.SampleRate = f.values.SampleRate
		case "format":
			cfg.Format = f.values.Format
		case "bit-depth":
			cfg.BitDepth = f.values.BitDepth
		case "fit":
			cfg.Fit = f.values.Fit
		case "parallel":
			cfg.Parallel = f.values.Parallel
		case "workers":
			cfg.Workers = f.values.Workers
		case "chunk":
			cfg.ChunkSamples = f.values.ChunkSamples
		case "log-file":
			cfg.LogFile = f.values.LogFile
		case "debug":
			cfg.Debug = f.values.Debug
		case "no-tui":
			cfg.NoTUI = f.values.NoTUI
		case "verify":
			cfg.Verify = f.values.Verify
		}
	})

	return cfg, cfg.Validate()
}
