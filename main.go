// ABOUTME: Entry point for the Robot36 SSTV encoder
// ABOUTME: Parses CLI flags, loads the image and writes the transmission audio
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/killertux/robot36-encoder/internal/app"
	"github.com/killertux/robot36-encoder/internal/config"
	"github.com/killertux/robot36-encoder/internal/version"
	"github.com/killertux/robot36-encoder/pkg/imageio"
)

var (
	input       = flag.String("in", "", "Input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	output      = flag.String("out", "", "Output audio file (.wav, .flac, .pcm) or - for raw PCM on stdout")
	showVersion = flag.Bool("version", false, "Print version and exit")
	cfgFlags    = config.BindFlags(flag.CommandLine)
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.Product, version.Version)
		return
	}

	if *input == "" || *output == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -in image.png -out transmission.wav [flags]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := cfgFlags.Resolve()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	opts := app.Options{Config: cfg, Input: *input, Output: *output}

	logCloser, err := app.SetupLogging(opts)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logCloser.Close()

	log.Printf("Starting %s %s", version.Product, version.Version)
	if cfg.Debug {
		log.Printf("Config: %+v", cfg)
	}

	fit, err := imageio.ParseFit(cfg.Fit)
	if err != nil {
		log.Fatalf("%v", err)
	}

	img, err := imageio.Load(*input, fit)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received %v signal, stopping", sig)
		cancel()
	}()

	if err := app.Run(ctx, img, opts); err != nil {
		log.Printf("Encode failed: %v", err)
		logCloser.Close()
		os.Exit(1)
	}
}
