// ABOUTME: Entry point for the Robot36 test card generator
// ABOUTME: Encodes a built-in colour bar card, optionally saving it as PNG
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/killertux/robot36-encoder/internal/app"
	"github.com/killertux/robot36-encoder/internal/config"
	"github.com/killertux/robot36-encoder/internal/version"
	"github.com/killertux/robot36-encoder/pkg/robot36"
)

var (
	output      = flag.String("out", "testcard.wav", "Output audio file (.wav, .flac, .pcm) or - for raw PCM on stdout")
	pngPath     = flag.String("png", "", "Also save the card as a PNG")
	showVersion = flag.Bool("version", false, "Print version and exit")
	cfgFlags    = config.BindFlags(flag.CommandLine)
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s-testcard %s\n", version.Product, version.Version)
		return
	}

	cfg, err := cfgFlags.Resolve()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	opts := app.Options{Config: cfg, Input: "test card", Output: *output}

	logCloser, err := app.SetupLogging(opts)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logCloser.Close()

	card := testCard()
	if *pngPath != "" {
		if err := savePNG(*pngPath, card); err != nil {
			log.Fatalf("Failed to save PNG: %v", err)
		}
		log.Printf("Saved test card to %s", *pngPath)
	}

	img, err := robot36.FromImage(card)
	if err != nil {
		log.Fatalf("Failed to convert test card: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

func savePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
