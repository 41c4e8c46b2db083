// ABOUTME: Decodes image files and scales them to 320x240
// ABOUTME: Supports letterbox, crop and stretch fitting with Catmull-Rom resampling
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/killertux/robot36-encoder/pkg/robot36"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Fit selects how an image with a different aspect ratio is mapped onto
// the 4:3 raster.
type Fit string

const (
	// FitLetterbox scales to fit inside the raster and pads with black
	FitLetterbox Fit = "fit"
	// FitCrop scales to cover the raster and crops the centre
	FitCrop Fit = "fill"
	// FitStretch scales each axis independently
	FitStretch Fit = "stretch"
)

// ParseFit validates a fit mode name
func ParseFit(s string) (Fit, error) {
	switch f := Fit(s); f {
	case FitLetterbox, FitCrop, FitStretch:
		return f, nil
	case "":
		return FitLetterbox, nil
	}
	return "", fmt.Errorf("unknown fit mode: %q (supported: fit, fill, stretch)", s)
}

// Decode reads any registered image format
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Open decodes the image file at path without resizing it
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Load opens path, resizes it with fit and builds the encoder image
func Load(path string, fit Fit) (*robot36.Image, error) {
	src, _, err := Open(path)
	if err != nil {
		return nil, err
	}
	return robot36.FromImage(Resize(src, fit))
}

// Resize scales src onto a new 320x240 RGBA raster
func Resize(src image.Image, fit Fit) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, robot36.Width, robot36.Height))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)

	sr := src.Bounds()
	if sr.Empty() {
		return dst
	}

	dr := dst.Bounds()
	switch fit {
	case FitLetterbox:
		dr = letterbox(sr, dr)
	case FitCrop:
		sr = crop(sr, dr)
	}

	draw.CatmullRom.Scale(dst, dr, src, sr, draw.Src, nil)
	return dst
}

// letterbox returns the largest rectangle with src's aspect ratio centred in dst
func letterbox(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()

	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// crop returns the largest centred part of src with dst's aspect ratio
func crop(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()

	w, h := sw, sw*dh/dw
	if h > sh {
		w, h = sh*dw/dh, sh
	}
	x := src.Min.X + (sw-w)/2
	y := src.Min.Y + (sh-h)/2
	return image.Rect(x, y, x+w, y+h)
}
