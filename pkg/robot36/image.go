// ABOUTME: Immutable 320x240 YUV image consumed by the encoder
// ABOUTME: Built from flat RGB bytes or a decoded image.Image of the same size
package robot36

import (
	"image"
	"image/color"
)

// Fixed protocol resolution.
const (
	Width     = 320
	Height    = 240
	Pixels    = Width * Height
	RGBLength = Pixels * 3
)

type yuv struct {
	y Y
	u U
	v V
}

// Image is a row-major grid of YUV pixels. It is never modified after
// construction, so one Image may back any number of encoders.
type Image struct {
	pix []yuv
}

// FromRGB builds an Image from consecutive R,G,B bytes in row-major order.
// The original RGB values are not retained.
func FromRGB(buf []byte) (*Image, error) {
	if len(buf) != RGBLength {
		return nil, &DimensionError{Err: ErrInvalidVectorSize, Actual: len(buf), Expected: RGBLength}
	}

	pix := make([]yuv, Pixels)
	for i := range pix {
		o := i * 3
		y, u, v := RGBToYUV(R(buf[o]), G(buf[o+1]), B(buf[o+2]))
		pix[i] = yuv{y: y, u: u, v: v}
	}

	return &Image{pix: pix}, nil
}

// FromImage builds an Image from an already decoded image. The image must
// already be exactly Width x Height; resizing is the caller's job.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}

	b := src.Bounds()
	if b.Dx() != Width {
		return nil, &DimensionError{Err: ErrInvalidWidth, Actual: b.Dx(), Expected: Width}
	}
	if b.Dy() != Height {
		return nil, &DimensionError{Err: ErrInvalidHeight, Actual: b.Dy(), Expected: Height}
	}

	buf := make([]byte, 0, RGBLength)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			buf = append(buf, c.R, c.G, c.B)
		}
	}

	return FromRGB(buf)
}

// Width returns the number of columns.
func (img *Image) Width() int { return Width }

// Height returns the number of rows.
func (img *Image) Height() int { return Height }

// Y returns the luma of pixel (x,y). It panics with a *BoundsError when the
// coordinate is outside the image.
func (img *Image) Y(x, y int) Y { return img.pixel(x, y).y }

// U returns the blue-difference chroma of pixel (x,y).
func (img *Image) U(x, y int) U { return img.pixel(x, y).u }

// V returns the red-difference chroma of pixel (x,y).
func (img *Image) V(x, y int) V { return img.pixel(x, y).v }

// At is the checked form of the channel accessors.
func (img *Image) At(x, y int) (Y, U, V, error) {
	if !inBounds(x, y) {
		return 0, 0, 0, &BoundsError{X: x, Y: y}
	}
	p := img.pix[y*Width+x]
	return p.y, p.u, p.v, nil
}

func (img *Image) pixel(x, y int) yuv {
	if !inBounds(x, y) {
		panic(&BoundsError{X: x, Y: y})
	}
	return img.pix[y*Width+x]
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
