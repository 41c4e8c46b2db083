// ABOUTME: Built-in colour bar test card
// ABOUTME: SMPTE-style bars, a reversed castellation strip and a grey ramp
package main

import (
	"image"
	"image/color"

	"github.com/killertux/robot36-encoder/pkg/robot36"
)

const (
	barLevel    = 191 // 75% bars
	barsHeight  = 160
	stripHeight = 20
)

var (
	bars = []color.RGBA{
		{barLevel, barLevel, barLevel, 255}, // grey
		{barLevel, barLevel, 0, 255},        // yellow
		{0, barLevel, barLevel, 255},        // cyan
		{0, barLevel, 0, 255},               // green
		{barLevel, 0, barLevel, 255},        // magenta
		{barLevel, 0, 0, 255},               // red
		{0, 0, barLevel, 255},               // blue
	}

	black = color.RGBA{0, 0, 0, 255}
)

// stripColour mirrors the bars under every other one
func stripColour(bar int) color.RGBA {
	if bar%2 == 1 {
		return black
	}
	return bars[len(bars)-1-bar]
}

// testCard draws the card at the transmission size
func testCard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, robot36.Width, robot36.Height))

	for y := range robot36.Height {
		for x := range robot36.Width {
			bar := x * len(bars) / robot36.Width

			var c color.RGBA
			switch {
			case y < barsHeight:
				c = bars[bar]
			case y < barsHeight+stripHeight:
				c = stripColour(bar)
			default:
				v := uint8(x * 255 / (robot36.Width - 1))
				c = color.RGBA{v, v, v, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	return img
}
