// ABOUTME: Robot36 SSTV signal synthesis package
// ABOUTME: Turns a 320x240 colour image into a phase-continuous FM waveform
// Package robot36 encodes still images as Robot36 Slow-Scan Television audio.
//
// The package is split along the stages of the transmission:
//   - Color transform: RGB to YUV with fixed BT.601-style coefficients
//   - Image: an immutable 320x240 grid of YUV pixels
//   - Timing: protocol durations converted to per-sample tick counts
//   - Oscillator: a complex rotator that keeps phase across frequency changes
//   - Encoder: VIS header plus line sequencing, producing int16 samples
//
// Resizing images and writing audio containers are left to the caller
// (see pkg/imageio and pkg/audio/encode).
//
// Example:
//
//	img, err := robot36.FromRGB(rgb) // 320*240*3 bytes
//	enc, err := robot36.NewEncoder(img, 48000)
//	for sample := range enc.Encode() {
//	    // write sample
//	}
package robot36
