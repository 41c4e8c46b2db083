// ABOUTME: Audio decoder package for reading transmissions back
// ABOUTME: Provides PCM, WAV and FLAC readers that return int16 samples
// Package decode reads audio written by the encode package.
//
// Supports: raw PCM (16-bit and 24-bit), WAV and FLAC, mono only.
//
// Samples are narrowed back to 16 bits so they compare directly with the
// encoder output.
//
// Example:
//
//	samples, format, err := decode.ReadFile("out.flac", audio.Format{})
package decode
