// ABOUTME: Audio container package for writing encoded SSTV audio
// ABOUTME: Provides Writer interface and PCM, WAV, FLAC implementations
// Package encode writes mono int16 sample streams to audio containers.
//
// Supports: raw PCM (16-bit and 24-bit little-endian), WAV, FLAC
//
// Writers never close their destination; Close only finalises the
// container (WAV sizes, FLAC StreamInfo).
//
// Example:
//
//	w, err := encode.New(file, audio.Mono(audio.CodecWAV, 48000, 16))
//	err = w.Write(samples)
//	err = w.Close()
package encode
