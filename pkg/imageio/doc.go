// ABOUTME: Image loading package for preparing encoder input
// ABOUTME: Decodes common formats and resizes them to the Robot36 raster
// Package imageio loads picture files and scales them to the fixed 320x240
// raster the Robot36 encoder accepts.
//
// Supported inputs: PNG, JPEG, GIF, BMP, TIFF, WebP.
//
// Example:
//
//	img, err := imageio.Load("photo.jpg", imageio.FitLetterbox)
//	enc, err := robot36.NewEncoder(img, 48000)
package imageio
