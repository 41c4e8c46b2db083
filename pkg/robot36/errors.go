// ABOUTME: Error values returned by image construction and encoding
// ABOUTME: Sentinels wrapped in typed errors carrying actual and expected values
package robot36

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVectorSize = errors.New("invalid image size")
	ErrInvalidWidth      = errors.New("invalid width")
	ErrInvalidHeight     = errors.New("invalid height")
	ErrOutOfBounds       = errors.New("pixel out of bounds")
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrNilImage          = errors.New("nil image")
)

// DimensionError reports a rejected input shape. Err is one of
// ErrInvalidVectorSize, ErrInvalidWidth or ErrInvalidHeight.
type DimensionError struct {
	Err      error
	Actual   int
	Expected int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v %d, should be %d", e.Err, e.Actual, e.Expected)
}

func (e *DimensionError) Unwrap() error {
	return e.Err
}

// BoundsError reports a pixel lookup outside the image.
type BoundsError struct {
	X, Y int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside %dx%d", ErrOutOfBounds, e.X, e.Y, Width, Height)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
