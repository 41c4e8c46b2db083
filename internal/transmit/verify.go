// ABOUTME: Read-back verification of a written transmission
// ABOUTME: Compares decoded samples against a fresh sequential encode
package transmit

import (
	"fmt"

	"github.com/killertux/robot36-encoder/pkg/robot36"
)

// Verify checks samples against the encoder's sequential output. tolerance
// is the largest allowed per-sample difference; parallel renders may differ
// by one LSB from phase rounding.
func Verify(enc *robot36.Encoder, samples []int16, tolerance int) error {
	if len(samples) != enc.Len() {
		return fmt.Errorf("sample count mismatch: got %d, want %d", len(samples), enc.Len())
	}

	i := 0
	for want := range enc.Encode() {
		if d := int(samples[i]) - int(want); d < -tolerance || d > tolerance {
			return fmt.Errorf("sample %d differs: got %d, want %d", i, samples[i], want)
		}
		i++
	}
	return nil
}

// Tolerance returns the Verify tolerance for the job's render mode
func (j *Job) Tolerance() int {
	if j.opts.Parallel {
		return 1
	}
	return 0
}
