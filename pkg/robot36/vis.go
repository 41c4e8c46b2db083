// ABOUTME: VIS header tone table for Robot36
// ABOUTME: Leader silence, calibration tones and the mode 8 identification code
package robot36

// Tone is a constant frequency held for a duration.
type Tone struct {
	Frequency float64 // Hz
	Seconds   float64
}

// LeaderSeconds of silence precede the calibration header.
const LeaderSeconds = 0.3

// visHeader is the calibration header followed by VIS code 8 sent LSB first
// (1100 Hz = 1, 1300 Hz = 0) with even parity, framed by start/stop bits.
var visHeader = [...]Tone{
	{1900, 0.3},
	{1200, 0.01},
	{1900, 0.3},
	{1200, 0.03}, // start
	{1300, 0.03},
	{1300, 0.03},
	{1300, 0.03},
	{1100, 0.03},
	{1300, 0.03},
	{1300, 0.03},
	{1300, 0.03},
	{1100, 0.03}, // parity
	{1200, 0.03}, // stop
}

// VISHeader returns a copy of the header tone table, excluding the leader.
func VISHeader() []Tone {
	tones := make([]Tone, len(visHeader))
	copy(tones, visHeader[:])
	return tones
}
