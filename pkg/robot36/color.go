// ABOUTME: Pixel channel types and RGB to YUV conversion
// ABOUTME: Reproduces the reference float32 coefficients and truncating clamp
package robot36

// Distinct channel types keep RGB and YUV values from being mixed up.
type (
	R uint8
	G uint8
	B uint8
	Y uint8
	U uint8
	V uint8
)

// Coefficients are BT.601 studio-swing values scaled by 1/256.
const (
	yuvScale float32 = 0.003906

	yR float32 = 65.738
	yG float32 = 129.057
	yB float32 = 25.064

	uR float32 = -37.945
	uG float32 = -74.494
	uB float32 = 112.439

	vR float32 = 112.439
	vG float32 = -94.154
	vB float32 = -18.285
)

// RGBToYUV converts one pixel. The result is deterministic and every channel
// is clamped to [0,255] and truncated toward zero.
func RGBToYUV(r R, g G, b B) (Y, U, V) {
	rf, gf, bf := float32(r), float32(g), float32(b)
	y := 16 + mul(yuvScale, dot(yR, yG, yB, rf, gf, bf))
	u := 128 + mul(yuvScale, dot(uR, uG, uB, rf, gf, bf))
	v := 128 + mul(yuvScale, dot(vR, vG, vB, rf, gf, bf))
	return Y(clamp(y)), U(clamp(u)), V(clamp(v))
}

// dot rounds every product to float32 before summing so the compiler cannot
// fuse multiply-adds.
func dot(cr, cg, cb, r, g, b float32) float32 {
	return mul(cr, r) + mul(cg, g) + mul(cb, b)
}

func mul(a, b float32) float32 {
	return float32(a * b)
}

func clamp(x float32) uint8 {
	if x < 0 {
		x = 0
	}
	if x > 255 {
		x = 255
	}
	return uint8(x)
}
