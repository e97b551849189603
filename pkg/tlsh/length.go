package tlsh

import "math"

// Logarithmic step constants for the length code, lifted verbatim from the
// reference TLSH implementation: ln(1.5), ln(1.3), ln(1.1).
const (
	log1_5 = 0.4054651
	log1_3 = 0.26236426
	log1_1 = 0.095310180

	lengthBreak1 = 656
	lengthBreak2 = 3199
)

// maxEncodableLength is the largest input length whose raw (pre-modulo)
// length code stays below 255, i.e. the last length Lcode can represent
// without wrapping back onto an already-used code. Inputs longer than
// this are rejected with ErrInputTooLarge rather than silently aliased
// onto a shorter input's code.
var maxEncodableLength = int64(math.Exp((255.0 + 62.5472) * log1_1))

// lengthCode computes the reference TLSH logarithmic length code for an
// input of n bytes. The result is always in 0..254.
func lengthCode(n int) byte {
	var raw float64
	switch {
	case n <= lengthBreak1:
		raw = math.Floor(math.Log(float64(n)) / log1_5)
	case n <= lengthBreak2:
		raw = math.Floor(math.Log(float64(n))/log1_3 - 8.72777)
	default:
		raw = math.Floor(math.Log(float64(n))/log1_1 - 62.5472)
	}
	if raw < 0 {
		raw = 0
	}
	return byte(math.Mod(raw, 255))
}

// lengthDistance is the reference length-code distance: equal or
// off-by-one codes cost their raw difference, anything larger is scaled
// by 12 to dominate the other distance terms for grossly different sizes.
func lengthDistance(a, b byte) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	if d <= 1 {
		return d
	}
	return d * 12
}
