package meshopt

import "math"

// QuantizeUnorm clamps v to [0,1] and quantizes it to an unsigned
// fixed-point value with the given bit width (spec §4.8).
func QuantizeUnorm(v float32, bits int) int32 {
	scale := float32((int32(1) << uint(bits)) - 1)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int32(v*scale + 0.5)
}

// QuantizeSnorm clamps v to [-1,1] and quantizes it to a signed
// fixed-point value with the given bit width, rounding half away from
// zero (spec §4.8).
func QuantizeSnorm(v float32, bits int) int32 {
	scale := float32((int32(1) << uint(bits-1)) - 1)
	round := float32(0.5)
	if v < 0 {
		round = -0.5
	}
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	return int32(v*scale + round)
}

// QuantizeHalf converts an IEEE-754 single-precision float to an
// IEEE-754-ish half precision bit pattern (spec §4.8): sign preserved,
// magnitudes below 2^-14 flush to zero, magnitudes >= 2^16 saturate to
// signed infinity (0x7c00), and NaN becomes the canonical quiet NaN
// 0x7e00 with its sign dropped.
func QuantizeHalf(v float32) uint16 {
	ui := math.Float32bits(v)

	s := int32((ui >> 16) & 0x8000)
	em := int32(ui & 0x7fffffff)

	h := (em - (112 << 23) + (1 << 12)) >> 13
	if em < (113 << 23) {
		h = 0
	}
	if em >= (143 << 23) {
		h = 0x7c00
	}
	if em > (255 << 23) {
		h = 0x7e00
		s = 0
	}

	return uint16(s | h)
}
