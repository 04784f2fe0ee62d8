// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

// encodeField shifts v into the bit position of f and masks it.
func encodeField(f field, v int) uint8 {
	return uint8(v<<f.shift) & f.mask
}

// mergeField replaces the bits of f in current with v, leaving every other
// bit untouched.
func mergeField(f field, current uint8, v int) uint8 {
	return current&^f.mask | encodeField(f, v)
}

// decodeField extracts f from b, sign-extending it when f is signed.
func decodeField(f field, b uint8) int {
	v := int((b & f.mask) >> f.shift)
	if f.signed {
		v = signExtend(v, f.width)
	}
	return v
}

// signExtend replicates bit width-1 of v into all the higher bits.
func signExtend(v int, width uint) int {
	low := 1<<width - 1
	v &= low
	if v&(1<<(width-1)) != 0 {
		v |= ^low
	}
	return v
}

// limits returns the smallest and largest value representable in width bits.
func limits(width uint, signed bool) (int, int) {
	if signed {
		return -(1 << (width - 1)), 1<<(width-1) - 1
	}
	return 0, 1<<width - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// encodeSigned encodes v into f after clamping it to the range of f, so the
// sign bit written always agrees with the sign of v.
func encodeSigned(f field, v int) uint8 {
	lo, hi := limits(f.width, f.signed)
	return encodeField(f, clamp(v, lo, hi))
}

// joinFields concatenates lo and hi read from two registers into a single
// value of lo.width+hi.width bits. The value is signed when hi is.
func joinFields(lo, hi field, loB, hiB uint8) int {
	v := int((loB&lo.mask)>>lo.shift) | int((hiB&hi.mask)>>hi.shift)<<lo.width
	if hi.signed {
		v = signExtend(v, lo.width+hi.width)
	}
	return v
}

// splitFields is the inverse of joinFields. v is clamped to the combined
// width first.
func splitFields(lo, hi field, v int) (uint8, uint8) {
	least, most := limits(lo.width+hi.width, hi.signed)
	v = clamp(v, least, most)
	return encodeField(lo, v&(1<<lo.width-1)), encodeField(hi, v>>lo.width&(1<<hi.width-1))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
