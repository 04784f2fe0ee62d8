// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

const (
	// MinOffset and MaxOffset bound the 11 bits offset drift value. Values
	// outside are clamped by SetAxisOffset.
	MinOffset = -1024
	MaxOffset = 1023
)

// SetAxisOffset writes the offset drift compensation of the three axes, as
// 11 bits two's complement values.
func (d *Dev) SetAxisOffset(x, y, z int16) error {
	for i, v := range [...]int16{x, y, z} {
		f := axes[i]
		lo, hi := splitFields(f.offL, f.offH, int(v))
		if err := d.t.writeByte(f.offL.offset, lo); err != nil {
			return err
		}
		if err := d.t.writeByte(f.offH.offset, hi); err != nil {
			return err
		}
	}
	return nil
}

// GetAxisOffset reads the offset drift compensation of the three axes.
//
// All three destinations are required; if any is nil nothing is read. The
// destinations are only written once all six registers were read.
func (d *Dev) GetAxisOffset(x, y, z *int16) error {
	if x == nil || y == nil || z == nil {
		return nil
	}
	var v [3]int16
	for i := range v {
		f := axes[i]
		lo, err := d.t.readByte(f.offL.offset)
		if err != nil {
			return err
		}
		hi, err := d.t.readByte(f.offH.offset)
		if err != nil {
			return err
		}
		v[i] = int16(joinFields(f.offL, f.offH, lo, hi))
	}
	*x, *y, *z = v[0], v[1], v[2]
	return nil
}
