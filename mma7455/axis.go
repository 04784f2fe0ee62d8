// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

import "fmt"

// Axis is one of the three measurement axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (a Axis) valid() bool {
	return a >= X && a <= Z
}

const (
	fullScale8  = 256
	fullScale10 = 1024
)

// ReadAxis8 returns the 8 bits sample of an axis. An unknown axis reads 0
// without accessing the device.
func (d *Dev) ReadAxis8(a Axis) (int8, error) {
	if !a.valid() {
		return 0, nil
	}
	v, err := d.t.readField(axes[a].out8)
	return int8(v), err
}

// ReadAxis10 returns the 10 bits sample of an axis, sign-extended to 16 bits.
// An unknown axis reads 0 without accessing the device.
func (d *Dev) ReadAxis10(a Axis) (int16, error) {
	if !a.valid() {
		return 0, nil
	}
	f := axes[a]
	lo, err := d.t.readByte(f.outL.offset)
	if err != nil {
		return 0, err
	}
	hi, err := d.t.readByte(f.outH.offset)
	if err != nil {
		return 0, err
	}
	return int16(joinFields(f.outL, f.outH, lo, hi)), nil
}

// ReadAxis8G returns the 8 bits sample of an axis in g, scaled with the
// sensitivity read from the device.
func (d *Dev) ReadAxis8G(a Axis) (float64, error) {
	if !a.valid() {
		return 0, nil
	}
	s, err := d.scale(fullScale8)
	if err != nil {
		return 0, err
	}
	v, err := d.ReadAxis8(a)
	return float64(v) * s, err
}

// ReadAxis10G returns the 10 bits sample of an axis in g, scaled with the
// sensitivity read from the device.
func (d *Dev) ReadAxis10G(a Axis) (float64, error) {
	if !a.valid() {
		return 0, nil
	}
	s, err := d.scale(fullScale10)
	if err != nil {
		return 0, err
	}
	v, err := d.ReadAxis10(a)
	return float64(v) * s, err
}

// scale returns the g per count for a sample of fullScale counts.
func (d *Dev) scale(fullScale int) (float64, error) {
	s, err := d.Sensitivity()
	if err != nil {
		return 0, err
	}
	if s == SensitivityUnknown {
		return 0, ErrUnknownSensitivity
	}
	return 2 * float64(s) / float64(fullScale), nil
}

// ReadAxes8 reads the 8 bits sample of each axis with a non-nil destination.
// The three reads are independent transactions.
func (d *Dev) ReadAxes8(x, y, z *int8) error {
	for i, p := range [...]*int8{x, y, z} {
		if p == nil {
			continue
		}
		v, err := d.ReadAxis8(Axis(i))
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// ReadAxes10 is ReadAxes8 for the 10 bits samples.
func (d *Dev) ReadAxes10(x, y, z *int16) error {
	for i, p := range [...]*int16{x, y, z} {
		if p == nil {
			continue
		}
		v, err := d.ReadAxis10(Axis(i))
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// ReadAxes8G is ReadAxes8 scaled to g.
func (d *Dev) ReadAxes8G(x, y, z *float64) error {
	return d.readAxesG(d.ReadAxis8G, x, y, z)
}

// ReadAxes10G is ReadAxes10 scaled to g.
func (d *Dev) ReadAxes10G(x, y, z *float64) error {
	return d.readAxesG(d.ReadAxis10G, x, y, z)
}

func (d *Dev) readAxesG(read func(Axis) (float64, error), x, y, z *float64) error {
	for i, p := range [...]*float64{x, y, z} {
		if p == nil {
			continue
		}
		v, err := read(Axis(i))
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// Update reads the 10 bits samples of the three axes.
func (d *Dev) Update() (Acceleration, error) {
	var a Acceleration
	err := d.ReadAxes10(&a.X, &a.Y, &a.Z)
	return a, err
}

// Acceleration represents the 10 bits samples on the three axes.
type Acceleration struct {
	X int16
	Y int16
	Z int16
}

// String returns a string representation of the Acceleration
func (a Acceleration) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", a.X, a.Y, a.Z)
}
