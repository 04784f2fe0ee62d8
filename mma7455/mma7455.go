// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

const (
	// I2CAddr is the factory programmed I²C address of the device.
	I2CAddr uint16 = 0x1D
	// DeviceID is the content of the WHOAMI register.
	DeviceID byte = 0x55
)

// DefaultOpts verifies the device and leaves it measuring at ±2g.
var DefaultOpts = Opts{
	ExpectedDeviceID: DeviceID,
	Sensitivity:      S2G,
	Mode:             Measurement,
}

// Opts holds the configuration applied by New.
type Opts struct {
	// ExpectedDeviceID is compared against WHOAMI. 0 skips the check.
	ExpectedDeviceID byte
	// Reset writes the default value to every configuration register before
	// anything else.
	Reset bool
	// Sensitivity of the device (2g, 4g, 8g).
	Sensitivity Sensitivity
	// Mode to leave the device in.
	Mode Mode
	// Debug, if set, traces every register access.
	Debug DebugF
}

// DeviceIDError is returned by New when WHOAMI doesn't match
// Opts.ExpectedDeviceID.
type DeviceIDError struct {
	Want byte
	Got  byte
}

func (e *DeviceIDError) Error() string {
	return fmt.Sprintf("mma7455: wrong device connected, WHOAMI is %#02x, expected %#02x", e.Got, e.Want)
}

// ErrUnknownSensitivity is returned by the g scaled reads when the
// sensitivity bits hold the reserved encoding.
var ErrUnknownSensitivity = errors.New("mma7455: unknown sensitivity")

// Dev is a driver for the MMA7455 accelerometer.
//
// Dev holds no register state: every accessor talks to the device. It is
// not safe for concurrent use.
type Dev struct {
	name string
	t    transport
}

// New returns a Dev using the register access provided by bus.
func New(bus Bus, o *Opts) (*Dev, error) {
	if o == nil {
		o = &DefaultOpts
	}
	debug := o.Debug
	if debug == nil {
		debug = noop
	}
	d := &Dev{name: "MMA7455", t: transport{bus: bus, debug: debug}}
	if err := d.init(o); err != nil {
		return nil, err
	}
	return d, nil
}

// NewI2C returns a Dev connected over I²C at addr, usually I2CAddr.
func NewI2C(b i2c.Bus, addr uint16, o *Opts) (*Dev, error) {
	return New(newI2CBus(b, addr), o)
}

// NewSpi returns a Dev connected over 4-wire SPI.
func NewSpi(p spi.Port, o *Opts) (*Dev, error) {
	s, err := newSpiBus(p)
	if err != nil {
		return nil, err
	}
	return New(s, o)
}

func (d *Dev) init(o *Opts) error {
	if o.ExpectedDeviceID != 0 {
		id, err := d.DeviceID()
		if err != nil {
			return err
		}
		if id != o.ExpectedDeviceID {
			return &DeviceIDError{Want: o.ExpectedDeviceID, Got: id}
		}
	}
	if o.Reset {
		if err := d.Reset(); err != nil {
			return err
		}
	}
	if o.Sensitivity != 0 {
		if err := d.SetSensitivity(o.Sensitivity); err != nil {
			return err
		}
	}
	return d.SetMode(o.Mode)
}

func (d *Dev) String() string {
	return d.name
}

// DeviceID returns the content of the WHOAMI register.
func (d *Dev) DeviceID() (byte, error) {
	return d.t.readByte(regWHOAMI)
}

// Reset writes the power-on value to every configuration register, in a
// fixed order. Offsets are zeroed, the device goes to standby and latched
// interrupts are cleared.
func (d *Dev) Reset() error {
	for _, w := range resetSequence {
		if err := d.t.writeByte(w.reg, w.val); err != nil {
			return err
		}
	}
	return nil
}

// Halt implements conn.Resource.
//
// It puts the device in standby.
func (d *Dev) Halt() error {
	return d.SetMode(Standby)
}

var _ conn.Resource = &Dev{}
