// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Mode is the operating mode of the device.
type Mode int

const (
	Standby     Mode = 0
	Measurement Mode = 1
	Level       Mode = 2 // Level detection
	Pulse       Mode = 3 // Pulse detection
	// ModeUnknown is returned by Dev.Mode when the mode bits don't decode.
	ModeUnknown Mode = -1
)

func (m Mode) String() string {
	switch m {
	case Standby:
		return "Standby"
	case Measurement:
		return "Measurement"
	case Level:
		return "Level"
	case Pulse:
		return "Pulse"
	default:
		return "Unknown"
	}
}

// Sensitivity is the full scale range in g.
type Sensitivity int

const (
	S2G Sensitivity = 2 // ±2g, 64 counts/g in 8 bits mode
	S4G Sensitivity = 4 // ±4g, 32 counts/g in 8 bits mode
	S8G Sensitivity = 8 // ±8g, 16 counts/g in 8 bits mode
	// SensitivityUnknown is returned when GLVL holds the reserved encoding.
	SensitivityUnknown Sensitivity = 0
)

// GLVL encoding, not in order of range.
var glvl = map[Sensitivity]int{S8G: 0, S2G: 1, S4G: 2}

func (s Sensitivity) String() string {
	if s == SensitivityUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("%dg", int(s))
}

// SetMode selects the operating mode. Any value other than the four modes
// selects Measurement.
func (d *Dev) SetMode(m Mode) error {
	switch m {
	case Standby, Measurement, Level, Pulse:
	default:
		m = Measurement
	}
	return d.t.writeField(fieldMode, int(m))
}

// Mode returns the current operating mode.
func (d *Dev) Mode() (Mode, error) {
	v, err := d.t.readField(fieldMode)
	if err != nil {
		return ModeUnknown, err
	}
	switch m := Mode(v); m {
	case Standby, Measurement, Level, Pulse:
		return m, nil
	default:
		return ModeUnknown, nil
	}
}

// SetSensitivity selects the measurement range. Any value other than S2G,
// S4G or S8G selects S2G.
func (d *Dev) SetSensitivity(s Sensitivity) error {
	v, ok := glvl[s]
	if !ok {
		v = glvl[S2G]
	}
	return d.t.writeField(fieldGLevel, v)
}

// Sensitivity returns the current measurement range.
func (d *Dev) Sensitivity() (Sensitivity, error) {
	v, err := d.t.readField(fieldGLevel)
	if err != nil {
		return SensitivityUnknown, err
	}
	for s, enc := range glvl {
		if enc == v {
			return s, nil
		}
	}
	return SensitivityUnknown, nil
}

// SetSelfTest enables or disables the self test. The device applies an
// electrostatic force to the Z axis while enabled.
func (d *Dev) SetSelfTest(enable bool) error {
	return d.t.writeField(fieldSelfTest, boolToInt(enable))
}

// EnableInterruptPins sets the DRPD bit of the mode control register. When
// set, data ready is not output on the INT1/DRDY pin.
func (d *Dev) EnableInterruptPins(enable bool) error {
	return d.t.writeField(fieldDRPD, boolToInt(enable))
}

// InterruptMode selects which detection drives INT1 and INT2.
type InterruptMode int

const (
	InterruptLevelPulse             InterruptMode = 0 // INT1 level, INT2 pulse
	InterruptPulseLevel             InterruptMode = 1 // INT1 pulse, INT2 level
	InterruptSinglePulseDoublePulse InterruptMode = 2 // INT1 single pulse, INT2 double pulse
)

// SetInterruptMode routes detections to the interrupt pins. Unknown values
// select InterruptLevelPulse.
func (d *Dev) SetInterruptMode(m InterruptMode) error {
	switch m {
	case InterruptLevelPulse, InterruptPulseLevel, InterruptSinglePulseDoublePulse:
	default:
		m = InterruptLevelPulse
	}
	return d.t.writeField(fieldIntReg, int(m))
}

// SwapInterruptPins exchanges the INT1 and INT2 pins.
func (d *Dev) SwapInterruptPins(swap bool) error {
	return d.t.writeField(fieldIntPin, boolToInt(swap))
}

// Bandwidth is the digital filter band width.
type Bandwidth int

const (
	Bandwidth62_5Hz Bandwidth = 0
	Bandwidth125Hz  Bandwidth = 1
)

// Frequency returns the filter band width.
func (b Bandwidth) Frequency() physic.Frequency {
	if b == Bandwidth125Hz {
		return 125 * physic.Hertz
	}
	return 62500 * physic.MilliHertz
}

func (b Bandwidth) String() string {
	return b.Frequency().String()
}

// SetBandwidth selects the digital filter band width. Unknown values select
// Bandwidth62_5Hz.
func (d *Dev) SetBandwidth(b Bandwidth) error {
	if b != Bandwidth125Hz {
		b = Bandwidth62_5Hz
	}
	return d.t.writeField(fieldDFBW, int(b))
}

// DriveStrength is the drive strength of the SDA/SDO pin.
type DriveStrength int

const (
	DriveStandard DriveStrength = 0
	DriveStrong   DriveStrength = 1
)

// SetDriveStrength selects the SDA/SDO drive strength. Unknown values select
// DriveStandard.
func (d *Dev) SetDriveStrength(s DriveStrength) error {
	if s != DriveStrong {
		s = DriveStandard
	}
	return d.t.writeField(fieldDRVO, int(s))
}

// Status is the content of the STATUS register.
type Status struct {
	DataReady       bool
	DataOverwritten bool
	ParityError     bool
}

// Status reads the STATUS register.
func (d *Dev) Status() (Status, error) {
	b, err := d.t.readByte(regSTATUS)
	if err != nil {
		return Status{}, err
	}
	return Status{
		DataReady:       decodeField(fieldDRDY, b) != 0,
		DataOverwritten: decodeField(fieldDOVR, b) != 0,
		ParityError:     decodeField(fieldPERR, b) != 0,
	}, nil
}
