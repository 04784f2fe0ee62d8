// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

// LevelPolarity selects the level detection condition.
type LevelPolarity int

const (
	// LevelPositive detects when any enabled axis exceeds the threshold.
	LevelPositive LevelPolarity = 0
	// LevelFreefall detects when all enabled axes are below the threshold.
	LevelFreefall LevelPolarity = 1
)

// PulsePolarity selects the pulse detection condition.
type PulsePolarity int

const (
	PulsePositive PulsePolarity = 0
	PulseNegative PulsePolarity = 1
)

// ThresholdMode selects how the level detection threshold is interpreted.
type ThresholdMode int

const (
	// ThresholdAbsolute compares the magnitude against a 7 bits unsigned
	// limit.
	ThresholdAbsolute ThresholdMode = 0
	// ThresholdSigned compares against an 8 bits signed limit.
	ThresholdSigned ThresholdMode = 1
)

// polarityBit maps a wire level mode number to the bit value. Anything but 1
// is 0.
func polarityBit(mode uint) int {
	if mode == 1 {
		return 1
	}
	return 0
}

// EnableDetectionXYZ enables level and pulse detection per axis.
func (d *Dev) EnableDetectionXYZ(x, y, z bool) error {
	// The CTL1 bits disable detection when set.
	return d.t.writeFields(regCTL1,
		[]field{axes[X].enable, axes[Y].enable, axes[Z].enable},
		[]int{boolToInt(!x), boolToInt(!y), boolToInt(!z)})
}

// SetLevelPolarity selects the level detection condition. Unknown values
// select LevelPositive.
func (d *Dev) SetLevelPolarity(p LevelPolarity) error {
	return d.t.writeField(fieldLDPL, polarityBit(uint(p)))
}

// SetLevelPolarityRaw is SetLevelPolarity for a wire mode number. Values
// other than 0 and 1 select LevelPositive.
func (d *Dev) SetLevelPolarityRaw(mode uint) error {
	return d.t.writeField(fieldLDPL, polarityBit(mode))
}

// SetPulsePolarity selects the pulse detection condition. Unknown values
// select PulsePositive.
func (d *Dev) SetPulsePolarity(p PulsePolarity) error {
	return d.t.writeField(fieldPDPL, polarityBit(uint(p)))
}

// SetPulsePolarityRaw is SetPulsePolarity for a wire mode number. Values
// other than 0 and 1 select PulsePositive.
func (d *Dev) SetPulsePolarityRaw(mode uint) error {
	return d.t.writeField(fieldPDPL, polarityBit(mode))
}

// SetThresholdMode selects how SetLevelThresholdLimit values are stored.
// Unknown values select ThresholdAbsolute.
func (d *Dev) SetThresholdMode(m ThresholdMode) error {
	return d.t.writeField(fieldThOpt, polarityBit(uint(m)))
}

// SetThresholdModeRaw is SetThresholdMode for a wire mode number. Values
// other than 0 and 1 select ThresholdAbsolute.
func (d *Dev) SetThresholdModeRaw(mode uint) error {
	return d.t.writeField(fieldThOpt, polarityBit(mode))
}

// ThresholdMode returns the current threshold mode.
func (d *Dev) ThresholdMode() (ThresholdMode, error) {
	v, err := d.t.readField(fieldThOpt)
	return ThresholdMode(v), err
}

// SetLevelThresholdLimit writes the level detection threshold.
//
// The threshold mode is read first. In ThresholdSigned mode limit is stored
// as 8 bits two's complement. In ThresholdAbsolute mode the sign bit is
// cleared and only the low 7 bits are kept.
func (d *Dev) SetLevelThresholdLimit(limit int8) error {
	m, err := d.ThresholdMode()
	if err != nil {
		return err
	}
	if m == ThresholdSigned {
		return d.t.writeByte(regLDTH, encodeSigned(fieldLDTHSigned, int(limit)))
	}
	return d.t.writeWhole(fieldLDTHAbsolute, int(uint8(limit)))
}

// SetPulseThresholdLimit writes the 7 bits pulse detection threshold.
func (d *Dev) SetPulseThresholdLimit(limit uint8) error {
	return d.t.writeWhole(fieldPDTH, int(limit))
}

// SetPulseDuration writes the pulse duration, in 0.5ms steps.
func (d *Dev) SetPulseDuration(t uint8) error {
	return d.t.writeWhole(fieldPW, int(t))
}

// SetPulseLatency writes the latency between the first pulse and the
// second pulse window, in 1ms steps.
func (d *Dev) SetPulseLatency(t uint8) error {
	return d.t.writeWhole(fieldLT, int(t))
}

// SetPulseDuration2 writes the time window for the second pulse, in 1ms
// steps.
func (d *Dev) SetPulseDuration2(t uint8) error {
	return d.t.writeWhole(fieldTW, int(t))
}

// LevelDetection reports on which axes a level was detected. Nil
// destinations are skipped.
func (d *Dev) LevelDetection(x, y, z *bool) error {
	return d.detection([]*bool{x, y, z}, []field{fieldLDX, fieldLDY, fieldLDZ})
}

// PulseDetection reports on which axes a pulse was detected. Nil
// destinations are skipped.
func (d *Dev) PulseDetection(x, y, z *bool) error {
	return d.detection([]*bool{x, y, z}, []field{fieldPDX, fieldPDY, fieldPDZ})
}

// Interrupt reports which interrupt lines are latched. Nil destinations are
// skipped.
func (d *Dev) Interrupt(int1, int2 *bool) error {
	return d.detection([]*bool{int1, int2}, []field{fieldINT1, fieldINT2})
}

func (d *Dev) detection(dst []*bool, fs []field) error {
	b, err := d.t.readByte(regDETSRC)
	if err != nil {
		return err
	}
	for i, p := range dst {
		if p != nil {
			*p = decodeField(fs[i], b) != 0
		}
	}
	return nil
}

// ClearInterrupt clears both interrupt latches. The clear bits are set then
// released, the device needs both writes.
func (d *Dev) ClearInterrupt() error {
	assert := mergeField(fieldClrInt2, encodeField(fieldClrInt1, 1), 1)
	if err := d.t.writeByte(regINTRST, assert); err != nil {
		return err
	}
	return d.t.writeByte(regINTRST, 0)
}
