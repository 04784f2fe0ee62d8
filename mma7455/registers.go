// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

import "fmt"

// register is a register offset on the device.
type register uint8

const (
	regXOUTL  register = 0x00 // 10 bits output value X LSB
	regXOUTH  register = 0x01 // 10 bits output value X MSB
	regYOUTL  register = 0x02 // 10 bits output value Y LSB
	regYOUTH  register = 0x03 // 10 bits output value Y MSB
	regZOUTL  register = 0x04 // 10 bits output value Z LSB
	regZOUTH  register = 0x05 // 10 bits output value Z MSB
	regXOUT8  register = 0x06 // 8 bits output value X
	regYOUT8  register = 0x07 // 8 bits output value Y
	regZOUT8  register = 0x08 // 8 bits output value Z
	regSTATUS register = 0x09 // Status
	regDETSRC register = 0x0A // Detection source
	regTOUT   register = 0x0B // Temperature output
	regI2CAD  register = 0x0D // I²C device address
	regUSRINF register = 0x0E // User information
	regWHOAMI register = 0x0F // Who am I
	regXOFFL  register = 0x10 // Offset drift X LSB
	regXOFFH  register = 0x11 // Offset drift X MSB
	regYOFFL  register = 0x12 // Offset drift Y LSB
	regYOFFH  register = 0x13 // Offset drift Y MSB
	regZOFFL  register = 0x14 // Offset drift Z LSB
	regZOFFH  register = 0x15 // Offset drift Z MSB
	regMCTL   register = 0x16 // Mode control
	regINTRST register = 0x17 // Interrupt latch reset
	regCTL1   register = 0x18 // Control 1
	regCTL2   register = 0x19 // Control 2
	regLDTH   register = 0x1A // Level detection threshold limit
	regPDTH   register = 0x1B // Pulse detection threshold limit
	regPW     register = 0x1C // Pulse duration
	regLT     register = 0x1D // Latency time
	regTW     register = 0x1E // Time window for second pulse
)

var registerNames = map[register]string{
	regXOUTL: "XOUTL", regXOUTH: "XOUTH",
	regYOUTL: "YOUTL", regYOUTH: "YOUTH",
	regZOUTL: "ZOUTL", regZOUTH: "ZOUTH",
	regXOUT8: "XOUT8", regYOUT8: "YOUT8", regZOUT8: "ZOUT8",
	regSTATUS: "STATUS", regDETSRC: "DETSRC", regTOUT: "TOUT",
	regI2CAD: "I2CAD", regUSRINF: "USRINF", regWHOAMI: "WHOAMI",
	regXOFFL: "XOFFL", regXOFFH: "XOFFH",
	regYOFFL: "YOFFL", regYOFFH: "YOFFH",
	regZOFFL: "ZOFFL", regZOFFH: "ZOFFH",
	regMCTL: "MCTL", regINTRST: "INTRST", regCTL1: "CTL1", regCTL2: "CTL2",
	regLDTH: "LDTH", regPDTH: "PDTH", regPW: "PW", regLT: "LT", regTW: "TW",
}

func (r register) String() string {
	if s, ok := registerNames[r]; ok {
		return s
	}
	return fmt.Sprintf("register(%#02x)", uint8(r))
}

// field is a masked sub-range of bits within one register.
type field struct {
	offset register
	mask   uint8
	shift  uint
	signed bool
	width  uint
}

func bit(r register, n uint) field {
	return field{offset: r, mask: 1 << n, shift: n, width: 1}
}

var (
	// MCTL
	fieldMode     = field{offset: regMCTL, mask: 0x03, shift: 0, width: 2}
	fieldGLevel   = field{offset: regMCTL, mask: 0x0C, shift: 2, width: 2}
	fieldSelfTest = bit(regMCTL, 4)
	fieldDRPD     = bit(regMCTL, 6)

	// INTRST
	fieldClrInt1 = bit(regINTRST, 0)
	fieldClrInt2 = bit(regINTRST, 1)

	// CTL1
	fieldIntPin = bit(regCTL1, 0)
	fieldIntReg = field{offset: regCTL1, mask: 0x06, shift: 1, width: 2}
	fieldXDA    = bit(regCTL1, 3)
	fieldYDA    = bit(regCTL1, 4)
	fieldZDA    = bit(regCTL1, 5)
	fieldThOpt  = bit(regCTL1, 6)
	fieldDFBW   = bit(regCTL1, 7)

	// CTL2
	fieldLDPL = bit(regCTL2, 0)
	fieldPDPL = bit(regCTL2, 1)
	fieldDRVO = bit(regCTL2, 2)

	// Thresholds and pulse timing.
	fieldLDTHSigned   = field{offset: regLDTH, mask: 0xFF, width: 8, signed: true}
	fieldLDTHAbsolute = field{offset: regLDTH, mask: 0x7F, width: 7}
	fieldPDTH         = field{offset: regPDTH, mask: 0x7F, width: 7}
	fieldPW           = field{offset: regPW, mask: 0xFF, width: 8}
	fieldLT           = field{offset: regLT, mask: 0xFF, width: 8}
	fieldTW           = field{offset: regTW, mask: 0xFF, width: 8}

	// STATUS
	fieldDRDY = bit(regSTATUS, 0)
	fieldDOVR = bit(regSTATUS, 1)
	fieldPERR = bit(regSTATUS, 2)

	// DETSRC
	fieldINT1 = bit(regDETSRC, 0)
	fieldINT2 = bit(regDETSRC, 1)
	fieldPDZ  = bit(regDETSRC, 2)
	fieldPDY  = bit(regDETSRC, 3)
	fieldPDX  = bit(regDETSRC, 4)
	fieldLDZ  = bit(regDETSRC, 5)
	fieldLDY  = bit(regDETSRC, 6)
	fieldLDX  = bit(regDETSRC, 7)
)

// axisFields groups the output and offset fields of one axis.
type axisFields struct {
	out8   field
	outL   field
	outH   field
	offL   field
	offH   field
	enable field
}

var axes = [...]axisFields{
	X: {
		out8:   field{offset: regXOUT8, mask: 0xFF, width: 8, signed: true},
		outL:   field{offset: regXOUTL, mask: 0xFF, width: 8},
		outH:   field{offset: regXOUTH, mask: 0x03, width: 2, signed: true},
		offL:   field{offset: regXOFFL, mask: 0xFF, width: 8},
		offH:   field{offset: regXOFFH, mask: 0x07, width: 3, signed: true},
		enable: fieldXDA,
	},
	Y: {
		out8:   field{offset: regYOUT8, mask: 0xFF, width: 8, signed: true},
		outL:   field{offset: regYOUTL, mask: 0xFF, width: 8},
		outH:   field{offset: regYOUTH, mask: 0x03, width: 2, signed: true},
		offL:   field{offset: regYOFFL, mask: 0xFF, width: 8},
		offH:   field{offset: regYOFFH, mask: 0x07, width: 3, signed: true},
		enable: fieldYDA,
	},
	Z: {
		out8:   field{offset: regZOUT8, mask: 0xFF, width: 8, signed: true},
		outL:   field{offset: regZOUTL, mask: 0xFF, width: 8},
		outH:   field{offset: regZOUTH, mask: 0x03, width: 2, signed: true},
		offL:   field{offset: regZOFFL, mask: 0xFF, width: 8},
		offH:   field{offset: regZOFFH, mask: 0x07, width: 3, signed: true},
		enable: fieldZDA,
	},
}

// resetSequence is written in order by Dev.Reset.
var resetSequence = []struct {
	reg register
	val uint8
}{
	{regXOFFL, 0x00},
	{regXOFFH, 0x00},
	{regYOFFL, 0x00},
	{regYOFFH, 0x00},
	{regZOFFL, 0x00},
	{regZOFFH, 0x00},
	{regMCTL, 0x00},
	{regINTRST, 0x03},
	{regINTRST, 0x00},
	{regCTL1, 0x00},
	{regCTL2, 0x00},
	{regLDTH, 0x00},
	{regPDTH, 0x00},
	{regPW, 0x00},
	{regLT, 0x00},
	{regTW, 0x00},
}
