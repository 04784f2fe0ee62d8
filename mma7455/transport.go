// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Bus is the byte-wide register access the driver needs. *mmr.Dev8 satisfies
// it for I²C.
//
// Calls must block until the transaction completes. Timeouts and retries, if
// any, belong to the implementation.
type Bus interface {
	ReadUint8(reg uint8) (uint8, error)
	WriteUint8(reg uint8, v uint8) error
}

// DebugF the debug function type.
type DebugF func(string, ...interface{})

var (
	// SpiFrequency is the SPI clock used by NewSpi. The device supports up to
	// 8MHz.
	SpiFrequency = physic.MegaHertz
	// SpiMode is the clock polarity and phase used by NewSpi.
	SpiMode = spi.Mode0
	// SpiBits is the word size used by NewSpi.
	SpiBits = 8
)

// newI2CBus returns an 8-bit register view of the device at addr.
func newI2CBus(b i2c.Bus, addr uint16) *mmr.Dev8 {
	return &mmr.Dev8{
		Conn: &i2c.Dev{Bus: b, Addr: addr},
		// Registers are never read more than 1 byte at a time.
		Order: binary.LittleEndian,
	}
}

// spiBus frames register accesses for the 4-wire SPI mode.
//
// The first byte carries the write flag in bit 7 and the register offset in
// bits 6:1.
type spiBus struct {
	c spi.Conn
}

func newSpiBus(p spi.Port) (*spiBus, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("mma7455: can't initialize SPI: %w", err)
	}
	return &spiBus{c: c}, nil
}

func (s *spiBus) ReadUint8(reg uint8) (uint8, error) {
	var (
		tx = [...]byte{(reg & 0x3F) << 1, 0}
		rx [2]byte
	)
	if err := s.c.Tx(tx[:], rx[:]); err != nil {
		return 0, err
	}
	return rx[1], nil
}

func (s *spiBus) WriteUint8(reg uint8, v uint8) error {
	var (
		tx = [...]byte{0x80 | (reg&0x3F)<<1, v}
		rx [2]byte
	)
	return s.c.Tx(tx[:], rx[:])
}

// transport adds field access and tracing on top of a Bus.
//
// Read-modify-write sequences are not atomic. Two goroutines updating fields
// of the same register through one Dev can lose an update.
type transport struct {
	bus   Bus
	debug DebugF
}

func (t *transport) readByte(r register) (uint8, error) {
	v, err := t.bus.ReadUint8(uint8(r))
	if err != nil {
		return 0, fmt.Errorf("mma7455: read %s: %w", r, err)
	}
	t.debug("read %s = %#02x", r, v)
	return v, nil
}

func (t *transport) writeByte(r register, v uint8) error {
	t.debug("write %s = %#02x", r, v)
	if err := t.bus.WriteUint8(uint8(r), v); err != nil {
		return fmt.Errorf("mma7455: write %s: %w", r, err)
	}
	return nil
}

// readField reads the register holding f and decodes f.
func (t *transport) readField(f field) (int, error) {
	b, err := t.readByte(f.offset)
	if err != nil {
		return 0, err
	}
	return decodeField(f, b), nil
}

// writeFields updates fs in a single read-modify-write of their register.
// All fields must live in the same register.
func (t *transport) writeFields(r register, fs []field, vs []int) error {
	cur, err := t.readByte(r)
	if err != nil {
		return err
	}
	next := cur
	for i, f := range fs {
		next = mergeField(f, next, vs[i])
	}
	t.debug("update %s %#02x -> %#02x", r, cur, next)
	return t.writeByte(r, next)
}

// writeField updates f with a read-modify-write of its register.
func (t *transport) writeField(f field, v int) error {
	return t.writeFields(f.offset, []field{f}, []int{v})
}

// writeWhole writes v to a field that spans its whole register, no read
// needed. Bits outside the mask are written as zero.
func (t *transport) writeWhole(f field, v int) error {
	return t.writeByte(f.offset, encodeField(f, v))
}

func noop(string, ...interface{}) {}
