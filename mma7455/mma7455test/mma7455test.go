// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mma7455test implements an in-memory MMA7455 register file that
// can be used as the bus of a mma7455.Dev in tests.
package mma7455test

import (
	"errors"
	"fmt"
	"sync"
)

// NumRegisters is the size of the register file.
const NumRegisters = 0x20

// IO is one register access recorded by Dev.
type IO struct {
	Write bool
	Reg   uint8
	V     uint8
}

func (i IO) String() string {
	if i.Write {
		return fmt.Sprintf("W %#02x=%#02x", i.Reg, i.V)
	}
	return fmt.Sprintf("R %#02x=%#02x", i.Reg, i.V)
}

// ErrInjected is the default error returned when Fail matches an access.
var ErrInjected = errors.New("mma7455test: injected failure")

// Dev emulates the device registers. The zero value is usable and reads all
// zeros; use New for power-on content.
type Dev struct {
	sync.Mutex
	// Regs is the register file.
	Regs [NumRegisters]uint8
	// Ops records every access, in order.
	Ops []IO
	// Fail, if set, is called before every access. A non-nil error aborts
	// the access: nothing is read or stored.
	Fail func(io IO) error
}

// New returns a Dev with WHOAMI and I2CAD set like a freshly powered device.
func New() *Dev {
	d := &Dev{}
	d.Regs[0x0D] = 0x1D
	d.Regs[0x0F] = 0x55
	return d
}

// ReadUint8 implements mma7455.Bus.
func (d *Dev) ReadUint8(reg uint8) (uint8, error) {
	d.Lock()
	defer d.Unlock()
	if int(reg) >= NumRegisters {
		return 0, fmt.Errorf("mma7455test: register %#02x out of range", reg)
	}
	io := IO{Reg: reg, V: d.Regs[reg]}
	if d.Fail != nil {
		if err := d.Fail(io); err != nil {
			return 0, err
		}
	}
	d.Ops = append(d.Ops, io)
	return io.V, nil
}

// WriteUint8 implements mma7455.Bus.
func (d *Dev) WriteUint8(reg uint8, v uint8) error {
	d.Lock()
	defer d.Unlock()
	if int(reg) >= NumRegisters {
		return fmt.Errorf("mma7455test: register %#02x out of range", reg)
	}
	io := IO{Write: true, Reg: reg, V: v}
	if d.Fail != nil {
		if err := d.Fail(io); err != nil {
			return err
		}
	}
	d.Ops = append(d.Ops, io)
	d.Regs[reg] = v
	return nil
}

// Writes returns the values written to reg, in order.
func (d *Dev) Writes(reg uint8) []uint8 {
	d.Lock()
	defer d.Unlock()
	var out []uint8
	for _, io := range d.Ops {
		if io.Write && io.Reg == reg {
			out = append(out, io.V)
		}
	}
	return out
}

// Reset forgets the recorded accesses.
func (d *Dev) Reset() {
	d.Lock()
	defer d.Unlock()
	d.Ops = nil
}

// FailOn returns a Fail function that fails every access to reg, reads and
// writes selected by write.
func FailOn(reg uint8, write bool) func(IO) error {
	return func(io IO) error {
		if io.Reg == reg && io.Write == write {
			return ErrInjected
		}
		return nil
	}
}
