// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455

import (
	"errors"
	"testing"

	"github.com/GermanBionicSystems/mma7455-devices/mma7455/mma7455test"
	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/spi/spitest"
)

// newFake returns a Dev configured with DefaultOpts on an emulated device,
// with the init accesses forgotten.
func newFake(t *testing.T) (*mma7455test.Dev, *Dev) {
	t.Helper()
	f := mma7455test.New()
	d, err := New(f, &DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	f.Reset()
	return f, d
}

func TestNewI2C(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: I2CAddr, W: []byte{0x0F}, R: []byte{0x55}}, // WHOAMI
			{Addr: I2CAddr, W: []byte{0x16}, R: []byte{0x00}}, // MCTL
			{Addr: I2CAddr, W: []byte{0x16, 0x04}},            // 2g
			{Addr: I2CAddr, W: []byte{0x16}, R: []byte{0x04}}, // MCTL
			{Addr: I2CAddr, W: []byte{0x16, 0x05}},            // measurement
			{Addr: I2CAddr, W: []byte{0x06}, R: []byte{0x40}}, // XOUT8
			{Addr: I2CAddr, W: []byte{0x16}, R: []byte{0x05}}, // MCTL
			{Addr: I2CAddr, W: []byte{0x16, 0x04}},            // standby
		},
		DontPanic: true,
	}
	d, err := NewI2C(pb, I2CAddr, &DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	if s := d.String(); s != "MMA7455" {
		t.Errorf("String() = %q", s)
	}
	if v, err := d.ReadAxis8(X); err != nil || v != 64 {
		t.Errorf("ReadAxis8(X) = %d, %v", v, err)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewI2CBusError(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	if _, err := NewI2C(pb, I2CAddr, &DefaultOpts); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewSpi(t *testing.T) {
	pb := &spitest.Playback{Playback: conntest.Playback{
		Ops: []conntest.IO{
			{W: []byte{0x1E, 0x00}, R: []byte{0x00, 0x55}}, // read WHOAMI
			{W: []byte{0x2C, 0x00}, R: []byte{0x00, 0x00}}, // read MCTL
			{W: []byte{0xAC, 0x04}, R: []byte{0x00, 0x00}}, // write MCTL 2g
			{W: []byte{0x2C, 0x00}, R: []byte{0x00, 0x04}}, // read MCTL
			{W: []byte{0xAC, 0x05}, R: []byte{0x00, 0x00}}, // write MCTL measurement
		},
		DontPanic: true,
	}}
	if _, err := NewSpi(pb, &DefaultOpts); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewWrongDevice(t *testing.T) {
	f := mma7455test.New()
	f.Regs[regWHOAMI] = 0x33
	_, err := New(f, &DefaultOpts)
	var idErr *DeviceIDError
	if !errors.As(err, &idErr) {
		t.Fatalf("got %v", err)
	}
	if idErr.Got != 0x33 || idErr.Want != DeviceID {
		t.Errorf("got %+v", idErr)
	}
	// Nothing written to a device that isn't ours.
	if len(f.Writes(uint8(regMCTL))) != 0 {
		t.Error("wrote to unknown device")
	}
}

func TestDeviceID(t *testing.T) {
	_, d := newFake(t)
	id, err := d.DeviceID()
	if err != nil {
		t.Fatal(err)
	}
	if id != DeviceID {
		t.Errorf("DeviceID() = %#x", id)
	}
}

func TestNewOpts(t *testing.T) {
	f := mma7455test.New()
	f.Regs[regXOFFL] = 0x12
	var trace []string
	o := Opts{
		Reset:       true,
		Sensitivity: S8G,
		Mode:        Pulse,
		Debug: func(format string, args ...interface{}) {
			trace = append(trace, format)
		},
	}
	d, err := New(f, &o)
	if err != nil {
		t.Fatal(err)
	}
	if f.Regs[regXOFFL] != 0 {
		t.Error("Reset didn't clear offsets")
	}
	if m, _ := d.Mode(); m != Pulse {
		t.Errorf("Mode() = %s", m)
	}
	if s, _ := d.Sensitivity(); s != S8G {
		t.Errorf("Sensitivity() = %s", s)
	}
	if len(trace) == 0 {
		t.Error("Debug not called")
	}
	// WHOAMI not checked.
	for _, io := range f.Ops {
		if io.Reg == uint8(regWHOAMI) {
			t.Error("WHOAMI read with ExpectedDeviceID 0")
		}
	}
}

func TestNewNilOpts(t *testing.T) {
	f := mma7455test.New()
	if _, err := New(f, nil); err != nil {
		t.Fatal(err)
	}
	if f.Regs[regMCTL] != 0x05 {
		t.Errorf("MCTL = %#02x", f.Regs[regMCTL])
	}
}

func TestReset(t *testing.T) {
	f, d := newFake(t)
	for i := range f.Regs {
		f.Regs[i] = 0xFF
	}
	if err := d.Reset(); err != nil {
		t.Fatal(err)
	}
	var want []mma7455test.IO
	for _, w := range resetSequence {
		want = append(want, mma7455test.IO{Write: true, Reg: uint8(w.reg), V: w.val})
	}
	if diff := cmp.Diff(want, f.Ops); diff != "" {
		t.Errorf("Reset() accesses (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{0x03, 0x00}, f.Writes(uint8(regINTRST))); diff != "" {
		t.Errorf("INTRST writes (-want +got):\n%s", diff)
	}
}

func TestResetStopsOnError(t *testing.T) {
	f, d := newFake(t)
	f.Fail = mma7455test.FailOn(uint8(regMCTL), true)
	err := d.Reset()
	if !errors.Is(err, mma7455test.ErrInjected) {
		t.Fatalf("got %v", err)
	}
	for _, io := range f.Ops {
		if io.Reg == uint8(regINTRST) {
			t.Fatal("Reset continued after a failed write")
		}
	}
}

func TestHalt(t *testing.T) {
	f, d := newFake(t)
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if f.Regs[regMCTL] != 0x04 {
		t.Errorf("MCTL = %#02x, want standby at 2g", f.Regs[regMCTL])
	}
}

func TestRegisterString(t *testing.T) {
	if s := regMCTL.String(); s != "MCTL" {
		t.Errorf("got %q", s)
	}
	if s := register(0x0C).String(); s != "register(0x0c)" {
		t.Errorf("got %q", s)
	}
}
