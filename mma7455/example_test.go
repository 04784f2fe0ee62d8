// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma7455_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/mma7455-devices/mma7455"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	d, err := mma7455.NewI2C(bus, mma7455.I2CAddr, &mma7455.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	var x, y, z float64
	if err := d.ReadAxes10G(&x, &y, &z); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("X:%.3fg Y:%.3fg Z:%.3fg\n", x, y, z)
}

func ExampleDev_SetLevelThresholdLimit() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	d, err := mma7455.NewI2C(bus, mma7455.I2CAddr, &mma7455.Opts{
		ExpectedDeviceID: mma7455.DeviceID,
		Sensitivity:      mma7455.S8G,
		Mode:             mma7455.Level,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Free fall: all axes below 0.5g.
	if err := d.EnableDetectionXYZ(true, true, true); err != nil {
		log.Fatal(err)
	}
	if err := d.SetThresholdMode(mma7455.ThresholdAbsolute); err != nil {
		log.Fatal(err)
	}
	if err := d.SetLevelPolarity(mma7455.LevelFreefall); err != nil {
		log.Fatal(err)
	}
	if err := d.SetLevelThresholdLimit(8); err != nil {
		log.Fatal(err)
	}

	var int1 bool
	if err := d.Interrupt(&int1, nil); err != nil {
		log.Fatal(err)
	}
	if int1 {
		fmt.Println("free fall detected")
		if err := d.ClearInterrupt(); err != nil {
			log.Fatal(err)
		}
	}
}
