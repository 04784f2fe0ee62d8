// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package example shows the readings of an MMA7455 as level bars.
package example

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/mma7455-devices/levelbar"
	"github.com/GermanBionicSystems/mma7455-devices/mma7455"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Example reads the acceleration values every 50ms for 30 seconds and draws
// them on the terminal.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg to find the first available I²C bus.
	p, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	opts := mma7455.DefaultOpts
	opts.Sensitivity = mma7455.S4G
	d, err := mma7455.NewI2C(p, mma7455.I2CAddr, &opts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	var x, y, z int16
	if err := d.GetAxisOffset(&x, &y, &z); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s offsets X:%d Y:%d Z:%d\n", d, x, y, z)

	bars := levelbar.New(&levelbar.Opts{FullScale: float64(opts.Sensitivity)})
	defer bars.Halt()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(30 * time.Second)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			var gx, gy, gz float64
			if err := d.ReadAxes10G(&gx, &gy, &gz); err != nil {
				log.Fatal(err)
			}
			if err := bars.Draw(gx, gy, gz); err != nil {
				log.Fatal(err)
			}
		}
	}
}
