// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mma7455 controls a Freescale MMA7455L 3-axis accelerometer over
// I²C or SPI.
//
// The device measures ±2g, ±4g or ±8g with 8 or 10 bits of resolution and
// can detect levels (including free fall) and single or double pulses on
// each axis.
//
// Every accessor is a blocking bus transaction; nothing is cached. Setters
// that change part of a register read it, update the bits and write it back.
// This is not atomic: callers sharing a Dev between goroutines must
// serialize access, or updates to the same register may be lost.
//
// Settings given an unknown value fall back to a documented default instead
// of failing, like the device registers do.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/MMA7455L.pdf
package mma7455
