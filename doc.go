// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the MMA7455 accelerometer driver and
// the packages supporting it.
//
// See package mma7455 for the driver, mma7455/mma7455test to emulate the
// device in tests and levelbar to display readings on a terminal.
package devices
