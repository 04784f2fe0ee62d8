// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package levelbar draws accelerometer readings as one colored bar per axis
// on a terminal (stdout) using ANSI color codes.
//
// Each bar is centered on 0g and grows left for negative readings and right
// for positive ones, up to the configured full scale.
package levelbar

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for the bars.
type Opts struct {
	// Width is the number of cells per bar. Even values are rounded up.
	// Defaults to 33.
	Width int
	// FullScale is the reading in g at either end of a bar. Defaults to 2.
	FullScale float64
	Palette   *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

var (
	background = color.NRGBA{0x20, 0x20, 0x20, 255}
	zero       = color.NRGBA{0xFF, 0xFF, 0xFF, 255}
	axisColors = [...]color.NRGBA{
		{0xFF, 0x30, 0x30, 255},
		{0x30, 0xFF, 0x30, 255},
		{0x30, 0x60, 0xFF, 255},
	}
	axisNames = [...]string{"X", "Y", "Z"}
)

// Dev draws the bars on a terminal.
type Dev struct {
	w         io.Writer
	width     int
	fullScale float64
	palette   ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	width := opts.Width
	if width <= 0 {
		width = 33
	}
	width |= 1
	full := opts.FullScale
	if full <= 0 {
		full = 2
	}
	return &Dev{w: w, width: width, fullScale: full, palette: *p}
}

func (d *Dev) String() string {
	return "LevelBar"
}

// Halt ends the line and resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Draw overwrites the current line with the bars for x, y and z, in g.
func (d *Dev) Draw(x, y, z float64) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i, v := range [...]float64{x, y, z} {
		_, _ = fmt.Fprintf(&d.buf, "%s%+6.2f ", axisNames[i], v)
		d.bar(v, axisColors[i])
		_, _ = d.buf.WriteString("\033[0m ")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

func (d *Dev) bar(v float64, c color.NRGBA) {
	center := d.width / 2
	n := d.cells(v)
	for i := 0; i < d.width; i++ {
		o := i - center
		cell := background
		switch {
		case o == 0:
			cell = zero
		case n > 0 && o > 0 && o <= n, n < 0 && o < 0 && o >= n:
			cell = c
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(cell))
	}
}

// cells returns how many cells v covers on either side of the center,
// negative on the left.
func (d *Dev) cells(v float64) int {
	half := d.width / 2
	if math.IsNaN(v) {
		return 0
	}
	n := int(math.Round(v / d.fullScale * float64(half)))
	if n > half {
		return half
	}
	if n < -half {
		return -half
	}
	return n
}

var _ fmt.Stringer = &Dev{}
