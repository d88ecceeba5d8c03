// seehuhn.de/go/raster3d - a software rasterization pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases holds named end-to-end rendering scenes, expressed
// as command streams together with expected pixel values.
package testcases

import "image/color"

// TestCase defines a single end-to-end rendering test.
type TestCase struct {
	Name     string // lowercase a-z and _ only
	Width    int    // canvas width in pixels
	Height   int    // canvas height in pixels
	Commands string // the command stream to execute
	Want     []PixelCheck
}

// PixelCheck is one expected pixel value.  Tol is the maximum allowed
// per-channel difference (0 for exact).
type PixelCheck struct {
	X, Y int
	Want color.NRGBA
	Tol  uint8
}

// everyPixel expects the same color at all width×height pixels.
func everyPixel(width, height int, want color.NRGBA, tol uint8) []PixelCheck {
	checks := make([]PixelCheck, 0, width*height)
	for y := range height {
		for x := range width {
			checks = append(checks, PixelCheck{X: x, Y: y, Want: want, Tol: tol})
		}
	}
	return checks
}

var (
	red         = color.NRGBA{R: 255, A: 255}
	transparent = color.NRGBA{}
)
