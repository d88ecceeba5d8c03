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

package raster3d

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// sRGB transfer functions, two-segment form.  Colors composite in
// linear space; textures store sRGB and are linearized on sampling,
// and the output stage optionally re-encodes to sRGB.

// srgbToLinear applies the inverse sRGB transfer function to one
// channel in [0,1].
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB applies the forward sRGB transfer function to one
// channel in [0,1].
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return math.Pow(c, 1/2.4)*1.055 - 0.055
}

// putPixel quantizes a linear RGBA color to 8-bit channels and writes
// it to the image.  If srgb is set, the forward transfer function is
// applied to r, g, b first; alpha is never converted.  Quantization
// truncates, matching the rest of the pipeline's rounding.
func putPixel(img *image.NRGBA, x, y int, c mgl64.Vec4, srgb bool) {
	r, g, b, a := c[0], c[1], c[2], c[3]
	if srgb {
		r = linearToSRGB(r)
		g = linearToSRGB(g)
		b = linearToSRGB(b)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: quantize(r),
		G: quantize(g),
		B: quantize(b),
		A: quantize(a),
	})
}

// quantize truncates a [0,1] channel to 8 bits, clamping out-of-range
// values so the conversion is always defined.
func quantize(c float64) uint8 {
	v := c * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
