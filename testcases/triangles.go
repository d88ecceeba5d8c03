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

package testcases

import "image/color"

// The standard scene is a 4×4 canvas.  The triangle with normalized
// device coordinates (-1,-1), (3,-1), (-1,3) maps to device corners
// (0,0), (8,0), (0,8) and covers every sample of the canvas.

var triangleCases = []TestCase{
	{
		Name:   "full_red",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 2 -1 -1 3 -1 -1 3
color 3 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 3`,
		Want: everyPixel(4, 4, red, 0),
	},
	{
		Name:   "quad_from_arrays",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 2 -1 -1 1 -1 -1 1 1 -1 -1 1 1 1
color 3 1 0 0 1 0 0 1 0 0 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 6`,
		Want: everyPixel(4, 4, red, 0),
	},
	{
		Name:   "quad_from_elements",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 2 -1 -1 1 -1 -1 1 1 1
color 3 1 0 0 1 0 0 1 0 0 1 0 0
elements 0 1 2 1 2 3
drawElementsTriangles 6 0`,
		Want: everyPixel(4, 4, red, 0),
	},
	{
		Name:   "alpha_overlay",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 2 -1 -1 3 -1 -1 3 -1 -1 3 -1 -1 3
color 4 1 0 0 1 1 0 0 1 1 0 0 1 0 0 1 0.5 0 0 1 0.5 0 0 1 0.5
drawArraysTriangles 0 6`,
		// half-transparent blue over opaque red
		Want: everyPixel(4, 4, color.NRGBA{R: 127, B: 127, A: 255}, 1),
	},
	{
		Name:   "no_draw_is_transparent",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 2 -1 -1 3 -1 -1 3`,
		Want: everyPixel(4, 4, transparent, 0),
	},
}
