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

var clipCases = []TestCase{
	{
		// A triangle much larger than the frustum: the clipped pieces
		// must tile the full visible square without gaps or overlaps.
		Name:   "frustum_tiling",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
frustum
position 2 -5 -5 5 -5 0 5
color 3 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 3`,
		Want: everyPixel(4, 4, red, 0),
	},
	{
		// Entirely beyond the x <= w plane: clipping drops it.
		Name:   "frustum_outside",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
frustum
position 2 2 -1 5 -1 2 3
color 3 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 3`,
		Want: everyPixel(4, 4, transparent, 0),
	},
	{
		// With the camera looking down +z this winding is a back
		// face; culling discards it before filling.
		Name:   "cull_back_face",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
cull
position 2 -1 -1 3 -1 -1 3
color 3 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 3`,
		Want: everyPixel(4, 4, transparent, 0),
	},
	{
		Name:   "cull_front_face",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
cull
position 2 -1 -1 -1 3 3 -1
color 3 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 3`,
		Want: everyPixel(4, 4, red, 0),
	},
	{
		Name:   "uniform_matrix_identity",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
uniformMatrix 1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1
position 2 -1 -1 3 -1 -1 3
color 3 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 3`,
		Want: everyPixel(4, 4, red, 0),
	},
}
