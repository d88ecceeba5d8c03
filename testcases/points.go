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

var pointCases = []TestCase{
	{
		// A size-2 point sprite at the canvas center covers the 2×2
		// block of pixels (1,1)-(2,2); the corners stay transparent.
		Name:   "center_point",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 2 0 0
color 3 1 0 0
pointsize 1 2
drawArraysPoints 0 1`,
		Want: []PixelCheck{
			{X: 1, Y: 1, Want: red},
			{X: 2, Y: 1, Want: red},
			{X: 1, Y: 2, Want: red},
			{X: 2, Y: 2, Want: red},
			{X: 0, Y: 0, Want: transparent},
			{X: 3, Y: 0, Want: transparent},
			{X: 0, Y: 3, Want: transparent},
			{X: 3, Y: 3, Want: transparent},
		},
	},
	{
		Name:   "zero_size_point",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 2 0 0
color 3 1 0 0
drawArraysPoints 0 1`,
		Want: everyPixel(4, 4, transparent, 0),
	},
}
