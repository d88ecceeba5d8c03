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

var modeCases = []TestCase{
	{
		// The near red triangle is drawn first, the far green one
		// second.  Depth ordering composites farthest-first, so red
		// ends up on top.
		Name:   "depth_ordering",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
depth
position 4 -1 -1 0.1 1 3 -1 0.1 1 -1 3 0.1 1 -1 -1 0.9 1 3 -1 0.9 1 -1 3 0.9 1
color 3 1 0 0 1 0 0 1 0 0 0 1 0 0 1 0 0 1 0
drawArraysTriangles 0 6`,
		Want: everyPixel(4, 4, red, 0),
	},
	{
		// Same scene without depth: generation order wins and the
		// green triangle drawn last covers the red one.
		Name:   "no_depth_ordering",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
position 4 -1 -1 0.1 1 3 -1 0.1 1 -1 3 0.1 1 -1 -1 0.9 1 3 -1 0.9 1 -1 3 0.9 1
color 3 1 0 0 1 0 0 1 0 0 0 1 0 0 1 0 0 1 0
drawArraysTriangles 0 6`,
		Want: everyPixel(4, 4, color.NRGBA{G: 255, A: 255}, 0),
	},
	{
		Name:   "srgb_gray",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
sRGB
position 2 -1 -1 3 -1 -1 3
color 3 0.5 0.5 0.5 0.5 0.5 0.5 0.5 0.5 0.5
drawArraysTriangles 0 3`,
		// linearToSRGB(0.5) * 255 = 187.5
		Want: everyPixel(4, 4, color.NRGBA{R: 187, G: 187, B: 187, A: 255}, 1),
	},
	{
		// All fsaa² sub-samples of every pixel hold the same opaque
		// color, so the resolved pixels must equal it exactly.
		Name:   "fsaa_energy_conservation",
		Width:  4,
		Height: 4,
		Commands: `png 4 4 out.png
fsaa 2
position 2 -1 -1 3 -1 -1 3
color 3 1 0 0 1 0 0 1 0 0
drawArraysTriangles 0 3`,
		Want: everyPixel(4, 4, red, 0),
	},
}
