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

import "github.com/go-gl/mathgl/mgl64"

// frustumPlanes are the six canonical clip planes in homogeneous form.
// A point p is inside a plane when dot(plane, p) >= 0.  Together they
// bound -w <= x <= w, -w <= y <= w, 0 <= z <= w.
var frustumPlanes = [6]mgl64.Vec4{
	{1, 0, 0, 1},  // x >= -w
	{-1, 0, 0, 1}, // x <= w
	{0, 1, 0, 1},  // y >= -w
	{0, -1, 0, 1}, // y <= w
	{0, 0, 1, 0},  // z >= 0
	{0, 0, -1, 1}, // z <= w
}

// clipFrustum clips one clip-space triangle against all six frustum
// planes, Sutherland–Hodgman style: each plane's output triangle set is
// the next plane's input.  The result is zero or more triangles, each
// fully inside the frustum, with attributes linearly interpolated at
// the new boundary vertices.
func clipFrustum(tri [3]Vertex) [][3]Vertex {
	triangles := [][3]Vertex{tri}
	for _, plane := range frustumPlanes {
		var clipped [][3]Vertex
		for _, t := range triangles {
			clipped = append(clipped, clipPlane(t, plane)...)
		}
		triangles = clipped
	}
	return triangles
}

// clipPlane clips one triangle against one plane.  Vertices are
// classified by the sign of their distance to the plane; the number of
// outside vertices selects one of four cases.
func clipPlane(tri [3]Vertex, plane mgl64.Vec4) [][3]Vertex {
	var dist [3]float64
	var good, bad []int
	for i, v := range tri {
		dist[i] = plane.Dot(v.Pos)
		if dist[i] < 0 {
			bad = append(bad, i)
		} else {
			good = append(good, i)
		}
	}

	switch len(bad) {
	case 0:
		// fully inside
		return [][3]Vertex{tri}

	case 1:
		// The two inside vertices each contribute themselves plus their
		// crossing point with the outside vertex, giving a quad
		// [good0, new0, good1, new1].  Any gap-free split of the quad
		// works; we take [0,1,2] and [1,2,3].
		b := bad[0]
		var quad [4]Vertex
		for i, g := range good {
			quad[2*i] = tri[g]
			quad[2*i+1] = combine(tri[g], tri[b], dist[g], dist[b])
		}
		return [][3]Vertex{
			{quad[0], quad[1], quad[2]},
			{quad[1], quad[2], quad[3]},
		}

	case 2:
		// One triangle: the inside vertex plus its crossing points with
		// both outside vertices.
		g := good[0]
		return [][3]Vertex{{
			tri[g],
			combine(tri[g], tri[bad[0]], dist[g], dist[bad[0]]),
			combine(tri[g], tri[bad[1]], dist[g], dist[bad[1]]),
		}}

	case 3:
		// fully outside
		return nil

	default:
		panic("raster3d: impossible clip classification")
	}
}
