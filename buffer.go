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
	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"
)

// The buffer store keeps per-vertex attributes in one vertex array,
// indexed by vertex id.  Binding an attribute with a vertex count
// different from the current array length reallocates the array and
// resets every attribute to its default, so attributes bound earlier
// are lost on a length change and must be re-bound.

// ensureVertices resizes the vertex array to n entries.  If the length
// changes, all vertices are reset to defaults.
func (r *Rasterizer) ensureVertices(n int) {
	if len(r.verts) == n {
		return
	}
	r.verts = make([]Vertex, n)
	for i := range r.verts {
		r.verts[i] = DefaultVertex()
	}
}

// SetPositions binds the position attribute.  Callers supply full
// 4-component positions; short input tuples must already be padded with
// the (0,0,0,1) defaults.
func (r *Rasterizer) SetPositions(positions []mgl64.Vec4) {
	r.ensureVertices(len(positions))
	for i, p := range positions {
		r.verts[i].Pos = p
	}
}

// SetColors binds the color attribute.  Short input tuples must already
// be padded with the (0,0,0,1) defaults.
func (r *Rasterizer) SetColors(colors []mgl64.Vec4) {
	r.ensureVertices(len(colors))
	for i, c := range colors {
		r.verts[i].Col = c
	}
}

// SetTexCoords binds the texture coordinate attribute.
func (r *Rasterizer) SetTexCoords(coords []vec.Vec2) {
	r.ensureVertices(len(coords))
	for i, tc := range coords {
		r.verts[i].Tex = tc
	}
}

// SetPointSizes binds the point size attribute.
func (r *Rasterizer) SetPointSizes(sizes []float64) {
	r.ensureVertices(len(sizes))
	for i, s := range sizes {
		r.verts[i].Size = s
	}
}

// SetElements binds the element index list used by indexed draw calls.
// Its lifecycle is independent of the vertex array.
func (r *Rasterizer) SetElements(elements []int) {
	r.elements = elements
}
