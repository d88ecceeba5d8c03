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
	"math"
	"slices"
)

// Walk dimensions for the DDA.  The outer scanline walk steps along y,
// the inner per-row walk steps along x.
const (
	dimX = 0
	dimY = 1
)

// edgeWalker enumerates samples along one edge of a triangle using a
// digital differential analyzer: starting at the first integer grid
// line at or after the lower endpoint, it steps the full vertex record
// by delta/delta[dim] until the walk dimension reaches the upper
// endpoint (exclusive).  Every attribute is interpolated consistently
// with the position.
type edgeWalker struct {
	cur  Vertex
	step Vertex
	end  float64 // exclusive upper bound in the walk dimension
	dim  int
	done bool
}

// newEdgeWalker prepares a walk from a to b in the given dimension.
// An edge with zero extent in the walk dimension yields no samples;
// this is the normal degenerate case, not an error.
func newEdgeWalker(a, b Vertex, dim int) edgeWalker {
	if a.Pos[dim] == b.Pos[dim] {
		return edgeWalker{done: true}
	}
	if a.Pos[dim] > b.Pos[dim] {
		a, b = b, a
	}

	delta := b.sub(a)
	step := delta.scale(1 / delta.Pos[dim])

	// Snap to the first integer grid line at or after a.  The
	// fractional offset is applied exactly once.
	offset := math.Ceil(a.Pos[dim]) - a.Pos[dim]
	cur := a.add(step.scale(offset))

	return edgeWalker{cur: cur, step: step, end: b.Pos[dim], dim: dim}
}

// next returns the next sample on the edge, or ok == false when the
// edge is exhausted.
func (w *edgeWalker) next() (Vertex, bool) {
	if w.done || w.cur.Pos[w.dim] >= w.end {
		w.done = true
		return Vertex{}, false
	}
	v := w.cur
	w.cur = w.cur.add(w.step)
	return v, true
}

// scanTriangle enumerates every covered sample of a device-space
// triangle, calling emit once per fragment with all attributes
// interpolated.
//
// The three vertices are sorted by y and walked along two edge pairs:
// the short edges (top–middle, then middle–bottom) against the single
// long edge (top–bottom).  The short edge drives the pairing so the
// long edge is not consumed when a short edge ends early.  For each
// matched row, a second DDA walks the row in x.
func scanTriangle(p, q, r Vertex, emit func(Vertex)) {
	v := []Vertex{p, q, r}
	slices.SortStableFunc(v, func(a, b Vertex) int {
		switch {
		case a.Pos[1] < b.Pos[1]:
			return -1
		case a.Pos[1] > b.Pos[1]:
			return 1
		default:
			return 0
		}
	})
	top, middle, bottom := v[0], v[1], v[2]

	long := newEdgeWalker(top, bottom, dimY)
	shorts := [2]edgeWalker{
		newEdgeWalker(top, middle, dimY),
		newEdgeWalker(middle, bottom, dimY),
	}

	for i := range shorts {
		for {
			// Pull the short edge first: if it is exhausted the long
			// edge must keep its sample for the next short edge.
			a, ok := shorts[i].next()
			if !ok {
				break
			}
			b, ok := long.next()
			if !ok {
				break
			}

			row := newEdgeWalker(a, b, dimX)
			for {
				frag, ok := row.next()
				if !ok {
					break
				}
				emit(frag)
			}
		}
	}
}
