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
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidGeometry is returned when a vertex reaches the perspective
// divide with w == 0.  Rasterizing such geometry would propagate NaNs
// through the whole sample grid, so the draw call fails instead.
var ErrInvalidGeometry = errors.New("raster3d: invalid geometry (w == 0)")

// Vertex is one vertex of the attribute stream: a clip-space position,
// an RGBA color, a texture coordinate and a point-sprite size.  All
// eleven components are always populated; unbound attributes hold their
// defaults (see DefaultVertex).
//
// Vertex is a value type.  Draw calls copy the vertices they touch
// before mutating them, so the canonical buffer survives across draws.
type Vertex struct {
	Pos  mgl64.Vec4 // x, y, z, w
	Col  mgl64.Vec4 // r, g, b, a
	Tex  vec.Vec2   // s, t
	Size float64    // point sprite diameter in pixels
}

// DefaultVertex returns a vertex with all attributes at their defaults:
// position (0,0,0,1), color (0,0,0,1), texture coordinate (0,0) and
// point size 0.
func DefaultVertex() Vertex {
	return Vertex{
		Pos: mgl64.Vec4{0, 0, 0, 1},
		Col: mgl64.Vec4{0, 0, 0, 1},
	}
}

// Arithmetic over the full 11-component record.  Clipping and the DDA
// interpolate every attribute in lock-step with the position, so these
// treat the vertex as one flat vector.

func (v Vertex) add(o Vertex) Vertex {
	return Vertex{
		Pos:  v.Pos.Add(o.Pos),
		Col:  v.Col.Add(o.Col),
		Tex:  vec.Vec2{X: v.Tex.X + o.Tex.X, Y: v.Tex.Y + o.Tex.Y},
		Size: v.Size + o.Size,
	}
}

func (v Vertex) sub(o Vertex) Vertex {
	return Vertex{
		Pos:  v.Pos.Sub(o.Pos),
		Col:  v.Col.Sub(o.Col),
		Tex:  vec.Vec2{X: v.Tex.X - o.Tex.X, Y: v.Tex.Y - o.Tex.Y},
		Size: v.Size - o.Size,
	}
}

func (v Vertex) scale(s float64) Vertex {
	return Vertex{
		Pos:  v.Pos.Mul(s),
		Col:  v.Col.Mul(s),
		Tex:  vec.Vec2{X: v.Tex.X * s, Y: v.Tex.Y * s},
		Size: v.Size * s,
	}
}

// divideByW converts the vertex from clip space to normalized device
// space.  Every component is divided by position.w, and the w slot is
// replaced with 1/w so that w itself interpolates perspective-correctly
// across the triangle.
func (v Vertex) divideByW() (Vertex, error) {
	w := v.Pos[3]
	if w == 0 {
		return Vertex{}, ErrInvalidGeometry
	}
	out := v.scale(1 / w)
	out.Pos[3] = 1 / w
	return out, nil
}

// undoDivideByW recovers true attribute values from an interpolated
// fragment by dividing out the interpolated reciprocal w.  The device
// x, y, z already computed for the fragment are kept as-is; they must
// not be re-derived from the undone values.
func (v Vertex) undoDivideByW() Vertex {
	pos := v.Pos
	out := v.scale(1 / pos[3])
	out.Pos = pos
	return out
}

// toDevice maps the normalized [-1,1] x and y coordinates into the
// pixel ranges [0,width) and [0,height).  z and w pass through
// unchanged.
func (v Vertex) toDevice(width, height int) Vertex {
	v.Pos[0] = (v.Pos[0] + 1) * float64(width) / 2
	v.Pos[1] = (v.Pos[1] + 1) * float64(height) / 2
	return v
}

// combine computes the intersection of the edge good–bad with a clip
// plane, given the two signed plane distances.  The linear combination
// applies to the full vertex record, so every attribute interpolates
// linearly with the position.
func combine(good, bad Vertex, dGood, dBad float64) Vertex {
	return bad.scale(dGood).sub(good.scale(dBad)).scale(1 / (dGood - dBad))
}

// transformPos applies a uniform matrix to the position only.
func (v Vertex) transformPos(m mgl64.Mat4) Vertex {
	v.Pos = m.Mul4x1(v.Pos)
	return v
}

// pixel returns the integer sample coordinates of a fragment.  The DDA
// emits samples on integer grid lines, so truncation only strips
// floating-point noise.
func (v Vertex) pixel() (x, y int) {
	return int(v.Pos[0]), int(v.Pos[1])
}
