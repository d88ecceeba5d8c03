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
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// triAt builds a w=1 triangle from three (x, y, z) corners.
func triAt(corners [3][3]float64) [3]Vertex {
	var tri [3]Vertex
	for i, c := range corners {
		tri[i] = DefaultVertex()
		tri[i].Pos = mgl64.Vec4{c[0], c[1], c[2], 1}
	}
	return tri
}

// area2D is the unsigned area of a triangle projected onto the xy
// plane.
func area2D(tri [3]Vertex) float64 {
	ax := tri[1].Pos[0] - tri[0].Pos[0]
	ay := tri[1].Pos[1] - tri[0].Pos[1]
	bx := tri[2].Pos[0] - tri[0].Pos[0]
	by := tri[2].Pos[1] - tri[0].Pos[1]
	return math.Abs(ax*by-ay*bx) / 2
}

// TestClipConservation checks that a triangle fully inside the frustum
// passes through unchanged.
func TestClipConservation(t *testing.T) {
	tri := triAt([3][3]float64{
		{-0.5, -0.5, 0.25},
		{0.5, -0.5, 0.25},
		{0, 0.5, 0.75},
	})

	got := clipFrustum(tri)
	if len(got) != 1 {
		t.Fatalf("got %d triangles, want 1", len(got))
	}
	if got[0] != tri {
		t.Errorf("triangle changed: got %v, want %v", got[0], tri)
	}
}

// TestClipCompleteness checks that triangles fully outside a single
// plane are removed.
func TestClipCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		corners [3][3]float64
	}{
		{"right_of_x", [3][3]float64{{2, 0, 0}, {3, 0, 0}, {2, 1, 0}}},
		{"left_of_x", [3][3]float64{{-2, 0, 0}, {-3, 0, 0}, {-2, 1, 0}}},
		{"above_y", [3][3]float64{{0, 2, 0}, {1, 2, 0}, {0, 3, 0}}},
		{"behind_z", [3][3]float64{{0, 0, -1}, {1, 0, -1}, {0, 1, -2}}},
		{"past_far", [3][3]float64{{0, 0, 2}, {1, 0, 2}, {0, 1, 3}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := clipFrustum(triAt(test.corners))
			if len(got) != 0 {
				t.Errorf("got %d triangles, want 0", len(got))
			}
		})
	}
}

// TestClipPlaneOneOutside clips a triangle with one vertex outside.
// The output must be two triangles that tile the clipped quad exactly.
func TestClipPlaneOneOutside(t *testing.T) {
	// vertices at x = 0, 2 and 0; clip against x <= 1
	tri := triAt([3][3]float64{
		{0, 0, 0},
		{2, 0, 0},
		{0, 2, 0},
	})
	plane := mgl64.Vec4{-1, 0, 0, 1}

	got := clipPlane(tri, plane)
	if len(got) != 2 {
		t.Fatalf("got %d triangles, want 2", len(got))
	}

	// the part beyond x=1 is a triangle of area 1/2, so 2 - 1/2 remains
	total := area2D(got[0]) + area2D(got[1])
	if math.Abs(total-1.5) > 1e-12 {
		t.Errorf("clipped area: got %g, want 1.5", total)
	}

	// all output vertices satisfy the plane
	for i, out := range got {
		for j, v := range out {
			if d := plane.Dot(v.Pos); d < -1e-12 {
				t.Errorf("triangle %d vertex %d outside plane: d=%g", i, j, d)
			}
		}
	}
}

// TestClipPlaneTwoOutside clips a triangle with two vertices outside,
// leaving a single smaller triangle.
func TestClipPlaneTwoOutside(t *testing.T) {
	tri := triAt([3][3]float64{
		{0, 0, 0},
		{2, 0, 0},
		{2, 2, 0},
	})
	plane := mgl64.Vec4{-1, 0, 0, 1} // x <= 1

	got := clipPlane(tri, plane)
	if len(got) != 1 {
		t.Fatalf("got %d triangles, want 1", len(got))
	}

	// the kept corner is (0,0); the crossings are at x=1
	out := got[0]
	if out[0].Pos != tri[0].Pos {
		t.Errorf("kept vertex: got %v", out[0].Pos)
	}
	for _, v := range out[1:] {
		if math.Abs(v.Pos[0]-1) > 1e-12 {
			t.Errorf("crossing not on plane: %v", v.Pos)
		}
	}
	if math.Abs(area2D(out)-0.5) > 1e-12 {
		t.Errorf("clipped area: got %g, want 0.5", area2D(out))
	}
}

// TestClipInterpolatesAttributes checks that boundary vertices carry
// linearly interpolated colors.
func TestClipInterpolatesAttributes(t *testing.T) {
	tri := triAt([3][3]float64{
		{0, 0, 0},
		{2, 0, 0},
		{2, 2, 0},
	})
	tri[0].Col = mgl64.Vec4{1, 0, 0, 1}
	tri[1].Col = mgl64.Vec4{0, 1, 0, 1}
	tri[2].Col = mgl64.Vec4{0, 0, 1, 1}
	plane := mgl64.Vec4{-1, 0, 0, 1} // x <= 1

	got := clipPlane(tri, plane)
	if len(got) != 1 {
		t.Fatalf("got %d triangles, want 1", len(got))
	}

	// the crossing of edge 0-1 is at its midpoint
	c := got[0][1].Col
	want := mgl64.Vec4{0.5, 0.5, 0, 1}
	for i := range 4 {
		if math.Abs(c[i]-want[i]) > 1e-12 {
			t.Errorf("interpolated color: got %v, want %v", c, want)
			break
		}
	}
}

// TestClipPartialAreaThroughFrustum pushes a large triangle through the
// full six-plane pipeline and checks the surviving area against the
// intersection with the [-1,1] square.
func TestClipPartialAreaThroughFrustum(t *testing.T) {
	// covers the whole square, so exactly area 4 must survive
	tri := triAt([3][3]float64{
		{-5, -5, 0},
		{5, -5, 0},
		{0, 5, 0},
	})

	got := clipFrustum(tri)
	if len(got) == 0 {
		t.Fatal("triangle vanished")
	}
	total := 0.0
	for _, out := range got {
		total += area2D(out)
	}
	if math.Abs(total-4) > 1e-9 {
		t.Errorf("surviving area: got %g, want 4", total)
	}
}
