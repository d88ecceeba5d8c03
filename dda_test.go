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

func deviceVertex(x, y float64) Vertex {
	v := DefaultVertex()
	v.Pos[0], v.Pos[1] = x, y
	return v
}

func TestEdgeWalkerDegenerate(t *testing.T) {
	a := deviceVertex(1, 3)
	b := deviceVertex(7, 3)
	w := newEdgeWalker(a, b, dimY)
	if _, ok := w.next(); ok {
		t.Error("degenerate edge produced a sample")
	}
}

// TestEdgeWalkerSnap checks that the walk starts at the first integer
// grid line at or after the lower endpoint and stops before the upper
// endpoint.
func TestEdgeWalkerSnap(t *testing.T) {
	a := deviceVertex(0, 0.25)
	b := deviceVertex(8, 2.25)
	w := newEdgeWalker(a, b, dimY)

	var ys, xs []float64
	for {
		v, ok := w.next()
		if !ok {
			break
		}
		ys = append(ys, v.Pos[1])
		xs = append(xs, v.Pos[0])
	}
	wantY := []float64{1, 2}
	wantX := []float64{3, 7}
	if len(ys) != len(wantY) {
		t.Fatalf("got %d samples, want %d", len(ys), len(wantY))
	}
	for i := range wantY {
		if math.Abs(ys[i]-wantY[i]) > 1e-12 ||
			math.Abs(xs[i]-wantX[i]) > 1e-12 {
			t.Errorf("sample %d: got (%g,%g), want (%g,%g)",
				i, xs[i], ys[i], wantX[i], wantY[i])
		}
	}
}

func TestEdgeWalkerDirection(t *testing.T) {
	// endpoints reversed; the walk still runs from low to high y
	a := deviceVertex(0, 4)
	b := deviceVertex(4, 0)
	w := newEdgeWalker(a, b, dimY)

	prev := math.Inf(-1)
	n := 0
	for {
		v, ok := w.next()
		if !ok {
			break
		}
		if v.Pos[1] <= prev {
			t.Errorf("samples not increasing in y: %g after %g", v.Pos[1], prev)
		}
		prev = v.Pos[1]
		n++
	}
	if n != 4 {
		t.Errorf("got %d samples, want 4", n)
	}
}

// TestScanTriangleCoverage rasterizes the triangle (0,0), (4,0), (0,4)
// and checks the exact covered sample set: the lower-left half with
// both diagonals exclusive, x + y < 4.
func TestScanTriangleCoverage(t *testing.T) {
	covered := make(map[[2]int]bool)
	scanTriangle(
		deviceVertex(0, 0),
		deviceVertex(4, 0),
		deviceVertex(0, 4),
		func(f Vertex) {
			x, y := f.pixel()
			if covered[[2]int{x, y}] {
				t.Errorf("sample (%d,%d) emitted twice", x, y)
			}
			covered[[2]int{x, y}] = true
		})

	for y := range 5 {
		for x := range 5 {
			want := x+y < 4
			if covered[[2]int{x, y}] != want {
				t.Errorf("sample (%d,%d): covered=%v, want %v",
					x, y, covered[[2]int{x, y}], want)
			}
		}
	}
}

// TestScanTriangleTiling checks that two triangles sharing an edge
// cover each sample exactly once (right and top edges are exclusive).
func TestScanTriangleTiling(t *testing.T) {
	counts := make(map[[2]int]int)
	count := func(f Vertex) {
		x, y := f.pixel()
		counts[[2]int{x, y}]++
	}

	// a 4x4 square split along the diagonal
	scanTriangle(deviceVertex(0, 0), deviceVertex(4, 0), deviceVertex(0, 4), count)
	scanTriangle(deviceVertex(4, 0), deviceVertex(0, 4), deviceVertex(4, 4), count)

	for y := range 4 {
		for x := range 4 {
			if c := counts[[2]int{x, y}]; c != 1 {
				t.Errorf("sample (%d,%d) covered %d times, want 1", x, y, c)
			}
		}
	}
	if len(counts) != 16 {
		t.Errorf("covered %d samples, want 16", len(counts))
	}
}

// TestScanTriangleInterpolation checks that attributes interpolate
// linearly across the triangle interior.
func TestScanTriangleInterpolation(t *testing.T) {
	p := deviceVertex(0, 0)
	q := deviceVertex(8, 0)
	r := deviceVertex(0, 8)
	p.Col = mgl64.Vec4{1, 0, 0, 1}
	q.Col = mgl64.Vec4{0, 1, 0, 1}
	r.Col = mgl64.Vec4{0, 0, 1, 1}

	scanTriangle(p, q, r, func(f Vertex) {
		x, y := f.pixel()
		// barycentric weights on the right triangle
		wq := float64(x) / 8
		wr := float64(y) / 8
		wp := 1 - wq - wr
		want := mgl64.Vec4{wp, wq, wr, 1}
		for i := range 4 {
			if math.Abs(f.Col[i]-want[i]) > 1e-9 {
				t.Errorf("sample (%d,%d): color %v, want %v", x, y, f.Col, want)
				return
			}
		}
	})
}

func TestScanTriangleDegenerate(t *testing.T) {
	// zero-height triangle produces no samples
	n := 0
	scanTriangle(
		deviceVertex(0, 2),
		deviceVertex(4, 2),
		deviceVertex(8, 2),
		func(Vertex) { n++ })
	if n != 0 {
		t.Errorf("degenerate triangle emitted %d samples", n)
	}
}
