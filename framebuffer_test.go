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

func fragment(x, y, z float64, col mgl64.Vec4) Vertex {
	v := DefaultVertex()
	v.Pos = mgl64.Vec4{x, y, z, 1}
	v.Col = col
	return v
}

func TestFrameBufferEmpty(t *testing.T) {
	fb := newFrameBuffer(2, 2)
	if _, ok := fb.resolveSample(0, 0, false); ok {
		t.Error("empty sample resolved to a color")
	}
	if _, ok := fb.resolvePixel(0, 0, 2, false); ok {
		t.Error("empty pixel resolved to a color")
	}
}

func TestFrameBufferDiscardsOutside(t *testing.T) {
	fb := newFrameBuffer(2, 2)
	fb.add(fragment(-1, 0, 0, mgl64.Vec4{1, 0, 0, 1}))
	fb.add(fragment(0, 5, 0, mgl64.Vec4{1, 0, 0, 1}))
	fb.add(fragment(2, 0, 0, mgl64.Vec4{1, 0, 0, 1}))
	for i, cell := range fb.cells {
		if len(cell) != 0 {
			t.Errorf("cell %d holds %d fragments", i, len(cell))
		}
	}
}

// TestResolveOpaqueWins checks that an opaque fragment composited last
// replaces everything beneath it.
func TestResolveOpaqueWins(t *testing.T) {
	fb := newFrameBuffer(1, 1)
	fb.add(fragment(0, 0, 0, mgl64.Vec4{0, 1, 0, 0.5}))
	fb.add(fragment(0, 0, 0, mgl64.Vec4{1, 0, 0, 1}))

	got, ok := fb.resolveSample(0, 0, false)
	if !ok {
		t.Fatal("no color")
	}
	if got != (mgl64.Vec4{1, 0, 0, 1}) {
		t.Errorf("got %v, want opaque red", got)
	}
}

// TestResolveBlend checks the "over" operator for a half-transparent
// source above an opaque destination.
func TestResolveBlend(t *testing.T) {
	fb := newFrameBuffer(1, 1)
	fb.add(fragment(0, 0, 0, mgl64.Vec4{1, 0, 0, 1}))
	fb.add(fragment(0, 0, 0, mgl64.Vec4{0, 0, 1, 0.5}))

	got, ok := fb.resolveSample(0, 0, false)
	if !ok {
		t.Fatal("no color")
	}
	want := mgl64.Vec4{0.5, 0, 0.5, 1}
	for i := range 4 {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

// TestResolveDepthOrder checks that depth sorting composites fragments
// farthest-first regardless of generation order.
func TestResolveDepthOrder(t *testing.T) {
	near := fragment(0, 0, 0.1, mgl64.Vec4{1, 0, 0, 1})
	far := fragment(0, 0, 0.9, mgl64.Vec4{0, 1, 0, 1})

	// near drawn first; without depth the later (far) fragment wins
	fb := newFrameBuffer(1, 1)
	fb.add(near)
	fb.add(far)

	got, _ := fb.resolveSample(0, 0, false)
	if got != (mgl64.Vec4{0, 1, 0, 1}) {
		t.Errorf("without depth: got %v, want green", got)
	}

	got, _ = fb.resolveSample(0, 0, true)
	if got != (mgl64.Vec4{1, 0, 0, 1}) {
		t.Errorf("with depth: got %v, want red", got)
	}
}

// TestResolveTransparentFragments checks that alpha <= 0 fragments are
// skipped and cannot cause a division by zero.
func TestResolveTransparentFragments(t *testing.T) {
	fb := newFrameBuffer(1, 1)
	fb.add(fragment(0, 0, 0, mgl64.Vec4{1, 1, 1, 0}))
	fb.add(fragment(0, 0, 0, mgl64.Vec4{1, 1, 1, -0.5}))

	got, ok := fb.resolveSample(0, 0, false)
	if !ok {
		t.Fatal("sample with fragments must resolve")
	}
	if got != (mgl64.Vec4{}) {
		t.Errorf("got %v, want transparent black", got)
	}
	for i := range 4 {
		if math.IsNaN(got[i]) {
			t.Fatalf("NaN in resolved color: %v", got)
		}
	}
}

func TestBlendOverZeroAlpha(t *testing.T) {
	got := blendOver(mgl64.Vec4{1, 1, 1, 0}, mgl64.Vec4{})
	if got != (mgl64.Vec4{}) {
		t.Errorf("got %v, want zero", got)
	}
}

// TestResolvePixelFSAA checks the box filter: with half the samples
// opaque red and half empty, the pixel is red at half coverage.
func TestResolvePixelFSAA(t *testing.T) {
	fb := newFrameBuffer(2, 2)
	fb.add(fragment(0, 0, 0, mgl64.Vec4{1, 0, 0, 1}))
	fb.add(fragment(1, 0, 0, mgl64.Vec4{1, 0, 0, 1}))

	got, ok := fb.resolvePixel(0, 0, 2, false)
	if !ok {
		t.Fatal("no color")
	}
	want := mgl64.Vec4{1, 0, 0, 0.5}
	for i := range 4 {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

// TestResolvePixelFSAAFull checks that full coverage averages back to
// the exact sample color.
func TestResolvePixelFSAAFull(t *testing.T) {
	fb := newFrameBuffer(2, 2)
	for y := range 2 {
		for x := range 2 {
			fb.add(fragment(float64(x), float64(y), 0, mgl64.Vec4{0.25, 0.5, 1, 1}))
		}
	}

	got, ok := fb.resolvePixel(0, 0, 2, false)
	if !ok {
		t.Fatal("no color")
	}
	want := mgl64.Vec4{0.25, 0.5, 1, 1}
	for i := range 4 {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
