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
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/rect"
)

// frameBuffer is the sample grid: width*fsaa by height*fsaa cells, each
// holding the fragments that landed on that sample in generation order.
// A cell with no fragments contributes nothing to its output pixel.
//
// The grid is allocated once, on first use after width, height and fsaa
// are known, and is exclusively owned by its Rasterizer.
type frameBuffer struct {
	bounds        rect.Rect // device-space sample bounds
	width, height int       // in samples
	cells         [][]Vertex
}

func newFrameBuffer(width, height int) *frameBuffer {
	return &frameBuffer{
		bounds: rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)},
		width:  width,
		height: height,
		cells:  make([][]Vertex, width*height),
	}
}

// add appends a fragment to its sample's list.  Fragments outside the
// sample bounds are silently discarded; they are a normal result of
// drawing with frustum clipping disabled.
func (fb *frameBuffer) add(f Vertex) {
	x, y := f.pixel()
	fx, fy := float64(x), float64(y)
	if fx < fb.bounds.LLx || fx >= fb.bounds.URx || fy < fb.bounds.LLy || fy >= fb.bounds.URy {
		return
	}
	idx := y*fb.width + x
	fb.cells[idx] = append(fb.cells[idx], f)
}

// resolveSample composites one sample's fragment list into a single
// linear RGBA color.  With depth enabled the fragments are first
// ordered farthest-first by interpolated z; otherwise they composite
// in generation order.  ok is false when the sample holds no fragments.
func (fb *frameBuffer) resolveSample(x, y int, depth bool) (mgl64.Vec4, bool) {
	frags := fb.cells[y*fb.width+x]
	if len(frags) == 0 {
		return mgl64.Vec4{}, false
	}

	if depth {
		frags = slices.Clone(frags)
		slices.SortStableFunc(frags, func(a, b Vertex) int {
			// farthest first (z descending)
			switch {
			case a.Pos[2] > b.Pos[2]:
				return -1
			case a.Pos[2] < b.Pos[2]:
				return 1
			default:
				return 0
			}
		})
	}

	// Back-to-front "over" compositing.  Fully transparent fragments
	// contribute nothing.
	var dst mgl64.Vec4
	for _, f := range frags {
		if f.Col[3] <= 0 {
			continue
		}
		dst = blendOver(f.Col, dst)
	}
	return dst, true
}

// blendOver composites a non-premultiplied linear RGBA source over a
// destination using the standard "over" operator.  A zero result alpha
// yields fully transparent black, never a division by zero.
func blendOver(src, dst mgl64.Vec4) mgl64.Vec4 {
	sa, da := src[3], dst[3]
	a := sa + da - da*sa
	if a <= 0 {
		return mgl64.Vec4{}
	}
	out := src.Mul(sa).Add(dst.Mul((1 - sa) * da)).Mul(1 / a)
	out[3] = a
	return out
}

// resolvePixel produces the final color of one output pixel from its
// fsaa² samples.  With fsaa == 1 the single sample's color is used
// directly.  Otherwise the samples are averaged with premultiplied
// alpha: empty samples count as transparent, and a zero averaged alpha
// yields transparent black.  ok is false when no sample of the pixel
// holds any fragment.
func (fb *frameBuffer) resolvePixel(px, py, fsaa int, depth bool) (mgl64.Vec4, bool) {
	if fsaa == 1 {
		return fb.resolveSample(px, py, depth)
	}

	var rgbSum mgl64.Vec3
	var alphaSum float64
	any := false
	for sy := py * fsaa; sy < (py+1)*fsaa; sy++ {
		for sx := px * fsaa; sx < (px+1)*fsaa; sx++ {
			c, ok := fb.resolveSample(sx, sy, depth)
			if !ok {
				continue
			}
			any = true
			rgbSum = rgbSum.Add(c.Vec3().Mul(c[3]))
			alphaSum += c[3]
		}
	}
	if !any {
		return mgl64.Vec4{}, false
	}

	n := float64(fsaa * fsaa)
	alpha := alphaSum / n
	rgb := rgbSum.Mul(1 / n)
	if alpha == 0 {
		rgb = mgl64.Vec3{}
	} else {
		rgb = rgb.Mul(1 / alpha)
	}
	return mgl64.Vec4{rgb[0], rgb[1], rgb[2], alpha}, true
}
