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
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer executes draw calls against a vertex buffer and composites
// the resulting fragments into an image.  Create one with NewRasterizer
// and adjust the mode fields before issuing draw calls.
//
// A Rasterizer is single-threaded: draw calls execute strictly in call
// order, and the sample grid is owned by the Rasterizer for its whole
// lifetime.  It is not safe for concurrent use.
type Rasterizer struct {
	// Width and Height are the output image size in pixels.
	Width, Height int

	// Depth enables depth ordering: each sample's fragments are sorted
	// farthest-first before compositing.
	Depth bool

	// SRGB encodes the final pixel colors with the forward sRGB
	// transfer function instead of writing raw linear values.
	SRGB bool

	// Hyperbolic enables perspective-correct interpolation via
	// divide-by-w before rasterization and its undo per fragment.
	// When false, attributes interpolate linearly in device space.
	Hyperbolic bool

	// FSAA is the supersampling level; the sample grid has FSAA²
	// samples per output pixel.  Must be >= 1.
	FSAA int

	// CullBackfaces discards back-facing triangles before filling.
	CullBackfaces bool

	// Decals blends texture fragments over the interpolated vertex
	// color instead of replacing it.
	Decals bool

	// FrustumClipping clips triangles against the six view-frustum
	// planes before the perspective divide.  When off, off-screen
	// primitives still rasterize and their fragments are discarded by
	// the bounds check.
	FrustumClipping bool

	// Texture, if non-nil, adds a texture-colored fragment for every
	// rasterized fragment.
	Texture *Texture

	// UniformMatrix, if non-nil, transforms every vertex position
	// (and only the position) immediately before clipping.
	UniformMatrix *mgl64.Mat4

	// RowFunc, if non-nil, is called once per finished output row
	// during Render, for progress reporting.
	RowFunc func(y int)

	verts    []Vertex
	elements []int
	fb       *frameBuffer
}

// NewRasterizer returns a Rasterizer for a width×height output image
// with all modes off and FSAA 1.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		Width:  width,
		Height: height,
		FSAA:   1,
	}
}

// frameBuffer allocates the sample grid on first use, once width,
// height and FSAA are known.
func (r *Rasterizer) frameBuffer() *frameBuffer {
	if r.fb == nil {
		w := r.Width * r.FSAA
		h := r.Height * r.FSAA
		Logger().Info("allocating sample grid", "width", w, "height", h, "fsaa", r.FSAA)
		r.fb = newFrameBuffer(w, h)
	}
	return r.fb
}

// DrawArraysTriangles draws count/3 triangles from consecutive vertices
// starting at index first.  count must be a multiple of 3.
func (r *Rasterizer) DrawArraysTriangles(first, count int) error {
	if first < 0 || count < 0 || first+count > len(r.verts) {
		return fmt.Errorf("raster3d: drawArraysTriangles[%d:%d] out of range (%d vertices)",
			first, first+count, len(r.verts))
	}
	Logger().Debug("drawArraysTriangles", "first", first, "count", count)
	for i := first; i+2 < first+count; i += 3 {
		tri := [3]Vertex{r.verts[i], r.verts[i+1], r.verts[i+2]}
		if err := r.clipAndDraw(tri); err != nil {
			return err
		}
	}
	return nil
}

// DrawElementsTriangles draws count/3 triangles whose vertices are
// looked up through the element index list starting at offset.  count
// must be a multiple of 3.
func (r *Rasterizer) DrawElementsTriangles(count, offset int) error {
	if offset < 0 || count < 0 || offset+count > len(r.elements) {
		return fmt.Errorf("raster3d: drawElementsTriangles[%d:%d] out of range (%d elements)",
			offset, offset+count, len(r.elements))
	}
	Logger().Debug("drawElementsTriangles", "count", count, "offset", offset)
	for i := offset; i+2 < offset+count; i += 3 {
		var tri [3]Vertex
		for j := range 3 {
			e := r.elements[i+j]
			if e < 0 || e >= len(r.verts) {
				return fmt.Errorf("raster3d: element %d out of range (%d vertices)", e, len(r.verts))
			}
			tri[j] = r.verts[e]
		}
		if err := r.clipAndDraw(tri); err != nil {
			return err
		}
	}
	return nil
}

// clipAndDraw applies the uniform matrix, optionally clips the triangle
// against the frustum, and draws the result.  The input vertices are
// copies; the buffer store is never mutated by a draw.
func (r *Rasterizer) clipAndDraw(tri [3]Vertex) error {
	if r.UniformMatrix != nil {
		for i := range tri {
			tri[i] = tri[i].transformPos(*r.UniformMatrix)
		}
	}

	if !r.FrustumClipping {
		return r.drawTriangle(tri)
	}

	for _, t := range clipFrustum(tri) {
		if err := r.drawTriangle(t); err != nil {
			return err
		}
	}
	return nil
}

// drawTriangle rasterizes one clip-space triangle into the sample grid.
func (r *Rasterizer) drawTriangle(tri [3]Vertex) error {
	if r.CullBackfaces {
		// Cross product of two edge vectors; with the camera looking
		// down +z, a non-negative z component marks a back face.
		e1 := tri[1].Pos.Vec3().Sub(tri[0].Pos.Vec3())
		e2 := tri[2].Pos.Vec3().Sub(tri[1].Pos.Vec3())
		if e1.Cross(e2)[2] >= 0 {
			return nil
		}
	}

	fb := r.frameBuffer()

	// Divide-by-w (hyperbolic mode only) and viewport mapping.
	for i := range tri {
		if r.Hyperbolic {
			v, err := tri[i].divideByW()
			if err != nil {
				return err
			}
			tri[i] = v
		}
		tri[i] = tri[i].toDevice(fb.width, fb.height)
	}

	scanTriangle(tri[0], tri[1], tri[2], r.emitFragment)
	return nil
}

// emitFragment stores one rasterized fragment, plus a texture-colored
// companion fragment when a texture is bound.
func (r *Rasterizer) emitFragment(frag Vertex) {
	if r.Hyperbolic {
		frag = frag.undoDivideByW()
	}
	fb := r.fb
	fb.add(frag)

	if r.Texture == nil {
		return
	}

	texFrag := frag
	texColor := r.Texture.Sample(frag.Tex)
	if r.Decals {
		texColor = blendOver(texColor, frag.Col)
	}
	texFrag.Col = texColor
	fb.add(texFrag)
}

// DrawArraysPoints draws count point sprites centered on consecutive
// vertices starting at first.  Each sprite is an axis-aligned square
// with side length equal to the vertex's point size in output pixels,
// with texture coordinates running from (0,0) at the top-left corner to
// (1,1) at the bottom-right.
func (r *Rasterizer) DrawArraysPoints(first, count int) error {
	if first < 0 || count < 0 || first+count > len(r.verts) {
		return fmt.Errorf("raster3d: drawArraysPoints[%d:%d] out of range (%d vertices)",
			first, first+count, len(r.verts))
	}
	Logger().Debug("drawArraysPoints", "first", first, "count", count)

	fb := r.frameBuffer()
	for i := first; i < first+count; i++ {
		center := r.verts[i]
		if r.UniformMatrix != nil {
			center = center.transformPos(*r.UniformMatrix)
		}

		// Point size is given in output pixels; the sample grid is
		// FSAA times finer.
		size := center.Size * float64(r.FSAA)

		if r.Hyperbolic {
			v, err := center.divideByW()
			if err != nil {
				return err
			}
			center = v
		}
		center = center.toDevice(fb.width, fb.height)

		if size <= 0 {
			continue
		}

		corner := func(dx, dy, s, t float64) Vertex {
			v := center
			v.Pos[0] += dx * size / 2
			v.Pos[1] += dy * size / 2
			if r.Hyperbolic {
				// center.Pos[3] holds 1/w after the divide.  Texture
				// coordinates assigned here must be pre-divided like the
				// attributes that went through divideByW, so that
				// undoDivideByW restores them per fragment.
				s *= center.Pos[3]
				t *= center.Pos[3]
			}
			v.Tex = vec.Vec2{X: s, Y: t}
			return v
		}
		tl := corner(-1, -1, 0, 0)
		tr := corner(1, -1, 1, 0)
		bl := corner(-1, 1, 0, 1)
		br := corner(1, 1, 1, 1)

		scanTriangle(tl, tr, bl, r.emitFragment)
		scanTriangle(tr, br, bl, r.emitFragment)
	}
	return nil
}

// Render resolves the sample grid into the final width×height image.
// Supersampled buffers are downsampled with a premultiplied-alpha box
// filter; pixels whose samples received no fragments stay fully
// transparent.
func (r *Rasterizer) Render() *image.NRGBA {
	fb := r.frameBuffer()
	Logger().Info("resolving", "width", r.Width, "height", r.Height)

	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := range r.Height {
		for x := range r.Width {
			c, ok := fb.resolvePixel(x, y, r.FSAA, r.Depth)
			if !ok {
				continue
			}
			putPixel(img, x, y, c, r.SRGB)
		}
		if r.RowFunc != nil {
			r.RowFunc(y)
		}
	}
	return img
}
