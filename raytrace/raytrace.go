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

// Package raytrace is a companion renderer to the rasterization
// pipeline: recursive sphere intersection with Monte-Carlo bounce
// shading and directional lights.  It shares the rasterizer's output
// contract, producing an RGBA pixel buffer to be written as a PNG.
package raytrace

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// bounceBias is the minimum ray parameter for an intersection to
// count, keeping bounce rays from re-hitting their origin surface.
const bounceBias = 1e-4

// Raytracer renders a sphere scene by emitting one primary ray per
// pixel.  Configure the camera and scene fields, then call Render.
type Raytracer struct {
	Width, Height int

	// Bounces is the maximum recursion depth before a ray falls back
	// to direct lighting.
	Bounces int

	// Camera frame.
	Eye     mgl64.Vec3
	Forward mgl64.Vec3
	Right   mgl64.Vec3
	Up      mgl64.Vec3

	Spheres []Sphere
	Suns    []Sun

	// Rand is the source for bounce directions.  Seeded deterministic
	// by default; replace for reproducible alternatives.
	Rand *rand.Rand

	// RowFunc, if non-nil, is called once per finished row during
	// Render, for progress reporting.
	RowFunc func(y int)
}

// NewRaytracer returns a ray tracer with the default camera: eye at
// the origin looking down -z with +y up.
func NewRaytracer(width, height int) *Raytracer {
	return &Raytracer{
		Width:   width,
		Height:  height,
		Forward: mgl64.Vec3{0, 0, -1},
		Right:   mgl64.Vec3{1, 0, 0},
		Up:      mgl64.Vec3{0, 1, 0},
		Rand:    rand.New(rand.NewPCG(0, 0)),
	}
}

// firstIntersection finds the nearest sphere hit beyond the bounce
// bias.
func (rt *Raytracer) firstIntersection(origin, dir mgl64.Vec3) (float64, *Sphere) {
	bestT := math.Inf(1)
	var best *Sphere
	for i := range rt.Spheres {
		t, ok := rt.Spheres[i].Intersect(origin, dir)
		if !ok || t <= bounceBias || t >= bestT {
			continue
		}
		bestT = t
		best = &rt.Spheres[i]
	}
	return bestT, best
}

// directLight sums the contribution of all unshadowed suns at a
// surface point with the given normal (Lambert shading).
func (rt *Raytracer) directLight(origin, normal mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, sun := range rt.Suns {
		if _, blocked := rt.firstIntersection(origin, sun.Direction); blocked != nil {
			continue
		}
		lambert := normal.Dot(sun.Direction.Normalize())
		if lambert <= 0 {
			continue
		}
		sum = sum.Add(sun.Color.Mul(lambert))
	}
	return sum
}

// emitRay traces one ray, recursing for Monte-Carlo bounces.  It
// returns the collected linear color and an alpha that records whether
// the primary ray hit any geometry.
func (rt *Raytracer) emitRay(origin, dir mgl64.Vec3, depth int, lastNormal *mgl64.Vec3) (mgl64.Vec3, float64) {
	dir = dir.Normalize()

	t, hit := rt.firstIntersection(origin, dir)
	if hit == nil {
		if lastNormal == nil {
			// primary ray into the void
			return mgl64.Vec3{}, 0
		}
		// Bounce escaped the scene: gather light at the last surface.
		return rt.directLight(origin, *lastNormal), 1
	}

	point := origin.Add(dir.Mul(t))
	normal := hit.NormalAt(point)
	if depth >= rt.Bounces {
		return mulParts(hit.Color, rt.directLight(point, normal)), 1
	}

	// Diffuse bounce in a random direction within the normal's
	// hemisphere.
	bounce := mgl64.Vec3{rt.Rand.NormFloat64(), rt.Rand.NormFloat64(), rt.Rand.NormFloat64()}
	if bounce.Dot(normal) < 0 {
		bounce = bounce.Mul(-1)
	}

	bounced, alpha := rt.emitRay(point, bounce, depth+1, &normal)
	return mulParts(hit.Color, bounced).Mul(normal.Dot(bounce.Normalize())), alpha
}

// Render emits width×height primary rays and returns the finished
// image.  Colors are clamped to [0,1] and sRGB-encoded; alpha records
// hit (255) or miss (0).
func (rt *Raytracer) Render() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, rt.Width, rt.Height))
	maxDim := float64(max(rt.Width, rt.Height))

	for y := range rt.Height {
		for x := range rt.Width {
			sx := (2*float64(x) - float64(rt.Width)) / maxDim
			sy := (float64(rt.Height) - 2*float64(y)) / maxDim
			dir := rt.Forward.Add(rt.Right.Mul(sx)).Add(rt.Up.Mul(sy))

			c, alpha := rt.emitRay(rt.Eye, dir, 0, nil)
			img.SetNRGBA(x, y, color.NRGBA{
				R: encode(c[0]),
				G: encode(c[1]),
				B: encode(c[2]),
				A: uint8(alpha * 255),
			})
		}
		if rt.RowFunc != nil {
			rt.RowFunc(y)
		}
	}
	return img
}

// encode clamps a linear channel to [0,1], applies the forward sRGB
// transfer function and quantizes to 8 bits.
func encode(c float64) uint8 {
	c = math.Min(math.Max(c, 0), 1)
	if c <= 0.0031308 {
		c *= 12.92
	} else {
		c = math.Pow(c, 1/2.4)*1.055 - 0.055
	}
	return uint8(c * 255)
}

// mulParts multiplies two colors component-wise.
func mulParts(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
