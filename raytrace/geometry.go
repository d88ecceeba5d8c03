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

package raytrace

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere is the only geometry primitive of the ray tracer.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
	Color  mgl64.Vec3 // linear RGB albedo
}

// Intersect returns the ray parameter t of the first intersection of
// the ray origin+t*dir with the sphere, handling rays starting inside
// the sphere.  ok is false when the ray misses.
func (s Sphere) Intersect(origin, dir mgl64.Vec3) (t float64, ok bool) {
	toCenter := s.Center.Sub(origin)
	r2 := s.Radius * s.Radius
	dirLen := dir.Len()

	inside := toCenter.Dot(toCenter) < r2
	tClosest := toCenter.Dot(dir) / dirLen

	if !inside && tClosest < 0 {
		return 0, false
	}

	d := origin.Add(dir.Mul(tClosest)).Sub(s.Center)
	d2 := d.Dot(d)
	if !inside && r2 < d2 {
		return 0, false
	}

	offset := math.Sqrt(r2-d2) / dirLen
	if inside {
		return tClosest + offset, true
	}
	return tClosest - offset, true
}

// NormalAt returns the outward unit normal at a surface point.
func (s Sphere) NormalAt(p mgl64.Vec3) mgl64.Vec3 {
	return p.Sub(s.Center).Normalize()
}

// Sun is a directional light source.
type Sun struct {
	Direction mgl64.Vec3 // direction towards the light
	Color     mgl64.Vec3
}
