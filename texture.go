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
	"image/color"
	"math"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"
)

// Texture is a pixel-addressable image sampled by the compositor.
// Texel colors are stored sRGB-encoded and converted to linear space
// when sampled.
type Texture struct {
	img           image.Image
	width, height int
}

// NewTexture wraps an existing image as a texture.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	return &Texture{img: img, width: b.Dx(), height: b.Dy()}
}

// LoadTexture reads a texture from an image file.  PNG, GIF, JPEG, BMP
// and TIFF files are accepted.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %q: %w", path, err)
	}
	return NewTexture(img), nil
}

// Sample returns the linear-space color of the nearest texel.  Texture
// coordinates wrap into [0,1); r, g and b are converted from sRGB to
// linear, alpha is passed through unconverted.
func (t *Texture) Sample(tc vec.Vec2) mgl64.Vec4 {
	s := wrap01(tc.X)
	u := wrap01(tc.Y)

	x := int(s * float64(t.width))
	y := int(u * float64(t.height))
	// s, u < 1 guarantees x < width, y < height

	b := t.img.Bounds()
	// Texel values are non-premultiplied RGBA in [0,255].
	c := color.NRGBAModel.Convert(t.img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)

	return mgl64.Vec4{
		srgbToLinear(float64(c.R) / 255),
		srgbToLinear(float64(c.G) / 255),
		srgbToLinear(float64(c.B) / 255),
		float64(c.A) / 255,
	}
}

// wrap01 wraps a coordinate into [0,1), keeping negative inputs
// positive like a mathematical modulus.
func wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
