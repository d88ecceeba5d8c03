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

// Package command interprets rasterizer command files.
//
// A command file is a line-oriented text format: each line holds one
// whitespace-separated command.  State and buffer commands configure
// the pipeline, draw commands execute immediately in stream order, and
// unrecognized or blank lines are ignored.
package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster3d"
)

// ErrNoImage is returned when a draw or render command appears before
// the png command has established the image size.
var ErrNoImage = errors.New("command: draw before png command")

// Job is the result of processing a command file: a configured
// rasterizer with all draw calls applied, and the output filename named
// in the file.
type Job struct {
	Rast     *raster3d.Rasterizer
	Filename string
}

// Process reads a command file and executes it against a fresh
// rasterizer.  dir is the directory texture paths are resolved
// against, normally the directory of the command file.
func Process(r io.Reader, dir string) (*Job, error) {
	job := &Job{Rast: raster3d.NewRasterizer(0, 0)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := job.exec(strings.Fields(scanner.Text()), dir); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return job, nil
}

// exec applies one tokenized command.  Unknown commands are ignored so
// that comments and future extensions do not break old files.
func (job *Job) exec(args []string, dir string) error {
	if len(args) == 0 {
		return nil
	}
	rast := job.Rast

	switch args[0] {
	case "png":
		if len(args) != 4 {
			return fmt.Errorf("png: want 3 arguments, got %d", len(args)-1)
		}
		width, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("png: bad width %q", args[1])
		}
		height, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("png: bad height %q", args[2])
		}
		rast.Width = width
		rast.Height = height
		job.Filename = args[3]

	case "depth":
		rast.Depth = true
	case "sRGB":
		rast.SRGB = true
	case "hyp":
		rast.Hyperbolic = true
	case "cull":
		rast.CullBackfaces = true
	case "decals":
		rast.Decals = true
	case "frustum":
		rast.FrustumClipping = true

	case "fsaa":
		if len(args) != 2 {
			return fmt.Errorf("fsaa: want 1 argument, got %d", len(args)-1)
		}
		level, err := strconv.Atoi(args[1])
		if err != nil || level < 1 {
			return fmt.Errorf("fsaa: bad level %q", args[1])
		}
		rast.FSAA = level

	case "texture":
		if len(args) != 2 {
			return fmt.Errorf("texture: want 1 argument, got %d", len(args)-1)
		}
		tex, err := raster3d.LoadTexture(filepath.Join(dir, args[1]))
		if err != nil {
			return err
		}
		rast.Texture = tex

	case "uniformMatrix":
		vals, err := parseFloats(args[1:])
		if err != nil {
			return fmt.Errorf("uniformMatrix: %w", err)
		}
		if len(vals) != 16 {
			return fmt.Errorf("uniformMatrix: want 16 values, got %d", len(vals))
		}
		m := rowMajorMat4(vals)
		rast.UniformMatrix = &m

	case "position":
		groups, err := parseGroups(args[1:])
		if err != nil {
			return fmt.Errorf("position: %w", err)
		}
		positions := make([]mgl64.Vec4, len(groups))
		for i, g := range groups {
			positions[i] = mgl64.Vec4{0, 0, 0, 1}
			copy(positions[i][:], g)
		}
		rast.SetPositions(positions)

	case "color":
		groups, err := parseGroups(args[1:])
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		colors := make([]mgl64.Vec4, len(groups))
		for i, g := range groups {
			colors[i] = mgl64.Vec4{0, 0, 0, 1}
			copy(colors[i][:], g)
		}
		rast.SetColors(colors)

	case "texcoord":
		groups, err := parseGroups(args[1:])
		if err != nil {
			return fmt.Errorf("texcoord: %w", err)
		}
		coords := make([]vec.Vec2, len(groups))
		for i, g := range groups {
			if len(g) > 0 {
				coords[i].X = g[0]
			}
			if len(g) > 1 {
				coords[i].Y = g[1]
			}
		}
		rast.SetTexCoords(coords)

	case "pointsize":
		groups, err := parseGroups(args[1:])
		if err != nil {
			return fmt.Errorf("pointsize: %w", err)
		}
		sizes := make([]float64, len(groups))
		for i, g := range groups {
			if len(g) > 0 {
				sizes[i] = g[0]
			}
		}
		rast.SetPointSizes(sizes)

	case "elements":
		elements := make([]int, 0, len(args)-1)
		for _, a := range args[1:] {
			e, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("elements: bad index %q", a)
			}
			elements = append(elements, e)
		}
		rast.SetElements(elements)

	case "drawArraysTriangles":
		first, count, err := parseIntPair(args)
		if err != nil {
			return err
		}
		if err := job.checkImage(); err != nil {
			return err
		}
		return rast.DrawArraysTriangles(first, count)

	case "drawElementsTriangles":
		count, offset, err := parseIntPair(args)
		if err != nil {
			return err
		}
		if err := job.checkImage(); err != nil {
			return err
		}
		return rast.DrawElementsTriangles(count, offset)

	case "drawArraysPoints":
		first, count, err := parseIntPair(args)
		if err != nil {
			return err
		}
		if err := job.checkImage(); err != nil {
			return err
		}
		return rast.DrawArraysPoints(first, count)
	}

	return nil
}

// checkImage verifies that the png command has set the image size, so
// that the sample grid can be allocated.
func (job *Job) checkImage() error {
	if job.Rast.Width <= 0 || job.Rast.Height <= 0 {
		return ErrNoImage
	}
	return nil
}

// parseGroups interprets a buffer command's arguments: a leading group
// size followed by the flat value list.  Values are packaged into
// groups of that size; a trailing partial group is dropped.
func parseGroups(args []string) ([][]float64, error) {
	if len(args) == 0 {
		return nil, errors.New("missing group size")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 {
		return nil, fmt.Errorf("bad group size %q", args[0])
	}
	vals, err := parseFloats(args[1:])
	if err != nil {
		return nil, err
	}

	groups := make([][]float64, 0, len(vals)/size)
	for i := 0; i+size <= len(vals); i += size {
		groups = append(groups, vals[i:i+size])
	}
	return groups, nil
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", a)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseIntPair(args []string) (int, int, error) {
	if len(args) != 3 {
		return 0, 0, fmt.Errorf("%s: want 2 arguments, got %d", args[0], len(args)-1)
	}
	a, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: bad argument %q", args[0], args[1])
	}
	b, err := strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: bad argument %q", args[0], args[2])
	}
	return a, b, nil
}

// rowMajorMat4 builds a matrix from 16 row-major values.  mgl64
// matrices are column-major internally.
func rowMajorMat4(vals []float64) mgl64.Mat4 {
	var m mgl64.Mat4
	for row := range 4 {
		for col := range 4 {
			m[col*4+row] = vals[row*4+col]
		}
	}
	return m
}
