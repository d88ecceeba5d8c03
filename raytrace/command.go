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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Job is the result of processing a ray-tracing command file.
type Job struct {
	Tracer   *Raytracer
	Filename string
}

// Process reads a ray-tracing command file.  The grammar mirrors the
// rasterizer's: one whitespace-separated command per line, unknown
// lines ignored.  Scene state (the current color) applies to the
// geometry that follows it.
func Process(r io.Reader) (*Job, error) {
	job := &Job{Tracer: NewRaytracer(0, 0)}
	current := mgl64.Vec3{1, 1, 1}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if err := job.exec(args, &current); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return job, nil
}

func (job *Job) exec(args []string, current *mgl64.Vec3) error {
	rt := job.Tracer

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
		rt.Width, rt.Height = width, height
		job.Filename = args[3]

	case "bounces":
		if len(args) != 2 {
			return fmt.Errorf("bounces: want 1 argument, got %d", len(args)-1)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bounces: bad count %q", args[1])
		}
		rt.Bounces = n

	case "eye":
		v, err := parseVec3(args[1:])
		if err != nil {
			return fmt.Errorf("eye: %w", err)
		}
		rt.Eye = v
	case "forward":
		v, err := parseVec3(args[1:])
		if err != nil {
			return fmt.Errorf("forward: %w", err)
		}
		rt.Forward = v
	case "up":
		v, err := parseVec3(args[1:])
		if err != nil {
			return fmt.Errorf("up: %w", err)
		}
		rt.Up = v

	case "color":
		v, err := parseVec3(args[1:])
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		*current = v

	case "sphere":
		if len(args) != 5 {
			return fmt.Errorf("sphere: want 4 arguments, got %d", len(args)-1)
		}
		center, err := parseVec3(args[1:4])
		if err != nil {
			return fmt.Errorf("sphere: %w", err)
		}
		radius, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			return fmt.Errorf("sphere: bad radius %q", args[4])
		}
		rt.Spheres = append(rt.Spheres, Sphere{Center: center, Radius: radius, Color: *current})

	case "sun":
		v, err := parseVec3(args[1:])
		if err != nil {
			return fmt.Errorf("sun: %w", err)
		}
		rt.Suns = append(rt.Suns, Sun{Direction: v, Color: *current})
	}

	return nil
}

func parseVec3(args []string) (mgl64.Vec3, error) {
	if len(args) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want 3 values, got %d", len(args))
	}
	var v mgl64.Vec3
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("bad number %q", a)
		}
		v[i] = f
	}
	return v, nil
}
