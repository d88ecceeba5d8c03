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

// Command raster3d renders a command file to the PNG file it names.
//
// Usage:
//
//	raster3d [-mode rast|ray] [-v] file.txt
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/command"
	"seehuhn.de/go/raster3d/raytrace"
)

func main() {
	mode := flag.String("mode", "rast", "renderer to use: rast or ray")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: raster3d [-mode rast|ray] [-v] file.txt")
		os.Exit(2)
	}

	if *verbose {
		raster3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*mode, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "raster3d:", err)
		os.Exit(1)
	}
}

func run(mode, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var img *image.NRGBA
	var outName string

	switch mode {
	case "rast":
		job, err := command.Process(f, filepath.Dir(path))
		if err != nil {
			return err
		}
		bar := progressbar.Default(int64(job.Rast.Height), "rendering")
		job.Rast.RowFunc = func(int) { bar.Add(1) }
		img = job.Rast.Render()
		outName = job.Filename

	case "ray":
		job, err := raytrace.Process(f)
		if err != nil {
			return err
		}
		bar := progressbar.Default(int64(job.Tracer.Height), "rendering")
		job.Tracer.RowFunc = func(int) { bar.Add(1) }
		img = job.Tracer.Render()
		outName = job.Filename

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	if outName == "" {
		return fmt.Errorf("%s: no png command found", path)
	}

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
