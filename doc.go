// Package raster3d implements a software rasterization pipeline: draw
// calls over a vertex attribute buffer are clipped against the view
// frustum, interpolated across filled triangles with optional
// perspective correction, composited with alpha blending per
// supersampled sample, and resolved into an 8-bit RGBA image.
package raster3d
