// seehuhn.de/go/donut - ring-shaped progress indicators
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

// Package raster converts paths into anti-aliased pixel coverage.
//
// The [Rasteriser] supports nonzero fills and strokes with caps, joins,
// dash patterns and rounded corners.  It is the engine behind the raster
// drawing surface in seehuhn.de/go/donut/canvas.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts paths to coverage values between 0 (pixel outside
// the shape) and 1 (pixel fully covered).  Reuse one Rasteriser for many
// paths: internal buffers grow as needed but are never released, so that
// no allocations happen in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.  Must be positive.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of open subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins.  Must be at least 1.
	MiterLimit float64

	// Dash gives alternating on/off lengths in user-space units.
	// Nil means a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which the
	// pattern starts.
	DashPhase float64

	// CornerRadius, if positive, rounds every corner of the (dashed) path
	// before it is stroked.  Each corner is replaced by a quadratic curve
	// which uses the corner as its control point.
	CornerRadius float64

	// buffers reused across calls
	cover     []float32 // coverage change per pixel; reused as output
	area      []float32 // area within pixel
	edges     []edge
	activeIdx []int

	// stroke outlines, all polygons contiguous
	outline        []vec.Vec2
	outlineOffsets []int

	// flattened, dashed and corner-rounded subpaths
	flat       segList
	dashed     segList
	rounded    segList
	degenerate []vec.Vec2 // subpaths without orientation

	// device-space bounding box of r.edges
	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
	r.CornerRadius = 0
}

// toDevice maps a point from user space to device space.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// transformLinear applies the linear part of the CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by line
// segments and calls emit for each of them.  Points are in user space,
// the tolerance is applied in device space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces the cubic Bézier curve p0, ..., p3 by line
// segments and calls emit for each of them.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Fill fills the path using the nonzero winding rule.  All subpaths are
// implicitly closed.  The emit callback receives coverage row by row;
// its slice argument is only valid during the call.
func (r *Rasteriser) Fill(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	r.scan(emit)
}

// startEdges clears the edge list.
func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge adds the user-space segment p0-p1 to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	d0 := r.toDevice(p0)
	d1 := r.toDevice(p1)

	dy := d1.Y - d0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return // horizontal edges do not contribute to coverage
	}

	r.edges = append(r.edges, edge{
		x0: d0.X, y0: d0.Y,
		x1: d1.X, y1: d1.Y,
		dxdy: (d1.X - d0.X) / dy,
	})

	xLo, xHi := min(d0.X, d1.X), max(d0.X, d1.X)
	yLo, yHi := min(d0.Y, d1.Y), max(d0.Y, d1.Y)
	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = xLo, xHi
		r.bboxYMin, r.bboxYMax = yLo, yHi
		r.bboxEmpty = false
	} else {
		r.bboxXMin = min(r.bboxXMin, xLo)
		r.bboxXMax = max(r.bboxXMax, xHi)
		r.bboxYMin = min(r.bboxYMin, yLo)
		r.bboxYMax = max(r.bboxYMax, yHi)
	}
}

// pixelBounds returns the integer bounding box of the edge list, clipped
// to r.Clip.  If the box is empty, ok is false.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage accumulation:
//
// For each pixel of a scanline two values are collected.  "cover" is the
// signed vertical extent of the edges crossing the pixel, "area" is the
// same weighted by the fraction of the pixel to the right of the crossing.
// Integrating along the scanline,
//
//	coverage[i] = sum(cover[0:i]) + area[i]
//
// gives the signed area of the shape inside each pixel.

// accumulateEdge adds the contribution of e within scanline y to the
// buffers.  The buffers are indexed by x-xMin.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < xMin {
		// entirely left of the box: full cover for the first pixel
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= xMax {
		return
	}

	if pixLeft == pixRight {
		r.accumulateColumn(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// split the edge at pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		r.accumulateColumn(e, segTop, segBot, sign, pix, cover, area, xMin, xMax)
	}
}

// accumulateColumn adds the part of e between yTop and yBot, which lies
// inside pixel column pix.
func (r *Rasteriser) accumulateColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		idx := pix - xMin
		cover[idx] += c
		area[idx] += c * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover and area values into coverage
// for the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
// If all values are zero, trimmed is nil.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// scan rasterises r.edges scanline by scanline, using an active edge list.
func (r *Rasteriser) scan(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yTop {
				// edge is finished, swap-remove it
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| for segments which are
	// considered collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself,
	// cos(179.43°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)
