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

package donut

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// buildArc returns the Sides+1 vertices of the polyline approximating a
// circle of the given radius with a gap of gapWidth degrees.
//
// For clockwise arcs the gap is centered on angle 0 before rotation;
// anticlockwise arcs run over the same angular range in the opposite sense.
// The whole arc is then rotated by gapAngle degrees.
// Out-of-range arguments are not rejected: radius 0 collapses all vertices
// to the origin, and a gap of 360 degrees or more collapses the span.
func buildArc(radius, gapWidth, gapAngle float64, dir Direction) []vec.Vec2 {
	offset := radians(gapAngle)
	halfGap := radians(gapWidth / 2)

	var start, end float64
	if dir == Anticlockwise {
		start, end = 2*math.Pi-halfGap, halfGap
	} else {
		start, end = halfGap, 2*math.Pi-halfGap
	}
	step := (end - start) / Sides // negative for anticlockwise arcs

	pts := make([]vec.Vec2, Sides+1)
	for i := range pts {
		angle := start + offset + float64(i)*step
		pts[i] = vec.Vec2{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return pts
}

// polylineLength returns the total length of the polyline through pts.
func polylineLength(pts []vec.Vec2) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Length()
	}
	return total
}

// pointAt returns the point at arc length d along the polyline, together
// with the unit tangent there.  total must be the value returned by
// polylineLength for pts.
//
// The query fails if the polyline has zero length or if d lies outside
// [0, total].
func pointAt(pts []vec.Vec2, total, d float64) (pos, tan vec.Vec2, ok bool) {
	if !(total > 0) || !(d >= 0 && d <= total) {
		return vec.Vec2{}, vec.Vec2{}, false
	}

	var last vec.Vec2
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Sub(pts[i-1])
		l := seg.Length()
		if l == 0 {
			continue
		}
		tan = seg.Mul(1 / l)
		if d <= l {
			return pts[i-1].Add(seg.Mul(d / l)), tan, true
		}
		d -= l
		last = pts[i]
	}

	// d exceeds the summed segment lengths by a rounding residue
	return last, tan, true
}

// polyline converts a list of vertices into an open path.
func polyline(pts []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, pt := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
	}
}
