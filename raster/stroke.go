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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// segList stores a list of subpaths, each a run of stroke segments.
type segList struct {
	segs  []strokeSegment
	start []int // index into segs where each subpath starts
}

func (l *segList) reset() {
	l.segs = l.segs[:0]
	l.start = l.start[:0]
}

// count returns the number of subpaths.
func (l *segList) count() int {
	return len(l.start)
}

// subpath returns the segments of subpath i.
func (l *segList) subpath(i int) []strokeSegment {
	end := len(l.segs)
	if i+1 < len(l.start) {
		end = l.start[i+1]
	}
	return l.segs[l.start[i]:end]
}

// mark returns the position where the next subpath will start.
func (l *segList) mark() int {
	return len(l.segs)
}

// commit ends the subpath which started at mark.  Empty subpaths are
// dropped.
func (l *segList) commit(mark int) {
	if len(l.segs) > mark {
		l.start = append(l.start, mark)
	}
}

// add appends the segment a-b.  Segments shorter than zeroLengthThreshold
// are skipped.
func (l *segList) add(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	l.segs = append(l.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// isDot reports whether segs is a zero-length dash.  Such dashes keep the
// orientation of the underlying path and become dots for round and square
// caps.
func isDot(segs []strokeSegment) bool {
	return len(segs) == 1 && segs[0].A == segs[0].B
}

// Stroke renders the outline of the path, using Width, Cap, Join,
// MiterLimit, Dash, DashPhase and CornerRadius.  The emit callback receives
// coverage row by row; its slice argument is only valid during the call.
//
// Closed subpaths are stroked like open ones which end at their start
// point.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.flattenPath(p)

	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]

	// subpaths without orientation only produce output with round caps
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degenerate {
			r.addDot(pt, vec.Vec2{X: 1})
		}
	}

	subpaths := &r.flat
	if len(r.Dash) > 0 {
		r.applyDash(subpaths, &r.dashed)
		subpaths = &r.dashed
	}
	if r.CornerRadius > 0 {
		r.roundCorners(subpaths, &r.rounded)
		subpaths = &r.rounded
	}

	for i := range subpaths.count() {
		segs := subpaths.subpath(i)
		if isDot(segs) {
			r.addDot(segs[0].A, segs[0].T)
			continue
		}

		start := len(r.outline)
		r.strokeSubpath(segs)
		if len(r.outline)-start >= 3 {
			r.outlineOffsets = append(r.outlineOffsets, start)
		} else {
			r.outline = r.outline[:start]
		}
	}

	r.fillOutlines(emit)
}

// addDot adds the outline of a zero-length subpath at pt.  T is the
// direction of the underlying path.  Butt caps produce no output.
func (r *Rasteriser) addDot(pt, T vec.Vec2) {
	start := len(r.outline)
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(pt, r.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
	case graphics.LineCapSquare:
		r.addSquare(pt, T, r.Width/2)
	default:
		return
	}
	r.outlineOffsets = append(r.outlineOffsets, start)
}

// flattenPath walks the path, replaces curves by line segments and stores
// the result in r.flat and r.degenerate.
func (r *Rasteriser) flattenPath(p path.Path) {
	r.flat.reset()
	r.degenerate = r.degenerate[:0]

	var current, start vec.Vec2
	mark := 0
	inSubpath := false
	drawn := false // saw a drawing command in the current subpath

	addSeg := r.flat.add
	finish := func() {
		if !inSubpath || !drawn {
			return
		}
		if r.flat.mark() == mark {
			r.degenerate = append(r.degenerate, start)
		} else {
			r.flat.commit(mark)
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			current = pts[0]
			start = current
			mark = r.flat.mark()
			inSubpath = true
			drawn = false

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			drawn = true
			addSeg(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			drawn = true
			r.flattenQuadratic(current, pts[0], pts[1], addSeg)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			drawn = true
			r.flattenCubic(current, pts[0], pts[1], pts[2], addSeg)
			current = pts[2]

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != start {
				addSeg(current, start)
			}
			drawn = true
			finish()
			current = start
			inSubpath = false
		}
	}
	finish()
}

// strokeSubpath appends the outline polygon of an open subpath to
// r.outline: the +N side forward, the end cap, the -N side backward and
// finally the start cap.  Join geometry is added on the outer side of each
// corner.
func (r *Rasteriser) strokeSubpath(segs []strokeSegment) {
	if len(segs) == 0 {
		return
	}
	d := r.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	r.addCap(first.A, first.T.Mul(-1), d)

	// forward pass, +N side
	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			r.outline = append(r.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0: // +N is the inner side
			skip = r.addInnerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	// backward pass, -N side
	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.outline = append(r.outline, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0: // -N is the outer side
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = r.addInnerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// addCap adds a line cap at P.  T points away from the line and d is half
// the stroke width.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// half circle from N through T to -N
		r.addArc(P, d, N, -math.Pi, true)
	}
	// butt caps need no extra points
}

// innerIntersection returns the point where the two inner offset lines of
// a corner meet.  For nearly collinear segments, ok is false.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, positiveSide bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}

	// cos(θ/2) = sqrt((1 + cos θ) / 2)
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
	if !positiveSide {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * cosHalf))), true
}

// addInnerCorner handles the inner side of a corner.  If the offset lines
// intersect, only the intersection point is added and the result is true,
// so that the caller skips the next offset point.  Otherwise both offset
// points are added.
func (r *Rasteriser) addInnerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, positiveSide bool) bool {
	if pt, ok := innerIntersection(P, T1, T2, d, positiveSide); ok {
		r.outline = append(r.outline, pt)
		return true
	}
	if positiveSide {
		r.outline = append(r.outline, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.outline = append(r.outline, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds join geometry at P, where the tangent changes from T1 to
// T2, on the outer side of the corner.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64, positiveSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		// the path doubles back: two caps instead of a join
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// the miter length ratio is 1/cos(θ/2)
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		const eps = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+eps {
			bisector := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
			if !positiveSide {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, P.Add(bisector.Mul(d/(l*cosHalf))))
			}
		}
		// otherwise fall back to a bevel, which needs no extra points

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positiveSide {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			// backward pass: from -N of T2 back to -N of T1
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				r.addArc(P, d, N2, -angle, false)
			} else {
				r.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc appends the vertices of a circular arc to the outline.
// startDir is the unit vector from center to the start of the arc and
// sweep is the angle in radians, positive for CCW.  If includeStart is
// false, the start point is assumed to be present already.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord over angle θ deviates from the circle by r(1 - cos(θ/2)).
	// Solve for the flatness tolerance to get the largest step.
	n := 1
	if devRadius >= r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	first := 0
	if !includeStart {
		first = 1
	}
	dt := sweep / float64(n)
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side 2d, centered at center and oriented
// along T.
func (r *Rasteriser) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	r.outline = append(r.outline,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// fillOutlines fills all outline polygons as one shape, using the nonzero
// winding rule, so that overlapping parts are painted once.
func (r *Rasteriser) fillOutlines(emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(emit)
}
