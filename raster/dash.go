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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// applyDash cuts the subpaths in src into dashes, using r.Dash and
// r.DashPhase, and stores the dashes in dst.  A dash of length zero is
// stored as a single segment with A == B.
func (r *Rasteriser) applyDash(src, dst *segList) {
	dst.reset()

	pattern := r.Dash
	n := len(pattern)
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if n%2 == 1 {
		total *= 2 // odd patterns repeat with on/off swapped
	}
	if !(total > 0) {
		return
	}

	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}

	for i := range src.count() {
		segs := src.subpath(i)

		// find the pattern element which contains the phase
		idx := 0
		left := phase
		for left > 0 && pattern[idx%n] <= left {
			left -= pattern[idx%n]
			idx++
		}
		remaining := pattern[idx%n] - left
		on := idx%2 == 0

		mark := dst.mark()
		pos := 0        // index of the current segment
		consumed := 0.0 // distance already walked on segs[pos]
		for pos < len(segs) {
			seg := &segs[pos]
			segLen := seg.B.Sub(seg.A).Length()

			if remaining > segLen-consumed {
				// the pattern element continues on the next segment
				if on && segLen-consumed > zeroLengthThreshold {
					dst.addPart(seg, consumed, segLen, segLen, mark)
				}
				remaining -= segLen - consumed
				pos++
				consumed = 0
				continue
			}

			// the pattern element ends on this segment
			end := consumed + remaining
			if on {
				dst.addPart(seg, consumed, end, segLen, mark)
				dst.commit(mark)
				mark = dst.mark()
			}
			consumed = end
			idx++
			remaining = pattern[idx%n]
			on = idx%2 == 0
		}
		if on {
			dst.commit(mark)
		}
	}
}

// addPart appends the part of seg between the distances from and to,
// measured from seg.A.  If the part has zero length and is the first part
// of the dash which started at mark, a point segment is stored instead.
func (l *segList) addPart(seg *strokeSegment, from, to, segLen float64, mark int) {
	if from == 0 && to == segLen {
		l.segs = append(l.segs, *seg)
		return
	}

	d := seg.B.Sub(seg.A)
	a := seg.A.Add(d.Mul(from / segLen))
	b := seg.A.Add(d.Mul(to / segLen))
	if b.Sub(a).Length() > zeroLengthThreshold {
		l.segs = append(l.segs, strokeSegment{A: a, B: b, T: seg.T, N: seg.N})
	} else if len(l.segs) == mark {
		l.segs = append(l.segs, strokeSegment{A: a, B: a, T: seg.T, N: seg.N})
	}
}

// roundCorners replaces every corner of the subpaths in src by a
// quadratic curve and stores the flattened result in dst.
func (r *Rasteriser) roundCorners(src, dst *segList) {
	dst.reset()
	for i := range src.count() {
		segs := src.subpath(i)
		mark := dst.mark()
		if isDot(segs) {
			dst.segs = append(dst.segs, segs[0])
			dst.commit(mark)
			continue
		}

		current := segs[0].A
		lineTo := func(pt vec.Vec2) {
			dst.add(current, pt)
			current = pt
		}
		quadTo := func(ctrl, pt vec.Vec2) {
			r.flattenQuadratic(current, ctrl, pt, dst.add)
			current = pt
		}
		roundSubpath(segs, r.CornerRadius, lineTo, quadTo)
		dst.commit(mark)
	}
}

// roundSubpath walks along an open subpath, starting at segs[0].A, and
// replaces each corner by a quadratic curve with the corner as control
// point.  The curve starts and ends at distance radius from the corner,
// but never uses more than half of an adjacent segment.
func roundSubpath(segs []strokeSegment, radius float64, lineTo func(vec.Vec2), quadTo func(ctrl, pt vec.Vec2)) {
	for i := range segs {
		seg := &segs[i]
		if i == len(segs)-1 {
			lineTo(seg.B)
			break
		}

		next := &segs[i+1]
		sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
		if math.Abs(sinTheta) < collinearityThreshold && seg.T.Dot(next.T) > 0 {
			lineTo(seg.B)
			continue
		}

		in := min(radius, seg.B.Sub(seg.A).Length()/2)
		out := min(radius, next.B.Sub(next.A).Length()/2)
		lineTo(seg.B.Sub(seg.T.Mul(in)))
		quadTo(seg.B, next.A.Add(next.T.Mul(out)))
	}
}

// DashAndRound applies a dash pattern and corner rounding to p, in the
// same way as [Rasteriser.Stroke] does, and returns the resulting path.
// Curves in p are flattened with the default flatness, taking user space
// to be device space.  Corners are returned as quadratic curves.
// Zero-length dashes are returned as a MoveTo followed by a LineTo to the
// same point.
//
// This allows output formats with native stroking to show exactly the
// same shape as the rasteriser.
func DashAndRound(p path.Path, dash []float64, phase, cornerRadius float64) path.Path {
	r := NewRasteriser(rect.Rect{})
	r.Dash = dash
	r.DashPhase = phase
	r.CornerRadius = cornerRadius
	r.flattenPath(p)

	subpaths := &r.flat
	if len(dash) > 0 {
		r.applyDash(subpaths, &r.dashed)
		subpaths = &r.dashed
	}

	type command struct {
		cmd path.Command
		pts []vec.Vec2
	}
	var out []command
	for _, pt := range r.degenerate {
		out = append(out,
			command{path.CmdMoveTo, []vec.Vec2{pt}},
			command{path.CmdLineTo, []vec.Vec2{pt}})
	}
	for i := range subpaths.count() {
		segs := subpaths.subpath(i)
		out = append(out, command{path.CmdMoveTo, []vec.Vec2{segs[0].A}})
		if isDot(segs) {
			out = append(out, command{path.CmdLineTo, []vec.Vec2{segs[0].A}})
			continue
		}
		lineTo := func(pt vec.Vec2) {
			out = append(out, command{path.CmdLineTo, []vec.Vec2{pt}})
		}
		if cornerRadius > 0 {
			quadTo := func(ctrl, pt vec.Vec2) {
				out = append(out, command{path.CmdQuadTo, []vec.Vec2{ctrl, pt}})
			}
			roundSubpath(segs, cornerRadius, lineTo, quadTo)
		} else {
			for _, seg := range segs {
				lineTo(seg.B)
			}
		}
	}

	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range out {
			if !yield(c.cmd, c.pts) {
				return
			}
		}
	}
}
