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

// State is the geometry derived from a segment's parameters.
//
// A State is a snapshot: later changes to the segment do not affect
// State values which were obtained earlier.
type State struct {
	// Path holds the Sides+1 vertices of the arc, centered at the origin.
	// The slice is shared between snapshots and must not be modified.
	Path []vec.Vec2

	// PathLength is the length of the polyline through Path.
	PathLength float64

	// DrawnLength is the length of the visible, leading part of the path.
	// It is rounded up to the next integer.
	DrawnLength float64

	// Dash is the dash pattern used for stroking the path: DrawnLength
	// units on, followed by the rest of the path off.
	Dash [2]float64

	// CornerRadius is the radius used to round the corners of the
	// polyline when stroking.
	CornerRadius float64

	// IconPosition is the top-left corner of the icon bitmap.
	IconPosition vec.Vec2
}

// newGeometry builds the arc and the reveal state for the given parameters.
// IconPosition is left at zero.
func newGeometry(radius, gapWidth, gapAngle float64, dir Direction, length, progress float64) State {
	pts := buildArc(radius, gapWidth, gapAngle, dir)
	st := State{
		Path:       pts,
		PathLength: polylineLength(pts),
	}
	st.setReveal(length, progress)
	return st
}

// setReveal updates the drawn length and the stroke configuration after a
// change of length or progress.  The path is not changed.
//
// Progress and length are not clamped.  Both dash entries are kept
// non-negative; when DrawnLength has been rounded up past the end of the
// path, the "off" entry is zero and the pattern sums to DrawnLength.
func (st *State) setReveal(length, progress float64) {
	st.DrawnLength = math.Ceil(st.PathLength * length * progress)
	on := max(st.DrawnLength, 0)
	off := max(st.PathLength-on, 0)
	st.Dash = [2]float64{on, off}
	st.CornerRadius = st.PathLength / Sides
}

// IconLocation returns the top-left corner for a centered icon of the
// given size.  The icon is centered at the middle of the part of the drawn
// path which is not obscured; obscured is measured from the start of the
// path.  If this point is not on the path, ok is false.
func (st State) IconLocation(obscured float64, iconSize int) (topLeft vec.Vec2, ok bool) {
	d := (st.DrawnLength-obscured)/2 + obscured
	pos, _, ok := pointAt(st.Path, st.PathLength, d)
	if !ok {
		return vec.Vec2{}, false
	}
	half := float64(iconSize / 2)
	return vec.Vec2{X: pos.X - half, Y: pos.Y - half}, true
}

// PointAt returns the point and unit tangent at arc length d along the
// path.  If d is outside [0, PathLength], or if the path has zero length,
// ok is false.
func (st State) PointAt(d float64) (pos, tan vec.Vec2, ok bool) {
	return pointAt(st.Path, st.PathLength, d)
}

// Outline returns the full, undashed path of the arc.
func (st State) Outline() path.Path {
	return polyline(st.Path)
}
