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

// Package donut implements the arc segments of a ring-shaped ("donut")
// progress indicator.
//
// A [Segment] is one coloured slice of the ring.  Its arc is approximated
// by a polyline with [Sides] pieces, centered at the origin.  Progress is
// shown by stroking only the leading part of this polyline, using a
// two-element dash pattern.  An optional icon can be placed on the visible
// part of the arc.
//
// Segments do not draw themselves; they describe what to draw to a
// [Surface].  The packages seehuhn.de/go/donut/canvas and
// seehuhn.de/go/donut/pdfcanvas provide surfaces for raster images and PDF
// pages.
//
// Laying out several segments around a ring, and animating their progress,
// is the job of the caller.
package donut

import (
	"fmt"
	"math"
)

// Sides is the number of straight pieces used to approximate the arc of
// a segment.
const Sides = 64

// Direction is the rotational sense in which a segment's arc is traversed.
// Angles are measured in a y-down coordinate system, so that Clockwise
// appears clockwise on screen.
type Direction int

// These are the valid values for Direction.
const (
	Clockwise Direction = iota
	Anticlockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case Anticlockwise:
		return "anticlockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts the output of [Direction.String] back into a
// Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "clockwise", "cw":
		return Clockwise, nil
	case "anticlockwise", "counterclockwise", "ccw":
		return Anticlockwise, nil
	}
	return 0, fmt.Errorf("donut: unknown direction %q", s)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
