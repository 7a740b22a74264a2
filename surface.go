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
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Surface is a drawing target for segments.
//
// Coordinates passed to a Surface are relative to the center of the ring,
// with the y-axis pointing down.
type Surface interface {
	// StrokePath strokes the path using the given style.
	// The dash pattern is applied first, and the corners of the dashed
	// path are then rounded with style.CornerRadius.
	StrokePath(p path.Path, style *StrokeStyle)

	// DrawImage paints img with its top-left corner at the given point.
	DrawImage(img image.Image, topLeft vec.Vec2)
}

// StrokeStyle describes how a path is stroked.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Color      color.NRGBA

	// Dash specifies alternating on/off lengths.  Nil means solid.
	Dash      []float64
	DashPhase float64

	// CornerRadius, if positive, rounds every corner of the (dashed) path.
	CornerRadius float64
}

// Default join parameters used by segments.  The polyline corners are
// rounded, so the join style only matters for very flat arcs.
const (
	defaultJoin       = graphics.LineJoinMiter
	defaultMiterLimit = 4.0
)
