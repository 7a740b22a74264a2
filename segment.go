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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Params holds the construction parameters of a segment.
type Params struct {
	Name string

	// Icon, if non-nil, is drawn on top of the visible part of the arc.
	Icon IconSource

	Radius      float64
	StrokeWidth float64
	Cap         graphics.LineCapStyle
	Color       color.NRGBA

	// MasterProgress is the animated fraction of Length which is shown.
	MasterProgress float64

	// Length is the fraction of the arc allotted to this segment.
	Length float64

	// GapWidth is the angular size of the gap in degrees.
	GapWidth float64

	// GapAngle rotates the arc, in degrees.
	GapAngle float64

	Direction Direction
}

// Segment is one arc of a ring.
//
// Every setter immediately recomputes all geometry which depends on the
// changed value, so a Segment can be drawn at any time.
// A Segment is not safe for concurrent use.
type Segment struct {
	name string
	icon IconSource

	radius         float64
	strokeWidth    float64
	cap            graphics.LineCapStyle
	color          color.NRGBA
	masterProgress float64
	length         float64
	gapWidth       float64
	gapAngle       float64
	direction      Direction

	state    State
	iconSize int
	icons    iconCache
}

// NewSegment creates a new segment.
func NewSegment(p *Params) *Segment {
	s := &Segment{
		name:     p.Name,
		cap:      graphics.LineCapRound,
		gapWidth: 10,
		gapAngle: 270,
	}
	s.rebuild()

	s.SetRadius(p.Radius)
	s.SetColor(p.Color)
	s.SetStrokeWidth(p.StrokeWidth)
	s.SetCap(p.Cap)
	s.SetMasterProgress(p.MasterProgress)
	s.SetLength(p.Length)
	s.SetGapWidth(p.GapWidth)
	s.SetGapAngle(p.GapAngle)
	s.SetDirection(p.Direction)
	s.SetIcon(p.Icon)
	return s
}

// Name returns the name the segment was created with.
func (s *Segment) Name() string {
	return s.name
}

// Params returns the current parameters of the segment.
func (s *Segment) Params() *Params {
	return &Params{
		Name:           s.name,
		Icon:           s.icon,
		Radius:         s.radius,
		StrokeWidth:    s.strokeWidth,
		Cap:            s.cap,
		Color:          s.color,
		MasterProgress: s.masterProgress,
		Length:         s.length,
		GapWidth:       s.gapWidth,
		GapAngle:       s.gapAngle,
		Direction:      s.direction,
	}
}

// SetRadius changes the distance between the ring center and the arc.
func (s *Segment) SetRadius(radius float64) {
	s.radius = radius
	s.rebuild()
}

// SetColor changes the stroke color.
func (s *Segment) SetColor(c color.NRGBA) {
	s.color = c
}

// SetStrokeWidth changes the line width.  The icon size follows the
// line width.
func (s *Segment) SetStrokeWidth(width float64) {
	s.strokeWidth = width
	s.iconSize = int(width * 0.6)
	s.icons.update(s.icon, s.iconSize)
}

// SetCap changes the line cap style.
func (s *Segment) SetCap(c graphics.LineCapStyle) {
	s.cap = c
}

// SetMasterProgress changes the animated fraction of the segment length
// which is drawn.
func (s *Segment) SetMasterProgress(progress float64) {
	s.masterProgress = progress
	s.state.setReveal(s.length, s.masterProgress)
}

// SetLength changes the fraction of the arc allotted to this segment.
func (s *Segment) SetLength(length float64) {
	s.length = length
	s.state.setReveal(s.length, s.masterProgress)
}

// SetGapWidth changes the angular size of the gap, in degrees.
func (s *Segment) SetGapWidth(deg float64) {
	s.gapWidth = deg
	s.rebuild()
}

// SetGapAngle changes the rotation of the arc, in degrees.
func (s *Segment) SetGapAngle(deg float64) {
	s.gapAngle = deg
	s.rebuild()
}

// SetDirection changes the direction in which the arc is traversed.
func (s *Segment) SetDirection(dir Direction) {
	s.direction = dir
	s.rebuild()
}

// SetIcon changes the icon.  Use nil to remove the icon.
func (s *Segment) SetIcon(icon IconSource) {
	s.icon = icon
	s.icons.update(s.icon, s.iconSize)
}

// rebuild recomputes the path and the reveal state.
// The icon position is kept.
func (s *Segment) rebuild() {
	pos := s.state.IconPosition
	s.state = newGeometry(s.radius, s.gapWidth, s.gapAngle, s.direction, s.length, s.masterProgress)
	s.state.IconPosition = pos
}

// State returns a snapshot of the derived geometry.
func (s *Segment) State() State {
	return s.state
}

// DrawnLength returns the length of the visible part of the path.
func (s *Segment) DrawnLength() float64 {
	return s.state.DrawnLength
}

// IconSize returns the width and height of the icon bitmap in pixels.
func (s *Segment) IconSize() int {
	return s.iconSize
}

// IconBitmap returns the current icon raster, or nil if the segment has
// no icon.
func (s *Segment) IconBitmap() image.Image {
	return s.icons.bitmap
}

// IconPosition returns the top-left corner of the icon bitmap.
func (s *Segment) IconPosition() vec.Vec2 {
	return s.state.IconPosition
}

// UpdateIconLocation moves the icon to the middle of the drawn part of the
// path, excluding the first obscured units which are covered by the icon of
// another segment.  If this point is not on the path, the icon keeps its
// previous position.
//
// This must be called explicitly whenever the drawn lengths of the segments
// in a ring have changed.
func (s *Segment) UpdateIconLocation(obscured float64) {
	if pos, ok := s.state.IconLocation(obscured, s.iconSize); ok {
		s.state.IconPosition = pos
	}
}

// Draw renders the segment onto the surface.  The visible part of the arc
// is stroked first, followed by the icon, if any.
// Nothing is stroked while the drawn length is zero.
func (s *Segment) Draw(surface Surface) {
	st := &s.state
	if st.DrawnLength > 0 {
		style := &StrokeStyle{
			Width:        s.strokeWidth,
			Cap:          s.cap,
			Join:         defaultJoin,
			MiterLimit:   defaultMiterLimit,
			Color:        s.color,
			Dash:         []float64{st.Dash[0], st.Dash[1]},
			CornerRadius: st.CornerRadius,
		}
		surface.StrokePath(polyline(st.Path), style)
	}

	if bm := s.icons.bitmap; bm != nil {
		surface.DrawImage(bm, st.IconPosition)
	}
}
