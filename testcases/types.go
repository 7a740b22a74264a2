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

package testcases

import (
	"seehuhn.de/go/donut"
	"seehuhn.de/go/donut/scene"
)

// TestCase is a named scene used for rendering tests.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only
	scene.Scene
}

// seg returns a segment with the default parameters, changed by the
// given radius, width, color, progress and length.
func seg(radius, width float64, color string, progress, length float64) scene.Segment {
	s := scene.DefaultSegment
	s.Radius = radius
	s.Width = width
	s.Color = mustColor(color)
	s.Progress = progress
	s.Length = length
	return s
}

func mustColor(s string) scene.Color {
	c, err := scene.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ring stacks segments the way a multi-part progress ring does.  All
// segments start at the same point and segment i covers the fraction
// lengths[0]+...+lengths[i] of the arc.  The segments are drawn longest
// first, and each icon is centered on the part of its segment which is
// not covered by the previous one.
func ring(radius, width, progress float64, lengths []float64, colors []string, icons []string) scene.Scene {
	sc := scene.Scene{
		Width:      int(2*radius + 2*width + 20),
		Height:     int(2*radius + 2*width + 20),
		Background: mustColor("white"),
		Ordering:   scene.Ordering(donut.Descending),
	}
	total := 0.0
	obscured := 0.0
	for i, l := range lengths {
		total += l
		s := seg(radius, width, colors[i%len(colors)], progress, total)
		if i < len(icons) {
			s.Icon = icons[i]
		}
		s.Obscured = obscured
		sc.Segments = append(sc.Segments, s)

		obscured = donut.NewSegment(s.Params(nil)).DrawnLength()
	}
	return sc
}
