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

var geometryCases = []TestCase{
	{
		Name:  "anticlockwise",
		Scene: single(withDirection(seg(100, 20, "seagreen", 0.6, 1), donut.Anticlockwise)),
	},
	{
		Name:  "gap_0",
		Scene: single(withGap(seg(100, 20, "seagreen", 1, 1), 0, 270)),
	},
	{
		Name:  "gap_90",
		Scene: single(withGap(seg(100, 20, "seagreen", 1, 1), 90, 270)),
	},
	{
		Name:  "gap_bottom",
		Scene: single(withGap(seg(100, 20, "seagreen", 0.8, 1), 40, 90)),
	},
	{
		Name:  "gap_left_anticlockwise",
		Scene: single(withDirection(withGap(seg(100, 20, "seagreen", 0.8, 1), 40, 180), donut.Anticlockwise)),
	},
	{
		Name:  "small_radius",
		Scene: single(seg(12, 6, "seagreen", 0.9, 1)),
	},
	{
		Name: "concentric",
		Scene: scene.Scene{
			Width:      240,
			Height:     240,
			Background: mustColor("white"),
			Segments: []scene.Segment{
				seg(105, 14, "crimson", 0.9, 1),
				seg(85, 14, "darkorange", 0.6, 1),
				seg(65, 14, "gold", 0.3, 1),
			},
		},
	},
}

func withGap(s scene.Segment, gap, angle float64) scene.Segment {
	s.Gap = gap
	s.GapAngle = angle
	return s
}

func withDirection(s scene.Segment, dir donut.Direction) scene.Segment {
	s.Direction = dir
	return s
}
