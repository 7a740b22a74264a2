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

import "seehuhn.de/go/donut/scene"

var iconCases = []TestCase{
	{
		Name:  "disc",
		Scene: single(withIcon(seg(100, 30, "navy", 0.7, 1), "disc:white")),
	},
	{
		Name:  "qr",
		Scene: single(withIcon(seg(100, 40, "lightgray", 0.7, 1), "qr:donut")),
	},
	{
		Name:  "ring_icons",
		Scene: ring(100, 30, 1, []float64{0.25, 0.35, 0.3}, []string{"#1f77b4", "#ff7f0e", "#2ca02c"}, []string{"disc:white", "disc:black", "qr:3"}),
	},
	{
		Name:  "tiny_width",
		Scene: single(withIcon(seg(100, 1, "navy", 0.7, 1), "disc:red")),
	},
}

func withIcon(s scene.Segment, icon string) scene.Segment {
	s.Icon = icon
	return s
}
