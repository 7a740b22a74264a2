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

var ringCases = []TestCase{
	{
		Name:  "two",
		Scene: ring(100, 20, 1, []float64{0.3, 0.5}, []string{"#1f77b4", "#ff7f0e"}, nil),
	},
	{
		Name:  "three_half",
		Scene: ring(100, 20, 0.5, []float64{0.2, 0.3, 0.4}, []string{"#1f77b4", "#ff7f0e", "#2ca02c"}, nil),
	},
	{
		Name:  "many",
		Scene: ring(100, 16, 1, []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}, []string{"#e41a1c", "#377eb8", "#4daf4a", "#984ea3"}, nil),
	},
	{
		Name:  "full_circle",
		Scene: ring(100, 20, 1, []float64{0.5, 0.5}, []string{"teal", "coral"}, nil),
	},
}
