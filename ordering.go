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
	"cmp"
	"fmt"
	"slices"
)

// Ordering specifies how the segments of a ring are sorted, if at all.
type Ordering int

// These are the valid values for Ordering.
const (
	None Ordering = iota
	Ascending
	Descending
)

func (o Ordering) String() string {
	switch o {
	case None:
		return "none"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// SortByDrawnLength sorts the segments in place by their drawn length.
// Segments with equal drawn length keep their relative order, and
// [None] leaves the slice unchanged.
func SortByDrawnLength(segs []*Segment, o Ordering) {
	switch o {
	case Ascending:
		slices.SortStableFunc(segs, func(a, b *Segment) int {
			return cmp.Compare(a.DrawnLength(), b.DrawnLength())
		})
	case Descending:
		slices.SortStableFunc(segs, func(a, b *Segment) int {
			return cmp.Compare(b.DrawnLength(), a.DrawnLength())
		})
	}
}
