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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func assertVecInDelta(t *testing.T, want, got vec.Vec2, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
}

func TestArcVertices(t *testing.T) {
	for _, dir := range []Direction{Clockwise, Anticlockwise} {
		t.Run(dir.String(), func(t *testing.T) {
			pts := buildArc(37.5, 20, 45, dir)
			require.Len(t, pts, Sides+1)
			for i, pt := range pts {
				assert.InDelta(t, 37.5, pt.Length(), 1e-9, "vertex %d", i)
			}
		})
	}
}

func TestArcRadiusScaling(t *testing.T) {
	small := buildArc(10, 30, 100, Clockwise)
	large := buildArc(25, 30, 100, Clockwise)
	for i := range small {
		assertVecInDelta(t, small[i].Mul(2.5), large[i], 1e-9, "vertex %d", i)
	}
}

func TestArcDirectionReversal(t *testing.T) {
	for _, gap := range []float64{0, 10, 90, 200} {
		cw := buildArc(50, gap, 270, Clockwise)
		ccw := buildArc(50, gap, 270, Anticlockwise)
		for i := range cw {
			assertVecInDelta(t, cw[i], ccw[Sides-i], 1e-9, "gap %g, vertex %d", gap, i)
		}
		assert.InDelta(t, polylineLength(cw), polylineLength(ccw), 1e-9)
	}
}

// TestArcGapPosition checks the standard configuration: a 10 degree gap
// rotated by 270 degrees, so that the arc runs from 275 to 85 degrees.
func TestArcGapPosition(t *testing.T) {
	pts := buildArc(100, 10, 270, Clockwise)

	at := func(deg float64) vec.Vec2 {
		return vec.Vec2{X: 100 * math.Cos(radians(deg)), Y: 100 * math.Sin(radians(deg))}
	}
	assertVecInDelta(t, at(275), pts[0], 1e-9)
	assertVecInDelta(t, at(85), pts[Sides], 1e-9)
	assertVecInDelta(t, at(275+350.0/Sides), pts[1], 1e-9)

	// all vertices have the same chord length
	chord := 2 * 100 * math.Sin(radians(350.0/Sides/2))
	assert.InDelta(t, Sides*chord, polylineLength(pts), 1e-9)

	ccw := buildArc(100, 10, 270, Anticlockwise)
	assertVecInDelta(t, at(85), ccw[0], 1e-9)
	assertVecInDelta(t, at(275), ccw[Sides], 1e-9)
}

func TestArcDegenerate(t *testing.T) {
	pts := buildArc(0, 10, 0, Clockwise)
	require.Len(t, pts, Sides+1)
	assert.Zero(t, polylineLength(pts))

	// a full gap collapses the span to a single angle
	pts = buildArc(10, 360, 0, Clockwise)
	assert.InDelta(t, 0, polylineLength(pts), 1e-9)
}

func TestPointAt(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}
	total := polylineLength(pts)
	require.Equal(t, 15.0, total)

	cases := []struct {
		d        float64
		pos, tan vec.Vec2
	}{
		{0, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}},
		{4, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 1, Y: 0}},
		{10, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 1, Y: 0}},
		{12.5, vec.Vec2{X: 10, Y: 2.5}, vec.Vec2{X: 0, Y: 1}},
		{15, vec.Vec2{X: 10, Y: 5}, vec.Vec2{X: 0, Y: 1}},
	}
	for _, c := range cases {
		pos, tan, ok := pointAt(pts, total, c.d)
		require.True(t, ok, "d=%g", c.d)
		assertVecInDelta(t, c.pos, pos, 1e-12, "d=%g", c.d)
		assertVecInDelta(t, c.tan, tan, 1e-12, "d=%g", c.d)
	}

	for _, d := range []float64{-1e-9, 15.0001, math.NaN(), math.Inf(1)} {
		_, _, ok := pointAt(pts, total, d)
		assert.False(t, ok, "d=%g", d)
	}

	_, _, ok := pointAt([]vec.Vec2{{}, {}}, 0, 0)
	assert.False(t, ok, "zero-length path")
}

// TestPointAtRoundingResidue checks that a stored total slightly larger
// than the summed segment lengths still resolves to the last vertex.
func TestPointAtRoundingResidue(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 3, Y: 4}}
	total := 5 + 1e-12
	pos, tan, ok := pointAt(pts, total, total)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 3, Y: 4}, pos)
	assertVecInDelta(t, vec.Vec2{X: 0.6, Y: 0.8}, tan, 1e-12)
}

func TestPolyline(t *testing.T) {
	pts := buildArc(5, 10, 0, Clockwise)
	var cmds []path.Command
	var got []vec.Vec2
	for cmd, p := range polyline(pts) {
		cmds = append(cmds, cmd)
		got = append(got, p...)
	}
	require.Len(t, cmds, Sides+1)
	assert.Equal(t, path.CmdMoveTo, cmds[0])
	for _, cmd := range cmds[1:] {
		assert.Equal(t, path.CmdLineTo, cmd)
	}
	assert.Equal(t, pts, got)
}
