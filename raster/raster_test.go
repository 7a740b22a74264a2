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

package raster

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polygon returns a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, pt := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// openPolyline returns an open path through the given points.
func openPolyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, pt := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
	}
}

// regularPolygon returns the vertices of a regular n-gon.
func regularPolygon(cx, cy, radius float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: cx + radius*math.Cos(phi), Y: cy + radius*math.Sin(phi)}
	}
	return pts
}

// coverageMap renders into a w×h buffer, using the given draw function.
func coverageMap(w, h int, draw func(r *Rasteriser, emit func(y, xMin int, coverage []float32))) []float32 {
	buf := make([]float32, w*h)
	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	draw(r, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

func totalCoverage(buf []float32) float64 {
	sum := 0.0
	for _, c := range buf {
		sum += float64(c)
	}
	return sum
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The edge y = x/10 gives pixel x the coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	tri := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})
	buf := coverageMap(10, 1, func(r *Rasteriser, emit func(int, int, []float32)) {
		r.Fill(tri, emit)
	})

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(buf[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: got coverage %.4f, want %.4f", x, buf[x], want)
		}
	}
}

// TestFillMatchesVector compares polygon fills with golang.org/x/image/vector.
func TestFillMatchesVector(t *testing.T) {
	const size = 64
	shapes := map[string][]vec.Vec2{
		"hexagon": regularPolygon(32, 32, 25, 6),
		"ring64":  regularPolygon(30.3, 33.7, 27.1, 64),
		"sliver": {
			{X: 3, Y: 5}, {X: 60, Y: 9.5}, {X: 7.25, Y: 12},
		},
	}

	for name, pts := range shapes {
		t.Run(name, func(t *testing.T) {
			got := coverageMap(size, size, func(r *Rasteriser, emit func(int, int, []float32)) {
				r.Fill(polygon(pts...), emit)
			})

			v := vector.NewRasterizer(size, size)
			v.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			for _, pt := range pts[1:] {
				v.LineTo(float32(pt.X), float32(pt.Y))
			}
			v.ClosePath()
			want := image.NewAlpha(image.Rect(0, 0, size, size))
			v.Draw(want, want.Bounds(), image.Opaque, image.Point{})

			for y := range size {
				for x := range size {
					g := float64(got[y*size+x])
					w := float64(want.Pix[y*want.Stride+x]) / 255
					if math.Abs(g-w) > 0.02 {
						t.Fatalf("pixel (%d,%d): got %.3f, vector gives %.3f", x, y, g, w)
					}
				}
			}
		})
	}
}

func TestStrokeButtLine(t *testing.T) {
	line := openPolyline(vec.Vec2{X: 10, Y: 32}, vec.Vec2{X: 50, Y: 32})
	buf := coverageMap(64, 64, func(r *Rasteriser, emit func(int, int, []float32)) {
		r.Width = 4
		r.Stroke(line, emit)
	})

	for y := range 64 {
		for x := range 64 {
			want := float32(0)
			if x >= 10 && x < 50 && y >= 30 && y < 34 {
				want = 1
			}
			if got := buf[y*64+x]; math.Abs(float64(got-want)) > 1e-5 {
				t.Fatalf("pixel (%d,%d): got %.4f, want %.0f", x, y, got, want)
			}
		}
	}
}

func TestStrokeCapArea(t *testing.T) {
	const width = 8.0
	const length = 30.0
	line := openPolyline(vec.Vec2{X: 17, Y: 32}, vec.Vec2{X: 17 + length, Y: 32})

	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
	}{
		{graphics.LineCapButt, length * width},
		{graphics.LineCapSquare, (length + width) * width},
		{graphics.LineCapRound, length*width + math.Pi*width*width/4},
	}
	for _, c := range cases {
		t.Run(c.cap.String(), func(t *testing.T) {
			buf := coverageMap(64, 64, func(r *Rasteriser, emit func(int, int, []float32)) {
				r.Width = width
				r.Cap = c.cap
				r.Flatness = 0.01
				r.Stroke(line, emit)
			})
			got := totalCoverage(buf)
			if math.Abs(got-c.area) > 0.005*c.area {
				t.Errorf("area %.2f, want %.2f", got, c.area)
			}
		})
	}
}

func TestStrokeJoinsCoverCorner(t *testing.T) {
	corner := openPolyline(vec.Vec2{X: 10, Y: 50}, vec.Vec2{X: 32, Y: 14}, vec.Vec2{X: 54, Y: 50})

	areas := map[graphics.LineJoinStyle]float64{}
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinBevel, graphics.LineJoinRound, graphics.LineJoinMiter} {
		buf := coverageMap(64, 64, func(r *Rasteriser, emit func(int, int, []float32)) {
			r.Width = 6
			r.Join = join
			r.Stroke(corner, emit)
		})
		areas[join] = totalCoverage(buf)
	}

	// the bevel is contained in the round join, which is contained in
	// the miter
	bevel := areas[graphics.LineJoinBevel]
	round := areas[graphics.LineJoinRound]
	miter := areas[graphics.LineJoinMiter]
	if !(bevel < round && round < miter) {
		t.Errorf("unexpected join areas: bevel %.2f, round %.2f, miter %.2f", bevel, round, miter)
	}
}

func TestDashArea(t *testing.T) {
	line := openPolyline(vec.Vec2{X: 2, Y: 32}, vec.Vec2{X: 62, Y: 32})

	cases := []struct {
		name  string
		dash  []float64
		phase float64
		area  float64
	}{
		{"even", []float64{10, 10}, 0, 30 * 4},
		{"phase", []float64{10, 10}, 5, 30 * 4},
		{"single", []float64{15}, 0, 30 * 4},
		{"prefix", []float64{25, 35}, 0, 25 * 4},
		{"longer_than_path", []float64{100, 1}, 0, 60 * 4},
		{"zero_on", []float64{0, 60}, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := coverageMap(64, 64, func(r *Rasteriser, emit func(int, int, []float32)) {
				r.Width = 4
				r.Dash = c.dash
				r.DashPhase = c.phase
				r.Stroke(line, emit)
			})
			if got := totalCoverage(buf); math.Abs(got-c.area) > 0.01 {
				t.Errorf("area %.3f, want %.3f", got, c.area)
			}
		})
	}
}

func TestZeroLengthDashRoundCap(t *testing.T) {
	line := openPolyline(vec.Vec2{X: 20, Y: 32}, vec.Vec2{X: 60, Y: 32})
	buf := coverageMap(64, 64, func(r *Rasteriser, emit func(int, int, []float32)) {
		r.Width = 10
		r.Cap = graphics.LineCapRound
		r.Flatness = 0.01
		r.Dash = []float64{0, 100}
		r.Stroke(line, emit)
	})

	want := math.Pi * 25
	if got := totalCoverage(buf); math.Abs(got-want) > 0.02*want {
		t.Errorf("dot area %.2f, want %.2f", got, want)
	}
	if buf[32*64+20] < 0.99 {
		t.Errorf("dot is not centered on the start of the path")
	}
}

func TestCornerRadiusSmoothsPolyline(t *testing.T) {
	// A coarse polygon approximation of a circle: rounding the corners
	// cuts off material at the outer side of each vertex.
	pts := regularPolygon(32, 32, 24, 8)
	pts = append(pts, pts[0])
	outline := openPolyline(pts...)

	area := func(radius float64) float64 {
		buf := coverageMap(64, 64, func(r *Rasteriser, emit func(int, int, []float32)) {
			r.Width = 4
			r.Join = graphics.LineJoinMiter
			r.CornerRadius = radius
			r.Stroke(outline, emit)
		})
		return totalCoverage(buf)
	}

	sharp := area(0)
	smooth := area(5)
	if !(smooth < sharp) {
		t.Errorf("rounded area %.2f not smaller than sharp area %.2f", smooth, sharp)
	}
}

func TestDashAndRound(t *testing.T) {
	square := openPolyline(
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0},
		vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10})

	var cmds []path.Command
	var last vec.Vec2
	for cmd, pts := range DashAndRound(square, []float64{25, 100}, 0, 2) {
		cmds = append(cmds, cmd)
		if len(pts) > 0 {
			last = pts[len(pts)-1]
		}
	}

	want := []path.Command{
		path.CmdMoveTo,
		path.CmdLineTo, path.CmdQuadTo, // first corner
		path.CmdLineTo, path.CmdQuadTo, // second corner
		path.CmdLineTo,
	}
	if len(cmds) != len(want) {
		t.Fatalf("got commands %v, want %v", cmds, want)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Fatalf("got commands %v, want %v", cmds, want)
		}
	}
	if d := last.Sub(vec.Vec2{X: 5, Y: 10}).Length(); d > 1e-9 {
		t.Errorf("dash ends at %v, want (5, 10)", last)
	}
}

func TestDashAndRoundZeroDash(t *testing.T) {
	line := openPolyline(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 9, Y: 1})

	var n int
	for cmd, pts := range DashAndRound(line, []float64{0, 50}, 0, 0) {
		n++
		if pts[0] != (vec.Vec2{X: 1, Y: 1}) {
			t.Errorf("%v at %v, want (1, 1)", cmd, pts[0])
		}
	}
	if n != 2 {
		t.Errorf("got %d commands, want MoveTo and LineTo", n)
	}
}

func TestClipLimitsOutput(t *testing.T) {
	r := NewRasteriser(rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20})
	r.Width = 30
	line := openPolyline(vec.Vec2{X: 0, Y: 15}, vec.Vec2{X: 40, Y: 15})
	r.Stroke(line, func(y, xMin int, coverage []float32) {
		if y < 10 || y >= 20 || xMin < 10 || xMin+len(coverage) > 20 {
			t.Errorf("row %d [%d, %d) outside the clip", y, xMin, xMin+len(coverage))
		}
	})
}
