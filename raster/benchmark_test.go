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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// BenchmarkFillRing fills a ring shape: an outer circle counter-clockwise
// and an inner circle clockwise.
func BenchmarkFillRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			ring := ringPath(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(ring, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, cov := range coverage {
						row[i] = uint8(cov * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorRing draws the same shape as BenchmarkFillRing using
// golang.org/x/image/vector.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size) / 2
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, c, c, float32(size)*0.45, false)
				addCircleToVector(r, c, c, float32(size)*0.30, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeProgressArc strokes a 64-gon arc the way a ring segment
// is drawn: dashed to 60% of its length, with rounded corners and caps.
func BenchmarkStrokeProgressArc(b *testing.B) {
	for _, size := range []int{50, 500} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)

			c := float64(size) / 2
			pts := make([]vec.Vec2, 65)
			for i := range pts {
				phi := (275 + 350*float64(i)/64) * math.Pi / 180
				pts[i] = vec.Vec2{X: c + 0.4*float64(size)*math.Cos(phi), Y: c + 0.4*float64(size)*math.Sin(phi)}
			}
			arc := openPolyline(pts...)
			total := 0.0
			for i := 1; i < len(pts); i++ {
				total += pts[i].Sub(pts[i-1]).Length()
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = float64(size) / 10
				r.Cap = graphics.LineCapRound
				r.Dash = []float64{math.Ceil(0.6 * total), total - math.Ceil(0.6*total)}
				r.CornerRadius = total / 64
				r.Stroke(arc, func(y, xMin int, coverage []float32) {})
			}
		})
	}
}

// ringPath returns two concentric circles with opposite orientation,
// approximated by cubic Bézier curves.
func ringPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !addCircleToPath(yield, cx, cy, outerR, false) {
			return
		}
		addCircleToPath(yield, cx, cy, innerR, true)
	}
}

// addCircleToPath emits a closed circle made from four quarter arcs.
// It returns false if the consumer stopped the iteration.
func addCircleToPath(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) bool {
	const k = 0.5522847498
	kr := k * r
	s := 1.0
	if clockwise {
		s = -1
	}

	var buf [3]vec.Vec2
	buf[0] = vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	// quarter arcs through the right, bottom, left and top points
	// (mirrored horizontally when clockwise)
	quarters := [4][3]vec.Vec2{
		{{X: cx + s*kr, Y: cy - r}, {X: cx + s*r, Y: cy - kr}, {X: cx + s*r, Y: cy}},
		{{X: cx + s*r, Y: cy + kr}, {X: cx + s*kr, Y: cy + r}, {X: cx, Y: cy + r}},
		{{X: cx - s*kr, Y: cy + r}, {X: cx - s*r, Y: cy + kr}, {X: cx - s*r, Y: cy}},
		{{X: cx - s*r, Y: cy - kr}, {X: cx - s*kr, Y: cy - r}, {X: cx, Y: cy - r}},
	}
	for _, q := range quarters {
		buf = q
		if !yield(path.CmdCubeTo, buf[:]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}

func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius
	s := float32(1)
	if clockwise {
		s = -1
	}

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+s*kr, cy-radius, cx+s*radius, cy-kr, cx+s*radius, cy)
	r.CubeTo(cx+s*radius, cy+kr, cx+s*kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-s*kr, cy+radius, cx-s*radius, cy+kr, cx-s*radius, cy)
	r.CubeTo(cx-s*radius, cy-kr, cx-s*kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
