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

package donut_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/donut"
	"seehuhn.de/go/donut/canvas"
)

func benchParams(radius float64) *donut.Params {
	return &donut.Params{
		Radius:         radius,
		StrokeWidth:    radius / 5,
		Cap:            graphics.LineCapRound,
		Color:          color.NRGBA{R: 0x33, G: 0x99, B: 0xff, A: 0xff},
		MasterProgress: 0.75,
		Length:         1,
		GapWidth:       10,
		GapAngle:       270,
	}
}

// BenchmarkSetMasterProgress measures the cost of one animation step.
func BenchmarkSetMasterProgress(b *testing.B) {
	seg := donut.NewSegment(benchParams(100))
	i := 0
	b.ReportAllocs()
	for b.Loop() {
		seg.SetMasterProgress(float64(i%100) / 100)
		seg.UpdateIconLocation(0)
		i++
	}
}

// BenchmarkSetRadius measures a full rebuild of the arc.
func BenchmarkSetRadius(b *testing.B) {
	seg := donut.NewSegment(benchParams(100))
	i := 0
	b.ReportAllocs()
	for b.Loop() {
		seg.SetRadius(float64(50 + i%100))
		i++
	}
}

// BenchmarkDraw renders a segment into images of different sizes.
func BenchmarkDraw(b *testing.B) {
	for _, size := range []int{64, 256, 1024} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			img := image.NewRGBA(image.Rect(0, 0, size, size))
			c := canvas.New(img)
			seg := donut.NewSegment(benchParams(0.4 * float64(size)))

			b.ReportAllocs()
			for b.Loop() {
				c.Clear(color.Transparent)
				seg.Draw(c)
			}
		})
	}
}
