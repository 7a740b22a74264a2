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

// Package pdfcanvas draws ring segments onto PDF pages.
//
// Dashing and corner rounding are applied before the path is written, so
// that PDF viewers show the same shape as the raster renderer in
// seehuhn.de/go/donut/canvas.  Icons are written as one filled square per
// pixel.
package pdfcanvas

import (
	"image"
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/donut"
	"seehuhn.de/go/donut/raster"
)

// Writer is the subset of the PDF content stream operators used by a
// Canvas.  It is implemented by the pages returned from
// seehuhn.de/go/pdf/document.
type Writer interface {
	Transform(m matrix.Matrix)

	SetLineWidth(width float64)
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)
	SetMiterLimit(limit float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	Rectangle(x, y, width, height float64)
	Stroke()
	Fill()
}

// Canvas is a [donut.Surface] which writes PDF drawing operators.
type Canvas struct {
	w Writer
}

var _ donut.Surface = (*Canvas)(nil)

// New returns a canvas for a page of the given size, in PDF units.
// The origin of user space is moved to the center of the page and the
// y-axis is flipped to point down.
func New(w Writer, width, height float64) *Canvas {
	w.Transform(matrix.Matrix{1, 0, 0, -1, width / 2, height / 2})
	return &Canvas{w: w}
}

// StrokePath implements the [donut.Surface] interface.
func (c *Canvas) StrokePath(p path.Path, style *donut.StrokeStyle) {
	w := c.w
	w.SetLineWidth(style.Width)
	w.SetLineCap(style.Cap)
	w.SetLineJoin(style.Join)
	if style.MiterLimit > 0 {
		w.SetMiterLimit(style.MiterLimit)
	}
	w.SetStrokeColor(Color(style.Color))

	dashed := raster.DashAndRound(p, style.Dash, style.DashPhase, style.CornerRadius)
	empty := true
	for cmd, pts := range dashed.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		}
		empty = false
	}
	if !empty {
		w.Stroke()
	}
}

// DrawImage implements the [donut.Surface] interface.
// Fully transparent pixels are skipped.  Partial transparency is ignored.
func (c *Canvas) DrawImage(img image.Image, topLeft vec.Vec2) {
	b := img.Bounds()
	var current stdcolor.NRGBA
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			col := stdcolor.NRGBAModel.Convert(img.At(x, y)).(stdcolor.NRGBA)
			if col.A == 0 {
				continue
			}
			col.A = 255
			if col != current {
				c.w.SetFillColor(Color(col))
				current = col
			}
			c.w.Rectangle(topLeft.X+float64(x-b.Min.X), topLeft.Y+float64(y-b.Min.Y), 1, 1)
			c.w.Fill()
		}
	}
}

// Color converts an 8-bit color to the DeviceRGB color space.  The alpha
// channel is ignored.
func Color(col stdcolor.NRGBA) color.Color {
	return color.DeviceRGB{float64(col.R) / 255, float64(col.G) / 255, float64(col.B) / 255}
}
