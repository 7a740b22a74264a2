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

// Package canvas draws ring segments into raster images.
package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/donut"
	"seehuhn.de/go/donut/raster"
)

// Canvas is a [donut.Surface] which paints into a [draw.Image].
type Canvas struct {
	Image draw.Image

	// CTM maps user space to image pixels.  [New] places the origin at the
	// center of the image.
	CTM matrix.Matrix

	r    *raster.Rasteriser
	mask *image.Alpha
}

var _ donut.Surface = (*Canvas)(nil)

// New returns a canvas which draws into img, with the origin of user
// space at the center of the image.
func New(img draw.Image) *Canvas {
	b := img.Bounds()
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	return &Canvas{
		Image: img,
		CTM:   matrix.Matrix{1, 0, 0, 1, cx, cy},
		r:     raster.NewRasteriser(clipRect(b)),
		mask:  image.NewAlpha(b),
	}
}

// Clear fills the whole image with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokePath implements the [donut.Surface] interface.
func (c *Canvas) StrokePath(p path.Path, style *donut.StrokeStyle) {
	b := c.Image.Bounds()
	r := c.r
	r.Reset(clipRect(b))
	r.CTM = c.CTM
	r.Width = style.Width
	r.Cap = style.Cap
	r.Join = style.Join
	if style.MiterLimit > 0 {
		r.MiterLimit = style.MiterLimit
	}
	r.Dash = style.Dash
	r.DashPhase = style.DashPhase
	r.CornerRadius = style.CornerRadius

	if !c.mask.Bounds().Eq(b) {
		c.mask = image.NewAlpha(b)
	}
	mask := c.mask
	touched := image.Rectangle{}
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		row := mask.Pix[mask.PixOffset(xMin, y):]
		for i, cov := range coverage {
			row[i] = uint8(min(cov, 1)*255 + 0.5)
		}
		touched = touched.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if touched.Empty() {
		return
	}

	draw.DrawMask(c.Image, touched, image.NewUniform(style.Color), image.Point{},
		mask, touched.Min, draw.Over)

	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(touched.Min.X, y):]
		clear(row[:touched.Dx()])
	}
}

// DrawImage implements the [donut.Surface] interface.
//
// If the CTM is a translation, img is copied pixel by pixel, with its
// top-left corner rounded to the nearest pixel.  Otherwise img is resampled.
func (c *Canvas) DrawImage(img image.Image, topLeft vec.Vec2) {
	m := c.CTM
	sb := img.Bounds()

	if m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 {
		x := int(math.Round(topLeft.X + m[4]))
		y := int(math.Round(topLeft.Y + m[5]))
		dr := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+sb.Dx(), y+sb.Dy())}
		draw.Draw(c.Image, dr, img, sb.Min, draw.Over)
		return
	}

	// map source pixels to user space, then to the image
	tx := topLeft.X - float64(sb.Min.X)
	ty := topLeft.Y - float64(sb.Min.Y)
	aff := f64.Aff3{
		m[0], m[2], m[0]*tx + m[2]*ty + m[4],
		m[1], m[3], m[1]*tx + m[3]*ty + m[5],
	}
	draw.CatmullRom.Transform(c.Image, aff, img, sb, draw.Over, nil)
}

func clipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}
