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

// Package render draws scenes into PNG images and PDF files.
package render

import (
	"image"
	"image/png"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/donut"
	"seehuhn.de/go/donut/canvas"
	"seehuhn.de/go/donut/pdfcanvas"
	"seehuhn.de/go/donut/scene"
)

// Image draws the segments into a new image of the scene's size.
// The image is filled with the scene background first.
func Image(sc *scene.Scene, segs []*donut.Segment) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	c := canvas.New(img)
	c.Clear(sc.Background.NRGBA())
	sc.Draw(c, segs)
	return img
}

// PNG writes the scene as a PNG image to w.
func PNG(w io.Writer, sc *scene.Scene, segs []*donut.Segment) error {
	return png.Encode(w, Image(sc, segs))
}

// PDF writes the scene to a single-page PDF file.  One pixel of the scene
// corresponds to one PDF unit.  A transparent background is left
// unpainted.
func PDF(fname string, sc *scene.Scene, segs []*donut.Segment) error {
	w, h := float64(sc.Width), float64(sc.Height)
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if bg := sc.Background; bg.A > 0 {
		page.SetFillColor(pdfcanvas.Color(bg.NRGBA()))
		page.Rectangle(0, 0, w, h)
		page.Fill()
	}

	sc.Draw(pdfcanvas.New(page, w, h), segs)
	return page.Close()
}
