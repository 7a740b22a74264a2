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

package scene

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/skip2/go-qrcode"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/donut"
	"seehuhn.de/go/donut/raster"
)

// iconResolution is the size of generated icons, in pixels.  Icons are
// scaled down to the icon size of the segment when drawn.
const iconResolution = 128

// Icon converts the icon field of a scene segment into a
// [donut.IconSource].  The following forms are recognised:
//
//   - "" means no icon.
//   - "qr:TEXT" is a QR code which encodes TEXT.
//   - "disc:COLOR" is a filled circle in the given color.
//   - "file:NAME" or just "NAME" is an image file.  Relative file names are
//     resolved against dir.
func Icon(spec, dir string) (donut.IconSource, error) {
	kind, arg, found := strings.Cut(spec, ":")
	if !found {
		kind, arg = "file", spec
	}

	switch kind {
	case "file":
		if arg == "" {
			return nil, nil
		}
		if !filepath.IsAbs(arg) {
			arg = filepath.Join(dir, arg)
		}
		return donut.FileIcon(arg), nil

	case "qr":
		qr, err := qrcode.New(arg, qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", spec, err)
		}
		qr.DisableBorder = true
		return &donut.ImageIcon{Name: spec, Image: qr.Image(iconResolution)}, nil

	case "disc":
		col, err := ParseColor(arg)
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", spec, err)
		}
		return &donut.ImageIcon{Name: spec, Image: disc(iconResolution, col)}, nil
	}

	// Windows drive letters look like a prefix, too.
	if len(kind) == 1 {
		return donut.FileIcon(spec), nil
	}
	return nil, fmt.Errorf("unknown icon type %q", kind)
}

// disc draws an anti-aliased filled circle which touches the image edges.
func disc(size int, col Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	r := raster.NewRasteriser(rect.Rect{URx: float64(size), URy: float64(size)})
	c := float64(size) / 2
	const n = 96
	circle := func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range n {
			phi := 2 * math.Pi * float64(i) / n
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			pt := vec.Vec2{X: c + c*math.Cos(phi), Y: c + c*math.Sin(phi)}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
	r.Fill(circle, func(y, xMin int, coverage []float32) {
		for i, cov := range coverage {
			a := float32(col.A) * min(cov, 1)
			img.SetNRGBA(xMin+i, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(a + 0.5)})
		}
	})
	return img
}
