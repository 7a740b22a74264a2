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
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

// IconSource provides the image shown on top of a segment.
// Implementations must be comparable.  A source which is not == to the
// previous one is always rasterized again, even if the keys agree.
type IconSource interface {
	// Key identifies the image content.  Sources with equal keys must
	// produce equal rasters.
	Key() string

	// Rasterize returns the icon scaled to size×size pixels.
	Rasterize(size int) (image.Image, error)
}

// ImageIcon is an IconSource for an image which is already in memory.
type ImageIcon struct {
	Name  string
	Image image.Image
}

// Key implements the [IconSource] interface.
func (ic *ImageIcon) Key() string {
	return "image:" + ic.Name
}

// Rasterize implements the [IconSource] interface.
func (ic *ImageIcon) Rasterize(size int) (image.Image, error) {
	if ic.Image == nil {
		return nil, errNoImage
	}
	return scaleSquare(ic.Image, size), nil
}

// FileIcon is an IconSource which reads an image file.
// PNG, JPEG, GIF, BMP and WebP files are supported.
type FileIcon string

// Key implements the [IconSource] interface.
func (fname FileIcon) Key() string {
	return "file:" + string(fname)
}

// Rasterize implements the [IconSource] interface.
func (fname FileIcon) Rasterize(size int) (image.Image, error) {
	fd, err := os.Open(string(fname))
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", string(fname), err)
	}
	return scaleSquare(img, size), nil
}

// EncodedIcon is an IconSource for an encoded image held in memory.
type EncodedIcon struct {
	Name string
	Data []byte
}

// Key implements the [IconSource] interface.
func (ic *EncodedIcon) Key() string {
	return "data:" + ic.Name
}

// Rasterize implements the [IconSource] interface.
func (ic *EncodedIcon) Rasterize(size int) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(ic.Data))
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", ic.Name, err)
	}
	return scaleSquare(img, size), nil
}

// scaleSquare resamples src to a size×size image.
func scaleSquare(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

var errNoImage = errors.New("icon has no image")

// iconCache holds the icon raster of a segment.  The raster is
// regenerated only when the source, its key or the size changes.
type iconCache struct {
	src    IconSource
	key    string
	size   int
	valid  bool
	bitmap image.Image
}

// update returns the raster for src at the given size.  The result is nil
// if src is nil, if size is not positive, or if the icon cannot be
// rasterized.
func (c *iconCache) update(src IconSource, size int) image.Image {
	if src == nil {
		*c = iconCache{}
		return nil
	}

	key := src.Key()
	if c.valid && c.src == src && c.key == key && c.size == size {
		return c.bitmap
	}

	c.src = src
	c.key = key
	c.size = size
	c.valid = true
	c.bitmap = nil
	if size > 0 {
		if img, err := src.Rasterize(size); err == nil && img != nil {
			c.bitmap = img
		}
	}
	return c.bitmap
}
