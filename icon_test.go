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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboard(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestIconSources(t *testing.T) {
	src := checkerboard(32)
	data := encodePNG(t, src)

	fname := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(fname, data, 0o644))

	sources := []IconSource{
		&ImageIcon{Name: "board", Image: src},
		&EncodedIcon{Name: "board", Data: data},
		FileIcon(fname),
	}
	for _, ic := range sources {
		t.Run(ic.Key(), func(t *testing.T) {
			img, err := ic.Rasterize(12)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())

			// scaling preserves opacity
			_, _, _, a := img.At(6, 6).RGBA()
			assert.Greater(t, a, uint32(0xff00))
		})
	}
}

func TestIconKeysDiffer(t *testing.T) {
	keys := map[string]bool{}
	for _, ic := range []IconSource{
		&ImageIcon{Name: "x"},
		&EncodedIcon{Name: "x"},
		FileIcon("x"),
	} {
		keys[ic.Key()] = true
	}
	assert.Len(t, keys, 3)
}

func TestFileIconErrors(t *testing.T) {
	_, err := FileIcon(filepath.Join(t.TempDir(), "missing.png")).Rasterize(10)
	assert.ErrorIs(t, err, os.ErrNotExist)

	fname := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(fname, []byte("junk"), 0o644))
	_, err = FileIcon(fname).Rasterize(10)
	assert.ErrorIs(t, err, image.ErrFormat)
}
