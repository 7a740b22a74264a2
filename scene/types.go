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
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/donut"
)

// Color is a color in a scene file.  Colors are written either as SVG
// color names, or in one of the forms #rgb, #rrggbb and #rrggbbaa.
type Color color.NRGBA

// NRGBA returns c as a standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// ParseColor converts a color name or a hex color into a Color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		// all named colors are opaque
		return Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(hex string) (Color, error) {
	orig := hex
	switch len(hex) {
	case 3:
		// #rgb is short for #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex += "ff"
	case 8:
		// pass
	default:
		return Color{}, fmt.Errorf("invalid color \"#%s\"", orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color \"#%s\"", orig)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// String returns the color in the form #rrggbb, or #rrggbbaa if the color
// is not opaque.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	col, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = col
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Cap is a line cap style in a scene file: "butt", "round" or "square".
type Cap graphics.LineCapStyle

var capNames = map[string]graphics.LineCapStyle{
	"butt":   graphics.LineCapButt,
	"round":  graphics.LineCapRound,
	"square": graphics.LineCapSquare,
}

func (c Cap) String() string {
	for name, style := range capNames {
		if style == graphics.LineCapStyle(c) {
			return name
		}
	}
	return fmt.Sprintf("Cap(%d)", int(c))
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (c *Cap) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	style, ok := capNames[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("line %d: unknown line cap %q", node.Line, s)
	}
	*c = Cap(style)
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (c Cap) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Ordering is the drawing order of the segments in a scene file:
// "none", "ascending" or "descending" drawn length.
type Ordering donut.Ordering

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (o *Ordering) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for _, cand := range []donut.Ordering{donut.None, donut.Ascending, donut.Descending} {
		if strings.EqualFold(s, cand.String()) {
			*o = Ordering(cand)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown ordering %q", node.Line, s)
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (o Ordering) MarshalYAML() (any, error) {
	return donut.Ordering(o).String(), nil
}
