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

// Package scene reads descriptions of progress rings from YAML files.
//
// A scene file looks like this:
//
//	width: 240
//	height: 240
//	background: white
//	ordering: descending
//	segments:
//	  - name: disk
//	    radius: 100
//	    width: 20
//	    color: "#3399ff"
//	    progress: 0.8
//	    length: 0.6
//	    icon: disc:white
//	  - name: net
//	    radius: 100
//	    width: 20
//	    color: tomato
//	    progress: 0.8
//	    length: 0.3
//	    obscured: 20
//
// Omitted segment fields take the values of [DefaultSegment].
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/donut"
)

// Scene describes a set of segments drawn around a common center.
type Scene struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background Color     `yaml:"background,omitempty"`
	Ordering   Ordering  `yaml:"ordering,omitempty"`
	Segments   []Segment `yaml:"segments"`

	// Dir is used to resolve relative icon file names.
	Dir string `yaml:"-"`
}

// Segment describes one segment of a scene.
type Segment struct {
	Name      string          `yaml:"name,omitempty"`
	Radius    float64         `yaml:"radius"`
	Width     float64         `yaml:"width"`
	Cap       Cap             `yaml:"cap"`
	Color     Color           `yaml:"color"`
	Progress  float64         `yaml:"progress"`
	Length    float64         `yaml:"length"`
	Gap       float64         `yaml:"gap"`
	GapAngle  float64         `yaml:"gap_angle"`
	Direction donut.Direction `yaml:"-"`
	Icon      string          `yaml:"icon,omitempty"`

	// Obscured is the length at the start of the segment which is hidden
	// behind the icon of another segment.
	Obscured float64 `yaml:"obscured,omitempty"`
}

// DefaultSegment holds the values used for omitted segment fields.
var DefaultSegment = Segment{
	Radius:   100,
	Width:    20,
	Cap:      Cap(graphics.LineCapRound),
	Color:    Color{A: 255},
	Progress: 1,
	Length:   1,
	Gap:      10,
	GapAngle: 270,
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (s *Segment) UnmarshalYAML(node *yaml.Node) error {
	type plain Segment
	raw := struct {
		Fields    plain  `yaml:",inline"`
		Direction string `yaml:"direction"`
	}{Fields: plain(DefaultSegment)}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = Segment(raw.Fields)
	if raw.Direction != "" {
		dir, err := donut.ParseDirection(raw.Direction)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		s.Direction = dir
	}
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (s Segment) MarshalYAML() (any, error) {
	type plain Segment
	return struct {
		Fields    plain  `yaml:",inline"`
		Direction string `yaml:"direction"`
	}{plain(s), s.Direction.String()}, nil
}

// Decode reads a scene from r.
func Decode(r io.Reader) (*Scene, error) {
	sc := &Scene{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmpty
		}
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Load reads a scene file.  Relative icon file names are resolved against
// the directory of the file.
func Load(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	sc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	sc.Dir = filepath.Dir(fname)
	return sc, nil
}

// Encode writes the scene to w, in the format read by [Decode].
func (sc *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks that the scene can be drawn.
// Segment parameters are not checked, since every value gives a
// well-defined (if possibly empty) drawing.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", sc.Width, sc.Height)
	}
	return nil
}

// Params returns the construction parameters for a segment.
func (s *Segment) Params(icon donut.IconSource) *donut.Params {
	return &donut.Params{
		Name:           s.Name,
		Icon:           icon,
		Radius:         s.Radius,
		StrokeWidth:    s.Width,
		Cap:            graphics.LineCapStyle(s.Cap),
		Color:          s.Color.NRGBA(),
		MasterProgress: s.Progress,
		Length:         s.Length,
		GapWidth:       s.Gap,
		GapAngle:       s.GapAngle,
		Direction:      s.Direction,
	}
}

// Build creates the segments of the scene.
func (sc *Scene) Build() ([]*donut.Segment, error) {
	segs := make([]*donut.Segment, len(sc.Segments))
	for i := range sc.Segments {
		s := &sc.Segments[i]
		icon, err := Icon(s.Icon, sc.Dir)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segs[i] = donut.NewSegment(s.Params(icon))
	}
	return segs, nil
}

// Apply updates existing segments to the values in the scene, using the
// segment setters.  The segments must have been built from a scene with
// the same number of segments.  If an icon cannot be resolved, no segment
// is changed.
func (sc *Scene) Apply(segs []*donut.Segment) error {
	if len(segs) != len(sc.Segments) {
		return fmt.Errorf("scene has %d segments, not %d", len(sc.Segments), len(segs))
	}
	icons := make([]donut.IconSource, len(segs))
	for i := range sc.Segments {
		icon, err := Icon(sc.Segments[i].Icon, sc.Dir)
		if err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		icons[i] = icon
	}

	for i, seg := range segs {
		p := sc.Segments[i].Params(icons[i])
		seg.SetRadius(p.Radius)
		seg.SetColor(p.Color)
		seg.SetStrokeWidth(p.StrokeWidth)
		seg.SetCap(p.Cap)
		seg.SetMasterProgress(p.MasterProgress)
		seg.SetLength(p.Length)
		seg.SetGapWidth(p.GapWidth)
		seg.SetGapAngle(p.GapAngle)
		seg.SetDirection(p.Direction)
		seg.SetIcon(p.Icon)
	}
	return nil
}

// Draw places the icons of all segments and then draws the segments onto
// the surface, in the order given by sc.Ordering.
// The background is not drawn.
func (sc *Scene) Draw(surface donut.Surface, segs []*donut.Segment) {
	for i, seg := range segs {
		obscured := 0.0
		if i < len(sc.Segments) {
			obscured = sc.Segments[i].Obscured
		}
		seg.UpdateIconLocation(obscured)
	}

	sorted := slices.Clone(segs)
	donut.SortByDrawnLength(sorted, donut.Ordering(sc.Ordering))
	for _, seg := range sorted {
		seg.Draw(surface)
	}
}

var errEmpty = errors.New("empty scene file")
