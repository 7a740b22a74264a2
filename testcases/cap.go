package testcases

import (
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/donut/scene"
)

var capCases = []TestCase{
	{
		Name:  "butt",
		Scene: single(withCap(seg(90, 40, "slateblue", 0.4, 1), graphics.LineCapButt)),
	},
	{
		Name:  "round",
		Scene: single(withCap(seg(90, 40, "slateblue", 0.4, 1), graphics.LineCapRound)),
	},
	{
		Name:  "square",
		Scene: single(withCap(seg(90, 40, "slateblue", 0.4, 1), graphics.LineCapSquare)),
	},
	{
		// the drawn length is rounded up to 1, which leaves a short dash
		Name:  "round_tiny",
		Scene: single(withCap(seg(90, 40, "slateblue", 0.0001, 1), graphics.LineCapRound)),
	},
}

func withCap(s scene.Segment, c graphics.LineCapStyle) scene.Segment {
	s.Cap = scene.Cap(c)
	return s
}
