package testcases

import "seehuhn.de/go/donut/scene"

var progressCases = []TestCase{
	{
		Name:  "zero",
		Scene: single(seg(100, 20, "steelblue", 0, 1)),
	},
	{
		Name:  "quarter",
		Scene: single(seg(100, 20, "steelblue", 0.25, 1)),
	},
	{
		Name:  "half",
		Scene: single(seg(100, 20, "steelblue", 0.5, 1)),
	},
	{
		Name:  "full",
		Scene: single(seg(100, 20, "steelblue", 1, 1)),
	},
	{
		Name:  "half_of_short",
		Scene: single(seg(100, 20, "steelblue", 0.5, 0.4)),
	},
	{
		Name:  "overshoot",
		Scene: single(seg(100, 20, "steelblue", 1.2, 1)),
	},
	{
		Name:  "thin",
		Scene: single(seg(100, 2, "black", 0.7, 1)),
	},
	{
		Name:  "translucent",
		Scene: single(seg(100, 30, "#ff000080", 0.6, 1)),
	},
}

// single returns a 240x240 scene with a white background and one segment.
func single(s scene.Segment) scene.Scene {
	return scene.Scene{
		Width:      240,
		Height:     240,
		Background: mustColor("white"),
		Segments:   []scene.Segment{s},
	}
}
