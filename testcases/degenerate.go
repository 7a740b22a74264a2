package testcases

import "seehuhn.de/go/donut/scene"

var degenerateCases = []TestCase{
	{
		Name:  "zero_radius",
		Scene: single(seg(0, 20, "black", 1, 1)),
	},
	{
		Name:  "zero_width",
		Scene: single(seg(100, 0, "black", 1, 1)),
	},
	{
		Name:  "full_gap",
		Scene: single(withGap(seg(100, 20, "black", 1, 1), 360, 0)),
	},
	{
		Name:  "negative_progress",
		Scene: single(seg(100, 20, "black", -0.5, 1)),
	},
	{
		Name: "empty",
		Scene: scene.Scene{
			Width:      64,
			Height:     64,
			Background: mustColor("white"),
			Segments:   []scene.Segment{},
		},
	},
}
