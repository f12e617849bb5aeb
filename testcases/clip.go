package testcases

import "seehuhn.de/go/geom/rect"

var clipCases = []TestCase{
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Clip:   rect.Rect{LLx: 12, LLy: 16, URx: 52, URy: 48},
		Lines:  InterpolatedLines,
		Ops:    star(32, 32, 40, 24, red, yellow, 1),
	},
	{
		Name:   "polygon",
		Width:  64,
		Height: 64,
		Clip:   rect.Rect{LLx: 16, LLy: 16, URx: 48, URy: 48},
		Ops: []Operation{
			Polygon{Vertices: regular(32, 32, 26, 6, green), Fill: Solid},
			Circle{Center: pt(32, 32), Radius: 20, Color: white},
		},
	},
	{
		Name:   "offscreen",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			Line{From: vtx(-40, -10, white), To: vtx(70, 41, white), Thickness: 3},
			Polygon{Vertices: square(-10, 20, 20, red), Fill: Solid},
			Circle{Center: pt(32, 0), Radius: 10, Color: blue, Filled: true},
		},
	},
}
