package testcases

var blendCases = []TestCase{
	{
		Name:   "pixel",
		Width:  4,
		Height: 4,
		Blend:  true,
		Ops: []Operation{
			Line{From: vtx(1, 1, withAlpha(white, 0.5)), To: vtx(1, 1, withAlpha(white, 0.5))},
		},
	},
	{
		Name:   "overlap",
		Width:  64,
		Height: 64,
		Blend:  true,
		Ops: []Operation{
			Polygon{Vertices: square(4, 4, 36, withAlpha(red, 0.5)), Fill: Solid},
			Polygon{Vertices: square(24, 14, 36, withAlpha(green, 0.5)), Fill: Solid},
			Polygon{Vertices: square(14, 24, 36, withAlpha(blue, 0.5)), Fill: Solid},
		},
	},
	{
		Name:       "interpolated",
		Width:      64,
		Height:     64,
		Background: RGBA{0.2, 0.2, 0.2, 1},
		Blend:      true,
		Ops: []Operation{
			Polygon{Vertices: square(8, 8, 30, white), Fill: Solid},
			Polygon{
				Vertices: []Vertex{
					vtx(20, 4, withAlpha(red, 0.9)),
					vtx(60, 30, withAlpha(green, 0.5)),
					vtx(24, 60, withAlpha(blue, 0.1)),
				},
				Fill: Interpolated,
			},
		},
	},
	{
		Name:   "lines",
		Width:  64,
		Height: 64,
		Blend:  true,
		Ops:    star(32, 32, 28, 24, withAlpha(white, 0.6), withAlpha(white, 0.6), 3),
	},
}
