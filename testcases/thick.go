package testcases

var thickCases = []TestCase{
	{
		Name:   "widths",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Line{From: vtx(4, 6, white), To: vtx(59, 6, white), Thickness: 1},
			Line{From: vtx(4, 14, white), To: vtx(59, 14, white), Thickness: 2},
			Line{From: vtx(4, 24, white), To: vtx(59, 24, white), Thickness: 3},
			Line{From: vtx(4, 36, white), To: vtx(59, 36, white), Thickness: 5},
			Line{From: vtx(4, 52, white), To: vtx(59, 52, white), Thickness: 8},
		},
	},
	{
		Name:   "star",
		Width:  96,
		Height: 96,
		Ops:    star(48, 48, 40, 12, white, white, 4),
	},
	{
		Name:   "star_interpolated",
		Width:  96,
		Height: 96,
		Lines:  InterpolatedLines,
		Ops:    star(48, 48, 40, 12, yellow, magenta, 5),
	},
}
