package testcases

import "math"

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  16,
		Height: 8,
		Ops: []Operation{
			Line{From: vtx(0, 0, white), To: vtx(10, 0, white)},
		},
	},
	{
		Name:   "axes",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			Line{From: vtx(2, 16, white), To: vtx(29, 16, white)},
			Line{From: vtx(16, 29, white), To: vtx(16, 2, white)},
			Line{From: vtx(4, 4, red), To: vtx(27, 27, red)},
			Line{From: vtx(27, 4, green), To: vtx(4, 27, green)},
		},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Ops:    star(32, 32, 28, 24, white, white, 1),
	},
	{
		Name:   "star_interpolated",
		Width:  64,
		Height: 64,
		Lines:  InterpolatedLines,
		Ops:    star(32, 32, 28, 24, red, blue, 1),
	},
	{
		Name:   "gradient",
		Width:  64,
		Height: 16,
		Lines:  InterpolatedLines,
		Ops: []Operation{
			Line{From: vtx(2, 3, red), To: vtx(61, 3, green)},
			Line{From: vtx(61, 8, blue), To: vtx(2, 8, yellow)},
			Line{From: vtx(2, 13, white), To: vtx(61, 13, withAlpha(white, 0))},
		},
	},
}

// star builds n lines radiating from (cx, cy).  The colour runs from
// inner at the centre to outer at the tip.
func star(cx, cy, r float64, n int, inner, outer RGBA, thickness int) []Operation {
	ops := make([]Operation, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		tip := vtx(cx+r*math.Cos(angle), cy+r*math.Sin(angle), outer)
		ops[i] = Line{From: vtx(cx, cy, inner), To: tip, Thickness: thickness}
	}
	return ops
}
