package testcases

var polygonCases = []TestCase{
	{
		Name:   "triangle",
		Width:  48,
		Height: 48,
		Ops: []Operation{
			Polygon{Vertices: []Vertex{
				vtx(6, 40, white), vtx(24, 6, white), vtx(42, 40, white),
			}},
		},
	},
	{
		Name:   "shapes",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Polygon{Vertices: square(4, 4, 20, red)},
			Polygon{Vertices: regular(44, 14, 11, 6, green)},
			Polygon{Vertices: arrow(8, 36, blue)},
			Polygon{Vertices: pentagram(44, 46, 15, yellow)},
		},
	},
}
