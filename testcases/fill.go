package testcases

import "math"

var fillCases = []TestCase{
	{
		Name:   "square",
		Width:  12,
		Height: 12,
		Ops: []Operation{
			Polygon{
				Vertices: []Vertex{vtx(2, 2, red), vtx(8, 2, red), vtx(8, 8, red), vtx(2, 8, red)},
				Fill:     Solid,
			},
		},
	},
	{
		Name:   "convex",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Polygon{Vertices: []Vertex{vtx(4, 4, green), vtx(40, 10, green), vtx(12, 36, green)}, Fill: Solid},
			Polygon{Vertices: regular(46, 44, 14, 7, cyan), Fill: Solid},
			Polygon{Vertices: square(6, 44, 14, magenta), Fill: Solid},
		},
	},
	{
		Name:   "nonconvex",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Polygon{Vertices: arrow(4, 4, yellow), Fill: Solid},
			Polygon{Vertices: pentagram(40, 40, 20, red), Fill: Solid},
		},
	},
	{
		Name:   "interpolated",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Polygon{
				Vertices: []Vertex{vtx(32, 4, red), vtx(60, 58, green), vtx(4, 58, blue)},
				Fill:     Interpolated,
			},
		},
	},
	{
		Name:   "interpolated_quad",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Polygon{
				Vertices: []Vertex{vtx(6, 6, red), vtx(57, 10, yellow), vtx(52, 57, blue), vtx(10, 50, white)},
				Fill:     Interpolated,
			},
		},
	},
}

// square builds an axis-aligned square with top-left corner (x, y).
func square(x, y, size float64, c RGBA) []Vertex {
	return []Vertex{
		vtx(x, y, c),
		vtx(x+size, y, c),
		vtx(x+size, y+size, c),
		vtx(x, y+size, c),
	}
}

// regular builds a regular n-gon around (cx, cy).
func regular(cx, cy, r float64, n int, c RGBA) []Vertex {
	vv := make([]Vertex, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		vv[i] = vtx(cx+r*math.Cos(angle), cy+r*math.Sin(angle), c)
	}
	return vv
}

// pentagram builds a self-intersecting five-pointed star.
func pentagram(cx, cy, r float64, c RGBA) []Vertex {
	corners := regular(cx, cy, r, 5, c)
	order := []int{0, 2, 4, 1, 3}
	vv := make([]Vertex, len(order))
	for i, k := range order {
		vv[i] = corners[k]
	}
	return vv
}

// arrow builds a non-convex arrow shape with top-left corner (x, y).
func arrow(x, y float64, c RGBA) []Vertex {
	return []Vertex{
		vtx(x, y+8, c),
		vtx(x+14, y+8, c),
		vtx(x+14, y, c),
		vtx(x+26, y+12, c),
		vtx(x+14, y+24, c),
		vtx(x+14, y+16, c),
		vtx(x, y+16, c),
	}
}
