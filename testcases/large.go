// seehuhn.de/go/tinyraster - a scanline rasterizer
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

package testcases

// largeCases contains scenes on big surfaces, where most rows of the
// crossing table are in use.
var largeCases = []TestCase{
	{
		Name:   "rectangle",
		Width:  512,
		Height: 512,
		Ops: []Operation{
			Polygon{Vertices: rectangle(50, 50, 462, 462, white), Fill: Solid},
		},
	},
	{
		Name:   "diamond",
		Width:  512,
		Height: 512,
		Ops: []Operation{
			Polygon{Vertices: diamond(256, 256, 180, cyan), Fill: Solid},
		},
	},
	{
		Name:   "diamond_interpolated",
		Width:  512,
		Height: 512,
		Ops: []Operation{
			Polygon{
				Vertices: []Vertex{
					vtx(256, 76, red), vtx(436, 256, green),
					vtx(256, 436, blue), vtx(76, 256, yellow),
				},
				Fill: Interpolated,
			},
		},
	},
	{
		Name:   "grid",
		Width:  512,
		Height: 512,
		Ops:    rectangleGrid(8, 8, 512, 512, 4),
	},
	{
		// The rectangle extends outside the surface on both sides.
		Name:   "clipped",
		Width:  512,
		Height: 512,
		Ops: []Operation{
			Polygon{Vertices: rectangle(-100, 100, 612, 400, magenta), Fill: Solid},
		},
	},
}

// rectangle builds an axis-aligned rectangle from two opposite corners.
func rectangle(x1, y1, x2, y2 float64, c RGBA) []Vertex {
	return []Vertex{vtx(x1, y1, c), vtx(x2, y1, c), vtx(x2, y2, c), vtx(x1, y2, c)}
}

// diamond builds a square rotated by 45 degrees around (cx, cy).
func diamond(cx, cy, r float64, c RGBA) []Vertex {
	return []Vertex{vtx(cx, cy-r, c), vtx(cx+r, cy, c), vtx(cx, cy+r, c), vtx(cx-r, cy, c)}
}

// rectangleGrid builds a grid of filled rectangles, alternating between
// solid and interpolated fill.
func rectangleGrid(rows, cols, width, height int, gap float64) []Operation {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var ops []Operation
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			if (row+col)%2 == 0 {
				ops = append(ops, Polygon{Vertices: rectangle(x1, y1, x2, y2, white), Fill: Solid})
			} else {
				ops = append(ops, Polygon{
					Vertices: []Vertex{vtx(x1, y1, red), vtx(x2, y1, green), vtx(x2, y2, blue), vtx(x1, y2, white)},
					Fill:     Interpolated,
				})
			}
		}
	}
	return ops
}
