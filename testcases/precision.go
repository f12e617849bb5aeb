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

// precisionCases check how fractional and very large coordinates are
// snapped to pixels.  Coordinates are rounded to the nearest integer,
// with halves rounded away from zero.
var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Width:  64,
		Height: 64,
		Ops:    offsetRectangle(20, 20, 24, 24, 0.0),
	},
	{
		Name:   "subpixel_offset_25",
		Width:  64,
		Height: 64,
		Ops:    offsetRectangle(20, 20, 24, 24, 0.25),
	},
	{
		Name:   "subpixel_offset_50",
		Width:  64,
		Height: 64,
		Ops:    offsetRectangle(20, 20, 24, 24, 0.5),
	},
	{
		Name:   "subpixel_offset_75",
		Width:  64,
		Height: 64,
		Ops:    offsetRectangle(20, 20, 24, 24, 0.75),
	},
	{
		Name:   "thin_line_y_integer",
		Width:  64,
		Height: 64,
		Ops:    []Operation{horizontalLineAt(5, 10.0, 59)},
	},
	{
		Name:   "thin_line_y_half",
		Width:  64,
		Height: 64,
		Ops:    []Operation{horizontalLineAt(5, 10.5, 59)},
	},
	{
		Name:   "large_coord_line",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Line{From: vtx(-1e6, -1e6+40, white), To: vtx(1e6, 1e6+40, white), Thickness: 1},
			Line{From: vtx(1e9, 20, red), To: vtx(-1e9, 20, red), Thickness: 3},
		},
	},
	{
		Name:   "small_shape_large_offset",
		Width:  64,
		Height: 64,
		Ops:    smallShapeAtLargeOffset(10000, 10000, 2),
	},
	{
		Name:   "float64_precision",
		Width:  64,
		Height: 64,
		Ops:    float64PrecisionShape(),
	},
}

// offsetRectangle builds a filled rectangle with a subpixel offset applied
// to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) []Operation {
	return []Operation{
		Polygon{
			Vertices: rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset, white),
			Fill:     Solid,
		},
	}
}

// horizontalLineAt builds a horizontal line at a specific y position.
func horizontalLineAt(x1, y, x2 float64) Operation {
	return Line{From: vtx(x1, y, white), To: vtx(x2, y, white), Thickness: 1}
}

// smallShapeAtLargeOffset builds a tiny square which is computed at
// (cx, cy) and then translated to the centre of the canvas.
func smallShapeAtLargeOffset(cx, cy, size float64) []Operation {
	translateX := 32 - cx
	translateY := 32 - cy

	x1 := cx - size/2 + translateX
	y1 := cy - size/2 + translateY
	x2 := cx + size/2 + translateX
	y2 := cy + size/2 + translateY

	return []Operation{Polygon{Vertices: rectangle(x1, y1, x2, y2, white), Fill: Solid}}
}

// float64PrecisionShape builds a rectangle whose corners differ only in
// the low bits of their coordinates.
func float64PrecisionShape() []Operation {
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2

	return []Operation{Polygon{Vertices: rectangle(x1, y1, x2, y2, white), Fill: Solid}}
}
