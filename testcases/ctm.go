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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Width:  128,
		Height: 128,
		Ops:    fillRect(0, 0, 20, 20, white),
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		Ops:    fillRect(0, 0, 80, 80, white),
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "scale_10x",
		Width:  128,
		Height: 128,
		Ops:    fillRect(0, 0, 4, 4, white),
		CTM:    matrix.Scale(10, 10).Translate(44, 44),
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Width:  64,
		Height: 64,
		Ops:    gradientRect(-10, -10, 10, 10),
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_90deg",
		Width:  64,
		Height: 64,
		Ops:    gradientRect(-15, -10, 15, 10),
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Width:  64,
		Height: 64,
		Ops:    gradientRect(-20, -10, 20, 10),
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},

	// non-uniform scaling
	{
		Name:   "scale_2x_1y",
		Width:  128,
		Height: 64,
		Ops:    fillRect(-10, -10, 10, 10, white),
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "scale_1x_2y",
		Width:  64,
		Height: 128,
		Ops:    fillRect(-10, -10, 10, 10, white),
		CTM:    matrix.Scale(1, 2).Translate(32, 64),
	},
	{
		Name:   "circle_to_ellipse",
		Width:  128,
		Height: 64,
		Ops: []Operation{
			Circle{Center: pt(0, 0), Radius: 15, Color: cyan, Filled: true},
			Circle{Center: pt(0, 0), Radius: 20, Color: white},
		},
		CTM: matrix.Scale(2, 1).Translate(64, 32),
	},

	// shear
	{
		Name:   "shear_horizontal",
		Width:  64,
		Height: 64,
		Ops:    fillRect(-15, -15, 15, 15, white),
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_vertical",
		Width:  64,
		Height: 64,
		Ops:    fillRect(-15, -15, 15, 15, white),
		CTM:    matrix.Matrix{1, 0.5, 0, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_and_rotate",
		Width:  64,
		Height: 64,
		Ops:    gradientRect(-12, -12, 12, 12),
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	},

	// lines under transform; thickness is measured in device pixels
	{
		Name:   "thick_line_nonuniform",
		Width:  128,
		Height: 64,
		Lines:  InterpolatedLines,
		Ops: []Operation{
			Line{From: vtx(-20, 0, red), To: vtx(20, 0, blue), Thickness: 5},
			Line{From: vtx(-20, -10, green), To: vtx(20, 10, yellow), Thickness: 3},
		},
		CTM: matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "corner_rotated",
		Width:  64,
		Height: 64,
		Ops:    cornerCentered(0, 0, math.Pi/3),
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
}

// fillRect builds a solid rectangle from two opposite corners.
func fillRect(x1, y1, x2, y2 float64, c RGBA) []Operation {
	return []Operation{Polygon{Vertices: rectangle(x1, y1, x2, y2, c), Fill: Solid}}
}

// gradientRect builds a rectangle with a different colour at every
// corner, so that the orientation of the result is visible.
func gradientRect(x1, y1, x2, y2 float64) []Operation {
	return []Operation{
		Polygon{
			Vertices: []Vertex{vtx(x1, y1, red), vtx(x2, y1, green), vtx(x2, y2, blue), vtx(x1, y2, white)},
			Fill:     Interpolated,
		},
	}
}

// cornerCentered builds the outline of a triangle with a corner of the
// given angle at (cx, cy).
func cornerCentered(cx, cy float64, angle float64) []Operation {
	length := 20.0
	halfAngle := angle / 2

	x1 := cx - length*math.Cos(halfAngle)
	y1 := cy - length*math.Sin(halfAngle)
	x2 := cx + length*math.Cos(halfAngle)
	y2 := cy - length*math.Sin(halfAngle)

	return []Operation{
		Polygon{Vertices: []Vertex{vtx(x1, y1, yellow), vtx(cx, cy, yellow), vtx(x2, y2, yellow)}},
	}
}
