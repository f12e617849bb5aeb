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

package tinyraster

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Vertex is a point in surface coordinates, together with the colour
// associated with it.
type Vertex struct {
	Pos   vec.Vec2
	Color Color
}

// V is a shorthand for constructing a Vertex.
func V(x, y float64, c Color) Vertex {
	return Vertex{Pos: vec.Vec2{X: x, Y: y}, Color: c}
}

// pixel rounds a position to the nearest pixel.
func pixel(p vec.Vec2) (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// finite reports whether both coordinates of p are neither infinite nor
// NaN.
func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func allFinite(vertices []Vertex) bool {
	for _, v := range vertices {
		if !finite(v.Pos) {
			return false
		}
	}
	return true
}
