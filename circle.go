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

// CircleSegments is the number of polygon vertices used to approximate a
// circle, independent of the radius.
const CircleSegments = 35

// DrawCircle draws a circle of the given radius around center, as a
// regular polygon with [CircleSegments] vertices.  If filled is true, the
// polygon is filled with solid colour c; otherwise only the outline is
// drawn.  Under a non-uniform CTM the circle becomes an ellipse.
//
// The mode of the rasterizer is not changed; only its blend mode is used.
// Circles with a non-finite centre or radius are ignored.
func (r *Rasterizer) DrawCircle(center vec.Vec2, radius float64, c Color, filled bool) {
	r.circle = appendCircle(r.circle[:0], center, radius, c)
	for i := range r.circle {
		r.circle[i].Pos = r.transform(r.circle[i].Pos)
	}

	if filled {
		r.fillPolygon(r.circle, Mode{
			Geometry: GeometryPolygon,
			Fill:     SolidFill,
			Blend:    r.mode.Blend,
		})
		return
	}
	r.drawEdges(r.circle, Mode{
		Geometry: GeometryLine,
		Fill:     Unfilled,
		Blend:    r.mode.Blend,
	})
}

// appendCircle appends the vertices of the approximating polygon to buf,
// counter-clockwise in a y-up frame, starting at angle zero.
func appendCircle(buf []Vertex, center vec.Vec2, radius float64, c Color) []Vertex {
	step := 2 * math.Pi / CircleSegments
	for i := range CircleSegments {
		sin, cos := math.Sincos(float64(i) * step)
		buf = append(buf, Vertex{
			Pos:   vec.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin},
			Color: c,
		})
	}
	return buf
}
