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

import "seehuhn.de/go/geom/vec"

// DrawPolygon draws the outline of a closed polygon, connecting every
// vertex to the next and the last vertex back to the first.  Polygons with
// fewer than three vertices are ignored.
//
// The edges are drawn with the current mode.
func (r *Rasterizer) DrawPolygon(vertices []Vertex) {
	if len(vertices) < 3 {
		Logger().Debug("polygon rejected", "vertices", len(vertices))
		return
	}
	r.drawEdges(r.toDevice(vertices), r.mode)
}

// FillPolygon fills a closed polygon with solid colour, using the even-odd
// rule.  Every span uses the colour of the edge crossing it starts from;
// for a single-coloured polygon this is the polygon colour.  Polygons with
// fewer than three vertices are ignored.
//
// The blend mode of the rasterizer is honoured.
func (r *Rasterizer) FillPolygon(vertices []Vertex) {
	r.fillPolygon(r.toDevice(vertices), Mode{
		Geometry: GeometryPolygon,
		Fill:     SolidFill,
		Blend:    r.mode.Blend,
	})
}

// FillPolygonInterpolated fills a closed polygon, interpolating the vertex
// colours first along the edges and then along each scanline.
// Polygons with fewer than three vertices are ignored.
//
// The blend mode of the rasterizer is honoured.
func (r *Rasterizer) FillPolygonInterpolated(vertices []Vertex) {
	r.fillPolygon(r.toDevice(vertices), Mode{
		Geometry: GeometryPolygon,
		Fill:     InterpolatedFill,
		Blend:    r.mode.Blend,
	})
}

// drawEdges draws all edges of a closed polygon in mode m.  The vertices
// are in device space.  Polygons with a non-finite vertex are ignored.
func (r *Rasterizer) drawEdges(vertices []Vertex, m Mode) {
	if !allFinite(vertices) {
		Logger().Debug("non-finite polygon ignored", "vertices", len(vertices))
		return
	}
	n := len(vertices)
	record := m.recordsCrossings()
	for i := range n {
		r.drawLine(vertices[i], vertices[(i+1)%n], 1, m, record)
	}
}

// fillPolygon draws the edges of the polygon, collecting crossings, and
// then draws a span between each consecutive pair of crossings on every
// row.  If a row has an odd number of crossings, the last one is left
// unpaired.  The vertices are in device space.
func (r *Rasterizer) fillPolygon(vertices []Vertex, m Mode) {
	if len(vertices) < 3 {
		Logger().Debug("polygon rejected", "vertices", len(vertices))
		return
	}
	if !allFinite(vertices) {
		Logger().Debug("non-finite polygon ignored", "vertices", len(vertices))
		return
	}

	r.crossings.Clear()
	r.drawEdges(vertices, m)

	span := Mode{Geometry: GeometryLine, Fill: m.Fill, Blend: m.Blend}
	for y := range r.crossings.Height() {
		if len(r.crossings.Row(y)) < 2 {
			continue
		}
		r.crossings.SortRow(y)
		row := r.crossings.Row(y)
		if len(row)%2 != 0 {
			Logger().Debug("odd number of crossings", "y", y, "count", len(row))
		}

		fy := float64(y)
		for i := 0; i+1 < len(row); i += 2 {
			a := Vertex{Pos: vec.Vec2{X: float64(row[i].x), Y: fy}, Color: row[i].color}
			b := Vertex{Pos: vec.Vec2{X: float64(row[i+1].x), Y: fy}, Color: row[i+1].color}
			r.drawLine(a, b, 1, span, false)
		}
	}
}
