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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tinyraster/testcases"
)

// Render draws a test case onto a fresh rasterizer and returns the
// resulting surface.
func Render(tc testcases.TestCase) *Surface {
	r := NewRasterizer(tc.Width, tc.Height)
	RenderInto(r, tc)
	return r.Surface()
}

// RenderInto clears r and draws the operations of tc onto it.  The clip
// rectangle, the transformation and the mode of r are replaced by those of
// the test case.
func RenderInto(r *Rasterizer, tc testcases.TestCase) {
	bg := Black
	if tc.Background != (testcases.RGBA{}) {
		bg = fromRGBA(tc.Background)
	}
	r.Clear(bg)

	clip := tc.Clip
	if clip == (rect.Rect{}) {
		s := r.Surface()
		clip = rect.Rect{URx: float64(s.Width()), URy: float64(s.Height())}
	}
	r.SetClipRect(clip)

	r.CTM = tc.CTM
	if r.CTM == (matrix.Matrix{}) {
		r.CTM = matrix.Identity
	}

	m := Mode{}
	if tc.Lines == testcases.InterpolatedLines {
		m.Fill = InterpolatedFill
	}
	if tc.Blend {
		m.Blend = AlphaBlend
	}
	r.SetMode(m)

	var buf []Vertex
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			r.DrawLine(fromVertex(op.From), fromVertex(op.To), op.Thickness)
		case testcases.Polygon:
			buf = buf[:0]
			for _, v := range op.Vertices {
				buf = append(buf, fromVertex(v))
			}
			switch op.Fill {
			case testcases.Solid:
				r.FillPolygon(buf)
			case testcases.Interpolated:
				r.FillPolygonInterpolated(buf)
			default:
				r.DrawPolygon(buf)
			}
		case testcases.Circle:
			r.DrawCircle(op.Center, op.Radius, fromRGBA(op.Color), op.Filled)
		}
	}
}

func fromRGBA(c testcases.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromVertex(v testcases.Vertex) Vertex {
	return Vertex{Pos: v.Pos, Color: fromRGBA(v.Color)}
}
