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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// OutCode classifies a point relative to a clip rectangle.  Bits are set
// for every side of the rectangle the point lies beyond.
type OutCode uint8

// Outcode bits.  "Bottom" refers to the side with the smaller y
// coordinate (LLy) and "top" to the side with the larger one (URy).
const (
	OutLeft OutCode = 1 << iota
	OutRight
	OutBottom
	OutTop

	OutInside OutCode = 0
)

// ComputeOutCode returns the outcode of p with respect to the closed
// rectangle clip.  A NaN coordinate lies beyond both sides of its axis.
func ComputeOutCode(p vec.Vec2, clip rect.Rect) OutCode {
	code := OutInside
	if math.IsNaN(p.X) {
		code |= OutLeft | OutRight
	} else if p.X < clip.LLx {
		code |= OutLeft
	} else if p.X > clip.URx {
		code |= OutRight
	}
	if math.IsNaN(p.Y) {
		code |= OutBottom | OutTop
	} else if p.Y < clip.LLy {
		code |= OutBottom
	} else if p.Y > clip.URy {
		code |= OutTop
	}
	return code
}

// maxClipSteps bounds the Cohen-Sutherland loop.  Every step moves one
// endpoint onto one side of the rectangle, so four steps per endpoint are
// enough unless rounding makes a point oscillate across a corner.
const maxClipSteps = 8

// ClipLine clips the segment v1-v2 against the closed rectangle clip using
// the Cohen-Sutherland algorithm.  The colours of trimmed endpoints are
// interpolated along the original segment.  If no part of the segment lies
// inside clip, or if an endpoint is not finite, ok is false.
func ClipLine(v1, v2 Vertex, clip rect.Rect) (w1, w2 Vertex, ok bool) {
	if !finite(v1.Pos) || !finite(v2.Pos) {
		return v1, v2, false
	}
	a := v1.Pos
	d := v2.Pos.Sub(a)

	p0, p1 := v1.Pos, v2.Pos
	t0, t1 := 0.0, 1.0
	code0 := ComputeOutCode(p0, clip)
	code1 := ComputeOutCode(p1, clip)

	for range maxClipSteps {
		if code0|code1 == OutInside {
			w1 = Vertex{Pos: p0, Color: v1.Color}
			w2 = Vertex{Pos: p1, Color: v2.Color}
			if t0 != 0 {
				w1.Color = v1.Color.Lerp(v2.Color, t0)
			}
			if t1 != 1 {
				w2.Color = v1.Color.Lerp(v2.Color, t1)
			}
			return w1, w2, true
		}
		if code0&code1 != 0 {
			return v1, v2, false
		}

		out := code0
		if out == OutInside {
			out = code1
		}

		// The other endpoint is on the inside of the selected side,
		// so the segment is not parallel to it.
		var t float64
		var p vec.Vec2
		switch {
		case out&OutTop != 0:
			t = (clip.URy - a.Y) / d.Y
			p = vec.Vec2{X: a.X + t*d.X, Y: clip.URy}
		case out&OutBottom != 0:
			t = (clip.LLy - a.Y) / d.Y
			p = vec.Vec2{X: a.X + t*d.X, Y: clip.LLy}
		case out&OutRight != 0:
			t = (clip.URx - a.X) / d.X
			p = vec.Vec2{X: clip.URx, Y: a.Y + t*d.Y}
		default: // OutLeft
			t = (clip.LLx - a.X) / d.X
			p = vec.Vec2{X: clip.LLx, Y: a.Y + t*d.Y}
		}

		if out == code0 {
			p0, t0 = p, t
			code0 = ComputeOutCode(p0, clip)
		} else {
			p1, t1 = p, t
			code1 = ComputeOutCode(p1, clip)
		}
	}
	return v1, v2, false
}
