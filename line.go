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
	"math/bits"

	"seehuhn.de/go/geom/rect"
)

// DrawLine draws a line from v1 to v2 using the current mode.
//
// Both endpoints are included.  With [InterpolatedFill], the colour is
// interpolated linearly from v1.Color to v2.Color along the line;
// otherwise the whole line uses the colour of the endpoint the stepper
// starts from.  A thickness greater than one widens the line along its
// minor axis.  If the geometry mode is [GeometryPolygon] and the fill mode
// is not [Unfilled], the line is treated as a polygon edge and its
// crossings are recorded for the next fill.
//
// The endpoints are mapped through the CTM; the thickness is in pixels.
// Lines with a non-finite endpoint are ignored.
func (r *Rasterizer) DrawLine(v1, v2 Vertex, thickness int) {
	v1.Pos = r.transform(v1.Pos)
	v2.Pos = r.transform(v2.Pos)
	r.drawLine(v1, v2, thickness, r.mode, r.mode.recordsCrossings())
}

// maxCoord bounds the pixel coordinates seen by the stepper, so that the
// products in [stepper.state] and [stepper.firstU] fit into 128 bits with
// quotients that fit into an int.  Longer lines are trimmed in floating
// point first.
const maxCoord = 1 << 60

// maxThickness keeps the offsets of thick lines away from overflow.
const maxThickness = 1 << 30

var coordBounds = rect.Rect{LLx: -maxCoord, LLy: -maxCoord, URx: maxCoord, URy: maxCoord}

// drawLine rasterizes one line in mode m.  The vertices are in device
// space.  If record is set, the first pixel of every row the line visits
// is entered into the crossing table.
//
// Only the steps which can reach a visible pixel are executed, but they
// are the same steps the full line would take: the stepper is started
// with the exact state of its first visible step, so clipping never moves
// a pixel.
func (r *Rasterizer) drawLine(v1, v2 Vertex, thickness int, m Mode, record bool) {
	if !finite(v1.Pos) || !finite(v2.Pos) {
		Logger().Debug("non-finite line ignored", "from", v1.Pos, "to", v2.Pos)
		return
	}
	thickness = min(max(thickness, 1), maxThickness)

	// Rows for the half-open crossing rule come from the original
	// endpoints, even if the line is trimmed below.
	yMin, yMax := row(v1.Pos.Y), row(v2.Pos.Y)

	if !inBounds(v1) || !inBounds(v2) {
		var ok bool
		v1, v2, ok = ClipLine(v1, v2, coordBounds)
		if !ok {
			return
		}
	}

	xLo, yLo, xHi, yHi, ok := r.visible()
	if !ok {
		return
	}

	x0, y0 := pixel(v1.Pos)
	x1, y1 := pixel(v2.Pos)
	c0, c1 := v1.Color, v2.Color

	// Always step with increasing x, so that a line and its reverse give
	// the same pixels.
	if x0 > x1 || x0 == x1 && y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		c0, c1 = c1, c0
	}
	s := newStepper(x0, y0, x1, y1)

	interpolate := m.Fill == InterpolatedFill && s.du > 0
	colorAt := func(u int) Color {
		if !interpolate {
			return c0
		}
		return c0.Lerp(c1, float64(u)/float64(s.du))
	}

	if record {
		r.recordRows(s, newEdgeRecorder(r.crossings, yMin, yMax), yLo, yHi, colorAt)
	}

	half := thickness / 2
	uLo, uHi := 0, s.du
	uLo, uHi = s.restrict(uLo, uHi, false, xLo-half, xHi+half)
	uLo, uHi = s.restrict(uLo, uHi, true, yLo-half, yHi+half)
	if uLo > uHi {
		if !record {
			Logger().Debug("line clipped away",
				"from", v1.Pos, "to", v2.Pos)
		}
		return
	}

	// In canonical space 0 <= dv <= du.  After step u the error term
	// is u*dv - v*du, and v is advanced whenever the error reaches
	// half a pixel.
	v, e := s.state(uLo)
	for u := uLo; u <= uHi; u++ {
		c := colorAt(u)
		x, y := s.pixel(u, v)
		r.plot(x, y, c, m.Blend)

		// Thick lines: offsets +1, -1, +2, -2, ... along the minor axis.
		for k := 1; k < thickness; k++ {
			off := (k + 1) / 2
			if k%2 == 0 {
				off = -off
			}
			x, y := s.pixel(u, v+off)
			r.plot(x, y, c, m.Blend)
		}

		e += s.dv
		if 2*e >= s.du {
			v++
			e -= s.du
		}
	}
}

// recordRows enters one crossing into rec for every row yLo <= y <= yHi
// the line passes through.  The crossing is the first pixel of the row in
// stepping order.
func (r *Rasterizer) recordRows(s *stepper, rec *edgeRecorder, yLo, yHi int, colorAt func(int) Color) {
	uLo, uHi := s.restrict(0, s.du, true, yLo, yHi)
	for u := uLo; u <= uHi; {
		v, _ := s.state(u)
		x, y := s.pixel(u, v)
		rec.record(x, y, colorAt(u))
		if s.o.swapXY {
			u++ // y is the major axis
		} else {
			u = s.firstU(v + 1)
		}
	}
}

// visible returns the pixels which the clip rectangle and the surface
// leave drawable, as an inclusive rectangle.
func (r *Rasterizer) visible() (xLo, yLo, xHi, yHi int, ok bool) {
	c := r.clip
	if math.IsNaN(c.LLx) || math.IsNaN(c.LLy) || math.IsNaN(c.URx) || math.IsNaN(c.URy) {
		return 0, 0, 0, 0, false
	}
	w := float64(r.surface.Width())
	h := float64(r.surface.Height())
	xLo = int(math.Ceil(min(max(c.LLx, 0), w)))
	xHi = int(math.Ceil(min(max(c.URx, 0), w))) - 1
	yLo = int(math.Ceil(min(max(c.LLy, 0), h)))
	yHi = int(math.Ceil(min(max(c.URy, 0), h))) - 1
	return xLo, yLo, xHi, yHi, xLo <= xHi && yLo <= yHi
}

// stepper holds a line in canonical form: the pixel at step u is
// (x0, y0) + o.fromCanonical(u, v_u), for 0 <= u <= du.
type stepper struct {
	x0, y0 int
	o      octant
	du, dv int
}

func newStepper(x0, y0, x1, y1 int) *stepper {
	o := octantOf(x1-x0, y1-y0)
	du, dv := o.toCanonical(x1-x0, y1-y0)
	return &stepper{x0: x0, y0: y0, o: o, du: du, dv: dv}
}

func (s *stepper) pixel(u, v int) (x, y int) {
	dx, dy := s.o.fromCanonical(u, v)
	return s.x0 + dx, s.y0 + dy
}

// state returns the minor coordinate and the error term after step u.
//
// v_u is the unique integer with -du <= 2*(u*dv - v_u*du) < du, which
// gives v_u = floor((2*u*dv + du) / (2*du)).
func (s *stepper) state(u int) (v, e int) {
	if s.du == 0 {
		return 0, 0
	}
	v, rem := mulDiv(u, 2*s.dv, s.du, 2*s.du)
	return v, (rem - s.du) / 2
}

// firstU returns the first step with v_u >= k, or du+1 if there is none.
func (s *stepper) firstU(k int) int {
	switch {
	case k <= 0:
		return 0
	case k > s.dv:
		return s.du + 1
	}
	// smallest u with 2*u*dv >= (2k-1)*du
	u, _ := mulDiv(2*k-1, s.du, 2*s.dv-1, 2*s.dv)
	return u
}

// restrict narrows the step range [uLo, uHi] to the steps whose pixel
// has lo <= y <= hi (if yAxis is set) or lo <= x <= hi.
func (s *stepper) restrict(uLo, uHi int, yAxis bool, lo, hi int) (int, int) {
	c0, neg := s.x0, s.o.negX
	if yAxis {
		c0, neg = s.y0, s.o.negY
	}
	// the canonical coordinate w along this axis must lie in [wLo, wHi]
	wLo, wHi := lo-c0, hi-c0
	if neg {
		wLo, wHi = c0-hi, c0-lo
	}

	if yAxis == s.o.swapXY { // major axis
		return max(uLo, wLo), min(uHi, wHi)
	}
	wLo, wHi = max(wLo, 0), min(wHi, s.dv)
	if wLo > wHi {
		return 1, 0
	}
	return max(uLo, s.firstU(wLo)), min(uHi, s.firstU(wHi+1)-1)
}

// mulDiv returns the quotient and remainder of (a*b + c) / d, for
// non-negative a, b, c and positive d.  The quotient must fit into an int.
func mulDiv(a, b, c, d int) (q, rem int) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	lo, carry := bits.Add64(lo, uint64(c), 0)
	qq, rr := bits.Div64(hi+carry, lo, uint64(d))
	return int(qq), int(rr)
}

func inBounds(v Vertex) bool {
	return math.Abs(v.Pos.X) <= maxCoord && math.Abs(v.Pos.Y) <= maxCoord
}

// row returns the pixel row of y, saturated to the stepper's range.
func row(y float64) int {
	return int(math.Round(min(max(y, -maxCoord), maxCoord)))
}
