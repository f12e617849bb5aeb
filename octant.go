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

// octant describes the reflection/rotation which maps a line direction
// (dx, dy) into the first octant, where 0 <= dy <= dx.
//
// The forward mapping negates x and y as required to make both
// non-negative, then swaps the axes if the line is steep.  The inverse
// undoes these steps in reverse order.
type octant struct {
	negX, negY bool
	swapXY     bool
}

// octantOf returns the octant of a line with direction (dx, dy).
// The zero vector is assigned to the first octant.
func octantOf(dx, dy int) octant {
	return octant{
		negX:   dx < 0,
		negY:   dy < 0,
		swapXY: abs(dy) > abs(dx),
	}
}

// toCanonical maps a displacement into canonical space.
func (o octant) toCanonical(dx, dy int) (u, v int) {
	if o.negX {
		dx = -dx
	}
	if o.negY {
		dy = -dy
	}
	if o.swapXY {
		return dy, dx
	}
	return dx, dy
}

// fromCanonical is the inverse of toCanonical.
func (o octant) fromCanonical(u, v int) (dx, dy int) {
	if o.swapXY {
		u, v = v, u
	}
	if o.negX {
		u = -u
	}
	if o.negY {
		v = -v
	}
	return u, v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
