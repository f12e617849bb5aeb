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
	"image/color"
	"math"
)

// Color is a straight-alpha RGBA colour with floating point channels.
// Channels are nominally in [0, 1], but values outside this range are
// stored and composited as given; clamping only happens when a Color is
// converted to a [color.Color] representation.
type Color struct {
	R, G, B, A float64
}

// Predefined colours.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Transparent = Color{}
)

// Lerp linearly interpolates between c (t=0) and d (t=1), channel by
// channel.  The endpoints are reproduced exactly.
func (c Color) Lerp(d Color, t float64) Color {
	s := 1 - t
	return Color{
		R: s*c.R + t*d.R,
		G: s*c.G + t*d.G,
		B: s*c.B + t*d.B,
		A: s*c.A + t*d.A,
	}
}

// Over composites c onto dst using c's alpha as the weight:
// result = a*c + (1-a)*dst for every channel, the alpha channel included.
func (c Color) Over(dst Color) Color {
	a := c.A
	b := 1 - a
	return Color{
		R: a*c.R + b*dst.R,
		G: a*c.G + b*dst.G,
		B: a*c.B + b*dst.B,
		A: a*c.A + b*dst.A,
	}
}

// RGBA implements the [color.Color] interface.
// The returned values are alpha-premultiplied and clamped to [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(math.Round(clamp01(c.R) * alpha * 0xffff))
	g = uint32(math.Round(clamp01(c.G) * alpha * 0xffff))
	b = uint32(math.Round(clamp01(c.B) * alpha * 0xffff))
	a = uint32(math.Round(alpha * 0xffff))
	return r, g, b, a
}

// NRGBA converts c to 8-bit non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts any [color.Color] to a Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// ColorModel converts arbitrary colours to [Color] values.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
