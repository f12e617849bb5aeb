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
	"image"
	"image/color"
)

// Surface is a fixed-size grid of [Color] pixels in row-major order, with
// the origin in the top-left corner.  Reads and writes are bounds-checked:
// writes outside the surface are ignored and reads return [Transparent].
//
// Surface implements [image.Image], so it can be passed directly to
// encoders such as image/png.
type Surface struct {
	width  int
	height int
	pix    []Color
}

// NewSurface allocates a surface of the given size.  All pixels start out
// transparent.  Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int { return s.height }

// Pix returns the underlying pixel slice.
// The pixel at (x, y) is stored at index y*Width()+x.
func (s *Surface) Pix() []Color { return s.pix }

// In reports whether (x, y) addresses a pixel of the surface.
func (s *Surface) In(x, y int) bool {
	return 0 <= x && x < s.width && 0 <= y && y < s.height
}

// SetPixel stores c at (x, y).  Out-of-range coordinates are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if !s.In(x, y) {
		return
	}
	s.pix[y*s.width+x] = c
}

// Pixel returns the colour stored at (x, y), or [Transparent] if (x, y) is
// outside the surface.
func (s *Surface) Pixel(x, y int) Color {
	if !s.In(x, y) {
		return Transparent
	}
	return s.pix[y*s.width+x]
}

// Fill sets every pixel of the surface to c.
func (s *Surface) Fill(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// ColorModel implements the [image.Image] interface.
func (s *Surface) ColorModel() color.Model { return ColorModel }

// Bounds implements the [image.Image] interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements the [image.Image] interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// NRGBA returns an 8-bit copy of the surface.
func (s *Surface) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	for y := range s.height {
		row := s.pix[y*s.width : (y+1)*s.width]
		for x, c := range row {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}
