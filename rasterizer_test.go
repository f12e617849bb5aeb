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
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestNewRasterizer(t *testing.T) {
	r := NewRasterizer(20, 10)
	if got := r.Background(); got != Black {
		t.Errorf("background %v", got)
	}
	if got := r.Foreground(); got != White {
		t.Errorf("foreground %v", got)
	}
	if got := r.Mode(); got != (Mode{Geometry: GeometryLine, Fill: Unfilled, Blend: NoBlend}) {
		t.Errorf("mode %v", got)
	}
	if got := r.ClipRect(); got != (rect.Rect{URx: 20, URy: 10}) {
		t.Errorf("clip %v", got)
	}
	if r.CTM != matrix.Identity {
		t.Errorf("CTM %v", r.CTM)
	}
	s := r.Surface()
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("surface is %dx%d", s.Width(), s.Height())
	}
}

func TestClear(t *testing.T) {
	r := NewRasterizer(8, 8)
	r.SetClipRect(rect.Rect{LLx: 2, LLy: 2, URx: 4, URy: 4})
	r.Clear(Blue)
	if r.Background() != Blue {
		t.Errorf("background not updated")
	}
	s := r.Surface()
	for y := range s.Height() {
		for x := range s.Width() {
			if got := s.Pixel(x, y); got != Blue {
				t.Fatalf("pixel (%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestModeSetters(t *testing.T) {
	r := NewRasterizer(1, 1)
	r.SetGeometryMode(GeometryPolygon)
	r.SetFillMode(InterpolatedFill)
	r.SetBlendMode(AlphaBlend)
	want := Mode{Geometry: GeometryPolygon, Fill: InterpolatedFill, Blend: AlphaBlend}
	if got := r.Mode(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	r.SetMode(Mode{})
	if got := r.Mode(); got != (Mode{}) {
		t.Errorf("got %v after reset", got)
	}
}

func TestDrawPoint(t *testing.T) {
	r := NewRasterizer(4, 4)
	r.SetForeground(Red)
	r.DrawPoint(vec.Vec2{X: 1.4, Y: 2.6})
	r.DrawPoint(vec.Vec2{X: -1, Y: 0})
	r.DrawPoint(vec.Vec2{X: 4, Y: 4})

	got := drawn(r, Transparent)
	if len(got) != 1 || got[image.Pt(1, 3)] != Red {
		t.Errorf("got %v", got)
	}
}

// Crossings recorded by a lone polygon-mode line are discarded by the
// next fill.
func TestPolygonModeLines(t *testing.T) {
	r := NewRasterizer(16, 16)
	r.Clear(Black)
	r.SetMode(Mode{Geometry: GeometryPolygon, Fill: SolidFill})
	r.DrawLine(V(0, 0, White), V(15, 15, White), 1)
	r.SetMode(Mode{})
	r.FillPolygon([]Vertex{V(10, 1, Red), V(14, 1, Red), V(14, 5, Red), V(10, 5, Red)})

	s := r.Surface()
	for y := 1; y <= 5; y++ {
		for x := range s.Width() {
			c := s.Pixel(x, y)
			switch {
			case x >= 10 && x <= 14:
				if c != Red {
					t.Errorf("pixel (%d, %d) = %v, want red", x, y, c)
				}
			case x == y:
				if c != White {
					t.Errorf("pixel (%d, %d) = %v, want white", x, y, c)
				}
			default:
				if c != Black {
					t.Errorf("pixel (%d, %d) = %v, want black", x, y, c)
				}
			}
		}
	}
}

func TestCTM(t *testing.T) {
	r := NewRasterizer(16, 16)
	r.Clear(Black)
	r.CTM = matrix.Matrix{2, 0, 0, 2, 3, 1}

	r.FillPolygon([]Vertex{V(0, 0, Red), V(4, 0, Red), V(4, 4, Red), V(0, 4, Red)})
	r.DrawLine(V(0, 6, White), V(4, 6, White), 1)

	s := r.Surface()
	for y := range s.Height() {
		for x := range s.Width() {
			want := Black
			switch {
			case x >= 3 && x <= 11 && y >= 1 && y <= 9:
				want = Red
			case x >= 3 && x <= 11 && y == 13:
				want = White
			}
			if got := s.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCTMCircle(t *testing.T) {
	r := NewRasterizer(64, 32)
	r.Clear(Black)
	r.CTM = matrix.Matrix{2, 0, 0, 1, 32, 16}
	r.DrawCircle(vec.Vec2{}, 10, White, false)

	got := drawn(r, Black)
	xMin, xMax := 64, -1
	for p := range got {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		if p.Y < 5 || p.Y > 27 {
			t.Errorf("pixel %v outside the ellipse", p)
		}
	}
	if xMin != 12 || xMax != 52 {
		t.Errorf("ellipse spans x=%d..%d, want 12..52", xMin, xMax)
	}
}

func TestNonFiniteGeometry(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	edgeMode := Mode{Geometry: GeometryPolygon, Fill: SolidFill}
	cases := map[string]func(r *Rasterizer){
		"line NaN": func(r *Rasterizer) {
			r.DrawLine(V(nan, 1, White), V(5, 5, White), 1)
		},
		"line Inf": func(r *Rasterizer) {
			r.DrawLine(V(1, 1, White), V(5, -inf, White), 3)
		},
		"edge": func(r *Rasterizer) {
			r.SetMode(edgeMode)
			r.DrawLine(V(1, 1, White), V(inf, 9, White), 1)
		},
		"point": func(r *Rasterizer) {
			r.DrawPoint(vec.Vec2{X: nan, Y: 3})
		},
		"point Inf": func(r *Rasterizer) {
			r.DrawPoint(vec.Vec2{X: 3, Y: inf})
		},
		"outline": func(r *Rasterizer) {
			r.DrawPolygon([]Vertex{V(1, 1, White), V(inf, 5, White), V(3, 7, White)})
		},
		"fill": func(r *Rasterizer) {
			r.FillPolygon([]Vertex{V(1, 1, White), V(12, nan, White), V(3, 12, White)})
		},
		"fill interpolated": func(r *Rasterizer) {
			r.FillPolygonInterpolated([]Vertex{V(1, 1, White), V(12, 3, White), V(-inf, 12, White)})
		},
		"circle NaN radius": func(r *Rasterizer) {
			r.DrawCircle(vec.Vec2{X: 8, Y: 8}, nan, White, true)
		},
		"circle Inf radius": func(r *Rasterizer) {
			r.DrawCircle(vec.Vec2{X: 8, Y: 8}, inf, White, false)
		},
		"circle Inf centre": func(r *Rasterizer) {
			r.DrawCircle(vec.Vec2{X: inf, Y: 8}, 3, White, true)
		},
		"CTM": func(r *Rasterizer) {
			r.CTM = matrix.Matrix{nan, 0, 0, 1, 0, 0}
			r.FillPolygon([]Vertex{V(1, 1, White), V(12, 3, White), V(3, 12, White)})
			r.DrawLine(V(1, 1, White), V(12, 3, White), 1)
		},
	}
	for name, draw := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewRasterizer(16, 16)
			r.Clear(Black)
			draw(r)
			if got := drawn(r, Black); len(got) != 0 {
				t.Errorf("%d pixels drawn", len(got))
			}
			for y := range r.crossings.Height() {
				if n := len(r.crossings.Row(y)); n != 0 {
					t.Errorf("row %d: %d crossings recorded", y, n)
				}
			}
		})
	}
}
