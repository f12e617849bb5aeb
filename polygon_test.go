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
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"golang.org/x/image/vector"
)

func TestFillSquare(t *testing.T) {
	r := NewRasterizer(12, 12)
	r.Clear(Black)
	r.FillPolygon([]Vertex{V(2, 2, Red), V(8, 2, Red), V(8, 8, Red), V(2, 8, Red)})

	s := r.Surface()
	for y := range s.Height() {
		for x := range s.Width() {
			inside := x >= 2 && x <= 8 && y >= 2 && y <= 8
			want := Black
			if inside {
				want = Red
			}
			if got := s.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestConvexCrossingParity(t *testing.T) {
	polygons := map[string][]Vertex{
		"triangle": {V(4, 4, White), V(40, 10, White), V(12, 36, White)},
		"diamond":  {V(20, 2, White), V(38, 20, White), V(20, 38, White), V(2, 20, White)},
		"hexagon":  {V(10, 3, White), V(30, 3, White), V(38, 20, White), V(30, 37, White), V(10, 37, White), V(2, 20, White)},
		"sliver":   {V(1, 1, White), V(39, 5, White), V(2, 3, White)},
	}
	for name, vv := range polygons {
		t.Run(name, func(t *testing.T) {
			r := NewRasterizer(40, 40)
			r.crossings.Clear()
			r.drawEdges(vv, Mode{Geometry: GeometryPolygon, Fill: SolidFill})

			yMin, yMax := 1000, -1000
			for _, v := range vv {
				_, y := pixel(v.Pos)
				yMin = min(yMin, y)
				yMax = max(yMax, y)
			}
			for y := range r.crossings.Height() {
				n := len(r.crossings.Row(y))
				want := 0
				if y >= yMin && y < yMax {
					want = 2
				}
				if n != want {
					t.Errorf("row %d: %d crossings, want %d", y, n, want)
				}
			}
		})
	}
}

func TestSimplePolygonEvenCrossings(t *testing.T) {
	arrow := []Vertex{
		V(4, 12, White), V(18, 12, White), V(18, 4, White), V(30, 16, White),
		V(18, 28, White), V(18, 20, White), V(4, 20, White),
	}
	comb := []Vertex{
		V(2, 30, White), V(2, 2, White), V(8, 20, White), V(14, 3, White),
		V(20, 22, White), V(26, 2, White), V(30, 30, White),
	}
	for name, vv := range map[string][]Vertex{"arrow": arrow, "comb": comb} {
		r := NewRasterizer(32, 32)
		r.crossings.Clear()
		r.drawEdges(vv, Mode{Geometry: GeometryPolygon, Fill: SolidFill})
		for y := range r.crossings.Height() {
			if n := len(r.crossings.Row(y)); n%2 != 0 {
				t.Errorf("%s: row %d has %d crossings", name, y, n)
			}
		}
	}
}

func TestFillDegenerate(t *testing.T) {
	r := NewRasterizer(16, 16)
	r.Clear(Black)
	r.FillPolygon(nil)
	r.FillPolygon([]Vertex{V(1, 1, White)})
	r.FillPolygonInterpolated([]Vertex{V(1, 1, White), V(10, 10, White)})
	r.DrawPolygon([]Vertex{V(1, 1, White), V(10, 10, White)})
	if got := drawn(r, Black); len(got) != 0 {
		t.Errorf("degenerate polygons drew %d pixels", len(got))
	}

	// collinear vertices draw the boundary only
	r.FillPolygon([]Vertex{V(1, 1, White), V(5, 5, White), V(9, 9, White)})
	for p := range drawn(r, Black) {
		if p.X != p.Y {
			t.Errorf("collinear polygon drew off-line pixel %v", p)
		}
	}
}

func TestFillKeepsMode(t *testing.T) {
	r := NewRasterizer(16, 16)
	r.SetBlendMode(AlphaBlend)
	r.FillPolygon([]Vertex{V(1, 1, White), V(10, 1, White), V(5, 10, White)})
	r.FillPolygonInterpolated([]Vertex{V(1, 1, White), V(10, 1, White), V(5, 10, White)})
	want := Mode{Blend: AlphaBlend}
	if got := r.Mode(); got != want {
		t.Errorf("mode changed to %v", got)
	}
}

func TestDrawPolygonOutline(t *testing.T) {
	r := NewRasterizer(12, 12)
	r.Clear(Black)
	r.DrawPolygon([]Vertex{V(2, 2, Red), V(8, 2, Red), V(8, 8, Red), V(2, 8, Red)})

	s := r.Surface()
	for y := range s.Height() {
		for x := range s.Width() {
			onEdge := (x == 2 || x == 8) && y >= 2 && y <= 8 ||
				(y == 2 || y == 8) && x >= 2 && x <= 8
			want := Black
			if onEdge {
				want = Red
			}
			if got := s.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestInterpolatedFill(t *testing.T) {
	r := NewRasterizer(64, 64)
	r.Clear(Black)
	r.FillPolygonInterpolated([]Vertex{V(32, 4, Red), V(60, 58, Green), V(4, 58, Blue)})

	s := r.Surface()
	corners := []struct {
		x, y int
		want Color
	}{
		{32, 4, Red},
		{60, 58, Green},
		{4, 58, Blue},
	}
	for _, c := range corners {
		if got := s.Pixel(c.x, c.y); got != c.want {
			t.Errorf("vertex (%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	centre := s.Pixel(32, 40)
	if centre.R <= 0 || centre.G <= 0 || centre.B <= 0 {
		t.Errorf("centre pixel %v is not a mixture of all vertex colours", centre)
	}
	for p, c := range drawn(r, Black) {
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < -1e-12 || ch > 1+1e-12 {
				t.Errorf("pixel %v = %v out of range", p, c)
			}
		}
		if c.A < 1-1e-12 || c.A > 1+1e-12 {
			t.Errorf("pixel %v has alpha %g", p, c.A)
		}
	}
}

func TestSolidFillBlend(t *testing.T) {
	r := NewRasterizer(32, 32)
	r.Clear(Black)
	r.SetBlendMode(AlphaBlend)
	half := Color{1, 0, 0, 0.5}
	r.FillPolygon([]Vertex{V(4, 4, half), V(28, 4, half), V(28, 28, half), V(4, 28, half)})

	want := Color{0.5, 0, 0, 0.75}
	if got := r.Surface().Pixel(16, 16); !closeColor(got, want, 1e-12) {
		t.Errorf("interior pixel = %v, want %v", got, want)
	}
	if got := r.Surface().Pixel(1, 1); got != Black {
		t.Errorf("exterior pixel = %v, want black", got)
	}
}

// TestFillAgainstVector checks that every pixel whose centre is well inside
// a convex polygon, as measured by golang.org/x/image/vector, is filled.
func TestFillAgainstVector(t *testing.T) {
	polygons := map[string][][2]float64{
		"triangle": {{4, 4}, {40, 10}, {12, 36}},
		"hexagon":  {{12, 3}, {34, 6}, {44, 24}, {30, 44}, {9, 40}, {3, 20}},
		"thin":     {{2, 40}, {45, 2}, {46, 8}},
	}
	const size = 48
	for name, poly := range polygons {
		t.Run(name, func(t *testing.T) {
			r := NewRasterizer(size, size)
			r.Clear(Black)
			vv := make([]Vertex, len(poly))
			for i, p := range poly {
				vv[i] = V(p[0], p[1], White)
			}
			r.FillPolygon(vv)

			// pixel (x, y) of the rasterizer has its centre at
			// (x+0.5, y+0.5) in vector's coordinate system
			vr := vector.NewRasterizer(size, size)
			vr.MoveTo(float32(poly[0][0]+0.5), float32(poly[0][1]+0.5))
			for _, p := range poly[1:] {
				vr.LineTo(float32(p[0]+0.5), float32(p[1]+0.5))
			}
			vr.ClosePath()
			cov := image.NewAlpha(image.Rect(0, 0, size, size))
			vr.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

			s := r.Surface()
			count := 0
			for y := range size {
				for x := range size {
					if cov.AlphaAt(x, y).A < 192 {
						continue
					}
					count++
					if s.Pixel(x, y) != White {
						t.Errorf("pixel (%d, %d) with coverage %d not filled",
							x, y, cov.AlphaAt(x, y).A)
					}
				}
			}
			if count == 0 {
				t.Fatal("reference rasterizer covered no pixels")
			}
		})
	}
}

func TestClippedFillMatchesFullFill(t *testing.T) {
	const size, off = 32, 300
	small, big := offsetPair(size, off)

	polygons := [][]Vertex{
		{V(-200, 3, Red), V(40, 12, Green), V(10, 60, Blue)},
		{V(5, -50, Red), V(25, 40, Green), V(-30, 20, Blue)},
	}
	rng := rand.New(rand.NewPCG(7, 8))
	for range 40 {
		var vv []Vertex
		for _, c := range []Color{Red, Green, Blue, White} {
			vv = append(vv, V(float64(rng.IntN(500)-250), float64(rng.IntN(500)-250), c))
		}
		polygons = append(polygons, vv)
	}

	for i, vv := range polygons {
		small.Clear(Black)
		big.Clear(Black)
		small.FillPolygon(vv)
		big.FillPolygon(vv)
		compareWindow(t, fmt.Sprintf("solid %d", i), small, big, off)

		small.Clear(Black)
		big.Clear(Black)
		small.FillPolygonInterpolated(vv)
		big.FillPolygonInterpolated(vv)
		compareWindow(t, fmt.Sprintf("interpolated %d", i), small, big, off)
	}
}

func TestFillFarVertex(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	r := NewRasterizer(32, 32)
	r.Clear(Black)
	r.FillPolygon([]Vertex{V(1, 1, Red), V(2e15, 10, Red), V(5, 20, Red)})

	if strings.Contains(buf.String(), "odd number of crossings") {
		t.Errorf("unpaired crossings:\n%s", buf.String())
	}
	s := r.Surface()
	for _, y := range []int{5, 10, 19} {
		if s.Pixel(0, y) != Black {
			t.Errorf("pixel (0, %d) filled", y)
		}
		for x := 6; x < 32; x++ {
			if s.Pixel(x, y) != Red {
				t.Errorf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
	for x := range 32 {
		if s.Pixel(x, 0) != Black || s.Pixel(x, 25) != Black {
			t.Errorf("column %d filled outside the polygon's rows", x)
		}
	}
}
