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


// Command genpdf writes every test case as a vector PDF and renders it to
// a grayscale PNG using Ghostscript, for side-by-side comparison with the
// output of the rasterizer.
//
// Colours are reduced to their luminance.  Clip rectangles and alpha
// blending are not reproduced, and line widths are scaled by the CTM.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tinyraster/testcases"
)

const refDir = "testdata/pdf"

// circleSegments matches the number of edges the rasterizer uses for
// circles.
const circleSegments = 35

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(gray(tc.Background))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.  Pixel (x, y)
	// of the rasterizer covers the unit square with centre (x+0.5, y+0.5).
	h := float64(tc.Height)
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0.5, h - 0.5})

	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	polygonPath := func(vv []testcases.Vertex) {
		page.MoveTo(vv[0].Pos.X, vv[0].Pos.Y)
		for _, v := range vv[1:] {
			page.LineTo(v.Pos.X, v.Pos.Y)
		}
		page.ClosePath()
	}

	page.SetLineCap(graphics.LineCapSquare)
	page.SetLineJoin(graphics.LineJoinMiter)

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			page.SetStrokeColor(gray(op.From.Color))
			page.SetLineWidth(float64(max(op.Thickness, 1)))
			page.MoveTo(op.From.Pos.X, op.From.Pos.Y)
			page.LineTo(op.To.Pos.X, op.To.Pos.Y)
			page.Stroke()

		case testcases.Polygon:
			if len(op.Vertices) < 3 {
				continue
			}
			polygonPath(op.Vertices)
			c := gray(op.Vertices[0].Color)
			if op.Fill == testcases.Outline {
				page.SetStrokeColor(c)
				page.SetLineWidth(1)
				page.Stroke()
			} else {
				if op.Fill == testcases.Interpolated {
					c = meanGray(op.Vertices)
				}
				page.SetFillColor(c)
				page.FillEvenOdd()
			}

		case testcases.Circle:
			vv := make([]testcases.Vertex, circleSegments)
			for i := range vv {
				sin, cos := math.Sincos(float64(i) * 2 * math.Pi / circleSegments)
				vv[i].Pos = op.Center.Add(vec.Vec2{X: cos, Y: sin}.Mul(op.Radius))
			}
			polygonPath(vv)
			if op.Filled {
				page.SetFillColor(gray(op.Color))
				page.FillEvenOdd()
			} else {
				page.SetStrokeColor(gray(op.Color))
				page.SetLineWidth(1)
				page.Stroke()
			}
		}
	}

	return page.Close()
}

// gray returns the luminance of c, composited over black.
func gray(c testcases.RGBA) color.Color {
	y := (0.299*c.R + 0.587*c.G + 0.114*c.B) * c.A
	return color.DeviceGray(min(max(y, 0), 1))
}

func meanGray(vv []testcases.Vertex) color.Color {
	var sum testcases.RGBA
	for _, v := range vv {
		sum.R += v.Color.R
		sum.G += v.Color.G
		sum.B += v.Color.B
		sum.A += v.Color.A
	}
	n := float64(len(vv))
	return gray(testcases.RGBA{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n})
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, like the rasterizer
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
