// Command export renders all test cases to PNG files and writes the test
// case definitions to JSON.  Run from the tinyraster module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tinyraster"
	"seehuhn.de/go/tinyraster/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/export", "output directory")
	scale := flag.Int("scale", 4, "integer magnification of the exported images")
	writeBMP := flag.Bool("bmp", false, "also write BMP files")
	flag.Parse()

	if err := run(*outDir, max(*scale, 1), *writeBMP); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(outDir string, scale int, writeBMP bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			out.TestCases = append(out.TestCases, toJSON(name, tc))

			img := upscale(tinyraster.Render(tc).NRGBA(), scale)
			if err := writeImage(filepath.Join(outDir, name+".png"), img, png.Encode); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if writeBMP {
				if err := writeImage(filepath.Join(outDir, name+".bmp"), img, bmp.Encode); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// upscale magnifies img by an integer factor, keeping pixels sharp.
func upscale(img image.Image, scale int) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writeImage(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonTestCase struct {
	Name       string          `json:"name"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Background []float64       `json:"background,omitempty"`
	Clip       []float64       `json:"clip,omitempty"`
	Lines      string          `json:"lines"`
	Blend      bool            `json:"blend,omitempty"`
	CTM        []float64       `json:"ctm,omitempty"`
	Ops        []jsonOperation `json:"ops"`
}

type jsonOperation struct {
	Op        string       `json:"op"`
	Vertices  []jsonVertex `json:"vertices,omitempty"`
	Thickness int          `json:"thickness,omitempty"`
	Fill      string       `json:"fill,omitempty"`
	Center    []float64    `json:"center,omitempty"`
	Radius    float64      `json:"radius,omitempty"`
	Color     []float64    `json:"color,omitempty"`
	Filled    bool         `json:"filled,omitempty"`
}

type jsonVertex struct {
	Pos   []float64 `json:"pos"`
	Color []float64 `json:"color"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
		Lines:  "solid",
		Blend:  tc.Blend,
	}
	if tc.Background != (testcases.RGBA{}) {
		jtc.Background = rgbaToJSON(tc.Background)
	}
	if c := tc.Clip; c != (rect.Rect{}) {
		jtc.Clip = []float64{c.LLx, c.LLy, c.URx, c.URy}
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	if tc.Lines == testcases.InterpolatedLines {
		jtc.Lines = "interpolated"
	}

	for _, op := range tc.Ops {
		var jop jsonOperation
		switch op := op.(type) {
		case testcases.Line:
			jop.Op = "line"
			jop.Vertices = []jsonVertex{vertexToJSON(op.From), vertexToJSON(op.To)}
			jop.Thickness = op.Thickness
		case testcases.Polygon:
			jop.Op = "polygon"
			for _, v := range op.Vertices {
				jop.Vertices = append(jop.Vertices, vertexToJSON(v))
			}
			jop.Fill = op.Fill.String()
		case testcases.Circle:
			jop.Op = "circle"
			jop.Center = []float64{op.Center.X, op.Center.Y}
			jop.Radius = op.Radius
			jop.Color = rgbaToJSON(op.Color)
			jop.Filled = op.Filled
		}
		jtc.Ops = append(jtc.Ops, jop)
	}
	return jtc
}

func vertexToJSON(v testcases.Vertex) jsonVertex {
	return jsonVertex{
		Pos:   []float64{v.Pos.X, v.Pos.Y},
		Color: rgbaToJSON(v.Color),
	}
}

func rgbaToJSON(c testcases.RGBA) []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}
