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

package testcases

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Decoder is implemented by the TOML and YAML decoders.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// TOML and YAML decode scene files in the respective format.
var (
	TOML DecoderFunc = func(r io.Reader) Decoder { return toml.NewDecoder(r).DisallowUnknownFields() }
	YAML DecoderFunc = func(r io.Reader) Decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	}
)

// ErrFormat is returned by [Open] for files with an unknown extension.
var ErrFormat = errors.New("unknown scene file format")

// Open reads the scenes from the given file.  The format is selected by
// the file name extension: ".toml", ".yaml" or ".yml".
func Open(filename string) ([]TestCase, error) {
	var f DecoderFunc
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		f = TOML
	case ".yaml", ".yml":
		f = YAML
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrFormat)
	}

	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	cases, err := Read(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cases, nil
}

// Read decodes scenes from r using the decoder created by f.
//
// A file holds a list of scenes under the key "scene"; every scene holds
// its operations under the key "op".  Vertices are written as [x, y],
// [x, y, r, g, b] or [x, y, r, g, b, a], and colours as [r, g, b] or
// [r, g, b, a].  Vertices without a colour are white.
func Read(r io.Reader, f DecoderFunc) ([]TestCase, error) {
	var file sceneFile
	if err := f(r).Decode(&file); err != nil {
		return nil, err
	}

	cases := make([]TestCase, 0, len(file.Scenes))
	for i, s := range file.Scenes {
		tc, err := s.testCase()
		if err != nil {
			return nil, fmt.Errorf("scene %d (%q): %w", i, s.Name, err)
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

type sceneFile struct {
	Scenes []fileScene `toml:"scene" yaml:"scene"`
}

type fileScene struct {
	Name       string    `toml:"name" yaml:"name"`
	Width      int       `toml:"width" yaml:"width"`
	Height     int       `toml:"height" yaml:"height"`
	Background []float64 `toml:"background" yaml:"background"`
	Clip       []float64 `toml:"clip" yaml:"clip"`
	Lines      string    `toml:"lines" yaml:"lines"`
	Blend      bool      `toml:"blend" yaml:"blend"`
	CTM        []float64 `toml:"ctm" yaml:"ctm"`
	Ops        []fileOp  `toml:"op" yaml:"op"`
}

type fileOp struct {
	Type      string      `toml:"type" yaml:"type"`
	Vertices  [][]float64 `toml:"vertices" yaml:"vertices"`
	Thickness int         `toml:"thickness" yaml:"thickness"`
	Fill      string      `toml:"fill" yaml:"fill"`
	Center    []float64   `toml:"center" yaml:"center"`
	Radius    float64     `toml:"radius" yaml:"radius"`
	Color     []float64   `toml:"color" yaml:"color"`
	Filled    bool        `toml:"filled" yaml:"filled"`
}

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func (s *fileScene) testCase() (TestCase, error) {
	tc := TestCase{
		Name:   s.Name,
		Width:  s.Width,
		Height: s.Height,
		Blend:  s.Blend,
	}
	if !validName.MatchString(s.Name) {
		return tc, errors.New("name must consist of a-z, 0-9 and _")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return tc, fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}

	if s.Background != nil {
		c, err := parseColor(s.Background)
		if err != nil {
			return tc, fmt.Errorf("background: %w", err)
		}
		tc.Background = c
	}

	if err := checkFinite(s.Clip); err != nil {
		return tc, fmt.Errorf("clip: %w", err)
	}
	if err := checkFinite(s.CTM); err != nil {
		return tc, fmt.Errorf("ctm: %w", err)
	}

	switch len(s.Clip) {
	case 0:
	case 4:
		tc.Clip = rect.Rect{LLx: s.Clip[0], LLy: s.Clip[1], URx: s.Clip[2], URy: s.Clip[3]}
	default:
		return tc, fmt.Errorf("clip: need 4 numbers, got %d", len(s.Clip))
	}

	switch len(s.CTM) {
	case 0:
	case 6:
		tc.CTM = matrix.Matrix(s.CTM)
	default:
		return tc, fmt.Errorf("ctm: need 6 numbers, got %d", len(s.CTM))
	}

	switch s.Lines {
	case "", "solid":
		tc.Lines = SolidLines
	case "interpolated":
		tc.Lines = InterpolatedLines
	default:
		return tc, fmt.Errorf("unknown line style %q", s.Lines)
	}

	for i, op := range s.Ops {
		o, err := op.operation()
		if err != nil {
			return tc, fmt.Errorf("op %d: %w", i, err)
		}
		tc.Ops = append(tc.Ops, o)
	}
	return tc, nil
}

func (op *fileOp) operation() (Operation, error) {
	vv := make([]Vertex, len(op.Vertices))
	for i, v := range op.Vertices {
		var err error
		vv[i], err = parseVertex(v)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
	}

	switch op.Type {
	case "line":
		if len(vv) != 2 {
			return nil, fmt.Errorf("line needs 2 vertices, got %d", len(vv))
		}
		return Line{From: vv[0], To: vv[1], Thickness: op.Thickness}, nil

	case "polygon":
		var fill FillStyle
		switch op.Fill {
		case "", "outline":
			fill = Outline
		case "solid":
			fill = Solid
		case "interpolated":
			fill = Interpolated
		default:
			return nil, fmt.Errorf("unknown fill style %q", op.Fill)
		}
		return Polygon{Vertices: vv, Fill: fill}, nil

	case "circle":
		if len(op.Center) != 2 {
			return nil, fmt.Errorf("center: need 2 numbers, got %d", len(op.Center))
		}
		if err := checkFinite(op.Center); err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		if err := checkFinite([]float64{op.Radius}); err != nil {
			return nil, fmt.Errorf("radius: %w", err)
		}
		c := white
		if op.Color != nil {
			var err error
			c, err = parseColor(op.Color)
			if err != nil {
				return nil, fmt.Errorf("color: %w", err)
			}
		}
		return Circle{
			Center: pt(op.Center[0], op.Center[1]),
			Radius: op.Radius,
			Color:  c,
			Filled: op.Filled,
		}, nil

	default:
		return nil, fmt.Errorf("unknown operation %q", op.Type)
	}
}

func parseVertex(v []float64) (Vertex, error) {
	if err := checkFinite(v); err != nil {
		return Vertex{}, err
	}
	switch len(v) {
	case 2:
		return vtx(v[0], v[1], white), nil
	case 5, 6:
		c, err := parseColor(v[2:])
		if err != nil {
			return Vertex{}, err
		}
		return vtx(v[0], v[1], c), nil
	default:
		return Vertex{}, fmt.Errorf("need 2, 5 or 6 numbers, got %d", len(v))
	}
}

func parseColor(c []float64) (RGBA, error) {
	if err := checkFinite(c); err != nil {
		return RGBA{}, err
	}
	switch len(c) {
	case 3:
		return RGBA{c[0], c[1], c[2], 1}, nil
	case 4:
		return RGBA{c[0], c[1], c[2], c[3]}, nil
	default:
		return RGBA{}, fmt.Errorf("colour needs 3 or 4 numbers, got %d", len(c))
	}
}

// errNonFinite is returned for infinite or NaN numbers in a scene file.
var errNonFinite = errors.New("non-finite number")

func checkFinite(xx []float64) error {
	for _, x := range xx {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errNonFinite
		}
	}
	return nil
}
