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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single scene.
type TestCase struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Width      int         // canvas width in pixels
	Height     int         // canvas height in pixels
	Background RGBA        // zero value means opaque black
	Clip       rect.Rect   // zero value means the whole canvas
	Lines      LineStyle   // colour handling for Line operations
	Blend      bool        // alpha-composite all operations
	Ops        []Operation // drawn in order

	// CTM maps scene coordinates to pixels.  The zero value means the
	// identity.
	CTM matrix.Matrix
}

// RGBA is a straight-alpha colour with channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Vertex is a position together with a colour.
type Vertex struct {
	Pos   vec.Vec2
	Color RGBA
}

// LineStyle selects how colours vary along a line.
type LineStyle int

const (
	SolidLines LineStyle = iota
	InterpolatedLines
)

// Operation is one drawing operation of a scene.
type Operation interface {
	isOperation()
}

// Line draws a line between two vertices.
type Line struct {
	From, To  Vertex
	Thickness int // values below 1 mean 1
}

func (Line) isOperation() {}

// FillStyle selects how a polygon is painted.
type FillStyle int

const (
	Outline FillStyle = iota
	Solid
	Interpolated
)

func (s FillStyle) String() string {
	switch s {
	case Outline:
		return "outline"
	case Solid:
		return "solid"
	case Interpolated:
		return "interpolated"
	default:
		return "unknown"
	}
}

// Polygon draws a closed polygon.
type Polygon struct {
	Vertices []Vertex
	Fill     FillStyle
}

func (Polygon) isOperation() {}

// Circle draws a circle, approximated by a regular polygon.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Color  RGBA
	Filled bool
}

func (Circle) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// vtx is a helper to create a Vertex.
func vtx(x, y float64, c RGBA) Vertex {
	return Vertex{Pos: pt(x, y), Color: c}
}

var (
	white   = RGBA{1, 1, 1, 1}
	red     = RGBA{1, 0, 0, 1}
	green   = RGBA{0, 1, 0, 1}
	blue    = RGBA{0, 0, 1, 1}
	yellow  = RGBA{1, 1, 0, 1}
	cyan    = RGBA{0, 1, 1, 1}
	magenta = RGBA{1, 0, 1, 1}
)

// withAlpha returns c with its alpha channel replaced.
func withAlpha(c RGBA, a float64) RGBA {
	c.A = a
	return c
}
