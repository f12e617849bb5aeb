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

// Package tinyraster implements a small software rasterizer for lines,
// polygons and circles.
//
// A [Rasterizer] owns a [Surface] of floating point RGBA pixels.  Lines are
// drawn with an integer Bresenham stepper which works in a canonical
// octant and maps every generated point back to surface coordinates.
// Polygons are filled by collecting edge crossings per scanline while the
// edges are drawn, and then drawing spans between pairs of crossings
// (even-odd rule).  Circles are approximated by regular polygons.
//
// All drawing is synchronous.  A Rasterizer is not safe for concurrent use.
package tinyraster

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// GeometryMode selects whether lines are treated as free-standing lines or
// as polygon edges.
type GeometryMode int

const (
	GeometryLine GeometryMode = iota
	GeometryPolygon
)

// FillMode selects how polygon interiors (and line colours) are computed.
type FillMode int

const (
	// Unfilled draws outlines only.  Lines use the colour of their start
	// vertex.
	Unfilled FillMode = iota

	// SolidFill fills polygons.  Lines and spans use the colour of their
	// start vertex.
	SolidFill

	// InterpolatedFill fills polygons and linearly interpolates colours
	// along every line and span.
	InterpolatedFill
)

// BlendMode selects how new pixels are combined with the surface.
type BlendMode int

const (
	// NoBlend overwrites existing pixels.
	NoBlend BlendMode = iota

	// AlphaBlend composites new pixels over existing ones using the alpha
	// channel of the new colour.
	AlphaBlend
)

// Mode is the drawing configuration applied to one primitive.
type Mode struct {
	Geometry GeometryMode
	Fill     FillMode
	Blend    BlendMode
}

// recordsCrossings reports whether lines drawn in this mode contribute
// crossings to the scanline table.
func (m Mode) recordsCrossings() bool {
	return m.Geometry == GeometryPolygon && m.Fill != Unfilled
}

// Rasterizer draws lines, polygons and circles onto a [Surface].
//
// The zero value is not usable; create instances with [NewRasterizer].
type Rasterizer struct {
	// CTM maps vertex positions to device space before they are snapped
	// to pixels.  The clip rectangle is given in device space.
	CTM matrix.Matrix

	surface   *Surface
	crossings *crossingTable

	fg, bg Color
	mode   Mode
	clip   rect.Rect

	circle []Vertex // vertex buffer reused by DrawCircle
	device []Vertex // polygon vertices in device space
}

// NewRasterizer allocates a surface of the given size and returns a
// rasterizer drawing onto it.  The initial state has a black background, a
// white foreground, line geometry, no fill, no blending, the identity
// transformation and a clip rectangle covering the whole surface.
func NewRasterizer(width, height int) *Rasterizer {
	s := NewSurface(width, height)
	r := &Rasterizer{
		CTM:       matrix.Identity,
		surface:   s,
		crossings: newCrossingTable(s.Height()),
		bg:        Black,
		fg:        White,
	}
	r.SetClipRect(rect.Rect{URx: float64(s.Width()), URy: float64(s.Height())})
	return r
}

// Surface returns the surface the rasterizer draws onto.
func (r *Rasterizer) Surface() *Surface { return r.surface }

// Clear fills the whole surface with c and makes c the background colour.
// Clearing ignores the clip rectangle.
func (r *Rasterizer) Clear(c Color) {
	r.bg = c
	r.surface.Fill(c)
}

// Foreground returns the current foreground colour.
func (r *Rasterizer) Foreground() Color { return r.fg }

// SetForeground sets the colour used by [Rasterizer.DrawPoint].
func (r *Rasterizer) SetForeground(c Color) { r.fg = c }

// Background returns the current background colour.
func (r *Rasterizer) Background() Color { return r.bg }

// SetBackground sets the background colour.  It does not modify the
// surface; use [Rasterizer.Clear] for that.
func (r *Rasterizer) SetBackground(c Color) { r.bg = c }

// Mode returns the current drawing mode.
func (r *Rasterizer) Mode() Mode { return r.mode }

// SetMode replaces the whole drawing mode.
func (r *Rasterizer) SetMode(m Mode) { r.mode = m }

// SetGeometryMode sets the geometry mode.
func (r *Rasterizer) SetGeometryMode(g GeometryMode) { r.mode.Geometry = g }

// SetFillMode sets the fill mode.
func (r *Rasterizer) SetFillMode(f FillMode) { r.mode.Fill = f }

// SetBlendMode sets the blend mode.
func (r *Rasterizer) SetBlendMode(b BlendMode) { r.mode.Blend = b }

// ClipRect returns the current clip rectangle.
func (r *Rasterizer) ClipRect() rect.Rect { return r.clip }

// SetClipRect restricts drawing to the pixels (x, y) with
// clip.LLx <= x < clip.URx and clip.LLy <= y < clip.URy.
// The rectangle is used as given; an empty rectangle suppresses all
// drawing.
func (r *Rasterizer) SetClipRect(clip rect.Rect) { r.clip = clip }

// DrawPoint writes the foreground colour to the pixel nearest to p,
// compositing it if alpha blending is enabled.  Non-finite points are
// ignored.
func (r *Rasterizer) DrawPoint(p vec.Vec2) {
	p = r.transform(p)
	if !finite(p) {
		Logger().Debug("non-finite point ignored", "p", p)
		return
	}
	x, y := pixel(p)
	r.plot(x, y, r.fg, r.mode.Blend)
}

// transform applies the CTM to p.
func (r *Rasterizer) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// toDevice returns copies of the vertices with the CTM applied.  The
// result is only valid until the next call.
func (r *Rasterizer) toDevice(vertices []Vertex) []Vertex {
	r.device = r.device[:0]
	for _, v := range vertices {
		r.device = append(r.device, Vertex{Pos: r.transform(v.Pos), Color: v.Color})
	}
	return r.device
}

// plot writes one pixel, honouring the clip rectangle and the blend mode.
func (r *Rasterizer) plot(x, y int, c Color, blend BlendMode) {
	if !r.inClip(x, y) || !r.surface.In(x, y) {
		return
	}
	if blend == AlphaBlend {
		c = c.Over(r.surface.Pixel(x, y))
	}
	r.surface.SetPixel(x, y, c)
}

func (r *Rasterizer) inClip(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return r.clip.LLx <= fx && fx < r.clip.URx && r.clip.LLy <= fy && fy < r.clip.URy
}
