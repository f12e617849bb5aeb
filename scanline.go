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
	"cmp"
	"slices"
)

// crossing records where a polygon edge meets a scanline.
type crossing struct {
	x     int
	color Color
}

// crossingTable holds, for every row of the surface, the edge crossings
// collected while the edges of one polygon are rasterized.
type crossingTable struct {
	rows [][]crossing
}

func newCrossingTable(height int) *crossingTable {
	return &crossingTable{rows: make([][]crossing, max(height, 0))}
}

// Clear empties every row and releases the memory held by the rows.
func (t *crossingTable) Clear() {
	for y := range t.rows {
		t.rows[y] = nil
	}
}

// Record appends a crossing to row y.  Rows outside the table are ignored.
func (t *crossingTable) Record(y int, c crossing) {
	if y < 0 || y >= len(t.rows) {
		return
	}
	t.rows[y] = append(t.rows[y], c)
}

// Row returns the crossings of row y in their current order.
func (t *crossingTable) Row(y int) []crossing {
	if y < 0 || y >= len(t.rows) {
		return nil
	}
	return t.rows[y]
}

// SortRow orders the crossings of row y by increasing x.  Crossings with
// equal x keep the order in which they were recorded.
func (t *crossingTable) SortRow(y int) {
	if y < 0 || y >= len(t.rows) {
		return
	}
	slices.SortStableFunc(t.rows[y], func(a, b crossing) int {
		return cmp.Compare(a.x, b.x)
	})
}

// Height returns the number of rows in the table.
func (t *crossingTable) Height() int {
	return len(t.rows)
}

// edgeRecorder enters the crossings of one polygon edge into a table.
//
// Rows are half-open per edge: only rows yMin <= y < yMax are recorded,
// where yMin and yMax are the rows of the edge's endpoints.  A vertex
// joining an upward and a downward edge is therefore counted once, and
// horizontal edges contribute nothing.  This keeps the number of crossings
// on every row even for closed polygons.
type edgeRecorder struct {
	table      *crossingTable
	yMin, yMax int
}

func newEdgeRecorder(t *crossingTable, y0, y1 int) *edgeRecorder {
	return &edgeRecorder{
		table: t,
		yMin:  min(y0, y1),
		yMax:  max(y0, y1),
	}
}

// record is called with the first pixel of every row the edge visits.
func (e *edgeRecorder) record(x, y int, c Color) {
	if y < e.yMin || y >= e.yMax {
		return
	}
	e.table.Record(y, crossing{x: x, color: c})
}
