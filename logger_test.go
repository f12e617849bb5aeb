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
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestLoggerDefault(t *testing.T) {
	if Logger() == nil {
		t.Fatal("no default logger")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestLoggerDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	r := NewRasterizer(8, 8)
	r.FillPolygon([]Vertex{V(1, 1, White), V(6, 6, White)})
	r.DrawLine(V(-10, -10, White), V(-5, -2, White), 1)
	r.DrawLine(V(math.NaN(), 0, White), V(5, 5, White), 1)

	out := buf.String()
	for _, msg := range []string{"polygon rejected", "line clipped away", "non-finite line ignored", "pkg=tinyraster"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output misses %q:\n%s", msg, out)
		}
	}
	if !strings.Contains(out, "vertices=2") {
		t.Errorf("log output misses vertex count:\n%s", out)
	}
}

func TestSetLoggerNil(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	SetLogger(nil)

	r := NewRasterizer(8, 8)
	r.FillPolygon([]Vertex{V(1, 1, White), V(6, 6, White)})
	if buf.Len() != 0 {
		t.Errorf("output after SetLogger(nil): %q", buf.String())
	}
	if Logger().Enabled(t.Context(), slog.LevelDebug) {
		t.Error("logger still enabled after SetLogger(nil)")
	}
}
