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
	"log/slog"
	"sync/atomic"
)

var (
	logger  atomic.Pointer[slog.Logger]
	discard = slog.New(slog.DiscardHandler)
)

// SetLogger directs the diagnostics of the package to l.  Every record is
// tagged with pkg=tinyraster.  Passing nil discards all output, which is
// also the default.
//
// Only debug-level records are produced: when a polygon is rejected, when
// non-finite geometry is ignored, when a line lies outside the clip
// rectangle, or when a row ends up with an odd number of crossings.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(l.With("pkg", "tinyraster"))
}

// Logger returns the logger currently used by the package.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}
