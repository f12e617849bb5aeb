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


// Command rasterview renders a built-in or user supplied scene and shows it
// in the terminal.  Every character cell displays two pixels, using the
// upper half block with the foreground colour for the top pixel and the
// background colour for the bottom pixel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"seehuhn.de/go/tinyraster"
	"seehuhn.de/go/tinyraster/testcases"
)

func main() {
	scene := flag.String("scene", "", "scene to render: category_name for built-in scenes, the scene name with -file")
	file := flag.String("file", "", "read scenes from a TOML or YAML file")
	list := flag.Bool("list", false, "list the available scenes and exit")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		tinyraster.SetLogger(slog.New(h))
	}

	if err := run(*file, *scene, *list); err != nil {
		fmt.Fprintln(os.Stderr, "rasterview:", err)
		os.Exit(1)
	}
}

func run(file, scene string, list bool) error {
	scenes := make(map[string]testcases.TestCase)
	var names []string
	if file != "" {
		cases, err := testcases.Open(file)
		if err != nil {
			return err
		}
		for _, tc := range cases {
			scenes[tc.Name] = tc
			names = append(names, tc.Name)
		}
	} else {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				name := category + "_" + tc.Name
				scenes[name] = tc
				names = append(names, name)
			}
		}
	}

	if list {
		for _, name := range names {
			tc := scenes[name]
			fmt.Printf("%s\t%dx%d\n", name, tc.Width, tc.Height)
		}
		return nil
	}

	if len(names) == 0 {
		return errors.New("no scenes")
	}
	if scene == "" {
		scene = names[0]
		if file == "" {
			scene = "fill_interpolated"
		}
	}
	tc, ok := scenes[scene]
	if !ok {
		return fmt.Errorf("unknown scene %q (use -list)", scene)
	}

	tinyraster.Logger().Debug("rendering", "scene", scene, "width", tc.Width, "height", tc.Height)
	fmt.Print(view(tinyraster.Render(tc)))
	return nil
}

// view converts the surface into lines of styled half-block characters.
func view(s *tinyraster.Surface) string {
	styles := make(map[[2]string]lipgloss.Style)

	var b strings.Builder
	for y := 0; y < s.Height(); y += 2 {
		for x := range s.Width() {
			key := [2]string{hex(s.Pixel(x, y)), hex(s.Pixel(x, y+1))}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key[0])).
					Background(lipgloss.Color(key[1]))
				styles[key] = st
			}
			b.WriteString(st.Render("▀"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// hex formats a pixel, composited over black, as an RGB hex string.
// Pixels outside the surface are black.
func hex(c tinyraster.Color) string {
	c = c.Over(tinyraster.Black)
	nc := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}
