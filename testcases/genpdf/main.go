// seehuhn.de/go/donut - ring-shaped progress indicators
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

// Command genpdf renders all test cases to PNG and PDF files, for visual
// inspection.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/donut/render"
	"seehuhn.de/go/donut/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/rendered", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("cannot create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	failed := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(*outDir, name)); err != nil {
				slog.Error("rendering failed", "case", name, "error", err)
				failed++
				continue
			}
			slog.Info("rendered", "case", name)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// generate writes base.png and base.pdf for one test case.
func generate(tc testcases.TestCase, base string) error {
	sc := tc.Scene
	segs, err := sc.Build()
	if err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = render.PNG(f, &sc, segs)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%s.png: %w", base, err)
	}

	if err := render.PDF(base+".pdf", &sc, segs); err != nil {
		return fmt.Errorf("%s.pdf: %w", base, err)
	}
	return nil
}
