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

// Command export writes all test cases as scene files, in the format read
// by cmd/donut.
package main

import (
	"flag"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/donut/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/scenes", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("cannot create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			fname := filepath.Join(*outDir, category+"_"+tc.Name+".yaml")
			if err := write(fname, tc); err != nil {
				slog.Error("export failed", "file", fname, "error", err)
				os.Exit(1)
			}
		}
	}
}

func write(fname string, tc testcases.TestCase) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := tc.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
