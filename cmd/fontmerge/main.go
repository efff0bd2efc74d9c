// gen-font-subset-from-text - build minimal fonts covering a known character set
// Copyright (C) 2026  The gen-font-subset-from-text Authors
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

// Fontmerge unions font files.  Characters present in an earlier font
// keep that font's glyphs; later fonts only contribute characters the
// running result does not cover yet.
//
// Usage:
//
//	fontmerge -o merged.ttf primary.ttf second.ttf [more.ttf ...]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KrisCris/gen-font-subset-from-text/fontfile"
	"github.com/KrisCris/gen-font-subset-from-text/fontgen"
)

func main() {
	out := flag.String("o", "merged.ttf", "output font file")
	quiet := flag.Bool("q", false, "suppress per-character progress output")
	flag.Parse()

	if len(flag.Args()) < 2 {
		fmt.Fprintln(os.Stderr, "error: need at least two fonts to merge")
		flag.Usage()
		os.Exit(1)
	}

	merger := &fontgen.Merger{}
	if !*quiet {
		merger.Log = os.Stderr
	}

	result, err := fontfile.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	for _, path := range flag.Args()[1:] {
		secondary, err := fontfile.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		result = merger.Merge(result, secondary)
	}

	if err := result.Save(*out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "merged font saved to %q (%d glyphs)\n", *out, result.NumGlyphs())
}
