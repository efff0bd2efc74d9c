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

// Fontgen builds a minimal TTF containing glyphs for every character
// found in a set of XML/HTML documents, using multiple fonts in fallback
// order.  Optionally it renders a glyph sheet PNG of the result.
//
// Usage:
//
//	fontgen [options] -o out.ttf font1.ttf [font2.ttf ...]
//
// The fonts are searched in the order given; the first font doubles as
// the base font of the output.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/KrisCris/gen-font-subset-from-text/charset"
	"github.com/KrisCris/gen-font-subset-from-text/fontgen"
	"github.com/KrisCris/gen-font-subset-from-text/glyphsheet"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return fmt.Sprint(*l)
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var xmlDirs, xmlFiles stringList
	flag.Var(&xmlDirs, "xml-dir", "directory scanned recursively for .xml/.html files (repeatable)")
	flag.Var(&xmlFiles, "xml-file", "single document file to scan (repeatable)")
	commonChars := flag.String("common-chars-file", "", "text file with additional characters to include")
	out := flag.String("o", "minimal.ttf", "output font file")
	logFile := flag.String("log-file", "", "write a per-character resolution log to this file")
	sheet := flag.String("glyph-sheet", "", "also render a glyph sheet PNG of the result")
	sheetSize := flag.Int("glyph-size", 64, "point size for glyph sheet rendering")
	sheetCols := flag.Int("glyph-cols", 16, "columns per row in the glyph sheet")
	flag.Parse()

	if len(flag.Args()) < 1 {
		fmt.Fprintln(os.Stderr, "error: no fonts given")
		flag.Usage()
		os.Exit(1)
	}

	required := charset.FromInputs(xmlDirs, xmlFiles, os.Stderr)
	fmt.Fprintf(os.Stderr, "collected %d unique characters from document inputs\n", required.Len())

	if *commonChars != "" {
		common, err := charset.FromTextFile(*commonChars)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		before := required.Len()
		required.Union(common)
		fmt.Fprintf(os.Stderr, "added %d chars from %s; total now %d (was %d)\n",
			common.Len(), *commonChars, required.Len(), before)
	}

	if required.Len() == 0 {
		fmt.Fprintln(os.Stderr, "error: no characters to include")
		os.Exit(1)
	}

	var logSink io.Writer = os.Stderr
	if *logFile != "" {
		fd, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		defer fd.Close()
		logSink = io.MultiWriter(os.Stderr, fd)
	}

	assembler := &fontgen.Assembler{Log: logSink}
	font, unresolved, err := assembler.Assemble(required.Runes(), flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := font.Save(*out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "saved minimal font to %q (%d glyphs, %d characters unresolved)\n",
		*out, font.NumGlyphs(), len(unresolved))

	if *sheet != "" {
		opt := &glyphsheet.Options{Size: float64(*sheetSize), Columns: *sheetCols}
		if err := glyphsheet.RenderFile(*out, *sheet, required.Runes(), opt); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "saved glyph sheet to %q\n", *sheet)
	}
}
