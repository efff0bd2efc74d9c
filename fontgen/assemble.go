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

// Package fontgen assembles minimal fonts.
//
// Given a set of required characters and a priority-ordered list of font
// files, [Assembler.Assemble] builds a font containing a glyph for every
// required character the fonts can supply, and nothing else.  Each
// character is resolved against the fonts in list order: the first font
// whose character map covers it supplies the glyph, including the full
// closure of composite components.  [Merger.Merge] unions two
// already-built fonts, preserving the primary font's glyphs on conflicts.
package fontgen

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/text/unicode/runenames"

	"github.com/KrisCris/gen-font-subset-from-text/fontfile"
)

// reservedGlyphs must survive pruning; rendering pipelines assume they
// exist.
var reservedGlyphs = map[string]bool{
	".notdef":          true,
	".null":            true,
	"nonmarkingreturn": true,
}

// An Assembler builds minimal fonts.
type Assembler struct {
	// Log optionally receives one line per resolved character and a
	// summary of the characters no font could supply.  A nil Log does
	// not change the assembly result.
	Log io.Writer
}

// Assemble builds a font covering the required characters from the given
// font files, earliest file winning when several cover the same
// character.  The first file doubles as the base font: its non-glyph
// tables (and its reserved glyphs) carry over to the result.
//
// Characters are processed in ascending code-point order, so the result
// and the log are reproducible.  Characters no font covers are returned
// in the second result, ascending; they are reported, not errors.
//
// An empty font list or a missing font file yields a
// [ConfigurationError]; an unparseable font yields a
// [fontfile.LoadError].
func (a *Assembler) Assemble(required []rune, fontPaths []string) (*fontfile.Font, []rune, error) {
	if len(fontPaths) == 0 {
		return nil, nil, &ConfigurationError{Reason: "no fonts in priority list"}
	}
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err != nil {
			return nil, nil, &ConfigurationError{Reason: fmt.Sprintf("font %q: %v", path, err)}
		}
	}

	// The base font is loaded twice: once as the mutable destination and
	// once as a read-only source, so destination mutation cannot alias
	// the lookup copy.
	dst, err := fontfile.Load(fontPaths[0])
	if err != nil {
		return nil, nil, err
	}
	a.logf("using %q as the base font", fontPaths[0])

	sources := make([]*fontfile.Source, len(fontPaths))
	for i, path := range fontPaths {
		sources[i], err = fontfile.LoadSource(path)
		if err != nil {
			return nil, nil, err
		}
	}

	unresolved := a.assemble(dst, sources, required)
	return dst, unresolved, nil
}

// assemble is the in-memory core of Assemble: it resolves the required
// characters against the given sources, copies the winning glyph graphs
// into dst, prunes, and repairs the glyph-count header.
func (a *Assembler) assemble(dst *fontfile.Font, sources []*fontfile.Source, required []rune) []rune {
	chars := dedupeSorted(required)
	copied := make(map[string]bool)
	wide := dst.WideMap()

	var unresolved []rune
	for _, r := range chars {
		resolved := false
		for _, src := range sources {
			name, ok := src.Supports(r)
			if !ok {
				continue
			}
			if _, ok := src.Glyph(name); !ok {
				// The character map claims a glyph the outline table
				// does not have.  Report it and keep scanning instead
				// of silently losing the character.
				a.logf("warning: %s maps U+%04X to missing glyph %q", src.Name(), r, name)
				continue
			}
			copyGlyph(name, src, dst, copied)
			wide.Set(r, name)
			a.logf("character %q (U+%04X, %s) using font %q -> glyph %q",
				r, r, runenames.Name(r), src.Name(), name)
			resolved = true
			break
		}
		if !resolved {
			unresolved = append(unresolved, r)
		}
	}

	if len(unresolved) > 0 {
		a.logf("warning: %d characters were not found in any font:", len(unresolved))
		for _, r := range unresolved {
			a.logf("  U+%04X %q (%s)", r, r, runenames.Name(r))
		}
	}

	prune(dst, copied)
	dst.SetGlyphCountHeader(dst.NumGlyphs())

	return unresolved
}

// prune removes every glyph that was not copied, except the reserved
// glyphs and anything they reference.  Character-map entries pointing at
// pruned glyphs are dropped along with them, so the font stays
// internally consistent.
func prune(f *fontfile.Font, copied map[string]bool) {
	keep := make(map[string]bool, len(copied)+len(reservedGlyphs))
	var todo []string
	for name := range copied {
		keep[name] = true
	}
	for name := range reservedGlyphs {
		if f.HasGlyph(name) && !keep[name] {
			keep[name] = true
			todo = append(todo, name)
		}
	}
	// reserved glyphs keep their components too
	for len(todo) > 0 {
		name := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		g, ok := f.Glyph(name)
		if !ok {
			continue
		}
		for _, comp := range g.Components {
			if !keep[comp] {
				keep[comp] = true
				todo = append(todo, comp)
			}
		}
	}

	for _, name := range f.GlyphNames() {
		if !keep[name] {
			f.RemoveGlyph(name)
		}
	}
	for _, c := range f.Subtables() {
		for _, r := range c.Runes() {
			if name, ok := c.Lookup(r); ok && !f.HasGlyph(name) {
				c.Delete(r)
			}
		}
	}
}

func dedupeSorted(rr []rune) []rune {
	seen := make(map[rune]bool, len(rr))
	res := make([]rune, 0, len(rr))
	for _, r := range rr {
		if !seen[r] {
			seen[r] = true
			res = append(res, r)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (a *Assembler) logf(format string, args ...interface{}) {
	if a.Log == nil {
		return
	}
	fmt.Fprintf(a.Log, format+"\n", args...)
}
