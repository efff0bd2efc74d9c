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

// Package fonttest provides font fixtures for unit tests, derived from
// the embedded Go Regular font.
package fonttest

import (
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/KrisCris/gen-font-subset-from-text/fontfile"
)

// New parses a fresh copy of Go Regular.
func New(t *testing.T) *fontfile.Font {
	t.Helper()
	f, err := fontfile.Read(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// Restrict deletes every character-map entry of f outside keep, leaving
// the glyph container untouched.  The result acts like a font that only
// covers the given characters.
func Restrict(f *fontfile.Font, keep ...rune) {
	keepSet := make(map[rune]bool, len(keep))
	for _, r := range keep {
		keepSet[r] = true
	}
	for _, c := range f.Subtables() {
		for _, r := range c.Runes() {
			if !keepSet[r] {
				c.Delete(r)
			}
		}
	}
}

// Write saves f into the test's temporary directory and returns the file
// path.
func Write(t *testing.T, f *fontfile.Font) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

// AddComposite attaches a composite glyph built from the glyphs for 'A'
// and 'B' to f, maps it from a private-use character and returns both.
// Go Regular contains no composite glyphs of its own, so closure tests
// synthesize one.
func AddComposite(t *testing.T, f *fontfile.Font) (rune, *fontfile.Glyph) {
	t.Helper()
	best := f.BestMap()
	if best == nil {
		t.Fatal("font has no character map")
	}
	var components []string
	for _, r := range []rune{'A', 'B'} {
		name, ok := best.Lookup(r)
		if !ok {
			t.Fatalf("no mapping for %q", r)
		}
		components = append(components, name)
	}

	const name = "A_B"
	g := fontfile.NewCompositeGlyph(name, components)
	f.SetGlyph(g)
	f.SetMetrics(name, fontfile.DefaultMetrics)
	f.SetGlyphCountHeader(f.NumGlyphs())

	const r = ''
	best.Set(r, name)
	return r, g
}
