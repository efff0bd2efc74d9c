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

package fontfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestReadGoRegular(t *testing.T) {
	f, err := Read(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	if !f.HasGlyph(".notdef") {
		t.Error("no .notdef glyph")
	}
	if f.GlyphCountHeader() != f.NumGlyphs() {
		t.Errorf("glyph-count header %d != %d glyphs",
			f.GlyphCountHeader(), f.NumGlyphs())
	}

	names := f.GlyphNames()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			t.Fatal("empty glyph name")
		}
		if seen[name] {
			t.Fatalf("duplicate glyph name %q", name)
		}
		seen[name] = true
	}

	best := f.BestMap()
	if best == nil {
		t.Fatal("no character map")
	}
	name, ok := best.Lookup('A')
	if !ok {
		t.Fatal("Go Regular does not map 'A'")
	}
	if !f.HasGlyph(name) {
		t.Fatalf("mapped glyph %q not in outline table", name)
	}
	if m, ok := f.Metrics(name); !ok || m.AdvanceWidth <= 0 {
		t.Errorf("bad metrics for %q: %v, %t", name, m, ok)
	}
}

func TestReadComponentsResolved(t *testing.T) {
	f, err := Read(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	// every composite's components must resolve to present glyphs
	for _, name := range f.GlyphNames() {
		g, _ := f.Glyph(name)
		for _, comp := range g.Components {
			if !f.HasGlyph(comp) {
				t.Fatalf("glyph %q references missing component %q", name, comp)
			}
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ttf"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("this is not a font"), 0o666); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Path != path {
		t.Errorf("LoadError has wrong path %q", loadErr.Path)
	}
}
