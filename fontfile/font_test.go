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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestFont() *Font {
	return &Font{
		glyphs:  make(map[string]*Glyph),
		metrics: make(map[string]Metrics),
	}
}

func TestGlyphContainer(t *testing.T) {
	f := newTestFont()

	f.SetGlyph(&Glyph{Name: ".notdef"})
	f.SetGlyph(&Glyph{Name: "A"})
	f.SetGlyph(&Glyph{Name: "B"})
	f.SetMetrics("A", Metrics{AdvanceWidth: 600, LeftSideBearing: 10})

	if !f.HasGlyph("A") {
		t.Error("glyph A missing after SetGlyph")
	}
	if f.NumGlyphs() != 3 {
		t.Errorf("expected 3 glyphs, got %d", f.NumGlyphs())
	}

	// replacing a glyph keeps its position
	f.SetGlyph(&Glyph{Name: "A", Components: []string{"B"}})
	want := []string{".notdef", "A", "B"}
	if d := cmp.Diff(want, f.GlyphNames()); d != "" {
		t.Errorf("glyph order changed on replace (-want +got):\n%s", d)
	}
	g, _ := f.Glyph("A")
	if !g.IsComposite() {
		t.Error("replaced glyph lost its components")
	}

	f.RemoveGlyph("A")
	if f.HasGlyph("A") {
		t.Error("glyph A still present after RemoveGlyph")
	}
	if _, ok := f.Metrics("A"); ok {
		t.Error("metrics entry survived RemoveGlyph")
	}
	if d := cmp.Diff([]string{".notdef", "B"}, f.GlyphNames()); d != "" {
		t.Errorf("unexpected glyph order (-want +got):\n%s", d)
	}

	// removing a glyph twice is harmless
	f.RemoveGlyph("A")
	if f.NumGlyphs() != 2 {
		t.Errorf("expected 2 glyphs, got %d", f.NumGlyphs())
	}
}

func TestGlyphClone(t *testing.T) {
	g := &Glyph{Name: "Aacute", Components: []string{"A", "acute"}}
	g2 := g.Clone()
	g2.Components[0] = "changed"
	if g.Components[0] != "A" {
		t.Error("Clone shares the component slice")
	}
}

func TestWideMap(t *testing.T) {
	f := newTestFont()

	w1 := f.WideMap()
	if w1.PlatformID != 3 || w1.EncodingID != 10 || w1.Format != 12 {
		t.Errorf("wide map has wrong identity: platform %d, encoding %d, format %d",
			w1.PlatformID, w1.EncodingID, w1.Format)
	}

	w1.Set(0x1F600, "emoji")

	// repeated calls return the same subtable, never a duplicate
	w2 := f.WideMap()
	if w1 != w2 {
		t.Error("WideMap created a second subtable")
	}
	if len(f.Subtables()) != 1 {
		t.Errorf("expected 1 subtable, got %d", len(f.Subtables()))
	}
	if name, ok := w2.Lookup(0x1F600); !ok || name != "emoji" {
		t.Errorf("supplementary-plane entry lost: %q, %t", name, ok)
	}
}

func TestWideMapReusesExisting(t *testing.T) {
	f := newTestFont()
	existing := &CMap{PlatformID: 3, EncodingID: 10, Format: 12}
	existing.Set('A', "A")
	f.cmaps = []*CMap{existing}

	if got := f.WideMap(); got != existing {
		t.Error("WideMap did not return the existing format 12 subtable")
	}
}

func TestBestMap(t *testing.T) {
	mac := &CMap{PlatformID: 1, EncodingID: 0, Format: 0}
	win := &CMap{PlatformID: 3, EncodingID: 1, Format: 4}
	wide := &CMap{PlatformID: 3, EncodingID: 10, Format: 12}

	cases := []struct {
		name string
		maps []*CMap
		want *CMap
	}{
		{"none", nil, nil},
		{"mac only", []*CMap{mac}, mac},
		{"windows over mac", []*CMap{mac, win}, win},
		{"wide over windows", []*CMap{mac, win, wide}, wide},
		{"order independent", []*CMap{wide, win, mac}, wide},
	}
	for _, c := range cases {
		f := newTestFont()
		f.cmaps = c.maps
		if got := f.BestMap(); got != c.want {
			t.Errorf("%s: wrong best map", c.name)
		}
	}
}

func TestCMapEntries(t *testing.T) {
	c := &CMap{Format: 12}
	c.Set('B', "B")
	c.Set('A', "A")
	c.Set('A', "A.alt2") // overwrite
	c.Set(0x2F800, "cjk")

	if d := cmp.Diff([]rune{'A', 'B', 0x2F800}, c.Runes()); d != "" {
		t.Errorf("unexpected rune order (-want +got):\n%s", d)
	}
	if name, _ := c.Lookup('A'); name != "A.alt2" {
		t.Errorf("Set did not overwrite: got %q", name)
	}

	c.Delete('A')
	if _, ok := c.Lookup('A'); ok {
		t.Error("entry still present after Delete")
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}
