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

// Package fontfile provides a mutable, glyph-name-keyed view of a TrueType
// font.
//
// The binary encoding and decoding of font tables is delegated to
// seehuhn.de/go/sfnt; this package converts between the glyph-ID-keyed
// model of that library and a model where glyph outlines, horizontal
// metrics and character-map entries are addressed by glyph name.  Name
// keying is what makes it possible to move glyphs between unrelated fonts:
// glyph IDs are only meaningful within a single file, while names survive
// the transfer.
package fontfile

import (
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// Glyph is a single named glyph.  The outline data is opaque and treated
// as immutable after loading; composite glyphs additionally record the
// names of their component glyphs.
type Glyph struct {
	Name string

	// Components lists the glyph names referenced by a composite glyph,
	// in component order.  Empty for simple glyphs.
	Components []string

	// data is the raw outline in the ID space of the font the glyph was
	// loaded from.  componentIDs holds the component glyph IDs in that
	// same ID space, parallel to Components; they are remapped to the
	// destination's IDs when the destination font is written.
	data         *glyf.Glyph
	componentIDs []glyph.ID
}

// IsComposite reports whether the glyph is defined in terms of other
// glyphs.
func (g *Glyph) IsComposite() bool {
	return len(g.Components) > 0
}

// Clone returns an independent copy of the glyph.  The outline data is
// shared, since it is never mutated after loading.
func (g *Glyph) Clone() *Glyph {
	g2 := &Glyph{
		Name: g.Name,
		data: g.data,
	}
	g2.Components = append(g2.Components, g.Components...)
	g2.componentIDs = append(g2.componentIDs, g.componentIDs...)
	return g2
}

// NewCompositeGlyph builds a composite glyph from the given component
// glyph names.  Each component is placed at the origin without scaling.
// The component names are resolved against the containing font when it is
// written, so the glyph can be assembled before all of its components are
// present.
func NewCompositeGlyph(name string, components []string) *Glyph {
	const (
		argsAreWords   = 0x0001
		argsAreXY      = 0x0002
		moreComponents = 0x0020
	)
	cg := glyf.CompositeGlyph{}
	g := &Glyph{Name: name}
	for i, comp := range components {
		flags := glyf.ComponentFlag(argsAreWords | argsAreXY)
		if i < len(components)-1 {
			flags |= moreComponents
		}
		cg.Components = append(cg.Components, glyf.GlyphComponent{
			Flags:      flags,
			GlyphIndex: glyph.ID(i),
			Data:       []byte{0, 0, 0, 0},
		})
		g.Components = append(g.Components, comp)
		g.componentIDs = append(g.componentIDs, glyph.ID(i))
	}
	g.data = &glyf.Glyph{Data: cg}
	return g
}

// Metrics holds the horizontal metrics of one glyph.
type Metrics struct {
	AdvanceWidth    funit.Int16
	LeftSideBearing funit.Int16
}

// DefaultMetrics is used for glyphs whose source font has no metrics
// entry, so that a destination font stays well-formed.
var DefaultMetrics = Metrics{AdvanceWidth: 500, LeftSideBearing: 0}

// Font is a mutable font: a name-keyed glyph container, a name-keyed
// metrics table, an ordered list of character-map subtables and a
// glyph-count header.  The non-glyph tables of the file the font was
// loaded from are retained unchanged and written back on save.
//
// Invariants, verified by [Font.Write]: every glyph name referenced by a
// character-map entry or a composite component exists in the glyph
// container, and the glyph-count header equals the number of glyphs
// present.
type Font struct {
	glyphs  map[string]*Glyph
	order   []string
	metrics map[string]Metrics
	cmaps   []*CMap

	glyphCount int

	sfnt *sfnt.Font
}

// FamilyName returns the font's family name, for use in diagnostics.
func (f *Font) FamilyName() string {
	return f.sfnt.FamilyName
}

// NumGlyphs returns the number of glyphs actually present in the glyph
// container.  This is independent of the glyph-count header.
func (f *Font) NumGlyphs() int {
	return len(f.order)
}

// GlyphCountHeader returns the value of the glyph-count header.
func (f *Font) GlyphCountHeader() int {
	return f.glyphCount
}

// SetGlyphCountHeader sets the glyph-count header.  Callers which add or
// remove glyphs must bring the header back in sync before writing the
// font.
func (f *Font) SetGlyphCountHeader(n int) {
	f.glyphCount = n
}

// HasGlyph reports whether a glyph with the given name is present.
func (f *Font) HasGlyph(name string) bool {
	_, ok := f.glyphs[name]
	return ok
}

// Glyph returns the glyph with the given name.
func (f *Font) Glyph(name string) (*Glyph, bool) {
	g, ok := f.glyphs[name]
	return g, ok
}

// SetGlyph adds g to the glyph container, replacing any glyph of the same
// name.  A replaced glyph keeps its position in the glyph order; new
// glyphs are appended.
func (f *Font) SetGlyph(g *Glyph) {
	if _, ok := f.glyphs[g.Name]; !ok {
		f.order = append(f.order, g.Name)
	}
	f.glyphs[g.Name] = g
}

// RemoveGlyph removes the named glyph together with its metrics entry.
// Removing a glyph which is still referenced elsewhere leaves the font
// inconsistent; [Font.Write] will refuse to write it.
func (f *Font) RemoveGlyph(name string) {
	if _, ok := f.glyphs[name]; !ok {
		return
	}
	delete(f.glyphs, name)
	delete(f.metrics, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// GlyphNames returns the glyph names in their stable order.  The returned
// slice is a copy and can be modified by the caller.
func (f *Font) GlyphNames() []string {
	return append([]string(nil), f.order...)
}

// Metrics returns the metrics entry for the named glyph.
func (f *Font) Metrics(name string) (Metrics, bool) {
	m, ok := f.metrics[name]
	return m, ok
}

// SetMetrics adds or replaces the metrics entry for the named glyph.
func (f *Font) SetMetrics(name string, m Metrics) {
	f.metrics[name] = m
}

// Subtables returns the font's character-map subtables in file order.
func (f *Font) Subtables() []*CMap {
	return f.cmaps
}
