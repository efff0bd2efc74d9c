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

package fontgen

import (
	"fmt"
	"io"

	"github.com/KrisCris/gen-font-subset-from-text/fontfile"
)

// A Merger unions already-built fonts.
type Merger struct {
	// Log optionally receives one line per preserved or skipped
	// character.
	Log io.Writer
}

// Merge folds secondary into primary and returns primary.  For every
// character mapped by secondary's best character map: if primary already
// maps it, primary's glyph is preserved untouched; otherwise secondary's
// glyph and its full composite closure are copied into primary and the
// mapping is added to primary's first character-map subtable.  Characters
// beyond the basic multilingual plane go to the wide subtable instead,
// since the legacy 16-bit formats cannot encode them.  Glyphs secondary
// maps but does not actually contain are skipped with a warning.
//
// Name conflicts follow the same rule as character conflicts: a glyph
// name already present in primary is never overwritten, and copied
// composites resolve such components against primary's glyph.
//
// Chained merges are supported by passing a previous result as the new
// primary.
func (m *Merger) Merge(primary, secondary *fontfile.Font) *fontfile.Font {
	defer func() {
		primary.SetGlyphCountHeader(primary.NumGlyphs())
	}()

	best := secondary.BestMap()
	if best == nil {
		return primary
	}
	src := fontfile.NewSource(secondary, secondary.FamilyName())
	primaryMap := primary.BestMap()

	// Calling WideMap here would attach an empty subtable to fonts that
	// have none in format 12; it is only created once a mapping needs it.
	var target *fontfile.CMap
	if subtables := primary.Subtables(); len(subtables) > 0 {
		target = subtables[0]
	}

	// Seeding the copied set with primary's glyphs makes copyGlyph honor
	// the no-overwrite rule for free.
	copied := make(map[string]bool, primary.NumGlyphs())
	for _, name := range primary.GlyphNames() {
		copied[name] = true
	}

	for _, r := range best.Runes() {
		if primaryMap != nil {
			if _, ok := primaryMap.Lookup(r); ok {
				m.logf("preserving glyph for character %q from primary font", r)
				continue
			}
		}
		name, _ := best.Lookup(r)
		if _, ok := src.Glyph(name); !ok {
			m.logf("warning: glyph %q for character %q is missing in secondary font", name, r)
			continue
		}
		copyGlyph(name, src, primary, copied)
		if target == nil || (r > 0xFFFF && !target.IsWide()) {
			primary.WideMap().Set(r, name)
		} else {
			target.Set(r, name)
		}
	}

	return primary
}

func (m *Merger) logf(format string, args ...interface{}) {
	if m.Log == nil {
		return
	}
	fmt.Fprintf(m.Log, format+"\n", args...)
}
