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

import "sort"

// CMap is one decoded character-map subtable: platform/encoding/format
// metadata together with a mapping from Unicode code points to glyph
// names.
type CMap struct {
	PlatformID uint16
	EncodingID uint16
	Language   uint16

	// Format is the subtable format the mapping was decoded from.
	// Format 12 subtables cover the full Unicode range; all other
	// formats are limited to the basic multilingual plane.
	Format int

	entries map[rune]string
}

// Lookup returns the glyph name mapped to the given code point.
func (c *CMap) Lookup(r rune) (string, bool) {
	name, ok := c.entries[r]
	return name, ok
}

// Set adds or overwrites the mapping for the given code point.
func (c *CMap) Set(r rune, glyphName string) {
	if c.entries == nil {
		c.entries = make(map[rune]string)
	}
	c.entries[r] = glyphName
}

// Delete removes the mapping for the given code point, if any.
func (c *CMap) Delete(r rune) {
	delete(c.entries, r)
}

// Len returns the number of mapped code points.
func (c *CMap) Len() int {
	return len(c.entries)
}

// Runes returns the mapped code points in ascending order.
func (c *CMap) Runes() []rune {
	rr := make([]rune, 0, len(c.entries))
	for r := range c.entries {
		rr = append(rr, r)
	}
	sort.Slice(rr, func(i, j int) bool { return rr[i] < rr[j] })
	return rr
}

// IsWide reports whether the subtable can represent code points beyond
// the basic multilingual plane.
func (c *CMap) IsWide() bool {
	return c.Format == 12
}

// WideMap returns the font's canonical wide-range character-map subtable:
// the format 12 subtable for platform 3, encoding 10.  If the font has no
// such subtable, an empty one is created and attached; repeated calls
// return the same subtable.
//
// Later insertions of supplementary-plane characters are only
// representable here, which is why the engine records all new mappings in
// this subtable rather than in one of the legacy 16-bit formats.
func (f *Font) WideMap() *CMap {
	for _, c := range f.cmaps {
		if c.PlatformID == 3 && c.EncodingID == 10 && c.Format == 12 {
			return c
		}
	}
	c := &CMap{
		PlatformID: 3,
		EncodingID: 10,
		Format:     12,
		entries:    make(map[rune]string),
	}
	f.cmaps = append(f.cmaps, c)
	return c
}

// BestMap returns the subtable best suited for character lookup, or nil
// if the font has no character map at all.  Wide (format 12) subtables
// are preferred over 16-bit ones, and the Windows Unicode subtable over
// platform-specific encodings.
func (f *Font) BestMap() *CMap {
	var best *CMap
	bestScore := -1
	for _, c := range f.cmaps {
		score := 0
		switch {
		case c.Format == 12 && c.PlatformID == 3 && c.EncodingID == 10:
			score = 4
		case c.Format == 12:
			score = 3
		case c.PlatformID == 3 && c.EncodingID == 1:
			score = 2
		case c.PlatformID == 0:
			score = 1
		}
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}
