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
	"bytes"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
)

// LoadError indicates that a font file could not be opened or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load font %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a TrueType font from a file.  Fonts without glyf outlines
// (in particular CFF-based OpenType fonts) are rejected.
func Load(path string) (*Font, error) {
	info, err := sfnt.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	f, err := fromSFNT(info)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return f, nil
}

// Read parses a TrueType font from memory.
func Read(data []byte) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return fromSFNT(info)
}

func fromSFNT(info *sfnt.Font) (*Font, error) {
	outlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok {
		return nil, errors.New("no glyf outlines")
	}

	names := glyphNames(outlines)

	f := &Font{
		glyphs:     make(map[string]*Glyph, len(outlines.Glyphs)),
		metrics:    make(map[string]Metrics, len(outlines.Glyphs)),
		glyphCount: len(outlines.Glyphs),
		sfnt:       info,
	}

	for gid, data := range outlines.Glyphs {
		g := &Glyph{Name: names[gid], data: data}
		if data != nil {
			for _, cid := range data.Components() {
				if int(cid) >= len(names) {
					return nil, fmt.Errorf("glyph %q references out-of-range glyph ID %d", g.Name, cid)
				}
				g.componentIDs = append(g.componentIDs, cid)
				g.Components = append(g.Components, names[cid])
			}
		}
		f.SetGlyph(g)

		m := DefaultMetrics
		if gid < len(outlines.Widths) {
			m.AdvanceWidth = outlines.Widths[gid]
		}
		if data != nil {
			m.LeftSideBearing = data.Rect16.LLx
		}
		f.metrics[g.Name] = m
	}

	f.cmaps = decodeCMaps(info.CMapTable, names)

	return f, nil
}

// decodeCMaps converts the decodable character-map subtables into the
// name-keyed model.  Subtables in formats the sfnt library cannot decode
// (variation selectors and the like) are dropped.
func decodeCMaps(table cmap.Table, names []string) []*CMap {
	keys := maps.Keys(table)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].PlatformID != keys[j].PlatformID {
			return keys[i].PlatformID < keys[j].PlatformID
		}
		if keys[i].EncodingID != keys[j].EncodingID {
			return keys[i].EncodingID < keys[j].EncodingID
		}
		return keys[i].Language < keys[j].Language
	})

	var res []*CMap
	for _, key := range keys {
		data := table[key]
		if len(data) < 2 {
			continue
		}
		sub, err := table.Get(key)
		if err != nil {
			continue
		}
		c := &CMap{
			PlatformID: key.PlatformID,
			EncodingID: key.EncodingID,
			Language:   key.Language,
			Format:     int(data[0])<<8 | int(data[1]),
			entries:    subtableEntries(sub, names),
		}
		res = append(res, c)
	}
	return res
}

func subtableEntries(sub cmap.Subtable, names []string) map[rune]string {
	entries := make(map[rune]string)
	add := func(r rune, gid int) {
		// Glyph ID 0 is .notdef; the subtable formats use it to mean
		// "not mapped".
		if gid > 0 && gid < len(names) {
			entries[r] = names[gid]
		}
	}
	switch s := sub.(type) {
	case cmap.Format12:
		for code, gid := range s {
			add(rune(code), int(gid))
		}
	case cmap.Format4:
		for code, gid := range s {
			add(rune(code), int(gid))
		}
	default:
		low, high := sub.CodeRange()
		for r := low; r <= high; r++ {
			add(r, int(sub.Lookup(r)))
		}
	}
	return entries
}

// glyphNames assigns a unique name to every glyph: the post-table name
// where present, a synthesized glyphNNNNN otherwise.  Glyph 0 is always
// named .notdef.
func glyphNames(outlines *glyf.Outlines) []string {
	names := make([]string, len(outlines.Glyphs))
	seen := make(map[string]bool, len(outlines.Glyphs))
	for gid := range names {
		var name string
		if gid < len(outlines.Names) {
			name = outlines.Names[gid]
		}
		if gid == 0 {
			name = ".notdef"
		}
		if name == "" {
			name = fmt.Sprintf("glyph%05d", gid)
		}
		base := name
		for i := 2; seen[name]; i++ {
			name = fmt.Sprintf("%s.alt%d", base, i)
		}
		seen[name] = true
		names[gid] = name
	}
	return names
}
