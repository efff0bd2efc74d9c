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
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// Save writes the font to a file.  The font is validated first, so a
// structurally inconsistent font produces an error and no output file.
func (f *Font) Save(path string) error {
	if err := f.checkConsistent(); err != nil {
		return err
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = f.write(fd)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}

// Write serializes the font.  It fails without writing anything if a
// character-map entry or composite component references a glyph that is
// not present, or if the glyph-count header disagrees with the glyph
// container.
func (f *Font) Write(w io.Writer) error {
	if err := f.checkConsistent(); err != nil {
		return err
	}
	_, err := f.write(w)
	return err
}

func (f *Font) checkConsistent() error {
	if !f.HasGlyph(".notdef") {
		return fmt.Errorf("font %q has no .notdef glyph", f.FamilyName())
	}
	if f.glyphCount != len(f.order) {
		return fmt.Errorf("glyph-count header is %d, but %d glyphs are present",
			f.glyphCount, len(f.order))
	}
	for _, name := range f.order {
		for _, comp := range f.glyphs[name].Components {
			if !f.HasGlyph(comp) {
				return fmt.Errorf("glyph %q references missing component %q", name, comp)
			}
		}
	}
	for _, c := range f.cmaps {
		for r, name := range c.entries {
			if !f.HasGlyph(name) {
				return fmt.Errorf("character map entry U+%04X references missing glyph %q", r, name)
			}
		}
	}
	return nil
}

func (f *Font) write(w io.Writer) (int64, error) {
	order := f.writeOrder()

	newGid := make(map[string]glyph.ID, len(order))
	for i, name := range order {
		newGid[name] = glyph.ID(i)
	}

	origOutlines := f.sfnt.Outlines.(*glyf.Outlines)
	outlines := &glyf.Outlines{
		Tables: origOutlines.Tables,
		Maxp:   origOutlines.Maxp,
	}
	for _, name := range order {
		g := f.glyphs[name]
		data := g.data
		if len(g.componentIDs) > 0 {
			remap := make(map[glyph.ID]glyph.ID, len(g.componentIDs))
			for i, cid := range g.componentIDs {
				remap[cid] = newGid[g.Components[i]]
			}
			data = data.FixComponents(remap)
		}
		outlines.Glyphs = append(outlines.Glyphs, data)
		outlines.Names = append(outlines.Names, name)

		var width funit.Int16
		if m, ok := f.metrics[name]; ok {
			width = m.AdvanceWidth
		} else {
			width = DefaultMetrics.AdvanceWidth
		}
		outlines.Widths = append(outlines.Widths, width)
	}

	res := &sfnt.Font{}
	*res = *f.sfnt
	res.Outlines = outlines
	res.CMapTable = f.encodeCMaps(newGid)

	return res.Write(w)
}

// writeOrder returns the glyph names in output order, with .notdef moved
// to glyph ID 0 where rasterizers expect it.
func (f *Font) writeOrder() []string {
	order := make([]string, 0, len(f.order))
	order = append(order, ".notdef")
	for _, name := range f.order {
		if name != ".notdef" {
			order = append(order, name)
		}
	}
	return order
}

// encodeCMaps re-encodes the character-map subtables against the new
// glyph IDs.  Wide subtables are written as format 12; everything else is
// normalized to format 4, silently restricted to the basic multilingual
// plane.  When two subtables collide on the same platform/encoding key,
// the wide one wins.
func (f *Font) encodeCMaps(newGid map[string]glyph.ID) cmap.Table {
	table := make(cmap.Table)
	wide := make(map[cmap.Key]bool)
	for _, c := range f.cmaps {
		key := cmap.Key{
			PlatformID: c.PlatformID,
			EncodingID: c.EncodingID,
			Language:   c.Language,
		}
		if _, ok := table[key]; ok && wide[key] {
			continue
		}
		if c.IsWide() {
			enc := cmap.Format12{}
			for r, name := range c.entries {
				enc[uint32(r)] = newGid[name]
			}
			table[key] = enc.Encode(c.Language)
			wide[key] = true
		} else {
			enc := cmap.Format4{}
			for r, name := range c.entries {
				if r <= 0xFFFF {
					enc[uint16(r)] = newGid[name]
				}
			}
			table[key] = enc.Encode(c.Language)
		}
	}
	return table
}
