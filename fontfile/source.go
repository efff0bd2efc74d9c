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

import "path/filepath"

// Source is a read-only view of one font used as a glyph supplier.  All
// lookups are tolerant: an unsupported code point or an unknown glyph
// name yields an absent result, never an error.  Character maps are known
// to sometimes reference glyphs that are not actually present in the
// outline table, so callers must check both.
type Source struct {
	font *Font
	name string
	best *CMap
}

// LoadSource loads a font file for read-only glyph lookup.
func LoadSource(path string) (*Source, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewSource(f, filepath.Base(path)), nil
}

// NewSource wraps an already-loaded font as a read-only source.  The name
// identifies the source in logs.
func NewSource(f *Font, name string) *Source {
	return &Source{font: f, name: name, best: f.BestMap()}
}

// Name returns the source's identity for diagnostics, usually the base
// file name.
func (s *Source) Name() string {
	return s.name
}

// Supports returns the glyph name the source's best character map assigns
// to the given code point.
func (s *Source) Supports(r rune) (string, bool) {
	if s.best == nil {
		return "", false
	}
	return s.best.Lookup(r)
}

// Glyph returns the named glyph, if present in the outline table.
func (s *Source) Glyph(name string) (*Glyph, bool) {
	return s.font.Glyph(name)
}

// Metrics returns the metrics entry for the named glyph, if present.
func (s *Source) Metrics(name string) (Metrics, bool) {
	return s.font.Metrics(name)
}
