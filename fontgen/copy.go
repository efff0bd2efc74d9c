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

import "github.com/KrisCris/gen-font-subset-from-text/fontfile"

// copyGlyph copies the named glyph from src into dst, together with
// every glyph reachable from it through composite references.  The
// copied set makes the call idempotent and guarantees termination on
// glyph graphs with shared or cyclic references: a glyph already in the
// set is never copied again.
//
// Glyphs the source's character map claims but the outline table lacks
// are skipped without effect.  Metrics are copied when the source has
// them and default-filled otherwise, so dst stays well-formed.
//
// After copyGlyph returns, every glyph reachable from name via composite
// references that exists in src also exists in dst.
func copyGlyph(name string, src *fontfile.Source, dst *fontfile.Font, copied map[string]bool) {
	if copied[name] {
		return
	}
	g, ok := src.Glyph(name)
	if !ok {
		return
	}

	dst.SetGlyph(g.Clone())
	if m, ok := src.Metrics(name); ok {
		dst.SetMetrics(name, m)
	} else {
		dst.SetMetrics(name, fontfile.DefaultMetrics)
	}
	copied[name] = true

	for _, comp := range g.Components {
		copyGlyph(comp, src, dst, copied)
	}
}
