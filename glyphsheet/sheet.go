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

// Package glyphsheet renders the characters of a font into a labelled
// grid image, for visual inspection of an assembled font.  Characters
// the font does not cover show up as the .notdef glyph; the sheet is a
// debugging aid, not a validation pass.
package glyphsheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Options control the sheet layout.  The zero value uses the defaults.
type Options struct {
	Size    float64 // point size per glyph, default 64
	Columns int     // glyphs per row, default 16
}

const (
	paddingX = 10
	paddingY = 20
)

// Render draws each character onto a grid and returns the image.  The
// characters are drawn in ascending code-point order, with a U+XXXX
// label under every cell.
func Render(fontData []byte, chars []rune, opt *Options) (*image.RGBA, error) {
	if len(chars) == 0 {
		return nil, errors.New("no characters to visualize")
	}

	size := 64.0
	columns := 16
	if opt != nil {
		if opt.Size > 0 {
			size = opt.Size
		}
		if opt.Columns > 0 {
			columns = opt.Columns
		}
	}

	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	sorted := append([]rune(nil), chars...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// first pass: find the largest glyph box
	metrics := face.Metrics()
	maxH := (metrics.Ascent + metrics.Descent).Ceil()
	maxW := 0
	for _, r := range sorted {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('�')
		}
		if w := adv.Ceil(); w > maxW {
			maxW = w
		}
	}

	cellW := maxW + paddingX
	cellH := maxH + paddingY
	rows := (len(sorted) + columns - 1) / columns

	img := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	glyphDrawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}
	labelDrawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}),
		Face: basicfont.Face7x13,
	}

	for i, r := range sorted {
		xOff := (i % columns) * cellW
		yOff := (i / columns) * cellH

		glyphDrawer.Dot = fixed.P(xOff+paddingX/2, yOff+metrics.Ascent.Ceil())
		glyphDrawer.DrawString(string(r))

		labelDrawer.Dot = fixed.P(xOff+2, yOff+maxH+basicfont.Face7x13.Ascent)
		labelDrawer.DrawString(fmt.Sprintf("U+%04X", r))
	}

	return img, nil
}

// RenderFile renders the glyph sheet of a font file and saves it as a
// PNG.
func RenderFile(fontPath, pngPath string, chars []rune, opt *Options) error {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return err
	}
	img, err := Render(data, chars, opt)
	if err != nil {
		return err
	}
	fd, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}
