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

package glyphsheet

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestRenderLayout(t *testing.T) {
	chars := []rune("ABCDEFGHIJ")
	img, err := Render(goregular.TTF, chars, &Options{Size: 32, Columns: 4})
	if err != nil {
		t.Fatal(err)
	}

	// 10 characters in 4 columns give 3 rows
	bounds := img.Bounds()
	if bounds.Dx()%4 != 0 {
		t.Errorf("width %d is not a multiple of the column count", bounds.Dx())
	}
	cellH := bounds.Dy() / 3
	if cellH*3 != bounds.Dy() {
		t.Errorf("height %d does not hold 3 equal rows", bounds.Dy())
	}

	// something must actually have been drawn
	if !hasInk(img) {
		t.Error("rendered sheet is blank")
	}
}

func TestRenderNoCharacters(t *testing.T) {
	if _, err := Render(goregular.TTF, nil, nil); err == nil {
		t.Error("empty character list accepted")
	}
}

func TestRenderBadFont(t *testing.T) {
	if _, err := Render([]byte("not a font"), []rune{'A'}, nil); err == nil {
		t.Error("malformed font accepted")
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	pngPath := filepath.Join(dir, "sheet.png")

	err := RenderFile(fontPath, pngPath, []rune{'A', 'b', '0'}, nil)
	if err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Empty() {
		t.Error("decoded sheet is empty")
	}
}

func hasInk(img *image.RGBA) bool {
	bounds := img.Bounds()
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				return true
			}
		}
	}
	return false
}
