// seehuhn.de/go/fontclass - classify fonts by visual weight, width and slant
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package resolve

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"seehuhn.de/go/fontclass/gfn"
)

// NameTable identifies fonts using the family and subfamily names stored in
// the font's "name" table.
type NameTable struct{}

// Resolve implements the [Strategy] interface.
func (NameTable) Resolve(path string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Source: SourceNameTable, Reason: err}
	}
	id, err := FromNameTable(data)
	if err != nil {
		return Outcome{Source: SourceNameTable, Reason: err}
	}
	return Outcome{ID: id, Source: SourceNameTable}
}

// FromNameTable derives an identifier from the family name (name ID 1) and
// subfamily name (name ID 2) of the given font file contents.
func FromNameTable(data []byte) (gfn.GFN, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return gfn.GFN{}, err
	}

	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return gfn.GFN{}, fmt.Errorf("family name: %w", err)
	}
	sub, err := f.Name(nil, sfnt.NameIDSubfamily)
	if err != nil {
		return gfn.GFN{}, fmt.Errorf("subfamily name: %w", err)
	}

	family = ASCII(family)
	if family == "" {
		return gfn.GFN{}, ErrNoFamilyName
	}

	// "Bold Italic" -> "BoldItalic"
	token := strings.ReplaceAll(ASCII(sub), " ", "")
	style, weight, err := gfn.ParseStyleWeight(token)
	if err != nil {
		return gfn.GFN{}, err
	}
	return gfn.GFN{Family: family, Style: style, Weight: weight}, nil
}

var notPrintable = runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII || !unicode.IsPrint(r)
})

// ASCII removes all characters which are not printable ASCII and trims
// surrounding white space.
func ASCII(s string) string {
	t := runes.Remove(notPrintable)
	res, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(res)
}
