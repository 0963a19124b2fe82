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

package gfn

import "strings"

// Weight maps a style/weight token to its numeric weight class.
type Weight struct {
	Token string
	Class int
}

// weights lists the known tokens by ascending weight.  The canonical name
// of each weight comes before its aliases.
var weights = []Weight{
	{"Thin", 100},
	{"Hairline", 100},
	{"ExtraLight", 200},
	{"Light", 300},
	{"Regular", 400},
	{"", 400}, // "Family-Italic"
	{"Medium", 500},
	{"SemiBold", 600},
	{"Bold", 700},
	{"ExtraBold", 800},
	{"Black", 900},
}

var weightClass = func() map[string]int {
	m := make(map[string]int, len(weights))
	for _, w := range weights {
		m[w.Token] = w.Class
	}
	return m
}()

// Weights returns the table of known style/weight tokens, ordered by
// ascending weight class.
func Weights() []Weight {
	res := make([]Weight, len(weights))
	copy(res, weights)
	return res
}

// ParseStyleWeight splits a style/weight token like "Bold", "Regular" or
// "ExtraLightItalic" into a style and a weight class.
//
// Tokens which are not in the table cause a *ParseError wrapping
// ErrUnknownStyle.  There is no default weight.
func ParseStyleWeight(token string) (style string, weight int, err error) {
	style = Normal
	base := token
	if rest, ok := strings.CutSuffix(token, "Italic"); ok {
		style = Italic
		base = rest
	}
	weight, ok := weightClass[base]
	if !ok {
		return "", 0, &ParseError{Name: token, Reason: ErrUnknownStyle}
	}
	return style, weight, nil
}
