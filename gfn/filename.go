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

import (
	"path/filepath"
	"regexp"
)

var (
	// SomethingUpper -> Something Upper
	camelWord = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	// Font3 -> Font 3
	letterDigit = regexp.MustCompile(`([a-z])([0-9]+)`)
	// lookHere -> look Here
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	fileNameRe = regexp.MustCompile(`([^/-]+)-(\w+)\.(?:ttf|otf)$`)
)

// FamilyName reconstructs a human readable family name from the family
// token of a file name, e.g. "HPSimplifiedSans" becomes "HP Simplified Sans".
func FamilyName(token string) string {
	name := camelWord.ReplaceAllString(token, "${1} ${2}")
	name = letterDigit.ReplaceAllString(name, "${1} ${2}")
	return lowerUpper.ReplaceAllString(name, "${1} ${2}")
}

// ParseFilename derives an identifier from a file name following the
// Google Fonts convention "FamilyToken-StyleWeightToken.ttf", for example
// "OpenSans-BoldItalic.ttf".  Any leading directories are ignored.
func ParseFilename(path string) (GFN, error) {
	m := fileNameRe.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return GFN{}, &ParseError{Name: path, Reason: ErrNoMatch}
	}
	style, weight, err := ParseStyleWeight(m[2])
	if err != nil {
		return GFN{}, err
	}
	return GFN{
		Family: FamilyName(m[1]),
		Style:  style,
		Weight: weight,
	}, nil
}
