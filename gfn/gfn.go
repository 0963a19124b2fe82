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

// Package gfn implements the canonical "family:style:weight" font identifiers
// used to join measured metrics with curated font metadata.
//
// Identifiers are written as
//
//	Open Sans:italic:700
//
// where the style is either "normal" or "italic" and the weight is the
// numeric weight class between 100 and 900.  The special identifier
// [Unknown] marks fonts for which no identifier could be derived.
package gfn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unknown is the identifier used for fonts which could not be identified.
const Unknown = "unknown"

// Font styles.
const (
	Normal = "normal"
	Italic = "italic"
)

// GFN identifies a single font of a family.
type GFN struct {
	Family string
	Style  string // Normal or Italic
	Weight int    // weight class, 100-900
}

// String returns the identifier in "family:style:weight" form.
func (g GFN) String() string {
	return g.Family + ":" + g.Style + ":" + strconv.Itoa(g.Weight)
}

// IsZero reports whether g is the zero value.
func (g GFN) IsZero() bool {
	return g == GFN{}
}

// Parse splits a stored identifier into its components.
//
// The style and weight are taken from the last two colon-separated fields,
// everything before them is the family name.
func Parse(s string) (GFN, error) {
	k := strings.LastIndexByte(s, ':')
	if k < 0 {
		return GFN{}, &ParseError{Name: s, Reason: errMalformed}
	}
	weight, err := strconv.Atoi(s[k+1:])
	if err != nil {
		return GFN{}, &ParseError{Name: s, Reason: errMalformed}
	}
	j := strings.LastIndexByte(s[:k], ':')
	if j <= 0 {
		return GFN{}, &ParseError{Name: s, Reason: errMalformed}
	}
	return GFN{Family: s[:j], Style: s[j+1 : k], Weight: weight}, nil
}

// FamilyKey returns the family part of an identifier with all spaces
// removed.  This is the form in which family names appear in font file
// names, e.g. "OpenSans" for "Open Sans:normal:400".
func FamilyKey(id string) string {
	family, _, _ := strings.Cut(id, ":")
	return strings.ReplaceAll(family, " ", "")
}

var (
	// ErrUnknownStyle is returned for style/weight tokens which are not
	// listed in the weight table.
	ErrUnknownStyle = errors.New("unknown style/weight token")

	// ErrNoMatch is returned for file names which do not follow the
	// "Family-StyleWeight.ext" convention.
	ErrNoMatch = errors.New("file name does not match Family-StyleWeight convention")

	errMalformed = errors.New("malformed identifier")
)

// ParseError describes a token or file name which could not be parsed.
type ParseError struct {
	Name   string
	Reason error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("gfn: %q: %v", err.Name, err.Reason)
}

func (err *ParseError) Unwrap() error {
	return err.Reason
}
