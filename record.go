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

package fontclass

import (
	"cmp"
	"maps"
	"slices"

	"seehuhn.de/go/fontclass/gfn"
	"seehuhn.de/go/fontclass/table"
)

// Record holds the measurements and the classification of one font.
type Record struct {
	File string
	GFN  string

	// raw measurements
	Darkness float64
	Width    int
	Angle    float64
	Preview  string // base64 encoded PNG, optional

	Usage string

	// values on the classification scale, set by Normalize or Overlay
	WeightScaled int
	WidthScaled  int
	AngleScaled  int
}

// Row returns the table row for the record.
func (r *Record) Row() table.Row {
	return table.Row{
		GFN:    r.GFN,
		Weight: r.WeightScaled,
		Angle:  r.AngleScaled,
		Width:  r.WidthScaled,
		Usage:  r.Usage,
	}
}

// Sorted returns the records ordered by identifier.
func Sorted(records map[string]*Record) []*Record {
	res := slices.Collect(maps.Values(records))
	slices.SortFunc(res, func(a, b *Record) int {
		return cmp.Compare(a.GFN, b.GFN)
	})
	return res
}

// Rows returns the table rows for all identified fonts, sorted by
// identifier.  Records for unidentified fonts are omitted.
func Rows(records map[string]*Record) table.Table {
	var t table.Table
	for _, r := range Sorted(records) {
		if r.GFN == gfn.Unknown {
			continue
		}
		t = append(t, r.Row())
	}
	return t
}
