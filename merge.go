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
	"math"
	"strings"

	"seehuhn.de/go/fontclass/gfn"
	"seehuhn.de/go/fontclass/normalize"
	"seehuhn.de/go/fontclass/table"
)

// Normalize sets the scaled values of all records.  Darkness, width and the
// absolute value of the italic angle are scaled onto r independently of
// each other.  Unidentified fonts take part in the scaling.
func Normalize(records map[string]*Record, r normalize.Range) {
	sorted := Sorted(records)
	if len(sorted) == 0 {
		return
	}

	darkness := make([]float64, len(sorted))
	width := make([]int, len(sorted))
	angle := make([]float64, len(sorted))
	for i, rec := range sorted {
		darkness[i] = rec.Darkness
		width[i] = rec.Width
		angle[i] = math.Abs(rec.Angle)
	}

	weightScaled := normalize.Scale(darkness, r)
	widthScaled := normalize.Scale(width, r)
	angleScaled := normalize.Scale(angle, r)
	for i, rec := range sorted {
		rec.WeightScaled = weightScaled[i]
		rec.WidthScaled = widthScaled[i]
		rec.AngleScaled = angleScaled[i]
	}
}

// Overlay replaces the scaled values and the usage of every record which
// also appears in prior by the values from prior.  It returns the number of
// records changed.
func Overlay(records map[string]*Record, prior table.Table) int {
	n := 0
	for id, row := range prior.Index() {
		rec, ok := records[id]
		if !ok {
			continue
		}
		rec.WeightScaled = row.Weight
		rec.AngleScaled = row.Angle
		rec.WidthScaled = row.Width
		rec.Usage = row.Usage
		n++
	}
	return n
}

// FilterMissing removes all files which belong to a family listed in prior.
// A file belongs to a family if its path contains the family name with
// spaces removed.  The removed files are returned in the form
// "path:identifier", where identifier is the prior entry which matched.
func FilterMissing(paths []string, prior table.Table) (kept, rejected []string) {
	keys := prior.FamilyKeys()
	for _, path := range paths {
		id, ok := matchFamily(path, prior, keys)
		if ok {
			rejected = append(rejected, path+":"+id)
			continue
		}
		kept = append(kept, path)
	}
	return kept, rejected
}

func matchFamily(path string, prior table.Table, keys []string) (string, bool) {
	for i, key := range keys {
		if prior[i].GFN == gfn.Unknown || key == "" {
			continue
		}
		if strings.Contains(path, key) {
			return prior[i].GFN, true
		}
	}
	return "", false
}
