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

// Package stats summarizes the contents of a classification table.
package stats

import (
	"fmt"
	"io"

	"seehuhn.de/go/fontclass/normalize"
	"seehuhn.de/go/fontclass/table"
)

// UsageValues lists the usage values which are always reported, even if
// their count is zero.
var UsageValues = []string{"?", table.UsageBody, table.UsageHeader, table.UsageUnknown}

// Count is the number of rows with a given value.
type Count struct {
	Value string
	N     int
}

// Stats holds histograms of the columns of a table.
type Stats struct {
	Rows   int
	Weight []Count
	Width  []Count
	Angle  []Count
	Usage  []Count
}

// Compute counts how often each value of r occurs in the weight, width and
// angle columns of t, and how often each usage value occurs.  Out of range
// values are not counted.
func Compute(t table.Table, r normalize.Range) *Stats {
	s := &Stats{Rows: len(t)}
	s.Weight = histogram(t, r, func(row table.Row) int { return row.Weight })
	s.Width = histogram(t, r, func(row table.Row) int { return row.Width })
	s.Angle = histogram(t, r, func(row table.Row) int { return row.Angle })

	seen := map[string]int{}
	for _, v := range UsageValues {
		s.Usage = append(s.Usage, Count{Value: v})
		seen[v] = len(s.Usage) - 1
	}
	for _, row := range t {
		idx, ok := seen[row.Usage]
		if !ok {
			s.Usage = append(s.Usage, Count{Value: row.Usage})
			idx = len(s.Usage) - 1
			seen[row.Usage] = idx
		}
		s.Usage[idx].N++
	}
	return s
}

func histogram(t table.Table, r normalize.Range, col func(table.Row) int) []Count {
	res := make([]Count, 0, r.Max-r.Min+1)
	for v := r.Min; v <= r.Max; v++ {
		res = append(res, Count{Value: fmt.Sprint(v)})
	}
	for _, row := range t {
		v := col(row)
		if v < r.Min || v > r.Max {
			continue
		}
		res[v-r.Min].N++
	}
	return res
}

// Write prints the statistics as a markdown document.
func (s *Stats) Write(w io.Writer) error {
	sections := []struct {
		name   string
		counts []Count
	}{
		{"weight", s.Weight},
		{"width", s.Width},
		{"angle", s.Angle},
		{"usage", s.Usage},
	}
	for _, sec := range sections {
		_, err := fmt.Fprintf(w, "\n## %s\n", sec.name)
		if err != nil {
			return err
		}
		for _, c := range sec.counts {
			_, err = fmt.Fprintf(w, "* %s: %d\n", c.Value, c.N)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
