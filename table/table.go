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

// Package table reads and writes font classification tables.
//
// A table is a comma separated file with a header row and the columns
// GFN, FWE (weight), FIA (italic angle), FWI (width) and USAGE.
package table

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/fontclass/gfn"
)

// Header is the first line of every table written by this package.
var Header = []string{"GFN", "FWE", "FIA", "FWI", "USAGE"}

// Values for the usage column.
const (
	UsageHeader  = "header"
	UsageBody    = "body"
	UsageUnknown = "unknown"
)

// Row is the classification of one font.
type Row struct {
	GFN    string
	Weight int
	Angle  int
	Width  int
	Usage  string
}

func (r Row) record() []string {
	return []string{
		r.GFN,
		strconv.Itoa(r.Weight),
		strconv.Itoa(r.Angle),
		strconv.Itoa(r.Width),
		r.Usage,
	}
}

// Table is a list of rows.
type Table []Row

// Sort orders the rows by GFN.
func (t Table) Sort() {
	slices.SortStableFunc(t, func(a, b Row) int {
		return cmp.Compare(a.GFN, b.GFN)
	})
}

// Lookup returns the row for the given identifier.
// If the identifier occurs more than once, the last row is returned.
func (t Table) Lookup(id string) (Row, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].GFN == id {
			return t[i], true
		}
	}
	return Row{}, false
}

// Index returns a map from identifiers to rows.
// Later rows take precedence over earlier ones.
func (t Table) Index() map[string]Row {
	res := make(map[string]Row, len(t))
	for _, row := range t {
		res[row.GFN] = row
	}
	return res
}

// FamilyKeys returns the family parts of all identifiers in the table, with
// spaces removed.
func (t Table) FamilyKeys() []string {
	res := make([]string, 0, len(t))
	for _, row := range t {
		res = append(res, gfn.FamilyKey(row.GFN))
	}
	return res
}

// ReadFile reads a table from a file.
func ReadFile(fname string) (Table, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	t, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return t, nil
}

// Read reads a table.  The first row is assumed to be a header and is
// skipped.  Missing trailing columns are accepted.
func Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var t Table
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		line++
		if line == 1 || len(rec) == 0 || rec[0] == "" {
			continue
		}

		row := Row{GFN: rec[0], Usage: UsageUnknown}
		for i, dst := range []*int{&row.Weight, &row.Angle, &row.Width} {
			if i+1 >= len(rec) {
				break
			}
			*dst, err = strconv.Atoi(strings.TrimSpace(rec[i+1]))
			if err != nil {
				return nil, fmt.Errorf("line %d: column %s: %w", line, Header[i+1], err)
			}
		}
		if len(rec) > 4 && rec[4] != "" {
			row.Usage = rec[4]
		}
		t = append(t, row)
	}
	return t, nil
}

// WriteFile writes the table to a file, sorted by GFN.
func WriteFile(fname string, t Table) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = Write(fd, t)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}

// Write writes the header and all rows of t, sorted by GFN.
// The table itself is not modified.
func Write(w io.Writer, t Table) error {
	sorted := slices.Clone(t)
	sorted.Sort()

	cw := csv.NewWriter(w)
	err := cw.Write(Header)
	if err != nil {
		return err
	}
	for _, row := range sorted {
		err = cw.Write(row.record())
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
