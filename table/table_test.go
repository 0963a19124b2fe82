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

package table

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	in := `GFN,FWE,FIA,FWI,USAGE
A:normal:400,8,3,4,body
Open Sans:italic:700,9,5,6,header
B:normal:400,1,1,1
`
	got, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Table{
		{GFN: "A:normal:400", Weight: 8, Angle: 3, Width: 4, Usage: "body"},
		{GFN: "Open Sans:italic:700", Weight: 9, Angle: 5, Width: 6, Usage: "header"},
		{GFN: "B:normal:400", Weight: 1, Angle: 1, Width: 1, Usage: UsageUnknown},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadBadNumber(t *testing.T) {
	in := "GFN,FWE,FIA,FWI,USAGE\nA:normal:400,x,3,4,body\n"
	_, err := Read(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "FWE") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestWriteSorted(t *testing.T) {
	in := Table{
		{GFN: "Zilla Slab:normal:400", Weight: 5, Angle: 1, Width: 5, Usage: "body"},
		{GFN: "Abel:normal:400", Weight: 3, Angle: 1, Width: 2, Usage: "unknown"},
	}
	buf := &bytes.Buffer{}
	err := Write(buf, in)
	if err != nil {
		t.Fatal(err)
	}
	want := "GFN,FWE,FIA,FWI,USAGE\n" +
		"Abel:normal:400,3,1,2,unknown\n" +
		"Zilla Slab:normal:400,5,1,5,body\n"
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if in[0].GFN != "Zilla Slab:normal:400" {
		t.Error("Write modified its argument")
	}
}

func TestFileRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.csv")
	in := Table{
		{GFN: "A:normal:400", Weight: 8, Angle: 3, Width: 4, Usage: "body"},
		{GFN: "A:italic:400", Weight: 8, Angle: 9, Width: 4, Usage: "body"},
	}
	err := WriteFile(fname, in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	in.Sort()
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	tab := Table{
		{GFN: "A:normal:400", Weight: 1},
		{GFN: "B:normal:400", Weight: 2},
		{GFN: "A:normal:400", Weight: 3},
	}
	row, ok := tab.Lookup("A:normal:400")
	if !ok || row.Weight != 3 {
		t.Errorf("got %v, %t", row, ok)
	}
	if _, ok := tab.Lookup("C:normal:400"); ok {
		t.Error("found missing row")
	}
	if idx := tab.Index(); len(idx) != 2 || idx["A:normal:400"].Weight != 3 {
		t.Errorf("unexpected index %v", idx)
	}
}

func TestFamilyKeys(t *testing.T) {
	tab := Table{
		{GFN: "Open Sans:normal:400"},
		{GFN: "Exo 2:italic:100"},
	}
	want := []string{"OpenSans", "Exo2"}
	if diff := cmp.Diff(want, tab.FamilyKeys()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
