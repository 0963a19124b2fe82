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

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontclass/table"
)

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "fonts.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	in := table.Table{
		{GFN: "Lobster:normal:400", Weight: 7, Angle: 1, Width: 5, Usage: "header"},
		{GFN: "Abel:normal:400", Weight: 3, Angle: 1, Width: 2},
	}
	err = db.Save(ctx, in)
	if err != nil {
		t.Fatal(err)
	}

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := table.Table{
		{GFN: "Abel:normal:400", Weight: 3, Angle: 1, Width: 2, Usage: "unknown"},
		{GFN: "Lobster:normal:400", Weight: 7, Angle: 1, Width: 5, Usage: "header"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// a second save replaces the contents
	err = db.Save(ctx, want[1:])
	if err != nil {
		t.Fatal(err)
	}
	got, err = db.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want[1:], got); diff != "" {
		t.Errorf("mismatch after replace (-want +got):\n%s", diff)
	}
}

func TestReadWriteTable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	in := table.Table{
		{GFN: "A:normal:400", Weight: 8, Angle: 3, Width: 4, Usage: "body"},
	}
	for _, name := range []string{"out.csv", "out.sqlite"} {
		fname := filepath.Join(dir, name)
		err := WriteTable(ctx, fname, in)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ReadTable(ctx, fname)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestIsDatabase(t *testing.T) {
	for name, want := range map[string]bool{
		"out.csv":        false,
		"fonts.db":       true,
		"x/fonts.SQLite": true,
		"fonts":          false,
	} {
		if got := IsDatabase(name); got != want {
			t.Errorf("IsDatabase(%q) = %t", name, got)
		}
	}
}
