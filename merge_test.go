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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontclass/normalize"
	"seehuhn.de/go/fontclass/table"
)

func TestOverlay(t *testing.T) {
	records := map[string]*Record{
		"A:normal:400": {GFN: "A:normal:400", WeightScaled: 5, AngleScaled: 1, WidthScaled: 6, Usage: "unknown"},
		"B:normal:400": {GFN: "B:normal:400", WeightScaled: 2, AngleScaled: 1, WidthScaled: 2, Usage: "unknown"},
	}
	prior := table.Table{
		{GFN: "A:normal:400", Weight: 8, Angle: 3, Width: 4, Usage: "body"},
		{GFN: "C:normal:400", Weight: 1, Angle: 1, Width: 1, Usage: "header"},
	}

	n := Overlay(records, prior)
	if n != 1 {
		t.Errorf("%d records changed, want 1", n)
	}

	want := table.Table{
		{GFN: "A:normal:400", Weight: 8, Angle: 3, Width: 4, Usage: "body"},
		{GFN: "B:normal:400", Weight: 2, Angle: 1, Width: 2, Usage: "unknown"},
	}
	if diff := cmp.Diff(want, Rows(records)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterMissing(t *testing.T) {
	paths := []string{
		"fonts/ofl/lobster/Lobster-Regular.ttf",
		"fonts/ofl/opensans/OpenSans-Bold.ttf",
		"fonts/ofl/opensanscondensed/OpenSansCondensed-Light.ttf",
		"fonts/ofl/abel/Abel-Regular.ttf",
		"fonts/unknown/Foo-Regular.ttf",
	}
	prior := table.Table{
		{GFN: "Open Sans:normal:400"},
		{GFN: "unknown"},
		{GFN: "Lobster:normal:400"},
	}

	kept, rejected := FilterMissing(paths, prior)

	if diff := cmp.Diff([]string{"fonts/ofl/abel/Abel-Regular.ttf", "fonts/unknown/Foo-Regular.ttf"}, kept); diff != "" {
		t.Errorf("kept (-want +got):\n%s", diff)
	}
	wantRejected := []string{
		"fonts/ofl/lobster/Lobster-Regular.ttf:Lobster:normal:400",
		"fonts/ofl/opensans/OpenSans-Bold.ttf:Open Sans:normal:400",
		"fonts/ofl/opensanscondensed/OpenSansCondensed-Light.ttf:Open Sans:normal:400",
	}
	if diff := cmp.Diff(wantRejected, rejected); diff != "" {
		t.Errorf("rejected (-want +got):\n%s", diff)
	}
}

func TestNormalizeColumns(t *testing.T) {
	records := map[string]*Record{
		"A:normal:400": {GFN: "A:normal:400", Darkness: 0.1, Width: 300, Angle: 0},
		"A:italic:400": {GFN: "A:italic:400", Darkness: 0.1, Width: 310, Angle: -12},
		"B:normal:900": {GFN: "B:normal:900", Darkness: 0.4, Width: 200, Angle: 6},
	}
	Normalize(records, normalize.Default)

	type scaled struct{ W, Wi, A int }
	got := map[string]scaled{}
	for id, rec := range records {
		got[id] = scaled{rec.WeightScaled, rec.WidthScaled, rec.AngleScaled}
	}
	want := map[string]scaled{
		"A:normal:400": {1, 9, 1},
		"A:italic:400": {1, 10, 10},
		"B:normal:900": {10, 1, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// no records, no panic
	Normalize(map[string]*Record{}, normalize.Default)
}
