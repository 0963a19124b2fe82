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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFilename(t *testing.T) {
	type testCase struct {
		in  string
		out GFN
	}
	testCases := []testCase{
		{"Lobster-Regular.ttf", GFN{"Lobster", Normal, 400}},
		{"OpenSans-BoldItalic.ttf", GFN{"Open Sans", Italic, 700}},
		{"fonts/ofl/opensans/OpenSans-ExtraLightItalic.ttf", GFN{"Open Sans", Italic, 200}},
		{"Merriweather-Italic.ttf", GFN{"Merriweather", Italic, 400}},
		{"HPSimplifiedSans-Black.otf", GFN{"HP Simplified Sans", Normal, 900}},
		{"Exo2-Hairline.ttf", GFN{"Exo 2", Normal, 100}},
		{"SourceSansPro-SemiBold.ttf", GFN{"Source Sans Pro", Normal, 600}},
	}
	for _, test := range testCases {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseFilename(test.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.out, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestParseFilenameErrors(t *testing.T) {
	type testCase struct {
		in   string
		want error
	}
	testCases := []testCase{
		{"Lobster-Chunky.ttf", ErrUnknownStyle},
		{"Lobster-BoldOblique.ttf", ErrUnknownStyle},
		{"Lobster.ttf", ErrNoMatch},
		{"Lobster-Regular.woff2", ErrNoMatch},
		{"", ErrNoMatch},
	}
	for _, test := range testCases {
		t.Run(test.in, func(t *testing.T) {
			_, err := ParseFilename(test.in)
			if !errors.Is(err, test.want) {
				t.Errorf("got error %v, want %v", err, test.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %v is not a *ParseError", err)
			}
		})
	}
}

func TestFamilyName(t *testing.T) {
	testCases := map[string]string{
		"HPSimplifiedSans": "HP Simplified Sans",
		"OpenSans":         "Open Sans",
		"Font3":            "Font 3",
		"lookHere":         "look Here",
		"Lobster":          "Lobster",
		"PTSansNarrow":     "PT Sans Narrow",
	}
	for in, want := range testCases {
		if got := FamilyName(in); got != want {
			t.Errorf("FamilyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWeightsOrdered(t *testing.T) {
	ww := Weights()
	if len(ww) == 0 {
		t.Fatal("empty weight table")
	}
	for i := 1; i < len(ww); i++ {
		if ww[i].Class < ww[i-1].Class {
			t.Errorf("%q (%d) listed after %q (%d)",
				ww[i].Token, ww[i].Class, ww[i-1].Token, ww[i-1].Class)
		}
	}

	// modifying the copy must not affect the table
	ww[0].Class = 999
	if Weights()[0].Class != 100 {
		t.Error("Weights() exposes the internal table")
	}
}

func TestParseStyleWeight(t *testing.T) {
	for _, w := range Weights() {
		style, weight, err := ParseStyleWeight(w.Token)
		if err != nil {
			t.Errorf("%q: %v", w.Token, err)
			continue
		}
		if style != Normal || weight != w.Class {
			t.Errorf("%q: got %s/%d, want normal/%d", w.Token, style, weight, w.Class)
		}

		style, weight, err = ParseStyleWeight(w.Token + "Italic")
		if err != nil {
			t.Errorf("%q: %v", w.Token+"Italic", err)
			continue
		}
		if style != Italic || weight != w.Class {
			t.Errorf("%q: got %s/%d, want italic/%d", w.Token+"Italic", style, weight, w.Class)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	ids := []GFN{
		{"Open Sans", Italic, 700},
		{"Lobster", Normal, 400},
		{"Exo 2", Normal, 100},
	}
	for _, id := range ids {
		got, err := Parse(id.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != id {
			t.Errorf("Parse(%q) = %v", id.String(), got)
		}
	}

	for _, bad := range []string{"", Unknown, "Lobster:normal", ":normal:400", "Lobster:normal:bold"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}

func TestFamilyKey(t *testing.T) {
	if got := FamilyKey("Open Sans:normal:400"); got != "OpenSans" {
		t.Errorf("got %q", got)
	}
	if got := FamilyKey("Lobster"); got != "Lobster" {
		t.Errorf("got %q", got)
	}
}
