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
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontclass/exclude"
	"seehuhn.de/go/fontclass/gfn"
	"seehuhn.de/go/fontclass/internal/testfonts"
	"seehuhn.de/go/fontclass/measure"
	"seehuhn.de/go/fontclass/normalize"
	"seehuhn.de/go/fontclass/resolve"
	"seehuhn.de/go/fontclass/table"
)

// syntheticDarkness returns an extractor which reports fixed darkness
// values, keyed by base name.  Every call is recorded in calls.
func syntheticDarkness(darkness map[string]float64, calls *[]string) Extractor {
	return ExtractorFunc(func(path string) (*measure.Metrics, error) {
		*calls = append(*calls, path)
		d, ok := darkness[filepath.Base(path)]
		if !ok {
			return nil, errors.New("no synthetic value")
		}
		return &measure.Metrics{Darkness: d, Width: 100}, nil
	})
}

type fixedResolver map[string]string

func (r fixedResolver) Resolve(path string) resolve.Outcome {
	id, err := gfn.Parse(r[filepath.Base(path)])
	if err != nil {
		return resolve.Outcome{Reason: err}
	}
	return resolve.Outcome{ID: id}
}

func TestAnalyzeWeights(t *testing.T) {
	dir := t.TempDir()
	paths := testfonts.Family(t, dir, map[string]testfonts.Font{
		"A-Regular.ttf": testfonts.Regular,
		"A-Bold.ttf":    testfonts.Regular,
		"A-Thin.ttf":    testfonts.Regular,
	})

	var calls []string
	a := &Analyzer{
		Exclude:  exclude.New(),
		Resolver: resolve.New(),
		Extract: syntheticDarkness(map[string]float64{
			"A-Regular.ttf": 0.2,
			"A-Bold.ttf":    0.5,
			"A-Thin.ttf":    0.1,
		}, &calls),
	}
	res, err := a.Analyze(context.Background(), paths)
	if err != nil {
		t.Fatal(err)
	}
	Normalize(res.Records, normalize.Default)

	got := map[string]int{}
	for id, rec := range res.Records {
		got[id] = rec.WeightScaled
	}
	want := map[string]int{
		"A:normal:100": 1,
		"A:normal:400": 3,
		"A:normal:700": 10,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scaled weights (-want +got):\n%s", diff)
	}
	if !slices.IsSorted(calls) {
		t.Errorf("files not processed in sorted order: %v", calls)
	}
}

func TestExcludedNotExtracted(t *testing.T) {
	paths := []string{
		"fonts/padauk/Padauk-Bold.ttf",
		"fonts/a/A-Regular.ttf",
		"fonts/rubik/Rubik-Regular.ttf",
	}

	var calls []string
	var events []Event
	a := &Analyzer{
		Exclude:  exclude.New(),
		Resolver: fixedResolver{"A-Regular.ttf": "A:normal:400"},
		Extract:  syntheticDarkness(map[string]float64{"A-Regular.ttf": 0.3}, &calls),
		Progress: func(ev Event) { events = append(events, ev) },
	}
	res, err := a.Analyze(context.Background(), paths)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"fonts/a/A-Regular.ttf"}, calls); diff != "" {
		t.Errorf("extractor calls (-want +got):\n%s", diff)
	}
	wantExcluded := []string{"fonts/padauk/Padauk-Bold.ttf", "fonts/rubik/Rubik-Regular.ttf"}
	if diff := cmp.Diff(wantExcluded, res.Excluded); diff != "" {
		t.Errorf("excluded (-want +got):\n%s", diff)
	}

	wantEvents := []Event{
		{Index: 1, Total: 3, Path: "fonts/a/A-Regular.ttf", State: Started},
		{Index: 2, Total: 3, Path: "fonts/padauk/Padauk-Bold.ttf", State: Excluded},
		{Index: 3, Total: 3, Path: "fonts/rubik/Rubik-Regular.ttf", State: Excluded},
	}
	if diff := cmp.Diff(wantEvents, events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestCollision(t *testing.T) {
	var calls []string
	a := &Analyzer{
		Resolver: fixedResolver{
			"A-Regular.ttf":  "A:normal:400",
			"A-Regular2.ttf": "A:normal:400",
		},
		Extract: syntheticDarkness(map[string]float64{
			"A-Regular.ttf":  0.1,
			"A-Regular2.ttf": 0.2,
		}, &calls),
	}
	res, err := a.Analyze(context.Background(), []string{"x/A-Regular2.ttf", "x/A-Regular.ttf"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Collisions != 1 || len(res.Records) != 1 {
		t.Fatalf("collisions %d, records %d", res.Collisions, len(res.Records))
	}
	if rec := res.Records["A:normal:400"]; rec.File != "x/A-Regular2.ttf" {
		t.Errorf("kept %s, want the later file", rec.File)
	}
}

func TestFailures(t *testing.T) {
	a := &Analyzer{
		Resolver: fixedResolver{"A-Regular.ttf": "A:normal:400"},
		Extract: ExtractorFunc(func(path string) (*measure.Metrics, error) {
			switch filepath.Base(path) {
			case "Broken-Regular.ttf":
				panic("boom")
			case "Bad-Regular.ttf":
				return nil, errors.New("bad font")
			}
			return &measure.Metrics{Darkness: 0.5}, nil
		}),
	}
	res, err := a.Analyze(context.Background(),
		[]string{"Broken-Regular.ttf", "Bad-Regular.ttf", "A-Regular.ttf"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Records) != 1 {
		t.Errorf("got %d records", len(res.Records))
	}
	if len(res.Failed) != 2 {
		t.Fatalf("got %d failures", len(res.Failed))
	}
	var perr *PanicError
	if res.Failed[1].File != "Broken-Regular.ttf" || !errors.As(res.Failed[1], &perr) {
		t.Errorf("unexpected failure %v", res.Failed[1])
	}
}

func TestUnknownRecords(t *testing.T) {
	var calls []string
	a := &Analyzer{
		Resolver: fixedResolver{
			"A-Regular.ttf": "A:normal:400",
			"B-Regular.ttf": "B:normal:400",
		},
		Extract: syntheticDarkness(map[string]float64{
			"A-Regular.ttf": 0.1,
			"B-Regular.ttf": 0.5,
			"mystery.ttf":   0.9,
		}, &calls),
	}
	res, err := a.Analyze(context.Background(),
		[]string{"A-Regular.ttf", "B-Regular.ttf", "mystery.ttf"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Records[gfn.Unknown]; !ok {
		t.Fatal("unidentified font missing from the records")
	}

	Normalize(res.Records, normalize.Default)
	rows := Rows(res.Records)
	want := table.Table{
		{GFN: "A:normal:400", Weight: 1, Angle: 1, Width: 10, Usage: "unknown"},
		{GFN: "B:normal:400", Weight: 5, Angle: 1, Width: 10, Usage: "unknown"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestUnknownNotCollision(t *testing.T) {
	var calls []string
	a := &Analyzer{
		Resolver: fixedResolver{"A-Regular.ttf": "A:normal:400"},
		Extract: syntheticDarkness(map[string]float64{
			"A-Regular.ttf": 0.1,
			"x.ttf":         0.5,
			"y.ttf":         0.9,
		}, &calls),
	}
	res, err := a.Analyze(context.Background(),
		[]string{"A-Regular.ttf", "x.ttf", "y.ttf"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Collisions != 0 {
		t.Errorf("unidentified fonts counted as %d collisions", res.Collisions)
	}
	if rec := res.Records[gfn.Unknown]; rec == nil || rec.File != "y.ttf" {
		t.Errorf("unexpected record for unidentified fonts: %v", rec)
	}
}

func TestAnalyzeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Analyzer{
		Resolver: fixedResolver{},
		Extract: ExtractorFunc(func(string) (*measure.Metrics, error) {
			cancel()
			return &measure.Metrics{}, nil
		}),
	}
	res, err := a.Analyze(ctx, []string{"a.ttf", "b.ttf", "c.ttf"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error %v", err)
	}
	if res == nil || len(res.Records) != 1 {
		t.Errorf("unexpected partial result %v", res)
	}
}
