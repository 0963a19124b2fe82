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
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fontclass/internal/logging"
	"seehuhn.de/go/fontclass/normalize"
	"seehuhn.de/go/fontclass/resolve"
	"seehuhn.de/go/fontclass/table"
)

// Glob returns the sorted list of files matching any of the patterns.
// Patterns which match nothing are not an error.
func Glob(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// Options control a classification run.
type Options struct {
	// Patterns select the font files.
	Patterns []string

	// Existing are the results of an earlier run, or nil.
	Existing table.Table

	// MissingOnly restricts the run to fonts from families not listed in
	// Existing.  Otherwise, values found in Existing override the new
	// measurements.
	MissingOnly bool

	Range normalize.Range

	Analyzer *Analyzer
}

// Report is the outcome of a classification run.
type Report struct {
	*Result

	// Rejected lists the files removed because their family was already
	// classified, in the form "path:identifier".
	Rejected []string

	// Overlaid is the number of records which took their values from the
	// existing results.
	Overlaid int
}

// Rows returns the output table of the run.
func (r *Report) Rows() table.Table {
	return Rows(r.Records)
}

// Classify finds, measures, identifies and classifies font files.
func Classify(ctx context.Context, opt *Options) (*Report, error) {
	log := logging.Logger()

	if opt.MissingOnly && opt.Existing == nil {
		return nil, ErrNeedExisting
	}
	r := opt.Range
	if r == (normalize.Range{}) {
		r = normalize.Default
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	files, err := Glob(opt.Patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	rep := &Report{}
	if opt.MissingOnly {
		files, rep.Rejected = FilterMissing(files, opt.Existing)
		log.Info("removed already classified files",
			slog.Int("removed", len(rep.Rejected)),
			slog.Int("remaining", len(files)))
	}

	res, err := opt.Analyzer.Analyze(ctx, files)
	if err != nil {
		return nil, err
	}
	rep.Result = res
	if len(res.Records) == 0 {
		return rep, ErrNoResults
	}

	Normalize(res.Records, r)
	if opt.Existing != nil && !opt.MissingOnly {
		rep.Overlaid = Overlay(res.Records, opt.Existing)
		log.Debug("applied existing values", slog.Int("records", rep.Overlaid))
	}
	return rep, nil
}

// Reweigh measures the darkness of all fonts which are listed in prior and
// returns a copy of their rows with the weight column recomputed.  All other
// columns keep their values from prior.  Fonts not listed in prior are
// ignored.
func Reweigh(ctx context.Context, patterns []string, prior table.Table, r normalize.Range, a *Analyzer) (table.Table, error) {
	log := logging.Logger()

	if r == (normalize.Range{}) {
		r = normalize.Default
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	files, err := Glob(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	log.Info("loaded existing results", slog.Int("entries", len(prior)))

	index := prior.Index()
	var todo []string
	outcomes := make(knownOutcomes)
	for _, path := range files {
		if _, excluded := a.Exclude.Match(path); excluded {
			continue
		}
		o := a.Resolver.Resolve(path)
		if _, known := index[o.String()]; known {
			todo = append(todo, path)
			outcomes[path] = o
		}
	}
	if len(todo) == 0 {
		return nil, ErrNoResults
	}
	log.Info("reweighing fonts", slog.Int("files", len(todo)))

	b := *a
	b.Resolver = outcomes
	res, err := b.Analyze(ctx, todo)
	if err != nil {
		return nil, err
	}

	sorted := Sorted(res.Records)
	darkness := make([]float64, len(sorted))
	for i, rec := range sorted {
		darkness[i] = rec.Darkness
	}
	weights := normalize.Scale(darkness, r)

	var out table.Table
	for i, rec := range sorted {
		row, ok := index[rec.GFN]
		if !ok {
			continue
		}
		row.Weight = weights[i]
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}

// knownOutcomes replays identifiers which were already resolved.
type knownOutcomes map[string]resolve.Outcome

func (k knownOutcomes) Resolve(path string) resolve.Outcome {
	return k[path]
}

// Identify returns the identifier of every font file, without measuring
// the fonts.
func Identify(paths []string, r Resolver) map[string]string {
	res := make(map[string]string, len(paths))
	for _, path := range paths {
		res[path] = r.Resolve(path).String()
	}
	return res
}
