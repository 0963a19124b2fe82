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
	"log/slog"
	"slices"

	"seehuhn.de/go/fontclass/exclude"
	"seehuhn.de/go/fontclass/gfn"
	"seehuhn.de/go/fontclass/internal/logging"
	"seehuhn.de/go/fontclass/measure"
	"seehuhn.de/go/fontclass/resolve"
	"seehuhn.de/go/fontclass/table"
)

// Extractor measures a single font file.
type Extractor interface {
	Extract(path string) (*measure.Metrics, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(path string) (*measure.Metrics, error)

// Extract calls f(path).
func (f ExtractorFunc) Extract(path string) (*measure.Metrics, error) {
	return f(path)
}

// Resolver finds the identifier of a font file.
type Resolver interface {
	Resolve(path string) resolve.Outcome
}

// State describes the progress of a file through the analysis.
type State int

// These are the possible values of [Event.State].
const (
	Started State = iota
	Excluded
	Failed
)

// Event is passed to the progress callback of an [Analyzer].
type Event struct {
	Index int // 1-based position of the file in the sorted list
	Total int
	Path  string
	State State
	Err   error // the failure, if State is Failed
}

// Analyzer measures and identifies a batch of font files.
// The files are processed sequentially.
type Analyzer struct {
	// Exclude lists files which are skipped without being opened.
	Exclude *exclude.List

	Resolver Resolver
	Extract  Extractor

	// Progress, if set, is called for every file.
	Progress func(Event)
}

// Result is the outcome of analyzing a batch of font files.
type Result struct {
	// Records maps identifiers to records.  If several files have the same
	// identifier, the last file in sorted order wins.
	Records map[string]*Record

	Excluded []string
	Failed   []*Failure

	// Collisions counts identified files which replaced an earlier record.
	Collisions int
}

// Analyze processes the given files in sorted order.  Excluded files and
// files which cannot be measured are recorded in the result, and the
// analysis continues with the next file.
//
// The only error returned is the context error, if ctx is cancelled
// between two files.  In this case the partial result is returned as well.
func (a *Analyzer) Analyze(ctx context.Context, paths []string) (*Result, error) {
	log := logging.Logger()

	files := slices.Clone(paths)
	slices.Sort(files)
	files = slices.Compact(files)

	res := &Result{Records: make(map[string]*Record)}
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		ev := Event{Index: i + 1, Total: len(files), Path: path}

		if p, ok := a.Exclude.Match(path); ok {
			res.Excluded = append(res.Excluded, path)
			log.Debug("excluded",
				slog.String("file", path),
				slog.String("pattern", p.Text))
			ev.State = Excluded
			a.report(ev)
			continue
		}

		ev.State = Started
		a.report(ev)

		rec, err := a.analyzeOne(path)
		if err != nil {
			res.Failed = append(res.Failed, &Failure{File: path, Err: err})
			log.Error("cannot measure font",
				slog.String("file", path),
				slog.Any("err", err))
			ev.State = Failed
			ev.Err = err
			a.report(ev)
			continue
		}

		if prev, ok := res.Records[rec.GFN]; ok && rec.GFN != gfn.Unknown {
			res.Collisions++
			log.Warn("duplicate identifier, keeping the later file",
				slog.String("gfn", rec.GFN),
				slog.String("previous", prev.File),
				slog.String("file", path))
		}
		res.Records[rec.GFN] = rec
	}
	return res, nil
}

func (a *Analyzer) analyzeOne(path string) (rec *Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = &PanicError{Value: r}
		}
	}()

	m, err := a.Extract.Extract(path)
	if err != nil {
		return nil, err
	}
	o := a.Resolver.Resolve(path)

	return &Record{
		File:     path,
		GFN:      o.String(),
		Darkness: m.Darkness,
		Width:    m.Width,
		Angle:    m.Angle,
		Preview:  m.Preview,
		Usage:    table.UsageUnknown,
	}, nil
}

func (a *Analyzer) report(ev Event) {
	if a.Progress != nil {
		a.Progress(ev)
	}
}
