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

// Package fontclass classifies fonts by visual weight, width and slant.
//
// A batch of font files is measured by rendering a sample text, each font is
// given an identifier of the form "Family:style:weight", and the raw
// measurements are mapped onto a small integer scale (1 to 10 by default),
// so that fonts can be compared with each other:
//
//	a := &fontclass.Analyzer{
//	    Exclude:  exclude.New(),
//	    Resolver: resolve.New(),
//	    Extract:  &measure.Extractor{},
//	}
//	res, err := a.Analyze(ctx, files)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fontclass.Normalize(res.Records, normalize.Default)
//	err = table.WriteFile("output.csv", fontclass.Rows(res.Records))
//
// Results from an earlier run can be used in two ways.  [FilterMissing]
// removes fonts which were already classified before the analysis, and
// [Overlay] copies manually curated values from the earlier run into the
// new results.  [Classify] runs the complete pipeline.
package fontclass
