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

// Package exclude holds the list of font files which must not be measured.
//
// Some fonts make the rendering code misbehave badly enough (infinite loops,
// stack overflows, empty glyph sets) that they have to be skipped before any
// attempt is made to open them.
package exclude

import "strings"

// Pattern is one entry of an exclusion list.  A file is excluded if its path
// contains Text as a substring.
type Pattern struct {
	Text   string
	Reason string
}

// Defaults are the families known to break the measurement.
var Defaults = []Pattern{
	{"Padauk", "rendering takes too long"},
	{"KumarOne", "rendering takes too long"},
	{"AdobeBlank", "zero size rendering"},
	{"Phetsarath", "zero size rendering"},
	{"Corben", "invalid glyph reference"},
	{"Rubik", "stack overflow while measuring"},
}

// List is an exclusion list.  A nil *List excludes nothing.
type List struct {
	patterns []Pattern
}

// New returns a list with the default patterns, followed by the given extra
// patterns.
func New(extra ...string) *List {
	l := &List{patterns: append([]Pattern(nil), Defaults...)}
	for _, text := range extra {
		l.Add(text, "")
	}
	return l
}

// Add appends a pattern to the list.  Empty patterns are ignored, since they
// would match every file.
func (l *List) Add(text, reason string) {
	if text == "" {
		return
	}
	l.patterns = append(l.patterns, Pattern{Text: text, Reason: reason})
}

// Match reports whether path is excluded.  If so, the first matching pattern
// is returned.
func (l *List) Match(path string) (Pattern, bool) {
	if l == nil {
		return Pattern{}, false
	}
	for _, p := range l.patterns {
		if strings.Contains(path, p.Text) {
			return p, true
		}
	}
	return Pattern{}, false
}

// Patterns returns a copy of the patterns in the list.
func (l *List) Patterns() []Pattern {
	if l == nil {
		return nil
	}
	return append([]Pattern(nil), l.patterns...)
}
