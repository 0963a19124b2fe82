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

// Package resolve determines the identifier of a font file.
//
// Several sources of information are tried in turn, and the first one which
// yields an identifier wins:
//
//  1. the METADATA.pb file in the font's directory,
//  2. the file names of all fonts in the directory,
//  3. the family and subfamily names stored inside the font.
//
// If none of these succeeds, the font is reported as [gfn.Unknown].
package resolve

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/fontclass/gfn"
	"seehuhn.de/go/fontclass/internal/logging"
)

// Outcome is the result of one attempt to identify a font.
// Either ID is set, or Reason explains why no identifier was found.
type Outcome struct {
	ID     gfn.GFN
	Source string
	Reason error
}

// Resolved reports whether an identifier was found.
func (o Outcome) Resolved() bool {
	return o.Reason == nil && !o.ID.IsZero()
}

// String returns the identifier, or [gfn.Unknown] if none was found.
func (o Outcome) String() string {
	if !o.Resolved() {
		return gfn.Unknown
	}
	return o.ID.String()
}

// A Strategy is one source of font identifiers.
type Strategy interface {
	Resolve(path string) Outcome
}

// Resolver tries a list of strategies in order.
type Resolver struct {
	Strategies []Strategy
}

// New returns a resolver which uses the sidecar metadata, the naming
// convention and the font's name table, in this order.
func New() *Resolver {
	return &Resolver{
		Strategies: []Strategy{NewSidecar(), NewNaming(), NameTable{}},
	}
}

// Resolve returns the outcome of the first successful strategy.  If all
// strategies fail, the returned outcome has no identifier and its Reason
// combines the reasons given by all strategies.
func (r *Resolver) Resolve(path string) Outcome {
	log := logging.Logger()

	var reasons []error
	for _, s := range r.Strategies {
		o := s.Resolve(path)
		if o.Resolved() {
			if o.Source == SourceNameTable {
				log.Info("identifier taken from name table",
					slog.String("gfn", o.ID.String()),
					slog.String("file", path))
			}
			return o
		}
		if o.Reason != nil {
			reasons = append(reasons, o.Reason)
		}
	}

	err := errors.Join(reasons...)
	if err == nil {
		err = errNoStrategy
	}
	log.Warn("cannot identify font, using \""+gfn.Unknown+"\"",
		slog.String("file", path),
		slog.Any("err", err))
	return Outcome{Reason: err}
}

// GFN returns the identifier of the font file at path, or [gfn.Unknown].
func (r *Resolver) GFN(path string) string {
	return r.Resolve(path).String()
}

// Names of the identifier sources, used in [Outcome.Source].
const (
	SourceSidecar   = "sidecar"
	SourceNaming    = "filename"
	SourceNameTable = "name table"
)

var (
	// ErrNoSidecar indicates that the font's directory has no metadata file.
	ErrNoSidecar = errors.New("no metadata file")

	// ErrNotListed indicates that the metadata file does not mention the
	// font.
	ErrNotListed = errors.New("font not listed in metadata file")

	// ErrAmbiguousFamily indicates that the file names in a directory
	// belong to more than one family.
	ErrAmbiguousFamily = errors.New("ambiguous family name in directory")

	// ErrNoFamilyName indicates that the font's name table has no usable
	// family name.
	ErrNoFamilyName = errors.New("no family name in name table")

	errNoStrategy = errors.New("no identification strategy configured")
)
