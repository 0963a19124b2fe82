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
	"errors"
	"fmt"
)

var (
	// ErrNoFiles is returned when the file patterns match no files.
	ErrNoFiles = errors.New("no font files were found")

	// ErrNoResults is returned when every font file was excluded or could
	// not be measured.
	ErrNoResults = errors.New("all specified fonts were excluded or failed")

	// ErrNeedExisting is returned when only missing fonts are to be
	// processed, but no earlier results were given.
	ErrNeedExisting = errors.New("missing-only mode requires existing results")
)

// Failure records a font file which could not be measured.
type Failure struct {
	File string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.File, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// PanicError is used for panics which occurred while measuring a font.
type PanicError struct {
	Value any
}

func (err *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", err.Value)
}
