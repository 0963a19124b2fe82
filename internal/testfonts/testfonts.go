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

// Package testfonts provides real TrueType fonts for use in tests.
//
// The fonts are the members of the Go font family.  They can be written to
// disk under arbitrary file names, so that tests can build directory trees
// which follow the Google Fonts naming conventions.
package testfonts

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts.
const (
	Regular    Font = iota // Go Regular, OS/2 weight 400
	Bold                   // Go Bold (name table "Bold"), OS/2 weight 600
	BoldItalic             // Go Bold Italic, italic angle -11
	Italic                 // Go Italic, italic angle -11
	Medium                 // Go Medium, OS/2 weight 500
	Mono                   // Go Mono
)

var ttf = map[Font][]byte{
	Regular:    goregular.TTF,
	Bold:       gobold.TTF,
	BoldItalic: gobolditalic.TTF,
	Italic:     goitalic.TTF,
	Medium:     gomedium.TTF,
	Mono:       gomono.TTF,
}

// TTF returns the font file contents.
func (f Font) TTF() []byte {
	return ttf[f]
}

// Write stores the font under dir/name and returns the full path.
// Missing parent directories are created.
func (f Font) Write(t testing.TB, dir, name string) string {
	t.Helper()

	fname := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(fname), 0o755)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(fname, f.TTF(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

// Family writes a set of fonts into dir.  The map keys are file names.
// The returned paths are in the order of the sorted file names.
func Family(t testing.TB, dir string, files map[string]Font) []string {
	t.Helper()

	var paths []string
	for name, f := range files {
		paths = append(paths, f.Write(t, dir, name))
	}
	slices.Sort(paths)
	return paths
}
