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

package resolve

import (
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"seehuhn.de/go/fontclass/gfn"
	"seehuhn.de/go/fontclass/internal/logging"
)

// Naming identifies fonts by the "Family-StyleWeight.ttf" naming convention.
//
// All font files in the directory of the font are considered.  If any of
// them does not follow the convention, or if they do not all belong to the
// same family, no font in the directory is identified.
type Naming struct {
	mu    sync.Mutex
	cache map[string]namingEntry
}

type namingEntry struct {
	ids map[string]gfn.GFN // base name -> identifier
	err error
}

// NewNaming returns a new naming convention strategy.
func NewNaming() *Naming {
	return &Naming{cache: make(map[string]namingEntry)}
}

// Resolve implements the [Strategy] interface.
func (n *Naming) Resolve(path string) Outcome {
	dir, base := filepath.Split(path)
	ids, err := n.scan(filepath.Clean(dir))
	if err != nil {
		return Outcome{Source: SourceNaming, Reason: err}
	}
	id, ok := ids[base]
	if !ok {
		// The file itself may have an extension not covered by the scan.
		id, err = gfn.ParseFilename(path)
		if err != nil {
			return Outcome{Source: SourceNaming, Reason: err}
		}
	}
	return Outcome{ID: id, Source: SourceNaming}
}

func (n *Naming) scan(dir string) (map[string]gfn.GFN, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if e, ok := n.cache[dir]; ok {
		return e.ids, e.err
	}
	ids, err := scanDir(dir)
	n.cache[dir] = namingEntry{ids: ids, err: err}
	return ids, err
}

func scanDir(dir string) (map[string]gfn.GFN, error) {
	var files []string
	for _, pattern := range []string{"*.ttf", "*.otf"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no font files", dir)
	}

	ids := make(map[string]gfn.GFN, len(files))
	families := make(map[string]bool)
	for _, fname := range files {
		id, err := gfn.ParseFilename(fname)
		if err != nil {
			return nil, err
		}
		ids[filepath.Base(fname)] = id
		families[id.Family] = true
	}

	if len(families) > 1 {
		names := slices.Sorted(maps.Keys(families))
		logging.Logger().Debug("ambiguous family name",
			slog.String("dir", dir),
			slog.Any("families", names))
		return nil, fmt.Errorf("%s: %w: %q", dir, ErrAmbiguousFamily, names)
	}
	return ids, nil
}
