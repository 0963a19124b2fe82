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
	"path/filepath"
	"sync"

	"seehuhn.de/go/fontclass/sidecar"
)

// Sidecar identifies fonts using the METADATA.pb file next to the font.
// Metadata files are read once per directory.
type Sidecar struct {
	mu    sync.Mutex
	cache map[string]sidecarEntry
}

type sidecarEntry struct {
	family *sidecar.Family
	err    error
}

// NewSidecar returns a new sidecar strategy.
func NewSidecar() *Sidecar {
	return &Sidecar{cache: make(map[string]sidecarEntry)}
}

func (s *Sidecar) read(dir string) (*sidecar.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.cache[dir]; ok {
		return e.family, e.err
	}
	family, err := sidecar.Read(dir)
	s.cache[dir] = sidecarEntry{family: family, err: err}
	return family, err
}

// Resolve implements the [Strategy] interface.
func (s *Sidecar) Resolve(path string) Outcome {
	dir, base := filepath.Split(path)
	family, err := s.read(filepath.Clean(dir))
	if err != nil {
		return Outcome{Source: SourceSidecar, Reason: fmt.Errorf("%s: %w", sidecar.FileName, err)}
	}
	if family == nil {
		return Outcome{Source: SourceSidecar, Reason: ErrNoSidecar}
	}

	font, ok := family.Lookup(base)
	if !ok {
		return Outcome{Source: SourceSidecar, Reason: ErrNotListed}
	}
	return Outcome{ID: family.GFN(font), Source: SourceSidecar}
}
