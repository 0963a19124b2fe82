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

// Package normalize maps raw measurements onto a small integer scale.
package normalize

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Range is a closed interval of integers.
type Range struct {
	Min, Max int
}

// Default is the classification scale used when nothing else is configured.
var Default = Range{Min: 1, Max: 10}

// Validate checks that the range is not empty.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("invalid range %d..%d", r.Min, r.Max)
	}
	return nil
}

// Clamp returns the element of r closest to x.
func (r Range) Clamp(x int) int {
	return max(r.Min, min(r.Max, x))
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Scale maps values linearly onto r.  The smallest value maps to r.Min and
// the largest to r.Max.  Values in between are truncated towards r.Min, not
// rounded, so r.Max is only reached by the largest input.
//
// If all values are equal, every output is the common value truncated to an
// integer and clamped to r.  NaN inputs map to r.Min and are ignored when
// finding the smallest and largest value.
//
// The output has the same length and order as the input, and every output
// lies in r.
func Scale[T constraints.Integer | constraints.Float](values []T, r Range) []int {
	res := make([]int, len(values))

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		x := float64(v)
		if math.IsNaN(x) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	span := float64(r.Max - r.Min)
	for i, v := range values {
		x := float64(v)
		switch {
		case math.IsNaN(x):
			res[i] = r.Min
		case lo == hi:
			res[i] = r.clampFloat(x)
		case x == hi:
			res[i] = r.Max
		default:
			// NaN for infinite lo, mapped to r.Min by clampFloat
			res[i] = r.clampFloat(float64(r.Min) + math.Trunc(span*((x-lo)/(hi-lo))))
		}
	}
	return res
}

// clampFloat returns the element of r closest to x, truncating towards zero.
// NaN maps to r.Min.
func (r Range) clampFloat(x float64) int {
	if math.IsNaN(x) {
		return r.Min
	}
	x = math.Max(float64(r.Min), math.Min(float64(r.Max), x))
	return int(x)
}
