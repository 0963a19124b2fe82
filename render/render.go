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

// Package render rasterizes lines of text set in a font file.
//
// Glyph outlines are read with seehuhn.de/go/sfnt and converted to an
// anti-aliased coverage mask by golang.org/x/image/vector.  No shaping is
// applied: characters are mapped to glyphs through the font's cmap table and
// placed next to each other using their advance widths.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// MaxCanvas is the largest canvas width or height, in pixels, which Render
// will allocate.
const MaxCanvas = 1 << 14

var (
	// ErrEmptyText is returned when the rendered text has no extent, for
	// example for fonts where all glyphs have zero advance width.
	ErrEmptyText = errors.New("render: text has empty bounding box")

	errNoOutlines = errors.New("render: font has no glyph outlines")
)

// Font is a font file loaded for rendering.
type Font struct {
	*sfnt.Font
}

// Open reads a TrueType or OpenType font file.
func Open(fname string) (*Font, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return &Font{Font: info}, nil
}

// Load parses a font from memory.
func Load(data []byte) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Font{Font: info}, nil
}

// Line is a laid out line of text.
// All lengths are in pixels.
type Line struct {
	Glyphs []glyph.ID
	X      []float64 // pen position of each glyph

	Advance float64 // total advance width
	Ascent  float64 // distance from the top of the line to the baseline
	Descent float64 // distance from the baseline to the bottom, positive

	scale float64 // pixels per font design unit
}

// Bounds returns the pixel rectangle covered by the line.
func (l *Line) Bounds() image.Rectangle {
	w := int(math.Ceil(l.Advance))
	h := int(math.Ceil(l.Ascent + l.Descent))
	return image.Rect(0, 0, w, h)
}

// Layout places the glyphs for text at the given size, in pixels per em.
func (f *Font) Layout(text string, size float64) (*Line, error) {
	if f.CMapTable == nil {
		return nil, fmt.Errorf("render: %s: no cmap table", f.PostScriptName())
	}
	cmap, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", f.PostScriptName(), err)
	}

	upem := float64(f.UnitsPerEm)
	if upem <= 0 {
		return nil, fmt.Errorf("render: %s: invalid unitsPerEm %d",
			f.PostScriptName(), f.UnitsPerEm)
	}

	l := &Line{
		Ascent:  float64(f.Ascent) * size / upem,
		Descent: -float64(f.Descent) * size / upem,
		scale:   size / upem,
	}
	for _, r := range text {
		gid := cmap.Lookup(r)
		l.Glyphs = append(l.Glyphs, gid)
		l.X = append(l.X, l.Advance)
		// glyph widths are given in PDF glyph space units (1/1000 em)
		l.Advance += f.GlyphWidthPDF(gid) * size / 1000
	}
	return l, nil
}

// Render draws text at the given size onto a transparent canvas which has
// exactly the size of the line's bounding box.  The alpha channel of the
// result gives the ink coverage of each pixel.
func (f *Font) Render(text string, size float64) (*image.Alpha, error) {
	if f.Outlines == nil {
		return nil, errNoOutlines
	}

	l, err := f.Layout(text, size)
	if err != nil {
		return nil, err
	}

	bbox := l.Bounds()
	w, h := bbox.Dx(), bbox.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyText
	}
	if w > MaxCanvas || h > MaxCanvas {
		return nil, fmt.Errorf("render: canvas %dx%d too large", w, h)
	}

	raster := vector.NewRasterizer(w, h)
	for i, gid := range l.Glyphs {
		// glyph space -> device pixels, with the y axis pointing down
		m := matrix.Matrix{l.scale, 0, 0, -l.scale, l.X[i], l.Ascent}
		aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
		for cmd, points := range f.Outlines.Path(gid) {
			switch cmd {
			case geompath.CmdMoveTo:
				x, y := apply(aff, points[0])
				raster.MoveTo(x, y)
			case geompath.CmdLineTo:
				x, y := apply(aff, points[0])
				raster.LineTo(x, y)
			case geompath.CmdQuadTo:
				x1, y1 := apply(aff, points[0])
				x2, y2 := apply(aff, points[1])
				raster.QuadTo(x1, y1, x2, y2)
			case geompath.CmdCubeTo:
				x1, y1 := apply(aff, points[0])
				x2, y2 := apply(aff, points[1])
				x3, y3 := apply(aff, points[2])
				raster.CubeTo(x1, y1, x2, y2, x3, y3)
			case geompath.CmdClose:
				raster.ClosePath()
			}
		}
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	raster.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img, nil
}

func apply(m f64.Aff3, v vec.Vec2) (float32, float32) {
	x := m[0]*v.X + m[1]*v.Y + m[2]
	y := m[3]*v.X + m[4]*v.Y + m[5]
	return float32(x), float32(y)
}
