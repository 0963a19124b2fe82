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

// Package measure extracts visual metrics from font files.
//
// Darkness and width are obtained by rendering a fixed sample text at a fixed
// size, the italic angle is read from the font's metadata.  All values are
// only meaningful relative to other fonts measured with the same settings.
package measure

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	xsfnt "golang.org/x/image/font/sfnt"

	"seehuhn.de/go/fontclass/render"
)

// Defaults for the rendering parameters.
const (
	DefaultText         = "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvXxYyZz"
	DefaultSize         = 30
	DefaultPreviewWidth = 600
)

// Metrics are the raw measurements for one font file.
type Metrics struct {
	Darkness float64 // mean ink coverage in [0, 1]
	Width    int     // width of the rendered sample text, in pixels
	Angle    float64 // italic angle in degrees, negative for right-leaning

	// Preview is a base64 encoded PNG image of the sample text.  It is only
	// set if the Extractor was asked to generate previews.
	Preview string
}

// Extractor measures font files.
// The zero value uses the default sample text and size, and generates no
// previews.
type Extractor struct {
	Text string
	Size float64

	Preview      bool
	PreviewWidth int
}

func (e *Extractor) text() string {
	if e.Text == "" {
		return DefaultText
	}
	return e.Text
}

func (e *Extractor) size() float64 {
	if e.Size <= 0 {
		return DefaultSize
	}
	return e.Size
}

// Extract reads a font file and measures it.
func (e *Extractor) Extract(fname string) (*Metrics, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return e.ExtractData(data)
}

// ExtractData measures a font given as the contents of a font file.
func (e *Extractor) ExtractData(data []byte) (*Metrics, error) {
	f, err := render.Load(data)
	if err != nil {
		return nil, err
	}

	img, err := f.Render(e.text(), e.size())
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	m := &Metrics{
		Darkness: Darkness(img),
		Width:    b.Dx(),
		Angle:    angle(data, f),
	}

	if e.Preview {
		m.Preview, err = previewPNG(img, e.PreviewWidth)
		if err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
	}

	return m, nil
}

// Darkness returns the mean coverage of the alpha mask, as a value between 0
// (no ink) and 1 (all pixels fully covered).
func Darkness(img *image.Alpha) float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0
	}

	var hist [256]int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):][:w]
		for _, a := range row {
			hist[a]++
		}
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) / 255 * float64(n)
	}
	return sum / float64(w*h)
}

// angle returns the italic angle from the "post" table.  If the font cannot
// be parsed by golang.org/x/image, the value found by the rendering font
// loader is used instead.
func angle(data []byte, f *render.Font) float64 {
	xf, err := xsfnt.Parse(data)
	if err == nil {
		if post := xf.PostTable(); post != nil {
			return post.ItalicAngle
		}
	}
	return f.ItalicAngle
}

// previewPNG paints the coverage mask in black on white and returns the
// result as a base64 encoded PNG file.  Images wider than maxWidth are scaled
// down, preserving the aspect ratio.
func previewPNG(mask *image.Alpha, maxWidth int) (string, error) {
	b := mask.Bounds()
	canvas := image.NewNRGBA(b)
	draw.Draw(canvas, b, image.White, image.Point{}, draw.Src)
	draw.DrawMask(canvas, b, image.Black, image.Point{}, mask, b.Min, draw.Over)

	var out image.Image = canvas
	if maxWidth <= 0 {
		maxWidth = DefaultPreviewWidth
	}
	if b.Dx() > maxWidth {
		h := max(1, b.Dy()*maxWidth/b.Dx())
		small := image.NewNRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(small, small.Bounds(), canvas, b, draw.Src, nil)
		out = small
	}

	buf := &bytes.Buffer{}
	enc := base64.NewEncoder(base64.StdEncoding, buf)
	err := png.Encode(enc, out)
	if err != nil {
		return "", err
	}
	err = enc.Close()
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
