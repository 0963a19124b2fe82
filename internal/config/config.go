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

// Package config holds the settings of the fontclass command.
//
// Settings can be read from a YAML file and are then overridden by command
// line flags:
//
//	files:
//	  - "fonts/ofl/*/*.ttf"
//	existing: font-metadata.csv
//	output: output.csv
//	exclude: [Lobster]
//	range: {min: 1, max: 10}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fontclass/measure"
	"seehuhn.de/go/fontclass/normalize"
)

// Config holds all settings of a classification run.
type Config struct {
	Files       []string `yaml:"files"`        // glob patterns for the font files
	Existing    string   `yaml:"existing"`     // earlier results, CSV or SQLite
	MissingOnly bool     `yaml:"missing_only"` // only classify fonts not in Existing
	Output      string   `yaml:"output"`       // output CSV file (default "output.csv")
	Database    string   `yaml:"database"`     // optional SQLite copy of the output

	Exclude []string `yaml:"exclude"` // extra exclusion patterns

	SampleText   string          `yaml:"sample_text"`
	FontSize     float64         `yaml:"font_size"` // pixels per em (default 30)
	Range        normalize.Range `yaml:"range"`     // classification scale (default 1..10)
	Preview      bool            `yaml:"preview"`
	PreviewWidth int             `yaml:"preview_width"` // default 600

	Addr string `yaml:"addr"` // listen address (default "127.0.0.1:5000")
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Output == "" {
		c.Output = "output.csv"
	}
	if c.SampleText == "" {
		c.SampleText = measure.DefaultText
	}
	if c.FontSize == 0 {
		c.FontSize = measure.DefaultSize
	}
	if c.Range == (normalize.Range{}) {
		c.Range = normalize.Default
	}
	if c.PreviewWidth == 0 {
		c.PreviewWidth = measure.DefaultPreviewWidth
	}
	if c.Addr == "" {
		c.Addr = "127.0.0.1:5000"
	}
}

// Load reads a configuration file.  Unknown keys are an error.
// Settings missing from the file get their default values.
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Parse decodes a YAML configuration.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	c.setDefaults()
	return c, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("invalid font size %g", c.FontSize)
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("invalid preview width %d", c.PreviewWidth)
	}
	if c.MissingOnly && c.Existing == "" {
		return errors.New("missing_only requires an existing results file")
	}
	return nil
}

// Extractor returns a measurement extractor using the configured sample
// text, size and preview settings.
func (c *Config) Extractor() *measure.Extractor {
	return &measure.Extractor{
		Text:         c.SampleText,
		Size:         c.FontSize,
		Preview:      c.Preview,
		PreviewWidth: c.PreviewWidth,
	}
}
