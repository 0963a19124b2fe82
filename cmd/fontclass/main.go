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

// Command fontclass classifies font files by weight, width and slant.
//
// Usage:
//
//	fontclass classify --files 'fonts/ofl/*/*.ttf' [--existing old.csv] [--serve]
//	fontclass reweigh --files 'fonts/ofl/*/*.ttf' --input old.csv --output new.csv
//	fontclass gfn --files 'fonts/ofl/lobster/*.ttf'
//	fontclass stats --metadata output.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/fontclass/internal/buildinfo"
	"seehuhn.de/go/fontclass/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newApp().RunContext(ctx, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "fontclass",
		Usage:   "classify fonts by visual weight, width and slant",
		Version: buildinfo.Version(),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.BoolFlag{Name: "verbose", Usage: "log debug messages"},
		},
		Before: func(c *cli.Context) error {
			level := logging.Level(c.Bool("quiet"), c.Bool("verbose"))
			logging.SetLogger(logging.New(c.App.ErrWriter, level))
			return nil
		},
		Commands: []*cli.Command{
			classifyCommand(),
			reweighCommand(),
			gfnCommand(),
			statsCommand(),
		},
	}
}

var filesFlag = &cli.StringSliceFlag{
	Name:    "files",
	Aliases: []string{"f"},
	Usage:   "glob `PATTERN` for the font files (repeatable)",
}
