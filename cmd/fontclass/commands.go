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

package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/fontclass"
	"seehuhn.de/go/fontclass/internal/config"
	"seehuhn.de/go/fontclass/normalize"
	"seehuhn.de/go/fontclass/resolve"
	"seehuhn.de/go/fontclass/stats"
	"seehuhn.de/go/fontclass/store"
)

func reweighCommand() *cli.Command {
	return &cli.Command{
		Name:  "reweigh",
		Usage: "recompute the weight column of an existing results file",
		Flags: []cli.Flag{
			filesFlag,
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "existing results `FILE`"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "write the new results to `FILE`"},
		},
		Action: func(c *cli.Context) error {
			prior, err := store.ReadTable(c.Context, c.String("input"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "There are %d entries in the old results.\n", len(prior))

			cfg := config.Default()
			a := newAnalyzer(cfg, c.App.ErrWriter)
			out, err := fontclass.Reweigh(c.Context, c.StringSlice("files"), prior, cfg.Range, a)
			switch {
			case errors.Is(err, fontclass.ErrNoFiles), errors.Is(err, fontclass.ErrNoResults):
				return cli.Exit("Nothing to do! Aborting.", 1)
			case err != nil:
				return err
			}
			return store.WriteTable(c.Context, c.String("output"), out)
		},
	}
}

func gfnCommand() *cli.Command {
	return &cli.Command{
		Name:  "gfn",
		Usage: "print the identifier of each font file",
		Flags: []cli.Flag{filesFlag},
		Action: func(c *cli.Context) error {
			files, err := fontclass.Glob(c.StringSlice("files"))
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return cli.Exit("No font files were found!", 1)
			}
			ids := fontclass.Identify(files, resolve.New())
			for _, path := range slices.Sorted(maps.Keys(ids)) {
				fmt.Fprintf(c.App.Writer, "%s\t%s\n", path, ids[path])
			}
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "summarize the contents of a results file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "metadata", Aliases: []string{"m"}, Required: true, Usage: "results `FILE` (CSV or SQLite)"},
		},
		Action: func(c *cli.Context) error {
			t, err := store.ReadTable(c.Context, c.String("metadata"))
			if err != nil {
				return err
			}
			return stats.Compute(t, normalize.Default).Write(c.App.Writer)
		},
	}
}
