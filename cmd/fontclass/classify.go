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
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"seehuhn.de/go/fontclass"
	"seehuhn.de/go/fontclass/exclude"
	"seehuhn.de/go/fontclass/internal/config"
	"seehuhn.de/go/fontclass/internal/logging"
	"seehuhn.de/go/fontclass/internal/profile"
	"seehuhn.de/go/fontclass/resolve"
	"seehuhn.de/go/fontclass/server"
	"seehuhn.de/go/fontclass/store"
	"seehuhn.de/go/fontclass/table"
)

func classifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "classify",
		Usage: "measure and classify font files",
		Flags: []cli.Flag{
			filesFlag,
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "read settings from YAML `FILE`"},
			&cli.StringFlag{Name: "existing", Aliases: []string{"e"}, Usage: "earlier results (CSV or SQLite `FILE`)"},
			&cli.BoolFlag{Name: "missing-only", Aliases: []string{"m"}, Usage: "only classify fonts missing from the existing results"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write the results to CSV `FILE`"},
			&cli.StringFlag{Name: "database", Usage: "also store the results in SQLite `FILE`"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "skip files whose path contains `TEXT`"},
			&cli.IntFlag{Name: "range-min", Usage: "smallest classification value"},
			&cli.IntFlag{Name: "range-max", Usage: "largest classification value"},
			&cli.BoolFlag{Name: "debug", Usage: "print the raw measurements instead of writing output"},
			&cli.BoolFlag{Name: "serve", Usage: "start the web interface for editing the results"},
			&cli.StringFlag{Name: "addr", Usage: "listen `ADDRESS` for the web interface"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "write cpu profile to `FILE`"},
			&cli.StringFlag{Name: "memprofile", Usage: "write memory profile to `FILE`"},
		},
		Action: runClassify,
	}
}

// loadConfig reads the configuration file, if any, and applies the command
// line flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if fname := c.String("config"); fname != "" {
		var err error
		cfg, err = config.Load(fname)
		if err != nil {
			return nil, err
		}
	}

	if c.IsSet("files") {
		cfg.Files = c.StringSlice("files")
	}
	if c.IsSet("existing") {
		cfg.Existing = c.String("existing")
	}
	if c.IsSet("missing-only") {
		cfg.MissingOnly = c.Bool("missing-only")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("database") {
		cfg.Database = c.String("database")
	}
	cfg.Exclude = append(cfg.Exclude, c.StringSlice("exclude")...)
	if c.IsSet("range-min") {
		cfg.Range.Min = c.Int("range-min")
	}
	if c.IsSet("range-max") {
		cfg.Range.Max = c.Int("range-max")
	}
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.Bool("serve") {
		cfg.Preview = true
	}

	if len(cfg.Files) == 0 {
		return nil, cli.Exit("no font files given, use --files", 1)
	}
	return cfg, cfg.Validate()
}

func newAnalyzer(cfg *config.Config, progress io.Writer) *fontclass.Analyzer {
	return &fontclass.Analyzer{
		Exclude:  exclude.New(cfg.Exclude...),
		Resolver: resolve.New(),
		Extract:  cfg.Extractor(),
		Progress: progressPrinter(progress),
	}
}

func runClassify(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	stop, err := profile.Start(c.String("cpuprofile"), c.String("memprofile"))
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			logging.Logger().Error("profiling", slog.Any("err", err))
		}
	}()

	var existing table.Table
	if cfg.Existing != "" {
		existing, err = store.ReadTable(c.Context, cfg.Existing)
		if err != nil {
			return err
		}
	}

	rep, err := fontclass.Classify(c.Context, &fontclass.Options{
		Patterns:    cfg.Files,
		Existing:    existing,
		MissingOnly: cfg.MissingOnly,
		Range:       cfg.Range,
		Analyzer:    newAnalyzer(cfg, c.App.ErrWriter),
	})
	switch {
	case errors.Is(err, fontclass.ErrNoFiles):
		return cli.Exit("No font files were found!", 1)
	case errors.Is(err, fontclass.ErrNoResults):
		printExcluded(c.App.ErrWriter, rep.Excluded)
		return cli.Exit("All specified fonts are excluded or failed!", 1)
	case err != nil:
		return err
	}

	if len(rep.Rejected) > 0 {
		fmt.Fprintln(c.App.Writer, "These files were removed from the list:")
		for _, r := range rep.Rejected {
			fmt.Fprintln(c.App.Writer, r)
		}
	}

	if c.Bool("debug") {
		return printRecords(c.App.Writer, fontclass.Sorted(rep.Records))
	}

	save := func(t table.Table) error {
		err := table.WriteFile(cfg.Output, t)
		if err != nil {
			return err
		}
		if cfg.Database != "" {
			return store.WriteTable(c.Context, cfg.Database, t)
		}
		return nil
	}
	err = save(rep.Rows())
	if err != nil {
		return err
	}
	logging.Logger().Info("results written",
		slog.String("output", cfg.Output),
		slog.Int("fonts", len(rep.Rows())))

	printExcluded(c.App.ErrWriter, rep.Excluded)

	if !c.Bool("serve") {
		return nil
	}
	srv := server.New(fontclass.Sorted(rep.Records), save)
	fmt.Fprintf(c.App.ErrWriter, "\n\nAccess http://%s/\n\n", cfg.Addr)
	return srv.ListenAndServe(c.Context, cfg.Addr)
}

// progressPrinter returns a callback which prints one line per file.
// On a terminal, long lines are shortened to the terminal width.
func progressPrinter(w io.Writer) func(fontclass.Event) {
	width := 0
	if f, ok := w.(*os.File); ok && logging.IsTerminal(w) {
		width, _, _ = term.GetSize(int(f.Fd()))
	}

	return func(ev fontclass.Event) {
		var suffix string
		switch ev.State {
		case fontclass.Started:
			suffix = "..."
		case fontclass.Excluded:
			suffix = " EXCLUDED!"
		case fontclass.Failed:
			suffix = " FAILED: " + ev.Err.Error()
		}
		prefix := fmt.Sprintf("[%d/%d] ", ev.Index, ev.Total)
		fmt.Fprintln(w, shorten(prefix+ev.Path+suffix, width))
	}
}

// shorten truncates s to at most width runes, replacing the tail by "...".
// A width of zero or less means unlimited.
func shorten(s string, width int) string {
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func printExcluded(w io.Writer, excluded []string) {
	if len(excluded) == 0 {
		return
	}
	fmt.Fprintf(w, "%d excluded font files:\n\n", len(excluded))
	for _, fname := range excluded {
		fmt.Fprintf(w, "* %s\n", fname)
	}
}

func printRecords(w io.Writer, records []*fontclass.Record) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{
		"FILE", "WEIGHT", "WEIGHT_INT", "WIDTH", "WIDTH_INT",
		"ANGLE", "ANGLE_INT", "USAGE", "GFN",
	}, "\t"))
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%.4f\t%d\t%d\t%d\t%.2f\t%d\t%s\t%s\n",
			r.File, r.Darkness, r.WeightScaled, r.Width, r.WidthScaled,
			r.Angle, r.AngleScaled, r.Usage, r.GFN)
	}
	return tw.Flush()
}
