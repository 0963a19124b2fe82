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

// Package server provides a web interface for reviewing and correcting
// classification results.
//
// The page served at "/" shows all classified fonts in an editable grid.
// Every edit is sent to "/update", applied to the in-memory results, and the
// complete output table is saved again.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"seehuhn.de/go/fontclass"
	"seehuhn.de/go/fontclass/gfn"
	"seehuhn.de/go/fontclass/internal/logging"
	"seehuhn.de/go/fontclass/table"
)

//go:embed static/index.html
var static embed.FS

// SaveFunc persists the complete output table.
type SaveFunc func(table.Table) error

// Entry is one row of the grid.
type Entry struct {
	ID int

	File    string
	GFN     string
	Preview string

	Weight    float64
	WeightInt int
	Width     int
	WidthInt  int
	Angle     float64
	AngleInt  int
	Usage     string
}

// Row returns the output table row for the entry.
func (e *Entry) Row() table.Row {
	return table.Row{
		GFN:    e.GFN,
		Weight: e.WeightInt,
		Angle:  e.AngleInt,
		Width:  e.WidthInt,
		Usage:  e.Usage,
	}
}

func (e *Entry) values() map[string]any {
	image := ""
	if e.Preview != "" {
		image = "<img height='50%' src='data:image/png;base64," + e.Preview + "' />"
	}
	return map[string]any{
		"fontfile":   e.File,
		"gfn":        e.GFN,
		"weight":     e.Weight,
		"weight_int": e.WeightInt,
		"width":      e.Width,
		"width_int":  e.WidthInt,
		"usage":      e.Usage,
		"angle":      e.Angle,
		"angle_int":  e.AngleInt,
		"image":      image,
	}
}

// Server holds the results shown in the web interface.
// All methods are safe for concurrent use.
type Server struct {
	mu      sync.Mutex
	entries []*Entry
	save    SaveFunc

	echo *echo.Echo
}

// New creates a server for the given records.  Unidentified fonts are not
// shown.  Entries are numbered from 1 in the order of the records.
func New(records []*fontclass.Record, save SaveFunc) *Server {
	s := &Server{save: save}
	for _, r := range records {
		if r.GFN == gfn.Unknown {
			continue
		}
		s.entries = append(s.entries, &Entry{
			ID:        len(s.entries) + 1,
			File:      r.File,
			GFN:       r.GFN,
			Preview:   r.Preview,
			Weight:    r.Darkness,
			WeightInt: r.WeightScaled,
			Width:     r.Width,
			WidthInt:  r.WidthScaled,
			Angle:     r.Angle,
			AngleInt:  r.AngleScaled,
			Usage:     r.Usage,
		})
	}
	s.echo = s.newEcho()
	return s
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logging.Logger().Debug("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency))
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/", s.handleIndex)
	e.GET("/data.json", s.handleData)
	e.POST("/update", s.handleUpdate)
	return e
}

// Handler returns the HTTP handler of the web interface.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// ListenAndServe serves the web interface on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.echo.Start(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.echo.Shutdown(shutdownCtx)
	if startErr := <-errc; !errors.Is(startErr, http.ErrServerClosed) && err == nil {
		err = startErr
	}
	return err
}

// Rows returns the current output table, sorted by identifier.
func (s *Server) Rows() table.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowsLocked()
}

func (s *Server) rowsLocked() table.Table {
	t := make(table.Table, 0, len(s.entries))
	for _, e := range s.entries {
		t = append(t, e.Row())
	}
	t.Sort()
	return t
}

func (s *Server) handleIndex(c echo.Context) error {
	data, err := static.ReadFile("static/index.html")
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, data)
}

type column struct {
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Datatype string            `json:"datatype"`
	Editable bool              `json:"editable"`
	Values   map[string]string `json:"values,omitempty"`
}

const double = "double(, 2, dot, comma, 0, n/a)"

var columns = []column{
	{Name: "fontfile", Label: "filename", Datatype: "string"},
	{Name: "gfn", Label: "GFN", Datatype: "string", Editable: true},
	{Name: "weight", Label: "weight", Datatype: double},
	{Name: "weight_int", Label: "WEIGHT_INT", Datatype: "integer", Editable: true},
	{Name: "width", Label: "width", Datatype: "integer"},
	{Name: "width_int", Label: "WIDTH_INT", Datatype: "integer", Editable: true},
	{Name: "usage", Label: "USAGE", Datatype: "string", Editable: true,
		Values: map[string]string{
			table.UsageHeader:  table.UsageHeader,
			table.UsageBody:    table.UsageBody,
			table.UsageUnknown: table.UsageUnknown,
		}},
	{Name: "angle", Label: "angle", Datatype: double},
	{Name: "angle_int", Label: "ANGLE_INT", Datatype: "integer", Editable: true},
	{Name: "image", Label: "image", Datatype: "html"},
}

type gridRow struct {
	ID     int            `json:"id"`
	Values map[string]any `json:"values"`
}

type gridData struct {
	Metadata []column  `json:"metadata"`
	Data     []gridRow `json:"data"`
}

func (s *Server) handleData(c echo.Context) error {
	s.mu.Lock()
	res := &gridData{
		Metadata: columns,
		Data:     make([]gridRow, 0, len(s.entries)),
	}
	for _, e := range s.entries {
		res.Data = append(res.Data, gridRow{ID: e.ID, Values: e.values()})
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleUpdate(c echo.Context) error {
	id, err := strconv.Atoi(c.FormValue("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid row id")
	}
	colname := c.FormValue("colname")
	newvalue := c.FormValue("newvalue")

	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 1 || id > len(s.entries) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no row %d", id))
	}
	e := s.entries[id-1]

	err = setField(e, colname, newvalue)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	logging.Logger().Info("updated",
		slog.Int("id", id),
		slog.String("gfn", e.GFN),
		slog.String("column", colname),
		slog.String("value", newvalue))

	if s.save != nil {
		err = s.save(s.rowsLocked())
		if err != nil {
			return fmt.Errorf("saving results: %w", err)
		}
	}
	return c.String(http.StatusOK, "ok")
}

func setField(e *Entry, colname, value string) error {
	var dst *int
	switch colname {
	case "gfn":
		if value == "" {
			return errors.New("empty identifier")
		}
		e.GFN = value
		return nil
	case "usage":
		if value == "" {
			return errors.New("empty usage")
		}
		e.Usage = value
		return nil
	case "weight_int":
		dst = &e.WeightInt
	case "width_int":
		dst = &e.WidthInt
	case "angle_int":
		dst = &e.AngleInt
	default:
		return fmt.Errorf("column %q is not editable", colname)
	}

	x, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("column %q: %q is not an integer", colname, value)
	}
	*dst = x
	return nil
}
