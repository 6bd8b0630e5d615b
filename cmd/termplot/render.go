package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"charm.land/log/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/midbel/termcharts"
	"golang.org/x/sync/errgroup"
)

type drawFunc func(table, charts.Config) (*charts.Chart, error)

type result struct {
	Table table
	Chart *charts.Chart
}

// render loads every input, draws them concurrently and writes the charts in
// the order the inputs were given.
func render(logger *log.Logger, opts PlotOptions, files []string, draw drawFunc) error {
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if err := opts.Check(); err != nil {
		return err
	}
	rs, err := opts.Reader()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		files = append(files, stdinName)
	}
	var (
		results = make([]result, len(files))
		grp     errgroup.Group
	)
	grp.SetLimit(max(opts.Jobs, 1))
	for i, file := range files {
		grp.Go(func() error {
			now := time.Now()
			t, err := load(rs, opts, file)
			if err != nil {
				return err
			}
			cfg := opts.Config
			if cfg.Title == "" && len(files) > 1 {
				cfg.Title = t.Name
			}
			ch, err := draw(t, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", t.Name, err)
			}
			logger.Debug("chart rendered", "input", t.Name, "rows", len(t.Rows), "elapsed", time.Since(now))
			results[i] = result{
				Table: t,
				Chart: ch,
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	return output(logger, opts, results)
}

func load(rs reader, opts PlotOptions, file string) (table, error) {
	if isFunction(file) {
		return sampleFunction(file, opts.Range, opts.Points)
	}
	return rs.Open(file)
}

func output(logger *log.Logger, opts PlotOptions, results []result) error {
	var w io.Writer = os.Stdout
	if opts.PassData {
		w = os.Stderr
	}
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	var (
		cw      = colorprofile.NewWriter(w, os.Environ())
		painter = charts.Styled()
	)
	if opts.ForceColor && cw.Profile < colorprofile.ANSI256 {
		cw.Profile = colorprofile.TrueColor
	}
	if opts.NoColor {
		painter = charts.Plain()
	}
	logger.Debug("output ready", "profile", cw.Profile)
	for i, r := range results {
		for _, msg := range r.Chart.Warnings {
			logger.Warn(msg, "input", r.Table.Name)
		}
		if opts.PassData {
			if err := passData(os.Stdout, r.Table); err != nil {
				return err
			}
		}
		if i > 0 {
			io.WriteString(cw, "\n")
		}
		if _, err := io.WriteString(cw, r.Chart.Format(painter)); err != nil {
			return err
		}
	}
	return nil
}

func passData(w io.Writer, t table) error {
	if len(t.Raw) > 0 {
		_, err := w.Write(t.Raw)
		return err
	}
	if len(t.Headers) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(t.Headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
