package main

import (
	"strconv"

	"charm.land/log/v2"
	"github.com/midbel/cli"
	"github.com/midbel/termcharts"
	"github.com/midbel/termcharts/stats"
)

type LineCommand struct {
	PlotOptions
	Style      string
	HidePoints bool
	Logger     *log.Logger
}

func (c LineCommand) Run(args []string) error {
	c.PlotOptions = defaultOptions()
	set := cli.NewFlagSet("line")
	c.Register(set)
	set.StringVar(&c.Style, "style", "default", "line style")
	set.BoolVar(&c.HidePoints, "no-points", false, "only draw lines")
	if err := set.Parse(args); err != nil {
		return err
	}
	style, err := charts.ParseLineStyle(c.Style)
	if err != nil {
		return err
	}
	format, err := charts.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	opts := charts.LineOptions{
		Style:      style,
		HidePoints: c.HidePoints,
		Format:     format,
	}
	draw := func(t table, cfg charts.Config) (*charts.Chart, error) {
		df, err := t.Frame(0)
		if err != nil {
			return nil, err
		}
		axisLabels(t, &cfg, format)
		return charts.LineChart(df, cfg, opts)
	}
	return render(c.Logger, c.PlotOptions, set.Args(), draw)
}

type ScatterCommand struct {
	PlotOptions
	Logger *log.Logger
}

func (c ScatterCommand) Run(args []string) error {
	c.PlotOptions = defaultOptions()
	set := cli.NewFlagSet("scatter")
	c.Register(set)
	if err := set.Parse(args); err != nil {
		return err
	}
	draw := func(t table, cfg charts.Config) (*charts.Chart, error) {
		df, err := t.Frame(0)
		if err != nil {
			return nil, err
		}
		axisLabels(t, &cfg, charts.FormatXYY)
		return charts.ScatterChart(df, cfg)
	}
	return render(c.Logger, c.PlotOptions, set.Args(), draw)
}

type BarCommand struct {
	PlotOptions
	Order  string
	Char   string
	Logger *log.Logger
}

func (c BarCommand) Run(args []string) error {
	c.PlotOptions = defaultOptions()
	set := cli.NewFlagSet("bar")
	c.Register(set)
	set.StringVar(&c.Order, "order", "", "comma separated list of categories to show first")
	set.StringVar(&c.Char, "char", "", "character used to fill bars")
	if err := set.Parse(args); err != nil {
		return err
	}
	opts := charts.BarOptions{
		Order: parseList(c.Order),
	}
	if r := []rune(c.Char); len(r) > 0 {
		opts.Char = r[0]
	}
	draw := func(t table, cfg charts.Config) (*charts.Chart, error) {
		var (
			labels []string
			from   = 1
		)
		if t.Width() < 2 {
			from = 0
			for i := range t.Rows {
				labels = append(labels, strconv.Itoa(i+1))
			}
		} else {
			labels = t.Labels()
		}
		df, err := t.Frame(from)
		if err != nil {
			return nil, err
		}
		if err := df.Check(1); err != nil {
			return nil, err
		}
		if cfg.XLabel == "" && from > 0 {
			cfg.XLabel = t.header(0)
		}
		if cfg.YLabel == "" {
			cfg.YLabel = t.header(from)
		}
		return charts.BarChart(labels, df.Columns[0].Values, cfg, opts)
	}
	return render(c.Logger, c.PlotOptions, set.Args(), draw)
}

type CountCommand struct {
	PlotOptions
	Order  string
	Logger *log.Logger
}

func (c CountCommand) Run(args []string) error {
	c.PlotOptions = defaultOptions()
	set := cli.NewFlagSet("count")
	c.Register(set)
	set.StringVar(&c.Order, "order", "", "comma separated list of values to show first")
	if err := set.Parse(args); err != nil {
		return err
	}
	opts := charts.BarOptions{
		Order: parseList(c.Order),
	}
	draw := func(t table, cfg charts.Config) (*charts.Chart, error) {
		df, err := t.Frame(0)
		if err != nil {
			return nil, err
		}
		if cfg.YLabel == "" {
			cfg.YLabel = "count"
		}
		return charts.CountChart(df, cfg, opts)
	}
	return render(c.Logger, c.PlotOptions, set.Args(), draw)
}

type HistogramCommand struct {
	PlotOptions
	stats.HistogramOptions
	Logger *log.Logger
}

func (c HistogramCommand) Run(args []string) error {
	c.PlotOptions = defaultOptions()
	set := cli.NewFlagSet("hist")
	c.Register(set)
	set.IntVar(&c.Bins, "bins", 0, "number of bins (default from Sturges' rule)")
	set.BoolVar(&c.Normalize, "normalize", false, "draw frequencies instead of counts")
	set.BoolVar(&c.Cumulative, "cumulative", false, "draw cumulative counts")
	if err := set.Parse(args); err != nil {
		return err
	}
	draw := func(t table, cfg charts.Config) (*charts.Chart, error) {
		df, err := t.Frame(0)
		if err != nil {
			return nil, err
		}
		if cfg.XLabel == "" {
			cfg.XLabel = t.header(0)
		}
		return charts.HistogramChart(df, cfg, c.HistogramOptions)
	}
	return render(c.Logger, c.PlotOptions, set.Args(), draw)
}

type DensityCommand struct {
	PlotOptions
	stats.KDEOptions
	Logger *log.Logger
}

func (c DensityCommand) Run(args []string) error {
	c.PlotOptions = defaultOptions()
	set := cli.NewFlagSet("density")
	c.Register(set)
	set.Func("kernel", "kernel (gaussian, epanechnikov, uniform, triangular)", func(str string) error {
		k, err := stats.ParseKernel(str)
		if err == nil {
			c.Kernel = k
		}
		return err
	})
	set.Func("bandwidth", "kernel bandwidth (default from Scott's rule)", func(str string) error {
		h, err := strconv.ParseFloat(str, 64)
		if err == nil {
			c.Bandwidth = h
		}
		return err
	})
	set.IntVar(&c.Resolution, "resolution", stats.DefaultResolution, "number of points of the estimated curve")
	if err := set.Parse(args); err != nil {
		return err
	}
	draw := func(t table, cfg charts.Config) (*charts.Chart, error) {
		df, err := t.Frame(0)
		if err != nil {
			return nil, err
		}
		if cfg.YLabel == "" {
			cfg.YLabel = "density"
		}
		return charts.DensityChart(df, cfg, c.KDEOptions)
	}
	return render(c.Logger, c.PlotOptions, set.Args(), draw)
}

type BoxCommand struct {
	PlotOptions
	charts.BoxOptions
	Logger *log.Logger
}

func (c BoxCommand) Run(args []string) error {
	c.PlotOptions = defaultOptions()
	set := cli.NewFlagSet("box")
	c.Register(set)
	set.Func("fence", "outlier fences (iqr, far, none)", func(str string) error {
		f, err := stats.ParseFence(str)
		if err == nil {
			c.Fence = f
		}
		return err
	})
	set.BoolVar(&c.Horizontal, "horizontal", false, "draw horizontal boxes")
	set.BoolVar(&c.Mean, "mean", false, "mark the mean of each box")
	if err := set.Parse(args); err != nil {
		return err
	}
	draw := func(t table, cfg charts.Config) (*charts.Chart, error) {
		df, err := t.Frame(0)
		if err != nil {
			return nil, err
		}
		return charts.BoxChart(df, cfg, c.BoxOptions)
	}
	return render(c.Logger, c.PlotOptions, set.Args(), draw)
}

// axisLabels names the axes after the headers of a two columns input when no
// label is given.
func axisLabels(t table, cfg *charts.Config, format charts.Format) {
	if len(t.Headers) != 2 {
		return
	}
	x, y := t.header(0), t.header(1)
	if format == charts.FormatYX {
		x, y = y, x
	}
	if cfg.XLabel == "" {
		cfg.XLabel = x
	}
	if cfg.YLabel == "" {
		cfg.YLabel = y
	}
}
