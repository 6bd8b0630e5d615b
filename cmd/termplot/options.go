package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/midbel/slices"
	"github.com/midbel/termcharts"
)

type flagSet interface {
	StringVar(*string, string, string, string)
	BoolVar(*bool, string, bool, string)
	IntVar(*int, string, int, string)
	Func(string, string, func(string) error)
}

// PlotOptions are the options shared by every chart command.
type PlotOptions struct {
	charts.Config

	Delimiter string
	Header    bool
	Format    string
	Range     *charts.Limit
	Points    int

	Output   string
	PassData bool

	ForceColor bool
	NoColor    bool
	Jobs       int
	Verbose    bool
}

func defaultOptions() PlotOptions {
	return PlotOptions{
		Config:    charts.DefaultConfig(),
		Delimiter: "\t",
		Format:    "xy",
		Jobs:      runtime.NumCPU(),
	}
}

func (o *PlotOptions) Register(set flagSet) {
	set.StringVar(&o.Delimiter, "d", o.Delimiter, "field delimiter")
	set.BoolVar(&o.Header, "H", o.Header, "first line contains headers")
	set.StringVar(&o.Format, "fmt", o.Format, "data format (xy, xyy, xyxy, yx)")
	set.Func("range", "x range of function sources (min:max)", func(str string) error {
		lim, err := parseLimit(str)
		if err == nil {
			o.Range = lim
		}
		return err
	})
	set.IntVar(&o.Points, "points", 0, "number of samples of function sources")

	set.StringVar(&o.Output, "o", "", "write chart to file")
	set.BoolVar(&o.PassData, "O", false, "copy input data to stdout and write chart to stderr")

	set.StringVar(&o.Title, "t", "", "chart title")
	set.StringVar(&o.XLabel, "xlabel", "", "x axis label")
	set.StringVar(&o.YLabel, "ylabel", "", "y axis label")
	set.IntVar(&o.Width, "w", o.Width, "chart width in characters")
	set.IntVar(&o.Height, "height", o.Height, "chart height in characters")
	set.Func("xlim", "x axis limits (min,max)", func(str string) error {
		lim, err := parseLimit(str)
		if err == nil {
			o.XLim = lim
		}
		return err
	})
	set.Func("ylim", "y axis limits (min,max)", func(str string) error {
		lim, err := parseLimit(str)
		if err == nil {
			o.YLim = lim
		}
		return err
	})
	set.BoolVar(&o.HideLabels, "no-labels", false, "do not write tick labels")

	set.StringVar(&o.Color, "c", "", "chart color")
	set.StringVar(&o.Symbol, "symbol", "", "symbol of data points")
	set.StringVar(&o.Palette, "palette", "", "palette of multi series charts (category10, tableau10)")
	set.IntVar(&o.BrailleThreshold, "braille", o.BrailleThreshold, "draw lines with braille dots when wider than given width (0 to disable)")
	set.BoolVar(&o.ForceColor, "force-color", false, "write colors even if output is not a terminal")
	set.BoolVar(&o.NoColor, "no-color", false, "never write colors")

	set.IntVar(&o.Jobs, "j", o.Jobs, "number of inputs rendered concurrently")
	set.BoolVar(&o.Verbose, "v", false, "verbose")
}

func (o *PlotOptions) Reader() (reader, error) {
	delim, err := parseDelimiter(o.Delimiter)
	if err != nil {
		return reader{}, err
	}
	r := reader{
		Delim:  delim,
		Header: o.Header,
		Keep:   o.PassData,
	}
	return r, nil
}

func (o *PlotOptions) Check() error {
	if _, err := charts.ParseFormat(o.Format); err != nil {
		return err
	}
	cfg := o.Config
	return cfg.Validate()
}

func parseLimit(str string) (*charts.Limit, error) {
	sep := ","
	if !strings.Contains(str, sep) {
		sep = ":"
	}
	vs := strings.Split(str, sep)
	if len(vs) != 2 {
		return nil, fmt.Errorf("%s: invalid number of values given for limit", str)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(slices.Fst(vs)), 64)
	if err != nil {
		return nil, err
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(slices.Lst(vs)), 64)
	if err != nil {
		return nil, err
	}
	lim := charts.Limit{
		Min: lo,
		Max: hi,
	}
	if !lim.Valid() {
		return nil, fmt.Errorf("%s: min should be lower than max", str)
	}
	return &lim, nil
}

func parseList(str string) []string {
	var list []string
	for _, s := range strings.Split(str, ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}
