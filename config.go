package charts

import (
	"image/color"

	"github.com/midbel/termcharts/stats"
)

const (
	DefaultWidth            = 80
	DefaultHeight           = 20
	DefaultBrailleThreshold = 100
)

type Config struct {
	Width  int
	Height int

	Title  string
	XLabel string
	YLabel string

	XLim *Limit
	YLim *Limit

	Color   string
	Symbol  string
	Palette string

	// Canvas wider than the threshold draw lines with braille dots. Zero
	// disables braille rendering.
	BrailleThreshold int
	Ticks            TickWeights
	HideLabels       bool

	fg      color.Color
	palette Palette
}

func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		BrailleThreshold: DefaultBrailleThreshold,
		Ticks:            DefaultTickWeights(),
	}
}

// Validate replaces the zero values of the configuration by their defaults
// and checks the colors.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.BrailleThreshold < 0 {
		c.BrailleThreshold = 0
	}
	if c.Ticks.isZero() {
		c.Ticks = DefaultTickWeights()
	}
	fg, err := ParseColor(c.Color)
	if err != nil {
		return err
	}
	c.fg = fg
	c.palette, err = ParsePalette(c.Palette)
	return err
}

// SeriesColor gives the color of the i-th series of a chart. The configured
// color is used when the chart has a single series.
func (c Config) SeriesColor(i, count int) color.Color {
	if c.fg != nil && (count <= 1 || i == 0) {
		return c.fg
	}
	if count <= 1 {
		return nil
	}
	return c.palette.At(i)
}

func (c Config) Braille() bool {
	return c.BrailleThreshold > 0 && c.Width > c.BrailleThreshold
}

func (c Config) engine() LayoutEngine {
	e := NewLayoutEngine(c.Width, c.Height)
	e.ShowLabels = !c.HideLabels
	e.X.Weights = c.Ticks
	e.Y.Weights = c.Ticks
	return e
}

type LineOptions struct {
	Style      LineStyle
	HidePoints bool
	Format     Format
}

func (o LineOptions) style(cfg Config) LineStyle {
	s := o.Style
	if s.Name == "" && s.Point == 0 {
		s = StyleDefault
	}
	return s.WithSymbol(cfg.Symbol)
}

type BarOptions struct {
	// Order lists the categories to show first, in that order.
	Order []string
	Char  rune
}

func (o BarOptions) char(cfg Config) rune {
	if o.Char != 0 {
		return o.Char
	}
	return cfg.fillChar()
}

// fillChar gives the first rune of the configured symbol, a full block
// otherwise.
func (c Config) fillChar() rune {
	for _, r := range c.Symbol {
		return r
	}
	return fullBlock
}

type BoxOptions struct {
	Fence      stats.Fence
	Horizontal bool
	Mean       bool
}
