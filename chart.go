package charts

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"
)

type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

var DefaultPadding = Padding{
	Top:    1,
	Right:  2,
	Bottom: 2,
	Left:   4,
}

func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// Chart is the result of a render pass: the flattened canvas plus what is
// printed around it.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int

	Layout   Layout
	Warnings []string

	buffer *Buffer
}

func (c *Chart) Buffer() *Buffer {
	return c.buffer
}

func (c *Chart) String() string {
	return c.Format(Plain())
}

// Format renders the chart: the centred title followed by a blank line, the
// label of the Y axis, the rows of the canvas and finally the centred label
// of the X axis.
func (c *Chart) Format(p Painter) string {
	if p == nil {
		p = Plain()
	}
	var str strings.Builder
	if c.Title != "" {
		str.WriteString(center(c.Title, c.Width))
		str.WriteString("\n\n")
	}
	if c.YLabel != "" {
		str.WriteString(c.YLabel)
		str.WriteString("\n")
	}
	if c.buffer != nil {
		str.WriteString(c.buffer.Format(p))
	}
	if c.XLabel != "" {
		str.WriteString(center(c.XLabel, c.Width))
		str.WriteString("\n")
	}
	return str.String()
}

func (c *Chart) warn(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Chart) skipped(count int, what string) {
	if count == 0 {
		return
	}
	c.warn("skipped %d non finite value(s) in %s", count, what)
}

// scene holds what every chart needs while it is drawn.
type scene struct {
	Config
	*Chart

	canvas *Canvas
	trf    Transformer
}

func newScene(cfg Config) *scene {
	return &scene{
		Config: cfg,
		Chart: &Chart{
			Title:  cfg.Title,
			XLabel: cfg.XLabel,
			YLabel: cfg.YLabel,
			Width:  cfg.Width,
		},
		canvas: NewCanvas(cfg.Width, cfg.Height),
	}
}

func (s *scene) setup(b Bounds) {
	s.setupWith(b, nil)
}

func (s *scene) setupWith(b Bounds, xticks []Tick) {
	s.setupTicks(b, xticks, nil)
}

func (s *scene) setupTicks(b Bounds, xticks, yticks []Tick) {
	eng := s.engine()
	if xticks == nil {
		xticks = eng.X.Generate(b.MinX, b.MaxX)
	}
	if yticks == nil {
		yticks = eng.Y.Generate(b.MinY, b.MaxY)
	}
	lay := eng.ComputeTicks(b, xticks, yticks)
	s.Layout = lay
	s.trf = eng.Transformer(b, lay)
}

func (s *scene) area() PlotArea {
	return s.Layout.Area
}

func (s *scene) finish() *Chart {
	area := s.area()
	if area.Left > 0 {
		LeftAxis(s.Layout.YTicks, !s.HideLabels).Render(s.canvas, area)
	}
	BottomAxis(s.Layout.XTicks, !s.HideLabels).Render(s.canvas, area)
	if area.Left > 0 {
		drawCorner(s.canvas, area)
	}
	s.buffer = s.canvas.Flatten()
	return s.Chart
}

type legendEntry struct {
	Name   string
	Symbol rune
	Color  color.Color
}

// legend writes one line per entry in the top right corner of the plot
// area.
func (s *scene) legend(entries []legendEntry) {
	if len(entries) <= 1 {
		return
	}
	var (
		area  = s.area()
		width int
	)
	for _, e := range entries {
		width = max(width, utf8.RuneCountInString(e.Name)+2)
	}
	if width >= area.Width || len(entries) > area.Height {
		return
	}
	buf := s.canvas.Layer(Labels)
	for i, e := range entries {
		var (
			row = area.Top + i
			col = area.Right() - width
		)
		buf.Paint(col, row, e.Symbol, e.Color)
		buf.Text(col+2, row, e.Name, nil)
	}
}

func center(str string, width int) string {
	pad := (width - utf8.RuneCountInString(str)) / 2
	if pad <= 0 {
		return str
	}
	return strings.Repeat(" ", pad) + str
}
