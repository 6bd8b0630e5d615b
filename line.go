package charts

import (
	"image/color"
)

func LineChart(df DataFrame, cfg Config, opts LineOptions) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	list, err := df.Series(opts.Format)
	if err != nil {
		return nil, err
	}
	s := newScene(cfg)
	list, all := s.clean(list)
	if len(all) == 0 {
		return nil, ErrEmpty
	}
	s.setup(BoundsFrom(all).Limit(cfg.XLim, cfg.YLim))

	var (
		style   = opts.style(cfg)
		entries []legendEntry
	)
	for i, sr := range list {
		fg := cfg.SeriesColor(i, len(list))
		if !opts.HidePoints {
			s.drawPoints(sr, style.Point, fg)
		}
		s.drawLine(sr, style, fg, !opts.HidePoints)
		entries = append(entries, legendEntry{
			Name:   sr.Name,
			Symbol: style.Point,
			Color:  fg,
		})
	}
	s.legend(entries)
	return s.finish(), nil
}

// clean removes the non finite points of each series, sorts them by X and
// returns all the remaining points.
func (s *scene) clean(list []Series) ([]Series, []Point) {
	var (
		res = make([]Series, 0, len(list))
		all []Point
	)
	for _, sr := range list {
		f, n := sr.Finite()
		s.skipped(n, "series "+sr.Name)
		f = f.Sorted()
		res = append(res, f)
		all = append(all, f.Points...)
	}
	return res, all
}

func (s *scene) drawPoints(sr Series, symbol rune, fg color.Color) {
	buf := s.canvas.Layer(Points)
	for _, p := range sr.Points {
		pos, ok := s.trf.DataToScreen(p)
		if !ok {
			continue
		}
		buf.Paint(pos.Col, pos.Row, symbol, fg)
	}
}

func (s *scene) drawLine(sr Series, style LineStyle, fg color.Color, points bool) {
	var skip *Buffer
	if points {
		skip = s.canvas.Layer(Points)
	}
	if s.Braille() {
		s.drawBraille(sr, fg, skip)
		return
	}
	buf := s.canvas.Layer(Lines)
	for i := 1; i < len(sr.Points); i++ {
		a, ok1 := s.trf.DataToScreen(sr.Points[i-1])
		b, ok2 := s.trf.DataToScreen(sr.Points[i])
		if !ok1 || !ok2 {
			continue
		}
		for _, m := range style.segment(a, b) {
			if skip != nil && !skip.Blank(m.Col, m.Row) {
				continue
			}
			buf.Paint(m.Col, m.Row, m.Char, fg)
		}
	}
}

func (s *scene) drawBraille(sr Series, fg color.Color, skip *Buffer) {
	grid := NewBrailleGrid(s.canvas.Width, s.canvas.Height)
	for i := 1; i < len(sr.Points); i++ {
		x0, y0, ok1 := s.trf.DataToDots(sr.Points[i-1])
		x1, y1, ok2 := s.trf.DataToDots(sr.Points[i])
		if !ok1 || !ok2 {
			continue
		}
		grid.Line(x0, y0, x1, y1)
	}
	grid.Draw(s.canvas.Layer(Lines), 0, 0, fg, skip)
}
