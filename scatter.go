package charts

func ScatterChart(df DataFrame, cfg Config) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := df.Check(2); err != nil {
		return nil, err
	}
	list, err := df.Series(FormatXYY)
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
		symbol  = StyleDefault.WithSymbol(cfg.Symbol).Point
		entries []legendEntry
	)
	for i, sr := range list {
		fg := cfg.SeriesColor(i, len(list))
		s.drawPoints(sr, symbol, fg)
		entries = append(entries, legendEntry{
			Name:   sr.Name,
			Symbol: symbol,
			Color:  fg,
		})
	}
	s.legend(entries)
	return s.finish(), nil
}
