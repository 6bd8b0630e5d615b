package charts

import (
	"math"
	"testing"
)

func TestBoundsFrom(t *testing.T) {
	tests := []struct {
		Name   string
		Points []Point
		Want   Bounds
	}{
		{
			Name:   "empty",
			Points: nil,
			Want:   Bounds{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10},
		},
		{
			Name:   "padded",
			Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 100}},
			Want:   Bounds{MinX: -1, MaxX: 11, MinY: -10, MaxY: 110},
		},
		{
			Name:   "constant",
			Points: []Point{{X: 5, Y: 0}, {X: 5, Y: 0}},
			Want:   Bounds{MinX: 4.5, MaxX: 5.5, MinY: -1, MaxY: 1},
		},
		{
			Name:   "non-finite",
			Points: []Point{{X: math.NaN(), Y: 1}, {X: 0, Y: math.Inf(1)}, {X: 0, Y: 0}, {X: 10, Y: 10}},
			Want:   Bounds{MinX: -1, MaxX: 11, MinY: -1, MaxY: 11},
		},
		{
			Name:   "only non-finite",
			Points: []Point{{X: math.NaN(), Y: math.NaN()}},
			Want:   Bounds{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10},
		},
	}
	for _, c := range tests {
		t.Run(c.Name, func(t *testing.T) {
			got := BoundsFrom(c.Points)
			if !sameBounds(got, c.Want) {
				t.Errorf("bounds mismatched: want %+v, got %+v", c.Want, got)
			}
			if !got.Valid() {
				t.Errorf("bounds should be valid: %+v", got)
			}
		})
	}
}

func TestBoundsLimit(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

	got := b.Limit(&Limit{Min: 2, Max: 4}, nil)
	want := Bounds{MinX: 2, MaxX: 4, MinY: 0, MaxY: 10}
	if got != want {
		t.Errorf("xlim: want %+v, got %+v", want, got)
	}
	got = b.Limit(nil, &Limit{Min: 5, Max: 1})
	if got != b {
		t.Errorf("invalid limit should be ignored: got %+v", got)
	}
}

func TestPadRange(t *testing.T) {
	tests := []struct {
		Min, Max float64
		Lo, Hi   float64
	}{
		{Min: 0, Max: 10, Lo: -1, Hi: 11},
		{Min: 10, Max: 0, Lo: -1, Hi: 11},
		{Min: 0, Max: 0, Lo: -1, Hi: 1},
		{Min: -50, Max: -50, Lo: -55, Hi: -45},
	}
	for _, c := range tests {
		lo, hi := PadRange(c.Min, c.Max)
		if !nearly(lo, c.Lo) || !nearly(hi, c.Hi) {
			t.Errorf("PadRange(%f, %f): want [%f, %f], got [%f, %f]", c.Min, c.Max, c.Lo, c.Hi, lo, hi)
		}
	}
}

func TestTransformer(t *testing.T) {
	var (
		b   = Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
		pad = Padding{Top: 1, Right: 1, Bottom: 1, Left: 1}
		trf = NewTransformer(b, 20, 12, pad)
	)
	if trf.PlotWidth() != 18 || trf.PlotHeight() != 10 {
		t.Fatalf("plot area mismatched: got %dx%d", trf.PlotWidth(), trf.PlotHeight())
	}
	tests := []struct {
		Point
		Want ScreenPoint
		Ok   bool
	}{
		{Point: Point{X: 0, Y: 0}, Want: ScreenPoint{Col: 1, Row: 11}, Ok: true},
		{Point: Point{X: 10, Y: 10}, Want: ScreenPoint{Col: 19, Row: 1}, Ok: true},
		{Point: Point{X: 5, Y: 5}, Want: ScreenPoint{Col: 10, Row: 6}, Ok: true},
		{Point: Point{X: 11, Y: 5}},
		{Point: Point{X: 5, Y: -1}},
		{Point: Point{X: math.NaN(), Y: 5}},
		{Point: Point{X: 5, Y: math.Inf(-1)}},
	}
	for _, c := range tests {
		got, ok := trf.DataToScreen(c.Point)
		if ok != c.Ok {
			t.Errorf("%+v: visibility mismatched: want %t, got %t", c.Point, c.Ok, ok)
			continue
		}
		if !ok {
			continue
		}
		if got != c.Want {
			t.Errorf("%+v: want %+v, got %+v", c.Point, c.Want, got)
		}
		if got.Col >= trf.Width || got.Row >= trf.Height {
			t.Errorf("%+v: cell %+v outside of canvas", c.Point, got)
		}
		back := trf.ScreenToData(got)
		if !nearly(back.X, c.X) || !nearly(back.Y, c.Y) {
			t.Errorf("%+v: round trip gives %+v", c.Point, back)
		}
	}
}

func TestTransformerDegenerate(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	tests := []Transformer{
		NewTransformer(b, 2, 10, Padding{Left: 1, Right: 1}),
		NewTransformer(b, 10, 2, Padding{Top: 1, Bottom: 1}),
		NewTransformer(Bounds{MinX: 1, MaxX: 1, MinY: 0, MaxY: 1}, 10, 10, Padding{}),
	}
	for i, trf := range tests {
		if !trf.Degenerate() {
			t.Errorf("transformer %d should be degenerate", i)
		}
		if _, ok := trf.DataToScreen(Point{X: 1, Y: 1}); ok {
			t.Errorf("transformer %d: no point should be visible", i)
		}
	}
}

func TestTransformerDefaultChart(t *testing.T) {
	var (
		b   = BoundsFrom([]Point{{X: 0, Y: 0}, {X: 100, Y: 50}})
		trf = NewTransformer(b, DefaultWidth, DefaultHeight, DefaultPadding)
	)
	for x := 0.0; x <= 100; x += 5 {
		for y := 0.0; y <= 50; y += 5 {
			pos, ok := trf.DataToScreen(Point{X: x, Y: y})
			if !ok {
				t.Fatalf("(%f, %f) should be visible", x, y)
			}
			if pos.Col < DefaultPadding.Left || pos.Col >= DefaultWidth {
				t.Fatalf("(%f, %f): column %d outside of plot area", x, y, pos.Col)
			}
			if pos.Row < DefaultPadding.Top || pos.Row >= DefaultHeight {
				t.Fatalf("(%f, %f): row %d outside of plot area", x, y, pos.Row)
			}
		}
	}
}

func TestResolveCategory(t *testing.T) {
	var (
		b   = Bounds{MinX: -0.5, MaxX: 2.5, MinY: 0, MaxY: 10}
		trf = NewTransformer(b, 40, 12, DefaultPadding).WithCategories([]string{"a", "b", "c"}, NewRange(b.MinX, b.MaxX))
	)
	for i, label := range []string{"a", "b", "c"} {
		got, ok := trf.Resolve(CategoryPoint(label, 5))
		if !ok {
			t.Errorf("%s: category should be resolved", label)
			continue
		}
		want, _ := trf.DataToScreen(Point{X: float64(i), Y: 5})
		if got != want {
			t.Errorf("%s: want %+v, got %+v", label, want, got)
		}
	}
	if _, ok := trf.Resolve(CategoryPoint("z", 5)); ok {
		t.Errorf("unknown category should not be resolved")
	}
	if _, ok := NewTransformer(b, 40, 12, DefaultPadding).Resolve(CategoryPoint("a", 5)); ok {
		t.Errorf("category should not be resolved without categories")
	}
}

func TestCategoryScaler(t *testing.T) {
	cs := NewCategoryScaler([]string{"a", "b", "a", "c"}, NewRange(0, 30))
	if len(cs.Values()) != 3 {
		t.Fatalf("duplicate labels should be merged: got %v", cs.Values())
	}
	if cs.Space() != 10 {
		t.Errorf("space: want 10, got %f", cs.Space())
	}
	x, ok := cs.Scale("c")
	if !ok || x != 25 {
		t.Errorf("scale(c): want 25, got %f (%t)", x, ok)
	}
}

func TestDataToDots(t *testing.T) {
	var (
		b   = Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
		trf = NewTransformer(b, 12, 12, Padding{Top: 1, Right: 1, Bottom: 1, Left: 1})
	)
	x, y, ok := trf.DataToDots(Point{X: 0, Y: 10})
	if !ok || x != 2 || y != 4 {
		t.Errorf("top left: want (2, 4), got (%d, %d) %t", x, y, ok)
	}
	x, y, ok = trf.DataToDots(Point{X: 10, Y: 0})
	if !ok || x != 22 || y != 44 {
		t.Errorf("bottom right: want (22, 44), got (%d, %d) %t", x, y, ok)
	}
}

func sameBounds(a, b Bounds) bool {
	return nearly(a.MinX, b.MinX) && nearly(a.MaxX, b.MaxX) && nearly(a.MinY, b.MinY) && nearly(a.MaxY, b.MaxY)
}
