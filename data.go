package charts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/midbel/slices"
)

type Column struct {
	Name   string
	Values []float64
}

func NewColumn(name string, values []float64) Column {
	return Column{
		Name:   name,
		Values: values,
	}
}

func (c Column) Len() int {
	return len(c.Values)
}

// DataFrame is an ordered set of named numeric columns.
type DataFrame struct {
	Columns []Column
}

func NewDataFrame(cols ...Column) DataFrame {
	return DataFrame{
		Columns: cols,
	}
}

func (d DataFrame) Width() int {
	return len(d.Columns)
}

func (d DataFrame) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return slices.Fst(d.Columns).Len()
}

func (d DataFrame) Headers() []string {
	var list []string
	for i, c := range d.Columns {
		list = append(list, columnName(c, i))
	}
	return list
}

func (d DataFrame) Empty() bool {
	return d.Width() == 0 || d.Rows() == 0
}

// Check reports an error when the frame has less than atLeast columns,
// no rows or columns of different lengths.
func (d DataFrame) Check(atLeast int) error {
	if d.Width() < atLeast {
		return fmt.Errorf("%w: %d column(s) given, %d needed", ErrColumns, d.Width(), atLeast)
	}
	if d.Empty() {
		return ErrEmpty
	}
	n := d.Rows()
	for i, c := range d.Columns {
		if c.Len() != n {
			return fmt.Errorf("%w: column %s has %d values, expected %d", ErrLength, columnName(c, i), c.Len(), n)
		}
	}
	return nil
}

type Format int

const (
	FormatXY Format = iota
	FormatXYY
	FormatXYXY
	FormatYX
)

func ParseFormat(str string) (Format, error) {
	switch strings.ToLower(str) {
	case "", "xy":
		return FormatXY, nil
	case "xyy":
		return FormatXYY, nil
	case "xyxy":
		return FormatXYXY, nil
	case "yx":
		return FormatYX, nil
	default:
		return FormatXY, fmt.Errorf("%w: %s", ErrFormat, str)
	}
}

func (f Format) String() string {
	switch f {
	case FormatXY:
		return "xy"
	case FormatXYY:
		return "xyy"
	case FormatXYXY:
		return "xyxy"
	case FormatYX:
		return "yx"
	default:
		return "unknown"
	}
}

type Series struct {
	Name   string
	Points []Point
}

func NewSeries(name string, xs, ys []float64) Series {
	s := Series{
		Name: name,
	}
	for i := range min(len(xs), len(ys)) {
		s.Points = append(s.Points, NumberPoint(xs[i], ys[i]))
	}
	return s
}

// Finite returns a copy of the series without the points having a NaN or
// infinite coordinate and the number of points removed.
func (s Series) Finite() (Series, int) {
	x := Series{
		Name:   s.Name,
		Points: make([]Point, 0, len(s.Points)),
	}
	for _, p := range s.Points {
		if p.Finite() {
			x.Points = append(x.Points, p)
		}
	}
	return x, len(s.Points) - len(x.Points)
}

func (s Series) Sorted() Series {
	x := Series{
		Name:   s.Name,
		Points: append([]Point(nil), s.Points...),
	}
	sort.SliceStable(x.Points, func(i, j int) bool {
		return x.Points[i].X < x.Points[j].X
	})
	return x
}

// Series arranges the columns of the frame into plottable series. A frame
// with a single column gives one series indexed by the row number whatever
// the format.
func (d DataFrame) Series(f Format) ([]Series, error) {
	if err := d.Check(1); err != nil {
		return nil, err
	}
	if d.Width() == 1 {
		return []Series{d.indexed(0)}, nil
	}
	var list []Series
	switch f {
	case FormatXY:
		list = append(list, d.pair(0, 1))
	case FormatYX:
		list = append(list, d.pair(1, 0))
	case FormatXYY:
		for i := 1; i < d.Width(); i++ {
			list = append(list, d.pair(0, i))
		}
	case FormatXYXY:
		if d.Width()%2 != 0 {
			return nil, fmt.Errorf("%w: xyxy format needs an even number of columns, got %d", ErrColumns, d.Width())
		}
		for i := 0; i < d.Width(); i += 2 {
			list = append(list, d.pair(i, i+1))
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrFormat, f)
	}
	return list, nil
}

func (d DataFrame) indexed(col int) Series {
	c := d.Columns[col]
	xs := make([]float64, c.Len())
	for i := range xs {
		xs[i] = float64(i)
	}
	return NewSeries(columnName(c, col), xs, c.Values)
}

func (d DataFrame) pair(x, y int) Series {
	return NewSeries(columnName(d.Columns[y], y), d.Columns[x].Values, d.Columns[y].Values)
}

func columnName(c Column, i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("column%d", i+1)
}
