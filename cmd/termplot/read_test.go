package main

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	tests := []struct {
		Input   string
		Delim   rune
		Header  bool
		Rows    int
		Width   int
		Headers []string
	}{
		{Input: "x\ty\n1\t2\n2\t4\n", Delim: '\t', Header: true, Rows: 2, Width: 2, Headers: []string{"x", "y"}},
		{Input: "1,2,3\n\n# comment\n4,5,6\n", Delim: ',', Rows: 2, Width: 3},
		{Input: "1   2\n  3 4  \n", Delim: ' ', Rows: 2, Width: 2},
		{Input: "1;2\n3\n", Delim: ';', Rows: 2, Width: 2},
	}
	for _, c := range tests {
		rs := reader{Delim: c.Delim, Header: c.Header}
		tb, err := rs.Read(strings.NewReader(c.Input))
		if err != nil {
			t.Errorf("%q: unexpected error: %s", c.Input, err)
			continue
		}
		if len(tb.Rows) != c.Rows {
			t.Errorf("%q: rows mismatched: want %d, got %d", c.Input, c.Rows, len(tb.Rows))
		}
		if tb.Width() != c.Width {
			t.Errorf("%q: width mismatched: want %d, got %d", c.Input, c.Width, tb.Width())
		}
		if strings.Join(tb.Headers, ",") != strings.Join(c.Headers, ",") {
			t.Errorf("%q: headers mismatched: want %v, got %v", c.Input, c.Headers, tb.Headers)
		}
	}
}

func TestTableFrame(t *testing.T) {
	rs := reader{Delim: ',', Header: true}
	tb, err := rs.Read(strings.NewReader("a,b\n1,2\n3,NA\n5\n"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	df, err := tb.Frame(0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if df.Width() != 2 || df.Rows() != 3 {
		t.Fatalf("frame size mismatched: got %dx%d", df.Width(), df.Rows())
	}
	if df.Columns[0].Name != "a" || df.Columns[1].Name != "b" {
		t.Errorf("column names mismatched: got %v", df.Headers())
	}
	b := df.Columns[1].Values
	if b[0] != 2 || !math.IsNaN(b[1]) || !math.IsNaN(b[2]) {
		t.Errorf("missing values should be NaN: got %v", b)
	}
}

func TestFrameSuggestDelimiter(t *testing.T) {
	rs := reader{Delim: '\t'}
	tb, err := rs.Read(strings.NewReader("1,2\n3,4\n"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	_, err = tb.Frame(0)
	if !errors.Is(err, errParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), "-d ','") {
		t.Errorf("expected delimiter suggestion in %q", err)
	}
}

func TestSuggestDelimiter(t *testing.T) {
	tests := []struct {
		Field string
		Want  string
		Ok    bool
	}{
		{Field: "1;2;3", Want: "';'", Ok: true},
		{Field: "1.5|2", Want: "'|'", Ok: true},
		{Field: "1 2", Want: "' '", Ok: true},
		{Field: "abc", Ok: false},
		{Field: "a,b", Ok: false},
	}
	for _, c := range tests {
		got, ok := suggestDelimiter(c.Field)
		if ok != c.Ok || got != c.Want {
			t.Errorf("%q: want %s (%t), got %s (%t)", c.Field, c.Want, c.Ok, got, ok)
		}
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		Input    string
		Min, Max float64
		Err      bool
	}{
		{Input: "0,10", Min: 0, Max: 10},
		{Input: "-5:5", Min: -5, Max: 5},
		{Input: "-5,-1", Min: -5, Max: -1},
		{Input: "10,0", Err: true},
		{Input: "1,2,3", Err: true},
		{Input: "a,b", Err: true},
	}
	for _, c := range tests {
		lim, err := parseLimit(c.Input)
		if c.Err {
			if err == nil {
				t.Errorf("%s: expected error but got none", c.Input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Input, err)
			continue
		}
		if lim.Min != c.Min || lim.Max != c.Max {
			t.Errorf("%s: want %f:%f, got %f:%f", c.Input, c.Min, c.Max, lim.Min, lim.Max)
		}
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := map[string]rune{
		"\\t":   '\t',
		"tab":   '\t',
		",":     ',',
		"space": ' ',
		";":     ';',
	}
	for str, want := range tests {
		got, err := parseDelimiter(str)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", str, err)
			continue
		}
		if got != want {
			t.Errorf("%q: want %q, got %q", str, want, got)
		}
	}
	if _, err := parseDelimiter(",,"); err == nil {
		t.Errorf("expected error for multi characters delimiter")
	}
}

func TestSampleFunction(t *testing.T) {
	tb, err := sampleFunction("function:x*2", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(tb.Rows) != 200 {
		t.Errorf("default number of points: want 200, got %d", len(tb.Rows))
	}
	df, err := tb.Frame(0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var (
		xs = df.Columns[0].Values
		ys = df.Columns[1].Values
	)
	if xs[0] != -10 || xs[len(xs)-1] != 10 {
		t.Errorf("default range: want -10:10, got %f:%f", xs[0], xs[len(xs)-1])
	}
	for i := range xs {
		if math.Abs(ys[i]-2*xs[i]) > 1e-9 {
			t.Fatalf("sample %d: want %f, got %f", i, 2*xs[i], ys[i])
		}
	}
	if _, err := sampleFunction("function:sin(", nil, 0); err == nil {
		t.Errorf("expected error for invalid expression")
	}
}
