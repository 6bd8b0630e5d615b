package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/slices"
	"github.com/midbel/termcharts"
	"github.com/midbel/termcharts/expr"
)

const (
	stdinName      = "-"
	functionPrefix = "function:"
)

var errParse = errors.New("parse error")

type table struct {
	Name    string
	Headers []string
	Rows    [][]string
	Raw     []byte
}

func (t table) Width() int {
	var n int
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	return max(n, len(t.Headers))
}

// Frame converts the columns of the table starting at the given offset into
// numbers. Empty and NA fields become NaN.
func (t table) Frame(from int) (charts.DataFrame, error) {
	var cols []charts.Column
	for i := from; i < t.Width(); i++ {
		values := make([]float64, 0, len(t.Rows))
		for j, row := range t.Rows {
			if i >= len(row) {
				values = append(values, math.NaN())
				continue
			}
			v, err := parseNumber(row[i])
			if err != nil {
				return charts.DataFrame{}, t.parseError(j, i, row[i])
			}
			values = append(values, v)
		}
		cols = append(cols, charts.NewColumn(t.header(i), values))
	}
	return charts.NewDataFrame(cols...), nil
}

// Labels gives the values of the first column as they appear in the input.
func (t table) Labels() []string {
	var list []string
	for _, row := range t.Rows {
		if len(row) == 0 {
			list = append(list, "")
			continue
		}
		list = append(list, slices.Fst(row))
	}
	return list
}

func (t table) header(i int) string {
	if i < len(t.Headers) {
		return t.Headers[i]
	}
	return ""
}

func (t table) parseError(row, col int, field string) error {
	line := row + 1
	if len(t.Headers) > 0 {
		line++
	}
	err := fmt.Errorf("%w: %s: line %d, column %d: %q is not a number", errParse, t.Name, line, col+1, field)
	if d, ok := suggestDelimiter(field); ok {
		err = fmt.Errorf("%w (try -d %s)", err, d)
	}
	return err
}

var delimiters = []struct {
	Char rune
	Flag string
}{
	{Char: ',', Flag: "','"},
	{Char: ';', Flag: "';'"},
	{Char: '|', Flag: "'|'"},
	{Char: '\t', Flag: "'\\t'"},
	{Char: ' ', Flag: "' '"},
}

// suggestDelimiter looks for a delimiter in a field that can not be parsed
// and whose parts are all numbers.
func suggestDelimiter(field string) (string, bool) {
	for _, d := range delimiters {
		if !strings.ContainsRune(field, d.Char) {
			continue
		}
		parts := strings.FieldsFunc(field, func(r rune) bool { return r == d.Char })
		if len(parts) < 2 {
			continue
		}
		ok := true
		for _, p := range parts {
			if _, err := parseNumber(p); err != nil {
				ok = false
				break
			}
		}
		if ok {
			return d.Flag, true
		}
	}
	return "", false
}

func parseNumber(str string) (float64, error) {
	str = strings.TrimSpace(str)
	switch strings.ToLower(str) {
	case "", "na", "n/a", "null":
		return math.NaN(), nil
	default:
	}
	return strconv.ParseFloat(str, 64)
}

func parseDelimiter(str string) (rune, error) {
	switch str {
	case "\\t", "tab", "\t":
		return '\t', nil
	case "space", "whitespace", " ":
		return ' ', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	default:
	}
	if n := len([]rune(str)); n != 1 {
		return 0, fmt.Errorf("%q: delimiter should be a single character", str)
	}
	return []rune(str)[0], nil
}

type reader struct {
	Delim  rune
	Header bool
	Keep   bool
}

func (r reader) Open(name string) (table, error) {
	var rs io.Reader
	if name == "" || name == stdinName {
		name = "stdin"
		rs = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return table{}, err
		}
		defer f.Close()
		rs = f
	}
	var raw bytes.Buffer
	if r.Keep {
		rs = io.TeeReader(rs, &raw)
	}
	t, err := r.Read(rs)
	if err != nil {
		return t, fmt.Errorf("%s: %w", name, err)
	}
	t.Name = getIdent(name)
	t.Raw = raw.Bytes()
	return t, nil
}

func (r reader) Read(rs io.Reader) (table, error) {
	var (
		rows [][]string
		err  error
	)
	if r.Delim == ' ' {
		rows, err = readFields(rs)
	} else {
		rows, err = readRecords(rs, r.Delim)
	}
	if err != nil {
		return table{}, err
	}
	var t table
	if r.Header && len(rows) > 0 {
		t.Headers = slices.Fst(rows)
		rows = slices.Rest(rows)
	}
	t.Rows = rows
	return t, nil
}

func readRecords(r io.Reader, delim rune) ([][]string, error) {
	rs := csv.NewReader(r)
	rs.Comma = delim
	rs.Comment = '#'
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	rs.LazyQuotes = true

	var rows [][]string
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if isBlank(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readFields(r io.Reader) ([][]string, error) {
	var (
		scan = bufio.NewScanner(r)
		rows [][]string
	)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	return rows, scan.Err()
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

func isFunction(name string) bool {
	return strings.HasPrefix(name, functionPrefix)
}

// sampleFunction builds a two column table from the samples of an expression
// of x.
func sampleFunction(source string, rg *charts.Limit, points int) (table, error) {
	f, err := expr.Compile(strings.TrimPrefix(source, functionPrefix))
	if err != nil {
		return table{}, err
	}
	lo, hi := f.Range()
	if rg != nil {
		lo, hi = rg.Min, rg.Max
	}
	if points <= 0 {
		points = expr.DefaultPoints
	}
	xs, ys, err := f.Sample(lo, hi, points)
	if err != nil {
		return table{}, fmt.Errorf("%s: %w", f, err)
	}
	t := table{
		Name:    f.Label(),
		Headers: []string{"x", f.Label()},
	}
	for i := range xs {
		t.Rows = append(t.Rows, []string{
			strconv.FormatFloat(xs[i], 'g', -1, 64),
			strconv.FormatFloat(ys[i], 'g', -1, 64),
		})
	}
	return t, nil
}
