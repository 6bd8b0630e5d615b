package charts

import (
	"image/color"
	"strings"
	"testing"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestBufferBounds(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.Set(-1, 0, 'x')
	buf.Set(0, -1, 'x')
	buf.Set(4, 0, 'x')
	buf.Set(0, 2, 'x')
	buf.Text(2, 1, "abcdef", nil)
	want := []string{"", "  ab"}
	got := buf.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines mismatched: want %q, got %q", want, got)
	}
	if r, c := buf.At(10, 10); r != blank || c != nil {
		t.Errorf("out of bounds cell should be blank")
	}
}

func TestBufferString(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.HLine(0, 3, 1, '-', nil)
	buf.VLine(4, 2, 1, '|', nil)
	buf.TextRight(2, 2, "ab", nil)
	want := " ---\n    |\n ab |\n"
	if got := buf.String(); got != want {
		t.Errorf("string mismatched: want %q, got %q", want, got)
	}
}

func TestBufferFill(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.Fill(1, 1, 2, 2, '#', red)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inside := col >= 1 && col <= 2 && row >= 1 && row <= 2
			if inside == buf.Blank(col, row) {
				t.Errorf("cell (%d, %d): filled %t", col, row, !buf.Blank(col, row))
			}
		}
	}
}

func TestCanvasPriority(t *testing.T) {
	cv := NewCanvas(5, 1)
	cv.Layer(Labels).Set(0, 0, 'L')
	cv.Layer(Points).Paint(0, 0, 'P', red)
	cv.Layer(Points).Paint(1, 0, 'P', red)
	cv.Layer(Lines).Paint(1, 0, '-', blue)
	cv.Layer(Lines).Paint(2, 0, '-', blue)
	cv.Layer(Axes).Set(2, 0, '|')
	cv.Layer(Axes).Set(3, 0, '|')

	buf := cv.Flatten()
	if got := buf.String(); got != "LP-|\n" {
		t.Errorf("flatten: want %q, got %q", "LP-|\n", got)
	}
	if _, c := buf.At(0, 0); c != nil {
		t.Errorf("label should keep its own color")
	}
	if _, c := buf.At(1, 0); !sameColor(c, red) {
		t.Errorf("point color should be kept with its character")
	}
	if _, c := buf.At(2, 0); !sameColor(c, blue) {
		t.Errorf("line color should be kept with its character")
	}
}

func TestCanvasInvalidLayer(t *testing.T) {
	cv := NewCanvas(3, 1)
	cv.Layer(Priority(0)).Set(0, 0, 'x')
	cv.Layer(Priority(10)).Set(1, 0, 'x')
	if got := cv.Flatten().String(); got != "\n" {
		t.Errorf("writes to invalid layers should be lost: got %q", got)
	}
}

type bracketPainter struct{}

func (bracketPainter) Paint(str string, c color.Color) string {
	if c == nil {
		return str
	}
	return "[" + str + "]"
}

func TestBufferFormat(t *testing.T) {
	buf := NewBuffer(8, 1)
	buf.Text(0, 0, "ab", red)
	buf.Text(2, 0, "cd", blue)
	buf.Text(5, 0, "e", nil)
	got := buf.Format(bracketPainter{})
	want := "[ab][cd] e\n"
	if got != want {
		t.Errorf("format: want %q, got %q", want, got)
	}
	if plain := buf.Format(nil); plain != buf.String() {
		t.Errorf("format without painter should equal string: %q", plain)
	}
}

func TestPriorityString(t *testing.T) {
	for p, want := range map[Priority]string{Axes: "axes", Lines: "lines", Points: "points", Labels: "labels", 0: "unknown"} {
		if got := p.String(); got != want {
			t.Errorf("priority %d: want %s, got %s", p, want, got)
		}
	}
}
