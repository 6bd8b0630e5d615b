package charts

import (
	"testing"
)

func TestBresenham(t *testing.T) {
	tests := []struct {
		A, B ScreenPoint
		Len  int
	}{
		{A: ScreenPoint{0, 0}, B: ScreenPoint{0, 0}, Len: 1},
		{A: ScreenPoint{0, 0}, B: ScreenPoint{5, 0}, Len: 6},
		{A: ScreenPoint{0, 5}, B: ScreenPoint{0, 0}, Len: 6},
		{A: ScreenPoint{0, 0}, B: ScreenPoint{4, 4}, Len: 5},
		{A: ScreenPoint{7, 1}, B: ScreenPoint{0, 3}, Len: 8},
		{A: ScreenPoint{2, 9}, B: ScreenPoint{5, 0}, Len: 10},
	}
	for _, c := range tests {
		cells := Bresenham(c.A, c.B)
		if len(cells) != c.Len {
			t.Errorf("%v -> %v: want %d cells, got %d", c.A, c.B, c.Len, len(cells))
			continue
		}
		if cells[0] != c.A || cells[len(cells)-1] != c.B {
			t.Errorf("%v -> %v: endpoints not included: %v", c.A, c.B, cells)
		}
		for i := 1; i < len(cells); i++ {
			dx, dy := abs(cells[i].Col-cells[i-1].Col), abs(cells[i].Row-cells[i-1].Row)
			if dx > 1 || dy > 1 || dx+dy == 0 {
				t.Errorf("%v -> %v: cells not adjacent: %v", c.A, c.B, cells)
				break
			}
		}
	}
}

func TestSmoothLine(t *testing.T) {
	tests := []struct {
		A, B ScreenPoint
		Char rune
	}{
		{A: ScreenPoint{0, 0}, B: ScreenPoint{4, 0}, Char: hozChar},
		{A: ScreenPoint{4, 0}, B: ScreenPoint{0, 0}, Char: hozChar},
		{A: ScreenPoint{0, 0}, B: ScreenPoint{0, 4}, Char: verChar},
		{A: ScreenPoint{0, 0}, B: ScreenPoint{4, 4}, Char: descChar},
		{A: ScreenPoint{4, 4}, B: ScreenPoint{0, 0}, Char: descChar},
		{A: ScreenPoint{0, 4}, B: ScreenPoint{4, 0}, Char: ascChar},
	}
	for _, c := range tests {
		marks := SmoothLine(c.A, c.B)
		if len(marks) != 5 {
			t.Fatalf("%v -> %v: want 5 marks, got %d", c.A, c.B, len(marks))
		}
		if marks[0].Char != dotChar || marks[4].Char != dotChar {
			t.Errorf("%v -> %v: endpoints should be dots", c.A, c.B)
		}
		for _, m := range marks[1:4] {
			if m.Char != c.Char {
				t.Errorf("%v -> %v: want %c, got %c at %v", c.A, c.B, c.Char, m.Char, m.ScreenPoint)
			}
		}
	}
	marks := SmoothLine(ScreenPoint{0, 0}, ScreenPoint{4, 1})
	var corners int
	for _, m := range marks {
		if m.Char == dotChar {
			corners++
		}
	}
	if corners < 3 {
		t.Errorf("change of direction should give dots: %v", marks)
	}
}

func TestBrailleGrid(t *testing.T) {
	grid := NewBrailleGrid(2, 1)
	if grid.DotWidth() != 4 || grid.DotHeight() != 4 {
		t.Fatalf("dots mismatched: %dx%d", grid.DotWidth(), grid.DotHeight())
	}
	grid.Set(0, 0)
	grid.Set(1, 3)
	grid.Set(2, 1)
	grid.Set(-1, 0)
	grid.Set(4, 0)

	got := make(map[int]rune)
	grid.Each(func(col, row int, r rune) {
		got[col] = r
	})
	if got[0] != rune(0x2800+0x01+0x80) {
		t.Errorf("first cell: want %c, got %c", rune(0x2800+0x81), got[0])
	}
	if got[1] != rune(0x2800+0x02) {
		t.Errorf("second cell: want %c, got %c", rune(0x2802), got[1])
	}
}

func TestBrailleLine(t *testing.T) {
	grid := NewBrailleGrid(4, 2)
	grid.Line(0, 0, 7, 7)
	var cells int
	grid.Each(func(col, row int, r rune) {
		if col != row*2 && col != row*2+1 {
			t.Errorf("unexpected cell (%d, %d)", col, row)
		}
		cells++
	})
	if cells != 4 {
		t.Errorf("diagonal should cover 4 cells, got %d", cells)
	}

	var (
		buf  = NewBuffer(4, 2)
		skip = NewBuffer(4, 2)
	)
	skip.Set(0, 0, 'o')
	grid.Draw(buf, 0, 0, nil, skip)
	if !buf.Blank(0, 0) {
		t.Errorf("used cell should be skipped")
	}
	if buf.Blank(3, 1) {
		t.Errorf("last cell should be drawn")
	}
}
