package charts

const (
	dotChar  = '·'
	hozChar  = '─'
	verChar  = '│'
	descChar = '╲'
	ascChar  = '╱'
)

type Mark struct {
	ScreenPoint
	Char rune
}

// Bresenham gives the cells of the segment going from a to b, both ends
// included.
func Bresenham(a, b ScreenPoint) []ScreenPoint {
	var (
		dx = abs(b.Col - a.Col)
		dy = abs(b.Row - a.Row)
		sx = sign(b.Col - a.Col)
		sy = sign(b.Row - a.Row)
		e  = dx - dy
		pt = a
	)
	list := make([]ScreenPoint, 0, max(dx, dy)+1)
	for {
		list = append(list, pt)
		if pt == b {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			pt.Col += sx
		}
		if e2 < dx {
			e += dx
			pt.Row += sy
		}
	}
	return list
}

// SmoothLine rasterizes the segment from a to b and picks for each inner cell
// the box drawing character following the direction of the segment when the
// cell is entered and left the same way.
func SmoothLine(a, b ScreenPoint) []Mark {
	var (
		cells = Bresenham(a, b)
		list  = make([]Mark, 0, len(cells))
	)
	for i, c := range cells {
		ch := dotChar
		if i > 0 && i < len(cells)-1 {
			ch = lineChar(cells[i-1], c, cells[i+1])
		}
		list = append(list, Mark{ScreenPoint: c, Char: ch})
	}
	return list
}

func lineChar(prev, curr, next ScreenPoint) rune {
	var (
		inx, iny   = curr.Col - prev.Col, curr.Row - prev.Row
		outx, outy = next.Col - curr.Col, next.Row - curr.Row
	)
	if inx != outx || iny != outy {
		return dotChar
	}
	switch {
	case iny == 0 && inx != 0:
		return hozChar
	case inx == 0 && iny != 0:
		return verChar
	case inx == iny:
		return descChar
	case inx == -iny:
		return ascChar
	default:
		return dotChar
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
