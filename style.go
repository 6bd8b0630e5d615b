package charts

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type LineStyle struct {
	Name   string
	Point  rune
	Line   rune
	Smooth bool
}

var (
	StyleDefault   = LineStyle{Name: "default", Point: '●', Line: dotChar}
	StyleASCII     = LineStyle{Name: "ascii", Point: 'o', Line: '.'}
	StyleSmooth    = LineStyle{Name: "smooth", Point: '◆', Line: hozChar, Smooth: true}
	StyleDashed    = LineStyle{Name: "dashed", Point: '◆', Line: '╌'}
	StyleStars     = LineStyle{Name: "stars", Point: '★', Line: '*'}
	StyleTriangles = LineStyle{Name: "triangles", Point: '▲', Line: dotChar}
	StyleSquares   = LineStyle{Name: "squares", Point: '■', Line: dotChar}
	StyleDots      = LineStyle{Name: "dots", Point: '+', Line: '-'}
)

var lineStyles = []LineStyle{
	StyleDefault,
	StyleASCII,
	StyleSmooth,
	StyleDashed,
	StyleStars,
	StyleTriangles,
	StyleSquares,
	StyleDots,
}

func ParseLineStyle(name string) (LineStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StyleDefault, nil
	}
	for _, s := range lineStyles {
		if s.Name == name {
			return s, nil
		}
	}
	return StyleDefault, fmt.Errorf("%w: %s", ErrStyle, name)
}

func LineStyleNames() []string {
	var list []string
	for _, s := range lineStyles {
		list = append(list, s.Name)
	}
	return list
}

// WithSymbol replaces the point marker of the style by the first character
// of sym if any.
func (s LineStyle) WithSymbol(sym string) LineStyle {
	if r, _ := utf8.DecodeRuneInString(sym); sym != "" && r != utf8.RuneError {
		s.Point = r
	}
	return s
}

func (s LineStyle) segment(a, b ScreenPoint) []Mark {
	if s.Smooth {
		return SmoothLine(a, b)
	}
	var list []Mark
	for _, p := range Bresenham(a, b) {
		list = append(list, Mark{ScreenPoint: p, Char: s.Line})
	}
	return list
}
