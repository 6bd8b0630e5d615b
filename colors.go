package charts

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

func ParsePalette(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case "", "category10", "category":
		return Category10, nil
	case "tableau10", "tableau":
		return Tableau10, nil
	default:
		return nil, fmt.Errorf("%w: unknown palette %s", ErrColor, name)
	}
}

// At gives the color of the i-th series, cycling over the palette.
func (p Palette) At(i int) color.Color {
	if len(p) == 0 {
		return nil
	}
	return lipgloss.Color(p[i%len(p)])
}

var namedColors = map[string]color.Color{
	"black":          lipgloss.Black,
	"red":            lipgloss.Red,
	"green":          lipgloss.Green,
	"yellow":         lipgloss.Yellow,
	"blue":           lipgloss.Blue,
	"magenta":        lipgloss.Magenta,
	"purple":         lipgloss.Magenta,
	"cyan":           lipgloss.Cyan,
	"white":          lipgloss.White,
	"grey":           lipgloss.BrightBlack,
	"gray":           lipgloss.BrightBlack,
	"bright_black":   lipgloss.BrightBlack,
	"bright_red":     lipgloss.BrightRed,
	"bright_green":   lipgloss.BrightGreen,
	"bright_yellow":  lipgloss.BrightYellow,
	"bright_blue":    lipgloss.BrightBlue,
	"bright_magenta": lipgloss.BrightMagenta,
	"bright_cyan":    lipgloss.BrightCyan,
	"bright_white":   lipgloss.BrightWhite,
}

// ParseColor accepts the name of one of the 16 terminal colors or an
// hexadecimal #RRGGBB (or #RGB) string. An empty name means no color.
func ParseColor(name string) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	if strings.HasPrefix(name, "#") {
		c := lipgloss.Color(name)
		if _, ok := c.(lipgloss.NoColor); ok {
			return nil, fmt.Errorf("%w: invalid hex color %s", ErrColor, name)
		}
		return c, nil
	}
	name = strings.ReplaceAll(name, "-", "_")
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown color %s", ErrColor, name)
}

// Painter decorates a run of characters sharing the same color.
type Painter interface {
	Paint(string, color.Color) string
}

type plainPainter struct{}

func Plain() Painter {
	return plainPainter{}
}

func (plainPainter) Paint(str string, _ color.Color) string {
	return str
}

type stylePainter struct {
	base lipgloss.Style
}

// Styled returns a Painter emitting the terminal escape sequences of the
// color of each run. Whether the sequences are kept or downsampled depends
// on the writer the result is printed to.
func Styled() Painter {
	return stylePainter{
		base: lipgloss.NewStyle(),
	}
}

func (p stylePainter) Paint(str string, c color.Color) string {
	if c == nil {
		return str
	}
	return p.base.Foreground(c).Render(str)
}
