package termhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// Palette holds the colors used by the terminal demo, reduced to what the
// terminal supports.
type Palette struct {
	Background tcell.Color
	Text       tcell.Color
	Red        tcell.Color
	Green      tcell.Color
	Blue       tcell.Color
}

// DefaultPalette detects the color profile of stdout.
func DefaultPalette() Palette {
	return NewPalette(termenv.ColorProfile())
}

// NewPalette converts the palette to profile p.
func NewPalette(p termenv.Profile) Palette {
	return Palette{
		Background: convert(p, "#001040"),
		Text:       convert(p, "#ffffcd"),
		Red:        convert(p, "#c82828"),
		Green:      convert(p, "#28a028"),
		Blue:       convert(p, "#2850c8"),
	}
}

func convert(p termenv.Profile, hex string) tcell.Color {
	switch c := p.Color(hex).(type) {
	case termenv.RGBColor:
		return tcell.GetColor(string(c))
	case termenv.ANSI256Color:
		return tcell.PaletteColor(int(c))
	case termenv.ANSIColor:
		return tcell.PaletteColor(int(c))
	default:
		return tcell.ColorDefault
	}
}
