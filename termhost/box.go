package termhost

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/phanxgames/dragarea"
)

// Box is a filled rectangle of cells with an optional centered label,
// drawn from its top-left cell.
type Box struct {
	dragarea.Callbacks
	Width, Height int
	Style         tcell.Style

	label string
}

// NewBox returns a box of width by height cells.
func NewBox(width, height int, style tcell.Style, label string) *Box {
	b := &Box{Width: width, Height: height, Style: style}
	b.SetLabel(label)
	return b
}

// SetLabel replaces the label. It is stored in NFC form so combining
// sequences occupy one cell.
func (b *Box) SetLabel(label string) {
	b.label = norm.NFC.String(label)
}

// Label returns the normalized label.
func (b *Box) Label() string {
	return b.label
}

func (b *Box) Draw(s tcell.Screen, x, y float64) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("box: invalid size %dx%d", b.Width, b.Height)
	}
	col, row := int(math.Round(x)), int(math.Round(y))
	for dy := 0; dy < b.Height; dy++ {
		for dx := 0; dx < b.Width; dx++ {
			s.SetContent(col+dx, row+dy, ' ', nil, b.Style)
		}
	}
	if b.label == "" {
		return nil
	}
	text := runewidth.Truncate(b.label, b.Width, "…")
	c := col + (b.Width-runewidth.StringWidth(text))/2
	r := row + (b.Height-1)/2
	for _, ch := range text {
		s.SetContent(c, r, ch, nil, b.Style)
		c += runewidth.RuneWidth(ch)
	}
	return nil
}

func (b *Box) Limits() dragarea.Limits {
	return dragarea.Limits{PosX: float64(b.Width), PosY: float64(b.Height)}
}

// Contains reports whether the cell (x, y) is covered by the box.
func (b *Box) Contains(x, y float64) bool {
	return dragarea.HitRect{Width: float64(b.Width - 1), Height: float64(b.Height - 1)}.Contains(x, y)
}
