package tui

import (
	"strings"

	"github.com/edwinsyarief/monologue"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws presenter snapshots as a bordered box at the
// bottom of a tcell screen.
type Renderer struct {
	// Rows taken by the box, borders included.
	Height int

	BoxStyle       tcell.Style
	TextStyle      tcell.Style
	IndicatorStyle tcell.Style
	Indicator      rune
}

func NewRenderer() *Renderer {
	return &Renderer{
		Height:         6,
		BoxStyle:       tcell.StyleDefault,
		TextStyle:      tcell.StyleDefault.Bold(true),
		IndicatorStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Indicator:      '▼',
	}
}

// Draws the snapshot. Inactive snapshots draw nothing. Text lines
// are clipped to the box; there is no wrapping.
func (self *Renderer) Draw(screen tcell.Screen, snap monologue.Snapshot) {
	if !snap.Active {
		return
	}
	width, height := screen.Size()
	boxHeight := min(self.Height, height)
	if width < 4 || boxHeight < 3 {
		return
	}
	top, bottom := height-boxHeight, height-1
	right := width - 1

	// box
	for y := top; y <= bottom; y++ {
		for x := 0; x <= right; x++ {
			screen.SetContent(x, y, ' ', nil, self.BoxStyle)
		}
	}
	for x := 1; x < right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, self.BoxStyle)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, self.BoxStyle)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, self.BoxStyle)
		screen.SetContent(right, y, tcell.RuneVLine, nil, self.BoxStyle)
	}
	screen.SetContent(0, top, tcell.RuneULCorner, nil, self.BoxStyle)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, self.BoxStyle)
	screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, self.BoxStyle)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, self.BoxStyle)

	// text
	y := top + 1
	for _, line := range strings.Split(snap.Text, "\n") {
		if y >= bottom {
			break
		}
		x := 2
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if x+w > right-1 {
				break
			}
			screen.SetContent(x, y, r, nil, self.TextStyle)
			x += max(w, 1)
		}
		y += 1
	}

	// advance indicator
	if snap.PageComplete {
		screen.SetContent(right-2, bottom-1, self.Indicator, nil, self.IndicatorStyle)
	}
}
