package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a fixed-size card with rounded borders and a heading, centred in the
// rectangle of its Box. Only the card is painted so whatever is underneath stays visible.
type MenuCard struct {
	*tview.Box
	heading string
	width   int
	height  int
}

// NewMenuCard creates a card of the given outer size.
func NewMenuCard(heading string, width, height int) *MenuCard {
	return &MenuCard{
		Box:     tview.NewBox(),
		heading: heading,
		width:   width,
		height:  height,
	}
}

func (c *MenuCard) SetHeading(heading string) {
	c.heading = heading
}

// CardRect returns the screen rectangle of the card.
func (c *MenuCard) CardRect() (int, int, int, int) {
	x, y, width, height := c.GetInnerRect()
	w, h := c.width, c.height
	if w > width {
		w = width
	}
	if h > height {
		h = height
	}
	return x + (width-w)/2, y + (height-h)/2, w, h
}

// BodyTop returns the first row below the heading divider.
func (c *MenuCard) BodyTop() int {
	_, y, _, _ := c.CardRect()
	return y + 3
}

// Draw renders the card with rounded borders.
func (c *MenuCard) Draw(screen tcell.Screen) {
	x, y, width, height := c.CardRect()
	if width < 10 || height < 5 {
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(MenuColors.BorderFocus).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	if c.heading != "" {
		titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
		accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

		titleW := 3 + textWidth(c.heading)
		titleX := x + (width-titleW)/2
		screen.SetContent(titleX, y+1, '☗', nil, accentStyle)
		drawText(screen, titleX+3, y+1, c.heading, titleStyle)

		screen.SetContent(x, y+2, '├', nil, borderStyle)
		for col := x + 1; col < x+width-1; col++ {
			screen.SetContent(col, y+2, '─', nil, borderStyle)
		}
		screen.SetContent(x+width-1, y+2, '┤', nil, borderStyle)
	}
}
