package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MenuButton is a styled button drawn on a MenuCard. It remembers where it was last
// drawn so mouse clicks can be hit-tested against it.
type MenuButton struct {
	label    string
	hotkey   rune
	primary  bool
	focused  bool
	onSelect func()

	x, y, w int
}

// NewMenuButton creates a new menu button. hotkey may be 0.
func NewMenuButton(label string, hotkey rune, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		hotkey:   hotkey,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

func (b *MenuButton) Select() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	switch {
	case event.Key() == tcell.KeyEnter && b.focused:
		b.Select()
		return true
	case event.Key() == tcell.KeyRune && b.hotkey != 0 && event.Rune() == b.hotkey:
		b.Select()
		return true
	}
	return false
}

// Contains reports whether (x, y) is on the button as last drawn.
func (b *MenuButton) Contains(x, y int) bool {
	return b.w > 0 && y == b.y && x >= b.x && x < b.x+b.w
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Draw renders the button component at the given position.
// Returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := b.Width()
	b.x, b.y, b.w = x, y, width

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		drawText(screen, x+1, y, label, style)
	} else {
		dimStyle := tcell.StyleDefault.
			Foreground(MenuColors.Label).
			Background(MenuColors.CardBG)
		bracketStyle := tcell.StyleDefault.
			Foreground(MenuColors.Border).
			Background(MenuColors.CardBG)

		screen.SetContent(x, y, '[', nil, bracketStyle)
		col := x + 1 + drawText(screen, x+1, y, label, dimStyle)
		screen.SetContent(col, y, ']', nil, bracketStyle)
	}

	return width
}

// Width returns the button width.
func (b *MenuButton) Width() int {
	return textWidth(b.text()) + 2 // 1 padding on each side (or brackets)
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
