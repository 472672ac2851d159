package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of cards, buttons and forms: dark ink with a vermilion accent.
var MenuColors = struct {
	Border      tcell.Color // Button brackets
	BorderFocus tcell.Color // Card border
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color // The ☗ before a card heading
	Label       tcell.Color // Unfocused button labels
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(95),
	BorderFocus: tcell.PaletteColor(137),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(230),
	TitleAccent: tcell.PaletteColor(166),
	Label:       tcell.PaletteColor(250),
	ButtonBG:    tcell.PaletteColor(94),
	ButtonFocus: tcell.PaletteColor(166),
	ButtonText:  tcell.PaletteColor(255),
}
