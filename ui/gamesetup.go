package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termshogi/engine"
	"termshogi/msgcat"
	"termshogi/shogi"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form *tview.Form
	flex *tview.Flex

	handicap shogi.Handicap
	sound    bool
}

// NewGameSetup creates a new game setup form. onStart receives the chosen game and
// whether sound is on.
func NewGameSetup(msg *msgcat.Catalog, handicap shogi.Handicap, sound bool, onStart func(engine.GameConfig, bool), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		handicap: handicap,
		sound:    sound,
	}

	presets := shogi.Handicaps()
	names := make([]string, len(presets))
	initial := 0
	for i, h := range presets {
		names[i] = msg.Text("handicap."+string(h), nil)
		if h == handicap {
			initial = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown(msg.Text("setup.handicap", nil), names, initial, func(option string, index int) {
		if index >= 0 && index < len(presets) {
			setup.handicap = presets[index]
		}
	})

	form.AddCheckbox(msg.Text("setup.sound", nil), sound, func(checked bool) {
		setup.sound = checked
	})

	form.AddButton(msg.Text("setup.play", nil), func() {
		cfg := engine.DefaultConfig()
		cfg.Handicap = setup.handicap
		onStart(cfg, setup.sound)
	})

	form.AddButton(msg.Text("setup.quit", nil), func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" " + msg.Text("setup.title", nil) + " ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText(msg.Text("setup.help", nil)).
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
