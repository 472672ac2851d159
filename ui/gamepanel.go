package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termshogi/game"
	"termshogi/msgcat"
	"termshogi/shogi"
	"termshogi/types"
)

const maxVisibleMoves = 12

// checkReporter is implemented by oracles that can tell check and mate apart.
type checkReporter interface {
	InCheck(c types.Color) bool
	IsCheckmate() bool
}

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box      *tview.TextView
	msg      *msgcat.Catalog
	game     *game.GameState
	handicap shogi.Handicap
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(msg *msgcat.Catalog) *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
		msg: msg,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

func (p *GameInfoPanel) SetGame(g *game.GameState, h shogi.Handicap) {
	p.game = g
	p.handicap = h
	p.Refresh()
}

// Refresh rebuilds the panel text from the game.
func (p *GameInfoPanel) Refresh() {
	if p.game == nil {
		p.box.SetText("")
		return
	}
	p.box.SetText(p.render())
}

func (p *GameInfoPanel) render() string {
	g := p.game
	var b strings.Builder

	side := g.SideToMove()
	b.WriteString("[white::b]")
	b.WriteString(p.msg.Text("panel.turn", map[string]string{
		"Symbol": side.Symbol(),
		"Side":   p.msg.Text("side."+side.String(), nil),
	}))
	b.WriteString("[-:-:-]\n")
	if cr, ok := g.Oracle().(checkReporter); ok {
		switch {
		case cr.IsCheckmate():
			winner := p.msg.Text("side."+side.Opponent().String(), nil)
			fmt.Fprintf(&b, "[yellow::b]%s[-:-:-]\n", p.msg.Text("panel.checkmate", map[string]string{"Winner": winner}))
		case cr.InCheck(side):
			fmt.Fprintf(&b, "[yellow::b]%s[-:-:-]\n", p.msg.Text("panel.check", nil))
		}
	}
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	fmt.Fprintf(&b, "%s\n", p.msg.Text("panel.ply", map[string]int{"Ply": g.Ply()}))
	if p.handicap != "" && p.handicap != shogi.HandicapEven {
		fmt.Fprintf(&b, "%s\n", p.msg.Text("panel.handicap", map[string]string{
			"Name": p.msg.Text("handicap."+string(p.handicap), nil),
		}))
	}
	if kind, ok := g.SelectedHandPiece(); ok {
		fmt.Fprintf(&b, "[green]%s[-]\n", p.msg.Text("panel.drop", map[string]any{
			"Piece": kind.Kanji(),
			"Count": g.HandCount(side, kind),
		}))
	}

	records := g.Records()
	if len(records) > 0 {
		fmt.Fprintf(&b, "\n[white::b]%s[-:-:-]\n", p.msg.Text("panel.moves", nil))
		b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		for _, line := range moveLines(records, maxVisibleMoves) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if status := g.Status(); status != "" {
		fmt.Fprintf(&b, "\n[red]%s[-]\n", tview.Escape(status))
	}
	return b.String()
}

// moveLines formats the last max records in KIF style, newest marked.
func moveLines(records []game.Record, max int) []string {
	start := 0
	if len(records) > max {
		start = len(records) - max
	}
	var lines []string
	if start > 0 {
		lines = append(lines, fmt.Sprintf("[dimgray]  ··· %d earlier[-]", start))
	}
	for i := start; i < len(records); i++ {
		r := records[i]
		var prevTo types.Square
		if i > 0 {
			prevTo = records[i-1].Move.To
		}
		marker := " "
		if i == len(records)-1 {
			marker = "[white]>[-]"
		}
		lines = append(lines, fmt.Sprintf("%s[dimgray]%3d.[-] %s", marker, r.Ply, types.KIFMove(r.Color, r.Move, r.Piece, prevTo)))
	}
	return lines
}

// CreateGameLayout lays out gote's hand, the board, then the info panel above
// sente's hand, with the hint bar underneath.
func CreateGameLayout(board *BoardUI, hands [2]*HandUI, panel *GameInfoPanel, hint *tview.TextView) *tview.Flex {
	left := tview.NewFlex().SetDirection(tview.FlexRow)
	left.AddItem(hands[types.White].Box, handHeight, 0, false)
	left.AddItem(nil, 0, 1, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow)
	right.AddItem(panel.Box(), 0, 1, false)
	right.AddItem(hands[types.Black].Box, handHeight, 0, false)

	boardCol := tview.NewFlex().SetDirection(tview.FlexRow)
	boardCol.AddItem(board.Box, boardRows, 0, true)
	boardCol.AddItem(nil, 0, 1, false)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(left, handWidth, 0, false)
	boardRow.AddItem(nil, 1, 0, false)
	boardRow.AddItem(boardCol, boardWidth, 0, true)
	boardRow.AddItem(nil, 2, 0, false)
	boardRow.AddItem(right, 0, 1, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
