package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termshogi/msgcat"
	"termshogi/types"
)

const (
	promotionWidth  = 46
	promotionHeight = 7
)

// PromotionDialog asks whether a move into, out of or within the promotion zone
// should promote. It covers the whole screen so no click reaches the board beneath.
type PromotionDialog struct {
	*MenuCard
	msg     *msgcat.Catalog
	buttons []*MenuButton
	focus   int
}

func NewPromotionDialog(msg *msgcat.Catalog, onPromote, onKeep, onCancel func()) *PromotionDialog {
	d := &PromotionDialog{
		MenuCard: NewMenuCard("", promotionWidth, promotionHeight),
		msg:      msg,
	}
	d.buttons = []*MenuButton{
		NewMenuButton(msg.Text("promotion.promote", nil), 'y', true, onPromote),
		NewMenuButton(msg.Text("promotion.keep", nil), 'n', false, onKeep),
		NewMenuButton(msg.Text("promotion.cancel", nil), 0, false, onCancel),
	}
	d.setFocus(0)
	return d
}

// SetPiece shows the piece about to move and resets focus to Promote.
func (d *PromotionDialog) SetPiece(pc types.Piece, pieceStyle string) {
	promoted := types.Piece{Type: pc.Type.Promoted(), Color: pc.Color}
	d.SetHeading(d.msg.Text("promotion.title", map[string]string{
		"From": pieceGlyph(pc, pieceStyle),
		"To":   pieceGlyph(promoted, pieceStyle),
	}))
	d.setFocus(0)
}

func (d *PromotionDialog) setFocus(i int) {
	d.focus = (i + len(d.buttons)) % len(d.buttons)
	for j, b := range d.buttons {
		b.SetFocused(j == d.focus)
	}
}

func (d *PromotionDialog) Draw(screen tcell.Screen) {
	d.MenuCard.Draw(screen)
	x, _, width, _ := d.CardRect()

	total := -1
	for _, b := range d.buttons {
		total += b.Width() + 1
	}
	col := x + (width-total)/2
	row := d.BodyTop() + 1
	for _, b := range d.buttons {
		col += b.Draw(screen, col, row) + 1
	}
}

func (d *PromotionDialog) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return d.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyEscape:
			d.buttons[len(d.buttons)-1].Select()
			return
		case tcell.KeyLeft, tcell.KeyBacktab:
			d.setFocus(d.focus - 1)
			return
		case tcell.KeyRight, tcell.KeyTab:
			d.setFocus(d.focus + 1)
			return
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				d.setFocus(d.focus - 1)
				return
			case 'l':
				d.setFocus(d.focus + 1)
				return
			}
		}
		for _, b := range d.buttons {
			if b.HandleKey(event) {
				return
			}
		}
	})
}

func (d *PromotionDialog) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return d.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !d.InRect(x, y) {
			return false, nil
		}
		if action == tview.MouseLeftClick || action == tview.MouseLeftDoubleClick {
			for i, b := range d.buttons {
				if b.Contains(x, y) {
					d.setFocus(i)
					b.Select()
					break
				}
			}
		}
		return true, nil
	})
}
