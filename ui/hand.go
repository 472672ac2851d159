package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termshogi/game"
	"termshogi/msgcat"
	"termshogi/types"
)

// Hand layout: a title row, then one row per kind in types.HandTypes order.
const (
	handTitleRows = 1
	handWidth     = 12
	handHeight    = handTitleRows + 7
)

// bucketAt returns the hand kind drawn on row py of a panel whose top is y.
func bucketAt(y, py int) (types.PieceType, bool) {
	i := py - y - handTitleRows
	if i < 0 || i >= len(types.HandTypes) {
		return types.NoPieceType, false
	}
	return types.HandTypes[i], true
}

// HandUI draws the pieces in hand of one side, one bucket per row.
type HandUI struct {
	Box   *tview.Box
	color types.Color
	board *BoardUI
	msg   *msgcat.Catalog
}

func NewHand(c types.Color, board *BoardUI, msg *msgcat.Catalog) *HandUI {
	hand := &HandUI{
		Box:   tview.NewBox(),
		color: c,
		board: board,
		msg:   msg,
	}
	hand.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if hand.board.game == nil {
			return x, y, width, height
		}
		hand.draw(screen, x, y, width)
		return x, y, width, height
	})
	return hand
}

func (h *HandUI) Color() types.Color {
	return h.color
}

// BucketAt returns the kind under the screen cell (px, py).
func (h *HandUI) BucketAt(px, py int) (types.PieceType, bool) {
	if !h.Box.InRect(px, py) {
		return types.NoPieceType, false
	}
	_, y, _, _ := h.Box.GetInnerRect()
	return bucketAt(y, py)
}

// count is the number shown for kind, less one while it is being dragged out.
func (h *HandUI) count(kind types.PieceType) int {
	g := h.board.game
	n := g.HandCount(h.color, kind)
	if m := h.board.gestures; m != nil {
		if o, dragging := m.DragOrigin(); dragging && o.Kind == game.OriginHand && o.Color == h.color && o.Piece == kind {
			n--
		}
	}
	return n
}

func (h *HandUI) draw(screen tcell.Screen, x, y, width int) {
	styles := h.board.styles
	g := h.board.game
	base := tcell.StyleDefault.Background(styles[styleBoard]).Foreground(styles[styleLine])
	for row := y; row < y+handHeight; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, base)
		}
	}

	title := fmt.Sprintf("%s %s", h.color.Symbol(), h.msg.Text("side."+h.color.String(), nil))
	titleStyle := base
	if g.SideToMove() == h.color {
		titleStyle = titleStyle.Bold(true).Foreground(styles[styleBlack])
	}
	drawText(screen, x+1, y, title, titleStyle)

	selected, dropMode := g.SelectedHandPiece()
	marks := h.annotationColors()
	for i, kind := range types.HandTypes {
		row := y + handTitleRows + i
		n := h.count(kind)
		style := base
		if c, ok := marks[kind]; ok {
			style = style.Background(c)
		}
		if dropMode && selected == kind && g.SideToMove() == h.color {
			style = style.Background(styles[styleSelected])
		}
		if n > 0 {
			style = style.Foreground(styles[styleBlack])
		} else {
			style = style.Dim(true)
		}
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
		col := x + 1
		col += drawText(screen, col, row, pieceGlyph(types.Piece{Type: kind, Color: h.color}, h.board.cfg.Theme.PieceStyle), style)
		if n > 0 {
			drawText(screen, col+1, row, fmt.Sprintf("×%d", n), style)
		}
	}
}

func (h *HandUI) annotationColors() map[types.PieceType]tcell.Color {
	marks := make(map[types.PieceType]tcell.Color)
	notes := h.board.notes
	if notes == nil {
		return marks
	}
	add := func(s game.Shape) {
		for _, o := range []game.Origin{s.Orig, s.Dest} {
			if o.Kind == game.OriginHand && o.Color == h.color {
				marks[o.Piece] = h.board.brushColor(s.Brush)
			}
		}
	}
	for _, s := range notes.Shapes() {
		add(s)
	}
	if cur, ok := notes.Drawing(); ok {
		add(cur)
	}
	return marks
}
