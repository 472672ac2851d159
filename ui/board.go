// Package ui provides the tview controls used to play shogi in the terminal.
package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"termshogi/config"
	"termshogi/game"
	"termshogi/types"
)

// Board layout in screen cells, relative to the Box origin.
const (
	cellW      = 4
	cellH      = 2
	boardLeft  = 1
	boardTop   = 1
	boardCols  = 9
	boardWidth = boardLeft + boardCols*cellW + 3 // rank labels on the right
	boardRows  = boardTop + 9*cellH
)

// Palette indexes into BoardUI.styles.
const (
	styleBoard = iota
	styleLine
	styleBlack
	styleWhite
	stylePromoted
	styleCursor
	styleSelected
	styleDest
	styleLastMove
	styleArrowGreen
	styleArrowRed
	styleArrowBlue
	styleArrowYellow
	styleError
)

// cellOrigin returns the top-left screen cell of sq for a board drawn at (x, y).
func cellOrigin(x, y int, sq types.Square) (int, int) {
	col := boardCols - sq.File
	return x + boardLeft + col*cellW, y + boardTop + (sq.Rank-1)*cellH
}

// squareAt is the inverse of cellOrigin.
func squareAt(x, y, px, py int) (types.Square, bool) {
	dx, dy := px-x-boardLeft, py-y-boardTop
	if dx < 0 || dy < 0 {
		return types.Square{}, false
	}
	col, row := dx/cellW, dy/cellH
	if col >= boardCols || row >= 9 {
		return types.Square{}, false
	}
	return types.NewSquare(boardCols-col, row+1), true
}

// BoardUI draws the 9x9 board with pieces, selection, legal destinations, the last
// move, annotations and the keyboard cursor.
type BoardUI struct {
	Box *tview.Box

	cfg    *config.Config
	styles []tcell.Color

	game     *game.GameState
	gestures *game.Gestures
	notes    *game.Annotations

	cursor    types.Square
	hasCursor bool
}

func NewBoard(c *config.Config) *BoardUI {
	board := &BoardUI{
		Box: tview.NewBox(),
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if board.game == nil {
			return x, y, width, height
		}
		board.draw(screen, x, y)
		return x, y, boardWidth, boardRows
	})
	return board
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),       // 0
		tcell.PaletteColor(c.Theme.Colors.LineColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.BlackColor),       // 2
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),       // 3
		tcell.PaletteColor(c.Theme.Colors.PromotedColor),    // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),    // 5
		tcell.PaletteColor(c.Theme.Colors.SelectedColorBG),  // 6
		tcell.PaletteColor(c.Theme.Colors.DestColorBG),      // 7
		tcell.PaletteColor(c.Theme.Colors.LastMoveColorBG),  // 8
		tcell.PaletteColor(c.Theme.Colors.ArrowGreen),       // 9
		tcell.PaletteColor(c.Theme.Colors.ArrowRed),         // 10
		tcell.PaletteColor(c.Theme.Colors.ArrowBlue),        // 11
		tcell.PaletteColor(c.Theme.Colors.ArrowYellow),      // 12
		tcell.PaletteColor(c.Theme.Colors.StatusErrorColor), // 13
	}
	b.cfg = c
}

// SetGame points the board at a new game.
func (b *BoardUI) SetGame(g *game.GameState, m *game.Gestures, notes *game.Annotations) {
	b.game = g
	b.gestures = m
	b.notes = notes
	b.ResetCursor()
}

// SquareAt returns the square under the screen cell (px, py).
func (b *BoardUI) SquareAt(px, py int) (types.Square, bool) {
	x, y, _, _ := b.Box.GetInnerRect()
	return squareAt(x, y, px, py)
}

func (b *BoardUI) Cursor() (types.Square, bool) {
	return b.cursor, b.hasCursor
}

// MoveCursor moves the keyboard cursor by h files to the right and v ranks down, as
// seen on screen. The first call places the cursor on the last move or the centre.
func (b *BoardUI) MoveCursor(h, v int) {
	if !b.hasCursor {
		b.hasCursor = true
		b.cursor = types.NewSquare(5, 5)
		if b.game != nil {
			if last, ok := b.game.LastMove(); ok {
				b.cursor = last.To
			}
		}
		return
	}
	next := b.cursor.Offset(-h, v)
	if next.Valid() {
		b.cursor = next
	}
}

func (b *BoardUI) ResetCursor() {
	b.hasCursor = false
}

func (b *BoardUI) draw(screen tcell.Screen, x, y int) {
	base := tcell.StyleDefault.Background(b.styles[styleBoard])
	for row := y; row < y+boardRows; row++ {
		for col := x; col < x+boardWidth; col++ {
			screen.SetContent(col, row, ' ', nil, base)
		}
	}

	last, hasLast := b.game.LastMove()
	hidden, hiding := b.draggedSquare()
	marks := b.annotationColors()

	for _, sq := range types.AllSquares() {
		cx, cy := cellOrigin(x, y, sq)
		bg := b.styles[styleBoard]
		if hasLast && b.cfg.Theme.DrawLastMoveBackground && (sq == last.To || (last.HasFrom() && sq == last.From)) {
			bg = b.styles[styleLastMove]
		}
		if c, ok := marks[sq]; ok {
			bg = c
		}
		dest := b.game.IsLegalDestination(sq)
		if dest {
			bg = b.styles[styleDest]
		}
		if sel, ok := b.game.SelectedSquare(); ok && sel == sq {
			bg = b.styles[styleSelected]
		}
		if b.hasCursor && b.cursor == sq && b.cfg.Theme.DrawCursorBackground {
			bg = b.styles[styleCursor]
		}
		style := tcell.StyleDefault.Background(bg)

		for i := 0; i < cellW; i++ {
			screen.SetContent(cx+i, cy, ' ', nil, style)
		}
		lineStyle := tcell.StyleDefault.Background(b.styles[styleBoard]).Foreground(b.styles[styleLine])
		for i := 0; i < cellW; i++ {
			screen.SetContent(cx+i, cy+1, '─', nil, lineStyle)
		}

		pc, occupied := b.game.PieceAt(sq)
		switch {
		case occupied && !(hiding && hidden == sq):
			b.drawPiece(screen, cx, cy, pc, style)
		case dest:
			screen.SetContent(cx+1, cy, b.cfg.Theme.Symbols.Destination, nil, style.Foreground(b.styles[styleLine]))
		default:
			screen.SetContent(cx+1, cy, b.cfg.Theme.Symbols.Empty, nil, style.Foreground(b.styles[styleLine]))
		}
	}
	b.drawCoordinates(screen, x, y)
}

// drawPiece draws pc into the cell at (cx, cy): a gote marker then a two-column glyph.
func (b *BoardUI) drawPiece(screen tcell.Screen, cx, cy int, pc types.Piece, style tcell.Style) {
	fg := b.styles[styleBlack]
	if pc.Color == types.White {
		fg = b.styles[styleWhite]
	}
	if pc.Type.IsPromoted() {
		fg = b.styles[stylePromoted]
	}
	style = style.Foreground(fg).Bold(pc.Color == types.Black)
	if pc.Color == types.White {
		screen.SetContent(cx, cy, 'v', nil, style)
	}
	drawText(screen, cx+1, cy, b.glyph(pc), style)
}

func (b *BoardUI) glyph(pc types.Piece) string {
	return pieceGlyph(pc, b.cfg.Theme.PieceStyle)
}

// pieceGlyph renders pc in two screen columns.
func pieceGlyph(pc types.Piece, pieceStyle string) string {
	var s string
	if pieceStyle == "letters" {
		s = pc.String()
	} else {
		s = pc.Type.Kanji()
	}
	if w := runewidth.StringWidth(s); w < 2 {
		s += strings.Repeat(" ", 2-w)
	}
	return s
}

// draggedSquare returns the origin of a board drag, whose piece follows the pointer instead.
func (b *BoardUI) draggedSquare() (types.Square, bool) {
	if b.gestures == nil {
		return types.Square{}, false
	}
	o, dragging := b.gestures.DragOrigin()
	if !dragging || o.Kind != game.OriginBoard {
		return types.Square{}, false
	}
	return o.Square, true
}

func (b *BoardUI) annotationColors() map[types.Square]tcell.Color {
	marks := make(map[types.Square]tcell.Color)
	if b.notes == nil {
		return marks
	}
	add := func(s game.Shape) {
		c := b.brushColor(s.Brush)
		for _, o := range []game.Origin{s.Orig, s.Dest} {
			if o.Kind == game.OriginBoard {
				marks[o.Square] = c
			}
		}
	}
	for _, s := range b.notes.Shapes() {
		add(s)
	}
	if cur, ok := b.notes.Drawing(); ok {
		add(cur)
	}
	return marks
}

func (b *BoardUI) brushColor(br game.Brush) tcell.Color {
	switch br {
	case game.BrushRed:
		return b.styles[styleArrowRed]
	case game.BrushBlue:
		return b.styles[styleArrowBlue]
	case game.BrushYellow:
		return b.styles[styleArrowYellow]
	default:
		return b.styles[styleArrowGreen]
	}
}

func (b *BoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	style := tcell.StyleDefault.Background(b.styles[styleBoard]).Foreground(b.styles[styleLine])
	highlight := style.Background(b.styles[styleCursor])

	for file := 9; file >= 1; file-- {
		cx, _ := cellOrigin(x, y, types.NewSquare(file, 1))
		st := style
		if b.hasCursor && b.cursor.File == file {
			st = highlight
		}
		drawText(s, cx+1, y, types.FileLabel(file, b.cfg.Theme.FullWidthNumbers), st)
	}
	for rank := 1; rank <= 9; rank++ {
		_, cy := cellOrigin(x, y, types.NewSquare(1, rank))
		st := style
		if b.hasCursor && b.cursor.Rank == rank {
			st = highlight
		}
		drawText(s, x+boardLeft+boardCols*cellW+1, cy, types.RankKanji(rank), st)
	}
}

// drawText writes s from (x, y), advancing by each rune's display width. It returns
// the number of columns used.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(col, y, r, nil, style)
		col += w
	}
	return col - x
}
