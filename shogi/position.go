// Package shogi implements the rules of shogi: board and hands, SFEN, move candidates
// and fully validated make/unmake.
package shogi

import (
	"termshogi/types"
)

// Position is a shogi position with an undo stack. The zero value is not usable; call NewPosition.
type Position struct {
	board   [81]types.Piece
	hands   [2][types.King + 1]int
	turn    types.Color
	ply     int
	history []undoRecord
}

type undoRecord struct {
	move     types.Move
	moved    types.Piece
	captured types.Piece
}

// NewPosition returns an empty board, black to move, ply 1.
func NewPosition() *Position {
	return &Position{turn: types.Black, ply: 1}
}

// NewStartPosition returns the even-game starting position.
func NewStartPosition() *Position {
	p, err := ParseSFEN(StartSFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// PieceAt returns the piece on sq, if any.
func (p *Position) PieceAt(sq types.Square) (types.Piece, bool) {
	if !sq.Valid() {
		return types.Piece{}, false
	}
	pc := p.board[sq.Index()]
	return pc, !pc.IsEmpty()
}

// SideToMove returns the side whose turn it is.
func (p *Position) SideToMove() types.Color {
	return p.turn
}

// HandCount returns how many pieces of kind side c holds.
func (p *Position) HandCount(c types.Color, kind types.PieceType) int {
	if !kind.IsHandType() {
		return 0
	}
	return p.hands[c][kind]
}

// Ply returns the current move number, starting at the SFEN move number.
func (p *Position) Ply() int {
	return p.ply
}

// SetPiece puts pc on sq, or clears sq when pc is empty. It does not touch the undo stack.
func (p *Position) SetPiece(sq types.Square, pc types.Piece) {
	if !sq.Valid() {
		return
	}
	p.board[sq.Index()] = pc
}

// SetHand sets the number of pieces of kind held by side c.
func (p *Position) SetHand(c types.Color, kind types.PieceType, count int) {
	if !kind.IsHandType() || count < 0 {
		return
	}
	p.hands[c][kind] = count
}

// SetTurn sets the side to move.
func (p *Position) SetTurn(c types.Color) {
	p.turn = c
}

// Clone returns a deep copy, undo stack included.
func (p *Position) Clone() *Position {
	clone := *p
	clone.history = append([]undoRecord(nil), p.history...)
	return &clone
}

func (p *Position) kingSquare(c types.Color) (types.Square, bool) {
	for i, pc := range p.board {
		if pc.Type == types.King && pc.Color == c {
			return types.SquareFromIndex(i), true
		}
	}
	return types.Square{}, false
}

func (p *Position) fileHasPawn(c types.Color, file int) bool {
	for rank := 1; rank <= 9; rank++ {
		pc := p.board[types.NewSquare(file, rank).Index()]
		if pc.Type == types.Pawn && pc.Color == c {
			return true
		}
	}
	return false
}
