package shogi

import (
	"errors"
	"fmt"

	"termshogi/types"
)

var (
	ErrOffBoard      = errors.New("square is off the board")
	ErrNoPiece       = errors.New("no piece on origin square")
	ErrNotOwnPiece   = errors.New("piece belongs to the opponent")
	ErrUnreachable   = errors.New("piece cannot reach destination")
	ErrCannotPromote = errors.New("piece cannot promote on this move")
	ErrMustPromote   = errors.New("piece must promote on this move")
	ErrNotInHand     = errors.New("piece is not in hand")
	ErrOccupied      = errors.New("destination is occupied")
	ErrDeadDrop      = errors.New("dropped piece would have no legal move")
	ErrNifu          = errors.New("file already has an unpromoted pawn")
	ErrPawnDropMate  = errors.New("pawn drop gives mate")
	ErrKingInCheck   = errors.New("move leaves king in check")
	ErrNoHistory     = errors.New("no move to undo")
)

// MakeMove validates m for the side to move and applies it. On error the position is unchanged.
func (p *Position) MakeMove(m types.Move) error {
	if err := p.apply(m); err != nil {
		return err
	}
	if m.IsDrop() && m.Drop == types.Pawn && p.InCheck(p.turn) && !p.HasLegalMove() {
		p.undo()
		return fmt.Errorf("%s: %w", m, ErrPawnDropMate)
	}
	return nil
}

// UnmakeMove takes back the last move made with MakeMove.
func (p *Position) UnmakeMove() error {
	if len(p.history) == 0 {
		return ErrNoHistory
	}
	p.undo()
	return nil
}

// apply checks every rule except pawn-drop mate and mutates the position.
func (p *Position) apply(m types.Move) error {
	mover := p.turn
	if !m.To.Valid() || (!m.IsDrop() && !m.From.Valid()) {
		return fmt.Errorf("%s: %w", m, ErrOffBoard)
	}
	to := m.To.Index()

	if m.IsDrop() {
		kind := m.Drop
		if !kind.IsHandType() || p.hands[mover][kind] == 0 {
			return fmt.Errorf("%s: %w", m, ErrNotInHand)
		}
		if !p.board[to].IsEmpty() {
			return fmt.Errorf("%s: %w", m, ErrOccupied)
		}
		if isDeadSquare(mover, kind, m.To) {
			return fmt.Errorf("%s: %w", m, ErrDeadDrop)
		}
		if kind == types.Pawn && p.fileHasPawn(mover, m.To.File) {
			return fmt.Errorf("%s: %w", m, ErrNifu)
		}
		p.hands[mover][kind]--
		p.board[to] = types.Piece{Type: kind, Color: mover}
		p.history = append(p.history, undoRecord{move: m})
	} else {
		pc := p.board[m.From.Index()]
		if pc.IsEmpty() {
			return fmt.Errorf("%s: %w", m, ErrNoPiece)
		}
		if pc.Color != mover {
			return fmt.Errorf("%s: %w", m, ErrNotOwnPiece)
		}
		if !containsSquare(p.MoveCandidates(m.From, pc), m.To) {
			return fmt.Errorf("%s: %w", m, ErrUnreachable)
		}
		kind := pc.Type
		if m.Promote {
			if !kind.CanPromote() || !(types.InPromotionZone(mover, m.From) || types.InPromotionZone(mover, m.To)) {
				return fmt.Errorf("%s: %w", m, ErrCannotPromote)
			}
			kind = kind.Promoted()
		} else if isDeadSquare(mover, kind, m.To) {
			return fmt.Errorf("%s: %w", m, ErrMustPromote)
		}
		captured := p.board[to]
		if !captured.IsEmpty() {
			p.hands[mover][captured.Type.Unpromoted()]++
		}
		p.board[to] = types.Piece{Type: kind, Color: mover}
		p.board[m.From.Index()] = types.Piece{}
		p.history = append(p.history, undoRecord{move: m, moved: pc, captured: captured})
	}

	p.turn = mover.Opponent()
	p.ply++
	if p.InCheck(mover) {
		p.undo()
		return fmt.Errorf("%s: %w", m, ErrKingInCheck)
	}
	return nil
}

func (p *Position) undo() {
	rec := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	mover := p.turn.Opponent()
	m := rec.move
	if m.IsDrop() {
		p.board[m.To.Index()] = types.Piece{}
		p.hands[mover][m.Drop]++
	} else {
		p.board[m.From.Index()] = rec.moved
		p.board[m.To.Index()] = rec.captured
		if !rec.captured.IsEmpty() {
			p.hands[mover][rec.captured.Type.Unpromoted()]--
		}
	}
	p.turn = mover
	p.ply--
}

// isDeadSquare reports whether a piece of kind would have no further move from sq.
func isDeadSquare(c types.Color, kind types.PieceType, sq types.Square) bool {
	rel := sq.Rank
	if c == types.White {
		rel = 10 - sq.Rank
	}
	switch kind {
	case types.Pawn, types.Lance:
		return rel == 1
	case types.Knight:
		return rel <= 2
	}
	return false
}

func containsSquare(squares []types.Square, sq types.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
