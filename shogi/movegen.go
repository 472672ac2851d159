package shogi

import (
	"termshogi/types"
)

type offset struct{ df, dr int }

// Offsets are written for black, whose forward direction is towards rank 1.
var (
	pawnSteps   = []offset{{0, -1}}
	knightSteps = []offset{{-1, -2}, {1, -2}}
	silverSteps = []offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 1}, {1, 1}}
	goldSteps   = []offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}}
	kingSteps   = []offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	orthogonal  = []offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	diagonal    = []offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	lanceSlides = []offset{{0, -1}}
)

// movement returns the step and slide offsets of a kind for black.
func movement(kind types.PieceType) (steps, slides []offset) {
	switch kind {
	case types.Pawn:
		return pawnSteps, nil
	case types.Lance:
		return nil, lanceSlides
	case types.Knight:
		return knightSteps, nil
	case types.Silver:
		return silverSteps, nil
	case types.Gold, types.ProPawn, types.ProLance, types.ProKnight, types.ProSilver:
		return goldSteps, nil
	case types.Bishop:
		return nil, diagonal
	case types.Rook:
		return nil, orthogonal
	case types.King:
		return kingSteps, nil
	case types.Horse:
		return orthogonal, diagonal
	case types.Dragon:
		return diagonal, orthogonal
	}
	return nil, nil
}

// attacks returns every square pc on from reaches, occupied squares included.
// Slides stop at the first occupied square.
func (p *Position) attacks(from types.Square, pc types.Piece) []types.Square {
	steps, slides := movement(pc.Type)
	sign := 1
	if pc.Color == types.White {
		sign = -1
	}
	var out []types.Square
	for _, o := range steps {
		to := from.Offset(o.df*sign, o.dr*sign)
		if to.Valid() {
			out = append(out, to)
		}
	}
	for _, o := range slides {
		to := from.Offset(o.df*sign, o.dr*sign)
		for to.Valid() {
			out = append(out, to)
			if !p.board[to.Index()].IsEmpty() {
				break
			}
			to = to.Offset(o.df*sign, o.dr*sign)
		}
	}
	return out
}

// MoveCandidates returns the destinations pc on from can reach geometrically, squares held
// by pc's own side excluded. Check, promotion and the dead-piece rule are not considered.
func (p *Position) MoveCandidates(from types.Square, pc types.Piece) []types.Square {
	var out []types.Square
	for _, to := range p.attacks(from, pc) {
		occ := p.board[to.Index()]
		if !occ.IsEmpty() && occ.Color == pc.Color {
			continue
		}
		out = append(out, to)
	}
	return out
}

// IsAttacked reports whether any piece of side by attacks sq.
func (p *Position) IsAttacked(sq types.Square, by types.Color) bool {
	for i, pc := range p.board {
		if pc.IsEmpty() || pc.Color != by {
			continue
		}
		for _, to := range p.attacks(types.SquareFromIndex(i), pc) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether side c's king is attacked. A side without a king is never in check.
func (p *Position) InCheck(c types.Color) bool {
	king, ok := p.kingSquare(c)
	if !ok {
		return false
	}
	return p.IsAttacked(king, c.Opponent())
}

// LegalMoves returns every legal move for the side to move.
func (p *Position) LegalMoves() []types.Move {
	var out []types.Move
	p.eachPseudoMove(func(m types.Move) bool {
		if p.MakeMove(m) == nil {
			_ = p.UnmakeMove()
			out = append(out, m)
		}
		return true
	})
	return out
}

// HasLegalMove reports whether the side to move has any legal move.
// The pawn-drop-mate rule is not applied to the replies it looks at.
func (p *Position) HasLegalMove() bool {
	found := false
	p.eachPseudoMove(func(m types.Move) bool {
		if p.apply(m) == nil {
			p.undo()
			found = true
			return false
		}
		return true
	})
	return found
}

// IsCheckmate reports whether the side to move is in check with no legal reply.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.turn) && !p.HasLegalMove()
}

// eachPseudoMove calls fn with board moves (both promotion variants) and drops on empty
// squares for the side to move, until fn returns false.
func (p *Position) eachPseudoMove(fn func(types.Move) bool) {
	for i, pc := range p.board {
		if pc.IsEmpty() || pc.Color != p.turn {
			continue
		}
		from := types.SquareFromIndex(i)
		for _, to := range p.MoveCandidates(from, pc) {
			if !fn(types.NormalMove(from, to, false)) {
				return
			}
			if pc.Type.CanPromote() && !fn(types.NormalMove(from, to, true)) {
				return
			}
		}
	}
	for _, kind := range types.HandTypes {
		if p.hands[p.turn][kind] == 0 {
			continue
		}
		for _, to := range types.AllSquares() {
			if !p.board[to.Index()].IsEmpty() {
				continue
			}
			if !fn(types.DropMove(kind, to)) {
				return
			}
		}
	}
}
