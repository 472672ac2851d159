package game

import (
	"go.uber.org/zap"

	"termshogi/types"
)

// resolveBoardMoves lists the legal moves of pc on from. Each reachable destination is
// tried without and then with promotion.
func (g *GameState) resolveBoardMoves(from types.Square, pc types.Piece) []types.Move {
	var moves []types.Move
	for _, to := range g.oracle.MoveCandidates(from, pc) {
		for _, promote := range []bool{false, true} {
			m := types.NormalMove(from, to, promote)
			if g.probe(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// resolveDrops lists the legal drops of kind on every empty square.
func (g *GameState) resolveDrops(kind types.PieceType) []types.Move {
	var moves []types.Move
	for _, to := range types.AllSquares() {
		if _, occupied := g.oracle.PieceAt(to); occupied {
			continue
		}
		m := types.DropMove(kind, to)
		if g.probe(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// probe reports whether the oracle accepts m, leaving the position as it was.
func (g *GameState) probe(m types.Move) bool {
	if err := g.oracle.MakeMove(m); err != nil {
		return false
	}
	if err := g.oracle.UnmakeMove(); err != nil {
		g.log.Error("rollback after probe failed", zap.Stringer("move", m), zap.Error(err))
	}
	return true
}
