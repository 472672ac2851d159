package game

import (
	"go.uber.org/zap"

	"termshogi/types"
)

// PendingPromotion holds both legal variants of a move whose destination allows a choice.
type PendingPromotion struct {
	Promote    types.Move
	NonPromote types.Move
}

// To returns the shared destination.
func (p PendingPromotion) To() types.Square {
	return p.NonPromote.To
}

type choiceKind int

const (
	choiceNone choiceKind = iota
	choiceSingle
	choicePromotion
)

type moveChoice struct {
	kind      choiceKind
	move      types.Move
	promotion PendingPromotion
}

// pickMoveTo classifies the legal moves ending on to.
func (g *GameState) pickMoveTo(to types.Square) moveChoice {
	var drop, promote, plain *types.Move
	for i := range g.legalMoves {
		m := &g.legalMoves[i]
		if m.To != to {
			continue
		}
		switch {
		case m.IsDrop():
			if drop == nil {
				drop = m
			}
		case m.Promote:
			if promote == nil {
				promote = m
			}
		default:
			if plain == nil {
				plain = m
			}
		}
	}
	switch {
	case drop != nil:
		return moveChoice{kind: choiceSingle, move: *drop}
	case promote != nil && plain != nil:
		return moveChoice{kind: choicePromotion, promotion: PendingPromotion{Promote: *promote, NonPromote: *plain}}
	case promote != nil:
		return moveChoice{kind: choiceSingle, move: *promote}
	case plain != nil:
		return moveChoice{kind: choiceSingle, move: *plain}
	}
	return moveChoice{kind: choiceNone}
}

// HasPendingPromotion reports whether a promotion decision is outstanding.
func (g *GameState) HasPendingPromotion() bool {
	return g.pending != nil
}

// PendingPromotion returns the outstanding decision.
func (g *GameState) PendingPromotion() (PendingPromotion, bool) {
	if g.pending == nil {
		return PendingPromotion{}, false
	}
	return *g.pending, true
}

// PendingPromotionPiece returns the piece that would promote.
func (g *GameState) PendingPromotionPiece() (types.Piece, bool) {
	if g.pending == nil {
		return types.Piece{}, false
	}
	return g.oracle.PieceAt(g.pending.NonPromote.From)
}

// PendingPromotionTarget returns the destination of the outstanding decision.
func (g *GameState) PendingPromotionTarget() (types.Square, bool) {
	if g.pending == nil {
		return types.Square{}, false
	}
	return g.pending.To(), true
}

// ChoosePromotion resolves the outstanding decision and commits the chosen variant.
func (g *GameState) ChoosePromotion(promote bool) {
	if g.pending == nil {
		return
	}
	p := *g.pending
	g.pending = nil
	if promote {
		g.execute(p.Promote)
	} else {
		g.execute(p.NonPromote)
	}
}

// CancelPromotion discards the outstanding decision without moving.
func (g *GameState) CancelPromotion() {
	if g.pending == nil {
		return
	}
	g.log.Debug("promotion cancelled", zap.Stringer("move", g.pending.NonPromote))
	g.pending = nil
	g.ClearSelection()
}

func (g *GameState) enterPromotion(p PendingPromotion) {
	g.ClearSelection()
	g.pending = &p
	g.log.Debug("promotion pending", zap.Stringer("move", p.NonPromote))
}
