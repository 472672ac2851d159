package game

import (
	"fmt"

	"go.uber.org/zap"

	"termshogi/types"
)

// ClickSquare handles a discrete click on a board square.
func (g *GameState) ClickSquare(sq types.Square) {
	if g.pending != nil {
		return
	}

	if _, ok := g.selection.HandPiece(); ok {
		if g.IsLegalDestination(sq) {
			if c := g.pickMoveTo(sq); c.kind == choiceSingle {
				g.execute(c.move)
			}
			return
		}
		g.SelectBoardSquare(sq)
		return
	}

	if from, ok := g.selection.Square(); ok {
		if sq == from {
			g.ClearSelection()
			return
		}
		if g.IsLegalDestination(sq) {
			g.commitChoice(g.pickMoveTo(sq), false)
			return
		}
	}

	g.SelectBoardSquare(sq)
}

// PerformBoardDrag handles a piece dragged from one square and released on another.
func (g *GameState) PerformBoardDrag(from, to types.Square) {
	if g.pending != nil {
		return
	}
	if from == to {
		g.ClearSelection()
		return
	}
	pc, ok := g.ownPieceAt(from)
	if !ok {
		g.ClearSelection()
		return
	}
	g.armBoard(from, pc)
	if !g.IsLegalDestination(to) {
		g.ClearSelection()
		return
	}
	g.commitChoice(g.pickMoveTo(to), true)
}

// PerformHandDrag handles a piece dragged out of the hand and released on a square.
func (g *GameState) PerformHandDrag(kind types.PieceType, to types.Square) {
	if g.pending != nil {
		return
	}
	if g.oracle.HandCount(g.oracle.SideToMove(), kind) == 0 {
		g.ClearSelection()
		return
	}
	g.armHand(kind)
	if !g.IsLegalDestination(to) {
		g.ClearSelection()
		return
	}
	if c := g.pickMoveTo(to); c.kind == choiceSingle {
		g.execute(c.move)
		return
	}
	g.ClearSelection()
}

// PreviewBoardDrag arms the piece being dragged from sq so its destinations show.
func (g *GameState) PreviewBoardDrag(from types.Square) {
	g.SelectBoardSquare(from)
}

// PreviewHandDrag arms the hand kind being dragged. Unlike SelectHandPiece it never toggles off.
func (g *GameState) PreviewHandDrag(kind types.PieceType) {
	if g.pending != nil {
		return
	}
	if g.oracle.HandCount(g.oracle.SideToMove(), kind) == 0 {
		g.ClearSelection()
		return
	}
	g.armHand(kind)
}

// commitChoice executes a single match or enters the promotion decision. A destination
// with no match is left alone on click and clears the selection on drag.
func (g *GameState) commitChoice(c moveChoice, clearOnNone bool) {
	switch c.kind {
	case choiceSingle:
		g.execute(c.move)
	case choicePromotion:
		g.enterPromotion(c.promotion)
	default:
		if clearOnNone {
			g.ClearSelection()
		}
	}
}

// execute applies m to the oracle and records the effects. A rejected move is reported in
// Status and never retried.
func (g *GameState) execute(m types.Move) {
	mover := g.oracle.SideToMove()
	ply := g.oracle.Ply()
	kind := m.Drop
	capture := false
	if !m.IsDrop() {
		if pc, ok := g.oracle.PieceAt(m.From); ok {
			kind = pc.Type
		}
		_, capture = g.oracle.PieceAt(m.To)
	}

	g.pending = nil
	if err := g.oracle.MakeMove(m); err != nil {
		g.setSound(SoundError)
		g.status = fmt.Sprintf("Move failed: %v", err)
		g.log.Warn("move rejected", zap.Stringer("move", m), zap.Error(err))
		g.ClearSelection()
		return
	}

	g.lastMove = &LastMove{From: m.From, To: m.To}
	if capture {
		g.setSound(SoundCapture)
	} else {
		g.setSound(SoundMove)
	}
	g.status = ""
	g.records = append(g.records, Record{Ply: ply, Color: mover, Move: m, Piece: kind, Capture: capture})
	g.log.Info("move committed", zap.Stringer("move", m), zap.Int("ply", ply), zap.Bool("capture", capture))
	g.ClearSelection()
}
