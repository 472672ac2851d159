package game

import (
	"sort"

	"go.uber.org/zap"

	"termshogi/types"
)

// SelectionKind tells which variant a Selection holds.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectBoard
	SelectHand
)

// Selection is the armed origin: nothing, a board square, or a piece kind in hand.
type Selection struct {
	kind   SelectionKind
	square types.Square
	piece  types.PieceType
}

func NoSelection() Selection {
	return Selection{}
}

func BoardSelection(sq types.Square) Selection {
	return Selection{kind: SelectBoard, square: sq}
}

func HandSelection(kind types.PieceType) Selection {
	return Selection{kind: SelectHand, piece: kind}
}

func (s Selection) Kind() SelectionKind {
	return s.kind
}

// Square returns the armed board square.
func (s Selection) Square() (types.Square, bool) {
	return s.square, s.kind == SelectBoard
}

// HandPiece returns the armed hand kind.
func (s Selection) HandPiece() (types.PieceType, bool) {
	return s.piece, s.kind == SelectHand
}

// Selection returns the current selection.
func (g *GameState) Selection() Selection {
	return g.selection
}

// SelectedSquare returns the armed board square, if any.
func (g *GameState) SelectedSquare() (types.Square, bool) {
	return g.selection.Square()
}

// SelectedHandPiece returns the armed hand kind, if any.
func (g *GameState) SelectedHandPiece() (types.PieceType, bool) {
	return g.selection.HandPiece()
}

// IsDropMode reports whether a hand piece is armed.
func (g *GameState) IsDropMode() bool {
	return g.selection.kind == SelectHand
}

// IsLegalDestination reports whether sq ends one of the legal moves of the selection.
func (g *GameState) IsLegalDestination(sq types.Square) bool {
	_, ok := g.legalDestinations[sq]
	return ok
}

// LegalDestinations returns the destination squares of the selection in board order.
func (g *GameState) LegalDestinations() []types.Square {
	out := make([]types.Square, 0, len(g.legalDestinations))
	for sq := range g.legalDestinations {
		out = append(out, sq)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index() < out[j].Index()
	})
	return out
}

// LegalMoves returns the legal moves of the selection in resolution order.
func (g *GameState) LegalMoves() []types.Move {
	return append([]types.Move(nil), g.legalMoves...)
}

// SelectBoardSquare arms the piece on sq if it belongs to the side to move, and clears
// the selection otherwise. Ignored while a promotion decision is pending.
func (g *GameState) SelectBoardSquare(sq types.Square) {
	if g.pending != nil {
		return
	}
	pc, ok := g.ownPieceAt(sq)
	if !ok {
		g.ClearSelection()
		return
	}
	g.armBoard(sq, pc)
}

// SelectHandPiece arms kind in the hand of the side to move. Selecting the armed kind
// again clears it, as does a kind the side does not hold.
func (g *GameState) SelectHandPiece(kind types.PieceType) {
	if g.pending != nil {
		return
	}
	if g.oracle.HandCount(g.oracle.SideToMove(), kind) == 0 {
		g.ClearSelection()
		return
	}
	if armed, ok := g.selection.HandPiece(); ok && armed == kind {
		g.ClearSelection()
		return
	}
	g.armHand(kind)
}

// ClearSelection drops the selection and its legal moves.
func (g *GameState) ClearSelection() {
	g.selection = NoSelection()
	g.setLegalMoves(nil)
}

func (g *GameState) armBoard(sq types.Square, pc types.Piece) {
	g.selection = BoardSelection(sq)
	g.setLegalMoves(g.resolveBoardMoves(sq, pc))
	g.log.Debug("selected square", zap.Stringer("square", sq), zap.Int("moves", len(g.legalMoves)))
}

func (g *GameState) armHand(kind types.PieceType) {
	g.selection = HandSelection(kind)
	g.setLegalMoves(g.resolveDrops(kind))
	g.log.Debug("selected hand piece", zap.Stringer("piece", kind), zap.Int("moves", len(g.legalMoves)))
}

// setLegalMoves replaces the legal moves and their destination set together.
func (g *GameState) setLegalMoves(moves []types.Move) {
	g.legalMoves = moves
	g.legalDestinations = make(map[types.Square]struct{}, len(moves))
	for _, m := range moves {
		g.legalDestinations[m.To] = struct{}{}
	}
}
