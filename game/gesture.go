package game

import (
	"math"

	"termshogi/types"
)

// DefaultDragThreshold is the pointer travel, in cells, that turns a press into a drag.
const DefaultDragThreshold = 1.0

// Point is a pointer position in screen cells.
type Point struct {
	X, Y int
}

// OriginKind tells which surface a press started on.
type OriginKind int

const (
	OriginNone OriginKind = iota
	OriginBoard
	OriginHand
)

// Origin is where a gesture started: a board square or a hand bucket of one side.
type Origin struct {
	Kind   OriginKind
	Square types.Square
	Color  types.Color
	Piece  types.PieceType
}

func BoardOrigin(sq types.Square) Origin {
	return Origin{Kind: OriginBoard, Square: sq}
}

func HandOrigin(c types.Color, kind types.PieceType) Origin {
	return Origin{Kind: OriginHand, Color: c, Piece: kind}
}

// TargetResolver maps a pointer position to the board square under it.
type TargetResolver interface {
	SquareAt(p Point) (types.Square, bool)
}

// TargetResolverFunc adapts a function to TargetResolver.
type TargetResolverFunc func(p Point) (types.Square, bool)

func (f TargetResolverFunc) SquareAt(p Point) (types.Square, bool) {
	return f(p)
}

// GesturePhase is the state of the press/drag machine.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GestureArmed
	GestureDragging
)

// Gestures turns press, move and release events from the board and the hands into
// clicks, drag previews and drag commits on a GameState.
//
// Input systems that report a click after a release must route that click through
// ClickSquare or ClickHand so it is not applied a second time.
type Gestures struct {
	game      *GameState
	resolver  TargetResolver
	threshold float64

	phase  GesturePhase
	origin Origin
	start  Point
	cursor Point

	suppressClick bool
}

// NewGestures creates a gesture machine for g. A non-positive threshold uses DefaultDragThreshold.
func NewGestures(g *GameState, threshold float64, resolver TargetResolver) *Gestures {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Gestures{
		game:      g,
		resolver:  resolver,
		threshold: threshold,
	}
}

// Phase returns the current gesture state.
func (m *Gestures) Phase() GesturePhase {
	return m.phase
}

// DragOrigin returns the origin of the drag in progress.
func (m *Gestures) DragOrigin() (Origin, bool) {
	return m.origin, m.phase == GestureDragging
}

// Cursor returns the last pointer position seen during a gesture.
func (m *Gestures) Cursor() Point {
	return m.cursor
}

// Press starts a gesture on o. Only origins the side to move may play from are armed.
// It returns true when the press was armed.
func (m *Gestures) Press(o Origin, p Point) bool {
	m.suppressClick = false
	m.reset()
	if m.game.HasPendingPromotion() || !m.owns(o) {
		return false
	}
	m.phase = GestureArmed
	m.origin = o
	m.start = p
	m.cursor = p
	return true
}

// Move tracks the pointer. It returns true when the display needs a redraw.
func (m *Gestures) Move(p Point) bool {
	if m.phase == GestureIdle {
		return false
	}
	if m.game.HasPendingPromotion() {
		m.Invalidate()
		return true
	}
	m.cursor = p
	if m.phase == GestureArmed {
		dx := float64(p.X - m.start.X)
		dy := float64(p.Y - m.start.Y)
		if math.Hypot(dx, dy) < m.threshold {
			return false
		}
		m.phase = GestureDragging
		switch m.origin.Kind {
		case OriginBoard:
			m.game.PreviewBoardDrag(m.origin.Square)
		case OriginHand:
			m.game.PreviewHandDrag(m.origin.Piece)
		}
	}
	return true
}

// Release ends the gesture at p. An armed press acts as a click; a drag commits to the
// square under p or clears the selection off the board. Either way the click the input
// system may report next is swallowed. It returns true when the game was touched.
func (m *Gestures) Release(p Point) bool {
	phase, origin := m.phase, m.origin
	m.reset()
	if phase == GestureIdle || m.game.HasPendingPromotion() {
		return false
	}
	m.suppressClick = true

	target, onBoard := types.Square{}, false
	if m.resolver != nil {
		target, onBoard = m.resolver.SquareAt(p)
	}

	if phase == GestureArmed {
		// A short release clicks the origin, unless another origin is armed and the
		// pointer came to rest on a square, which then reads as a click there.
		if onBoard && m.armedElsewhere(origin) {
			m.game.ClickSquare(target)
			return true
		}
		switch origin.Kind {
		case OriginBoard:
			m.game.ClickSquare(origin.Square)
		case OriginHand:
			m.game.SelectHandPiece(origin.Piece)
		}
		return true
	}

	if !onBoard {
		m.game.ClearSelection()
		return true
	}
	switch origin.Kind {
	case OriginBoard:
		m.game.PerformBoardDrag(origin.Square, target)
	case OriginHand:
		m.game.PerformHandDrag(origin.Piece, target)
	}
	return true
}

// ClickSquare forwards a discrete click on sq unless it belongs to a release that was
// already handled. It returns true when the click was applied.
func (m *Gestures) ClickSquare(sq types.Square) bool {
	if m.consumeSuppressedClick() {
		return false
	}
	m.game.ClickSquare(sq)
	return true
}

// ClickHand forwards a discrete click on the bucket of kind in c's hand. A click on the
// opponent's hand clears the selection.
func (m *Gestures) ClickHand(c types.Color, kind types.PieceType) bool {
	if m.consumeSuppressedClick() {
		return false
	}
	if m.game.HasPendingPromotion() {
		return false
	}
	if c != m.game.SideToMove() {
		m.game.ClearSelection()
		return true
	}
	m.game.SelectHandPiece(kind)
	return true
}

// Invalidate drops any press or drag in progress without touching the game.
func (m *Gestures) Invalidate() {
	m.reset()
}

// Interrupt abandons the gesture in favour of another one and clears the selection.
func (m *Gestures) Interrupt() {
	m.reset()
	if !m.game.HasPendingPromotion() {
		m.game.ClearSelection()
	}
}

func (m *Gestures) consumeSuppressedClick() bool {
	s := m.suppressClick
	m.suppressClick = false
	return s
}

func (m *Gestures) reset() {
	m.phase = GestureIdle
	m.origin = Origin{}
}

// armedElsewhere reports whether the selection holds something other than o.
func (m *Gestures) armedElsewhere(o Origin) bool {
	sel := m.game.Selection()
	switch sel.Kind() {
	case SelectBoard:
		sq, _ := sel.Square()
		return o.Kind != OriginBoard || sq != o.Square
	case SelectHand:
		kind, _ := sel.HandPiece()
		return o.Kind != OriginHand || kind != o.Piece
	}
	return false
}

func (m *Gestures) owns(o Origin) bool {
	side := m.game.SideToMove()
	switch o.Kind {
	case OriginBoard:
		_, ok := m.game.ownPieceAt(o.Square)
		return ok
	case OriginHand:
		return o.Color == side && m.game.HandCount(side, o.Piece) > 0
	}
	return false
}
