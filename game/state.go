// Package game turns board and hand input into validated shogi moves.
//
// GameState owns the selection, the legal moves derived from it, an outstanding promotion
// decision and the effects of the last commit. Every rule question is answered by probing
// an engine.Oracle with MakeMove/UnmakeMove.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"termshogi/engine"
	"termshogi/shogi"
	"termshogi/types"
)

// SoundCue is the feedback sound requested by the last commit.
type SoundCue int

const (
	SoundMove SoundCue = iota
	SoundCapture
	SoundError
)

func (s SoundCue) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundCapture:
		return "capture"
	case SoundError:
		return "error"
	}
	return "unknown"
}

// LastMove marks the squares of the last committed move. From is the zero square for drops.
type LastMove struct {
	From types.Square
	To   types.Square
}

// HasFrom reports whether the move started on the board.
func (l LastMove) HasFrom() bool {
	return l.From.Valid()
}

// Record is one committed move, kept for display.
type Record struct {
	Ply     int
	Color   types.Color
	Move    types.Move
	Piece   types.PieceType // kind on the origin square, or the dropped kind
	Capture bool
}

// GameState is the interaction state of one game.
type GameState struct {
	id     string
	oracle engine.Oracle
	log    *zap.Logger

	selection         Selection
	legalMoves        []types.Move
	legalDestinations map[types.Square]struct{}

	pending      *PendingPromotion
	lastMove     *LastMove
	pendingSound *SoundCue
	status       string
	records      []Record
}

// New creates a game on top of oracle. A nil logger disables logging.
func New(oracle engine.Oracle, log *zap.Logger) *GameState {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &GameState{
		id:                id,
		oracle:            oracle,
		log:               log.With(zap.String("game", id)),
		legalDestinations: make(map[types.Square]struct{}),
	}
}

// NewFromConfig creates a game on a fresh shogi.Position loaded from cfg.
// If the start position cannot be loaded the board stays empty and Status explains why.
func NewFromConfig(cfg engine.GameConfig, log *zap.Logger) *GameState {
	pos := shogi.NewPosition()
	g := New(pos, log)
	sfen, err := cfg.SFEN()
	if err == nil {
		err = pos.SetSFEN(sfen)
	}
	if err != nil {
		g.status = fmt.Sprintf("Failed to load initial SFEN: %v", err)
		g.log.Warn("initial position rejected", zap.String("sfen", sfen), zap.Error(err))
		return g
	}
	g.log.Info("game started", zap.String("sfen", sfen))
	return g
}

// ID returns the unique id of the game, used to correlate log lines.
func (g *GameState) ID() string {
	return g.id
}

// Oracle returns the underlying position.
func (g *GameState) Oracle() engine.Oracle {
	return g.oracle
}

func (g *GameState) PieceAt(sq types.Square) (types.Piece, bool) {
	return g.oracle.PieceAt(sq)
}

func (g *GameState) HandCount(c types.Color, kind types.PieceType) int {
	return g.oracle.HandCount(c, kind)
}

func (g *GameState) SideToMove() types.Color {
	return g.oracle.SideToMove()
}

func (g *GameState) Ply() int {
	return g.oracle.Ply()
}

// Status returns the last error text, or "" after a successful commit.
func (g *GameState) Status() string {
	return g.status
}

// LastMove returns the squares of the last committed move.
func (g *GameState) LastMove() (LastMove, bool) {
	if g.lastMove == nil {
		return LastMove{}, false
	}
	return *g.lastMove, true
}

// Records returns the moves committed so far.
func (g *GameState) Records() []Record {
	return append([]Record(nil), g.records...)
}

// TakePendingSound returns the cue requested by the last commit and forgets it.
func (g *GameState) TakePendingSound() (SoundCue, bool) {
	if g.pendingSound == nil {
		return 0, false
	}
	cue := *g.pendingSound
	g.pendingSound = nil
	return cue, true
}

func (g *GameState) setSound(cue SoundCue) {
	g.pendingSound = &cue
}

func (g *GameState) ownPieceAt(sq types.Square) (types.Piece, bool) {
	pc, ok := g.oracle.PieceAt(sq)
	if !ok || pc.Color != g.oracle.SideToMove() {
		return types.Piece{}, false
	}
	return pc, true
}
