// Package engine defines the interface between the game core and the rules implementation.
package engine

import (
	"strings"

	"termshogi/shogi"
	"termshogi/types"
)

// Oracle is the set of position queries and mutations the game core relies on.
// The core never checks rules itself; it probes the oracle with MakeMove and UnmakeMove.
type Oracle interface {
	// PieceAt returns the piece on sq, if any.
	PieceAt(sq types.Square) (types.Piece, bool)

	// SideToMove returns the side whose turn it is.
	SideToMove() types.Color

	// HandCount returns how many pieces of kind side c holds in hand.
	HandCount(c types.Color, kind types.PieceType) int

	// Ply returns the current move number.
	Ply() int

	// MoveCandidates returns the squares pc on from can reach geometrically.
	// Legality beyond reach (check, promotion, dead pieces) is left to MakeMove.
	MoveCandidates(from types.Square, pc types.Piece) []types.Square

	// MakeMove applies m if it is legal and returns an error otherwise.
	// A rejected move leaves the position unchanged.
	MakeMove(m types.Move) error

	// UnmakeMove reverts the last successful MakeMove.
	UnmakeMove() error
}

var _ Oracle = (*shogi.Position)(nil)

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Handicap  shogi.Handicap // Starting preset
	StartSFEN string         // Overrides Handicap when set
}

// DefaultConfig returns an even game.
func DefaultConfig() GameConfig {
	return GameConfig{
		Handicap: shogi.HandicapEven,
	}
}

// SFEN returns the starting position for the configuration.
func (c GameConfig) SFEN() (string, error) {
	if s := strings.TrimSpace(c.StartSFEN); s != "" {
		return s, nil
	}
	h := c.Handicap
	if h == "" {
		h = shogi.HandicapEven
	}
	return h.SFEN()
}
