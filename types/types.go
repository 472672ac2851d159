// Package types contains shared data structures for termshogi.
package types

import (
	"fmt"
	"strings"
)

// Color is a side of the game. Black (sente) moves first in an even game.
type Color int

const (
	Black Color = iota
	White
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Symbol returns the traditional turn marker for the side.
func (c Color) Symbol() string {
	if c == Black {
		return "☗"
	}
	return "☖"
}

// PieceType is a kind of piece, promoted kinds included.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	Horse
	Dragon
)

// HandTypes lists the kinds that can be held in hand, in display order.
var HandTypes = []PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

// IsPromoted reports whether the kind is a promoted one.
func (p PieceType) IsPromoted() bool {
	return p >= ProPawn && p <= Dragon
}

// CanPromote reports whether the kind has a promoted form it has not taken yet.
func (p PieceType) CanPromote() bool {
	switch p {
	case Pawn, Lance, Knight, Silver, Bishop, Rook:
		return true
	}
	return false
}

// Promoted returns the promoted form, or the kind itself when it has none.
func (p PieceType) Promoted() PieceType {
	switch p {
	case Pawn:
		return ProPawn
	case Lance:
		return ProLance
	case Knight:
		return ProKnight
	case Silver:
		return ProSilver
	case Bishop:
		return Horse
	case Rook:
		return Dragon
	}
	return p
}

// Unpromoted returns the base kind. Captured pieces go to hand in this form.
func (p PieceType) Unpromoted() PieceType {
	switch p {
	case ProPawn:
		return Pawn
	case ProLance:
		return Lance
	case ProKnight:
		return Knight
	case ProSilver:
		return Silver
	case Horse:
		return Bishop
	case Dragon:
		return Rook
	}
	return p
}

// IsHandType reports whether the kind may be held in hand.
func (p PieceType) IsHandType() bool {
	return p >= Pawn && p <= Rook
}

var pieceLetters = map[PieceType]string{
	Pawn: "P", Lance: "L", Knight: "N", Silver: "S", Gold: "G", Bishop: "B", Rook: "R", King: "K",
	ProPawn: "+P", ProLance: "+L", ProKnight: "+N", ProSilver: "+S", Horse: "+B", Dragon: "+R",
}

var pieceKanji = map[PieceType]string{
	Pawn: "歩", Lance: "香", Knight: "桂", Silver: "銀", Gold: "金", Bishop: "角", Rook: "飛", King: "玉",
	ProPawn: "と", ProLance: "杏", ProKnight: "圭", ProSilver: "全", Horse: "馬", Dragon: "龍",
}

// Letter returns the SFEN letter of the kind in upper case, with a "+" prefix when promoted.
func (p PieceType) Letter() string {
	return pieceLetters[p]
}

// Kanji returns the one-character Japanese name of the kind.
func (p PieceType) Kanji() string {
	return pieceKanji[p]
}

func (p PieceType) String() string {
	if l, ok := pieceLetters[p]; ok {
		return l
	}
	return "-"
}

// PieceTypeFromLetter parses an upper or lower case SFEN letter into an unpromoted kind.
func PieceTypeFromLetter(r rune) (PieceType, bool) {
	switch r {
	case 'P', 'p':
		return Pawn, true
	case 'L', 'l':
		return Lance, true
	case 'N', 'n':
		return Knight, true
	case 'S', 's':
		return Silver, true
	case 'G', 'g':
		return Gold, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'K', 'k':
		return King, true
	}
	return NoPieceType, false
}

// Piece is a piece on the board. The zero value is an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// IsEmpty reports whether the piece is the zero value.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String returns the SFEN spelling: upper case for black, lower case for white.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	s := p.Type.Letter()
	if p.Color == White {
		s = strings.ToLower(s)
	}
	return s
}

// Square is a board coordinate. File 1 is on black's right, rank 1 is white's back rank.
// The zero value is not a valid square.
type Square struct {
	File int
	Rank int
}

// NewSquare returns the square at the given file and rank.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the 9x9 board.
func (s Square) Valid() bool {
	return s.File >= 1 && s.File <= 9 && s.Rank >= 1 && s.Rank <= 9
}

// Index maps the square to 0..80, rank-major.
func (s Square) Index() int {
	return (s.Rank-1)*9 + (s.File - 1)
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(i int) Square {
	return Square{File: i%9 + 1, Rank: i/9 + 1}
}

// Offset returns the square shifted by the given file and rank deltas.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns USI notation, e.g. "7g".
func (s Square) String() string {
	if !s.Valid() {
		return "--"
	}
	return fmt.Sprintf("%d%c", s.File, 'a'+rune(s.Rank-1))
}

// ParseSquare parses USI square notation.
func ParseSquare(str string) (Square, error) {
	str = strings.TrimSpace(str)
	if len(str) != 2 {
		return Square{}, fmt.Errorf("invalid square: %q", str)
	}
	sq := Square{File: int(str[0] - '0'), Rank: int(str[1]-'a') + 1}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square out of bounds: %q", str)
	}
	return sq, nil
}

// AllSquares returns every square in reading order: rank 1 to 9, file 9 to 1.
func AllSquares() []Square {
	squares := make([]Square, 0, 81)
	for rank := 1; rank <= 9; rank++ {
		for file := 9; file >= 1; file-- {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}

// Move is either a board move (From set, Drop empty) or a drop (Drop set, From zero).
type Move struct {
	From    Square
	To      Square
	Promote bool
	Drop    PieceType
}

// NormalMove builds a board move.
func NormalMove(from, to Square, promote bool) Move {
	return Move{From: from, To: to, Promote: promote}
}

// DropMove builds a drop of a piece from hand.
func DropMove(kind PieceType, to Square) Move {
	return Move{To: to, Drop: kind}
}

// IsDrop reports whether the move is a drop.
func (m Move) IsDrop() bool {
	return m.Drop != NoPieceType
}

// String returns USI notation, e.g. "7g7f", "8h2b+" or "P*5e".
func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", m.Drop.Letter(), m.To)
	}
	s := m.From.String() + m.To.String()
	if m.Promote {
		s += "+"
	}
	return s
}

// ParseMove parses USI move notation.
func ParseMove(str string) (Move, error) {
	str = strings.TrimSpace(str)
	if len(str) == 4 && str[1] == '*' {
		kind, ok := PieceTypeFromLetter(rune(str[0]))
		if !ok || !kind.IsHandType() || str[0] < 'A' || str[0] > 'Z' {
			return Move{}, fmt.Errorf("invalid drop piece in move: %q", str)
		}
		to, err := ParseSquare(str[2:])
		if err != nil {
			return Move{}, err
		}
		return DropMove(kind, to), nil
	}
	if len(str) != 4 && !(len(str) == 5 && str[4] == '+') {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}
	from, err := ParseSquare(str[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		return Move{}, err
	}
	return NormalMove(from, to, len(str) == 5), nil
}
