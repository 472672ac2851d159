package shogi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"termshogi/types"
)

// StartSFEN is the even-game starting position.
const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// ParseSFEN parses an SFEN string. A leading "sfen " and the word "startpos" are accepted.
func ParseSFEN(sfen string) (*Position, error) {
	sfen = strings.TrimSpace(sfen)
	sfen = strings.TrimPrefix(sfen, "sfen ")
	if sfen == "startpos" {
		sfen = StartSFEN
	}
	fields := strings.Fields(sfen)
	if len(fields) < 3 {
		return nil, fmt.Errorf("invalid sfen: %q", sfen)
	}
	pos := NewPosition()
	if err := parseBoardSFEN(fields[0], pos); err != nil {
		return nil, err
	}
	switch fields[1] {
	case "b":
		pos.turn = types.Black
	case "w":
		pos.turn = types.White
	default:
		return nil, fmt.Errorf("invalid side to move: %q", fields[1])
	}
	if err := parseHandsSFEN(fields[2], pos); err != nil {
		return nil, err
	}
	if len(fields) > 3 {
		n, err := strconv.Atoi(fields[3])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid move number: %q", fields[3])
		}
		pos.ply = n
	}
	return pos, nil
}

// SetSFEN replaces the position with the parsed SFEN and clears the undo stack.
// On error the position is left untouched.
func (p *Position) SetSFEN(sfen string) error {
	parsed, err := ParseSFEN(sfen)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

func parseBoardSFEN(board string, pos *Position) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 9 {
		return fmt.Errorf("invalid board ranks: %d", len(ranks))
	}
	for rankIndex, rankText := range ranks {
		rank := rankIndex + 1
		file := 9
		runes := []rune(rankText)
		for i := 0; i < len(runes); i++ {
			r := runes[i]
			if r >= '1' && r <= '9' {
				file -= int(r - '0')
				continue
			}
			promoted := false
			if r == '+' {
				promoted = true
				i++
				if i >= len(runes) {
					return errors.New("dangling promotion marker")
				}
				r = runes[i]
			}
			kind, ok := types.PieceTypeFromLetter(r)
			if !ok {
				return fmt.Errorf("unknown sfen piece %c", r)
			}
			if promoted {
				if !kind.CanPromote() {
					return fmt.Errorf("piece %c cannot be promoted", r)
				}
				kind = kind.Promoted()
			}
			color := types.Black
			if r >= 'a' && r <= 'z' {
				color = types.White
			}
			if file < 1 {
				return fmt.Errorf("rank %d has too many files", rank)
			}
			pos.board[types.NewSquare(file, rank).Index()] = types.Piece{Type: kind, Color: color}
			file--
		}
		if file != 0 {
			return fmt.Errorf("rank %d does not have 9 files", rank)
		}
	}
	return nil
}

// handLimit is the number of pieces of each kind in a set, the most one hand can hold.
var handLimit = map[types.PieceType]int{
	types.Rook:   2,
	types.Bishop: 2,
	types.Gold:   4,
	types.Silver: 4,
	types.Knight: 4,
	types.Lance:  4,
	types.Pawn:   18,
}

func parseHandsSFEN(hand string, pos *Position) error {
	if hand == "-" {
		return nil
	}
	count, explicit := 0, false
	for _, r := range hand {
		if r >= '0' && r <= '9' {
			count = count*10 + int(r-'0')
			explicit = true
			if count > handLimit[types.Pawn] {
				return fmt.Errorf("hand count %d too large", count)
			}
			continue
		}
		if !explicit {
			count = 1
		} else if count == 0 {
			return fmt.Errorf("zero hand count before %c", r)
		}
		kind, ok := types.PieceTypeFromLetter(r)
		if !ok || !kind.IsHandType() {
			return fmt.Errorf("unknown hand piece %c", r)
		}
		color := types.Black
		if r >= 'a' && r <= 'z' {
			color = types.White
		}
		if pos.hands[color][kind]+count > handLimit[kind] {
			return fmt.Errorf("too many %c in hand", r)
		}
		pos.hands[color][kind] += count
		count, explicit = 0, false
	}
	if explicit {
		return errors.New("trailing hand count")
	}
	return nil
}

// SFEN formats the position.
func (p *Position) SFEN() string {
	rows := make([]string, 0, 9)
	for rank := 1; rank <= 9; rank++ {
		rows = append(rows, p.rankToSFEN(rank))
	}
	turn := "b"
	if p.turn == types.White {
		turn = "w"
	}
	hand := p.handsToSFEN()
	if hand == "" {
		hand = "-"
	}
	return fmt.Sprintf("%s %s %s %d", strings.Join(rows, "/"), turn, hand, p.ply)
}

func (p *Position) rankToSFEN(rank int) string {
	var b strings.Builder
	empty := 0
	flushEmpty := func() {
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
			empty = 0
		}
	}
	for file := 9; file >= 1; file-- {
		pc := p.board[types.NewSquare(file, rank).Index()]
		if pc.IsEmpty() {
			empty++
			continue
		}
		flushEmpty()
		b.WriteString(pc.String())
	}
	flushEmpty()
	return b.String()
}

func (p *Position) handsToSFEN() string {
	var b strings.Builder
	for _, c := range []types.Color{types.Black, types.White} {
		for _, kind := range types.HandTypes {
			n := p.hands[c][kind]
			if n == 0 {
				continue
			}
			if n > 1 {
				b.WriteString(strconv.Itoa(n))
			}
			b.WriteString(types.Piece{Type: kind, Color: c}.String())
		}
	}
	return b.String()
}
