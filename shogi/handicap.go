package shogi

import (
	"fmt"
	"strings"
)

// Handicap names a starting position. In handicap games white (the stronger side) moves first.
type Handicap string

const (
	HandicapEven      Handicap = "even"
	HandicapLance     Handicap = "lance"
	HandicapBishop    Handicap = "bishop"
	HandicapRook      Handicap = "rook"
	HandicapTwoPiece  Handicap = "two-piece"
	HandicapFourPiece Handicap = "four-piece"
	HandicapSixPiece  Handicap = "six-piece"
)

var handicapSFEN = map[Handicap]string{
	HandicapEven:      StartSFEN,
	HandicapLance:     "lnsgkgsn1/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1",
	HandicapBishop:    "lnsgkgsnl/1r7/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1",
	HandicapRook:      "lnsgkgsnl/7b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1",
	HandicapTwoPiece:  "lnsgkgsnl/9/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1",
	HandicapFourPiece: "1nsgkgsn1/9/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1",
	HandicapSixPiece:  "2sgkgs2/9/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1",
}

// Handicaps returns every preset from weakest to strongest handicap.
func Handicaps() []Handicap {
	return []Handicap{
		HandicapEven,
		HandicapLance,
		HandicapBishop,
		HandicapRook,
		HandicapTwoPiece,
		HandicapFourPiece,
		HandicapSixPiece,
	}
}

// ParseHandicap resolves a preset name. The empty string means an even game.
func ParseHandicap(s string) (Handicap, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return HandicapEven, nil
	}
	h := Handicap(s)
	if _, ok := handicapSFEN[h]; !ok {
		return "", fmt.Errorf("unknown handicap: %q", s)
	}
	return h, nil
}

// SFEN returns the starting position of the preset.
func (h Handicap) SFEN() (string, error) {
	sfen, ok := handicapSFEN[h]
	if !ok {
		return "", fmt.Errorf("unknown handicap: %q", string(h))
	}
	return sfen, nil
}
