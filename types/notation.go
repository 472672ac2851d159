package types

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var rankKanji = [...]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// RankKanji returns the kanji numeral used for a rank label.
func RankKanji(rank int) string {
	if rank < 1 || rank > 9 {
		return ""
	}
	return rankKanji[rank]
}

// FileLabel returns the file number, optionally as a full-width digit.
func FileLabel(file int, fullWidth bool) string {
	s := strconv.Itoa(file)
	if fullWidth {
		return width.Widen.String(s)
	}
	return s
}

// KIFMove formats a move the way game records print it, e.g. "☗７六歩", "☖同　銀成" or "☗５五角打".
// piece is the kind on the origin square before the move (the dropped kind for drops).
// prevTo is the destination of the previous move; "同" replaces the square when they match.
func KIFMove(c Color, m Move, piece PieceType, prevTo Square) string {
	var b strings.Builder
	b.WriteString(c.Symbol())
	if prevTo.Valid() && prevTo == m.To {
		b.WriteString("同　")
	} else {
		b.WriteString(FileLabel(m.To.File, true))
		b.WriteString(RankKanji(m.To.Rank))
	}
	b.WriteString(piece.Kanji())
	switch {
	case m.IsDrop():
		b.WriteString("打")
	case m.Promote:
		b.WriteString("成")
	case piece.CanPromote() && (InPromotionZone(c, m.From) || InPromotionZone(c, m.To)):
		b.WriteString("不成")
	}
	return b.String()
}

// InPromotionZone reports whether sq is in the far three ranks for side c.
func InPromotionZone(c Color, sq Square) bool {
	if c == Black {
		return sq.Rank >= 1 && sq.Rank <= 3
	}
	return sq.Rank >= 7 && sq.Rank <= 9
}
