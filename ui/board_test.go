package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"termshogi/game"
	"termshogi/types"
)

func TestSquareGeometryRoundTrip(t *testing.T) {
	for _, sq := range types.AllSquares() {
		cx, cy := cellOrigin(3, 2, sq)
		for dx := 0; dx < cellW; dx++ {
			for dy := 0; dy < cellH; dy++ {
				got, ok := squareAt(3, 2, cx+dx, cy+dy)
				if !ok || got != sq {
					t.Fatalf("cell (%d,%d) of %v resolved to %v %v", dx, dy, sq, got, ok)
				}
			}
		}
	}
}

func TestSquareGeometryLayout(t *testing.T) {
	if x, y := cellOrigin(0, 0, types.NewSquare(9, 1)); x != boardLeft || y != boardTop {
		t.Fatalf("9a should be top left, got (%d,%d)", x, y)
	}
	if x, _ := cellOrigin(0, 0, types.NewSquare(1, 1)); x != boardLeft+8*cellW {
		t.Fatalf("1a should be top right, got x=%d", x)
	}
	for _, p := range [][2]int{{0, 5}, {5, 0}, {boardLeft + 9*cellW, 5}, {5, boardTop + 9*cellH}, {-1, -1}} {
		if sq, ok := squareAt(0, 0, p[0], p[1]); ok {
			t.Errorf("(%d,%d) is off the grid but resolved to %v", p[0], p[1], sq)
		}
	}
}

func TestPieceGlyphWidth(t *testing.T) {
	pieces := []types.Piece{
		{Type: types.Pawn, Color: types.Black},
		{Type: types.Dragon, Color: types.White},
		{Type: types.King, Color: types.White},
	}
	for _, style := range []string{"kanji", "letters"} {
		for _, pc := range pieces {
			if w := runewidth.StringWidth(pieceGlyph(pc, style)); w != 2 {
				t.Errorf("%s glyph of %v is %d columns wide", style, pc, w)
			}
		}
	}
	if g := pieceGlyph(types.Piece{Type: types.Horse, Color: types.White}, "letters"); g != "+b" {
		t.Errorf("got %q", g)
	}
	if g := pieceGlyph(types.Piece{Type: types.Pawn, Color: types.Black}, "kanji"); g != "歩" {
		t.Errorf("got %q", g)
	}
}

func TestBucketAt(t *testing.T) {
	if _, ok := bucketAt(10, 10); ok {
		t.Fatal("the title row is not a bucket")
	}
	if k, ok := bucketAt(10, 11); !ok || k != types.Rook {
		t.Fatalf("first bucket should be the rook, got %v", k)
	}
	if k, ok := bucketAt(10, 17); !ok || k != types.Pawn {
		t.Fatalf("last bucket should be the pawn, got %v", k)
	}
	if _, ok := bucketAt(10, 18); ok {
		t.Fatal("below the pawn is not a bucket")
	}
}

func TestMoveLines(t *testing.T) {
	records := []game.Record{
		{Ply: 1, Color: types.Black, Piece: types.Pawn, Move: types.NormalMove(types.NewSquare(7, 7), types.NewSquare(7, 6), false)},
		{Ply: 2, Color: types.White, Piece: types.Pawn, Move: types.NormalMove(types.NewSquare(3, 3), types.NewSquare(3, 4), false)},
		{Ply: 3, Color: types.Black, Piece: types.Bishop, Move: types.NormalMove(types.NewSquare(8, 8), types.NewSquare(2, 2), true), Capture: true},
		{Ply: 4, Color: types.White, Piece: types.Silver, Move: types.NormalMove(types.NewSquare(3, 1), types.NewSquare(2, 2), false), Capture: true},
	}
	lines := moveLines(records, 12)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "☗７六歩") {
		t.Errorf("line 0: %q", lines[0])
	}
	if !strings.Contains(lines[2], "☗２二角成") {
		t.Errorf("line 2: %q", lines[2])
	}
	if !strings.Contains(lines[3], "☖同　銀") || !strings.HasPrefix(lines[3], "[white]>") {
		t.Errorf("line 3: %q", lines[3])
	}

	lines = moveLines(records, 2)
	if len(lines) != 3 || !strings.Contains(lines[0], "2 earlier") {
		t.Fatalf("expected a truncation line, got %q", lines)
	}
}
