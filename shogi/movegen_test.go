package shogi

import (
	"testing"

	"termshogi/types"
)

func sq(file, rank int) types.Square {
	return types.NewSquare(file, rank)
}

func black(kind types.PieceType) types.Piece {
	return types.Piece{Type: kind, Color: types.Black}
}

func white(kind types.PieceType) types.Piece {
	return types.Piece{Type: kind, Color: types.White}
}

// kingsOnly returns a position with the white king on 5a and the black king on 5i.
func kingsOnly() *Position {
	pos := NewPosition()
	pos.SetPiece(sq(5, 1), white(types.King))
	pos.SetPiece(sq(5, 9), black(types.King))
	return pos
}

func hasSquare(squares []types.Square, want types.Square) bool {
	for _, s := range squares {
		if s == want {
			return true
		}
	}
	return false
}

func TestInitialPositionNotInCheck(t *testing.T) {
	pos := NewStartPosition()
	if pos.InCheck(types.Black) {
		t.Fatal("black king should not be in check in initial position")
	}
	if pos.InCheck(types.White) {
		t.Fatal("white king should not be in check in initial position")
	}
	if n := len(pos.LegalMoves()); n != 30 {
		t.Fatalf("expected 30 legal moves in the initial position, got %d", n)
	}
}

func TestInCheckRookAttack(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(5, 1), white(types.King))
	pos.SetPiece(sq(5, 9), black(types.Rook))
	pos.SetPiece(sq(1, 9), black(types.King))
	pos.SetTurn(types.White)

	if !pos.InCheck(types.White) {
		t.Fatal("white king should be in check from rook on same file")
	}
}

func TestInCheckRookBlockedByPiece(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(5, 1), white(types.King))
	pos.SetPiece(sq(5, 5), black(types.Pawn))
	pos.SetPiece(sq(5, 9), black(types.Rook))
	pos.SetPiece(sq(1, 9), black(types.King))

	if pos.InCheck(types.White) {
		t.Fatal("pawn on 5e should block the rook")
	}
}

func TestInCheckBishopAttack(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(5, 1), white(types.King))
	pos.SetPiece(sq(1, 5), black(types.Bishop))
	pos.SetPiece(sq(9, 9), black(types.King))

	if !pos.InCheck(types.White) {
		t.Fatal("white king should be in check from bishop on the diagonal")
	}
}

func TestInCheckKnight(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(5, 1), white(types.King))
	pos.SetPiece(sq(4, 3), black(types.Knight))
	pos.SetPiece(sq(5, 9), black(types.King))
	if !pos.InCheck(types.White) {
		t.Fatal("knight on 4c should check the king on 5a")
	}

	pos.SetPiece(sq(4, 3), types.Piece{})
	pos.SetPiece(sq(5, 3), black(types.Knight))
	if pos.InCheck(types.White) {
		t.Fatal("knight on 5c does not attack 5a")
	}
}

func TestInCheckGoldNotBackwardDiagonal(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(5, 5), black(types.King))
	pos.SetPiece(sq(4, 6), white(types.Gold))
	pos.SetPiece(sq(1, 1), white(types.King))
	if pos.InCheck(types.Black) {
		t.Fatal("white gold on 4f cannot reach 5e diagonally backwards")
	}
	pos.SetPiece(sq(4, 6), types.Piece{})
	pos.SetPiece(sq(4, 4), white(types.Gold))
	if !pos.InCheck(types.Black) {
		t.Fatal("white gold on 4d should attack 5e")
	}
}

func TestInCheckPromotedPieces(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(5, 1), white(types.King))
	pos.SetPiece(sq(4, 2), black(types.Dragon))
	pos.SetPiece(sq(5, 9), black(types.King))
	if !pos.InCheck(types.White) {
		t.Fatal("dragon should attack diagonally adjacent squares")
	}

	pos.SetPiece(sq(4, 2), types.Piece{})
	pos.SetPiece(sq(5, 2), black(types.Horse))
	if !pos.InCheck(types.White) {
		t.Fatal("horse should attack orthogonally adjacent squares")
	}

	pos.SetPiece(sq(5, 2), types.Piece{})
	pos.SetPiece(sq(4, 1), black(types.ProSilver))
	if !pos.InCheck(types.White) {
		t.Fatal("promoted silver moves like a gold sideways")
	}
}

func TestInCheckWithoutKing(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(5, 5), black(types.Rook))
	if pos.InCheck(types.White) {
		t.Fatal("a side without a king is never in check")
	}
}

func TestMoveCandidatesStopAtPieces(t *testing.T) {
	pos := kingsOnly()
	pos.SetPiece(sq(2, 8), black(types.Rook))
	pos.SetPiece(sq(2, 4), white(types.Pawn))
	pos.SetPiece(sq(5, 8), black(types.Gold))

	got := pos.MoveCandidates(sq(2, 8), black(types.Rook))
	for _, want := range []types.Square{sq(2, 7), sq(2, 5), sq(2, 4), sq(2, 9), sq(1, 8), sq(3, 8), sq(4, 8)} {
		if !hasSquare(got, want) {
			t.Errorf("rook on 2h should reach %s", want)
		}
	}
	for _, bad := range []types.Square{sq(2, 3), sq(5, 8), sq(6, 8)} {
		if hasSquare(got, bad) {
			t.Errorf("rook on 2h should not reach %s", bad)
		}
	}
}

func TestMoveCandidatesWhiteDirection(t *testing.T) {
	pos := kingsOnly()
	pos.SetPiece(sq(3, 3), white(types.Pawn))
	got := pos.MoveCandidates(sq(3, 3), white(types.Pawn))
	if len(got) != 1 || got[0] != sq(3, 4) {
		t.Fatalf("white pawn on 3c should only reach 3d, got %v", got)
	}
	got = pos.MoveCandidates(sq(3, 3), white(types.Knight))
	if !hasSquare(got, sq(2, 5)) || !hasSquare(got, sq(4, 5)) || len(got) != 2 {
		t.Fatalf("white knight on 3c should reach 2e and 4e, got %v", got)
	}
}

func TestIsCheckmate(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(sq(1, 1), white(types.King))
	pos.SetPiece(sq(1, 2), black(types.Gold))
	pos.SetPiece(sq(1, 3), black(types.Pawn))
	pos.SetPiece(sq(5, 9), black(types.King))
	pos.SetTurn(types.White)
	if !pos.IsCheckmate() {
		t.Fatal("king on 1a with a protected gold on 1b should be mated")
	}

	pos.SetPiece(sq(1, 3), types.Piece{})
	if pos.IsCheckmate() {
		t.Fatal("king can capture an unprotected gold")
	}
}
