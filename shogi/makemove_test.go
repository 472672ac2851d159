package shogi

import (
	"errors"
	"testing"

	"termshogi/types"
)

func mustParse(t *testing.T, sfen string) *Position {
	t.Helper()
	pos, err := ParseSFEN(sfen)
	if err != nil {
		t.Fatalf("parse %q: %v", sfen, err)
	}
	return pos
}

func mustMove(t *testing.T, usi string) types.Move {
	t.Helper()
	m, err := types.ParseMove(usi)
	if err != nil {
		t.Fatalf("parse move %q: %v", usi, err)
	}
	return m
}

func TestMakeUnmakePawnPush(t *testing.T) {
	pos := NewStartPosition()
	if err := pos.MakeMove(mustMove(t, "7g7f")); err != nil {
		t.Fatalf("7g7f: %v", err)
	}
	if pos.SideToMove() != types.White {
		t.Fatal("white should be to move after 7g7f")
	}
	if pos.Ply() != 2 {
		t.Fatalf("expected ply 2, got %d", pos.Ply())
	}
	if _, ok := pos.PieceAt(sq(7, 7)); ok {
		t.Fatal("7g should be empty")
	}
	if pc, ok := pos.PieceAt(sq(7, 6)); !ok || pc != black(types.Pawn) {
		t.Fatalf("expected black pawn on 7f, got %v", pc)
	}

	if err := pos.UnmakeMove(); err != nil {
		t.Fatalf("unmake: %v", err)
	}
	if pos.SFEN() != StartSFEN {
		t.Fatalf("unmake did not restore the start position: %q", pos.SFEN())
	}
	if err := pos.UnmakeMove(); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestCaptureGoesToHandUnpromoted(t *testing.T) {
	sfen := "4k4/9/9/9/4+p4/4R4/9/9/4K4 b - 1"
	pos := mustParse(t, sfen)
	if err := pos.MakeMove(mustMove(t, "5f5e")); err != nil {
		t.Fatalf("5f5e: %v", err)
	}
	if n := pos.HandCount(types.Black, types.Pawn); n != 1 {
		t.Fatalf("captured tokin should be a pawn in hand, got %d", n)
	}
	if err := pos.UnmakeMove(); err != nil {
		t.Fatalf("unmake: %v", err)
	}
	if pos.SFEN() != sfen {
		t.Fatalf("unmake mismatch: %q", pos.SFEN())
	}
}

func TestDropUnmakeRestoresHand(t *testing.T) {
	sfen := "4k4/9/9/9/9/9/9/9/4K4 b 2P 1"
	pos := mustParse(t, sfen)
	if err := pos.MakeMove(mustMove(t, "P*5e")); err != nil {
		t.Fatalf("P*5e: %v", err)
	}
	if n := pos.HandCount(types.Black, types.Pawn); n != 1 {
		t.Fatalf("expected one pawn left in hand, got %d", n)
	}
	if err := pos.UnmakeMove(); err != nil {
		t.Fatalf("unmake: %v", err)
	}
	if pos.SFEN() != sfen {
		t.Fatalf("unmake mismatch: %q", pos.SFEN())
	}
}

func TestMakeMoveRejections(t *testing.T) {
	tests := []struct {
		name string
		sfen string
		move string
		want error
	}{
		{"empty origin", StartSFEN, "5e5d", ErrNoPiece},
		{"opponent piece", StartSFEN, "3c3d", ErrNotOwnPiece},
		{"unreachable", StartSFEN, "7g7e", ErrUnreachable},
		{"promote outside zone", StartSFEN, "7g7f+", ErrCannotPromote},
		{"gold never promotes", "k8/4G4/9/9/9/9/9/9/4K4 b - 1", "5b5a+", ErrCannotPromote},
		{"pawn must promote", "k8/6P2/9/9/9/9/9/9/4K4 b - 1", "3b3a", ErrMustPromote},
		{"knight must promote", "k8/9/9/7N1/9/9/9/9/4K4 b - 1", "2d3b", ErrMustPromote},
		{"pinned gold", "k3r4/9/9/9/9/9/9/4G4/4K4 b - 1", "5h4h", ErrKingInCheck},
		{"not in hand", "4k4/9/9/9/9/9/9/9/4K4 b P 1", "G*5e", ErrNotInHand},
		{"occupied", "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b P 1", "P*5g", ErrOccupied},
		{"nifu", "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b P 1", "P*5e", ErrNifu},
		{"pawn on last rank", "4k4/9/9/9/9/9/9/9/4K4 b P 1", "P*1a", ErrDeadDrop},
		{"lance on last rank", "4k4/9/9/9/9/9/9/9/4K4 b L 1", "L*1a", ErrDeadDrop},
		{"knight on second rank", "4k4/9/9/9/9/9/9/9/4K4 b N 1", "N*1b", ErrDeadDrop},
		{"pawn drop mate", "7nk/9/7G1/9/9/9/9/9/4K4 b P 1", "P*1b", ErrPawnDropMate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustParse(t, tt.sfen)
			before := pos.SFEN()
			err := pos.MakeMove(mustMove(t, tt.move))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if pos.SFEN() != before {
				t.Fatalf("rejected move changed the position: %q", pos.SFEN())
			}
		})
	}
}

func TestPawnDropCheckThatIsNotMate(t *testing.T) {
	pos := mustParse(t, "7nk/9/9/9/9/9/9/9/4K4 b P 1")
	if err := pos.MakeMove(mustMove(t, "P*1b")); err != nil {
		t.Fatalf("unprotected pawn drop check should be legal: %v", err)
	}
	if !pos.InCheck(types.White) {
		t.Fatal("white should be in check")
	}
}

func TestPromotionLeavingZone(t *testing.T) {
	pos := mustParse(t, "k8/9/5S3/9/9/9/9/9/4K4 b - 1")
	if err := pos.MakeMove(mustMove(t, "4c3d+")); err != nil {
		t.Fatalf("silver leaving the zone may promote: %v", err)
	}
	if pc, _ := pos.PieceAt(sq(3, 4)); pc != black(types.ProSilver) {
		t.Fatalf("expected promoted silver on 3d, got %v", pc)
	}
}

func TestMustPromoteForWhite(t *testing.T) {
	pos := mustParse(t, "4k4/9/9/9/9/9/9/2p6/K8 w - 1")
	err := pos.MakeMove(mustMove(t, "7h7i"))
	if !errors.Is(err, ErrMustPromote) {
		t.Fatalf("white pawn reaching rank i must promote, got %v", err)
	}
	if err := pos.MakeMove(mustMove(t, "7h7i+")); err != nil {
		t.Fatalf("7h7i+: %v", err)
	}
}
