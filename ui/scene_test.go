package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termshogi/config"
	"termshogi/engine"
	"termshogi/game"
	"termshogi/msgcat"
	"termshogi/types"
)

func newTestScene(t *testing.T, sfen string) *Scene {
	t.Helper()
	msg, err := msgcat.New("")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig
	app := tview.NewApplication()
	pages := tview.NewPages()
	pages.AddPage("setup", tview.NewBox(), true, true)
	s := NewScene(app, pages, &cfg, msg, nil, nil, nil)
	s.Start(engine.GameConfig{StartSFEN: sfen})

	s.Board.Box.SetRect(0, 0, boardWidth, boardRows)
	s.Hands[types.White].Box.SetRect(50, 0, handWidth, handHeight)
	s.Hands[types.Black].Box.SetRect(50, 20, handWidth, handHeight)
	return s
}

func cellPoint(sq types.Square) (int, int) {
	x, y := cellOrigin(0, 0, sq)
	return x + 1, y
}

func mouse(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

// click delivers the events tview produces for a press and release in place.
func click(s *Scene, sq types.Square) {
	ev := mouse(cellPoint(sq))
	s.HandleMouse(ev, tview.MouseLeftDown)
	s.boardMouse(tview.MouseLeftDown, ev)
	s.HandleMouse(ev, tview.MouseLeftUp)
	s.boardMouse(tview.MouseLeftClick, ev)
}

func TestSceneClickToMove(t *testing.T) {
	s := newTestScene(t, "")
	click(s, types.NewSquare(7, 7))
	if sel, ok := s.Game().SelectedSquare(); !ok || sel != types.NewSquare(7, 7) {
		t.Fatalf("expected 7g selected, got %+v", s.Game().Selection())
	}
	click(s, types.NewSquare(7, 6))
	if pc, ok := s.Game().PieceAt(types.NewSquare(7, 6)); !ok || pc.Type != types.Pawn {
		t.Fatal("pawn should have moved to 7f")
	}
	if len(s.Game().Records()) != 1 {
		t.Fatal("expected one record")
	}
}

func TestSceneDragToMove(t *testing.T) {
	s := newTestScene(t, "")
	fx, fy := cellPoint(types.NewSquare(2, 7))
	tx, ty := cellPoint(types.NewSquare(2, 6))

	s.boardMouse(tview.MouseLeftDown, mouse(fx, fy))
	s.HandleMouse(mouse(tx, ty), tview.MouseMove)
	if o, ok := s.gestures.DragOrigin(); !ok || o.Square != types.NewSquare(2, 7) {
		t.Fatal("moving two rows should start a drag")
	}
	s.HandleMouse(mouse(tx, ty), tview.MouseLeftUp)
	if _, ok := s.Game().PieceAt(types.NewSquare(2, 6)); !ok {
		t.Fatal("pawn should have been dropped on 2f")
	}
}

func TestScenePromotionDialog(t *testing.T) {
	s := newTestScene(t, "4k4/9/9/4S4/9/9/9/9/4K4 b - 1")
	click(s, types.NewSquare(5, 4))
	click(s, types.NewSquare(5, 3))
	if !s.promoShown {
		t.Fatal("the dialog should be shown for an optional promotion")
	}
	if name, _ := s.pages.GetFrontPage(); name != pagePromotion {
		t.Fatalf("front page is %q", name)
	}

	s.promo.InputHandler()(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), func(tview.Primitive) {})
	if s.promoShown || s.Game().HasPendingPromotion() {
		t.Fatal("answering should close the dialog")
	}
	if pc, _ := s.Game().PieceAt(types.NewSquare(5, 3)); pc.Type != types.Silver {
		t.Fatalf("declined promotion should keep a silver, got %v", pc)
	}
}

func TestSceneHandKeysAndAnnotations(t *testing.T) {
	s := newTestScene(t, "4k4/9/9/9/9/9/9/9/4K4 b P 1")
	s.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone))
	if !s.Game().IsDropMode() {
		t.Fatal("P should pick the pawn from hand")
	}
	s.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if s.Game().IsDropMode() {
		t.Fatal("Esc should clear the selection")
	}

	x, y := cellPoint(types.NewSquare(5, 5))
	s.boardMouse(tview.MouseRightDown, mouse(x, y))
	s.HandleMouse(mouse(x, y), tview.MouseRightUp)
	if len(s.notes.Shapes()) != 1 {
		t.Fatal("right click should draw a circle")
	}
	s.HandleMouse(mouse(45, 30), tview.MouseLeftDown)
	if len(s.notes.Shapes()) != 0 {
		t.Fatal("a press outside the board and hands should clear annotations")
	}
}

func TestSceneHandClick(t *testing.T) {
	s := newTestScene(t, "4k4/9/9/9/9/9/9/9/4K4 b P 1")
	h := s.Hands[types.Black]
	ev := mouse(52, 20+handTitleRows+6) // pawn row
	s.handMouse(h, tview.MouseLeftDown, ev)
	s.HandleMouse(ev, tview.MouseLeftUp)
	s.handMouse(h, tview.MouseLeftClick, ev)
	if kind, ok := s.Game().SelectedHandPiece(); !ok || kind != types.Pawn {
		t.Fatal("clicking the pawn bucket should select it once")
	}
	if !s.Game().IsLegalDestination(types.NewSquare(5, 5)) {
		t.Fatal("drops should be offered")
	}
	if s.gestures.Phase() != game.GestureIdle {
		t.Fatal("gesture should be idle")
	}
}

func TestScenePressFocusesBoard(t *testing.T) {
	s := newTestScene(t, "4k4/9/9/9/9/9/9/9/4K4 b P 1")
	other := tview.NewBox()
	s.app.SetFocus(other)

	s.boardMouse(tview.MouseLeftDown, mouse(cellPoint(types.NewSquare(5, 9))))
	if s.app.GetFocus() != s.Board.Box {
		t.Fatal("a press on the board should give it keyboard focus")
	}

	s.app.SetFocus(other)
	h := s.Hands[types.Black]
	x, y, _, _ := h.Box.GetInnerRect()
	s.handMouse(h, tview.MouseLeftDown, mouse(x+1, y+handTitleRows))
	if s.app.GetFocus() != s.Board.Box {
		t.Fatal("a press on a hand should give the board keyboard focus")
	}
}
