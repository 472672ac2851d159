package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termshogi/config"
	"termshogi/engine"
	"termshogi/game"
	"termshogi/msgcat"
	"termshogi/shogi"
	"termshogi/types"
)

const (
	PageGame      = "gameview"
	pagePromotion = "promotion"
)

// Scene wires the board, the hands, the info panel and the promotion dialog to one
// game. Pointer input from tview goes through a game.Gestures; keys drive a cursor.
type Scene struct {
	app   *tview.Application
	pages *tview.Pages
	cfg   *config.Config
	msg   *msgcat.Catalog
	log   *zap.Logger
	sound *SoundPlayer

	game     *game.GameState
	gestures *game.Gestures
	notes    game.Annotations
	handicap shogi.Handicap

	Board *BoardUI
	Hands [2]*HandUI
	Panel *GameInfoPanel
	Frame *tview.Flex
	hint  *tview.TextView
	promo *PromotionDialog

	promoShown bool
	onExit     func()
}

// NewScene builds the game view and adds it, with its promotion overlay, to pages.
// onExit is called when the player leaves the game with q or Esc.
func NewScene(app *tview.Application, pages *tview.Pages, c *config.Config, msg *msgcat.Catalog, log *zap.Logger, sound *SoundPlayer, onExit func()) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scene{
		app:    app,
		pages:  pages,
		cfg:    c,
		msg:    msg,
		log:    log,
		sound:  sound,
		onExit: onExit,
	}

	s.Board = NewBoard(c)
	s.Hands = [2]*HandUI{
		types.Black: NewHand(types.Black, s.Board, msg),
		types.White: NewHand(types.White, s.Board, msg),
	}
	s.Panel = NewGameInfoPanel(msg)
	s.hint = tview.NewTextView()
	s.hint.SetTextColor(tcell.ColorGray)
	s.hint.SetBorderPadding(0, 0, 1, 1)
	s.promo = NewPromotionDialog(msg,
		func() { s.choosePromotion(true) },
		func() { s.choosePromotion(false) },
		s.cancelPromotion,
	)
	s.Frame = CreateGameLayout(s.Board, s.Hands, s.Panel, s.hint)

	s.Board.Box.SetMouseCapture(s.boardMouse)
	for _, h := range s.Hands {
		h := h
		h.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
			return s.handMouse(h, action, event)
		})
	}
	s.Board.Box.SetInputCapture(s.HandleKey)

	pages.AddPage(PageGame, s.Frame, true, false)
	pages.AddPage(pagePromotion, s.promo, true, false)
	return s
}

// Game returns the game in progress, or nil before Start.
func (s *Scene) Game() *game.GameState {
	return s.game
}

// Start begins a new game and shows the game view.
func (s *Scene) Start(gameCfg engine.GameConfig) {
	s.game = game.NewFromConfig(gameCfg, s.log)
	s.gestures = game.NewGestures(s.game, s.cfg.Play.DragThreshold, s)
	s.notes = game.Annotations{}
	s.handicap = gameCfg.Handicap
	if gameCfg.StartSFEN != "" {
		s.handicap = ""
	}

	s.Board.SetGame(s.game, s.gestures, &s.notes)
	s.Panel.SetGame(s.game, s.handicap)
	s.pages.SwitchToPage(PageGame)
	s.promoShown = false
	s.refresh()
}

// SquareAt resolves a pointer position against the board.
func (s *Scene) SquareAt(p game.Point) (types.Square, bool) {
	return s.Board.SquareAt(p.X, p.Y)
}

func (s *Scene) active() bool {
	if s.game == nil {
		return false
	}
	name, _ := s.pages.GetFrontPage()
	return name == PageGame || name == pagePromotion
}

// anchorAt returns the annotation anchor under (x, y).
func (s *Scene) anchorAt(x, y int) (game.Origin, bool) {
	if sq, ok := s.Board.SquareAt(x, y); ok {
		return game.BoardOrigin(sq), true
	}
	for _, h := range s.Hands {
		if kind, ok := h.BucketAt(x, y); ok {
			return game.HandOrigin(h.Color(), kind), true
		}
	}
	return game.Origin{}, false
}

func (s *Scene) onSurface(x, y int) bool {
	if _, ok := s.Board.SquareAt(x, y); ok {
		return true
	}
	for _, h := range s.Hands {
		if h.Box.InRect(x, y) {
			return true
		}
	}
	return false
}

func brushFor(event *tcell.EventMouse) game.Brush {
	mods := event.Modifiers()
	return game.BrushFor(mods&(tcell.ModShift|tcell.ModCtrl) != 0, mods&(tcell.ModAlt|tcell.ModMeta) != 0)
}

func (s *Scene) beginAnnotation(anchor game.Origin, event *tcell.EventMouse) {
	s.gestures.Interrupt()
	s.notes.Begin(anchor, brushFor(event))
	s.afterInput()
}

func (s *Scene) boardMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	x, y := event.Position()
	if s.game == nil || !s.Board.Box.InRect(x, y) {
		return action, event
	}
	if action == tview.MouseLeftDown {
		s.app.SetFocus(s.Board.Box)
	}
	sq, onSquare := s.Board.SquareAt(x, y)
	if !onSquare {
		return action, nil
	}
	p := game.Point{X: x, Y: y}
	switch action {
	case tview.MouseLeftDown:
		s.notes.Cancel()
		s.gestures.Press(game.BoardOrigin(sq), p)
		s.afterInput()
	case tview.MouseLeftClick, tview.MouseLeftDoubleClick:
		if s.gestures.ClickSquare(sq) {
			s.afterInput()
		}
	case tview.MouseRightDown:
		s.beginAnnotation(game.BoardOrigin(sq), event)
	}
	return action, nil
}

func (s *Scene) handMouse(h *HandUI, action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	x, y := event.Position()
	if s.game == nil || !h.Box.InRect(x, y) {
		return action, event
	}
	// Keys are read by the board, so a press on a hand focuses it too.
	if action == tview.MouseLeftDown {
		s.app.SetFocus(s.Board.Box)
	}
	kind, onBucket := h.BucketAt(x, y)
	if !onBucket {
		return action, nil
	}
	p := game.Point{X: x, Y: y}
	switch action {
	case tview.MouseLeftDown:
		s.notes.Cancel()
		s.gestures.Press(game.HandOrigin(h.Color(), kind), p)
		s.afterInput()
	case tview.MouseLeftClick, tview.MouseLeftDoubleClick:
		if s.gestures.ClickHand(h.Color(), kind) {
			s.afterInput()
		}
	case tview.MouseRightDown:
		s.beginAnnotation(game.HandOrigin(h.Color(), kind), event)
	}
	return action, nil
}

// HandleMouse sees every mouse event before any primitive. It follows the pointer and
// ends gestures wherever the button is released, even outside the board.
func (s *Scene) HandleMouse(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if !s.active() {
		return event, action
	}
	x, y := event.Position()
	p := game.Point{X: x, Y: y}
	switch action {
	case tview.MouseMove:
		redraw := s.gestures.Move(p)
		if _, drawing := s.notes.Drawing(); drawing {
			s.notes.Update(s.anchorAt(x, y))
			redraw = true
		}
		if redraw {
			s.afterInput()
		}
	case tview.MouseLeftUp:
		if s.gestures.Release(p) {
			s.afterInput()
		}
	case tview.MouseRightUp:
		if _, drawing := s.notes.Drawing(); drawing {
			s.notes.Finish(s.anchorAt(x, y))
			s.afterInput()
		}
	case tview.MouseLeftDown:
		if !s.game.HasPendingPromotion() && !s.onSurface(x, y) && s.notes.Clear() {
			s.afterInput()
		}
	}
	return event, action
}

// HandleKey moves the cursor and plays from the keyboard.
func (s *Scene) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	if s.game == nil {
		return event
	}
	switch event.Key() {
	case tcell.KeyUp:
		s.Board.MoveCursor(0, -1)
	case tcell.KeyDown:
		s.Board.MoveCursor(0, 1)
	case tcell.KeyLeft:
		s.Board.MoveCursor(-1, 0)
	case tcell.KeyRight:
		s.Board.MoveCursor(1, 0)
	case tcell.KeyEnter:
		if sq, ok := s.Board.Cursor(); ok {
			s.gestures.Invalidate()
			s.game.ClickSquare(sq)
		}
	case tcell.KeyEscape:
		s.back()
		return nil
	case tcell.KeyRune:
		switch r := event.Rune(); r {
		case 'h':
			s.Board.MoveCursor(-1, 0)
		case 'j':
			s.Board.MoveCursor(0, 1)
		case 'k':
			s.Board.MoveCursor(0, -1)
		case 'l':
			s.Board.MoveCursor(1, 0)
		case 'c':
			s.notes.Clear()
		case 'q':
			s.back()
			return nil
		default:
			// Upper case letters pick from the hand, leaving hjkl to the cursor.
			kind, ok := types.PieceTypeFromLetter(r)
			if !ok || !kind.IsHandType() || r < 'A' || r > 'Z' {
				return event
			}
			if !s.game.HasPendingPromotion() {
				s.gestures.Invalidate()
				s.game.SelectHandPiece(kind)
			}
		}
	default:
		return event
	}
	s.afterInput()
	return nil
}

// back clears the selection or cursor, or leaves the game when there is neither.
func (s *Scene) back() {
	_, hasCursor := s.Board.Cursor()
	if s.game.Selection().Kind() != game.SelectNone || hasCursor {
		s.gestures.Invalidate()
		s.game.ClearSelection()
		s.Board.ResetCursor()
		s.afterInput()
		return
	}
	if s.onExit != nil {
		s.onExit()
	}
}

func (s *Scene) choosePromotion(promote bool) {
	s.game.ChoosePromotion(promote)
	s.afterInput()
}

func (s *Scene) cancelPromotion() {
	s.game.CancelPromotion()
	s.afterInput()
}

// afterInput plays the queued cue, syncs the dialog and panel with the game and asks
// for a redraw.
func (s *Scene) afterInput() {
	if cue, ok := s.game.TakePendingSound(); ok {
		s.sound.Play(cue)
	}
	s.refresh()
	// Spawn goroutine to avoid deadlock when called from the event loop
	go func() {
		s.app.QueueUpdateDraw(func() {})
	}()
}

func (s *Scene) refresh() {
	s.syncPromotion()
	s.Panel.Refresh()
	if s.promoShown {
		s.hint.SetText(s.msg.Text("hint.promotion", nil))
	} else {
		s.hint.SetText(s.msg.Text("hint.board", nil))
	}
}

func (s *Scene) syncPromotion() {
	pending := s.game.HasPendingPromotion()
	switch {
	case pending && !s.promoShown:
		if pc, ok := s.game.PendingPromotionPiece(); ok {
			s.promo.SetPiece(pc, s.cfg.Theme.PieceStyle)
		}
		s.pages.ShowPage(pagePromotion)
		s.app.SetFocus(s.promo)
		s.promoShown = true
	case !pending && s.promoShown:
		s.pages.HidePage(pagePromotion)
		s.app.SetFocus(s.Board.Box)
		s.promoShown = false
	}
}

// DrawOverlay draws the dragged piece under the pointer. It runs after every redraw.
func (s *Scene) DrawOverlay(screen tcell.Screen) {
	if !s.active() {
		return
	}
	o, dragging := s.gestures.DragOrigin()
	if !dragging {
		return
	}
	var pc types.Piece
	switch o.Kind {
	case game.OriginBoard:
		pc, _ = s.game.PieceAt(o.Square)
	case game.OriginHand:
		pc = types.Piece{Type: o.Piece, Color: o.Color}
	}
	if pc.IsEmpty() {
		return
	}
	p := s.gestures.Cursor()
	style := tcell.StyleDefault.
		Background(s.Board.styles[styleSelected]).
		Foreground(s.Board.styles[styleBlack]).
		Bold(true)
	drawText(screen, p.X, p.Y, pieceGlyph(pc, s.cfg.Theme.PieceStyle), style)
}
