// termshogi is a terminal application to play shogi over the board, with the mouse or
// the keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termshogi/config"
	"termshogi/engine"
	"termshogi/logging"
	"termshogi/msgcat"
	"termshogi/shogi"
	"termshogi/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagHandicap   = flag.String("handicap", "", "Handicap preset (even, lance, bishop, rook, two-piece, four-piece, six-piece)")
	flagSFEN       = flag.String("sfen", "", "Start from this SFEN position")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagNoSound    = flag.Bool("nosound", false, "Disable the terminal bell")
	flagThreshold  = flag.Float64("threshold", 0, "Pointer travel in cells before a press becomes a drag")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var scene *ui.Scene
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termshogi %s\n", color.CyanString(Version))
		return
	}

	if err := run(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	logPath, err := cfg.LogFilePath()
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   logPath,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	msg, err := msgcat.New(cfg.MessagesPath())
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	sound := ui.NewSoundPlayer(screen, cfg.Play.Sound)

	quickStart := *flagQuickStart || *flagHandicap != "" || *flagSFEN != ""

	app = tview.NewApplication()
	app.SetScreen(screen)
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ☗ " + msg.Text("app.title", nil) + " ")

	handicap, _ := shogi.ParseHandicap(cfg.Play.Handicap)
	setupUI := ui.NewGameSetup(msg, handicap, cfg.Play.Sound,
		func(gameCfg engine.GameConfig, soundOn bool) {
			sound.SetEnabled(soundOn)
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
	)
	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 50), true, !quickStart)

	scene = ui.NewScene(app, rootPage, cfg, msg, log, sound, func() {
		rootPage.SwitchToPage("setup")
	})
	app.SetMouseCapture(scene.HandleMouse)
	app.SetAfterDrawFunc(scene.DrawOverlay)

	if quickStart {
		startGame(engine.GameConfig{
			Handicap:  handicap,
			StartSFEN: cfg.Play.StartSFEN,
		})
	}

	log.Info("termshogi started", zap.String("version", Version), zap.Bool("quick_start", quickStart))
	return app.SetRoot(rootPage, true).Run()
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	scene.Start(gameCfg)
	app.SetFocus(scene.Board.Box)
}

// applyFlags overrides the loaded configuration with command-line flags.
func applyFlags(c *config.Config) error {
	if *flagHandicap != "" {
		h, err := shogi.ParseHandicap(*flagHandicap)
		if err != nil {
			return err
		}
		c.Play.Handicap = string(h)
	}
	if *flagSFEN != "" {
		c.Play.StartSFEN = *flagSFEN
	}
	if *flagNoSound {
		c.Play.Sound = false
	}
	if *flagThreshold > 0 {
		c.Play.DragThreshold = *flagThreshold
	}
	return c.Validate()
}
