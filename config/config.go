package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"

	"termshogi/shogi"
)

var (
	cfgFile     = "termshogi/config.json"
	logFile     = "termshogi/termshogi.log"
	messagesDir = "termshogi/messages"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor       int `json:"board"`
	LineColor        int `json:"line"`
	BlackColor       int `json:"black"`
	WhiteColor       int `json:"white"`
	PromotedColor    int `json:"promoted"`
	CursorColorBG    int `json:"cursor_bg"`
	SelectedColorBG  int `json:"selected_bg"`
	DestColorBG      int `json:"destination_bg"`
	LastMoveColorBG  int `json:"last_move_bg"`
	ArrowGreen       int `json:"arrow_green"`
	ArrowRed         int `json:"arrow_red"`
	ArrowBlue        int `json:"arrow_blue"`
	ArrowYellow      int `json:"arrow_yellow"`
	StatusErrorColor int `json:"status_error"`
}

type ConfigSymbols struct {
	Empty       rune `json:"empty"`
	Destination rune `json:"destination"`
}

type Theme struct {
	PieceStyle             string        `json:"piece_style"` // "kanji" or "letters"
	FullWidthNumbers       bool          `json:"fullwidth_numbers"`
	DrawCursorBackground   bool          `json:"draw_cursor_bg"`
	DrawLastMoveBackground bool          `json:"draw_last_move_bg"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// PlayConfig holds defaults for new games and pointer handling.
type PlayConfig struct {
	Handicap      string  `json:"handicap"`
	StartSFEN     string  `json:"start_sfen"`
	DragThreshold float64 `json:"drag_threshold"` // in cells
	Sound         bool    `json:"sound"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so logs go to a file.
type LogConfig struct {
	Level  string `json:"level"` // debug, info, warn, error or off
	Format string `json:"format"`
	File   string `json:"file"`
}

type Config struct {
	Theme       Theme      `json:"theme"`
	Play        PlayConfig `json:"play"`
	Log         LogConfig  `json:"log"`
	MessagesDir string     `json:"messages_dir"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Empty, c.Theme.Symbols.Destination} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	switch c.Theme.PieceStyle {
	case "kanji", "letters":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown piece style %q", c.Theme.PieceStyle)}
	}
	if _, err := shogi.ParseHandicap(c.Play.Handicap); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Play.DragThreshold <= 0 {
		return &InvalidConfig{"drag threshold must be positive"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "off":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log format %q", c.Log.Format)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogFilePath returns the configured log file, or one under the XDG state directory.
func (c *Config) LogFilePath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

// MessagesPath returns the directory holding message overrides, or "" when there is none.
func (c *Config) MessagesPath() string {
	if c.MessagesDir != "" {
		return c.MessagesDir
	}
	if p, err := xdg.SearchConfigFile(messagesDir); err == nil {
		return p
	}
	return ""
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	return nil
}
