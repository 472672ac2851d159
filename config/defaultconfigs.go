package config

import "termshogi/shogi"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		PieceStyle:             "kanji",
		FullWidthNumbers:       true,
		DrawCursorBackground:   true,
		DrawLastMoveBackground: true,
		Colors: ConfigColors{
			BoardColor:       180,
			LineColor:        94,
			BlackColor:       232,
			WhiteColor:       232,
			PromotedColor:    124,
			CursorColorBG:    110,
			SelectedColorBG:  222,
			DestColorBG:      150,
			LastMoveColorBG:  186,
			ArrowGreen:       71,
			ArrowRed:         167,
			ArrowBlue:        68,
			ArrowYellow:      178,
			StatusErrorColor: 160,
		},
		Symbols: ConfigSymbols{
			Empty:       '·',
			Destination: '•',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Play: PlayConfig{
			Handicap:      string(shogi.HandicapEven),
			DragThreshold: 1,
			Sound:         true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
