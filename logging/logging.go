// Package logging builds the zap logger used by termshogi. The terminal is owned by
// the UI, so output only ever goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level  string // debug, info, warn, error or off
	Format string // console or json
	File   string
}

// New opens (appending) the log file and returns a logger writing to it, along with a
// function that flushes and closes it. Level "off" gives a no-op logger.
func New(opts Options) (*zap.Logger, func(), error) {
	if strings.EqualFold(strings.TrimSpace(opts.Level), "off") {
		return zap.NewNop(), func() {}, nil
	}
	if strings.TrimSpace(opts.File) == "" {
		return nil, nil, fmt.Errorf("no log file configured")
	}
	if err := ensureDir(filepath.Dir(opts.File)); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(encoder(opts.Format), zapcore.AddSync(f), parseLevel(opts.Level))
	logger := zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
	closer := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closer, nil
}

func encoder(format string) zapcore.Encoder {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return zapcore.NewJSONEncoder(jsonEncoderConfig())
	default:
		return zapcore.NewConsoleEncoder(consoleEncoderConfig())
	}
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}
