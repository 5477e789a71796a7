// Package logging builds the process slog.Logger with file rotation.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/apimgr/searchconv/src/paths"
)

// Config holds logging configuration
type Config struct {
	Level    string `yaml:"level" mapstructure:"level"`         // debug, info, warn, error
	File     string `yaml:"file" mapstructure:"file"`           // empty logs to stderr
	MaxSize  int    `yaml:"max_size" mapstructure:"max_size"`   // MB per file (default: 10)
	MaxFiles int    `yaml:"max_files" mapstructure:"max_files"` // rotated files kept (default: 5)
	Stderr   bool   `yaml:"stderr" mapstructure:"stderr"`       // also write to stderr when File is set
}

// DefaultConfig returns the CLI logging defaults
func DefaultConfig() Config {
	return Config{
		Level:    "warn",
		MaxSize:  10,
		MaxFiles: 5,
	}
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger. With a file it writes JSON through lumberjack
// rotation; without one it writes text to stderr. The closer releases the
// log file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nopCloser{}, nil
	}

	logPath := paths.ExpandHome(cfg.File)
	if err := paths.EnsureParent(logPath); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 10
	}
	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = 5
	}

	rotating := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize, // MB
		MaxBackups: maxFiles,
		MaxAge:     30, // days
		Compress:   true,
	}

	var w io.Writer = rotating
	if cfg.Stderr {
		w = io.MultiWriter(rotating, stderr)
	}

	return slog.New(slog.NewJSONHandler(w, opts)), rotating, nil
}
