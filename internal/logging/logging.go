// Package logging builds the zap logger used by the command line tool.
// Library packages never log.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a level name such as "debug", "info" or "warn".
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", s, err)
	}

	return lvl, nil
}

// New builds a logger writing to w, or to stderr if w is nil. Development
// loggers use the console encoder; production loggers write JSON.
func New(w io.Writer, level string, development bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if w == nil {
		w = os.Stderr
	}

	var enc zapcore.Encoder
	if development {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(w))}
	if development {
		opts = append(opts, zap.Development())
	}

	return zap.New(core, opts...), nil
}
