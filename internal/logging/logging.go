// Package logging configures the zap logger used by the CLI and library code.
package logging

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// LogOpts selects the encoder and level of the process logger.
type LogOpts struct {
	Verbose bool
	// Color is one of auto, always/on, never/off. Empty means auto.
	Color string
	// Encoding is console (default) or json.
	Encoding string
}

// Encoder returns the zap encoder for opts.
func (opts LogOpts) Encoder() (zapcore.Encoder, error) {
	switch opts.Encoding {
	case "json":
		if opts.Verbose {
			return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig()), nil
		}
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	case "console", "":
		useColor := opts.useColor()
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = TimeOffsetFormatter(time.Now(), useColor)
		if useColor {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unknown log encoding %q", opts.Encoding)
	}
}

func (opts LogOpts) useColor() bool {
	switch opts.Color {
	case "always", "on":
		return true
	case "never", "off":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// Level returns the minimum level: debug when verbose, info otherwise.
// LOG_LEVEL (debug, info, warn, error) overrides both.
func (opts LogOpts) Level() zapcore.Level {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if lvl, err := zapcore.ParseLevel(env); err == nil {
			return lvl
		}
	}
	if opts.Verbose {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

// NewCore builds a core writing to w.
func (opts LogOpts) NewCore(w zapcore.WriteSyncer) (zapcore.Core, error) {
	enc, err := opts.Encoder()
	if err != nil {
		return nil, err
	}
	return zapcore.NewCore(enc, w, zap.NewAtomicLevelAt(opts.Level())), nil
}

// NewLogger builds a logger writing to stderr.
func (opts LogOpts) NewLogger() (*zap.Logger, error) {
	core, err := opts.NewCore(zapcore.Lock(os.Stderr))
	if err != nil {
		return nil, err
	}
	return zap.New(core), nil
}

// Setup builds the stderr logger and installs it as the zap global, so
// packages can log through zap.L(). The returned func restores the previous
// global and flushes.
func Setup(opts LogOpts) (*zap.Logger, func(), error) {
	logger, err := opts.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	undo := zap.ReplaceGlobals(logger)
	return logger, func() {
		_ = logger.Sync()
		undo()
	}, nil
}

type contextKey string

var logKey contextKey = "log"

// GetLogger returns the logger stored in ctx, or the global logger.
func GetLogger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(logKey).(*zap.Logger); ok {
		return l
	}
	return zap.L()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, logKey, logger)
}

// TimeOffsetFormatter formats entry times as an offset from start, which
// reads better than wall-clock time for short CLI runs.
func TimeOffsetFormatter(start time.Time, color bool) zapcore.TimeEncoder {
	colStart, colEnd := "\x1b[90m", "\x1b[0m"
	if !color {
		colStart, colEnd = "", ""
	}
	return func(t time.Time, e zapcore.PrimitiveArrayEncoder) {
		diff := t.Sub(start)
		switch {
		case diff < time.Second:
			e.AppendString(fmt.Sprintf(" %s%3dms%s", colStart, diff.Milliseconds(), colEnd))
		case diff < 5*time.Minute:
			e.AppendString(fmt.Sprintf("%s%5.1fs%s", colStart, diff.Seconds(), colEnd))
		default:
			e.AppendString(fmt.Sprintf("%s%5.1fm%s", colStart, diff.Minutes(), colEnd))
		}
	}
}
