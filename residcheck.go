// Package residcheck analyzes resource ID constants defined in C4D-style
// header files. It reports names that collide on the same numeric value,
// suggests free values based on gaps in the used ID range and the largest
// used value, and groups used values into blocks of consecutive IDs.
//
// Example:
//
//	src, err := residcheck.Dir("res/dialogs")
//	if err != nil {
//	    ...
//	}
//	headers, err := residcheck.Analyze(ctx, src,
//	    residcheck.WithMinValue(1000),
//	    residcheck.WithLogger(slog.Default()),
//	)
//	for _, h := range headers {
//	    for _, c := range h.Collisions() {
//	        ...
//	    }
//	}
package residcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwilleke80/residcheck/internal/parser"
	"github.com/fwilleke80/residcheck/resid"
)

// ErrNoSources is returned when Analyze is called with a nil source.
var ErrNoSources = errors.New("no header sources provided")

// ErrNotHeader is returned for a file path without a recognized header
// extension.
var ErrNotHeader = errors.New("not a resource header file")

// DefaultMinValue is the default declaration-value threshold.
// Declarations below it are ignored; C4D reserves the small ID values.
const DefaultMinValue = 100

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-line iteration logging (raw lines, parsed declarations).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Analyze and AnalyzeFile.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	minValue int
}

func newConfig(opts []Option) config {
	cfg := config{minValue: DefaultMinValue}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMinValue sets the declaration-value threshold. Declarations with a
// smaller value never reach the index or any report.
func WithMinValue(v int) Option {
	return func(c *config) { c.minValue = v }
}

// Analyze parses and analyzes every header file the source lists, each
// with its own value index. Files that cannot be read or parsed are
// reported to the logger and skipped; the error return is reserved for
// source enumeration failures and context cancellation.
func Analyze(ctx context.Context, src Source, opts ...Option) ([]*resid.Header, error) {
	if src == nil {
		return nil, ErrNoSources
	}
	cfg := newConfig(opts)

	files, err := src.ListFiles()
	if err != nil {
		return nil, err
	}

	if logEnabled(cfg.logger, slog.LevelInfo) {
		cfg.logger.LogAttrs(ctx, slog.LevelInfo, "analyzing headers",
			slog.Int("files", len(files)))
	}

	var headers []*resid.Header
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h, err := analyzeSourceFile(src, path, cfg)
		if err != nil {
			if logEnabled(cfg.logger, slog.LevelError) {
				cfg.logger.LogAttrs(ctx, slog.LevelError, "skipping header",
					slog.String("path", path),
					slog.String("error", err.Error()))
			}
			continue
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// AnalyzeFile parses and analyzes a single header file.
// The path must carry a recognized header extension.
func AnalyzeFile(path string, opts ...Option) (*resid.Header, error) {
	cfg := newConfig(opts)

	if !hasValidExtension(path, makeExtensionSet(DefaultExtensions)) {
		return nil, &os.PathError{Op: "open", Path: path, Err: ErrNotHeader}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return analyzeContent(path, content, cfg)
}

func analyzeSourceFile(src Source, path string, cfg config) (*resid.Header, error) {
	f, err := src.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return analyzeContent(path, content, cfg)
}

func analyzeContent(path string, content []byte, cfg config) (*resid.Header, error) {
	p := parser.New(cfg.minValue, componentLogger(cfg.logger, "parser"))
	decls, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if logEnabled(cfg.logger, slog.LevelDebug) {
		cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "header parsed",
			slog.String("path", path),
			slog.Int("declarations", len(decls)))
	}
	return resid.NewHeader(path, decls), nil
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
