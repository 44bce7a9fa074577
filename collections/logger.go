package collections

import (
	"log/slog"
	"sync"
)

// Logger is the structured logging interface used by [Record].
//
// Attributes are alternating key-value pairs, following log/slog:
//
//	logger.Debug("forget skipped missing path", "path", "user.email")
//
// Records are silent unless a logger is supplied with [WithLogger] or set
// package-wide with [SetDefaultLogger]. Wrap a standard library logger with
// [NewSlogAdapter]:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	rec := collections.NewRecord(data,
//	    collections.WithLogger(collections.NewSlogAdapter(slog.New(handler))),
//	)
type Logger interface {
	// Debug logs diagnostic detail such as skipped or lossy path operations.
	Debug(msg string, attrs ...any)

	// Info logs general information, e.g. the output of [Record.Dump].
	Info(msg string, attrs ...any)

	// Warn logs potentially harmful situations.
	Warn(msg string, attrs ...any)

	// Error logs error conditions.
	Error(msg string, attrs ...any)

	// With returns a Logger that prepends attrs to every entry.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the initial package default Logger.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

var defaultLogger = struct {
	mu     sync.RWMutex
	logger Logger
}{logger: NopLogger{}}

// SetDefaultLogger sets the Logger used by Records created without
// [WithLogger] and by [Collection.Dump]. A nil logger restores [NopLogger].
func SetDefaultLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.logger = l
}

// DefaultLogger returns the Logger set with [SetDefaultLogger].
func DefaultLogger() Logger {
	defaultLogger.mu.RLock()
	defer defaultLogger.mu.RUnlock()
	return defaultLogger.logger
}

// SlogAdapter implements Logger on top of a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger. A nil logger means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) { s.logger.Info(msg, attrs...) }

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) { s.logger.Warn(msg, attrs...) }

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
