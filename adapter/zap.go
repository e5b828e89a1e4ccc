package adapter

import (
	"go.uber.org/zap"

	"github.com/prismlog/prism/core"
	"github.com/prismlog/prism/logger"
)

// Zap adapts a zap sugared logger to the logger.Delegate capability set.
//
// zap has no notice level, so Notice maps to Info. Fatal maps to Error
// because zap's own Fatal terminates the process, which a delegate must
// never do.
type Zap struct {
	s *zap.SugaredLogger
}

var _ logger.Delegate = (*Zap)(nil)

// NewZap wraps s as a Delegate.
func NewZap(s *zap.SugaredLogger) *Zap {
	return &Zap{s: s}
}

// Debug forwards at zap's debug level
func (z *Zap) Debug(msg string, args ...any) { z.s.Debug(line(msg, args)) }

// Info forwards at zap's info level
func (z *Zap) Info(msg string, args ...any) { z.s.Info(line(msg, args)) }

// Notice forwards at zap's info level
func (z *Zap) Notice(msg string, args ...any) { z.s.Info(line(msg, args)) }

// Warn forwards at zap's warn level
func (z *Zap) Warn(msg string, args ...any) { z.s.Warn(line(msg, args)) }

// Error forwards at zap's error level
func (z *Zap) Error(msg string, args ...any) { z.s.Error(line(msg, args)) }

// Fatal forwards at zap's error level; see the type comment.
func (z *Zap) Fatal(msg string, args ...any) { z.s.Error(line(msg, args)) }

// Log forwards at the zap level closest to the given severity.
func (z *Zap) Log(level core.Severity, msg string, args ...any) {
	switch level {
	case core.Debug:
		z.Debug(msg, args...)
	case core.Info, core.Notice:
		z.Info(msg, args...)
	case core.Warn:
		z.Warn(msg, args...)
	case core.Error, core.Fatal:
		z.Error(msg, args...)
	}
}
