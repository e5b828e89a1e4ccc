package adapter

import (
	apexlog "github.com/apex/log"

	"github.com/prismlog/prism/core"
	"github.com/prismlog/prism/logger"
)

// Apex adapts an apex/log logger to the logger.Delegate capability set.
//
// apex has no notice level, so Notice maps to Info. Fatal maps to Error
// because apex's Fatal terminates the process, which a delegate must
// never do.
type Apex struct {
	l apexlog.Interface
}

var _ logger.Delegate = (*Apex)(nil)

// NewApex wraps l as a Delegate.
func NewApex(l apexlog.Interface) *Apex {
	return &Apex{l: l}
}

// Debug forwards at apex's debug level
func (a *Apex) Debug(msg string, args ...any) { a.l.Debug(line(msg, args)) }

// Info forwards at apex's info level
func (a *Apex) Info(msg string, args ...any) { a.l.Info(line(msg, args)) }

// Notice forwards at apex's info level
func (a *Apex) Notice(msg string, args ...any) { a.l.Info(line(msg, args)) }

// Warn forwards at apex's warn level
func (a *Apex) Warn(msg string, args ...any) { a.l.Warn(line(msg, args)) }

// Error forwards at apex's error level
func (a *Apex) Error(msg string, args ...any) { a.l.Error(line(msg, args)) }

// Fatal forwards at apex's error level; see the type comment.
func (a *Apex) Fatal(msg string, args ...any) { a.l.Error(line(msg, args)) }

// Log forwards at the apex level closest to the given severity.
func (a *Apex) Log(level core.Severity, msg string, args ...any) {
	switch level {
	case core.Debug:
		a.Debug(msg, args...)
	case core.Info, core.Notice:
		a.Info(msg, args...)
	case core.Warn:
		a.Warn(msg, args...)
	case core.Error, core.Fatal:
		a.Error(msg, args...)
	}
}
