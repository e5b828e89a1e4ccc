package logger

import "github.com/prismlog/prism/core"

// Callback receives every record that passes the gate of the sink it is
// attached to. Records are ephemeral; callbacks must not retain them.
type Callback func(rec core.Record)

// Delegate is the capability set an external logger must expose to
// receive forwarded calls. When a Logger has a delegate, terminal
// rendering is bypassed and the call goes to the delegate's same-named
// method; callbacks and file sinks still fire independently.
//
// Logger itself satisfies Delegate, so loggers can chain.
type Delegate interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Notice(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	Log(level core.Severity, msg string, args ...any)
}

var _ Delegate = (*Logger)(nil)
