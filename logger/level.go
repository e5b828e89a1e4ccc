package logger

import "github.com/prismlog/prism/core"

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	NoneLevel   = core.None
	DebugLevel  = core.Debug
	InfoLevel   = core.Info
	NoticeLevel = core.Notice
	WarnLevel   = core.Warn
	ErrorLevel  = core.Error
	FatalLevel  = core.Fatal
)

// ParseSeverity converts a string to a Severity. Unrecognized input maps
// to NoneLevel (never emit).
func ParseSeverity(s string) Severity {
	return core.ParseSeverity(s)
}
