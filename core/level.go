package core

import "strings"

// Severity represents the importance of a log record. The order is total
// and fixed: None < Debug < Info < Notice < Warn < Error < Fatal. None is
// a sentinel meaning "never emit" and is valid on both sides of the gate.
type Severity int8

const (
	// None disables emission entirely, whether used as a message level
	// or as a configured threshold.
	None Severity = iota
	// Debug for detailed debugging information
	Debug
	// Info for general informational messages (default)
	Info
	// Notice for normal but significant events
	Notice
	// Warn for warning messages
	Warn
	// Error for error messages
	Error
	// Fatal for unrecoverable failures. Logging at Fatal does not
	// terminate the process; the level only marks the record.
	Fatal
)

// String returns the lowercase tag used in rendered lines
func (s Severity) String() string {
	switch s {
	case None:
		return "none"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Notice:
		return "notice"
	case Warn:
		return "warn"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity. Unrecognized input maps
// to None so that a bad configuration value filters everything out
// instead of letting everything through.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "notice":
		return Notice
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	case "fatal":
		return Fatal
	default:
		return None
	}
}

// valid reports whether s is a real emitting severity.
func (s Severity) valid() bool {
	return s >= Debug && s <= Fatal
}

// ShouldEmit decides whether a record at message severity passes a sink
// configured at threshold. None on either side never emits, and values
// outside the known range fail closed.
func ShouldEmit(message, threshold Severity) bool {
	if !message.valid() || !threshold.valid() {
		return false
	}
	return message >= threshold
}
