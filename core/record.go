package core

import "strings"

// Record is a single rendered log event. It is built fresh for every log
// call that passes at least one gate, handed to each active sink, and
// then discarded; sinks must not retain it past the call.
type Record struct {
	// Stamp is the already-formatted timestamp (or timer override).
	Stamp string
	// Name is the display name of the emitting logger.
	Name string
	// Level is the message severity.
	Level Severity
	// Message is the log text with any highlight stars stripped.
	Message string
	// Args holds the extra arguments, serialized with the plain preset.
	Args []string
	// Tier is the highlight tier (0-4) selected by leading stars in the
	// original message. Only the colorized console path uses it.
	Tier int
}

// Line composes the canonical plain-text form of the record:
//
//	[<stamp>] [<name>] [<level>] <message> <args...>
func (r Record) Line() string {
	var b strings.Builder
	b.Grow(64 + len(r.Message))
	b.WriteByte('[')
	b.WriteString(r.Stamp)
	b.WriteString("] [")
	b.WriteString(r.Name)
	b.WriteString("] [")
	b.WriteString(r.Level.String())
	b.WriteString("] ")
	b.WriteString(r.Message)
	for _, a := range r.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	return b.String()
}
