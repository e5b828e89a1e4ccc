package formatter

import (
	"github.com/prismlog/prism/core"
)

// Plain composes the uncolored line form of a record. It is the form
// written to files (after sanitizing) and to consoles with color
// disabled. The layout is owned by core.Record.Line.
func Plain(rec core.Record) string {
	return rec.Line()
}
