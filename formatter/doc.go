// Package formatter composes the textual line forms of a core.Record.
//
// Plain builds the canonical uncolored line used by file sinks and
// non-color consoles. Colored builds the ANSI-colored console line with
// per-severity level tags and the star-selected name highlight tiers.
// Sanitize strips escape sequences and control characters for the file
// path.
//
// Buffers are pooled; formatting a record does not allocate beyond the
// returned string.
package formatter
