// Package sink implements the destinations a rendered log line can be
// written to.
//
// File is the size-capped append-only file destination: it sanitizes
// every line, keeps a running byte counter, and emits a single sentinel
// line the first time the counter crosses the configured cap. Assigning
// a path is destructive: a fresh path always starts as an empty file.
// Invalid paths silently unset the sink rather than erroring, since
// logging must never crash its host.
//
// Console is a mutex-guarded line writer for terminals and test buffers.
//
// Both sinks are safe for concurrent use.
package sink
