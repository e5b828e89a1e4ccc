// Package adapter bridges third-party loggers into the logger.Delegate
// capability set, so an application can route prism's terminal output
// through the logging stack it already runs.
//
// Levels without a direct counterpart are mapped to the nearest one, and
// Fatal always maps to a non-terminating level: a delegate receives
// forwarded log calls and must never take the process down.
package adapter
