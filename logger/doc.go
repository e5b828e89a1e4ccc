// Package logger is the public API of prism. Most users only need to
// import this package.
//
// A Logger fans each call out to up to five destinations: the instance
// callback, the process-wide callback, the instance file, the
// process-wide file, and either the console or a delegate logger. Each
// destination evaluates its own severity gate, so one call can reach
// some sinks and not others. Sinks fail in isolation: panics and write
// errors are routed to the diagnostic hook (SetDiagnosticFunc) and never
// reach the caller, since logging must not crash the host application.
//
// The package initializes a default Logger (Info, color on terminals,
// stdout) and exposes the usual package-level wrappers:
//
//	logger.Info("ready")
//	logger.Debug("payload", render.NewObject().Set("port", 8080))
//
// For custom configuration, construct an instance:
//
//	log := logger.New(logger.Options{
//	    Name:  "worker",
//	    Level: logger.DebugLevel,
//	})
//
// The process-wide callback and file are shared by all instances and are
// configured through the SetGlobal* functions. They are initialized on
// first access and never torn down.
//
// Messages may begin with one to four '*' characters to pick a
// highlighted name color on the colorized console path; the stars are
// stripped from the displayed message everywhere.
package logger
