package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/prismlog/prism/core"
	"github.com/prismlog/prism/formatter"
	"github.com/prismlog/prism/render"
	"github.com/prismlog/prism/sink"
)

// DefaultName is the display name used when none is configured.
const DefaultName = "logger"

// Options configures a new Logger. All fields are optional.
type Options struct {
	// Name is the display name shown in every line (default DefaultName).
	Name string
	// Level is the minimum severity the instance emits (default Info).
	Level core.Severity
	// DebugMode is the legacy boolean flag: when set and Level is unset,
	// the instance starts at Debug instead of Info.
	DebugMode bool
	// NoColor disables ANSI color on the console path.
	NoColor bool
	// TimeFormat selects the timestamp rendering (default date+time).
	TimeFormat core.TimeFormat
	// TimePattern is the custom pattern used with core.TimeCustom
	// (default core.DefaultPattern).
	TimePattern string
	// Delegate, when set, receives forwarded calls instead of direct
	// console rendering.
	Delegate Delegate
	// Callback, when set, receives every record the instance emits.
	Callback Callback
	// Writer is the console destination (default os.Stdout). When the
	// default is not a terminal, color starts disabled.
	Writer io.Writer
	// FilePath, when set, enables the instance file sink.
	FilePath string
	// MaxFileSize caps the instance file in bytes (default and ceiling
	// sink.MaxFileSize).
	MaxFileSize int64
}

// Logger renders leveled, timestamped records and fans them out to its
// configured sinks. Every sink evaluates its own gate, builds from the
// same rendered record, and fails in isolation: a broken callback or
// file path never prevents the other sinks from running, and no error
// ever reaches the code that called Debug or Log.
type Logger struct {
	mu          sync.Mutex
	name        string
	level       core.Severity
	color       bool
	timeFormat  core.TimeFormat
	timePattern string
	delegate    Delegate
	callback    Callback
	timerStart  time.Time
	timerLabel  string

	console *sink.Console
	file    *sink.File
}

// state is the per-call snapshot of the mutable configuration, taken
// once under the lock so a log call sees a consistent view.
type state struct {
	name        string
	level       core.Severity
	color       bool
	timeFormat  core.TimeFormat
	timePattern string
	delegate    Delegate
	callback    Callback
	timerStart  time.Time
}

// New creates a Logger from opts, applying defaults for unset fields.
func New(opts Options) *Logger {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	level := opts.Level
	if level == core.None {
		if opts.DebugMode {
			level = core.Debug
		} else {
			level = core.Info
		}
	}
	if opts.TimePattern == "" {
		opts.TimePattern = core.DefaultPattern
	}

	useColor := !opts.NoColor
	w := opts.Writer
	if w == nil {
		w = os.Stdout
		if useColor && !sink.IsTerminal(w) {
			useColor = false
		}
	}

	l := &Logger{
		name:        opts.Name,
		level:       level,
		color:       useColor,
		timeFormat:  opts.TimeFormat,
		timePattern: opts.TimePattern,
		delegate:    opts.Delegate,
		callback:    opts.Callback,
		console:     sink.NewConsole(w),
		file:        sink.NewFile(),
	}
	if opts.MaxFileSize != 0 {
		l.file.SetMaxSize(opts.MaxFileSize)
	}
	if opts.FilePath != "" {
		l.file.SetPath(opts.FilePath)
	}
	return l
}

// Log renders one record at level and dispatches it to every sink whose
// gate passes. It never panics and never returns an error; failures go
// to the diagnostic hook.
func (l *Logger) Log(level core.Severity, msg string, args ...any) {
	defer func() {
		if r := recover(); r != nil {
			reportDiag(errors.Errorf("logger: recovered: %v", r))
		}
	}()

	snap := l.snapshot()
	g := sharedState()
	gcb, gcbLevel := g.callbackState()
	gfile, gfLevel := g.fileState()

	instOK := core.ShouldEmit(level, snap.level)
	gcbOK := gcb != nil && core.ShouldEmit(level, gcbLevel)
	gfOK := core.ShouldEmit(level, gfLevel)
	if !instOK && !gcbOK && !gfOK {
		return
	}

	tier, clean := splitHighlight(msg)
	stamp := core.Stamp(time.Now(), snap.timerStart, snap.timeFormat, snap.timePattern)

	plainArgs, err := renderArgs(args, render.Plain())
	if err != nil {
		// Unknown argument type: the whole call is abandoned, but the
		// failure stays inside this invocation.
		reportDiag(err)
		return
	}

	rec := core.Record{
		Stamp:   stamp,
		Name:    snap.name,
		Level:   level,
		Message: clean,
		Args:    plainArgs,
		Tier:    tier,
	}
	line := formatter.Plain(rec)

	if instOK {
		if snap.callback != nil {
			invoke(func() { snap.callback(rec) })
		}
		if _, err := l.file.Append(line); err != nil {
			reportDiag(err)
		}
		if snap.delegate != nil {
			forward(snap.delegate, level, clean, args)
		} else {
			out := line
			if snap.color {
				if colorArgs, cerr := renderArgs(args, render.Terminal()); cerr == nil {
					out = formatter.Colored(rec, colorArgs)
				}
			}
			if err := l.console.WriteLine(out); err != nil {
				reportDiag(err)
			}
		}
	}
	if gcbOK {
		invoke(func() { gcb(rec) })
	}
	if gfOK {
		if _, err := gfile.Append(line); err != nil {
			reportDiag(err)
		}
	}
}

// Debug logs a message at Debug severity
func (l *Logger) Debug(msg string, args ...any) { l.Log(core.Debug, msg, args...) }

// Info logs a message at Info severity
func (l *Logger) Info(msg string, args ...any) { l.Log(core.Info, msg, args...) }

// Notice logs a message at Notice severity
func (l *Logger) Notice(msg string, args ...any) { l.Log(core.Notice, msg, args...) }

// Warn logs a message at Warn severity
func (l *Logger) Warn(msg string, args ...any) { l.Log(core.Warn, msg, args...) }

// Error logs a message at Error severity
func (l *Logger) Error(msg string, args ...any) { l.Log(core.Error, msg, args...) }

// Fatal logs a message at Fatal severity. The process is not terminated.
func (l *Logger) Fatal(msg string, args ...any) { l.Log(core.Fatal, msg, args...) }

func (l *Logger) snapshot() state {
	l.mu.Lock()
	defer l.mu.Unlock()
	return state{
		name:        l.name,
		level:       l.level,
		color:       l.color,
		timeFormat:  l.timeFormat,
		timePattern: l.timePattern,
		delegate:    l.delegate,
		callback:    l.callback,
		timerStart:  l.timerStart,
	}
}

// Name returns the display name.
func (l *Logger) Name() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.name
}

// SetName changes the display name.
func (l *Logger) SetName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if name != "" {
		l.name = name
	}
}

// Level returns the configured minimum severity.
func (l *Logger) Level() core.Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel changes the minimum severity. core.None silences the
// instance entirely.
func (l *Logger) SetLevel(level core.Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// ColorEnabled reports whether the console path emits ANSI colors.
func (l *Logger) ColorEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

// SetColorEnabled toggles ANSI colors on the console path.
func (l *Logger) SetColorEnabled(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = on
}

// TimeFormat returns the timestamp format selector.
func (l *Logger) TimeFormat() core.TimeFormat {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timeFormat
}

// SetTimeFormat changes the timestamp format selector.
func (l *Logger) SetTimeFormat(f core.TimeFormat) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timeFormat = f
}

// TimePattern returns the custom timestamp pattern.
func (l *Logger) TimePattern() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timePattern
}

// SetTimePattern changes the custom timestamp pattern used with
// core.TimeCustom.
func (l *Logger) SetTimePattern(pattern string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pattern != "" {
		l.timePattern = pattern
	}
}

// Callback returns the instance callback, or nil when none is set.
func (l *Logger) Callback() Callback {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.callback
}

// SetCallback installs the instance callback. nil removes it.
func (l *Logger) SetCallback(cb Callback) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callback = cb
}

// Delegate returns the delegate logger, or nil when none is set.
func (l *Logger) Delegate() Delegate {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.delegate
}

// SetDelegate installs the delegate logger. nil restores direct console
// rendering.
func (l *Logger) SetDelegate(d Delegate) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delegate = d
}

// FilePath returns the instance file path, or "" when the file sink is
// unset.
func (l *Logger) FilePath() string { return l.file.Path() }

// SetFilePath assigns the instance file. See sink.File.SetPath for the
// destructive-assignment semantics.
func (l *Logger) SetFilePath(path string) { l.file.SetPath(path) }

// FileSize returns the bytes written to the instance file so far.
func (l *Logger) FileSize() int64 { return l.file.Size() }

// MaxFileSize returns the instance file cap.
func (l *Logger) MaxFileSize() int64 { return l.file.MaxSize() }

// SetMaxFileSize changes the instance file cap, clamped to
// sink.MaxFileSize.
func (l *Logger) SetMaxFileSize(n int64) { l.file.SetMaxSize(n) }

// splitHighlight counts up to four leading stars, which select the
// highlighted-name color tier, and strips them from the message.
func splitHighlight(msg string) (int, string) {
	n := 0
	for n < 4 && n < len(msg) && msg[n] == '*' {
		n++
	}
	return n, msg[n:]
}

// renderArgs serializes each extra argument with the given preset.
func renderArgs(args []any, opts render.Options) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	out := make([]string, len(args))
	for i, a := range args {
		s, err := render.Render(a, opts)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// invoke runs a sink call and converts a panic into a diagnostic so one
// failing sink cannot stop the others.
func invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			reportDiag(errors.Errorf("logger: sink panicked: %v", r))
		}
	}()
	fn()
}

// forward routes a call to the delegate's same-named method.
func forward(d Delegate, level core.Severity, msg string, args []any) {
	invoke(func() {
		switch level {
		case core.Debug:
			d.Debug(msg, args...)
		case core.Info:
			d.Info(msg, args...)
		case core.Notice:
			d.Notice(msg, args...)
		case core.Warn:
			d.Warn(msg, args...)
		case core.Error:
			d.Error(msg, args...)
		case core.Fatal:
			d.Fatal(msg, args...)
		default:
			d.Log(level, msg, args...)
		}
	})
}
