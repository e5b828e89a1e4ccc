package logger

import (
	"fmt"
	"time"
)

// StartTimer begins the instance timer. While it runs, every record's
// timestamp is replaced by the elapsed milliseconds since this call.
// Calling StartTimer again restarts the clock.
func (l *Logger) StartTimer(label string) {
	l.mu.Lock()
	l.timerStart = time.Now()
	l.timerLabel = label
	l.mu.Unlock()
	l.Debug(fmt.Sprintf("timer '%s' started", label))
}

// StopTimer clears the timer and logs the elapsed time at Info. Stopping
// a timer that is not running does nothing.
func (l *Logger) StopTimer(label string) {
	l.mu.Lock()
	start := l.timerStart
	l.timerStart = time.Time{}
	l.timerLabel = ""
	l.mu.Unlock()
	if start.IsZero() {
		return
	}
	l.Info(fmt.Sprintf("timer '%s': %d ms", label, time.Since(start).Milliseconds()))
}

// TimerRunning reports whether the instance timer is active.
func (l *Logger) TimerRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.timerStart.IsZero()
}

// TimerLabel returns the label of the running timer, or "" when no
// timer is active.
func (l *Logger) TimerLabel() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timerLabel
}
