package logger

import (
	"sync"

	"github.com/prismlog/prism/core"
	"github.com/prismlog/prism/sink"
)

// shared is the process-wide sink state: one optional callback and one
// optional file, each with its own minimum severity. Every Logger
// consults it on every call; no instance owns it and nothing tears it
// down. One mutex guards the whole triple.
type shared struct {
	mu        sync.Mutex
	callback  Callback
	cbLevel   core.Severity
	file      *sink.File
	fileLevel core.Severity
}

var (
	sharedOnce sync.Once
	sharedVal  *shared
)

// sharedState returns the process-wide state, initializing it on first
// access.
func sharedState() *shared {
	sharedOnce.Do(func() {
		sharedVal = &shared{file: sink.NewFile()}
	})
	return sharedVal
}

func (s *shared) callbackState() (Callback, core.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callback, s.cbLevel
}

func (s *shared) fileState() (*sink.File, core.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file, s.fileLevel
}

// SetGlobalCallback installs the process-wide callback with its minimum
// severity. A nil callback removes it.
func SetGlobalCallback(cb Callback, level core.Severity) {
	s := sharedState()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callback = cb
	s.cbLevel = level
}

// GlobalCallbackLevel returns the process-wide callback's minimum
// severity.
func GlobalCallbackLevel() core.Severity {
	s := sharedState()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cbLevel
}

// SetGlobalCallbackLevel changes the process-wide callback's minimum
// severity without touching the callback itself.
func SetGlobalCallbackLevel(level core.Severity) {
	s := sharedState()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cbLevel = level
}

// SetGlobalFile assigns the process-wide log file and its minimum
// severity. With unlink true any pre-existing file at path is deleted
// first; with unlink false the byte counter resumes from the existing
// size.
func SetGlobalFile(path string, level core.Severity, unlink bool) {
	s := sharedState()
	s.mu.Lock()
	defer s.mu.Unlock()
	if unlink {
		s.file.SetPath(path)
	} else {
		s.file.SetPathKeep(path)
	}
	s.fileLevel = level
}

// GlobalFilePath returns the process-wide log file path, or "" when
// unset.
func GlobalFilePath() string {
	return sharedState().file.Path()
}

// GlobalFileLevel returns the process-wide file's minimum severity.
func GlobalFileLevel() core.Severity {
	s := sharedState()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileLevel
}

// SetGlobalFileLevel changes the process-wide file's minimum severity.
func SetGlobalFileLevel(level core.Severity) {
	s := sharedState()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileLevel = level
}

// GlobalFileSize returns the bytes written to the process-wide file so
// far.
func GlobalFileSize() int64 {
	return sharedState().file.Size()
}
