package sink

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/prismlog/prism/formatter"
)

// MaxFileSize is the hard ceiling on any log file. Configured caps above
// it are clamped down to it.
const MaxFileSize = 100 * 1024 * 1024

// sentinel is appended exactly once when a file crosses its size cap.
const sentinel = "logging stopped: size limit"

// File appends sanitized log lines to a path and tracks the cumulative
// byte count. Once the count reaches the configured cap the sink writes
// a one-time sentinel line and then drops everything else.
//
// Appends are serialized under a mutex so concurrent callers keep the
// byte counter accurate.
type File struct {
	mu      sync.Mutex
	path    string
	size    int64
	max     int64
	stopped bool
}

// NewFile returns an unset file sink with the cap at MaxFileSize.
func NewFile() *File {
	return &File{max: MaxFileSize}
}

// SetPath assigns the destination file. Assignment is destructive: any
// pre-existing file at path is deleted and the byte counter resets, so
// the sink always starts empty. An empty path, or one whose deletion
// fails, leaves the sink unset instead of returning an error.
func (f *File) SetPath(path string) {
	f.setPath(path, true)
}

// SetPathKeep assigns the destination file without deleting it; the byte
// counter resumes from the existing file size.
func (f *File) SetPathKeep(path string) {
	f.setPath(path, false)
}

func (f *File) setPath(path string, unlink bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.size = 0
	f.stopped = false
	f.path = ""
	if path == "" {
		return
	}
	if unlink {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return
		}
	} else if info, err := os.Stat(path); err == nil {
		f.size = info.Size()
	}
	f.path = path
}

// Path returns the current destination, or "" when the sink is unset.
func (f *File) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

// Size returns the cumulative byte count written so far.
func (f *File) Size() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

// MaxSize returns the configured cap.
func (f *File) MaxSize() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.max
}

// SetMaxSize configures the cap. Non-positive values and values above
// MaxFileSize both select MaxFileSize.
func (f *File) SetMaxSize(n int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 || n > MaxFileSize {
		n = MaxFileSize
	}
	f.max = n
}

// Append sanitizes line and writes it as one file line, returning the
// number of bytes written. An unset or capped sink writes nothing and
// returns 0, nil.
func (f *File) Append(line string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.path == "" {
		return 0, nil
	}
	if f.size >= f.max {
		if !f.stopped {
			f.stopped = true
			if _, err := f.write(sentinel); err != nil {
				return 0, err
			}
		}
		return 0, nil
	}
	return f.write(formatter.Sanitize(line))
}

// write appends one line under the held lock and advances the counter.
func (f *File) write(line string) (int, error) {
	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, errors.Wrapf(err, "sink: open %s", f.path)
	}
	defer fh.Close()

	n, err := fh.WriteString(line + "\n")
	f.size += int64(n)
	if err != nil {
		return n, errors.Wrapf(err, "sink: append %s", f.path)
	}
	return n, nil
}
