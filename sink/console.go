package sink

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Console writes finished lines to a terminal-like writer. The caller
// decides coloring; Console only guarantees that concurrent lines do not
// interleave.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a console sink. A nil writer selects os.Stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// WriteLine writes one line followed by a newline.
func (c *Console) WriteLine(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, line+"\n"); err != nil {
		return errors.Wrap(err, "sink: console write")
	}
	return nil
}

// IsTerminal reports whether w is attached to an interactive terminal.
// Loggers use it to decide the default color setting for os.Stdout.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
