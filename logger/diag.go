package logger

import (
	"fmt"
	"os"
	"sync"
)

// The diagnostic hook is the side channel for failures the library
// swallows: sink panics, file write errors, unserializable arguments.
// It exists so "never throw outward" does not mean "fail invisibly".

var (
	diagMu sync.Mutex
	diagFn = stderrDiag
)

func stderrDiag(err error) {
	fmt.Fprintln(os.Stderr, "prism:", err)
}

// SetDiagnosticFunc installs the hook that receives swallowed sink
// failures. nil restores the default stderr writer.
func SetDiagnosticFunc(fn func(error)) {
	diagMu.Lock()
	defer diagMu.Unlock()
	if fn == nil {
		fn = stderrDiag
	}
	diagFn = fn
}

func reportDiag(err error) {
	diagMu.Lock()
	fn := diagFn
	diagMu.Unlock()
	fn(err)
}
