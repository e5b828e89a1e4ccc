package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prismlog/prism/core"
)

func TestGlobalCallback_OwnGate(t *testing.T) {
	resetGlobal(t)
	var got []core.Record
	SetGlobalCallback(func(rec core.Record) { got = append(got, rec) }, WarnLevel)

	log, buf := newBufLogger(Options{})

	// Passes the instance gate but not the global callback's.
	log.Info("local only")
	if !strings.Contains(buf.String(), "local only") {
		t.Error("Instance console should have emitted")
	}
	if len(got) != 0 {
		t.Error("Global callback fired below its own level")
	}

	// Passes both.
	log.Warn("both")
	if len(got) != 1 {
		t.Fatalf("Expected 1 global record, got %d", len(got))
	}

	// A silenced instance still feeds the global callback: the gates
	// are independent.
	log.SetLevel(NoneLevel)
	buf.Reset()
	log.Error("global only")
	if buf.Len() > 0 {
		t.Error("Silenced instance should not write to console")
	}
	if len(got) != 2 {
		t.Error("Global callback should fire regardless of instance level")
	}
}

func TestGlobalCallbackLevel_Idempotent(t *testing.T) {
	resetGlobal(t)
	var count int
	SetGlobalCallback(func(core.Record) { count++ }, InfoLevel)

	SetGlobalCallbackLevel(ErrorLevel)
	if GlobalCallbackLevel() != ErrorLevel {
		t.Errorf("GlobalCallbackLevel() = %v, want Error", GlobalCallbackLevel())
	}
	// Re-reading returns the same value and the callback survived.
	if GlobalCallbackLevel() != ErrorLevel {
		t.Error("Level changed between reads")
	}

	log, _ := newBufLogger(Options{})
	log.Error("hit")
	if count != 1 {
		t.Error("Changing only the level must not drop the callback")
	}
}

func TestGlobalCallback_SharedAcrossInstances(t *testing.T) {
	resetGlobal(t)
	var count int
	SetGlobalCallback(func(core.Record) { count++ }, DebugLevel)

	a, _ := newBufLogger(Options{Level: DebugLevel, Name: "a"})
	b, _ := newBufLogger(Options{Level: DebugLevel, Name: "b"})
	a.Debug("from a")
	b.Debug("from b")
	if count != 2 {
		t.Errorf("Expected the shared callback to see both instances, got %d", count)
	}

	// One instance's local callback does not leak to the other.
	var local int
	a.SetCallback(func(core.Record) { local++ })
	b.Info("only b")
	if local != 0 {
		t.Error("Instance callback fired for an unrelated logger")
	}
}

func TestGlobalFile(t *testing.T) {
	resetGlobal(t)
	path := filepath.Join(t.TempDir(), "global.log")
	SetGlobalFile(path, WarnLevel, true)

	if GlobalFilePath() != path {
		t.Errorf("GlobalFilePath() = %q", GlobalFilePath())
	}
	if GlobalFileLevel() != WarnLevel {
		t.Errorf("GlobalFileLevel() = %v", GlobalFileLevel())
	}

	log, _ := newBufLogger(Options{Name: "svc"})
	log.Info("below global level")
	if GlobalFileSize() != 0 {
		t.Error("Global file should ignore records below its level")
	}

	log.Error("written")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "[svc] [error] written") {
		t.Errorf("Global file content = %q", data)
	}
	if GlobalFileSize() != int64(len(data)) {
		t.Errorf("GlobalFileSize() = %d, want %d", GlobalFileSize(), len(data))
	}

	// Raising the level afterwards gates future writes.
	SetGlobalFileLevel(FatalLevel)
	log.Error("dropped")
	if GlobalFileSize() != int64(len(data)) {
		t.Error("Record below the raised level still reached the file")
	}
}

func TestDefaultLogger(t *testing.T) {
	resetGlobal(t)
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	log, buf := newBufLogger(Options{Name: "pkg"})
	SetDefault(log)

	Info("through the package")
	if !strings.Contains(buf.String(), "[pkg] [info] through the package") {
		t.Errorf("Package wrapper output = %q", buf.String())
	}

	SetDefault(nil)
	if Default() != log {
		t.Error("SetDefault(nil) should be ignored")
	}
}
