package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFile_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := NewFile()
	f.SetPath(path)

	n, err := f.Append("hello")
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if n != len("hello")+1 {
		t.Errorf("Expected %d bytes written, got %d", len("hello")+1, n)
	}
	if f.Size() != int64(n) {
		t.Errorf("Size() = %d, want %d", f.Size(), n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("File content = %q, want %q", data, "hello\n")
	}
}

func TestFile_AppendStripsANSI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := NewFile()
	f.SetPath(path)

	if _, err := f.Append("\x1b[31mred\x1b[0m\tand\ttabs"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "red and tabs\n" {
		t.Errorf("File content = %q, want %q", data, "red and tabs\n")
	}
}

func TestFile_SizeCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := NewFile()
	f.SetPath(path)
	f.SetMaxSize(10)

	// First append fits under the cap and crosses it.
	if _, err := f.Append("0123456789ab"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// The next append trips the sentinel instead of writing the line.
	if _, err := f.Append("dropped"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	// Further appends write nothing at all.
	if _, err := f.Append("also dropped"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	content := string(data)
	if strings.Contains(content, "dropped") {
		t.Errorf("Capped file should not contain application lines, got: %q", content)
	}
	if strings.Count(content, "logging stopped: size limit") != 1 {
		t.Errorf("Expected exactly one sentinel line, got: %q", content)
	}
}

func TestFile_SetPathDeletesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := NewFile()
	f.SetPath(path)
	for i := 0; i < 6; i++ {
		if _, err := f.Append("line"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if f.Size() == 0 {
		t.Fatal("Expected non-zero size after writes")
	}

	// Re-assigning the same path deletes the file and resets the counter.
	f.SetPath(path)
	if f.Size() != 0 {
		t.Errorf("Size() = %d after reassign, want 0", f.Size())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected prior file to be deleted on reassign")
	}
}

func TestFile_InvalidPathUnsets(t *testing.T) {
	f := NewFile()

	f.SetPath("")
	if f.Path() != "" {
		t.Errorf("Empty path should leave the sink unset, got %q", f.Path())
	}
	if n, err := f.Append("nowhere"); n != 0 || err != nil {
		t.Errorf("Unset sink should drop lines, got n=%d err=%v", n, err)
	}

	// A path routed through a regular file cannot be resolved or
	// deleted; assignment silently unsets the sink.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	f.SetPath(filepath.Join(blocker, "sub.log"))
	if f.Path() != "" {
		t.Errorf("Invalid path should leave the sink unset, got %q", f.Path())
	}
}

func TestFile_SetPathKeep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("existing\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f := NewFile()
	f.SetPathKeep(path)
	if f.Size() != int64(len("existing\n")) {
		t.Errorf("Size() = %d, want %d", f.Size(), len("existing\n"))
	}

	if _, err := f.Append("more"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "existing\nmore\n" {
		t.Errorf("File content = %q", data)
	}
}

func TestFile_MaxSizeClamp(t *testing.T) {
	f := NewFile()
	if f.MaxSize() != MaxFileSize {
		t.Errorf("Default cap = %d, want %d", f.MaxSize(), MaxFileSize)
	}
	f.SetMaxSize(MaxFileSize * 2)
	if f.MaxSize() != MaxFileSize {
		t.Errorf("Cap above ceiling should clamp, got %d", f.MaxSize())
	}
	f.SetMaxSize(-1)
	if f.MaxSize() != MaxFileSize {
		t.Errorf("Non-positive cap should select ceiling, got %d", f.MaxSize())
	}
	f.SetMaxSize(4096)
	if f.MaxSize() != 4096 {
		t.Errorf("Cap = %d, want 4096", f.MaxSize())
	}
}
