package formatter

import (
	"strings"
	"testing"

	"github.com/prismlog/prism/core"
)

func testRecord() core.Record {
	return core.Record{
		Stamp:   "2026-03-07 09:05:03",
		Name:    "api",
		Level:   core.Error,
		Message: "request failed",
		Args:    []string{"{ code: 502 }"},
	}
}

func TestPlain(t *testing.T) {
	rec := testRecord()
	got := Plain(rec)
	want := "[2026-03-07 09:05:03] [api] [error] request failed { code: 502 }"
	if got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
	if got != rec.Line() {
		t.Errorf("Plain() = %q, want the record's own line %q", got, rec.Line())
	}
}

func TestColored(t *testing.T) {
	rec := testRecord()
	got := Colored(rec, []string{"{ code: 502 }"})

	if !strings.Contains(got, "\x1b[") {
		t.Error("Colored output should contain escape codes")
	}
	if !strings.Contains(got, "request failed") {
		t.Errorf("Expected message in output, got: %q", got)
	}
	if Sanitize(got) != Plain(rec) {
		t.Errorf("Stripped colored line should equal the plain line, got: %q", Sanitize(got))
	}
}

func TestColored_Tiers(t *testing.T) {
	rec := testRecord()
	base := Colored(rec, nil)
	for tier := 1; tier <= 4; tier++ {
		rec.Tier = tier
		got := Colored(rec, nil)
		if got == base {
			t.Errorf("Tier %d should color the name differently from tier 0", tier)
		}
		if Sanitize(got) != Sanitize(base) {
			t.Errorf("Tier %d should only change colors, got %q", tier, Sanitize(got))
		}
	}
}

func TestColored_UnknownLevel(t *testing.T) {
	rec := testRecord()
	rec.Level = core.Severity(99)
	got := Colored(rec, nil)
	if !strings.Contains(Sanitize(got), "[unknown]") {
		t.Errorf("Expected [unknown] tag, got: %q", Sanitize(got))
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"a\tb", "a b"},
		{"line1\nline2", "line1 line2"},
		{"line1\r\nline2", "line1 line2"},
		{"mac\rstyle", "mac style"},
		{"\x1b[1;32mbold green\x1b[0m\ttail", "bold green tail"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
