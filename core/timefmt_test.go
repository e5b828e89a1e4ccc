package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.March, 7, 9, 5, 3, 42e6, time.UTC)

func TestStamp_Formats(t *testing.T) {
	cases := []struct {
		format TimeFormat
		want   string
	}{
		{TimeDateTime, "2026-03-07 09:05:03"},
		{TimeISO8601, "2026-03-07T09:05:03.042Z"},
		{TimeDateOnly, "2026-03-07"},
		{TimeTimeOnly, "09:05:03"},
		{TimeClockMillis, "09:05:03.042"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Stamp(testNow, time.Time{}, c.format, ""))
	}
}

func TestStamp_CustomPattern(t *testing.T) {
	got := Stamp(testNow, time.Time{}, TimeCustom, "dd.MM.yyyy HH:mm:ss")
	assert.Equal(t, "07.03.2026 09:05:03", got)

	// Empty pattern falls back to the default.
	assert.Equal(t, "2026-03-07 09:05:03",
		Stamp(testNow, time.Time{}, TimeCustom, ""))

	// Months are 1-12, zero padded.
	jan := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01", Stamp(jan, time.Time{}, TimeCustom, "MM"))
}

func TestStamp_CustomPatternFirstOccurrenceOnly(t *testing.T) {
	// Each token substitutes its first occurrence; repeats pass through.
	got := Stamp(testNow, time.Time{}, TimeCustom, "yyyy/yyyy")
	assert.Equal(t, "2026/yyyy", got)

	// Unrecognized text is untouched.
	got = Stamp(testNow, time.Time{}, TimeCustom, "at HH hours (x)")
	assert.Equal(t, "at 09 hours (x)", got)
}

func TestStamp_TimerOverride(t *testing.T) {
	start := testNow.Add(-1500 * time.Millisecond)

	// A running timer overrides every format selector.
	for _, f := range []TimeFormat{TimeDateTime, TimeISO8601, TimeCustom, TimeClockMillis} {
		got := Stamp(testNow, start, f, "yyyy")
		assert.Equal(t, fmt.Sprintf("Timer: %-6d ms", 1500), got)
	}
}
