package core

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat selects how the timestamp of a record is rendered.
type TimeFormat int8

const (
	// TimeDateTime renders date and time, e.g. "2026-08-29 14:03:07" (default)
	TimeDateTime TimeFormat = iota
	// TimeISO8601 renders an ISO-8601 UTC timestamp with milliseconds
	TimeISO8601
	// TimeDateOnly renders the date portion only
	TimeDateOnly
	// TimeTimeOnly renders the time portion only
	TimeTimeOnly
	// TimeClockMillis renders "HH:mm:ss.mmm" with zero padding
	TimeClockMillis
	// TimeCustom substitutes the tokens yyyy, MM, dd, HH, mm, ss in a
	// caller-supplied pattern
	TimeCustom
)

// DefaultPattern is the custom pattern used when none is configured.
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

// Stamp formats now according to format. A running timer overrides the
// format selector entirely: while timerStart is non-zero the stamp is
// always the elapsed milliseconds since the timer began.
func Stamp(now, timerStart time.Time, format TimeFormat, pattern string) string {
	if !timerStart.IsZero() {
		return fmt.Sprintf("Timer: %-6d ms", now.Sub(timerStart).Milliseconds())
	}

	switch format {
	case TimeISO8601:
		return now.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	case TimeDateOnly:
		return now.Format("2006-01-02")
	case TimeTimeOnly:
		return now.Format("15:04:05")
	case TimeClockMillis:
		return now.Format("15:04:05.000")
	case TimeCustom:
		if pattern == "" {
			pattern = DefaultPattern
		}
		return expandPattern(pattern, now)
	default:
		return now.Format("2006-01-02 15:04:05")
	}
}

// expandPattern substitutes each token into pattern. Every token is
// replaced at its first occurrence only, left to right; text that is not
// a token passes through unchanged. Months are 1-12.
func expandPattern(pattern string, now time.Time) string {
	out := pattern
	out = strings.Replace(out, "yyyy", fmt.Sprintf("%04d", now.Year()), 1)
	out = strings.Replace(out, "MM", fmt.Sprintf("%02d", int(now.Month())), 1)
	out = strings.Replace(out, "dd", fmt.Sprintf("%02d", now.Day()), 1)
	out = strings.Replace(out, "HH", fmt.Sprintf("%02d", now.Hour()), 1)
	out = strings.Replace(out, "mm", fmt.Sprintf("%02d", now.Minute()), 1)
	out = strings.Replace(out, "ss", fmt.Sprintf("%02d", now.Second()), 1)
	return out
}
