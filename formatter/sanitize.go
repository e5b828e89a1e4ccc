package formatter

import (
	"regexp"
	"strings"
)

// ansiPattern matches CSI escape sequences (colors, cursor movement).
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

var controlReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
	"\t", " ",
)

// Sanitize strips ANSI escape sequences and flattens line breaks and
// tabs to single spaces. File sinks run every line through it so log
// files stay greppable plain text, one entry per line.
func Sanitize(s string) string {
	s = ansiPattern.ReplaceAllString(s, "")
	return controlReplacer.Replace(s)
}
