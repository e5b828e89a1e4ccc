package adapter

import (
	"fmt"
	"strings"
)

// line flattens a message and its extra arguments into the single string
// form the wrapped loggers expect.
func line(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, msg)
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, " ")
}
