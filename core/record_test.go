package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordLine(t *testing.T) {
	rec := Record{
		Stamp:   "2026-03-07 09:05:03",
		Name:    "worker",
		Level:   Warn,
		Message: "queue backlog",
		Args:    []string{"{ depth: 42 }", "'retrying'"},
	}
	assert.Equal(t,
		"[2026-03-07 09:05:03] [worker] [warn] queue backlog { depth: 42 } 'retrying'",
		rec.Line())
}

func TestRecordLine_NoArgs(t *testing.T) {
	rec := Record{Stamp: "t", Name: "n", Level: Info, Message: "hello"}
	assert.Equal(t, "[t] [n] [info] hello", rec.Line())
}
