package formatter

import (
	"github.com/fatih/color"

	"github.com/prismlog/prism/core"
)

// levelColors maps each severity to the color of its bracketed tag.
var levelColors = [...]*color.Color{
	core.Debug:  newColor(color.FgHiBlack),
	core.Info:   newColor(color.FgGreen),
	core.Notice: newColor(color.FgCyan),
	core.Warn:   newColor(color.FgYellow),
	core.Error:  newColor(color.FgRed),
	core.Fatal:  newColor(color.FgRed, color.Bold),
}

// tierColors maps the highlight tier selected by leading stars to the
// color of the logger name. Tier 0 is the unhighlighted default.
var tierColors = [...]*color.Color{
	0: newColor(color.FgMagenta),
	1: newColor(color.FgGreen, color.Bold),
	2: newColor(color.FgYellow, color.Bold),
	3: newColor(color.FgHiMagenta, color.Bold),
	4: newColor(color.FgRed, color.Bold),
}

var stampColor = newColor(color.Faint)

// newColor builds a color that emits escape codes even when the process
// is not attached to a terminal; the caller gates color use explicitly.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Colored composes the ANSI-colored console line for a record. args are
// the extra arguments already rendered with a colored preset; they
// replace rec.Args in the output.
func Colored(rec core.Record, args []string) string {
	buf := getBuffer()
	defer putBuffer(buf)

	lc := levelColors[core.Info]
	if lvl := int(rec.Level); lvl > 0 && lvl < len(levelColors) && levelColors[lvl] != nil {
		lc = levelColors[lvl]
	}
	tc := tierColors[0]
	if rec.Tier > 0 && rec.Tier < len(tierColors) {
		tc = tierColors[rec.Tier]
	}

	buf.WriteString(stampColor.Sprint("[" + rec.Stamp + "]"))
	buf.WriteByte(' ')
	buf.WriteString(tc.Sprint("[" + rec.Name + "]"))
	buf.WriteByte(' ')
	buf.WriteString(lc.Sprint("[" + rec.Level.String() + "]"))
	buf.WriteByte(' ')
	buf.WriteString(rec.Message)
	for _, a := range args {
		buf.WriteByte(' ')
		buf.WriteString(a)
	}
	return buf.String()
}
