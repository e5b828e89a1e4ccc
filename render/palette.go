package render

import "github.com/fatih/color"

// Palette assigns a color to each syntactic piece of the output. A nil
// entry leaves that piece uncolored even when color is enabled.
type Palette struct {
	// Brace colors container delimiters and the size-guard literal.
	Brace *color.Color
	// Key colors object keys including their quotes.
	Key *color.Color
	// String colors string leaves including their quotes.
	String *color.Color
	// Number colors numeric and big-integer leaves.
	Number *color.Color
	// Bool colors boolean leaves.
	Bool *color.Color
	// Nil colors the null and undefined tokens.
	Nil *color.Color
}

// Options are the per-call rendering parameters. Color, palette, and
// quote characters are independent of each other and of any global
// state; the named presets below are fixed combinations of them.
type Options struct {
	// Color enables ANSI color output.
	Color bool
	// Palette selects the colors used when Color is true.
	Palette Palette
	// KeyQuote is the quote placed around object keys. Empty means bare
	// keys.
	KeyQuote string
	// StringQuote is the quote placed around string leaves.
	StringQuote string
}

func (o *Options) paint(c *color.Color, s string) string {
	if !o.Color || c == nil {
		return s
	}
	return c.Sprint(s)
}

// newColor builds a color that emits escape codes regardless of whether
// the process is attached to a terminal. The caller decides via
// Options.Color whether colors are used at all.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Plain is the uncolored preset: bare keys and single-quoted strings.
func Plain() Options {
	return Options{StringQuote: "'"}
}

// JSONLike is the uncolored preset with double-quoted keys and strings.
// The output approximates JSON but is not guaranteed valid: big integers
// and functions keep their literal display forms.
func JSONLike() Options {
	return Options{KeyQuote: `"`, StringQuote: `"`}
}

// Terminal is the colored preset for interactive console output.
func Terminal() Options {
	return Options{
		Color: true,
		Palette: Palette{
			Brace:  newColor(color.FgWhite),
			Key:    newColor(color.FgCyan),
			String: newColor(color.FgGreen),
			Number: newColor(color.FgYellow),
			Bool:   newColor(color.FgMagenta),
			Nil:    newColor(color.FgRed),
		},
		StringQuote: "'",
	}
}

// History is the colored preset for scrollback panes, using dimmer
// colors than Terminal.
func History() Options {
	return Options{
		Color: true,
		Palette: Palette{
			Brace:  newColor(color.FgHiBlack),
			Key:    newColor(color.FgBlue),
			String: newColor(color.FgHiGreen),
			Number: newColor(color.FgHiYellow),
			Bool:   newColor(color.FgHiMagenta),
			Nil:    newColor(color.FgHiRed),
		},
		StringQuote: "'",
	}
}

// Bus is the colored preset for message-bus viewers.
func Bus() Options {
	return Options{
		Color: true,
		Palette: Palette{
			Brace:  newColor(color.FgWhite),
			Key:    newColor(color.FgHiCyan),
			String: newColor(color.FgHiBlue),
			Number: newColor(color.FgHiYellow),
			Bool:   newColor(color.FgHiMagenta),
			Nil:    newColor(color.FgHiBlack),
		},
		StringQuote: "'",
	}
}

// Inspect is the colored preset for debugging dumps, with double-quoted
// strings so embedded quotes stand out.
func Inspect() Options {
	return Options{
		Color: true,
		Palette: Palette{
			Brace:  newColor(color.FgHiWhite),
			Key:    newColor(color.FgCyan, color.Bold),
			String: newColor(color.FgGreen),
			Number: newColor(color.FgYellow),
			Bool:   newColor(color.FgMagenta),
			Nil:    newColor(color.FgRed, color.Bold),
		},
		KeyQuote:    `"`,
		StringQuote: `"`,
	}
}
