package render

import (
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownType reports a value whose runtime type has no rendering
// rule. Callers that fan out to sinks must contain this error within the
// log call that triggered it.
var ErrUnknownType = errors.New("render: unknown value type")

// maxEntries is the container size guard. A container with at least this
// many own entries renders as "{...}" instead of being expanded. The
// guard applies at every nesting level.
const maxEntries = 100

const circularMark = "[Circular]"

type undefined struct{}

// Undefined is the sentinel for a value that is present but carries no
// value. It renders as the literal "undefined".
var Undefined undefined

// Symbol is an opaque named handle. It renders as "Symbol(<description>)".
type Symbol struct {
	Description string
}

// Pair is one key/value entry of an Object.
type Pair struct {
	Key   string
	Value any
}

// Object is an insertion-ordered container. Unlike a Go map it preserves
// the order in which keys were set, which is also the order they render.
type Object struct {
	pairs []Pair
}

// NewObject returns an empty ordered container.
func NewObject() *Object {
	return &Object{}
}

// Set appends or replaces the value for key and returns the receiver for
// chaining.
func (o *Object) Set(key string, value any) *Object {
	for i := range o.pairs {
		if o.pairs[i].Key == key {
			o.pairs[i].Value = value
			return o
		}
	}
	o.pairs = append(o.pairs, Pair{Key: key, Value: value})
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	for i := range o.pairs {
		if o.pairs[i].Key == key {
			return o.pairs[i].Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.pairs)
}

// Render converts value into its display string under the given options.
// It never recurses into a container that is its own ancestor: such a
// reference renders as "[Circular]". Sibling references to the same
// container render normally.
func Render(value any, opts Options) (string, error) {
	var b strings.Builder
	if err := renderValue(&b, value, &opts, map[uintptr]struct{}{}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderValue(b *strings.Builder, v any, opts *Options, visited map[uintptr]struct{}) error {
	switch t := v.(type) {
	case nil:
		b.WriteString(opts.paint(opts.Palette.Nil, "null"))
	case undefined:
		b.WriteString(opts.paint(opts.Palette.Nil, "undefined"))
	case string:
		b.WriteString(opts.paint(opts.Palette.String, opts.StringQuote+t+opts.StringQuote))
	case bool:
		b.WriteString(opts.paint(opts.Palette.Bool, strconv.FormatBool(t)))
	case int:
		writeNumber(b, opts, strconv.FormatInt(int64(t), 10))
	case int8:
		writeNumber(b, opts, strconv.FormatInt(int64(t), 10))
	case int16:
		writeNumber(b, opts, strconv.FormatInt(int64(t), 10))
	case int32:
		writeNumber(b, opts, strconv.FormatInt(int64(t), 10))
	case int64:
		writeNumber(b, opts, strconv.FormatInt(t, 10))
	case uint:
		writeNumber(b, opts, strconv.FormatUint(uint64(t), 10))
	case uint8:
		writeNumber(b, opts, strconv.FormatUint(uint64(t), 10))
	case uint16:
		writeNumber(b, opts, strconv.FormatUint(uint64(t), 10))
	case uint32:
		writeNumber(b, opts, strconv.FormatUint(uint64(t), 10))
	case uint64:
		writeNumber(b, opts, strconv.FormatUint(t, 10))
	case float32:
		writeNumber(b, opts, strconv.FormatFloat(float64(t), 'f', -1, 32))
	case float64:
		writeNumber(b, opts, strconv.FormatFloat(t, 'f', -1, 64))
	case *big.Int:
		writeNumber(b, opts, t.String())
	case Symbol:
		b.WriteString("Symbol(" + t.Description + ")")
	case *Object:
		return renderObject(b, t, opts, visited)
	case map[string]any:
		return renderMap(b, t, opts, visited)
	default:
		return renderReflected(b, v, opts, visited)
	}
	return nil
}

// renderReflected covers the kinds that cannot be matched structurally:
// arbitrary funcs, slices and arrays of any element type, and maps with
// string keys. Everything else is the documented hard error.
func renderReflected(b *strings.Builder, v any, opts *Options, visited map[uintptr]struct{}) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		b.WriteString("(function)")
		return nil
	case reflect.Slice, reflect.Array:
		return renderSequence(b, rv, opts, visited)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				m[iter.Key().String()] = iter.Value().Interface()
			}
			// The visited set must key on the original map, not the
			// re-boxed copy, or a self-referential typed map recurses
			// forever.
			return renderMapID(b, m, rv.Pointer(), opts, visited)
		}
	}
	return errors.Wrapf(ErrUnknownType, "%T", v)
}

func renderObject(b *strings.Builder, o *Object, opts *Options, visited map[uintptr]struct{}) error {
	if len(o.pairs) == 0 {
		writeEmpty(b, opts, "{", "}")
		return nil
	}
	if len(o.pairs) >= maxEntries {
		b.WriteString(opts.paint(opts.Palette.Brace, "{...}"))
		return nil
	}

	id := reflect.ValueOf(o).Pointer()
	if _, seen := visited[id]; seen {
		b.WriteString(circularMark)
		return nil
	}
	visited[id] = struct{}{}
	defer delete(visited, id)

	b.WriteString(opts.paint(opts.Palette.Brace, "{"))
	b.WriteByte(' ')
	for i, p := range o.pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		writeKey(b, opts, p.Key)
		if err := renderValue(b, p.Value, opts, visited); err != nil {
			return err
		}
	}
	b.WriteByte(' ')
	b.WriteString(opts.paint(opts.Palette.Brace, "}"))
	return nil
}

// renderMap renders a plain Go map. Go maps have no insertion order, so
// keys are sorted to keep the output stable.
func renderMap(b *strings.Builder, m map[string]any, opts *Options, visited map[uintptr]struct{}) error {
	return renderMapID(b, m, reflect.ValueOf(m).Pointer(), opts, visited)
}

// renderMapID renders m under the cycle identity id, which for a typed
// map is the pointer of the original value rather than the converted
// copy.
func renderMapID(b *strings.Builder, m map[string]any, id uintptr, opts *Options, visited map[uintptr]struct{}) error {
	if len(m) == 0 {
		writeEmpty(b, opts, "{", "}")
		return nil
	}
	if len(m) >= maxEntries {
		b.WriteString(opts.paint(opts.Palette.Brace, "{...}"))
		return nil
	}

	if _, seen := visited[id]; seen {
		b.WriteString(circularMark)
		return nil
	}
	visited[id] = struct{}{}
	defer delete(visited, id)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString(opts.paint(opts.Palette.Brace, "{"))
	b.WriteByte(' ')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		writeKey(b, opts, k)
		if err := renderValue(b, m[k], opts, visited); err != nil {
			return err
		}
	}
	b.WriteByte(' ')
	b.WriteString(opts.paint(opts.Palette.Brace, "}"))
	return nil
}

func renderSequence(b *strings.Builder, rv reflect.Value, opts *Options, visited map[uintptr]struct{}) error {
	n := rv.Len()
	if n == 0 {
		writeEmpty(b, opts, "[", "]")
		return nil
	}
	if n >= maxEntries {
		b.WriteString(opts.paint(opts.Palette.Brace, "{...}"))
		return nil
	}

	// Arrays are values and cannot alias themselves; only slices get an
	// identity in the visited set.
	var id uintptr
	if rv.Kind() == reflect.Slice {
		id = rv.Pointer()
		if _, seen := visited[id]; seen {
			b.WriteString(circularMark)
			return nil
		}
		visited[id] = struct{}{}
		defer delete(visited, id)
	}

	b.WriteString(opts.paint(opts.Palette.Brace, "["))
	b.WriteByte(' ')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := renderValue(b, rv.Index(i).Interface(), opts, visited); err != nil {
			return err
		}
	}
	b.WriteByte(' ')
	b.WriteString(opts.paint(opts.Palette.Brace, "]"))
	return nil
}

func writeEmpty(b *strings.Builder, opts *Options, open, closing string) {
	b.WriteString(opts.paint(opts.Palette.Brace, open))
	b.WriteString("  ")
	b.WriteString(opts.paint(opts.Palette.Brace, closing))
}

func writeKey(b *strings.Builder, opts *Options, key string) {
	b.WriteString(opts.paint(opts.Palette.Key, opts.KeyQuote+key+opts.KeyQuote))
	b.WriteString(": ")
}

func writeNumber(b *strings.Builder, opts *Options, text string) {
	b.WriteString(opts.paint(opts.Palette.Number, text))
}
