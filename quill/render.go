package quill

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Options configures the renderer.
type Options struct {
	// Indent is the indentation unit (default: one tab).
	Indent string

	// SingleQuotes selects ' quoting for strings; false selects ".
	// DefaultOptions sets it to true.
	SingleQuotes bool

	// Filter decides per-property inclusion for keyed composites.
	// Properties for which it returns false are dropped.
	Filter func(parent *Value, key Key) bool

	// Transform may replace a rendered child verbatim. It receives
	// the parent composite, the child's key (or index), and the
	// already-rendered child text.
	Transform func(parent *Value, key Key, rendered string) string

	// InlineCharacterLimit, when > 0, collapses any composite whose
	// one-line form is at most this many characters onto one line.
	InlineCharacterLimit int
}

// DefaultOptions returns the documented defaults: tab indentation,
// single quotes, no filter/transform, inlining disabled.
func DefaultOptions() Options {
	return Options{
		Indent:       "\t",
		SingleQuotes: true,
	}
}

// Key identifies an array slot or object property in Filter and
// Transform callbacks. For array elements Index is set and IsIndex is
// true; for object properties either Name or Sym is set.
type Key struct {
	Name    string
	Sym     *Symbol
	Index   int
	IsIndex bool
}

// String returns the key's display form.
func (k Key) String() string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	if k.Sym != nil {
		return k.Sym.String()
	}
	return k.Name
}

func indexKey(i int) Key {
	return Key{Index: i, IsIndex: true}
}

func entryKey(e Entry) Key {
	if e.Sym != nil {
		return Key{Sym: e.Sym}
	}
	return Key{Name: e.Name}
}

// circularLiteral is emitted for ancestor-chain self-references. It is
// double-quoted regardless of quoting mode so it stays a valid
// embedded literal.
const circularLiteral = `"[Circular]"`

// bareKeyPattern is the conservative identifier form a string key must
// match to be emitted without quoting.
var bareKeyPattern = regexp.MustCompile(`^[a-zA-Z$_][a-zA-Z$_0-9]*$`)

// Render renders v as source-literal text with default options.
func Render(v *Value) string {
	return RenderWithOptions(v, DefaultOptions())
}

// RenderWithOptions renders v with custom options. An empty Indent is
// normalized to the default tab. Each call allocates its own visited
// set, so concurrent top-level renders are independent.
func RenderWithOptions(v *Value, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "\t"
	}
	r := &renderer{opts: opts}
	return r.render(v, "")
}

// renderer holds per-call state: the merged options and the visited
// set of composites currently being rendered on the active path.
type renderer struct {
	opts Options
	seen []*Value
}

// render renders one value. pad is the indentation prefix already
// accumulated for the current nesting depth.
func (r *renderer) render(v *Value, pad string) string {
	if v == nil {
		return "null"
	}

	// Cycle check comes first: a value currently being rendered by an
	// ancestor frame must short-circuit every other rule.
	for _, s := range r.seen {
		if s == v {
			return circularLiteral
		}
	}

	switch v.kind {
	case KindNull:
		return "null"

	case KindUndefined:
		return "undefined"

	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"

	case KindInt:
		return strconv.FormatInt(v.intVal, 10)

	case KindFloat:
		return formatFloat(v.floatVal)

	case KindFunc:
		// A callable with retained enumerable properties is a keyed
		// composite; otherwise it passes through as its source text.
		if len(r.retained(v)) > 0 {
			return r.renderObject(v, pad)
		}
		return v.fnRepr

	case KindSymbol:
		return v.symVal.String()

	case KindRegexp:
		return "/" + v.reSource + "/" + v.reFlags

	case KindTime:
		// Constructor-call literal around the full round-trip
		// instant, single-quoted regardless of quoting mode.
		return "new Date('" + v.timeVal.UTC().Format("2006-01-02T15:04:05.000Z07:00") + "')"

	case KindArray:
		return r.renderArray(v, pad)

	case KindObject:
		return r.renderObject(v, pad)

	case KindString:
		return r.renderString(v.strVal)

	default:
		// Unknown kinds degrade to the text fallback.
		return r.renderString(v.strVal)
	}
}

func (r *renderer) renderArray(v *Value, pad string) string {
	// Empty sequences short-circuit before the visited-set push.
	if len(v.arrVal) == 0 {
		return "[]"
	}

	tok := r.tokensFor(pad)

	r.seen = append(r.seen, v)
	defer func() { r.seen = r.seen[:len(r.seen)-1] }()

	parts := make([]string, 0, len(v.arrVal))
	for i, elem := range v.arrVal {
		child := r.render(elem, pad+r.opts.Indent)
		if r.opts.Transform != nil {
			child = r.opts.Transform(v, indexKey(i), child)
		}
		parts = append(parts, tok.indent+child)
	}

	ret := "[" + tok.newline + strings.Join(parts, ","+tok.newlineOrSpace) + tok.newline + tok.pad + "]"
	return r.compact(ret, pad)
}

func (r *renderer) renderObject(v *Value, pad string) string {
	entries := r.retained(v)

	// Empty composites short-circuit before the visited-set push, so
	// they are never considered in-progress.
	if len(entries) == 0 {
		return "{}"
	}

	tok := r.tokensFor(pad)

	r.seen = append(r.seen, v)
	defer func() { r.seen = r.seen[:len(r.seen)-1] }()

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		child := r.render(e.Value, pad+r.opts.Indent)
		if r.opts.Transform != nil {
			child = r.opts.Transform(v, entryKey(e), child)
		}
		parts = append(parts, tok.indent+r.renderKey(e)+": "+child)
	}

	ret := "{" + tok.newline + strings.Join(parts, ","+tok.newlineOrSpace) + tok.newline + tok.pad + "}"
	return r.compact(ret, pad)
}

// retained returns the properties the renderer will emit: enumerable
// string-keyed entries in insertion order, then enumerable
// symbol-keyed entries in discovery order, minus anything the
// configured Filter rejects.
func (r *renderer) retained(v *Value) []Entry {
	src := v.entries()
	out := make([]Entry, 0, len(src))
	for _, e := range src {
		if e.Sym != nil || e.Hidden {
			continue
		}
		if r.opts.Filter != nil && !r.opts.Filter(v, entryKey(e)) {
			continue
		}
		out = append(out, e)
	}
	for _, e := range src {
		if e.Sym == nil || e.Hidden {
			continue
		}
		if r.opts.Filter != nil && !r.opts.Filter(v, entryKey(e)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// renderKey emits an object key: symbols and identifier-shaped names
// are bare, anything else goes through the string path.
func (r *renderer) renderKey(e Entry) string {
	if e.Sym != nil {
		return e.Sym.String()
	}
	if bareKeyPattern.MatchString(e.Name) {
		return e.Name
	}
	return r.render(Str(e.Name), "")
}

// lineTerminators matches the terminators escaped in string output.
var lineTerminators = regexp.MustCompile("[\r\n]")

// unescapedSingleQuote matches a single quote with an optional
// preceding backslash, so already-escaped quotes are not doubled.
var unescapedSingleQuote = regexp.MustCompile(`\\?'`)

// renderString is the text fallback: escape line terminators
// preserving their identity, then quote per the configured mode.
func (r *renderer) renderString(s string) string {
	s = lineTerminators.ReplaceAllStringFunc(s, func(m string) string {
		if m == "\n" {
			return `\n`
		}
		return `\r`
	})

	if !r.opts.SingleQuotes {
		s = strings.ReplaceAll(s, `"`, `\"`)
		return `"` + s + `"`
	}

	s = unescapedSingleQuote.ReplaceAllString(s, `\'`)
	return "'" + s + "'"
}

// formatFloat renders a float in its natural literal form.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
