// Package quill renders in-memory values as human-readable,
// syntactically valid source-literal text.
//
// The input is a closed value model: null, undefined, booleans,
// numbers, strings, timestamps, pattern-matchers, callables, unique
// symbols, ordered sequences, and keyed composites. Rendering is:
//   - Deterministic: insertion-order keys, string keys before symbol
//     keys, stable across calls
//   - Cycle-safe: ancestor-chain self-references render as
//     "[Circular]"; sibling aliases of the same value render in full
//   - Configurable: indent unit, quoting style, per-property filter
//     and transform hooks, optional single-line compaction
//   - One-way: quill never parses its own output
//
// # Output Shape
//
//	Object:   {key: value, ...}   bare keys when identifier-shaped
//	Array:    [v1, v2, v3]
//	String:   'quoted' or "quoted"
//	Time:     new Date('2014-01-29T06:24:23.322Z')
//	Regexp:   /source/flags
//	Symbol:   Symbol(desc)
//
// # Example
//
//	v := quill.Object(
//		quill.Field("id", quill.Int(8)),
//		quill.Field("name", quill.Str("Jane")),
//	)
//	quill.Render(v)
//	// {
//	// 	id: 8,
//	// 	name: 'Jane'
//	// }
//
// With Options.InlineCharacterLimit set, short composites collapse
// onto one line: {id: 8, name: 'Jane'}.
//
// # Concurrency
//
// Each top-level Render call allocates its own cycle-detection state;
// concurrent renders of independent value graphs are safe. Filter and
// Transform callbacks run inline and must not mutate the value graph
// being rendered.
package quill
