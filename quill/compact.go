package quill

import (
	"strings"
	"unicode/utf8"
)

// ============================================================
// Whitespace Compaction
// ============================================================
//
// When an inline character limit is configured, the renderer emits
// sentinel tokens instead of structural whitespace. At every composite
// return point the assembled text is measured as a one-line candidate;
// if it fits, the tokens are stripped, otherwise they are materialized
// into real newlines and padding. This defers the inline-vs-multiline
// decision until the full rendered length of a subtree is known,
// without re-rendering the subtree.
//
// The sentinels only need to never appear in user text; output from
// nested composites never carries them upward because compaction runs
// at every composite return.

const (
	tokNewline        = "@@__QUILL_NEW_LINE__@@"
	tokNewlineOrSpace = "@@__QUILL_NEW_LINE_OR_SPACE__@@"
	tokPad            = "@@__QUILL_PAD__@@"
	tokIndent         = "@@__QUILL_INDENT__@@"
)

// tokens holds the structural whitespace strings for one frame.
type tokens struct {
	newline        string
	newlineOrSpace string
	pad            string
	indent         string
}

// tokensFor returns the frame's structural whitespace: literal
// newlines and padding when inlining is disabled, sentinels otherwise.
func (r *renderer) tokensFor(pad string) tokens {
	if r.opts.InlineCharacterLimit <= 0 {
		return tokens{
			newline:        "\n",
			newlineOrSpace: "\n",
			pad:            pad,
			indent:         pad + r.opts.Indent,
		}
	}
	return tokens{
		newline:        tokNewline,
		newlineOrSpace: tokNewlineOrSpace,
		pad:            tokPad,
		indent:         tokIndent,
	}
}

// compact resolves the sentinel tokens in a composite's assembled
// text: one line when the candidate fits the configured limit, the
// multi-line form otherwise. No-op when inlining is disabled.
func (r *renderer) compact(s, pad string) string {
	if r.opts.InlineCharacterLimit <= 0 {
		return s
	}

	oneLine := strings.ReplaceAll(s, tokNewline, "")
	oneLine = strings.ReplaceAll(oneLine, tokNewlineOrSpace, " ")
	oneLine = strings.ReplaceAll(oneLine, tokPad, "")
	oneLine = strings.ReplaceAll(oneLine, tokIndent, "")

	if utf8.RuneCountInString(oneLine) <= r.opts.InlineCharacterLimit {
		return oneLine
	}

	s = strings.ReplaceAll(s, tokNewline, "\n")
	s = strings.ReplaceAll(s, tokNewlineOrSpace, "\n")
	s = strings.ReplaceAll(s, tokPad, pad)
	s = strings.ReplaceAll(s, tokIndent, pad+r.opts.Indent)
	return s
}
