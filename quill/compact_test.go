package quill

import (
	"strings"
	"testing"
)

// ============================================================
// Inline Compaction
// ============================================================

func TestCompact_Disabled(t *testing.T) {
	obj := Object(Field("id", Int(8)), Field("name", Str("Jane")))
	expected := "{\n\tid: 8,\n\tname: 'Jane'\n}"
	if got := Render(obj); got != expected {
		t.Errorf("Render() = %q, want %q", got, expected)
	}
	if strings.Contains(Render(obj), "@@__") {
		t.Errorf("placeholder tokens leaked into output")
	}
}

func TestCompact_Boundary(t *testing.T) {
	obj := Object(Field("id", Int(8)), Field("name", Str("Jane")))
	oneLine := "{id: 8, name: 'Jane'}"
	multiLine := "{\n\tid: 8,\n\tname: 'Jane'\n}"

	tests := []struct {
		name     string
		limit    int
		expected string
	}{
		{"at limit", len(oneLine), oneLine},
		{"above limit", len(oneLine) + 10, oneLine},
		{"one below limit", len(oneLine) - 1, multiLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.InlineCharacterLimit = tt.limit
			if got := RenderWithOptions(obj, opts); got != tt.expected {
				t.Errorf("limit %d: got %q, want %q", tt.limit, got, tt.expected)
			}
		})
	}
}

func TestCompact_Array(t *testing.T) {
	arr := Array(Int(1), Int(2), Int(3))
	opts := DefaultOptions()
	opts.InlineCharacterLimit = 9
	if got := RenderWithOptions(arr, opts); got != "[1, 2, 3]" {
		t.Errorf("RenderWithOptions() = %q, want [1, 2, 3]", got)
	}

	opts.InlineCharacterLimit = 8
	expected := "[\n\t1,\n\t2,\n\t3\n]"
	if got := RenderWithOptions(arr, opts); got != expected {
		t.Errorf("RenderWithOptions() = %q, want %q", got, expected)
	}
}

func TestCompact_NestedMixed(t *testing.T) {
	// A short child inlines inside a parent that stays multi-line.
	obj := Object(
		Field("a", Array(Int(1), Int(2))),
		Field("b", Str("xxxxxxxxxx")),
	)
	opts := DefaultOptions()
	opts.InlineCharacterLimit = 10
	expected := "{\n\ta: [1, 2],\n\tb: 'xxxxxxxxxx'\n}"
	if got := RenderWithOptions(obj, opts); got != expected {
		t.Errorf("RenderWithOptions() = %q, want %q", got, expected)
	}
}

func TestCompact_DeepNestingPads(t *testing.T) {
	// When an inner composite exceeds the limit it materializes with
	// the pad of its own depth.
	inner := Object(Field("name", Str("a long enough string")))
	obj := Object(Field("outer", inner))
	opts := DefaultOptions()
	opts.InlineCharacterLimit = 5
	expected := "{\n\touter: {\n\t\tname: 'a long enough string'\n\t}\n}"
	if got := RenderWithOptions(obj, opts); got != expected {
		t.Errorf("RenderWithOptions() = %q, want %q", got, expected)
	}
}

func TestCompact_LimitCountsRunes(t *testing.T) {
	obj := Object(Field("s", Str("héllo")))
	oneLine := "{s: 'héllo'}"
	opts := DefaultOptions()
	opts.InlineCharacterLimit = 12 // 12 runes, 13 bytes
	if got := RenderWithOptions(obj, opts); got != oneLine {
		t.Errorf("RenderWithOptions() = %q, want %q", got, oneLine)
	}
}

func TestCompact_CircularInline(t *testing.T) {
	obj := Object(Field("a", Int(1)))
	obj.Set("self", obj)
	opts := DefaultOptions()
	opts.InlineCharacterLimit = 80
	expected := "{a: 1, self: \"[Circular]\"}"
	if got := RenderWithOptions(obj, opts); got != expected {
		t.Errorf("RenderWithOptions() = %q, want %q", got, expected)
	}
}
