package quill

import (
	"fmt"
	"regexp"
	"time"
)

// Kind represents quill value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindUndefined
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
	KindRegexp // Pattern-matcher: /source/flags
	KindSymbol // Unique symbolic token: Symbol(desc)
	KindFunc   // Callable reference, rendered by its source text
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindRegexp:
		return "regexp"
	case KindSymbol:
		return "symbol"
	case KindFunc:
		return "func"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value represents a quill value. Identity is pointer identity: two
// *Value pointing at the same allocation are the same value for cycle
// detection, regardless of structural equality.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	timeVal  time.Time

	// Regexp source and flags
	reSource string
	reFlags  string

	// Symbol token
	symVal *Symbol

	// Callable representation plus any own properties
	fnRepr  string
	fnProps []Entry

	// Container values
	arrVal []*Value
	objVal []Entry
}

// Symbol is a unique symbolic token. Two symbols are the same token
// only when they are the same *Symbol; the description is display-only.
type Symbol struct {
	desc string
}

// NewSymbol creates a fresh symbol with the given description.
func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

// Desc returns the symbol's description.
func (s *Symbol) Desc() string {
	return s.desc
}

// String returns the symbol's literal notation, e.g. Symbol(foo).
func (s *Symbol) String() string {
	return "Symbol(" + s.desc + ")"
}

// Entry represents one property of an object value. Exactly one of
// Name or Sym identifies the key: Sym non-nil means a symbol-keyed
// entry. Hidden entries are non-enumerable and never rendered.
type Entry struct {
	Name   string
	Sym    *Symbol
	Value  *Value
	Hidden bool
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Undefined creates an absent-value marker.
func Undefined() *Value {
	return &Value{kind: KindUndefined}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Time creates a timestamp value.
func Time(v time.Time) *Value {
	return &Value{kind: KindTime, timeVal: v}
}

// Regexp creates a pattern-matcher value from a pattern source.
func Regexp(source string) *Value {
	return &Value{kind: KindRegexp, reSource: source}
}

// RegexpWithFlags creates a pattern-matcher value with match flags,
// e.g. RegexpWithFlags("ab?c", "gi").
func RegexpWithFlags(source, flags string) *Value {
	return &Value{kind: KindRegexp, reSource: source, reFlags: flags}
}

// RegexpOf creates a pattern-matcher value from a compiled regexp.
func RegexpOf(re *regexp.Regexp) *Value {
	return &Value{kind: KindRegexp, reSource: re.String()}
}

// Sym creates a symbolic token value.
func Sym(s *Symbol) *Value {
	return &Value{kind: KindSymbol, symVal: s}
}

// Func creates a callable reference rendered by its source text.
func Func(repr string) *Value {
	return &Value{kind: KindFunc, fnRepr: repr}
}

// FuncObj creates a callable reference that carries own properties.
// A callable with enumerable properties renders as a keyed composite.
func FuncObj(repr string, props ...Entry) *Value {
	return &Value{kind: KindFunc, fnRepr: repr, fnProps: props}
}

// Array creates an ordered sequence value.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: elems}
}

// Object creates a keyed composite from entries.
func Object(entries ...Entry) *Value {
	return &Value{kind: KindObject, objVal: entries}
}

// Field creates a string-keyed entry.
func Field(name string, value *Value) Entry {
	return Entry{Name: name, Value: value}
}

// SymField creates a symbol-keyed entry.
func SymField(sym *Symbol, value *Value) Entry {
	return Entry{Sym: sym, Value: value}
}

// HiddenSymField creates a non-enumerable symbol-keyed entry.
func HiddenSymField(sym *Symbol, value *Value) Entry {
	return Entry{Sym: sym, Value: value, Hidden: true}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true for null and nil values.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("quill: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindInt {
		return 0, fmt.Errorf("quill: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindFloat {
		return 0, fmt.Errorf("quill: expected float, got %s", v.kind)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("quill: nil value")
	}
	if v.kind != KindString {
		return "", fmt.Errorf("quill: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsTime returns the timestamp value.
func (v *Value) AsTime() (time.Time, error) {
	if v == nil {
		return time.Time{}, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindTime {
		return time.Time{}, fmt.Errorf("quill: expected time, got %s", v.kind)
	}
	return v.timeVal, nil
}

// AsArray returns the sequence elements.
func (v *Value) AsArray() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindArray {
		return nil, fmt.Errorf("quill: expected array, got %s", v.kind)
	}
	return v.arrVal, nil
}

// AsObject returns the object entries.
func (v *Value) AsObject() ([]Entry, error) {
	if v == nil {
		return nil, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindObject {
		return nil, fmt.Errorf("quill: expected object, got %s", v.kind)
	}
	return v.objVal, nil
}

// Len returns the length of an array or the property count of an
// object or callable.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	case KindFunc:
		return len(v.fnProps)
	default:
		return 0
	}
}

// Get returns a string-keyed property value from an object or
// callable, or nil when absent.
func (v *Value) Get(name string) *Value {
	if v == nil {
		return nil
	}
	for _, e := range v.entries() {
		if e.Sym == nil && e.Name == name {
			return e.Value
		}
	}
	return nil
}

// GetSym returns a symbol-keyed property value, or nil when absent.
func (v *Value) GetSym(sym *Symbol) *Value {
	if v == nil {
		return nil
	}
	for _, e := range v.entries() {
		if e.Sym == sym {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindArray {
		return nil, fmt.Errorf("quill: not an array")
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil, fmt.Errorf("quill: index %d out of bounds (len=%d)", i, len(v.arrVal))
	}
	return v.arrVal[i], nil
}

// entries returns the property list of an object or callable.
func (v *Value) entries() []Entry {
	switch v.kind {
	case KindObject:
		return v.objVal
	case KindFunc:
		return v.fnProps
	default:
		return nil
	}
}

// ============================================================
// Mutators
// ============================================================

// Set sets a string-keyed property on an object or callable,
// appending when the key is new.
func (v *Value) Set(name string, val *Value) {
	switch v.kind {
	case KindObject:
		for i := range v.objVal {
			if v.objVal[i].Sym == nil && v.objVal[i].Name == name {
				v.objVal[i].Value = val
				return
			}
		}
		v.objVal = append(v.objVal, Entry{Name: name, Value: val})
	case KindFunc:
		for i := range v.fnProps {
			if v.fnProps[i].Sym == nil && v.fnProps[i].Name == name {
				v.fnProps[i].Value = val
				return
			}
		}
		v.fnProps = append(v.fnProps, Entry{Name: name, Value: val})
	default:
		panic("quill: cannot set on non-object")
	}
}

// SetSym sets a symbol-keyed property on an object or callable.
func (v *Value) SetSym(sym *Symbol, val *Value) {
	switch v.kind {
	case KindObject:
		for i := range v.objVal {
			if v.objVal[i].Sym == sym {
				v.objVal[i].Value = val
				return
			}
		}
		v.objVal = append(v.objVal, Entry{Sym: sym, Value: val})
	case KindFunc:
		for i := range v.fnProps {
			if v.fnProps[i].Sym == sym {
				v.fnProps[i].Value = val
				return
			}
		}
		v.fnProps = append(v.fnProps, Entry{Sym: sym, Value: val})
	default:
		panic("quill: cannot set on non-object")
	}
}

// Append adds an element to an array.
func (v *Value) Append(val *Value) {
	if v.kind != KindArray {
		panic("quill: cannot append to non-array")
	}
	v.arrVal = append(v.arrVal, val)
}

// ============================================================
// Numeric Coercion Helpers
// ============================================================

// Number returns a numeric value as float64 if int or float.
func (v *Value) Number() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.kind {
	case KindInt:
		return float64(v.intVal), true
	case KindFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// IsNumeric returns true if int or float.
func (v *Value) IsNumeric() bool {
	return v != nil && (v.kind == KindInt || v.kind == KindFloat)
}
