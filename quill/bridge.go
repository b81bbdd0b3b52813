package quill

import (
	"errors"
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts JSON documents into the quill value model. Decoding goes
// through json-iterator's streaming iterator rather than a Go map so
// object keys keep their document order, which the renderer's key
// ordering guarantee depends on.

// BridgeOpts configures JSON bridge behavior.
type BridgeOpts struct {
	// DetectTimes maps RFC 3339 strings to timestamp values instead
	// of plain strings.
	DetectTimes bool
}

// DefaultBridgeOpts returns the default (plain strings) options.
func DefaultBridgeOpts() BridgeOpts {
	return BridgeOpts{}
}

// FromJSON converts JSON bytes to a Value with default options.
func FromJSON(data []byte) (*Value, error) {
	return FromJSONWithOpts(data, DefaultBridgeOpts())
}

// FromJSONWithOpts converts JSON bytes to a Value with options.
func FromJSONWithOpts(data []byte, opts BridgeOpts) (*Value, error) {
	it := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)
	v := decodeValue(it, opts)
	if it.Error != nil && !errors.Is(it.Error, io.EOF) {
		return nil, fmt.Errorf("quill: JSON parse error: %w", it.Error)
	}
	return v, nil
}

func decodeValue(it *jsoniter.Iterator, opts BridgeOpts) *Value {
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.ReadNil()
		return Null()

	case jsoniter.BoolValue:
		return Bool(it.ReadBool())

	case jsoniter.NumberValue:
		n := it.ReadNumber()
		if i, err := n.Int64(); err == nil {
			return Int(i)
		}
		f, err := n.Float64()
		if err != nil {
			it.ReportError("decodeValue", err.Error())
			return Null()
		}
		return Float(f)

	case jsoniter.StringValue:
		s := it.ReadString()
		if opts.DetectTimes {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return Time(t)
			}
		}
		return Str(s)

	case jsoniter.ArrayValue:
		arr := Array()
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			arr.Append(decodeValue(it, opts))
			return true
		})
		return arr

	case jsoniter.ObjectValue:
		obj := Object()
		it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			// Set keeps first-occurrence order and lets a duplicate
			// key overwrite its earlier value.
			obj.Set(field, decodeValue(it, opts))
			return true
		})
		return obj

	default:
		it.ReportError("decodeValue", "unexpected token")
		return Null()
	}
}
