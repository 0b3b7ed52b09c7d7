// Package conformance loads and runs the JSON test-suite format
// described in spec §6: a version-tagged list of test cases, each
// naming an operation, its positional inputs and expected outputs, to
// be dispatched against the region/codec packages. This is the
// mechanism spec §9 says a port "MUST" support so that one
// parametrized suite can be shared across language ports.
package conformance

import (
	"encoding/json"
	"fmt"

	"github.com/pebaz/tidbytes/codec"
	"github.com/pebaz/tidbytes/region"
)

// Suite is the top-level JSON document: {"version": "...", "tests": [...]}.
type Suite struct {
	Version string     `json:"version"`
	Tests   []TestCase `json:"tests"`
}

// TestCase is one entry of Suite.Tests.
type TestCase struct {
	Op  string  `json:"op"`
	In  []Value `json:"in"`
	Out []Value `json:"out"`
	Tag string  `json:"tag"`
}

// valueKind distinguishes the four shapes a Value atom can take.
type valueKind int

const (
	kindBool valueKind = iota
	kindNumber
	kindMem
	kindNum
)

// Value is one <Value> atom from the JSON format: a literal bool or
// number, or a tagged {"Mem": ...} / {"Num": ...} Region constructor.
type Value struct {
	kind valueKind

	boolVal   bool
	numberVal float64

	// Mem/Num payload. mode is "scalar" ({"Mem": n}), "bit"
	// ({"Mem": ["bit", ...]}), or "byte" ({"Mem": ["byte", ...]}).
	mode      string
	bitLength int
	bits      []int
	bytes     []int
}

// UnmarshalJSON implements the tagged-union parse: try bool, then
// number, then the {"Mem": ...}/{"Num": ...} constructor object.
func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v.kind = kindBool
		v.boolVal = b
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		v.kind = kindNumber
		v.numberVal = f
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("conformance: unrecognized value %s: %w", data, err)
	}
	if raw, ok := obj["Mem"]; ok {
		return v.parseConstructor(kindMem, raw)
	}
	if raw, ok := obj["Num"]; ok {
		return v.parseConstructor(kindNum, raw)
	}
	return fmt.Errorf("conformance: value object has neither Mem nor Num: %s", data)
}

func (v *Value) parseConstructor(kind valueKind, raw json.RawMessage) error {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		v.kind = kind
		v.mode = "scalar"
		v.bitLength = int(n)
		return nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return fmt.Errorf("conformance: constructor payload %s is neither a number nor an array: %w", raw, err)
	}
	if len(arr) == 0 {
		return fmt.Errorf("conformance: empty constructor array")
	}
	var tag string
	if err := json.Unmarshal(arr[0], &tag); err != nil {
		return fmt.Errorf("conformance: constructor tag: %w", err)
	}
	vals := make([]int, len(arr)-1)
	for i, raw := range arr[1:] {
		var x float64
		if err := json.Unmarshal(raw, &x); err != nil {
			return fmt.Errorf("conformance: constructor element %d: %w", i, err)
		}
		vals[i] = int(x)
	}
	v.kind = kind
	v.mode = tag
	switch tag {
	case "bit":
		v.bits = vals
	case "byte":
		v.bytes = vals
	default:
		return fmt.Errorf("conformance: unknown constructor tag %q", tag)
	}
	return nil
}

// Resolve realizes a Value as the Go value Dispatch expects: bool,
// float64, or region.Region.
func (v Value) Resolve() (any, error) {
	switch v.kind {
	case kindBool:
		return v.boolVal, nil
	case kindNumber:
		return v.numberVal, nil
	case kindMem, kindNum:
		switch v.mode {
		case "scalar":
			zeros := make([]int, v.bitLength)
			return codec.FromBitList(zeros, v.bitLength)
		case "bit":
			return codec.FromBitList(v.bits, len(v.bits))
		case "byte":
			return codec.FromByteList(v.bytes, len(v.bytes)*8)
		default:
			return nil, fmt.Errorf("conformance: unhandled constructor mode %q", v.mode)
		}
	default:
		return nil, fmt.Errorf("conformance: unhandled value kind %d", v.kind)
	}
}

// equalValue reports whether actual (as returned by Dispatch) matches
// the expected Value, under structural equality for Regions.
func equalValue(expected Value, actual any) (bool, error) {
	want, err := expected.Resolve()
	if err != nil {
		return false, err
	}
	switch w := want.(type) {
	case region.Region:
		a, ok := actual.(region.Region)
		if !ok {
			return false, nil
		}
		return cellsEqual(w, a), nil
	case float64:
		a, ok := actual.(float64)
		return ok && w == a, nil
	case bool:
		a, ok := actual.(bool)
		return ok && w == a, nil
	default:
		return false, fmt.Errorf("conformance: unsupported expected value type %T", want)
	}
}

func cellsEqual(a, b region.Region) bool {
	ac, bc := a.Cells(), b.Cells()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return true
}
