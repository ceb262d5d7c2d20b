package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a tagged variant representing one node of a record tree.
// Record trees arrive from the record store as arbitrarily nested
// key/value structures; Value models them without reflection.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array wraps a list of values.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object wraps a key/value map.
func Object(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// FromJSON converts a decoded encoding/json value (any of nil, bool,
// float64, string, []any, map[string]any) into a Value. Unrecognized
// shapes collapse to their string form.
func FromJSON(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromJSON(item))
		}
		return Array(items...)
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			fields[k] = FromJSON(item)
		}
		return Object(fields)
	default:
		return String(fmt.Sprint(t))
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null/absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolVal returns the boolean payload (false for other kinds).
func (v Value) BoolVal() bool { return v.b }

// NumberVal returns the numeric payload (0 for other kinds).
func (v Value) NumberVal() float64 { return v.n }

// StringVal returns the string payload ("" for other kinds).
func (v Value) StringVal() string { return v.s }

// Items returns the array elements (nil for other kinds).
func (v Value) Items() []Value { return v.arr }

// Field returns the named object field and whether it exists.
func (v Value) Field(key string) (Value, bool) {
	f, ok := v.obj[key]
	return f, ok
}

// Len returns the number of elements or fields.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Keys returns object keys in sorted order so walks are deterministic.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExtractText normalizes any value into a flat lowercase searchable
// string. Arrays and objects are flattened recursively with spaces
// between parts; object keys are not included. Input must be acyclic.
func ExtractText(v Value) string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return strings.ToLower(v.s)
	case KindArray:
		parts := make([]string, 0, len(v.arr))
		for _, item := range v.arr {
			parts = append(parts, ExtractText(item))
		}
		return strings.Join(parts, " ")
	case KindObject:
		parts := make([]string, 0, len(v.obj))
		for _, k := range v.Keys() {
			parts = append(parts, ExtractText(v.obj[k]))
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// formatNumber renders integers without a trailing ".0" so "42" is
// searchable as typed.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
