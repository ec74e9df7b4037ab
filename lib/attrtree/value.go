package attrtree

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnsupportedValue is returned when a Go value cannot be represented in
// an attribute tree (channels, functions, structs, non-finite floats, ...).
var ErrUnsupportedValue = errors.New("attrtree: unsupported attribute value")

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindTree
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTree:
		return "tree"
	case KindList:
		return "list"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a JSON-serializable attribute value: string, number, bool, null,
// nested tree or list. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	// i holds integers exactly when integral is set; num is its float
	// approximation.
	i        int64
	integral bool
	b        bool
	tree     *Tree
	list     []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value. Non-finite numbers serialize as null.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a numeric value holding an integer.
func Int(i int) Value { return Int64(int64(i)) }

// Int64 returns a numeric value holding an integer. The integer serializes
// exactly, including values beyond the float64 integer range.
func Int64(i int64) Value {
	return Value{kind: KindNumber, num: float64(i), i: i, integral: true}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Map wraps a nested tree. A nil tree is stored as an empty tree.
func Map(t *Tree) Value {
	if t == nil {
		t = New()
	}
	return Value{kind: KindTree, tree: t}
}

// List returns a list value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), items...)}
}

// Of converts a plain Go value into a Value.
//
// Supported: nil, Value, *Tree, string, bool, all integer and float kinds,
// json.Number, map[string]any, map[string]string, []any, []string.
// Unsigned integers above math.MaxInt64 are rejected.
// Map keys are inserted in sorted order so the result is deterministic.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Tree:
		return Map(x.Clone()), nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int64(int64(x)), nil
	case int16:
		return Int64(int64(x)), nil
	case int32:
		return Int64(int64(x)), nil
	case int64:
		return Int64(x), nil
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return Int64(int64(x)), nil
	case uint16:
		return Int64(int64(x)), nil
	case uint32:
		return Int64(int64(x)), nil
	case uint64:
		return unsigned(x)
	case float32:
		return finite(float64(x))
	case float64:
		return finite(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int64(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedValue, x.String())
		}
		return finite(f)
	case map[string]any:
		t, err := FromMap(x)
		if err != nil {
			return Value{}, err
		}
		return Map(t), nil
	case map[string]string:
		t := New()
		for _, k := range sortedKeys(x) {
			t.Set(k, String(x[k]))
		}
		return Map(t), nil
	case []any:
		items := make([]Value, 0, len(x))
		for i, it := range x {
			iv, err := Of(it)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, iv)
		}
		return Value{kind: KindList, list: items}, nil
	case []string:
		items := make([]Value, 0, len(x))
		for _, it := range x {
			items = append(items, String(it))
		}
		return Value{kind: KindList, list: items}, nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func unsigned(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: integer %d out of range", ErrUnsupportedValue, u)
	}
	return Int64(int64(u)), nil
}

func finite(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: non-finite number %v", ErrUnsupportedValue, f)
	}
	return Number(f), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string held by v.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the number held by v. Large integers are approximated; use
// Integer for the exact value.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Integer returns the integer held by v when it was built from one.
func (v Value) Integer() (int64, bool) { return v.i, v.kind == KindNumber && v.integral }

// Boolean returns the bool held by v.
func (v Value) Boolean() (bool, bool) { return v.b, v.kind == KindBool }

// Tree returns the nested tree held by v, or nil.
func (v Value) Tree() *Tree {
	if v.kind != KindTree {
		return nil
	}
	return v.tree
}

// Items returns a copy of the list held by v.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return append([]Value(nil), v.list...)
}

// Interface converts v back into plain Go values (map[string]any for trees,
// []any for lists, float64 for numbers).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindTree:
		return v.tree.ToMap()
	case KindList:
		out := make([]any, len(v.list))
		for i, it := range v.list {
			out[i] = it.Interface()
		}
		return out
	}
	return nil
}

// Clone deep-copies v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindTree:
		return Value{kind: KindTree, tree: v.tree.Clone()}
	case KindList:
		items := make([]Value, len(v.list))
		for i, it := range v.list {
			items[i] = it.Clone()
		}
		return Value{kind: KindList, list: items}
	}
	return v
}

// Equal reports deep equality, including key order of nested trees.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		if v.integral && o.integral {
			return v.i == o.i
		}
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindTree:
		return v.tree.Equal(o.tree)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}
