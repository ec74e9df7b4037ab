// Package attrtree implements the block attribute tree serialized into
// block comments.
//
// A Tree is an insertion-ordered mapping from string keys to Values. Key
// order is preserved through every mutation so the JSON payload of a block
// comment is deterministic: overwriting a key keeps its position, deleting
// and re-adding moves it to the end.
//
//	t := attrtree.New()
//	t.SetPath([]string{"style", "color", "text"}, attrtree.String("#111"))
//	t.Set("anchor", attrtree.String("intro"))
//	b, _ := t.MarshalJSON() // {"style":{"color":{"text":"#111"}},"anchor":"intro"}
//
// A Tree is not safe for concurrent mutation.
package attrtree

import "fmt"

// Tree is an ordered nested attribute map. The zero value is not usable;
// call New.
type Tree struct {
	keys []string
	vals map[string]Value
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{vals: make(map[string]Value)}
}

// FromMap builds a tree from a plain Go map. Keys are inserted in sorted
// order at every level.
func FromMap(m map[string]any) (*Tree, error) {
	t := New()
	for _, k := range sortedKeys(m) {
		v, err := Of(m[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		t.Set(k, v)
	}
	return t, nil
}

// Len returns the number of top-level keys.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree) IsEmpty() bool { return t.Len() == 0 }

// Keys returns the top-level keys in insertion order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	v, ok := t.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Tree) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Set stores v under key. An existing key keeps its position.
func (t *Tree) Set(key string, v Value) *Tree {
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = v
	return t
}

// Delete removes key and reports whether it was present.
func (t *Tree) Delete(key string) bool {
	if _, ok := t.vals[key]; !ok {
		return false
	}
	delete(t.vals, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// Lookup walks path and returns the value found at its end.
func (t *Tree) Lookup(path ...string) (Value, bool) {
	if len(path) == 0 {
		return Value{}, false
	}
	cur := t
	for i, key := range path {
		v, ok := cur.Get(key)
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if cur = v.Tree(); cur == nil {
			return Value{}, false
		}
	}
	return Value{}, false
}

// SetPath stores v at the end of path, creating intermediate trees as
// needed. A non-tree value found on the way is replaced by a tree.
func (t *Tree) SetPath(path []string, v Value) *Tree {
	if len(path) == 0 {
		return t
	}
	cur := t
	for _, key := range path[:len(path)-1] {
		next, ok := cur.Get(key)
		if !ok || next.Tree() == nil {
			next = Map(New())
			cur.Set(key, next)
		}
		cur = next.Tree()
	}
	cur.Set(path[len(path)-1], v)
	return t
}

// UnsetPath removes the value at the end of path. Parent trees emptied by
// the removal are removed as well, so an unset never leaves `{}` behind.
// It reports whether anything was removed.
func (t *Tree) UnsetPath(path ...string) bool {
	if len(path) == 0 {
		return false
	}
	if len(path) == 1 {
		return t.Delete(path[0])
	}
	child, ok := t.Get(path[0])
	if !ok || child.Tree() == nil {
		return false
	}
	removed := child.Tree().UnsetPath(path[1:]...)
	if removed && child.Tree().IsEmpty() {
		t.Delete(path[0])
	}
	return removed
}

// Merge copies the top-level keys of other into t, overwriting keys that
// already exist. Nested trees are replaced wholesale, not merged.
func (t *Tree) Merge(other *Tree) *Tree {
	if other == nil {
		return t
	}
	for _, k := range other.keys {
		t.Set(k, other.vals[k].Clone())
	}
	return t
}

// Clone deep-copies the tree.
func (t *Tree) Clone() *Tree {
	out := New()
	if t == nil {
		return out
	}
	for _, k := range t.keys {
		out.Set(k, t.vals[k].Clone())
	}
	return out
}

// Equal reports whether both trees hold equal values under the same keys in
// the same order.
func (t *Tree) Equal(o *Tree) bool {
	if t.Len() != o.Len() {
		return false
	}
	for i, k := range t.Keys() {
		if o.keys[i] != k || !t.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}

// ToMap converts the tree into plain Go values. Key order is lost.
func (t *Tree) ToMap() map[string]any {
	out := make(map[string]any, t.Len())
	if t == nil {
		return out
	}
	for _, k := range t.keys {
		out[k] = t.vals[k].Interface()
	}
	return out
}
