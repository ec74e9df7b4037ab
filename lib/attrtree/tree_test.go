package attrtree

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func mustJSON(t *testing.T, tree *Tree) string {
	t.Helper()
	s, err := tree.JSON()
	require.NoError(t, err)
	return s
}

func TestSetKeepsInsertionOrder(t *testing.T) {
	tree := New().
		Set("zeta", String("z")).
		Set("alpha", String("a")).
		Set("mid", Int(3))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, tree.Keys())

	// Overwrite keeps position.
	tree.Set("zeta", Bool(true))
	assert.Equal(t, `{"zeta":true,"alpha":"a","mid":3}`, mustJSON(t, tree))

	// Delete and re-add moves to the end.
	require.True(t, tree.Delete("zeta"))
	tree.Set("zeta", Null())
	assert.Equal(t, `{"alpha":"a","mid":3,"zeta":null}`, mustJSON(t, tree))
}

func TestSetPathCreatesIntermediateTrees(t *testing.T) {
	tree := New()
	tree.SetPath([]string{"style", "color", "text"}, String("#111"))
	tree.SetPath([]string{"style", "typography", "fontStyle"}, String("italic"))

	assert.Equal(t,
		`{"style":{"color":{"text":"#111"},"typography":{"fontStyle":"italic"}}}`,
		mustJSON(t, tree))

	v, ok := tree.Lookup("style", "color", "text")
	require.True(t, ok)
	s, _ := v.Str()
	assert.Equal(t, "#111", s)
}

func TestSetPathReplacesScalarParent(t *testing.T) {
	tree := New().Set("style", String("oops"))
	tree.SetPath([]string{"style", "position", "type"}, String("sticky"))
	assert.Equal(t, `{"style":{"position":{"type":"sticky"}}}`, mustJSON(t, tree))
}

func TestUnsetPathPrunesEmptyParents(t *testing.T) {
	tree := New()
	tree.SetPath([]string{"style", "position", "type"}, String("sticky"))
	tree.SetPath([]string{"style", "position", "top"}, String("0px"))

	require.True(t, tree.UnsetPath("style", "position"))
	assert.False(t, tree.Has("style"))
	assert.Equal(t, `{}`, mustJSON(t, tree))
}

func TestUnsetPathKeepsNonEmptySiblings(t *testing.T) {
	tree := New()
	tree.SetPath([]string{"style", "position", "type"}, String("sticky"))
	tree.SetPath([]string{"style", "color", "text"}, String("red"))

	require.True(t, tree.UnsetPath("style", "position"))
	assert.Equal(t, `{"style":{"color":{"text":"red"}}}`, mustJSON(t, tree))
}

func TestUnsetPathMissing(t *testing.T) {
	tree := New().Set("align", String("wide"))
	assert.False(t, tree.UnsetPath("style", "position"))
	assert.False(t, tree.UnsetPath())
	assert.False(t, tree.UnsetPath("align", "nested"))
	assert.Equal(t, `{"align":"wide"}`, mustJSON(t, tree))
}

func TestMergeIsShallow(t *testing.T) {
	tree := New()
	tree.SetPath([]string{"style", "color", "text"}, String("red"))
	tree.Set("anchor", String("a"))

	patch := New()
	patch.SetPath([]string{"style", "typography", "fontSize"}, String("2rem"))
	patch.Set("className", String("x"))

	tree.Merge(patch)
	assert.Equal(t,
		`{"style":{"typography":{"fontSize":"2rem"}},"anchor":"a","className":"x"}`,
		mustJSON(t, tree))

	// Merged values are copies.
	patch.SetPath([]string{"style", "typography", "fontSize"}, String("3rem"))
	assert.Contains(t, mustJSON(t, tree), `"2rem"`)
}

func TestJSONDoesNotEscapeSlashesOrHTML(t *testing.T) {
	tree := New().
		Set("url", String("https://example.com/a/b")).
		Set("html", String("<em>&</em>")).
		Set("preset", String("var:preset|color|primary"))

	assert.Equal(t,
		`{"url":"https://example.com/a/b","html":"<em>&</em>","preset":"var:preset|color|primary"}`,
		mustJSON(t, tree))
}

func TestJSONQuotesAndControlCharacters(t *testing.T) {
	tree := New().Set("text", String("say \"hi\"\n"))
	out := mustJSON(t, tree)
	assert.Equal(t, `{"text":"say \"hi\"\n"}`, out)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "say \"hi\"\n", decoded["text"])
}

func TestJSONNumbers(t *testing.T) {
	tree := New().
		Set("level", Int(3)).
		Set("ratio", Number(0.5)).
		Set("nan", Number(math.NaN())).
		Set("big", Number(1e21))

	assert.Equal(t, `{"level":3,"ratio":0.5,"nan":null,"big":1000000000000000000000}`, mustJSON(t, tree))
}

func TestJSONListsAndNull(t *testing.T) {
	tree := New().
		Set("items", List(String("a"), Int(1), Bool(false), Null())).
		Set("flexSize", Null())
	assert.Equal(t, `{"items":["a",1,false,null],"flexSize":null}`, mustJSON(t, tree))
}

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, `null`},
		{"string", "x/y", `"x/y"`},
		{"bool", true, `true`},
		{"int", 42, `42`},
		{"int64", int64(-7), `-7`},
		{"uint8", uint8(9), `9`},
		{"float", 1.25, `1.25`},
		{"json number", json.Number("12"), `12`},
		{"large int64", int64(9007199254740993), `9007199254740993`},
		{"large uint64", uint64(math.MaxInt64), `9223372036854775807`},
		{"large json number", json.Number("9007199254740993"), `9007199254740993`},
		{"map sorted", map[string]any{"b": 1, "a": "x"}, `{"a":"x","b":1}`},
		{"string map", map[string]string{"z": "1", "y": "2"}, `{"y":"2","z":"1"}`},
		{"list", []any{"a", 2.5, nil}, `["a",2.5,null]`},
		{"string list", []string{"a", "b"}, `["a","b"]`},
		{"value", Bool(false), `false`},
		{"tree", New().Set("k", String("v")), `{"k":"v"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Of(tt.in)
			require.NoError(t, err)
			b, err := v.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestIntegersKeepPrecision(t *testing.T) {
	v := Int64(math.MaxInt64)
	i, ok := v.Integer()
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), i)
	assert.False(t, v.Equal(Int64(math.MaxInt64-1)))
	assert.True(t, Int(3).Equal(Number(3)))

	_, ok = Number(3).Integer()
	assert.False(t, ok)
}

func TestOfRejectsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"channel", make(chan int)},
		{"func", func() {}},
		{"struct", struct{ A int }{1}},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"nested", map[string]any{"style": map[string]any{"bad": make(chan int)}}},
		{"in list", []any{"ok", func() {}}},
		{"bad json number", json.Number("x")},
		{"uint64 overflow", uint64(math.MaxUint64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Of(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedValue)
		})
	}
}

func TestFromMapReportsKey(t *testing.T) {
	_, err := FromMap(map[string]any{"good": 1, "bad": func() {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	assert.Contains(t, err.Error(), "bad")
}

func TestCloneIsDeep(t *testing.T) {
	tree := New()
	tree.SetPath([]string{"style", "color", "text"}, String("red"))
	tree.Set("list", List(Map(New().Set("k", String("v")))))

	cp := tree.Clone()
	require.True(t, cp.Equal(tree))

	cp.SetPath([]string{"style", "color", "text"}, String("blue"))
	cp.Set("list", List())

	assert.Equal(t, `{"style":{"color":{"text":"red"}},"list":[{"k":"v"}]}`, mustJSON(t, tree))
	assert.False(t, cp.Equal(tree))
}

func TestEqualIsOrderSensitive(t *testing.T) {
	a := New().Set("x", Int(1)).Set("y", Int(2))
	b := New().Set("y", Int(2)).Set("x", Int(1))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))
}

func TestToMap(t *testing.T) {
	tree := New()
	tree.SetPath([]string{"style", "layout", "flexSize"}, Null())
	tree.Set("level", Int(3))

	assert.Equal(t, map[string]any{
		"style": map[string]any{"layout": map[string]any{"flexSize": nil}},
		"level": float64(3),
	}, tree.ToMap())
}

func TestNilTreeIsEmpty(t *testing.T) {
	var tree *Tree
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Keys())
	_, ok := tree.Get("x")
	assert.False(t, ok)
	assert.Equal(t, New(), tree.Clone())
}

func TestMsgpackPreservesOrder(t *testing.T) {
	a := New().Set("x", Int(1)).Set("y", String("two"))
	b := New().Set("y", String("two")).Set("x", Int(1))

	pa, err := msgpack.Marshal(a)
	require.NoError(t, err)
	pb, err := msgpack.Marshal(b)
	require.NoError(t, err)
	assert.NotEqual(t, pa, pb)

	again, err := msgpack.Marshal(a.Clone())
	require.NoError(t, err)
	assert.Equal(t, pa, again)

	var decoded map[string]any
	require.NoError(t, msgpack.Unmarshal(pa, &decoded))
	assert.Equal(t, "two", decoded["y"])
}
