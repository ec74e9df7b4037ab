package blockmarkup

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pthm/blockmarkup/lib/comments"
)

// ErrRenderMismatch is returned by TestRender when Render and Print
// disagree.
var ErrRenderMismatch = errors.New("blockmarkup: Render and Print output differ")

// TestResult holds rendered markup for testing.
//
// Provides convenience methods for asserting on raw markup, block comments
// and the parsed HTML tree.
type TestResult struct {
	HTML  string
	Nodes []*html.Node
}

// TestRender renders r and parses the output as an HTML fragment in a
// <body> context.
//
// It also checks that Render and Print produce the same bytes, so every
// test going through TestRender covers both paths.
//
//	result, err := blockmarkup.TestRender(p)
//	if !result.HasBlock("core/paragraph") {
//	    t.Fatal("missing paragraph block")
//	}
func TestRender(r Renderable) (*TestResult, error) {
	var buf bytes.Buffer
	if err := r.Print(&buf); err != nil {
		return nil, err
	}
	if r.Render() != buf.String() {
		return nil, ErrRenderMismatch
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(buf.Bytes()), body)
	if err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:  buf.String(),
		Nodes: nodes,
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Comments returns the text of every HTML comment, trimmed, in document
// order.
func (r *TestResult) Comments() []string {
	var out []string
	r.walk(func(n *html.Node) {
		if n.Type == html.CommentNode {
			out = append(out, strings.TrimSpace(n.Data))
		}
	})
	return out
}

// BlockNames returns the name of every opening or self-closing block
// comment in document order.
func (r *TestResult) BlockNames() []string {
	var names []string
	for _, c := range r.Comments() {
		if name, _, ok := parseOpening(c); ok {
			names = append(names, name)
		}
	}
	return names
}

// HasBlock checks if a block with the given name was rendered. A "core/"
// prefix is ignored, matching the comment format.
func (r *TestResult) HasBlock(name string) bool {
	return slices.Contains(r.BlockNames(), comments.NormalizeName(name))
}

// BlockAttributes decodes the JSON attributes of the first block with the
// given name. Blocks without attributes yield an empty map.
func (r *TestResult) BlockAttributes(name string) (map[string]any, bool, error) {
	want := comments.NormalizeName(name)
	for _, c := range r.Comments() {
		got, payload, ok := parseOpening(c)
		if !ok || got != want {
			continue
		}
		attrs := map[string]any{}
		if payload == "" {
			return attrs, true, nil
		}
		if err := json.Unmarshal([]byte(payload), &attrs); err != nil {
			return nil, true, err
		}
		return attrs, true, nil
	}
	return nil, false, nil
}

// Elements returns every element with the given tag name in document order.
func (r *TestResult) Elements(tag string) []*html.Node {
	var out []*html.Node
	r.walk(func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	})
	return out
}

// First returns the first element with the given tag name.
func (r *TestResult) First(tag string) *html.Node {
	if els := r.Elements(tag); len(els) > 0 {
		return els[0]
	}
	return nil
}

// ElementAttr returns an attribute of the first element with the given tag
// name.
func (r *TestResult) ElementAttr(tag, key string) (string, bool) {
	n := r.First(tag)
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ElementClasses returns the class list of the first element with the
// given tag name.
func (r *TestResult) ElementClasses(tag string) []string {
	v, _ := r.ElementAttr(tag, "class")
	return strings.Fields(v)
}

// ElementHasClass checks if the first element with the given tag name has
// a class.
func (r *TestResult) ElementHasClass(tag, class string) bool {
	return slices.Contains(r.ElementClasses(tag), class)
}

// Text returns the concatenated text content of the fragment.
func (r *TestResult) Text() string {
	var sb strings.Builder
	r.walk(func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}

func (r *TestResult) walk(fn func(*html.Node)) {
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		fn(n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, n := range r.Nodes {
		visit(n)
	}
}

// parseOpening splits the text of an opening block comment into the block
// name and its JSON payload.
func parseOpening(comment string) (name, payload string, ok bool) {
	rest, found := strings.CutPrefix(comment, "wp:")
	if !found {
		return "", "", false
	}
	rest = strings.TrimSpace(strings.TrimSuffix(rest, "/"))
	name, payload, _ = strings.Cut(rest, " ")
	return name, strings.TrimSpace(payload), true
}
