package blockmarkup

import (
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// Wrapper template placeholders.
const (
	ClassesPlaceholder    = "%classes%"
	AttributesPlaceholder = "%attributes%"
	ChildrenPlaceholder   = "%children%"
)

type attribute struct {
	key   string
	value string
}

// Node is a renderable HTML fragment built from a wrapper template.
//
// The zero value renders nothing; use NewNode. A Node is not safe for
// concurrent use.
type Node struct {
	wrapper      string
	classes      []string
	attrs        []attribute
	childWrapper string
	children     []Renderable
}

// NewNode returns a node with the given wrapper template. An empty
// template renders the children alone.
func NewNode(wrapper string, opts ...Option) *Node {
	o := buildOptions(opts)
	if o.wrapperSet {
		wrapper = o.wrapper
	}
	return newNode(wrapper, o)
}

func newNode(wrapper string, o *options) *Node {
	n := &Node{
		wrapper:      wrapper,
		childWrapper: o.childWrapper,
		children:     append([]Renderable(nil), o.children...),
	}
	n.AddClass(o.classes...)
	for _, a := range o.attrs {
		n.SetAttribute(a.key, a.value)
	}
	return n
}

// Wrapper returns the wrapper template.
func (n *Node) Wrapper() string {
	return n.wrapper
}

// SetWrapper replaces the wrapper template.
func (n *Node) SetWrapper(tpl string) *Node {
	n.wrapper = tpl
	return n
}

// ChildWrapper returns the template each child is wrapped in.
func (n *Node) ChildWrapper() string {
	return n.childWrapper
}

// SetChildWrapper sets the template each child is wrapped in. The child's
// output replaces %children%; an empty template concatenates children
// directly.
func (n *Node) SetChildWrapper(tpl string) *Node {
	n.childWrapper = tpl
	return n
}

// AddClass appends classes that are not already present. Empty names are
// ignored.
func (n *Node) AddClass(names ...string) *Node {
	for _, name := range names {
		if name == "" || slices.Contains(n.classes, name) {
			continue
		}
		n.classes = append(n.classes, name)
	}
	return n
}

// RemoveClass removes every occurrence of name.
func (n *Node) RemoveClass(name string) *Node {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == name })
	return n
}

// HasClass reports whether name is in the class list.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.classes, name)
}

// Classes returns a copy of the class list in insertion order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// SetAttribute sets a wrapper HTML attribute. An existing attribute keeps
// its position.
func (n *Node) SetAttribute(key, value string) *Node {
	for i := range n.attrs {
		if n.attrs[i].key == key {
			n.attrs[i].value = value
			return n
		}
	}
	n.attrs = append(n.attrs, attribute{key: key, value: value})
	return n
}

// Attribute returns the wrapper attribute stored under key.
func (n *Node) Attribute(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

// RemoveAttribute deletes a wrapper attribute.
func (n *Node) RemoveAttribute(key string) *Node {
	n.attrs = slices.DeleteFunc(n.attrs, func(a attribute) bool { return a.key == key })
	return n
}

// AttributeKeys returns the wrapper attribute keys in render order.
func (n *Node) AttributeKeys() []string {
	keys := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		keys[i] = a.key
	}
	return keys
}

// Style returns the inline style attribute.
func (n *Node) Style() string {
	s, _ := n.Attribute("style")
	return s
}

// AppendStyle appends a property:value declaration to the inline style,
// separated from existing declarations by ";". Properties are never
// deduplicated; a later declaration wins in the browser.
func (n *Node) AppendStyle(property, value string) *Node {
	style := n.Style()
	if style != "" {
		style += ";"
	}
	return n.SetAttribute("style", style+property+":"+value)
}

// AddChild appends children.
func (n *Node) AddChild(children ...Renderable) *Node {
	n.children = append(n.children, children...)
	return n
}

// AddText appends literal text children.
func (n *Node) AddText(texts ...string) *Node {
	for _, s := range texts {
		n.children = append(n.children, Text(s))
	}
	return n
}

// Children returns the children in render order.
func (n *Node) Children() []Renderable {
	return slices.Clone(n.children)
}

// TemplAttributes returns the wrapper attributes and classes for spreading
// into a templ element: <div { n.TemplAttributes()... }>.
func (n *Node) TemplAttributes() templ.Attributes {
	attrs := templ.Attributes{}
	for _, a := range n.attrs {
		attrs[a.key] = a.value
	}
	if len(n.classes) > 0 {
		attrs["class"] = strings.Join(n.classes, " ")
	}
	return attrs
}

// Render returns the node's HTML.
func (n *Node) Render() string {
	var sb strings.Builder
	_ = n.Print(&sb)
	return sb.String()
}

// Print writes the node's HTML: the wrapper opening, each child, then the
// wrapper closing. Children are written at every children placeholder.
func (n *Node) Print(w io.Writer) error {
	return n.printSegments(w, n.segments(n.wrapper), func(w io.Writer) error {
		for _, child := range n.children {
			if err := n.printChild(w, child); err != nil {
				return err
			}
		}
		return nil
	})
}

func (n *Node) printChild(w io.Writer, child Renderable) error {
	if child == nil {
		return nil
	}
	if n.childWrapper == "" {
		return child.Print(w)
	}
	return n.printSegments(w, n.segments(n.childWrapper), child.Print)
}

func (n *Node) printSegments(w io.Writer, segments []string, children func(io.Writer) error) error {
	for i, seg := range segments {
		if i > 0 {
			if err := children(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, seg); err != nil {
			return err
		}
	}
	return nil
}

// segments cuts tpl at each children placeholder and fills the class and
// attribute placeholders of every part. Cutting first keeps placeholder
// text inside class or attribute values literal. An empty template yields
// children only; a template without the placeholder drops the children.
func (n *Node) segments(tpl string) []string {
	if tpl == "" {
		return []string{"", ""}
	}
	parts := strings.Split(tpl, ChildrenPlaceholder)
	for i, part := range parts {
		parts[i] = n.fill(part)
	}
	return parts
}

// fill replaces the class and attribute placeholders of tpl in a single
// pass, so substituted values are never scanned as template text.
func (n *Node) fill(tpl string) string {
	if !strings.Contains(tpl, ClassesPlaceholder) && !strings.Contains(tpl, AttributesPlaceholder) {
		return tpl
	}
	attrs := n.attributeString()
	pairs := []string{ClassesPlaceholder, n.classString()}
	if attrs == "" {
		pairs = append(pairs, " "+AttributesPlaceholder, "")
	}
	pairs = append(pairs, AttributesPlaceholder, attrs)
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func (n *Node) classString() string {
	escaped := make([]string, len(n.classes))
	for i, c := range n.classes {
		escaped[i] = templ.EscapeString(c)
	}
	return strings.Join(escaped, " ")
}

func (n *Node) attributeString() string {
	var sb strings.Builder
	for i, a := range n.attrs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.key)
		sb.WriteString(`="`)
		sb.WriteString(templ.EscapeString(a.value))
		sb.WriteByte('"')
	}
	return sb.String()
}
