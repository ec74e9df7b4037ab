package blockmarkup

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/pthm/blockmarkup/lib/attrtree"
)

// AnchorSupport adds the HTML anchor setting.
type AnchorSupport[T Host] Mixin[T]

// Anchor sets the anchor attribute and the wrapper id.
func (m AnchorSupport[T]) Anchor(id string) T {
	b := m.self.Core()
	b.attrs.Set("anchor", attrtree.String(id))
	b.SetAttribute("id", id)
	return m.self
}

// CustomClassSupport adds the "Additional CSS class(es)" setting.
type CustomClassSupport[T Host] Mixin[T]

// CustomClass stores names in the className attribute and adds each
// space-separated class to the wrapper.
func (m CustomClassSupport[T]) CustomClass(names string) T {
	b := m.self.Core()
	b.attrs.Set("className", attrtree.String(names))
	for _, name := range strings.Split(names, " ") {
		b.AddClass(strings.TrimSpace(name))
	}
	return m.self
}

// DefaultTagName is the wrapper tag of blocks with a tag name setting.
const DefaultTagName = "div"

// AllowedTagNames lists the wrapper tags a group-like block may use.
var AllowedTagNames = []string{"div", "header", "main", "section", "article", "aside", "footer"}

// TagNameSupport adds the HTML element setting of group-like blocks.
type TagNameSupport[T Host] Mixin[T]

// TagName sets the wrapper element and rebuilds the wrapper template.
// Unknown tags fall back to div. The tagName attribute is omitted for div.
func (m TagNameSupport[T]) TagName(tag string) T {
	b := m.self.Core()
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if !slices.Contains(AllowedTagNames, normalized) {
		b.logger.Debug("unsupported tag name, using default",
			zap.String("block", b.name),
			zap.String("tagName", tag),
			zap.String("fallback", DefaultTagName))
		normalized = DefaultTagName
	}

	if normalized == DefaultTagName {
		b.attrs.Delete("tagName")
	} else {
		b.attrs.Set("tagName", attrtree.String(normalized))
	}
	b.SetWrapper(TagWrapper(normalized))
	return m.self
}

// Tag returns the current wrapper element.
func (m TagNameSupport[T]) Tag() string {
	if v, ok := m.self.Core().attrs.Get("tagName"); ok {
		if s, ok := v.Str(); ok {
			return s
		}
	}
	return DefaultTagName
}

// TagWrapper returns the wrapper template for a group-like element.
func TagWrapper(tag string) string {
	return "<" + tag + ` class="%classes%" %attributes%>%children%</` + tag + ">"
}
