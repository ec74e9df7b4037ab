package blockmarkup

import "github.com/pthm/blockmarkup/lib/attrtree"

// BackgroundColorSupport adds the background color setting.
type BackgroundColorSupport[T Host] Mixin[T]

// BackgroundColor applies a palette color by slug.
func (m BackgroundColorSupport[T]) BackgroundColor(slug string) T {
	b := m.self.Core()
	b.attrs.Set("backgroundColor", attrtree.String(slug))
	b.AddClass(presetClass(slug, "background-color"), "has-background")
	return m.self
}

// CustomBackgroundColor applies a literal CSS color.
func (m BackgroundColorSupport[T]) CustomBackgroundColor(color string) T {
	b := m.self.Core()
	b.AppendStyle("background-color", color)
	b.attrs.SetPath([]string{"style", "color", "background"}, attrtree.String(color))
	b.AddClass("has-background")
	return m.self
}

// TextColorSupport adds the text color setting.
type TextColorSupport[T Host] Mixin[T]

// TextColor applies a palette color by slug.
func (m TextColorSupport[T]) TextColor(slug string) T {
	b := m.self.Core()
	b.attrs.Set("textColor", attrtree.String(slug))
	b.AddClass(presetClass(slug, "color"), "has-text-color")
	return m.self
}

// CustomTextColor applies a literal CSS color.
func (m TextColorSupport[T]) CustomTextColor(color string) T {
	b := m.self.Core()
	b.AppendStyle("color", color)
	b.attrs.SetPath([]string{"style", "color", "text"}, attrtree.String(color))
	b.AddClass("has-text-color")
	return m.self
}

// LinkColorSupport adds the link color setting. Link colors are applied by
// the theme's generated stylesheet, so no inline style is written.
type LinkColorSupport[T Host] Mixin[T]

// LinkColor applies a palette color by slug.
func (m LinkColorSupport[T]) LinkColor(slug string) T {
	return m.CustomLinkColor("var:preset|color|" + slug)
}

// CustomLinkColor applies a literal CSS color.
func (m LinkColorSupport[T]) CustomLinkColor(color string) T {
	b := m.self.Core()
	b.attrs.SetPath([]string{"style", "elements", "link", "color", "text"}, attrtree.String(color))
	b.AddClass("has-link-color")
	return m.self
}
