package blockmarkup

import "github.com/pthm/blockmarkup/lib/attrtree"

// typography stores a style.typography key and appends the matching CSS
// declaration.
func typography(b *Block, key, property, value string) {
	b.AppendStyle(property, value)
	b.attrs.SetPath([]string{"style", "typography", key}, attrtree.String(value))
}

// FontSizeSupport adds the font size setting.
type FontSizeSupport[T Host] Mixin[T]

// FontSize applies a preset size by slug.
func (m FontSizeSupport[T]) FontSize(slug string) T {
	b := m.self.Core()
	b.attrs.Set("fontSize", attrtree.String(slug))
	b.AddClass(presetClass(slug, "font-size"))
	return m.self
}

// CustomFontSize applies a literal CSS size.
func (m FontSizeSupport[T]) CustomFontSize(size string) T {
	typography(m.self.Core(), "fontSize", "font-size", size)
	return m.self
}

// FontStyleSupport adds the font style setting.
type FontStyleSupport[T Host] Mixin[T]

// FontStyle sets the CSS font-style, e.g. "italic".
func (m FontStyleSupport[T]) FontStyle(style string) T {
	typography(m.self.Core(), "fontStyle", "font-style", style)
	return m.self
}

// FontWeightSupport adds the font weight setting.
type FontWeightSupport[T Host] Mixin[T]

// FontWeight sets the CSS font-weight, e.g. "700".
func (m FontWeightSupport[T]) FontWeight(weight string) T {
	typography(m.self.Core(), "fontWeight", "font-weight", weight)
	return m.self
}

// LineHeightSupport adds the line height setting.
type LineHeightSupport[T Host] Mixin[T]

// LineHeight sets the CSS line-height.
func (m LineHeightSupport[T]) LineHeight(height string) T {
	typography(m.self.Core(), "lineHeight", "line-height", height)
	return m.self
}

// LetterSpacingSupport adds the letter spacing setting.
type LetterSpacingSupport[T Host] Mixin[T]

// LetterSpacing sets the CSS letter-spacing.
func (m LetterSpacingSupport[T]) LetterSpacing(spacing string) T {
	typography(m.self.Core(), "letterSpacing", "letter-spacing", spacing)
	return m.self
}

// TextDecorationSupport adds the text decoration setting.
type TextDecorationSupport[T Host] Mixin[T]

// TextDecoration sets the CSS text-decoration, e.g. "underline".
func (m TextDecorationSupport[T]) TextDecoration(decoration string) T {
	typography(m.self.Core(), "textDecoration", "text-decoration", decoration)
	return m.self
}

// TextTransformSupport adds the letter case setting.
type TextTransformSupport[T Host] Mixin[T]

// TextTransform sets the CSS text-transform, e.g. "uppercase".
func (m TextTransformSupport[T]) TextTransform(transform string) T {
	typography(m.self.Core(), "textTransform", "text-transform", transform)
	return m.self
}

// DropCapSupport adds the drop cap setting of paragraphs.
type DropCapSupport[T Host] Mixin[T]

// DropCap enables the drop cap, or disables it with DropCap(false).
func (m DropCapSupport[T]) DropCap(enable ...bool) T {
	on := len(enable) == 0 || enable[0]
	b := m.self.Core()
	b.attrs.Set("dropCap", attrtree.Bool(on))
	if on {
		b.AddClass("has-drop-cap")
	} else {
		b.RemoveClass("has-drop-cap")
	}
	return m.self
}
