package blocks

import (
	bm "github.com/pthm/blockmarkup"
	"github.com/pthm/blockmarkup/lib/attrtree"
)

// Orientations of a row.
const (
	OrientationHorizontal = "horizontal"
)

// justificationClasses maps justifyContent values to the classes the
// editor adds to flex containers.
var justificationClasses = map[string]string{
	"left":          "is-content-justification-left",
	"center":        "is-content-justification-center",
	"right":         "is-content-justification-right",
	"space-between": "is-content-justification-space-between",
	"stretch":       "is-content-justification-stretch",
}

// JustificationClass returns the class for a justifyContent value, or ""
// for values without one.
func JustificationClass(justifyContent string) string {
	return justificationClasses[justifyContent]
}

// RowConfig configures a GroupRow. The zero value is a non-wrapping
// horizontal row in a div.
type RowConfig struct {
	Wrap           bool
	JustifyContent string
	Orientation    string
	TagName        string
	Options        []bm.Option
}

// GroupRow is the "Row" variation of core/group: an always-flex group
// whose layout and classes are fixed at construction.
type GroupRow struct {
	*bm.Block
	bm.AnchorSupport[*GroupRow]
	bm.BackgroundColorSupport[*GroupRow]
	bm.CustomClassSupport[*GroupRow]
	bm.TagNameSupport[*GroupRow]
	bm.TextColorSupport[*GroupRow]
	bm.DropCapSupport[*GroupRow]
	bm.FontSizeSupport[*GroupRow]
	bm.FontStyleSupport[*GroupRow]
	bm.FontWeightSupport[*GroupRow]
	bm.LetterSpacingSupport[*GroupRow]
	bm.LineHeightSupport[*GroupRow]
	bm.LinkColorSupport[*GroupRow]
	bm.TextDecorationSupport[*GroupRow]
	bm.TextTransformSupport[*GroupRow]
}

// NewGroupRow returns a row holding children.
func NewGroupRow(cfg RowConfig, children ...bm.Renderable) *GroupRow {
	vertical := cfg.Orientation == OrientationVertical

	layout := attrtree.New().Set("type", attrtree.String(LayoutFlex))
	if cfg.Wrap {
		layout.Set("flexWrap", attrtree.String(FlexWrap))
	}
	if cfg.JustifyContent != "" {
		layout.Set("justifyContent", attrtree.String(cfg.JustifyContent))
	}
	if vertical {
		layout.Set("orientation", attrtree.String(OrientationVertical))
	}

	opts := append([]bm.Option{
		bm.WithWrapper(bm.TagWrapper(bm.DefaultTagName)),
		bm.WithChildren(children...),
		bm.WithBlockAttributes(attrtree.New().Set("layout", attrtree.Map(layout))),
	}, cfg.Options...)
	r := &GroupRow{Block: bm.NewBlock("core/group", opts...)}

	m := bm.Bind(r)
	r.AnchorSupport = bm.AnchorSupport[*GroupRow](m)
	r.BackgroundColorSupport = bm.BackgroundColorSupport[*GroupRow](m)
	r.CustomClassSupport = bm.CustomClassSupport[*GroupRow](m)
	r.TagNameSupport = bm.TagNameSupport[*GroupRow](m)
	r.TextColorSupport = bm.TextColorSupport[*GroupRow](m)
	r.DropCapSupport = bm.DropCapSupport[*GroupRow](m)
	r.FontSizeSupport = bm.FontSizeSupport[*GroupRow](m)
	r.FontStyleSupport = bm.FontStyleSupport[*GroupRow](m)
	r.FontWeightSupport = bm.FontWeightSupport[*GroupRow](m)
	r.LetterSpacingSupport = bm.LetterSpacingSupport[*GroupRow](m)
	r.LineHeightSupport = bm.LineHeightSupport[*GroupRow](m)
	r.LinkColorSupport = bm.LinkColorSupport[*GroupRow](m)
	r.TextDecorationSupport = bm.TextDecorationSupport[*GroupRow](m)
	r.TextTransformSupport = bm.TextTransformSupport[*GroupRow](m)

	if cfg.TagName != "" && cfg.TagName != bm.DefaultTagName {
		r.TagName(cfg.TagName)
	}

	r.AddClass("wp-block-group", "is-layout-flex", "wp-block-group-is-layout-flex")
	if vertical {
		r.AddClass("is-vertical")
	}
	if cfg.Wrap {
		r.AddClass("is-flex-wrap")
	}
	r.AddClass(JustificationClass(cfg.JustifyContent))
	return r
}
