package blocks

import (
	"go.uber.org/zap"

	bm "github.com/pthm/blockmarkup"
	"github.com/pthm/blockmarkup/lib/attrtree"
)

// Layout types of a group.
const (
	LayoutDefault     = "default"
	LayoutFlex        = "flex"
	LayoutFlow        = "flow"
	LayoutConstrained = "constrained"
)

// Layout values stored alongside the layout type.
const (
	OrientationVertical = "vertical"
	FlexWrap            = "wrap"
	FlexNoWrap          = "nowrap"
)

// Group is the core/group block. Its layout is kept in fields and written
// to the layout attribute on every render.
type Group struct {
	*bm.Block
	bm.AnchorSupport[*Group]
	bm.BackgroundColorSupport[*Group]
	bm.CustomClassSupport[*Group]
	bm.TagNameSupport[*Group]
	bm.TextColorSupport[*Group]
	bm.DropCapSupport[*Group]
	bm.FontSizeSupport[*Group]
	bm.FontStyleSupport[*Group]
	bm.FontWeightSupport[*Group]
	bm.LetterSpacingSupport[*Group]
	bm.LineHeightSupport[*Group]
	bm.LinkColorSupport[*Group]
	bm.TextDecorationSupport[*Group]
	bm.TextTransformSupport[*Group]
	bm.AlignSupport[*Group]
	bm.PositionSupport[*Group]

	layoutType     string
	orientation    string
	flexWrap       string
	justifyContent string
	contentSize    string
	wideSize       string
}

// NewGroup returns a group with the default layout holding children.
func NewGroup(children ...bm.Renderable) *Group {
	return NewGroupWith(children, nil)
}

// NewGroupWith is NewGroup with block options, e.g. a logger.
func NewGroupWith(children []bm.Renderable, opts []bm.Option) *Group {
	opts = append([]bm.Option{bm.WithWrapper(bm.TagWrapper(bm.DefaultTagName)), bm.WithChildren(children...)}, opts...)
	g := &Group{
		Block:      bm.NewBlock("core/group", opts...),
		layoutType: LayoutDefault,
	}

	m := bm.Bind(g)
	g.AnchorSupport = bm.AnchorSupport[*Group](m)
	g.BackgroundColorSupport = bm.BackgroundColorSupport[*Group](m)
	g.CustomClassSupport = bm.CustomClassSupport[*Group](m)
	g.TagNameSupport = bm.TagNameSupport[*Group](m)
	g.TextColorSupport = bm.TextColorSupport[*Group](m)
	g.DropCapSupport = bm.DropCapSupport[*Group](m)
	g.FontSizeSupport = bm.FontSizeSupport[*Group](m)
	g.FontStyleSupport = bm.FontStyleSupport[*Group](m)
	g.FontWeightSupport = bm.FontWeightSupport[*Group](m)
	g.LetterSpacingSupport = bm.LetterSpacingSupport[*Group](m)
	g.LineHeightSupport = bm.LineHeightSupport[*Group](m)
	g.LinkColorSupport = bm.LinkColorSupport[*Group](m)
	g.TextDecorationSupport = bm.TextDecorationSupport[*Group](m)
	g.TextTransformSupport = bm.TextTransformSupport[*Group](m)
	g.AlignSupport = bm.AlignSupport[*Group](m)
	g.PositionSupport = bm.PositionSupport[*Group](m)

	g.OnRender(g.applyLayout)
	return g
}

// LayoutType returns the current layout type.
func (g *Group) LayoutType() string {
	return g.layoutType
}

// AsFlexRow switches to a horizontal flex layout. An optional argument
// sets wrapping; without it the wrap setting is kept.
func (g *Group) AsFlexRow(wrap ...bool) *Group {
	g.layoutType = LayoutFlex
	g.orientation = ""
	g.setWrap(wrap)
	return g
}

// AsFlexColumn switches to a vertical flex layout. An optional argument
// sets wrapping; without it the wrap setting is kept.
func (g *Group) AsFlexColumn(wrap ...bool) *Group {
	g.layoutType = LayoutFlex
	g.orientation = OrientationVertical
	g.setWrap(wrap)
	return g
}

func (g *Group) setWrap(wrap []bool) {
	if len(wrap) == 0 {
		return
	}
	if wrap[0] {
		g.flexWrap = FlexWrap
	} else {
		g.flexWrap = FlexNoWrap
	}
}

// AsBlock switches to the flow layout and clears flex settings.
func (g *Group) AsBlock() *Group {
	g.layoutType = LayoutFlow
	g.orientation = ""
	g.flexWrap = ""
	return g
}

// LayoutConstrained enables the constrained layout, or with
// LayoutConstrained(false) reverts to the default layout. A flex layout is
// kept when disabling.
func (g *Group) LayoutConstrained(enable ...bool) *Group {
	if len(enable) == 0 || enable[0] {
		g.layoutType = LayoutConstrained
		g.orientation = ""
		return g
	}
	if g.layoutType == LayoutFlex {
		g.ignored("LayoutConstrained(false)")
		return g
	}
	g.layoutType = LayoutDefault
	g.orientation = ""
	return g
}

// Wrap sets flex wrapping. Only flex layouts wrap.
func (g *Group) Wrap(enable ...bool) *Group {
	if g.layoutType != LayoutFlex {
		g.ignored("Wrap")
		return g
	}
	g.setWrap([]bool{len(enable) == 0 || enable[0]})
	return g
}

// JustifyContent sets the justification of flex, constrained and default
// layouts.
func (g *Group) JustifyContent(value string) *Group {
	switch g.layoutType {
	case LayoutFlex, LayoutConstrained, LayoutDefault:
		g.justifyContent = value
	default:
		g.ignored("JustifyContent")
	}
	return g
}

// ContentSize sets the content width of a constrained layout.
func (g *Group) ContentSize(size string) *Group {
	if g.layoutType != LayoutConstrained {
		g.ignored("ContentSize")
		return g
	}
	g.contentSize = size
	return g
}

// WideSize sets the wide width of a constrained layout.
func (g *Group) WideSize(size string) *Group {
	if g.layoutType != LayoutConstrained {
		g.ignored("WideSize")
		return g
	}
	g.wideSize = size
	return g
}

func (g *Group) ignored(setter string) {
	g.Logger().Debug("group layout setter ignored",
		zap.String("setter", setter), zap.String("layout", g.layoutType))
}

// layoutTree builds the layout attribute. Keys are written in a fixed
// order so the comment JSON is stable.
func (g *Group) layoutTree() *attrtree.Tree {
	layout := attrtree.New().Set("type", attrtree.String(g.layoutType))
	optional := []struct{ key, value string }{
		{"justifyContent", g.justifyContent},
		{"flexWrap", g.flexWrap},
		{"orientation", g.orientation},
		{"contentSize", g.contentSize},
		{"wideSize", g.wideSize},
	}
	for _, o := range optional {
		if o.value != "" {
			layout.Set(o.key, attrtree.String(o.value))
		}
	}
	return layout
}

func (g *Group) applyLayout() {
	g.SetBlockAttributes(attrtree.New().Set("layout", attrtree.Map(g.layoutTree())), true)
	g.AddClass("wp-block-group")
}
