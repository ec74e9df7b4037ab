package blockmarkup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// kitchenSink composes every mixin so each can be exercised in isolation.
type kitchenSink struct {
	*Block
	AnchorSupport[*kitchenSink]
	CustomClassSupport[*kitchenSink]
	TagNameSupport[*kitchenSink]
	AlignSupport[*kitchenSink]
	PositionSupport[*kitchenSink]
	BackgroundColorSupport[*kitchenSink]
	TextColorSupport[*kitchenSink]
	LinkColorSupport[*kitchenSink]
	FontSizeSupport[*kitchenSink]
	FontStyleSupport[*kitchenSink]
	FontWeightSupport[*kitchenSink]
	LineHeightSupport[*kitchenSink]
	LetterSpacingSupport[*kitchenSink]
	TextDecorationSupport[*kitchenSink]
	TextTransformSupport[*kitchenSink]
	DropCapSupport[*kitchenSink]
	FlexWidthSupport[*kitchenSink]
}

func newKitchenSink(opts ...Option) *kitchenSink {
	opts = append([]Option{WithWrapper(TagWrapper(DefaultTagName))}, opts...)
	k := &kitchenSink{Block: NewBlock("test/sink", opts...)}
	m := Bind(k)
	k.AnchorSupport = AnchorSupport[*kitchenSink](m)
	k.CustomClassSupport = CustomClassSupport[*kitchenSink](m)
	k.TagNameSupport = TagNameSupport[*kitchenSink](m)
	k.AlignSupport = AlignSupport[*kitchenSink](m)
	k.PositionSupport = PositionSupport[*kitchenSink](m)
	k.BackgroundColorSupport = BackgroundColorSupport[*kitchenSink](m)
	k.TextColorSupport = TextColorSupport[*kitchenSink](m)
	k.LinkColorSupport = LinkColorSupport[*kitchenSink](m)
	k.FontSizeSupport = FontSizeSupport[*kitchenSink](m)
	k.FontStyleSupport = FontStyleSupport[*kitchenSink](m)
	k.FontWeightSupport = FontWeightSupport[*kitchenSink](m)
	k.LineHeightSupport = LineHeightSupport[*kitchenSink](m)
	k.LetterSpacingSupport = LetterSpacingSupport[*kitchenSink](m)
	k.TextDecorationSupport = TextDecorationSupport[*kitchenSink](m)
	k.TextTransformSupport = TextTransformSupport[*kitchenSink](m)
	k.DropCapSupport = DropCapSupport[*kitchenSink](m)
	k.FlexWidthSupport = FlexWidthSupport[*kitchenSink](m)
	return k
}

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func openingOf(k *kitchenSink) string {
	return k.Formatter().OpeningComment()
}

func TestMixinsReturnConcreteType(t *testing.T) {
	k := newKitchenSink()
	var got *kitchenSink = k.Anchor("a").FontStyle("italic").DropCap().AlignWide().Fit()
	assert.Same(t, k, got)
}

func TestAnchor(t *testing.T) {
	k := newKitchenSink().Anchor("intro")
	assert.Equal(t, `<!-- wp:test/sink {"anchor":"intro"} -->`, openingOf(k))
	assert.Contains(t, k.Render(), `<div class="" id="intro">`)
}

func TestCustomClass(t *testing.T) {
	k := newKitchenSink().CustomClass("  one two  one ")
	assert.Equal(t, `<!-- wp:test/sink {"className":"  one two  one "} -->`, openingOf(k))
	assert.Equal(t, []string{"one", "two"}, k.Classes())
}

func TestTagName(t *testing.T) {
	tests := []struct {
		in      string
		tag     string
		comment string
	}{
		{"section", "section", `<!-- wp:test/sink {"tagName":"section"} -->`},
		{" MAIN ", "main", `<!-- wp:test/sink {"tagName":"main"} -->`},
		{"div", "div", `<!-- wp:test/sink -->`},
		{"span", "div", `<!-- wp:test/sink -->`},
		{"", "div", `<!-- wp:test/sink -->`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k := newKitchenSink(WithText("x")).TagName(tt.in)
			assert.Equal(t, tt.tag, k.Tag())
			assert.Equal(t, tt.comment, openingOf(k))
			assert.Contains(t, k.Render(), "<"+tt.tag+` class="">x</`+tt.tag+">")
		})
	}
}

func TestTagNameRevertsToDefault(t *testing.T) {
	logger, logs := observed()
	k := newKitchenSink(WithLogger(logger)).TagName("aside").TagName("blink")

	assert.Equal(t, "div", k.Tag())
	assert.Equal(t, `<!-- wp:test/sink -->`, openingOf(k))
	assert.Equal(t, 1, logs.FilterMessage("unsupported tag name, using default").Len())
}

func TestAlign(t *testing.T) {
	logger, logs := observed()
	k := newKitchenSink(WithLogger(logger))
	assert.Equal(t, "", k.Alignment())

	k.AlignWide()
	assert.Equal(t, "wide", k.Alignment())
	assert.Equal(t, `<!-- wp:test/sink {"align":"wide"} -->`, openingOf(k))

	k.Align("diagonal")
	assert.Equal(t, "wide", k.Alignment())
	assert.Equal(t, 1, logs.FilterMessage("unsupported alignment ignored").Len())

	k.Align(" FULL ")
	assert.Equal(t, "full", k.Alignment())

	k.AlignNone()
	assert.Equal(t, "", k.Alignment())
	assert.Equal(t, `<!-- wp:test/sink -->`, openingOf(k))
}

func TestAlignShortcuts(t *testing.T) {
	tests := []struct {
		set  func(*kitchenSink) *kitchenSink
		want string
	}{
		{(*kitchenSink).AlignLeft, "left"},
		{(*kitchenSink).AlignCenter, "center"},
		{(*kitchenSink).AlignRight, "right"},
		{(*kitchenSink).AlignWide, "wide"},
		{(*kitchenSink).AlignFull, "full"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set(newKitchenSink()).Alignment())
		})
	}
}

func TestPosition(t *testing.T) {
	logger, logs := observed()
	k := newKitchenSink(WithLogger(logger))
	assert.Equal(t, "default", k.PositionType())

	k.PositionSticky()
	assert.Equal(t, "sticky", k.PositionType())
	assert.Equal(t, `<!-- wp:test/sink {"style":{"position":{"type":"sticky","top":"0px"}}} -->`, openingOf(k))

	k.Position("fixed")
	assert.Equal(t, "sticky", k.PositionType())
	assert.Equal(t, 1, logs.FilterMessage("unsupported position ignored").Len())

	k.PositionDefault()
	assert.Equal(t, "default", k.PositionType())
	assert.Equal(t, `<!-- wp:test/sink -->`, openingOf(k))
}

func TestPositionDefaultKeepsOtherStyles(t *testing.T) {
	k := newKitchenSink().PositionSticky().CustomTextColor("red").PositionDefault()
	assert.Equal(t, `<!-- wp:test/sink {"style":{"color":{"text":"red"}}} -->`, openingOf(k))
}

func TestBackgroundColor(t *testing.T) {
	k := newKitchenSink().BackgroundColor("primary")
	assert.Equal(t, `<!-- wp:test/sink {"backgroundColor":"primary"} -->`, openingOf(k))
	assert.Equal(t, []string{"has-primary-background-color", "has-background"}, k.Classes())
	assert.Equal(t, "", k.Style())

	c := newKitchenSink().CustomBackgroundColor("#fff")
	assert.Equal(t, `<!-- wp:test/sink {"style":{"color":{"background":"#fff"}}} -->`, openingOf(c))
	assert.Equal(t, []string{"has-background"}, c.Classes())
	assert.Equal(t, "background-color:#fff", c.Style())
}

func TestTextColor(t *testing.T) {
	k := newKitchenSink().TextColor("accent")
	assert.Equal(t, `<!-- wp:test/sink {"textColor":"accent"} -->`, openingOf(k))
	assert.Equal(t, []string{"has-accent-color", "has-text-color"}, k.Classes())

	c := newKitchenSink().CustomTextColor("#111")
	assert.Equal(t, `<!-- wp:test/sink {"style":{"color":{"text":"#111"}}} -->`, openingOf(c))
	assert.Equal(t, []string{"has-text-color"}, c.Classes())
	assert.Equal(t, "color:#111", c.Style())
}

func TestLinkColor(t *testing.T) {
	k := newKitchenSink().LinkColor("primary")
	assert.Equal(t,
		`<!-- wp:test/sink {"style":{"elements":{"link":{"color":{"text":"var:preset|color|primary"}}}}} -->`,
		openingOf(k))
	assert.Equal(t, []string{"has-link-color"}, k.Classes())
	assert.Equal(t, "", k.Style())

	c := newKitchenSink().CustomLinkColor("#00f").CustomLinkColor("#f00")
	assert.Equal(t,
		`<!-- wp:test/sink {"style":{"elements":{"link":{"color":{"text":"#f00"}}}}} -->`,
		openingOf(c))
	assert.Equal(t, []string{"has-link-color"}, c.Classes())
}

func TestFontSize(t *testing.T) {
	k := newKitchenSink().FontSize("large")
	assert.Equal(t, `<!-- wp:test/sink {"fontSize":"large"} -->`, openingOf(k))
	assert.Equal(t, []string{"has-large-font-size"}, k.Classes())

	c := newKitchenSink().CustomFontSize("2.5rem")
	assert.Equal(t, `<!-- wp:test/sink {"style":{"typography":{"fontSize":"2.5rem"}}} -->`, openingOf(c))
	assert.Empty(t, c.Classes())
	assert.Equal(t, "font-size:2.5rem", c.Style())
}

func TestTypographySetters(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*kitchenSink) *kitchenSink
		key   string
		value string
		css   string
	}{
		{"font style", func(k *kitchenSink) *kitchenSink { return k.FontStyle("italic") }, "fontStyle", "italic", "font-style:italic"},
		{"font weight", func(k *kitchenSink) *kitchenSink { return k.FontWeight("700") }, "fontWeight", "700", "font-weight:700"},
		{"line height", func(k *kitchenSink) *kitchenSink { return k.LineHeight("1.5") }, "lineHeight", "1.5", "line-height:1.5"},
		{"letter spacing", func(k *kitchenSink) *kitchenSink { return k.LetterSpacing("2px") }, "letterSpacing", "2px", "letter-spacing:2px"},
		{"text decoration", func(k *kitchenSink) *kitchenSink { return k.TextDecoration("underline") }, "textDecoration", "underline", "text-decoration:underline"},
		{"text transform", func(k *kitchenSink) *kitchenSink { return k.TextTransform("uppercase") }, "textTransform", "uppercase", "text-transform:uppercase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := tt.apply(newKitchenSink())
			v, ok := k.BlockAttribute("style", "typography", tt.key)
			require.True(t, ok)
			s, _ := v.Str()
			assert.Equal(t, tt.value, s)
			assert.Equal(t, tt.css, k.Style())
		})
	}
}

func TestStyleMutatorsAccumulate(t *testing.T) {
	k := newKitchenSink(WithText("x")).CustomTextColor("#111").FontStyle("italic")
	assert.Equal(t, "color:#111;font-style:italic", k.Style())
	assert.Contains(t, k.Render(), `style="color:#111;font-style:italic"`)
	assert.Equal(t,
		`<!-- wp:test/sink {"style":{"color":{"text":"#111"},"typography":{"fontStyle":"italic"}}} -->`,
		openingOf(k))
}

func TestDropCap(t *testing.T) {
	k := newKitchenSink().DropCap()
	assert.Equal(t, `<!-- wp:test/sink {"dropCap":true} -->`, openingOf(k))
	assert.True(t, k.HasClass("has-drop-cap"))

	k.DropCap(false)
	assert.Equal(t, `<!-- wp:test/sink {"dropCap":false} -->`, openingOf(k))
	assert.False(t, k.HasClass("has-drop-cap"))

	k.DropCap(true).DropCap(true)
	assert.Equal(t, []string{"has-drop-cap"}, k.Classes())
}

func TestFlexWidth(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*kitchenSink) *kitchenSink
		want  string
	}{
		{"fit", (*kitchenSink).Fit, `{"style":{"layout":{"selfStretch":"fit","flexSize":null}}}`},
		{"grow", (*kitchenSink).Grow, `{"style":{"layout":{"selfStretch":"fill","flexSize":null}}}`},
		{"fixed", func(k *kitchenSink) *kitchenSink { return k.Fixed("250px") }, `{"style":{"layout":{"selfStretch":"fixed","flexSize":"250px"}}}`},
		{"width", func(k *kitchenSink) *kitchenSink { return k.Width("50%") }, `{"style":{"layout":{"selfStretch":"fixed","flexSize":"50%"}}}`},
		{"fixed then fit", func(k *kitchenSink) *kitchenSink { return k.Fixed("1px").Fit() }, `{"style":{"layout":{"selfStretch":"fit","flexSize":null}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := tt.apply(newKitchenSink())
			assert.Equal(t, "<!-- wp:test/sink "+tt.want+" -->", openingOf(k))
		})
	}
}

func TestUnboundMixinPanics(t *testing.T) {
	var m AnchorSupport[*kitchenSink]
	assert.Panics(t, func() { m.Anchor("x") })
}
