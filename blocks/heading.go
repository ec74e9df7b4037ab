package blocks

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	bm "github.com/pthm/blockmarkup"
	"github.com/pthm/blockmarkup/lib/attrtree"
)

// DefaultHeadingLevel is the level the editor omits from the attributes.
const DefaultHeadingLevel = 2

// Heading is the core/heading block.
type Heading struct {
	*bm.Block
	bm.AnchorSupport[*Heading]
	bm.BackgroundColorSupport[*Heading]
	bm.CustomClassSupport[*Heading]
	bm.FontSizeSupport[*Heading]
	bm.FontStyleSupport[*Heading]
	bm.FontWeightSupport[*Heading]
	bm.LetterSpacingSupport[*Heading]
	bm.LineHeightSupport[*Heading]
	bm.TextColorSupport[*Heading]
	bm.TextDecorationSupport[*Heading]
	bm.TextTransformSupport[*Heading]
	bm.FlexWidthSupport[*Heading]

	level int
}

// NewHeading returns a heading of the given level (1 to 6). Out of range
// levels fall back to 2.
func NewHeading(content string, level int, opts ...bm.Option) *Heading {
	opts = append([]bm.Option{bm.WithText(content)}, opts...)
	h := &Heading{
		Block: bm.NewBlock("core/heading", opts...),
	}
	h.SetLevel(level)

	m := bm.Bind(h)
	h.AnchorSupport = bm.AnchorSupport[*Heading](m)
	h.BackgroundColorSupport = bm.BackgroundColorSupport[*Heading](m)
	h.CustomClassSupport = bm.CustomClassSupport[*Heading](m)
	h.FontSizeSupport = bm.FontSizeSupport[*Heading](m)
	h.FontStyleSupport = bm.FontStyleSupport[*Heading](m)
	h.FontWeightSupport = bm.FontWeightSupport[*Heading](m)
	h.LetterSpacingSupport = bm.LetterSpacingSupport[*Heading](m)
	h.LineHeightSupport = bm.LineHeightSupport[*Heading](m)
	h.TextColorSupport = bm.TextColorSupport[*Heading](m)
	h.TextDecorationSupport = bm.TextDecorationSupport[*Heading](m)
	h.TextTransformSupport = bm.TextTransformSupport[*Heading](m)
	h.FlexWidthSupport = bm.FlexWidthSupport[*Heading](m)

	h.OnRender(h.buildWrapper)
	return h
}

// Level returns the heading level.
func (h *Heading) Level() int {
	return h.level
}

// SetLevel sets the heading level. Out of range levels fall back to 2.
func (h *Heading) SetLevel(level int) *Heading {
	if level < 1 || level > 6 {
		h.Logger().Debug("heading level out of range, using default",
			zap.Int("level", level), zap.Int("fallback", DefaultHeadingLevel))
		level = DefaultHeadingLevel
	}
	h.level = level
	return h
}

// AutoAnchor sets the anchor to a slug of the heading's current children,
// with inline markup stripped: "Getting <em>Started</em>" becomes
// "getting-started". Headings without usable text are left unchanged.
func (h *Heading) AutoAnchor() *Heading {
	var sb strings.Builder
	for _, child := range h.Children() {
		if child != nil {
			_ = child.Print(&sb)
		}
	}
	id := slug.Make(plainText(sb.String()))
	if id == "" {
		h.Logger().Debug("heading has no text to derive an anchor from")
		return h
	}
	return h.Anchor(id)
}

func (h *Heading) buildWrapper() {
	if h.level == DefaultHeadingLevel {
		h.UnsetAttributePath("level")
	} else {
		h.SetAttributePath([]string{"level"}, attrtree.Int(h.level))
	}
	h.SetWrapper(fmt.Sprintf(`<h%d class="wp-block-heading %%classes%%" %%attributes%%>%%children%%</h%d>`, h.level, h.level))
}

// plainText returns the text content of an HTML fragment.
func plainText(fragment string) string {
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}
