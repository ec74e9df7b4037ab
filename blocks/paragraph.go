// Package blocks provides the core editor blocks built on blockmarkup.
//
// Each block embeds *blockmarkup.Block and the attribute mixins the editor
// enables for it, so settings chain on the concrete type:
//
//	p := blocks.NewParagraph("Lorem ipsum").
//	    TextColor("primary").
//	    FontSize("large").
//	    DropCap()
//	markup := p.Render()
package blocks

import (
	bm "github.com/pthm/blockmarkup"
)

const paragraphWrapper = `<p class="%classes%" %attributes%>%children%</p>`

// Paragraph is the core/paragraph block.
type Paragraph struct {
	*bm.Block
	bm.AnchorSupport[*Paragraph]
	bm.BackgroundColorSupport[*Paragraph]
	bm.CustomClassSupport[*Paragraph]
	bm.DropCapSupport[*Paragraph]
	bm.FontSizeSupport[*Paragraph]
	bm.FontStyleSupport[*Paragraph]
	bm.FontWeightSupport[*Paragraph]
	bm.LetterSpacingSupport[*Paragraph]
	bm.LineHeightSupport[*Paragraph]
	bm.LinkColorSupport[*Paragraph]
	bm.TextColorSupport[*Paragraph]
	bm.TextDecorationSupport[*Paragraph]
	bm.TextTransformSupport[*Paragraph]
	bm.FlexWidthSupport[*Paragraph]
}

// NewParagraph returns a paragraph holding content. content is inserted
// verbatim and may contain inline HTML.
func NewParagraph(content string, opts ...bm.Option) *Paragraph {
	opts = append([]bm.Option{bm.WithWrapper(paragraphWrapper), bm.WithText(content)}, opts...)
	p := &Paragraph{Block: bm.NewBlock("core/paragraph", opts...)}

	m := bm.Bind(p)
	p.AnchorSupport = bm.AnchorSupport[*Paragraph](m)
	p.BackgroundColorSupport = bm.BackgroundColorSupport[*Paragraph](m)
	p.CustomClassSupport = bm.CustomClassSupport[*Paragraph](m)
	p.DropCapSupport = bm.DropCapSupport[*Paragraph](m)
	p.FontSizeSupport = bm.FontSizeSupport[*Paragraph](m)
	p.FontStyleSupport = bm.FontStyleSupport[*Paragraph](m)
	p.FontWeightSupport = bm.FontWeightSupport[*Paragraph](m)
	p.LetterSpacingSupport = bm.LetterSpacingSupport[*Paragraph](m)
	p.LineHeightSupport = bm.LineHeightSupport[*Paragraph](m)
	p.LinkColorSupport = bm.LinkColorSupport[*Paragraph](m)
	p.TextColorSupport = bm.TextColorSupport[*Paragraph](m)
	p.TextDecorationSupport = bm.TextDecorationSupport[*Paragraph](m)
	p.TextTransformSupport = bm.TextTransformSupport[*Paragraph](m)
	p.FlexWidthSupport = bm.FlexWidthSupport[*Paragraph](m)
	return p
}
