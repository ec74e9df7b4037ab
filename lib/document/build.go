package document

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	bm "github.com/pthm/blockmarkup"
	"github.com/pthm/blockmarkup/blocks"
)

// blockSeparator goes between top-level blocks, as the editor saves them.
const blockSeparator = "\n\n"

// Build turns the document into a sequence of blocks. opts are applied to
// every block. Errors from all top-level blocks are collected with
// multierr, each wrapping ErrBuildFailed.
func (d *Document) Build(opts ...bm.Option) (*bm.Node, error) {
	reg := d.registry()

	var errs error
	children := make([]bm.Renderable, 0, 2*len(d.Blocks))
	for i, desc := range d.Blocks {
		b, err := build(reg, desc, fmt.Sprintf("blocks[%d]", i), opts)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrBuildFailed, err))
			continue
		}
		if len(children) > 0 {
			children = append(children, bm.Text(blockSeparator))
		}
		children = append(children, b)
	}
	if errs != nil {
		return nil, errs
	}
	return bm.Fragment(children...), nil
}

// Render builds the document and passes the markup through p, which may be
// nil.
func (d *Document) Render(p bm.Processor, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	root, err := d.Build(bm.WithLogger(logger))
	if err != nil {
		return "", err
	}
	logger.Debug("document built", zap.String("title", d.Title), zap.Int("blocks", len(d.Blocks)))
	return bm.ProcessRenderable(root, p, logger)
}

func (d *Document) registry() *Registry {
	if d.Registry != nil {
		return d.Registry
	}
	return defaultRegistry
}

func build(reg *Registry, s Block, path string, opts []bm.Option) (bm.Host, error) {
	fn, ok := reg.Lookup(s.Type)
	if !ok {
		return nil, fmt.Errorf("%s: unknown block type %q", path, s.Type)
	}

	var errs error
	children := make([]bm.Renderable, 0, len(s.Children))
	for i, desc := range s.Children {
		child, err := build(reg, desc, fmt.Sprintf("%s.children[%d]", path, i), opts)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		children = append(children, child)
	}
	if errs != nil {
		return nil, errs
	}

	b, err := fn(s, children, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(s.Attributes) > 0 {
		if err := b.Core().SetBlockAttributeMap(s.Attributes, true); err != nil {
			return nil, fmt.Errorf("%s: attributes: %w", path, err)
		}
	}
	return b, nil
}

func buildParagraph(s Block, _ []bm.Renderable, opts []bm.Option) (bm.Host, error) {
	p := blocks.NewParagraph(s.Content, opts...)
	applyCommon(p, s)
	applyTextColor(p, s.Color)
	applyLinkColor(p, s.Color)
	applyTypography(p, s.Typography)
	if s.DropCap {
		p.DropCap()
	}
	applyWidth(p, s.Width)
	return p, nil
}

func buildHeading(s Block, _ []bm.Renderable, opts []bm.Option) (bm.Host, error) {
	level := s.Level
	if level == 0 {
		level = blocks.DefaultHeadingLevel
	}
	h := blocks.NewHeading(s.Content, level, opts...)
	applyCommon(h, s)
	if s.AutoAnchor && s.Anchor == "" {
		h.AutoAnchor()
	}
	applyTextColor(h, s.Color)
	applyTypography(h, s.Typography)
	applyWidth(h, s.Width)
	return h, nil
}

func buildGroup(s Block, children []bm.Renderable, opts []bm.Option) (bm.Host, error) {
	g := blocks.NewGroupWith(children, opts)
	applyCommon(g, s)
	if s.Tag != "" {
		g.TagName(s.Tag)
	}
	if s.Align != "" {
		g.Align(s.Align)
	}
	if s.Sticky {
		g.PositionSticky()
	}
	if s.DropCap {
		g.DropCap()
	}
	applyTextColor(g, s.Color)
	applyLinkColor(g, s.Color)
	applyTypography(g, s.Typography)
	applyLayout(g, s.Layout)
	return g, nil
}

func applyLayout(g *blocks.Group, l *Layout) {
	if l == nil {
		return
	}
	var wrap []bool
	if l.Wrap != nil {
		wrap = []bool{*l.Wrap}
	}
	switch l.Type {
	case blocks.LayoutFlex:
		if l.Orientation == blocks.OrientationVertical {
			g.AsFlexColumn(wrap...)
		} else {
			g.AsFlexRow(wrap...)
		}
	case blocks.LayoutFlow:
		g.AsBlock()
	case blocks.LayoutConstrained:
		g.LayoutConstrained()
	}
	if l.JustifyContent != "" {
		g.JustifyContent(l.JustifyContent)
	}
	if l.ContentSize != "" {
		g.ContentSize(l.ContentSize)
	}
	if l.WideSize != "" {
		g.WideSize(l.WideSize)
	}
}

func buildRow(s Block, children []bm.Renderable, opts []bm.Option) (bm.Host, error) {
	cfg := blocks.RowConfig{TagName: s.Tag, Options: opts}
	if l := s.Layout; l != nil {
		cfg.Wrap = l.Wrap != nil && *l.Wrap
		cfg.JustifyContent = l.JustifyContent
		cfg.Orientation = l.Orientation
	}

	r := blocks.NewGroupRow(cfg, children...)
	applyCommon(r, s)
	if s.DropCap {
		r.DropCap()
	}
	applyTextColor(r, s.Color)
	applyLinkColor(r, s.Color)
	applyTypography(r, s.Typography)
	return r, nil
}

func buildSeparator(s Block, _ []bm.Renderable, opts []bm.Option) (bm.Host, error) {
	sep := blocks.NewSeparator(opts...)
	if s.Opacity != nil {
		sep.SetAlphaChannelOpacity(*s.Opacity)
	}
	if s.Align != "" {
		sep.Align(s.Align)
	}
	if s.Class != "" {
		sep.CustomClass(s.Class)
	}
	applyBackground(sep, s.Color)
	return sep, nil
}

type common[T any] interface {
	Anchor(id string) T
	CustomClass(names string) T
	BackgroundColor(slug string) T
	CustomBackgroundColor(color string) T
}

// applyCommon applies the settings every content block supports.
func applyCommon[T common[T]](b T, s Block) {
	if s.Anchor != "" {
		b.Anchor(s.Anchor)
	}
	if s.Class != "" {
		b.CustomClass(s.Class)
	}
	applyBackground(b, s.Color)
}

type backgroundColorer[T any] interface {
	BackgroundColor(slug string) T
	CustomBackgroundColor(color string) T
}

func applyBackground[T backgroundColorer[T]](b T, c *Color) {
	if c == nil {
		return
	}
	if c.Background != "" {
		b.BackgroundColor(c.Background)
	}
	if c.CustomBackground != "" {
		b.CustomBackgroundColor(c.CustomBackground)
	}
}

type textColorer[T any] interface {
	TextColor(slug string) T
	CustomTextColor(color string) T
}

func applyTextColor[T textColorer[T]](b T, c *Color) {
	if c == nil {
		return
	}
	if c.Text != "" {
		b.TextColor(c.Text)
	}
	if c.CustomText != "" {
		b.CustomTextColor(c.CustomText)
	}
}

type linkColorer[T any] interface {
	LinkColor(slug string) T
	CustomLinkColor(color string) T
}

func applyLinkColor[T linkColorer[T]](b T, c *Color) {
	if c == nil {
		return
	}
	if c.Link != "" {
		b.LinkColor(c.Link)
	}
	if c.CustomLink != "" {
		b.CustomLinkColor(c.CustomLink)
	}
}

type typographer[T any] interface {
	FontSize(slug string) T
	CustomFontSize(size string) T
	FontStyle(style string) T
	FontWeight(weight string) T
	LineHeight(height string) T
	LetterSpacing(spacing string) T
	TextDecoration(decoration string) T
	TextTransform(transform string) T
}

func applyTypography[T typographer[T]](b T, t *Typography) {
	if t == nil {
		return
	}
	setters := []struct {
		value string
		set   func(string) T
	}{
		{t.FontSize, b.FontSize},
		{t.CustomFontSize, b.CustomFontSize},
		{t.FontStyle, b.FontStyle},
		{t.FontWeight, b.FontWeight},
		{t.LineHeight, b.LineHeight},
		{t.LetterSpacing, b.LetterSpacing},
		{t.TextDecoration, b.TextDecoration},
		{t.TextTransform, b.TextTransform},
	}
	for _, s := range setters {
		if s.value != "" {
			s.set(s.value)
		}
	}
}

type flexChild[T any] interface {
	Fit() T
	Grow() T
	Fixed(size string) T
}

func applyWidth[T flexChild[T]](b T, width string) {
	switch width {
	case "":
	case bm.SelfStretchFit:
		b.Fit()
	case "grow", bm.SelfStretchFill:
		b.Grow()
	default:
		b.Fixed(width)
	}
}
