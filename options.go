package blockmarkup

import (
	"go.uber.org/zap"

	"github.com/pthm/blockmarkup/lib/attrtree"
	"github.com/pthm/blockmarkup/lib/comments"
)

// Option configures a Node or Block at construction.
type Option func(*options)

type options struct {
	wrapper      string
	wrapperSet   bool
	classes      []string
	attrs        []attribute
	childWrapper string
	children     []Renderable
	blockAttrs   *attrtree.Tree
	selfClosing  bool
	logger       *zap.Logger
	commentOpts  []comments.Option
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithWrapper sets the wrapper template, overriding any default the
// constructor provides.
func WithWrapper(tpl string) Option {
	return func(o *options) {
		o.wrapper = tpl
		o.wrapperSet = true
	}
}

// WithClasses adds CSS classes to the wrapper.
func WithClasses(names ...string) Option {
	return func(o *options) {
		o.classes = append(o.classes, names...)
	}
}

// WithAttribute sets a wrapper HTML attribute. Attributes render in the
// order they were first set.
func WithAttribute(key, value string) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attribute{key: key, value: value})
	}
}

// WithChildWrapper sets the template each child is wrapped in.
func WithChildWrapper(tpl string) Option {
	return func(o *options) {
		o.childWrapper = tpl
	}
}

// WithChildren appends children.
func WithChildren(children ...Renderable) Option {
	return func(o *options) {
		o.children = append(o.children, children...)
	}
}

// WithText appends literal text children.
func WithText(texts ...string) Option {
	return func(o *options) {
		for _, s := range texts {
			o.children = append(o.children, Text(s))
		}
	}
}

// WithBlockAttributes sets the initial block attribute tree. Later calls
// are merged into earlier ones. The tree is copied.
func WithBlockAttributes(tree *attrtree.Tree) Option {
	return func(o *options) {
		if o.blockAttrs == nil {
			o.blockAttrs = attrtree.New()
		}
		o.blockAttrs.Merge(tree)
	}
}

// SelfClosing marks a block as having no inner content.
func SelfClosing() Option {
	return func(o *options) {
		o.selfClosing = true
	}
}

// WithLogger sets the logger used to report silent fallbacks.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCommentOptions configures the block comment formatter, for example
// comments.WithWordPressEscaping().
func WithCommentOptions(opts ...comments.Option) Option {
	return func(o *options) {
		o.commentOpts = append(o.commentOpts, opts...)
	}
}
