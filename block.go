package blockmarkup

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pthm/blockmarkup/lib/attrtree"
	"github.com/pthm/blockmarkup/lib/comments"
)

// Block is a Node wrapped in block delimiter comments.
//
// Block embeds *Node, so the class list, wrapper attributes and children
// are managed through the promoted Node methods. The block attribute tree
// is serialized into the opening comment on every render.
//
// Concrete blocks embed *Block and register pre-render hooks with OnRender
// to rebuild derived state (wrapper tag, layout attributes, classes) from
// their own fields:
//
//	h := &Heading{Block: blockmarkup.NewBlock("core/heading", blockmarkup.WithText(content))}
//	h.OnRender(h.buildWrapper)
type Block struct {
	*Node

	name        string
	attrs       *attrtree.Tree
	selfClosing bool
	logger      *zap.Logger
	commentOpts []comments.Option
	hooks       []func()
}

// NewBlock returns a block with the given namespaced name, e.g.
// "core/paragraph" or "acf/hero". The wrapper template defaults to empty,
// which renders the children alone.
func NewBlock(name string, opts ...Option) *Block {
	o := buildOptions(opts)
	b := &Block{
		Node:        newNode(o.wrapper, o),
		name:        name,
		attrs:       attrtree.New().Merge(o.blockAttrs),
		selfClosing: o.selfClosing,
		logger:      o.logger,
		commentOpts: o.commentOpts,
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	return b
}

// Core returns b. It lets mixins reach the Block behind any concrete block
// type.
func (b *Block) Core() *Block {
	return b
}

// Name returns the block name as given at construction. Comments use the
// normalized form, see comments.NormalizeName.
func (b *Block) Name() string {
	return b.name
}

// Logger returns the logger used to report silent fallbacks.
func (b *Block) Logger() *zap.Logger {
	return b.logger
}

// SetLogger replaces the logger. A nil logger disables logging.
func (b *Block) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b.logger = logger
}

// IsSelfClosing reports whether the block renders as a single comment.
func (b *Block) IsSelfClosing() bool {
	return b.selfClosing
}

// SetSelfClosing toggles the self-closing form.
func (b *Block) SetSelfClosing(selfClosing bool) {
	b.selfClosing = selfClosing
}

// BlockAttributes returns a copy of the block attribute tree.
func (b *Block) BlockAttributes() *attrtree.Tree {
	return b.attrs.Clone()
}

// BlockAttribute returns the block attribute at path, e.g.
// BlockAttribute("style", "color", "text").
func (b *Block) BlockAttribute(path ...string) (attrtree.Value, bool) {
	return b.attrs.Lookup(path...)
}

// SetAttributePath stores v at path, creating intermediate objects.
func (b *Block) SetAttributePath(path []string, v attrtree.Value) {
	b.attrs.SetPath(path, v)
}

// UnsetAttributePath removes the attribute at path. Parent objects left
// empty are removed too.
func (b *Block) UnsetAttributePath(path ...string) bool {
	return b.attrs.UnsetPath(path...)
}

// SetBlockAttributes merges attrs into the block attributes, or replaces
// them when merge is false. Merging is shallow: a top-level key such as
// "style" replaces the whole existing subtree. The tree is copied.
func (b *Block) SetBlockAttributes(attrs *attrtree.Tree, merge bool) {
	if !merge {
		b.attrs = attrtree.New()
	}
	b.attrs.Merge(attrs)
}

// SetBlockAttributeMap is SetBlockAttributes for plain Go maps. It fails
// with ErrUnsupportedValue when a value cannot be serialized, leaving the
// attributes untouched.
func (b *Block) SetBlockAttributeMap(attrs map[string]any, merge bool) error {
	tree, err := attrtree.FromMap(attrs)
	if err != nil {
		return err
	}
	b.SetBlockAttributes(tree, merge)
	return nil
}

// Formatter returns a comment formatter for the current name and
// attributes. It is a snapshot; later mutations are not reflected.
func (b *Block) Formatter() *comments.Formatter {
	return comments.New(b.name, b.attrs, b.commentOpts...)
}

// OnRender registers a hook run at the start of every Render, Print and
// Snapshot, in registration order. Hooks must be idempotent.
func (b *Block) OnRender(hook func()) {
	b.hooks = append(b.hooks, hook)
}

func (b *Block) runHooks() {
	for _, hook := range b.hooks {
		hook()
	}
}

// Render returns the block markup. Regular blocks render as
//
//	<!-- wp:name {json} -->
//	inner html
//	<!-- /wp:name -->
//
// and self-closing blocks as a single <!-- wp:name {json} /--> comment.
func (b *Block) Render() string {
	var sb strings.Builder
	_ = b.Print(&sb)
	return sb.String()
}

// Print streams the block markup: opening comment, inner content, closing
// comment.
func (b *Block) Print(w io.Writer) error {
	b.runHooks()

	f := b.Formatter()
	if err := f.Err(); err != nil {
		b.logger.Warn("block attributes could not be encoded",
			zap.String("block", b.name), zap.Error(err))
	}

	if b.selfClosing {
		_, err := io.WriteString(w, f.SelfClosingComment())
		return err
	}

	if _, err := io.WriteString(w, f.OpeningComment()+"\n"); err != nil {
		return err
	}
	if err := b.Node.Print(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n"+f.ClosingComment())
	return err
}
