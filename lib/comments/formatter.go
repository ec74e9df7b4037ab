// Package comments renders the block delimiter comments that wrap a block's
// HTML in stored post content.
//
//	<!-- wp:paragraph {"dropCap":true} -->
//	<p class="has-drop-cap">...</p>
//	<!-- /wp:paragraph -->
//
// A Formatter is built from a block name and its attribute tree and is
// immutable afterwards. Blocks build a fresh Formatter on every render so
// the comments always reflect the current attributes.
package comments

import (
	"strings"

	"github.com/pthm/blockmarkup/lib/attrtree"
)

// corePrefix is dropped from block names in comments; the editor treats
// un-namespaced names as core blocks.
const corePrefix = "core/"

// Option configures a Formatter.
type Option func(*Formatter)

// WithWordPressEscaping applies the extra escapes WordPress' own block
// serializer uses so the payload can never terminate the surrounding HTML
// comment: "--", "<", ">", "&" and escaped quotes become \u sequences.
// Forward slashes stay unescaped.
func WithWordPressEscaping() Option {
	return func(f *Formatter) {
		f.escaper = wordpressEscaper
	}
}

var wordpressEscaper = strings.NewReplacer(
	"--", `\u002d\u002d`,
	"<", `\u003c`,
	">", `\u003e`,
	"&", `\u0026`,
	`\"`, `\u0022`,
)

// Formatter renders the opening, closing and self-closing comments of one
// block.
type Formatter struct {
	name    string
	attrs   *attrtree.Tree
	escaper *strings.Replacer

	payload string
	err     error
}

// New returns a Formatter for the block name and attributes. The name is
// normalized with NormalizeName and the attributes are copied.
func New(name string, attrs *attrtree.Tree, opts ...Option) *Formatter {
	f := &Formatter{
		name:  NormalizeName(name),
		attrs: attrs.Clone(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.payload, f.err = f.encode()
	return f
}

// NormalizeName strips a leading "core/" namespace. Other namespaces pass
// through unchanged.
func NormalizeName(name string) string {
	return strings.TrimPrefix(name, corePrefix)
}

func (f *Formatter) encode() (string, error) {
	if f.attrs.IsEmpty() {
		return "", nil
	}
	s, err := f.attrs.JSON()
	if err != nil {
		return "", err
	}
	if f.escaper != nil {
		s = f.escaper.Replace(s)
	}
	return s, nil
}

// Name returns the normalized block name used in the comments.
func (f *Formatter) Name() string {
	return f.name
}

// Attributes returns a copy of the attributes serialized into the opening
// comment.
func (f *Formatter) Attributes() *attrtree.Tree {
	return f.attrs.Clone()
}

// Err reports a failure to encode the attributes. When non-nil the comments
// are rendered without a JSON payload.
func (f *Formatter) Err() error {
	return f.err
}

// OpeningComment returns `<!-- wp:name -->`, or `<!-- wp:name {json} -->`
// when the block has attributes.
func (f *Formatter) OpeningComment() string {
	return f.open() + " -->"
}

// ClosingComment returns `<!-- /wp:name -->`.
func (f *Formatter) ClosingComment() string {
	return "<!-- /wp:" + f.name + " -->"
}

// SelfClosingComment returns the opening comment with a ` /-->` terminator,
// used by blocks without inner content.
func (f *Formatter) SelfClosingComment() string {
	return f.open() + " /-->"
}

// WrapContent returns html between the opening and closing comments, with
// nothing inserted in between.
func (f *Formatter) WrapContent(html string) string {
	return f.OpeningComment() + html + f.ClosingComment()
}

func (f *Formatter) open() string {
	if f.payload == "" {
		return "<!-- wp:" + f.name
	}
	return "<!-- wp:" + f.name + " " + f.payload
}
