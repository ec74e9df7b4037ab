// Package blockmarkup builds WordPress block editor markup from Go.
//
// Block markup is HTML wrapped in delimiter comments that carry the block's
// name and a JSON attribute payload:
//
//	<!-- wp:heading {"level":3} -->
//	<h3 class="wp-block-heading ">Hello</h3>
//	<!-- /wp:heading -->
//
// blockmarkup produces this format with a fluent builder instead of string
// concatenation, keeping the rendered HTML and the JSON attributes in sync.
//
// # Core Concepts
//
// A Node is a renderable HTML fragment: a wrapper template with three
// placeholders, an ordered class list, ordered wrapper attributes and
// children.
//
//	n := blockmarkup.NewNode(`<ul class="%classes%" %attributes%>%children%</ul>`,
//	    blockmarkup.WithChildWrapper("<li>%children%</li>"),
//	    blockmarkup.WithText("one", "two"),
//	)
//
// %classes% is replaced with the space-joined class list, %attributes% with
// the key="value" pairs (the placeholder and its leading space disappear
// when there are none) and %children% with the rendered children.
//
// A Block is a Node plus a block name, an attribute tree and the delimiter
// comments. Self-closing blocks render only the comment.
//
//	b := blockmarkup.NewBlock("core/spacer",
//	    blockmarkup.SelfClosing(),
//	    blockmarkup.WithBlockAttributes(attrtree.New().Set("height", attrtree.String("2rem"))),
//	)
//	b.Render() // <!-- wp:spacer {"height":"2rem"} /-->
//
// # Attribute Mixins
//
// Editor features such as colors, typography and alignment are small
// generic mixins (AnchorSupport, TextColorSupport, FontSizeSupport, ...)
// embedded into concrete block types. Each mixin method mutates the block
// attribute tree and, where the editor does the same, the class list and
// inline style, then returns the concrete block for chaining:
//
//	blocks.NewParagraph("Hello").
//	    CustomTextColor("#111").
//	    FontStyle("italic").
//	    DropCap()
//
// The blocks package provides the core blocks built this way.
//
// # Rendering
//
// Derived state (heading tags, group layout, separator classes) is rebuilt
// by pre-render hooks each time a block renders, so rendering is
// idempotent and mutations between renders are always reflected.
//
// RenderBlocks passes the markup through an optional Processor, the
// equivalent of WordPress' do_blocks. Without one the raw markup is
// returned.
//
// # Error Handling
//
// Invalid editor input (unknown tag names, alignments, heading levels,
// layout setters called in the wrong layout) never fails: it falls back to
// a safe default or is ignored, and the fallback is logged at debug level
// on the block's logger. Errors are returned only for attribute values that
// cannot be serialized, writer failures and processor failures.
package blockmarkup
