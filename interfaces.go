package blockmarkup

import "io"

// Renderable is anything that can appear in block markup: nodes, blocks and
// literal text.
//
// Render and Print must produce byte-identical output. Render builds the
// whole string; Print streams it piece by piece (wrapper open, each child,
// wrapper close) so large documents never need to be held in memory.
//
//	var sb strings.Builder
//	_ = heading.Print(&sb)
//	sb.String() == heading.Render() // always true
type Renderable interface {
	Render() string
	Print(w io.Writer) error
}

// Host is implemented by every block type that attribute mixins can be
// composed into. Core exposes the underlying Block whose attribute tree,
// class list and wrapper attributes the mixins mutate.
//
// Concrete blocks satisfy Host by embedding *Block:
//
//	type Paragraph struct {
//	    *blockmarkup.Block
//	    blockmarkup.AnchorSupport[*Paragraph]
//	}
type Host interface {
	Renderable
	Core() *Block
}

// Text is a literal child. It is written verbatim, without escaping, so it
// may carry inline HTML such as <strong> or <a>.
type Text string

// Render returns the text unchanged.
func (t Text) Render() string {
	return string(t)
}

// Print writes the text unchanged.
func (t Text) Print(w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}
