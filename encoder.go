package blockmarkup

import (
	"github.com/pthm/blockmarkup/lib/encoding"
)

// Snapshotter is an alias for encoding.Snapshotter for convenience.
type Snapshotter = encoding.Snapshotter

// Fingerprint returns a stable digest of everything that affects the
// rendered output of s. Two blocks with the same fingerprint render the
// same markup.
func Fingerprint(s Snapshotter) (string, error) {
	return encoding.Digest(s)
}

// Snapshot describes the node's render state as plain data.
func (n *Node) Snapshot() map[string]any {
	children := make([]any, 0, len(n.children))
	for _, c := range n.children {
		switch c := c.(type) {
		case Snapshotter:
			children = append(children, c.Snapshot())
		case nil:
		default:
			children = append(children, c.Render())
		}
	}
	attrs := make([]any, 0, len(n.attrs))
	for _, a := range n.attrs {
		attrs = append(attrs, []string{a.key, a.value})
	}
	return map[string]any{
		"wrapper":      n.wrapper,
		"childWrapper": n.childWrapper,
		"classes":      n.Classes(),
		"attributes":   attrs,
		"children":     children,
	}
}

// Snapshot describes the block's render state as plain data. Pre-render
// hooks run first so derived state is included.
func (b *Block) Snapshot() map[string]any {
	b.runHooks()
	return map[string]any{
		"name":        b.name,
		"selfClosing": b.selfClosing,
		"attributes":  b.attrs,
		"comment":     b.Formatter().OpeningComment(),
		"node":        b.Node.Snapshot(),
	}
}
