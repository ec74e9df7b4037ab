package blockmarkup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component adapts a Renderable to a templ.Component so blocks can be
// embedded in templ templates:
//
//	templ Page(body blockmarkup.Renderable) {
//	    <main>
//	        @blockmarkup.Component(body)
//	    </main>
//	}
//
// The markup is streamed with Print and written unescaped. Rendering stops
// early if the context is cancelled before it starts.
func Component(r Renderable) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r == nil {
			return nil
		}
		return r.Print(w)
	})
}

// Fragment renders children one after another with no wrapper. It is the
// container for a sequence of top-level blocks.
func Fragment(children ...Renderable) *Node {
	return NewNode("", WithChildren(children...))
}
