package blockmarkup

// Mixin binds attribute mixins to the concrete block type T so that mixin
// methods return T and calls chain naturally.
//
// Every mixin (AnchorSupport, TextColorSupport, ...) is a distinct type with
// the same layout as Mixin, so one bound value converts to each of them:
//
//	p := &Paragraph{Block: blockmarkup.NewBlock("core/paragraph")}
//	m := blockmarkup.Bind(p)
//	p.AnchorSupport = blockmarkup.AnchorSupport[*Paragraph](m)
//	p.DropCapSupport = blockmarkup.DropCapSupport[*Paragraph](m)
//
// A zero mixin (never bound) panics when used.
type Mixin[T Host] struct {
	self T
}

// Bind returns a Mixin for self.
func Bind[T Host](self T) Mixin[T] {
	return Mixin[T]{self: self}
}

// presetClass builds the class WordPress derives from a preset slug, e.g.
// has-primary-background-color.
func presetClass(slug, suffix string) string {
	return "has-" + slug + "-" + suffix
}
