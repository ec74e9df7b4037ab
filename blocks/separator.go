package blocks

import (
	bm "github.com/pthm/blockmarkup"
)

const separatorWrapper = `<hr class="wp-block-separator %classes%" %attributes%/>`

const alphaChannelOpacityClass = "has-alpha-channel-opacity"

// Separator is the core/separator block.
type Separator struct {
	*bm.Block
	bm.AlignSupport[*Separator]
	bm.BackgroundColorSupport[*Separator]
	bm.CustomClassSupport[*Separator]

	alphaChannelOpacity bool
}

// NewSeparator returns a separator with alpha channel opacity enabled.
func NewSeparator(opts ...bm.Option) *Separator {
	opts = append([]bm.Option{bm.WithWrapper(separatorWrapper)}, opts...)
	s := &Separator{
		Block:               bm.NewBlock("core/separator", opts...),
		alphaChannelOpacity: true,
	}

	m := bm.Bind(s)
	s.AlignSupport = bm.AlignSupport[*Separator](m)
	s.BackgroundColorSupport = bm.BackgroundColorSupport[*Separator](m)
	s.CustomClassSupport = bm.CustomClassSupport[*Separator](m)

	s.OnRender(s.applyOpacity)
	return s
}

// HasAlphaChannelOpacity reports whether the separator color may be
// translucent.
func (s *Separator) HasAlphaChannelOpacity() bool {
	return s.alphaChannelOpacity
}

// SetAlphaChannelOpacity toggles the has-alpha-channel-opacity class.
func (s *Separator) SetAlphaChannelOpacity(enable bool) *Separator {
	s.alphaChannelOpacity = enable
	return s
}

func (s *Separator) applyOpacity() {
	if s.alphaChannelOpacity {
		s.AddClass(alphaChannelOpacityClass)
	} else {
		s.RemoveClass(alphaChannelOpacityClass)
	}
}
