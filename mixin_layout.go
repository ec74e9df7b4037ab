package blockmarkup

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/pthm/blockmarkup/lib/attrtree"
)

// Alignments accepted by AlignSupport.
const (
	AlignmentLeft   = "left"
	AlignmentCenter = "center"
	AlignmentRight  = "right"
	AlignmentWide   = "wide"
	AlignmentFull   = "full"
	AlignmentNone   = "none"
)

var alignments = []string{AlignmentLeft, AlignmentCenter, AlignmentRight, AlignmentWide, AlignmentFull, AlignmentNone}

// AlignSupport adds block alignment.
type AlignSupport[T Host] Mixin[T]

// Align sets the align attribute. "none" removes it; unknown values are
// ignored.
func (m AlignSupport[T]) Align(value string) T {
	b := m.self.Core()
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !slices.Contains(alignments, normalized) {
		b.logger.Debug("unsupported alignment ignored",
			zap.String("block", b.name), zap.String("align", value))
		return m.self
	}
	if normalized == AlignmentNone {
		b.attrs.Delete("align")
	} else {
		b.attrs.Set("align", attrtree.String(normalized))
	}
	return m.self
}

// Alignment returns the current alignment, or "" when unset.
func (m AlignSupport[T]) Alignment() string {
	v, _ := m.self.Core().attrs.Get("align")
	s, _ := v.Str()
	return s
}

// AlignLeft floats the block left.
func (m AlignSupport[T]) AlignLeft() T { return m.Align(AlignmentLeft) }

// AlignCenter centers the block.
func (m AlignSupport[T]) AlignCenter() T { return m.Align(AlignmentCenter) }

// AlignRight floats the block right.
func (m AlignSupport[T]) AlignRight() T { return m.Align(AlignmentRight) }

// AlignWide widens the block to the theme's wide size.
func (m AlignSupport[T]) AlignWide() T { return m.Align(AlignmentWide) }

// AlignFull stretches the block to the full viewport width.
func (m AlignSupport[T]) AlignFull() T { return m.Align(AlignmentFull) }

// AlignNone clears the alignment.
func (m AlignSupport[T]) AlignNone() T { return m.Align(AlignmentNone) }

// Positions accepted by PositionSupport.
const (
	PositionDefault = "default"
	PositionSticky  = "sticky"
)

// stickyTop is the offset the editor stores for sticky blocks.
const stickyTop = "0px"

// PositionSupport adds the sticky position setting.
type PositionSupport[T Host] Mixin[T]

// Position sets style.position. "default" removes it, "sticky" stores the
// type and a 0px top offset; unknown values are ignored.
func (m PositionSupport[T]) Position(value string) T {
	b := m.self.Core()
	switch strings.ToLower(strings.TrimSpace(value)) {
	case PositionDefault:
		b.attrs.UnsetPath("style", "position")
	case PositionSticky:
		b.attrs.SetPath([]string{"style", "position", "type"}, attrtree.String(PositionSticky))
		b.attrs.SetPath([]string{"style", "position", "top"}, attrtree.String(stickyTop))
	default:
		b.logger.Debug("unsupported position ignored",
			zap.String("block", b.name), zap.String("position", value))
	}
	return m.self
}

// PositionType returns "sticky" for sticky blocks and "default" otherwise.
func (m PositionSupport[T]) PositionType() string {
	v, _ := m.self.Core().attrs.Lookup("style", "position", "type")
	if s, ok := v.Str(); ok {
		return s
	}
	return PositionDefault
}

// PositionDefault clears sticky positioning.
func (m PositionSupport[T]) PositionDefault() T { return m.Position(PositionDefault) }

// PositionSticky makes the block stick to the top of the viewport.
func (m PositionSupport[T]) PositionSticky() T { return m.Position(PositionSticky) }

// Self-stretch modes of a flex child.
const (
	SelfStretchFit   = "fit"
	SelfStretchFill  = "fill"
	SelfStretchFixed = "fixed"
)

// FlexWidthSupport adds the width setting of blocks placed in a flex
// container.
type FlexWidthSupport[T Host] Mixin[T]

// Fit sizes the block to its content.
func (m FlexWidthSupport[T]) Fit() T {
	return m.selfStretch(SelfStretchFit, attrtree.Null())
}

// Grow lets the block fill the available space.
func (m FlexWidthSupport[T]) Grow() T {
	return m.selfStretch(SelfStretchFill, attrtree.Null())
}

// Fixed gives the block a fixed basis, e.g. "250px".
func (m FlexWidthSupport[T]) Fixed(size string) T {
	return m.selfStretch(SelfStretchFixed, attrtree.String(size))
}

// Width is an alias of Fixed.
func (m FlexWidthSupport[T]) Width(size string) T {
	return m.Fixed(size)
}

func (m FlexWidthSupport[T]) selfStretch(mode string, size attrtree.Value) T {
	b := m.self.Core()
	b.attrs.SetPath([]string{"style", "layout", "selfStretch"}, attrtree.String(mode))
	b.attrs.SetPath([]string{"style", "layout", "flexSize"}, size)
	return m.self
}
