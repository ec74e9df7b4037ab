package blockmarkup

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Processor turns block markup into final page HTML, the role WordPress'
// do_blocks plays. It is supplied by the host environment.
type Processor interface {
	ProcessBlocks(markup string) (string, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(markup string) (string, error)

// ProcessBlocks calls f.
func (f ProcessorFunc) ProcessBlocks(markup string) (string, error) {
	return f(markup)
}

// RenderBlocks renders the block and passes the markup through p. A nil
// processor returns the markup unchanged. Processor failures are wrapped
// with ErrProcessorFailed.
func (b *Block) RenderBlocks(p Processor) (string, error) {
	return ProcessRenderable(b, p, b.logger)
}

// PrintBlocks writes the result of RenderBlocks to w.
func (b *Block) PrintBlocks(w io.Writer, p Processor) error {
	out, err := b.RenderBlocks(p)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// ProcessRenderable renders r and passes the markup through p, for
// renderables that are not blocks, such as a document of several blocks.
func ProcessRenderable(r Renderable, p Processor, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	markup := r.Render()
	if p == nil {
		logger.Debug("no block processor, returning raw markup")
		return markup, nil
	}
	out, err := p.ProcessBlocks(markup)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProcessorFailed, err)
	}
	return out, nil
}
