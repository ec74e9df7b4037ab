// Package minify provides a block processor that minifies rendered block
// markup while keeping the block comments the editor parses.
package minify

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const mediaType = "text/html"

// Processor minifies block markup. It implements blockmarkup.Processor.
type Processor struct {
	m *minify.M
}

var (
	defaultProcessor *Processor
	once             sync.Once
)

// Default returns a shared Processor with the settings of New.
func Default() *Processor {
	once.Do(func() {
		defaultProcessor = New()
	})
	return defaultProcessor
}

// New returns a Processor. Comments, end tags, quotes and default attribute
// values are kept so the output still parses as block markup.
func New() *Processor {
	m := minify.New()
	m.Add(mediaType, &html.Minifier{
		KeepComments:        true,
		KeepEndTags:         true,
		KeepQuotes:          true,
		KeepDefaultAttrVals: true,
		KeepDocumentTags:    true,
	})
	return &Processor{m: m}
}

// ProcessBlocks returns the minified markup.
func (p *Processor) ProcessBlocks(markup string) (string, error) {
	return p.m.String(mediaType, markup)
}
