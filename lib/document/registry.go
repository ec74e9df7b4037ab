package document

import (
	"fmt"
	"slices"
	"sync"

	bm "github.com/pthm/blockmarkup"
)

// Builder builds a block from its description. Children are built before
// their parent and passed in document order.
type Builder func(s Block, children []bm.Renderable, opts []bm.Option) (bm.Host, error)

// Registry maps document block types to builders.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns a registry holding the core block types.
func NewRegistry() *Registry {
	reg := &Registry{builders: make(map[string]Builder)}
	reg.Add(TypeParagraph, buildParagraph)
	reg.Add(TypeHeading, buildHeading)
	reg.Add(TypeGroup, buildGroup)
	reg.Add(TypeRow, buildRow)
	reg.Add(TypeSeparator, buildSeparator)
	return reg
}

// Add registers a builder for a block type.
// Panics on an empty type, a nil builder or a type collision.
func (reg *Registry) Add(blockType string, fn Builder) {
	if blockType == "" || fn == nil {
		panic("document: block type and builder are required")
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.builders[blockType]; exists {
		panic(fmt.Sprintf("document: block type collision for %q", blockType))
	}
	reg.builders[blockType] = fn
}

// Lookup returns the builder for a block type.
func (reg *Registry) Lookup(blockType string) (Builder, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	fn, ok := reg.builders[blockType]
	return fn, ok
}

// Types returns the registered block types, sorted.
func (reg *Registry) Types() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	types := make([]string, 0, len(reg.builders))
	for t := range reg.builders {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

var defaultRegistry = NewRegistry()

// Register adds a block type to the registry used by documents that do not
// set their own.
func Register(blockType string, fn Builder) {
	defaultRegistry.Add(blockType, fn)
}
