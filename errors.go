package blockmarkup

import (
	"errors"

	"github.com/pthm/blockmarkup/lib/attrtree"
)

// Sentinel errors for block operations.
var (
	ErrUnsupportedValue = attrtree.ErrUnsupportedValue
	ErrProcessorFailed  = errors.New("blockmarkup: block processor failed")
)

// IsUnsupportedValue checks if err reports a value that cannot be stored in
// block attributes.
func IsUnsupportedValue(err error) bool {
	return errors.Is(err, ErrUnsupportedValue)
}

// IsProcessorError checks if err comes from a block processor.
func IsProcessorError(err error) bool {
	return errors.Is(err, ErrProcessorFailed)
}
