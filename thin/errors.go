package thin

import (
	"errors"
	"fmt"

	"github.com/joshuapare/thindst/thin/layout"
)

var (
	// ErrOverflow indicates the requested block would exceed the largest
	// representable allocation. Nothing was allocated.
	ErrOverflow = layout.ErrOverflow

	// ErrShortTail indicates an element source ended before the promised count.
	ErrShortTail = errors.New("thin: element source yielded too few elements")

	// ErrLongTail indicates an element source kept yielding past the promised count.
	ErrLongTail = errors.New("thin: element source yielded too many elements")

	// ErrRefOverflow is the panic value when a shared block is cloned past MaxRefs.
	ErrRefOverflow = errors.New("thin: reference count overflow")

	// ErrReleased is the panic value when a shared block is released more
	// times than it was retained.
	ErrReleased = errors.New("thin: block already released")
)

// ElementError reports the element whose production failed. The block was
// rolled back before it was returned.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("thin: element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
