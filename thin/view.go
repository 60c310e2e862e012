package thin

import "unsafe"

// View is the conventional (pointer, length) picture of a block, rebuilt on
// demand from a thin handle. It borrows the block: it is valid only while the
// handle it came from is live.
type View[H, T any] struct {
	Head *H
	Tail []T
}

// Len returns the number of tail elements.
func (v View[H, T]) Len() int { return len(v.Tail) }

// Erased is a thin handle with its types forgotten. Convert it back with the
// matching *FromErased function and the same type arguments; anything else is
// undefined behaviour.
type Erased unsafe.Pointer
