package thin

import (
	"iter"
	"unsafe"
)

// Arc is a shared owner of a block whose reference count is updated
// atomically. Arc handles may be passed between goroutines and read
// concurrently.
//
// The head and tail are read-only through an Arc: writing through Head, Tail
// or View while other handles exist is a data race. Use GetMut, which only
// succeeds for the sole handle. Each handle value must be released exactly
// once; copying an Arc without Clone is undefined behaviour.
type Arc[H, T any] struct {
	r raw[H, T]
}

// NewArc builds an Arc holding head and a copy of tail.
func NewArc[H, T any](head H, tail []T, opts ...Option) (Arc[H, T], error) {
	r, err := build(len(tail), 1, opts, fillSlice(head, tail))
	return Arc[H, T]{r: r}, err
}

// FromSeqArc is FromSeq for an Arc.
func FromSeqArc[H, T any](head H, n int, seq iter.Seq[T], opts ...Option) (Arc[H, T], error) {
	r, err := build(n, 1, opts, fillSeq(head, seq))
	return Arc[H, T]{r: r}, err
}

// GenerateArc is Generate for an Arc.
func GenerateArc[H, T any](head H, n int, fn func(i int) (T, error), opts ...Option) (Arc[H, T], error) {
	r, err := build(n, 1, opts, fillFunc(head, fn))
	return Arc[H, T]{r: r}, err
}

// DeriveArc is Derive for an Arc.
func DeriveArc[H, T any](tail []T, head func([]T) H, opts ...Option) (Arc[H, T], error) {
	r, err := build(len(tail), 1, opts, fillDerived(tail, head))
	return Arc[H, T]{r: r}, err
}

// ArcFromErased restores an Arc from e. e must come from Arc.Erase with the
// same type arguments.
func ArcFromErased[H, T any](e Erased) Arc[H, T] {
	return Arc[H, T]{r: raw[H, T]{p: unsafe.Pointer(e)}}
}

// IsNil reports whether a holds no block.
func (a Arc[H, T]) IsNil() bool { return a.r.p == nil }

// Len returns the number of tail elements.
func (a Arc[H, T]) Len() int {
	if a.r.p == nil {
		return 0
	}
	return a.r.len()
}

// Head returns a pointer to the shared head. Do not write through it.
func (a Arc[H, T]) Head() *H { return a.r.view().Head }

// Tail returns the shared tail. Do not write to it.
func (a Arc[H, T]) Tail() []T { return a.r.view().Tail }

// View returns the head and tail together. Do not write through it.
func (a Arc[H, T]) View() View[H, T] { return a.r.view() }

// Clone returns a new handle to the same block.
func (a Arc[H, T]) Clone() Arc[H, T] {
	if a.r.p != nil {
		retain[atomicRefs](a.r)
	}
	return a
}

// Release drops this handle. The last handle drops the head and elements and
// frees the block. a is empty afterwards.
func (a *Arc[H, T]) Release() {
	if a.r.p == nil {
		return
	}
	r := a.r
	a.r = raw[H, T]{}
	releaseRef[atomicRefs](r)
}

// Drop implements Dropper, so a handle stored inside another block is
// released with it.
func (a *Arc[H, T]) Drop() { a.Release() }

// RefCount returns the number of live handles. Other goroutines may change
// it at any moment.
func (a Arc[H, T]) RefCount() int64 {
	if a.r.p == nil {
		return 0
	}
	return refCount[atomicRefs](a.r)
}

// Same reports whether a and other share a block.
func (a Arc[H, T]) Same(other Arc[H, T]) bool { return a.r.p == other.r.p }

// GetMut returns a writable view when a is the only handle.
func (a Arc[H, T]) GetMut() (View[H, T], bool) {
	if !unique[atomicRefs](a.r) {
		return View[H, T]{}, false
	}
	return a.r.view(), true
}

// Unwrap converts a into a Box when it is the only handle. On success a is
// empty; otherwise a is unchanged.
func (a *Arc[H, T]) Unwrap() (Box[H, T], bool) {
	if !unique[atomicRefs](a.r) {
		return Box[H, T]{}, false
	}
	r := a.r
	a.r = raw[H, T]{}
	return Box[H, T]{r: r}, true
}

// Erase gives up the types and returns the raw block address without
// touching the count. a is empty afterwards.
func (a *Arc[H, T]) Erase() Erased {
	p := a.r.p
	a.r = raw[H, T]{}
	return Erased(p)
}
