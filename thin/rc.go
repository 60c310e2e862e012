package thin

import (
	"iter"
	"unsafe"
)

// Rc is a shared owner of a block whose reference count is updated with
// plain arithmetic. It is cheaper than Arc but confined to one goroutine:
// every handle to a block, and every Clone and Release on it, must stay on
// the goroutine that built it. Nothing checks this.
//
// The head and tail are read-only through an Rc while other handles exist;
// use GetMut for writes. Each handle value must be released exactly once.
type Rc[H, T any] struct {
	r raw[H, T]
}

// NewRc builds an Rc holding head and a copy of tail.
func NewRc[H, T any](head H, tail []T, opts ...Option) (Rc[H, T], error) {
	r, err := build(len(tail), 1, opts, fillSlice(head, tail))
	return Rc[H, T]{r: r}, err
}

// FromSeqRc is FromSeq for an Rc.
func FromSeqRc[H, T any](head H, n int, seq iter.Seq[T], opts ...Option) (Rc[H, T], error) {
	r, err := build(n, 1, opts, fillSeq(head, seq))
	return Rc[H, T]{r: r}, err
}

// GenerateRc is Generate for an Rc.
func GenerateRc[H, T any](head H, n int, fn func(i int) (T, error), opts ...Option) (Rc[H, T], error) {
	r, err := build(n, 1, opts, fillFunc(head, fn))
	return Rc[H, T]{r: r}, err
}

// DeriveRc is Derive for an Rc.
func DeriveRc[H, T any](tail []T, head func([]T) H, opts ...Option) (Rc[H, T], error) {
	r, err := build(len(tail), 1, opts, fillDerived(tail, head))
	return Rc[H, T]{r: r}, err
}

// RcFromErased restores an Rc from e. e must come from Rc.Erase with the
// same type arguments.
func RcFromErased[H, T any](e Erased) Rc[H, T] {
	return Rc[H, T]{r: raw[H, T]{p: unsafe.Pointer(e)}}
}

// IsNil reports whether rc holds no block.
func (rc Rc[H, T]) IsNil() bool { return rc.r.p == nil }

// Len returns the number of tail elements.
func (rc Rc[H, T]) Len() int {
	if rc.r.p == nil {
		return 0
	}
	return rc.r.len()
}

// Head returns a pointer to the shared head. Do not write through it.
func (rc Rc[H, T]) Head() *H { return rc.r.view().Head }

// Tail returns the shared tail. Do not write to it.
func (rc Rc[H, T]) Tail() []T { return rc.r.view().Tail }

// View returns the head and tail together. Do not write through it.
func (rc Rc[H, T]) View() View[H, T] { return rc.r.view() }

// Clone returns a new handle to the same block.
func (rc Rc[H, T]) Clone() Rc[H, T] {
	if rc.r.p != nil {
		retain[plainRefs](rc.r)
	}
	return rc
}

// Release drops this handle. The last handle drops the head and elements and
// frees the block. rc is empty afterwards.
func (rc *Rc[H, T]) Release() {
	if rc.r.p == nil {
		return
	}
	r := rc.r
	rc.r = raw[H, T]{}
	releaseRef[plainRefs](r)
}

// Drop implements Dropper, so a handle stored inside another block is
// released with it.
func (rc *Rc[H, T]) Drop() { rc.Release() }

// RefCount returns the number of live handles.
func (rc Rc[H, T]) RefCount() int64 {
	if rc.r.p == nil {
		return 0
	}
	return refCount[plainRefs](rc.r)
}

// Same reports whether rc and other share a block.
func (rc Rc[H, T]) Same(other Rc[H, T]) bool { return rc.r.p == other.r.p }

// GetMut returns a writable view when rc is the only handle.
func (rc Rc[H, T]) GetMut() (View[H, T], bool) {
	if !unique[plainRefs](rc.r) {
		return View[H, T]{}, false
	}
	return rc.r.view(), true
}

// Unwrap converts rc into a Box when it is the only handle. On success rc is
// empty; otherwise rc is unchanged.
func (rc *Rc[H, T]) Unwrap() (Box[H, T], bool) {
	if !unique[plainRefs](rc.r) {
		return Box[H, T]{}, false
	}
	r := rc.r
	rc.r = raw[H, T]{}
	return Box[H, T]{r: r}, true
}

// Erase gives up the types and returns the raw block address without
// touching the count. rc is empty afterwards.
func (rc *Rc[H, T]) Erase() Erased {
	p := rc.r.p
	rc.r = raw[H, T]{}
	return Erased(p)
}
