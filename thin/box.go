package thin

import (
	"iter"
	"unsafe"
)

// Box is the exclusive owner of a block: one head H and a fixed number of
// tail elements T in a single allocation, held through a one-word pointer.
//
// A Box must have exactly one owner. Copying a Box value and using or
// releasing both copies is undefined behaviour, as is any use after Release.
// The zero Box is empty: IsNil reports true and accessors return zero values.
type Box[H, T any] struct {
	r raw[H, T]
}

// New builds a Box holding head and a copy of tail. Ownership of any
// resources the values hold passes to the Box.
func New[H, T any](head H, tail []T, opts ...Option) (Box[H, T], error) {
	r, err := build(len(tail), 1, opts, fillSlice(head, tail))
	return Box[H, T]{r: r}, err
}

// MustNew is New for callers that treat layout overflow as a bug.
func MustNew[H, T any](head H, tail []T, opts ...Option) Box[H, T] {
	b, err := New(head, tail, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// FromSeq builds a Box whose tail is the n elements yielded by seq.
// A seq that yields fewer or more than n elements fails with ErrShortTail or
// ErrLongTail; the written elements and head are dropped and the block freed.
func FromSeq[H, T any](head H, n int, seq iter.Seq[T], opts ...Option) (Box[H, T], error) {
	r, err := build(n, 1, opts, fillSeq(head, seq))
	return Box[H, T]{r: r}, err
}

// Generate builds a Box whose element i is fn(i). If fn fails at index i, the
// elements before i are dropped in order, then the head, and the block is
// freed; the error is an *ElementError. A panic in fn is handled the same way
// before it continues.
func Generate[H, T any](head H, n int, fn func(i int) (T, error), opts ...Option) (Box[H, T], error) {
	r, err := build(n, 1, opts, fillFunc(head, fn))
	return Box[H, T]{r: r}, err
}

// Derive builds a Box from tail and a head computed from the stored tail.
// The head function sees the elements in their final location.
func Derive[H, T any](tail []T, head func([]T) H, opts ...Option) (Box[H, T], error) {
	r, err := build(len(tail), 1, opts, fillDerived(tail, head))
	return Box[H, T]{r: r}, err
}

// BoxFromErased restores a Box from e. e must come from Box.Erase with the
// same type arguments.
func BoxFromErased[H, T any](e Erased) Box[H, T] {
	return Box[H, T]{r: raw[H, T]{p: unsafe.Pointer(e)}}
}

// IsNil reports whether b holds no block.
func (b Box[H, T]) IsNil() bool { return b.r.p == nil }

// Len returns the number of tail elements.
func (b Box[H, T]) Len() int {
	if b.r.p == nil {
		return 0
	}
	return b.r.len()
}

// Head returns a pointer to the head inside the block.
func (b Box[H, T]) Head() *H { return b.r.view().Head }

// Tail returns the tail elements inside the block. The slice aliases the
// block; elements may be assigned, but the length is fixed.
func (b Box[H, T]) Tail() []T { return b.r.view().Tail }

// View returns the head and tail together.
func (b Box[H, T]) View() View[H, T] { return b.r.view() }

// Release drops the head, then each element in index order, and frees the
// block. Releasing an empty Box is a no-op.
func (b *Box[H, T]) Release() {
	if b.r.p == nil {
		return
	}
	r := b.r
	b.r = raw[H, T]{}
	r.destroy()
}

// Clone builds an independent Box with the same allocator. Values that
// implement Cloner are cloned, others are copied. If cloning panics, the
// partially built copy is rolled back before the panic continues. Clone
// panics if the allocator cannot provide the block.
func (b Box[H, T]) Clone() Box[H, T] {
	if b.r.p == nil {
		return Box[H, T]{}
	}
	r, err := build(b.r.len(), 1, []Option{WithAllocator(b.r.header().src)}, fillClone(b.r))
	if err != nil {
		panic(err)
	}
	return Box[H, T]{r: r}
}

// Drop implements Dropper, so a Box stored inside another block is released
// with it.
func (b *Box[H, T]) Drop() { b.Release() }

// Share converts b into an Arc without copying. b is empty afterwards.
func (b *Box[H, T]) Share() Arc[H, T] {
	r := b.r
	b.r = raw[H, T]{}
	return Arc[H, T]{r: r}
}

// ShareLocal converts b into an Rc without copying. b is empty afterwards.
func (b *Box[H, T]) ShareLocal() Rc[H, T] {
	r := b.r
	b.r = raw[H, T]{}
	return Rc[H, T]{r: r}
}

// Erase gives up the types and returns the raw block address. b is empty
// afterwards; the block leaks unless restored with BoxFromErased.
func (b *Box[H, T]) Erase() Erased {
	p := b.r.p
	b.r = raw[H, T]{}
	return Erased(p)
}
