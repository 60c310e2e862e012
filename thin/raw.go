package thin

import (
	"unsafe"

	"github.com/joshuapare/thindst/thin/alloc"
	"github.com/joshuapare/thindst/thin/layout"
)

// raw is the thin pointer: the address of a block built for exactly H and T.
//
// Its methods reach into the block without any checks. Only the handle types
// in this package call them, and each call site must hold a live handle whose
// block was built with the same H and T.
type raw[H, T any] struct {
	p unsafe.Pointer
}

func offsets[H, T any]() (headOff, tailOff uintptr) {
	return layout.Offsets(headerLayout, layout.Of[H](), layout.Of[T]())
}

func (r raw[H, T]) header() *header {
	return headerOf(r.p)
}

func (r raw[H, T]) len() int {
	return int(r.header().len)
}

func (r raw[H, T]) head() *H {
	headOff, _ := offsets[H, T]()
	return (*H)(unsafe.Add(r.p, headOff))
}

func (r raw[H, T]) tail() []T {
	_, tailOff := offsets[H, T]()
	return unsafe.Slice((*T)(unsafe.Add(r.p, tailOff)), r.len())
}

func (r raw[H, T]) view() View[H, T] {
	if r.p == nil {
		return View[H, T]{}
	}
	return View[H, T]{Head: r.head(), Tail: r.tail()}
}

// destroy drops the head, then every element in index order, then frees the block.
func (r raw[H, T]) destroy() {
	dropValue(r.head())
	dropSlice(r.tail())
	r.free()
}

// forget zeroes the values without dropping them, for when ownership of the
// values has moved elsewhere, then frees the block.
func (r raw[H, T]) forget() {
	var zero H
	*r.head() = zero
	clear(r.tail())
	r.free()
}

func (r raw[H, T]) free() {
	h := r.header()
	shape, err := shapeOf[H, T](int(h.len))
	if err != nil {
		// The same computation succeeded when the block was built.
		panic(err)
	}
	alloc.MustLookup(h.src).Free(r.p, shape)
}
