package thin

import (
	"reflect"
	"unsafe"

	"github.com/joshuapare/thindst/thin/alloc"
	"github.com/joshuapare/thindst/thin/layout"
)

// header is stored at offset 0 of every block. Its layout does not depend on
// the element count, so a bare block address is enough to find it.
type header struct {
	// refs counts live shared handles; exclusive handles keep it at 1.
	// It is the first word so it is 64-bit aligned on 32-bit platforms.
	refs int64

	// len is the number of initialized tail elements. Written once, before
	// the block is reachable through any handle.
	len uintptr

	// src is the allocator that owns the block.
	src alloc.ID
}

var (
	headerType   = reflect.TypeFor[header]()
	headerLayout = layout.Of[header]()
)

func headerOf(p unsafe.Pointer) *header {
	return (*header)(p)
}

// shapeOf computes the shape of a block holding n elements. It is the same
// pure computation at construction and at release.
func shapeOf[H, T any](n int) (alloc.Shape, error) {
	plan, err := layout.Combine(headerLayout, layout.Of[H](), layout.Of[T](), n)
	if err != nil {
		return alloc.Shape{}, err
	}
	return alloc.Shape{
		Plan:   plan,
		Header: headerType,
		Head:   reflect.TypeFor[H](),
		Elem:   reflect.TypeFor[T](),
	}, nil
}

// HeaderLayout returns the layout of the metadata every block starts with.
func HeaderLayout() layout.Layout { return headerLayout }

// PlanFor returns the layout of a block holding head H and n elements of T.
func PlanFor[H, T any](n int) (layout.Plan, error) {
	s, err := shapeOf[H, T](n)
	return s.Plan, err
}
