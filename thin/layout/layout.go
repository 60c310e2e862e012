package layout

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/thindst/internal/buf"
)

// MaxSize is the largest block size the calculator will produce.
const MaxSize = buf.MaxSize

// Layout is the size and alignment of a piece of memory.
//
// A valid Layout has a power-of-two Align and a Size that, rounded up to Align,
// does not exceed MaxSize.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// New validates size and align and returns the corresponding Layout.
func New(size, align uintptr) (Layout, error) {
	if !buf.IsPow2(align) {
		return Layout{}, fmt.Errorf("%w: %d", ErrBadAlign, align)
	}
	if _, ok := buf.AlignUp(size, align); !ok {
		return Layout{}, fmt.Errorf("%w: size=%d align=%d", ErrOverflow, size, align)
	}
	return Layout{Size: size, Align: align}, nil
}

// Of returns the layout of T as the compiler lays it out.
func Of[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// FromType returns the layout of t.
func FromType(t reflect.Type) Layout {
	return Layout{Size: t.Size(), Align: uintptr(t.Align())}
}

// PaddingNeededFor returns the bytes needed after l.Size to reach a multiple of align.
func (l Layout) PaddingNeededFor(align uintptr) uintptr {
	return buf.PaddingFor(l.Size, align)
}

// PadToAlign returns l with Size rounded up to a multiple of Align.
// Valid layouts never overflow here.
func (l Layout) PadToAlign() Layout {
	return Layout{Size: l.Size + l.PaddingNeededFor(l.Align), Align: l.Align}
}

// Extend appends next after l as a C struct would, returning the combined layout
// and the offset at which next begins. The result is not padded to its own
// alignment; call PadToAlign once the last field has been added.
func (l Layout) Extend(next Layout) (Layout, uintptr, error) {
	align := max(l.Align, next.Align)

	offset, ok := buf.AddOverflowSafe(l.Size, l.PaddingNeededFor(next.Align))
	if !ok {
		return Layout{}, 0, fmt.Errorf("%w: extend offset", ErrOverflow)
	}
	size, ok := buf.AddOverflowSafe(offset, next.Size)
	if !ok {
		return Layout{}, 0, fmt.Errorf("%w: extend size=%d+%d", ErrOverflow, offset, next.Size)
	}

	out, err := New(size, align)
	if err != nil {
		return Layout{}, 0, err
	}
	return out, offset, nil
}

// Array returns the layout of n consecutive elem values.
func Array(elem Layout, n int) (Layout, error) {
	if n < 0 {
		return Layout{}, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	stride := elem.PadToAlign().Size
	size, ok := buf.MulOverflowSafe(uintptr(n), stride)
	if !ok {
		return Layout{}, fmt.Errorf("%w: count=%d * stride=%d", ErrOverflow, n, stride)
	}
	return New(size, elem.Align)
}
