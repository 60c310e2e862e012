package alloc

import (
	"fmt"
	"math/bits"
	"reflect"
	"sync"
	"unsafe"

	"github.com/joshuapare/thindst/thin/layout"
)

// wordAlign is the alignment of a []uint64 backing array's first element.
const wordAlign = 8

// Heap allocates blocks from the Go heap.
type Heap struct{}

// Alloc implements Allocator.
func (Heap) Alloc(s Shape) (unsafe.Pointer, error) {
	if !s.HasPointers() {
		return allocWords(s)
	}

	typ, err := blockType(s)
	if err != nil {
		return nil, err
	}
	return reflect.New(typ).UnsafePointer(), nil
}

// Free implements Allocator. The collector reclaims the block once the last
// handle referencing it is gone.
func (Heap) Free(unsafe.Pointer, Shape) {}

// allocWords backs a pointer-free block with a []uint64. The first word of a
// heap allocation is 8-byte aligned on every platform, which covers the
// alignment of any pointer-free Go type.
func allocWords(s Shape) (unsafe.Pointer, error) {
	if s.Plan.Block.Align > wordAlign {
		return nil, fmt.Errorf("%w: %d", ErrAlign, s.Plan.Block.Align)
	}
	size := s.Plan.Footprint()
	words := make([]uint64, (size+wordAlign-1)/wordAlign)
	return unsafe.Pointer(unsafe.SliceData(words)), nil
}

type blockKey struct {
	header, head, elem reflect.Type
	capacity           int
}

var blockTypes sync.Map // blockKey -> reflect.Type

// blockType builds struct { Header; Head; Tail [c]Elem } so the collector
// scans exactly the words that hold pointers. c is the tail length rounded up
// by blockCapacity: reflect never frees the types it creates, so the set of
// array lengths must stay bounded. The runtime lays structs out with the same
// rules as layout.Combine; a disagreement is reported rather than trusted.
func blockType(s Shape) (reflect.Type, error) {
	c := blockCapacity(s.Plan)
	key := blockKey{header: s.Header, head: s.Head, elem: s.Elem, capacity: c}
	if t, ok := blockTypes.Load(key); ok {
		return t.(reflect.Type), nil
	}

	t := reflect.StructOf([]reflect.StructField{
		{Name: "Header", Type: s.Header},
		{Name: "Head", Type: s.Head},
		{Name: "Tail", Type: reflect.ArrayOf(c, s.Elem)},
	})

	switch {
	case t.Field(1).Offset != s.Plan.HeadOffset:
		return nil, fmt.Errorf("%w: head at %d, planned %d", ErrShapeMismatch, t.Field(1).Offset, s.Plan.HeadOffset)
	case t.Field(2).Offset != s.Plan.TailOffset:
		return nil, fmt.Errorf("%w: tail at %d, planned %d", ErrShapeMismatch, t.Field(2).Offset, s.Plan.TailOffset)
	case t.Size() < s.Plan.Block.Size:
		return nil, fmt.Errorf("%w: size %d, planned %d", ErrShapeMismatch, t.Size(), s.Plan.Block.Size)
	}

	actual, _ := blockTypes.LoadOrStore(key, t)
	return actual.(reflect.Type), nil
}

// exactCapacity is the largest tail length that gets a type of its own.
const exactCapacity = 8

// blockCapacity rounds n up to one of four steps per power of two, so a
// pointerful block wastes at most a quarter of its tail and each element type
// needs at most a few hundred block types. Lengths whose rounded array would
// not fit in a block keep their exact length.
func blockCapacity(p layout.Plan) int {
	n := p.Len
	if n <= exactCapacity {
		return n
	}
	shift := bits.Len(uint(n-1)) - 3
	c := ((n-1)>>shift + 1) << shift
	if _, err := layout.Combine(p.Header, p.Head, p.Elem, c); err != nil {
		return n
	}
	return c
}

var _ Allocator = Heap{}
