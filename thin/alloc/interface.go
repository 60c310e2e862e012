package alloc

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/joshuapare/thindst/thin/layout"
)

// Shape describes one block: its plan and the Go types stored in it.
type Shape struct {
	Plan   layout.Plan
	Header reflect.Type
	Head   reflect.Type
	Elem   reflect.Type
}

// HasPointers reports whether any value in the block holds a Go pointer.
func (s Shape) HasPointers() bool {
	if hasPointers(s.Header) || hasPointers(s.Head) {
		return true
	}
	return s.Plan.Len > 0 && hasPointers(s.Elem)
}

func (s Shape) String() string {
	return fmt.Sprintf("%v+%v+[%d]%v %s", s.Header, s.Head, s.Plan.Len, s.Elem, s.Plan)
}

// Allocator provides and reclaims combined blocks.
//
// Implementations:
//   - Heap: GC-backed, the default
//   - Mapped: off-heap pages for pointer-free shapes
//   - Pooled: size-class free lists in front of another allocator
//   - Counting: instrumentation wrapper
type Allocator interface {
	// Alloc returns zeroed memory for s, aligned to s.Plan.Block.Align and at
	// least s.Plan.Footprint() bytes long.
	Alloc(s Shape) (unsafe.Pointer, error)

	// Free releases a block previously returned by Alloc for the same shape.
	// The caller has already zeroed every value in it.
	Free(p unsafe.Pointer, s Shape)
}

var pointerCache sync.Map // reflect.Type -> bool

func hasPointers(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if v, ok := pointerCache.Load(t); ok {
		return v.(bool)
	}
	v := scanPointers(t)
	pointerCache.Store(t, v)
	return v
}

func scanPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Slice, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return t.Len() > 0 && scanPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if scanPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
