//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package alloc

import (
	"fmt"
	"unsafe"
)

// Mapped falls back to pointer-free heap words where the platform offers no
// anonymous mappings. It keeps the same pointer restriction as the mapped
// implementations so code behaves identically across platforms.
type Mapped struct{}

// Alloc implements Allocator.
func (Mapped) Alloc(s Shape) (unsafe.Pointer, error) {
	if s.HasPointers() {
		return nil, fmt.Errorf("%w: %s", ErrPointers, s)
	}
	return allocWords(s)
}

// Free implements Allocator.
func (Mapped) Free(unsafe.Pointer, Shape) {}

var _ Allocator = Mapped{}
