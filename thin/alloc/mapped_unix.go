//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package alloc

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/joshuapare/thindst/internal/logger"
)

// Mapped allocates pointer-free blocks outside the Go heap with anonymous mmap.
type Mapped struct{}

// Alloc implements Allocator.
func (Mapped) Alloc(s Shape) (unsafe.Pointer, error) {
	if s.HasPointers() {
		return nil, fmt.Errorf("%w: %s", ErrPointers, s)
	}

	size := mappedSize(s)
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		logger.Warn("alloc: mmap failed", zap.Int("size", size), zap.Error(err))
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrMapFailed, size, err)
	}
	return unsafe.Pointer(unsafe.SliceData(data)), nil
}

// Free implements Allocator. The mapping size is recomputed from the shape,
// which is a pure function of the element count stored in the block.
func (Mapped) Free(p unsafe.Pointer, s Shape) {
	size := mappedSize(s)
	if err := unix.Munmap(unsafe.Slice((*byte)(p), size)); err != nil {
		logger.Error("alloc: munmap failed", zap.Int("size", size), zap.Error(err))
	}
}

// mappedSize rounds the footprint up to whole pages.
func mappedSize(s Shape) int {
	page := uintptr(unix.Getpagesize())
	size := s.Plan.Footprint()
	return int((size + page - 1) &^ (page - 1))
}

var _ Allocator = Mapped{}
