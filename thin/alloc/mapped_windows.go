//go:build windows

package alloc

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/joshuapare/thindst/internal/logger"
)

// Mapped allocates pointer-free blocks outside the Go heap with VirtualAlloc.
type Mapped struct{}

// Alloc implements Allocator.
func (Mapped) Alloc(s Shape) (unsafe.Pointer, error) {
	if s.HasPointers() {
		return nil, fmt.Errorf("%w: %s", ErrPointers, s)
	}

	size := s.Plan.Footprint()
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		logger.Warn("alloc: VirtualAlloc failed", zap.Uintptr("size", size), zap.Error(err))
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrMapFailed, size, err)
	}
	return unsafe.Pointer(addr), nil
}

// Free implements Allocator.
func (Mapped) Free(p unsafe.Pointer, _ Shape) {
	if err := windows.VirtualFree(uintptr(p), 0, windows.MEM_RELEASE); err != nil {
		logger.Error("alloc: VirtualFree failed", zap.Error(err))
	}
}

var _ Allocator = Mapped{}
