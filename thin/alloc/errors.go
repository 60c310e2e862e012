package alloc

import "errors"

var (
	// ErrPointers indicates a shape holding Go pointers was sent to an off-heap allocator.
	ErrPointers = errors.New("alloc: shape holds Go pointers")

	// ErrUnknownID indicates a block header names an allocator that was never registered.
	ErrUnknownID = errors.New("alloc: unknown allocator id")

	// ErrMapFailed indicates the operating system refused to map pages.
	ErrMapFailed = errors.New("alloc: map failed")

	// ErrShapeMismatch indicates the runtime laid out a block differently from its plan.
	ErrShapeMismatch = errors.New("alloc: runtime layout disagrees with plan")

	// ErrAlign indicates a block alignment the allocator cannot honour.
	ErrAlign = errors.New("alloc: unsupported alignment")
)
