// Package alloc provides the block allocators behind thin handles.
//
// # Overview
//
// A thin handle is a single pointer, so everything needed to free its block
// must be recoverable from the block itself. The block header stores an ID,
// and the ID selects an Allocator from a small process-wide registry:
//
//	id := alloc.Register(alloc.NewCounting(alloc.Heap{}))
//	b, err := thin.New(head, tail, thin.WithAllocator(id))
//
// # Implementations
//
// Heap: GC-backed blocks (HeapID, the default)
//
//   - Pointer-free shapes are backed by a []uint64, which the collector never scans
//   - Shapes holding Go pointers are allocated as a reflect.StructOf value so the
//     collector sees an exact pointer map
//   - Free is a no-op; the collector reclaims the block once unreferenced
//
// Mapped: off-heap pages (MappedID)
//
//   - Anonymous mmap on unix, VirtualAlloc on windows
//   - Rejects shapes holding Go pointers with ErrPointers
//   - Free unmaps the pages; using a handle after Release faults
//
// Pooled: recycles pointer-free blocks by size class
//
//   - Footprints are rounded up to a class from a SizeClassConfig
//   - Freed blocks wait on a per-class free list and are zeroed on reuse
//   - Footprints past the largest class go straight to the backing allocator
//   - Trim hands cached blocks back to the backing allocator
//
// Counting: wraps another allocator and counts live blocks and bytes
//
// # Shapes
//
// Allocators receive a Shape: the layout.Plan plus the reflect types of the
// header, head and element. Allocators must return memory that is zeroed,
// aligned to Plan.Block.Align and at least Plan.Footprint() bytes long.
//
// # Thread Safety
//
// All allocators in this package and the registry are safe for concurrent use.
package alloc
