// Package thin stores a head value and a fixed-length tail of elements in one
// allocation and hands it out through one-word handles.
//
// # Overview
//
// A Go slice is a fat pointer: address, length and capacity. A struct holding
// a head plus a []T costs two allocations and four words per reference. A
// thin handle is a single unsafe.Pointer to a block laid out as
//
//	[header][head H][tail T x len]
//
// and the length is read back from the header on every access.
//
// # Handles
//
//   - Box: exclusive owner. Release drops the head, then each element in
//     index order, then frees the block.
//   - Arc: shared owner with an atomic reference count. Safe to pass between
//     goroutines; the last Release destroys the block.
//   - Rc: shared owner with a plain reference count. Cheaper than Arc, but
//     every handle to a block must stay on one goroutine.
//
// All three share the header layout, so Box.Share, Box.ShareLocal and
// Arc.Unwrap convert between them without copying.
//
// # Construction
//
//	b, err := thin.New(Header{Kind: 1}, []uint32{1, 2, 3})
//	if err != nil {
//	    return err // thin.ErrOverflow: nothing was allocated
//	}
//	defer b.Release()
//
//	v := b.View()
//	fmt.Println(v.Head.Kind, v.Tail)
//
// Generate and FromSeq produce elements one at a time. If production fails
// at index i, the elements before i are dropped in order, then the head, and
// the block is freed before the error is returned. Panics roll back the same
// way before they continue.
//
// # Dropping
//
// Go has no destructors. A value is dropped by calling Drop if its pointer
// implements Dropper, then zeroing it so the collector can reclaim what it
// referenced. Cloner customises Box.Clone and the copying path of IntoFat.
// Box, Arc and Rc implement both, so a block may hold handles to other blocks
// and releasing or cloning it releases or clones them.
//
// # Allocation
//
// Blocks come from the allocator selected with WithAllocator (default
// alloc.HeapID). Heap blocks whose types hold Go pointers are allocated with
// an exact pointer map; see package alloc for off-heap blocks.
//
// # Contract
//
// The following are undefined behaviour and are not detected reliably:
//
//   - using a handle, View, or element pointer after the block was released
//   - copying a Box or an Arc/Rc handle value without Clone and releasing both
//   - restoring an Erased handle with different type arguments
//   - using Rc handles to one block from more than one goroutine
//   - writing through an Arc or Rc while other handles exist
package thin
