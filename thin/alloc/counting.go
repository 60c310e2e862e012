package alloc

import (
	"sync/atomic"
	"unsafe"
)

// Counting wraps an allocator and records how many blocks and bytes are live.
// Tests use it to prove every block is freed exactly once.
type Counting struct {
	inner Allocator

	allocs atomic.Int64
	frees  atomic.Int64
	bytes  atomic.Int64
}

// NewCounting returns a Counting allocator delegating to inner.
func NewCounting(inner Allocator) *Counting {
	return &Counting{inner: inner}
}

// Alloc implements Allocator.
func (c *Counting) Alloc(s Shape) (unsafe.Pointer, error) {
	p, err := c.inner.Alloc(s)
	if err != nil {
		return nil, err
	}
	c.allocs.Add(1)
	c.bytes.Add(int64(s.Plan.Footprint()))
	return p, nil
}

// Free implements Allocator.
func (c *Counting) Free(p unsafe.Pointer, s Shape) {
	c.frees.Add(1)
	c.bytes.Add(-int64(s.Plan.Footprint()))
	c.inner.Free(p, s)
}

// Allocs returns the number of successful allocations.
func (c *Counting) Allocs() int64 { return c.allocs.Load() }

// Frees returns the number of frees.
func (c *Counting) Frees() int64 { return c.frees.Load() }

// Live returns allocations minus frees.
func (c *Counting) Live() int64 { return c.allocs.Load() - c.frees.Load() }

// LiveBytes returns the footprint of all live blocks.
func (c *Counting) LiveBytes() int64 { return c.bytes.Load() }

var _ Allocator = (*Counting)(nil)
