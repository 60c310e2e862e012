package alloc

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	"github.com/joshuapare/thindst/internal/logger"
	"github.com/joshuapare/thindst/thin/layout"
)

// Pooled recycles freed pointer-free blocks through per-size-class free
// lists in front of a backing allocator. Footprints past the last class go
// straight to the backing allocator.
//
// Pooled blocks are word aligned; shapes needing more fail with ErrAlign.
type Pooled struct {
	backing Allocator
	table   *sizeClassTable

	mu   sync.Mutex
	free [][]unsafe.Pointer

	hits   atomic.Int64
	misses atomic.Int64
}

// NewPooled returns a Pooled allocator drawing fresh blocks from backing.
func NewPooled(backing Allocator, config SizeClassConfig) *Pooled {
	t := newSizeClassTable(config)
	return &Pooled{
		backing: backing,
		table:   t,
		free:    make([][]unsafe.Pointer, t.numClasses()),
	}
}

// Alloc implements Allocator.
func (p *Pooled) Alloc(s Shape) (unsafe.Pointer, error) {
	if s.HasPointers() {
		return nil, fmt.Errorf("%w: %v", ErrPointers, s)
	}
	if s.Plan.Block.Align > wordAlign {
		return nil, fmt.Errorf("%w: %d", ErrAlign, s.Plan.Block.Align)
	}

	class := p.table.classFor(s.Plan.Footprint())
	if class == p.table.numClasses() {
		return p.backing.Alloc(s)
	}

	p.mu.Lock()
	list := p.free[class]
	if n := len(list); n > 0 {
		blk := list[n-1]
		list[n-1] = nil
		p.free[class] = list[:n-1]
		p.mu.Unlock()

		p.hits.Add(1)
		clear(unsafe.Slice((*byte)(blk), p.table.bounds[class]))
		return blk, nil
	}
	p.mu.Unlock()

	p.misses.Add(1)
	return p.backing.Alloc(p.classShape(class))
}

// Free implements Allocator. Pooled blocks go back on their free list.
func (p *Pooled) Free(blk unsafe.Pointer, s Shape) {
	class := p.table.classFor(s.Plan.Footprint())
	if class == p.table.numClasses() {
		p.backing.Free(blk, s)
		return
	}
	p.mu.Lock()
	p.free[class] = append(p.free[class], blk)
	p.mu.Unlock()
}

// Trim returns every cached block to the backing allocator and reports how
// many were released.
func (p *Pooled) Trim() int {
	p.mu.Lock()
	lists := p.free
	p.free = make([][]unsafe.Pointer, p.table.numClasses())
	p.mu.Unlock()

	released := 0
	for class, list := range lists {
		shape := p.classShape(class)
		for _, blk := range list {
			p.backing.Free(blk, shape)
			released++
		}
	}
	logger.Debug("alloc: trimmed pool",
		zap.String("classes", p.table.String()),
		zap.Int("released", released))
	return released
}

// Cached returns the number of blocks waiting on free lists.
func (p *Pooled) Cached() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, list := range p.free {
		n += len(list)
	}
	return n
}

// Hits returns how many allocations were served from a free list.
func (p *Pooled) Hits() int64 { return p.hits.Load() }

// Misses returns how many pooled allocations went to the backing allocator.
func (p *Pooled) Misses() int64 { return p.misses.Load() }

// classShape is the pointer-free shape of a whole class block, used for
// every call into the backing allocator on behalf of a class.
func (p *Pooled) classShape(class int) Shape {
	return Shape{Plan: layout.Plan{
		Block: layout.Layout{Size: p.table.bounds[class], Align: wordAlign},
	}}
}

var _ Allocator = (*Pooled)(nil)
