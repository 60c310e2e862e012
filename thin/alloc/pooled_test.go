package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeClassTable(t *testing.T) {
	for _, cfg := range []SizeClassConfig{ConfigFineGrained, ConfigCoarse} {
		t.Run(cfg.Name, func(t *testing.T) {
			table := newSizeClassTable(cfg)
			require.NotZero(t, table.numClasses())

			for i, b := range table.bounds {
				assert.Zero(t, b%wordAlign, "bound %d", b)
				if i > 0 {
					assert.Greater(t, b, table.bounds[i-1])
				}
			}
			last := table.bounds[table.numClasses()-1]
			assert.Equal(t, cfg.MediumMax, last)

			assert.Equal(t, 0, table.classFor(1))
			assert.Equal(t, 0, table.classFor(table.bounds[0]))
			assert.Equal(t, 1, table.classFor(table.bounds[0]+1))
			assert.Equal(t, table.numClasses()-1, table.classFor(last))
			assert.Equal(t, table.numClasses(), table.classFor(last+1))
		})
	}
}

func TestPooledReusesFreedBlocks(t *testing.T) {
	backing := NewCounting(Heap{})
	p := NewPooled(backing, DefaultClasses)
	s := shapeFor[plainHead, uint64](t, 5)

	first, err := p.Alloc(s)
	require.NoError(t, err)
	require.Equal(t, int64(1), p.Misses())
	bytes := unsafe.Slice((*byte)(first), s.Plan.Footprint())
	for i := range bytes {
		bytes[i] = 0xAB
	}
	p.Free(first, s)
	require.Equal(t, 1, p.Cached())

	// A slightly larger block of the same class takes the cached one.
	s6 := shapeFor[plainHead, uint64](t, 6)
	require.Equal(t, p.table.classFor(s.Plan.Footprint()), p.table.classFor(s6.Plan.Footprint()))

	again, err := p.Alloc(s6)
	require.NoError(t, err)
	require.Equal(t, first, again)
	require.Equal(t, int64(1), p.Hits())
	require.Equal(t, int64(1), backing.Allocs(), "served without the backing allocator")
	for _, b := range unsafe.Slice((*byte)(again), s6.Plan.Footprint()) {
		require.Zero(t, b, "recycled block is zeroed")
	}

	p.Free(again, s6)
	require.Equal(t, 1, p.Trim())
	require.Zero(t, p.Cached())
	require.Zero(t, backing.Live())
}

func TestPooledLargeBlocksBypass(t *testing.T) {
	backing := NewCounting(Heap{})
	p := NewPooled(backing, ConfigCoarse)
	s := shapeFor[plainHead, uint64](t, 100_000)

	blk, err := p.Alloc(s)
	require.NoError(t, err)
	require.Zero(t, p.Misses())
	require.Equal(t, int64(1), backing.Live())

	p.Free(blk, s)
	require.Zero(t, p.Cached())
	require.Zero(t, backing.Live())
}

func TestPooledRejects(t *testing.T) {
	p := NewPooled(Heap{}, DefaultClasses)

	_, err := p.Alloc(shapeFor[pointerHead, uint8](t, 1))
	require.ErrorIs(t, err, ErrPointers)

	s := shapeFor[plainHead, uint8](t, 1)
	s.Plan.Block.Align = 64
	_, err = p.Alloc(s)
	require.ErrorIs(t, err, ErrAlign)
}

func TestPooledOverMapped(t *testing.T) {
	p := NewPooled(Mapped{}, DefaultClasses)
	s := shapeFor[plainHead, uint32](t, 10)

	blk, err := p.Alloc(s)
	require.NoError(t, err)
	*(*uint64)(blk) = 7
	p.Free(blk, s)
	require.Equal(t, 1, p.Trim())
}
