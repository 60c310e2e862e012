package alloc

import (
	"math"
	"slices"
)

// SizeClassConfig defines how block footprints are rounded into classes.
// Small footprints grow linearly, medium ones geometrically; anything past
// MediumMax is not pooled.
type SizeClassConfig struct {
	Name string

	SmallMin       uintptr
	SmallMax       uintptr
	SmallIncrement uintptr

	MediumMax    uintptr
	GrowthFactor float64
}

var (
	// ConfigFineGrained keeps internal fragmentation low at the cost of more
	// free lists: 32-512 step 32, then x1.5 up to 16 KiB.
	ConfigFineGrained = SizeClassConfig{
		Name:           "FineGrained",
		SmallMin:       32,
		SmallMax:       512,
		SmallIncrement: 32,
		MediumMax:      16 << 10,
		GrowthFactor:   1.5,
	}

	// ConfigCoarse has few classes and doubles past 512 bytes up to 64 KiB.
	ConfigCoarse = SizeClassConfig{
		Name:           "Coarse",
		SmallMin:       64,
		SmallMax:       512,
		SmallIncrement: 64,
		MediumMax:      64 << 10,
		GrowthFactor:   2.0,
	}

	DefaultClasses = ConfigFineGrained
)

// sizeClassTable holds the inclusive upper bound of every class, ascending.
// Every bound is a multiple of wordAlign so pooled blocks stay word aligned.
type sizeClassTable struct {
	config SizeClassConfig
	bounds []uintptr
}

func newSizeClassTable(config SizeClassConfig) *sizeClassTable {
	t := &sizeClassTable{config: config}

	for size := config.SmallMin; size < config.SmallMax; size += config.SmallIncrement {
		t.bounds = appendBound(t.bounds, size+config.SmallIncrement)
	}
	for size := config.SmallMax; size < config.MediumMax; {
		next := uintptr(math.Ceil(float64(size) * config.GrowthFactor))
		if next <= size {
			next = size + wordAlign
		}
		next = min(next, config.MediumMax)
		t.bounds = appendBound(t.bounds, next)
		size = next
	}
	return t
}

func appendBound(bounds []uintptr, b uintptr) []uintptr {
	b = (b + wordAlign - 1) &^ (wordAlign - 1)
	if n := len(bounds); n > 0 && bounds[n-1] >= b {
		return bounds
	}
	return append(bounds, b)
}

// classFor returns the class index for a footprint, or numClasses when the
// footprint is too large to pool.
func (t *sizeClassTable) classFor(size uintptr) int {
	i, _ := slices.BinarySearch(t.bounds, size)
	return i
}

func (t *sizeClassTable) numClasses() int { return len(t.bounds) }

func (t *sizeClassTable) String() string { return t.config.Name }
