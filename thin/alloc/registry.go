package alloc

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/joshuapare/thindst/internal/logger"
)

// ID names a registered allocator inside a block header.
type ID uint32

const (
	// HeapID selects the GC-backed Heap allocator.
	HeapID ID = 0

	// MappedID selects the off-heap Mapped allocator.
	MappedID ID = 1
)

var registry = struct {
	sync.RWMutex
	list []Allocator
}{
	list: []Allocator{HeapID: Heap{}, MappedID: Mapped{}},
}

// Register adds a to the registry and returns its ID. Registrations are
// permanent; register allocators once during setup, not per block.
func Register(a Allocator) ID {
	registry.Lock()
	defer registry.Unlock()

	id := ID(len(registry.list))
	registry.list = append(registry.list, a)
	logger.Debug("alloc: registered allocator", zap.Uint32("id", uint32(id)), zap.String("type", fmt.Sprintf("%T", a)))
	return id
}

// Lookup returns the allocator registered under id.
func Lookup(id ID) (Allocator, error) {
	registry.RLock()
	defer registry.RUnlock()

	if int(id) >= len(registry.list) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return registry.list[id], nil
}

// MustLookup is Lookup for IDs read back from live blocks, where an unknown
// ID means memory corruption.
func MustLookup(id ID) Allocator {
	a, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return a
}
