package thin

import (
	"math"
	"sync/atomic"
)

// MaxRefs is the largest number of live shared handles per block. Cloning
// past it panics with ErrRefOverflow; reaching it means handles are being
// cloned without bound.
const MaxRefs = math.MaxInt64 / 2

// refDiscipline is how a shared handle updates the count in the header.
type refDiscipline interface {
	add(p *int64, delta int64) int64
	load(p *int64) int64
}

// atomicRefs updates the count with sequentially consistent atomics, so the
// final decrement happens after every earlier clone and release on any
// goroutine.
type atomicRefs struct{}

func (atomicRefs) add(p *int64, delta int64) int64 { return atomic.AddInt64(p, delta) }
func (atomicRefs) load(p *int64) int64             { return atomic.LoadInt64(p) }

// plainRefs updates the count with ordinary loads and stores. Handles using
// it must stay on one goroutine.
type plainRefs struct{}

func (plainRefs) add(p *int64, delta int64) int64 {
	*p += delta
	return *p
}
func (plainRefs) load(p *int64) int64 { return *p }

func retain[D refDiscipline, H, T any](r raw[H, T]) {
	var d D
	if d.add(&r.header().refs, 1) > MaxRefs {
		panic(ErrRefOverflow)
	}
}

// releaseRef drops one reference. The handle that takes the count to zero
// destroys the block; every other handle leaves it untouched.
func releaseRef[D refDiscipline, H, T any](r raw[H, T]) {
	var d D
	switch n := d.add(&r.header().refs, -1); {
	case n == 0:
		r.destroy()
	case n < 0:
		panic(ErrReleased)
	}
}

func refCount[D refDiscipline, H, T any](r raw[H, T]) int64 {
	var d D
	return d.load(&r.header().refs)
}

func unique[D refDiscipline, H, T any](r raw[H, T]) bool {
	return r.p != nil && refCount[D](r) == 1
}

// intoFatShared moves the values out when r is the only handle, otherwise
// clones them and drops this handle's reference.
func intoFatShared[D refDiscipline, H, T any](r raw[H, T]) Fat[H, T] {
	if unique[D](r) {
		return moveOut(r)
	}
	f := cloneOut(r)
	releaseRef[D](r)
	return f
}
