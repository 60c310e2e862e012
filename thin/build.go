package thin

import (
	"fmt"
	"iter"
	"unsafe"

	"go.uber.org/zap"

	"github.com/joshuapare/thindst/internal/logger"
	"github.com/joshuapare/thindst/thin/alloc"
)

// builder is a block under construction. Until finish is called it owns the
// block, and abort returns it to the allocator after dropping exactly the
// values that were written.
type builder[H, T any] struct {
	p     unsafe.Pointer
	a     alloc.Allocator
	shape alloc.Shape

	head    *H
	tail    []T
	written int
	headSet bool
	done    bool
}

// begin runs the layout calculation, allocates the block and writes the
// header. Layout overflow is reported here, before any allocation.
func begin[H, T any](n, refs int, o options) (*builder[H, T], error) {
	shape, err := shapeOf[H, T](n)
	if err != nil {
		return nil, fmt.Errorf("thin: layout for %d elements: %w", n, err)
	}
	a, err := alloc.Lookup(o.alloc)
	if err != nil {
		return nil, fmt.Errorf("thin: %w", err)
	}
	p, err := a.Alloc(shape)
	if err != nil {
		return nil, fmt.Errorf("thin: allocate %s: %w", shape.Plan, err)
	}

	h := headerOf(p)
	h.refs = int64(refs)
	h.len = uintptr(n)
	h.src = o.alloc

	headOff, tailOff := shape.Plan.HeadOffset, shape.Plan.TailOffset
	return &builder[H, T]{
		p:     p,
		a:     a,
		shape: shape,
		head:  (*H)(unsafe.Add(p, headOff)),
		tail:  unsafe.Slice((*T)(unsafe.Add(p, tailOff)), n),
	}, nil
}

func (b *builder[H, T]) setHead(v H) {
	*b.head = v
	b.headSet = true
}

// push writes the next element. The caller never pushes more than n.
func (b *builder[H, T]) push(v T) {
	b.tail[b.written] = v
	b.written++
}

// initialized returns the written prefix of the tail.
func (b *builder[H, T]) initialized() []T {
	return b.tail[:b.written]
}

func (b *builder[H, T]) full() bool {
	return b.written == len(b.tail)
}

func (b *builder[H, T]) finish() raw[H, T] {
	if !b.full() {
		panic(fmt.Sprintf("thin: finishing block with %d of %d elements", b.written, len(b.tail)))
	}
	b.done = true
	return raw[H, T]{p: b.p}
}

// abort drops the written elements in the order they were written, then the
// head if it was written, and frees the block.
func (b *builder[H, T]) abort(cause error) {
	written := b.written
	dropSlice(b.initialized())
	if b.headSet {
		dropValue(b.head)
	}
	b.written = 0
	b.headSet = false
	b.done = true
	b.a.Free(b.p, b.shape)

	fields := []zap.Field{
		zap.Int("written", written),
		zap.Int("len", len(b.tail)),
		zap.Stringer("plan", b.shape.Plan),
	}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	} else {
		fields = append(fields, zap.String("cause", "panic"))
	}
	logger.Debug("thin: rolled back partial block", fields...)
}

// build allocates a block for n elements and runs fill on it. If fill returns
// an error or panics, the block is rolled back before the error is returned
// or the panic continues.
func build[H, T any](n, refs int, opts []Option, fill func(*builder[H, T]) error) (r raw[H, T], err error) {
	b, err := begin[H, T](n, refs, collect(opts))
	if err != nil {
		return raw[H, T]{}, err
	}
	defer func() {
		if !b.done {
			b.abort(err)
		}
	}()

	if err = fill(b); err != nil {
		return raw[H, T]{}, err
	}
	return b.finish(), nil
}

func fillSlice[H, T any](head H, tail []T) func(*builder[H, T]) error {
	return func(b *builder[H, T]) error {
		b.setHead(head)
		for _, v := range tail {
			b.push(v)
		}
		return nil
	}
}

func fillSeq[H, T any](head H, seq iter.Seq[T]) func(*builder[H, T]) error {
	return func(b *builder[H, T]) error {
		b.setHead(head)
		long := false
		for v := range seq {
			if b.full() {
				long = true
				break
			}
			b.push(v)
		}
		switch {
		case long:
			return fmt.Errorf("%w: want %d", ErrLongTail, len(b.tail))
		case !b.full():
			return fmt.Errorf("%w: got %d, want %d", ErrShortTail, b.written, len(b.tail))
		}
		return nil
	}
}

func fillFunc[H, T any](head H, fn func(i int) (T, error)) func(*builder[H, T]) error {
	return func(b *builder[H, T]) error {
		b.setHead(head)
		for i := range b.tail {
			v, err := fn(i)
			if err != nil {
				return &ElementError{Index: i, Err: err}
			}
			b.push(v)
		}
		return nil
	}
}

func fillDerived[H, T any](tail []T, head func([]T) H) func(*builder[H, T]) error {
	return func(b *builder[H, T]) error {
		for _, v := range tail {
			b.push(v)
		}
		b.setHead(head(b.initialized()))
		return nil
	}
}

func fillClone[H, T any](src raw[H, T]) func(*builder[H, T]) error {
	return func(b *builder[H, T]) error {
		b.setHead(cloneValue(src.head()))
		tail := src.tail()
		for i := range tail {
			b.push(cloneValue(&tail[i]))
		}
		return nil
	}
}
