package thin

// Fat is the conventional Go representation of a head and tail: the head
// value plus a separately allocated slice carrying its own length.
type Fat[H, T any] struct {
	Head H
	Tail []T
}

// FromFat builds a Box from f. The elements are copied into the block in
// order; f.Tail may be nil for an empty tail.
func FromFat[H, T any](f Fat[H, T], opts ...Option) (Box[H, T], error) {
	return New(f.Head, f.Tail, opts...)
}

// ArcFromFat builds an Arc from f.
func ArcFromFat[H, T any](f Fat[H, T], opts ...Option) (Arc[H, T], error) {
	return NewArc(f.Head, f.Tail, opts...)
}

// RcFromFat builds an Rc from f.
func RcFromFat[H, T any](f Fat[H, T], opts ...Option) (Rc[H, T], error) {
	return NewRc(f.Head, f.Tail, opts...)
}

// IntoFat moves the head and elements out of the block into a Fat and frees
// the block. Drop is not called: the values now belong to the Fat. b is
// empty afterwards.
func (b *Box[H, T]) IntoFat() Fat[H, T] {
	if b.r.p == nil {
		return Fat[H, T]{Tail: []T{}}
	}
	r := b.r
	b.r = raw[H, T]{}
	return moveOut(r)
}

// IntoFat moves the values out if a is the only handle, otherwise clones
// them and releases a. a is empty afterwards.
func (a *Arc[H, T]) IntoFat() Fat[H, T] {
	if a.r.p == nil {
		return Fat[H, T]{Tail: []T{}}
	}
	r := a.r
	a.r = raw[H, T]{}
	return intoFatShared[atomicRefs](r)
}

// IntoFat moves the values out if r is the only handle, otherwise clones
// them and releases r. r is empty afterwards.
func (rc *Rc[H, T]) IntoFat() Fat[H, T] {
	if rc.r.p == nil {
		return Fat[H, T]{Tail: []T{}}
	}
	r := rc.r
	rc.r = raw[H, T]{}
	return intoFatShared[plainRefs](r)
}

func moveOut[H, T any](r raw[H, T]) Fat[H, T] {
	tail := r.tail()
	f := Fat[H, T]{Head: *r.head(), Tail: make([]T, len(tail))}
	copy(f.Tail, tail)
	r.forget()
	return f
}

func cloneOut[H, T any](r raw[H, T]) Fat[H, T] {
	tail := r.tail()
	f := Fat[H, T]{Head: cloneValue(r.head()), Tail: make([]T, len(tail))}
	for i := range tail {
		f.Tail[i] = cloneValue(&tail[i])
	}
	return f
}
