package thin

// Slice is a thin handle to a tail with no head.
type Slice[T any] = Box[struct{}, T]

// SharedSlice is an atomically shared thin handle to a tail with no head.
type SharedSlice[T any] = Arc[struct{}, T]

// NewSlice builds a Slice holding a copy of elems.
func NewSlice[T any](elems []T, opts ...Option) (Slice[T], error) {
	return New(struct{}{}, elems, opts...)
}

// NewSharedSlice builds a SharedSlice holding a copy of elems.
func NewSharedSlice[T any](elems []T, opts ...Option) (SharedSlice[T], error) {
	return NewArc(struct{}{}, elems, opts...)
}
