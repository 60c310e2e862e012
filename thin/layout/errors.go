package layout

import "errors"

var (
	// ErrOverflow indicates a size computation exceeded MaxSize.
	ErrOverflow = errors.New("layout: size overflow")

	// ErrBadAlign indicates an alignment that is zero or not a power of two.
	ErrBadAlign = errors.New("layout: alignment must be a power of two")

	// ErrNegativeCount indicates a negative element count.
	ErrNegativeCount = errors.New("layout: negative element count")
)
