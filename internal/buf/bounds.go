// Package buf contains overflow-checked size arithmetic shared by the layout code.
package buf

import "math"

// MaxSize is the largest byte size a single block may have. It matches the
// largest length a Go slice can describe.
const MaxSize = uintptr(math.MaxInt)

// AddOverflowSafe adds a and b, returning ok = false when the result would exceed MaxSize.
func AddOverflowSafe(a, b uintptr) (uintptr, bool) {
	if a > MaxSize || b > MaxSize-a {
		return 0, false
	}
	return a + b, true
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would exceed MaxSize.
// This is essential for count * elementSize calculations.
func MulOverflowSafe(a, b uintptr) (uintptr, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > MaxSize/b {
		return 0, false
	}
	return a * b, true
}

// IsPow2 reports whether n is a non-zero power of two.
func IsPow2(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// PaddingFor returns the number of bytes needed after n to reach a multiple of align.
// align must be a power of two.
//
// Example:
//
//	PaddingFor(1, 8)  = 7
//	PaddingFor(8, 8)  = 0
//	PaddingFor(9, 4)  = 3
func PaddingFor(n, align uintptr) uintptr {
	return (align - n&(align-1)) & (align - 1)
}

// AlignUp returns n rounded up to the next multiple of align, or ok = false on overflow.
// align must be a power of two.
func AlignUp(n, align uintptr) (uintptr, bool) {
	return AddOverflowSafe(n, PaddingFor(n, align))
}
