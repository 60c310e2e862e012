// Package layout computes the memory layout of a combined block holding a
// metadata header, one head value and a run of tail elements.
//
// # Overview
//
// The calculator follows C struct rules: each component starts at the next
// multiple of its own alignment, and the block size is rounded up to the
// largest alignment involved.
//
//	plan, err := layout.Combine(layout.Of[header](), layout.Of[Head](), layout.Of[Elem](), n)
//	if err != nil {
//	    return err // layout.ErrOverflow: nothing was allocated
//	}
//
// # Count Independence
//
// The head and tail offsets depend only on the component layouts. Readers use
// Offsets to locate the tail of an existing block without knowing its length,
// then read the length from the header.
//
// # Overflow
//
// Every multiplication and addition is checked against MaxSize (math.MaxInt).
// A count whose tail would not fit is rejected with ErrOverflow.
package layout
