package layout

import "fmt"

// Plan describes a combined block: a metadata header, one head value and Len
// tail elements, laid out in that order with C struct rules.
//
//	[header][pad][head][pad][Len x elem][pad to Block.Align]
//
// HeadOffset and TailOffset depend only on the three component layouts, never on
// Len, so a reader holding nothing but the block address can find the header,
// read the count, and rebuild the rest.
type Plan struct {
	Block  Layout
	Header Layout
	Head   Layout
	Elem   Layout

	HeadOffset uintptr
	TailOffset uintptr
	Len        int
}

// Combine computes the Plan for n elements. It is a pure function of its
// arguments and reports ErrOverflow before anything is allocated.
func Combine(header, head, elem Layout, n int) (Plan, error) {
	tail, err := Array(elem, n)
	if err != nil {
		return Plan{}, err
	}

	block := header
	block, headOff, err := block.Extend(head)
	if err != nil {
		return Plan{}, fmt.Errorf("head: %w", err)
	}
	block, tailOff, err := block.Extend(tail)
	if err != nil {
		return Plan{}, fmt.Errorf("tail: %w", err)
	}

	// Extend validated the layout, so padding to Align cannot overflow.
	return Plan{
		Block:      block.PadToAlign(),
		Header:     header,
		Head:       head,
		Elem:       elem,
		HeadOffset: headOff,
		TailOffset: tailOff,
		Len:        n,
	}, nil
}

// Offsets returns the head and tail offsets without a count. It matches the
// offsets of every Plan built from the same component layouts.
func Offsets(header, head, elem Layout) (headOff, tailOff uintptr) {
	headOff = header.Size + header.PaddingNeededFor(head.Align)
	end := Layout{Size: headOff + head.Size}
	tailOff = end.Size + end.PaddingNeededFor(elem.Align)
	return headOff, tailOff
}

// TailBytes returns the byte length of the tail region.
func (p Plan) TailBytes() uintptr {
	return uintptr(p.Len) * p.Elem.PadToAlign().Size
}

// TailEnd returns the offset one past the last tail byte.
func (p Plan) TailEnd() uintptr {
	return p.TailOffset + p.TailBytes()
}

// Footprint is the number of bytes an allocator must provide for the block.
//
// It equals Block.Size except when the block ends with a zero-size component
// exactly at Block.Size. A pointer to that component would then point one past
// the allocation, so one extra byte keeps it inside.
func (p Plan) Footprint() uintptr {
	if p.TailBytes() == 0 && p.TailOffset == p.Block.Size {
		return p.Block.Size + 1
	}
	return p.Block.Size
}

// String renders the plan for diagnostics.
func (p Plan) String() string {
	return fmt.Sprintf("block{size=%d align=%d} head@%d tail@%d len=%d stride=%d",
		p.Block.Size, p.Block.Align, p.HeadOffset, p.TailOffset, p.Len, p.Elem.PadToAlign().Size)
}
