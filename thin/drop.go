package thin

// Dropper is implemented by values that own resources which must be released
// when the block holding them is destroyed. Drop is called through a pointer
// to the value inside the block, exactly once.
type Dropper interface {
	Drop()
}

// Cloner is implemented by values that need more than a plain copy when a
// block is cloned.
type Cloner[V any] interface {
	Clone() V
}

// dropValue calls Drop if *V implements Dropper, then zeroes the slot so the
// collector can reclaim anything it referenced.
func dropValue[V any](p *V) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
	var zero V
	*p = zero
}

// dropSlice drops s in index order.
func dropSlice[V any](s []V) {
	for i := range s {
		dropValue(&s[i])
	}
}

func cloneValue[V any](p *V) V {
	if c, ok := any(p).(Cloner[V]); ok {
		return c.Clone()
	}
	return *p
}
