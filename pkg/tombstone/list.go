// Package tombstone implements an ordered slot list whose removals leave
// zero-valued tombstones behind, so indices stay stable while the list is
// being iterated. Dead entries are swept out in explicit maintenance passes.
//
// Growth is amortized: an append into a full list first sweeps dead entries
// and only grows when that frees nothing, and whenever live occupancy drops
// under half of the allocated capacity the backing array is reallocated to a
// tighter fit.
package tombstone

// List is an ordered collection of comparable values where the zero value
// marks a tombstone. The zero List is empty and ready to use.
type List[T comparable] struct {
	items []T
	pins  int
}

// Alive reports whether a non-zero entry still belongs in the list. A nil
// Alive treats every non-zero entry as alive.
type Alive[T comparable] func(T) bool

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) Cap() int {
	return cap(l.items)
}

func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Clear turns slot i into a tombstone.
func (l *List[T]) Clear(i int) {
	var zero T
	l.items[i] = zero
}

// Index returns the position of v, or -1. Looking up the zero value is not
// meaningful and always returns -1.
func (l *List[T]) Index(v T) int {
	var zero T
	if v == zero {
		return -1
	}
	for i, item := range l.items {
		if item == v {
			return i
		}
	}
	return -1
}

// Remove tombstones the first slot holding v.
func (l *List[T]) Remove(v T) bool {
	i := l.Index(v)
	if i < 0 {
		return false
	}
	l.Clear(i)
	return true
}

// Tombstones counts the cleared slots.
func (l *List[T]) Tombstones() int {
	var zero T
	count := 0
	for _, item := range l.items {
		if item == zero {
			count++
		}
	}
	return count
}

// Pin blocks sweeping until the matching Unpin. Appends while pinned never
// move existing entries to other indices.
func (l *List[T]) Pin() {
	l.pins++
}

func (l *List[T]) Unpin() {
	if l.pins == 0 {
		panic("tombstone: unbalanced Unpin")
	}
	l.pins--
}

func (l *List[T]) Pinned() bool {
	return l.pins > 0
}

// Append adds v at the end. A full, unpinned list is swept with alive
// before it is allowed to grow.
func (l *List[T]) Append(v T, alive Alive[T]) {
	if l.pins == 0 && len(l.items) == cap(l.items) && len(l.items) > 0 {
		l.Compact(alive)
	}
	l.items = append(l.items, v)
}

// Compact removes tombstones and dead entries, preserving order, and
// shrinks the backing array when less than half of it is in use. It
// returns the number of entries removed. Compact is a no-op while pinned.
func (l *List[T]) Compact(alive Alive[T]) int {
	if l.pins > 0 {
		return 0
	}
	var zero T
	n := 0
	for _, item := range l.items {
		if item == zero || (alive != nil && !alive(item)) {
			continue
		}
		l.items[n] = item
		n++
	}
	removed := len(l.items) - n
	for i := n; i < len(l.items); i++ {
		l.items[i] = zero
	}
	l.items = l.items[:n]
	l.shrink()
	return removed
}

// Reset drops every entry. Ignored while pinned; callers clear slots one by
// one instead.
func (l *List[T]) Reset() {
	if l.pins > 0 {
		return
	}
	l.items = nil
}

// Values returns a copy of the live entries in order.
func (l *List[T]) Values() []T {
	var zero T
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

func (l *List[T]) shrink() {
	if cap(l.items) <= minCap || len(l.items) >= cap(l.items)/2 {
		return
	}
	newCap := len(l.items) + len(l.items)/2
	if newCap < minCap {
		newCap = minCap
	}
	items := make([]T, len(l.items), newCap)
	copy(items, l.items)
	l.items = items
}

const minCap = 4
