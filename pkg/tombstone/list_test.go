package tombstone_test

import (
	"testing"

	"github.com/delaneyj/slotparty/pkg/tombstone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtrs(n int) []*int {
	out := make([]*int, n)
	for i := range out {
		v := i
		out[i] = &v
	}
	return out
}

func TestClearKeepsIndices(t *testing.T) {
	var l tombstone.List[*int]
	vals := intPtrs(4)
	for _, v := range vals {
		l.Append(v, nil)
	}

	assert.True(t, l.Remove(vals[1]))
	assert.False(t, l.Remove(vals[1]))
	assert.Equal(t, 4, l.Len())
	assert.Nil(t, l.At(1))
	assert.Same(t, vals[2], l.At(2))
	assert.Equal(t, 1, l.Tombstones())
	assert.Equal(t, []*int{vals[0], vals[2], vals[3]}, l.Values())
}

func TestCompactPreservesOrder(t *testing.T) {
	var l tombstone.List[*int]
	vals := intPtrs(6)
	for _, v := range vals {
		l.Append(v, nil)
	}
	l.Clear(0)
	l.Clear(3)

	removed := l.Compact(func(v *int) bool { return *v != 5 })
	assert.Equal(t, 3, removed)
	assert.Equal(t, []*int{vals[1], vals[2], vals[4]}, l.Values())
	assert.Equal(t, 0, l.Tombstones())
}

func TestAppendSweepsBeforeGrowing(t *testing.T) {
	var l tombstone.List[*int]
	vals := intPtrs(9)
	for _, v := range vals[:8] {
		l.Append(v, nil)
	}
	for l.Len() < l.Cap() {
		l.Append(vals[0], nil)
	}
	full := l.Cap()
	for i := 0; i < l.Len(); i++ {
		if i%2 == 0 {
			l.Clear(i)
		}
	}

	l.Append(vals[8], nil)
	assert.LessOrEqual(t, l.Cap(), full)
	assert.Equal(t, 0, l.Tombstones())
	assert.Same(t, vals[8], l.At(l.Len()-1))
}

func TestShrinksUnderHalfOccupancy(t *testing.T) {
	var l tombstone.List[*int]
	vals := intPtrs(64)
	for _, v := range vals {
		l.Append(v, nil)
	}
	for i := 1; i < l.Len(); i++ {
		l.Clear(i)
	}

	l.Compact(nil)
	require.Equal(t, 1, l.Len())
	assert.Less(t, l.Cap(), 64)
	assert.Same(t, vals[0], l.At(0))
}

func TestPinnedListNeverMovesEntries(t *testing.T) {
	var l tombstone.List[*int]
	vals := intPtrs(5)
	for _, v := range vals[:4] {
		l.Append(v, nil)
	}
	l.Clear(0)

	l.Pin()
	assert.True(t, l.Pinned())
	assert.Equal(t, 0, l.Compact(nil))
	l.Reset()
	l.Append(vals[4], nil)
	assert.Equal(t, 5, l.Len())
	assert.Nil(t, l.At(0))
	assert.Same(t, vals[4], l.At(4))
	l.Unpin()

	assert.Equal(t, 1, l.Compact(nil))
	assert.Equal(t, 4, l.Len())
	assert.Panics(t, l.Unpin)
}

func TestIndexIgnoresZero(t *testing.T) {
	var l tombstone.List[*int]
	l.Append(nil, nil)
	assert.Equal(t, -1, l.Index(nil))
	l.Reset()
	assert.Equal(t, 0, l.Len())
}
