package object_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/delaneyj/slotparty/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	*object.Node
	got []int
}

func (w *widget) onValue(ctx context.Context, v int) {
	w.got = append(w.got, v)
}

func (w *widget) onOther(ctx context.Context, v int) {
	w.got = append(w.got, -v)
}

var recorded atomic.Int64

func record(ctx context.Context, v int) {
	recorded.Add(int64(v))
}

func recordTwice(ctx context.Context, v int) {
	recorded.Add(int64(2 * v))
}

func TestMethodSlot(t *testing.T) {
	ctx := context.Background()
	s := object.New(nil)
	e := object.NewEmitter[int](s)
	w1 := &widget{Node: object.New(nil)}
	w2 := &widget{Node: object.New(nil)}

	require.True(t, e.ConnectMode(w1.Node, object.Method(w1, (*widget).onValue), object.Unique))
	require.True(t, e.ConnectMode(w1.Node, object.Method(w1, (*widget).onValue), object.Unique))
	require.True(t, e.ConnectMode(w1.Node, object.Method(w1, (*widget).onOther), object.Unique))
	require.True(t, e.ConnectMode(w2.Node, object.Method(w2, (*widget).onValue), object.Unique))
	assert.Equal(t, 3, e.Len())

	e.Emit(ctx, 4)
	assert.Equal(t, []int{4, -4}, w1.got)
	assert.Equal(t, []int{4}, w2.got)

	assert.False(t, e.DisconnectSlot(w1.Node, object.Method(w2, (*widget).onValue)))
	assert.True(t, e.DisconnectSlot(w1.Node, object.Method(w1, (*widget).onValue)))
	e.Emit(ctx, 5)
	assert.Equal(t, []int{4, -4, -5}, w1.got)
	assert.Equal(t, []int{4, 5}, w2.got)

	w2.Destroy()
	e.Emit(ctx, 6)
	assert.Equal(t, []int{4, 5}, w2.got)
}

func TestFunctionSlot(t *testing.T) {
	ctx := context.Background()
	recorded.Store(0)
	e := object.NewEmitter[int](object.New(nil))

	require.True(t, e.ConnectMode(nil, object.Function(record), object.Unique))
	require.True(t, e.ConnectMode(nil, object.Function(record), object.Unique))
	require.True(t, e.ConnectMode(nil, object.Function(recordTwice), object.Unique))
	assert.Equal(t, 2, e.Len())

	e.Emit(ctx, 1)
	assert.EqualValues(t, 3, recorded.Load())

	assert.True(t, e.DisconnectSlot(nil, object.Function(recordTwice)))
	assert.False(t, e.DisconnectSlot(nil, object.Function(recordTwice)))
	e.Emit(ctx, 1)
	assert.EqualValues(t, 4, recorded.Load())
}

func TestTaggedSlot(t *testing.T) {
	ctx := context.Background()
	e := object.NewEmitter[string](object.New(nil))
	var got []string
	tagged := func(tag string) object.Slot[string] {
		return object.Tagged(tag, func(_ context.Context, v string) {
			got = append(got, tag+":"+v)
		})
	}

	require.True(t, e.ConnectMode(nil, tagged("a"), object.Unique))
	require.True(t, e.ConnectMode(nil, tagged("a"), object.Unique))
	require.True(t, e.ConnectMode(nil, tagged("b"), object.Unique))
	e.Emit(ctx, "x")
	assert.Equal(t, []string{"a:x", "b:x"}, got)

	assert.True(t, e.DisconnectSlot(nil, tagged("a")))
	e.Emit(ctx, "y")
	assert.Equal(t, []string{"a:x", "b:x", "b:y"}, got)
}

func TestForwardSlot(t *testing.T) {
	ctx := context.Background()
	a, b, r := object.New(nil), object.New(nil), object.New(nil)
	source := object.NewEmitter[int](a)
	target := object.NewEmitter[int](b)

	var seen []*object.Node
	var values []int
	require.True(t, target.Connect(r, object.Func(func(ctx context.Context, v int) {
		seen = append(seen, object.Sender(ctx))
		values = append(values, v)
	})))

	require.True(t, source.ConnectForward(target))
	require.True(t, source.ConnectForward(target))
	assert.False(t, source.ConnectForward(nil))
	assert.Equal(t, 1, source.Len())

	source.Emit(ctx, 7)
	assert.Equal(t, []int{7}, values)
	assert.Equal(t, []*object.Node{b}, seen)

	b.Destroy()
	source.Emit(ctx, 8)
	assert.Equal(t, []int{7}, values)
	assert.Equal(t, 0, source.Len())
}

func TestArgsAdapters(t *testing.T) {
	ctx := context.Background()
	s := object.New(nil)
	e := object.NewEmitter[object.Args2[string, int]](s)

	var got []string
	require.True(t, e.Connect(nil, object.Func2(func(_ context.Context, k string, v int) {
		got = append(got, fmt.Sprintf("%s=%d", k, v))
	})))
	assert.False(t, e.Connect(nil, object.Func2[string, int](nil)))

	object.Emit2(ctx, e, "a", 1)
	e.Emit(ctx, object.Args2[string, int]{V0: "b", V1: 2})
	assert.Equal(t, []string{"a=1", "b=2"}, got)

	e3 := object.NewEmitter[object.Args3[int, int, int]](s)
	sum := 0
	require.True(t, e3.Connect(nil, object.Func3(func(_ context.Context, a, b, c int) {
		sum = a + b + c
	})))
	object.Emit3(ctx, e3, 1, 2, 3)
	assert.Equal(t, 6, sum)
}

func TestValidatorRejectsNilTargets(t *testing.T) {
	e := object.NewEmitter[int](object.New(nil))
	assert.False(t, e.Connect(nil, object.Function[int](nil)))
	assert.False(t, e.Connect(nil, object.Method[*widget, int](nil, nil)))
	assert.False(t, e.Connect(nil, object.Tagged[int]("x", nil)))
	assert.False(t, e.Connect(nil, object.Forward[int](nil)))
	assert.Equal(t, 0, e.Len())
}
