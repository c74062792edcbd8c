package object_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/delaneyj/slotparty/object"
)

func BenchmarkEmit(b *testing.B) {
	ctx := context.Background()
	for _, width := range []int{1, 10, 100, 1_000} {
		b.Run(fmt.Sprintf("fanout %d", width), func(b *testing.B) {
			e := object.NewEmitter[int](object.New(nil))
			sum := 0
			for i := 0; i < width; i++ {
				e.Connect(object.New(nil), object.Func(func(_ context.Context, v int) {
					sum += v
				}))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Emit(ctx, 1)
			}
		})
	}
}

func BenchmarkChurn(b *testing.B) {
	ctx := context.Background()
	e := object.NewEmitter[int](object.New(nil))
	noop := object.Func(func(context.Context, int) {})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := object.New(nil)
		e.Connect(r, noop)
		if i%8 == 0 {
			e.Emit(ctx, i)
		}
		r.Destroy()
	}
}

func BenchmarkDestroyTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		root := object.New(nil)
		for j := 0; j < 32; j++ {
			mid := object.New(root)
			for k := 0; k < 32; k++ {
				object.New(mid)
			}
		}
		root.Destroy()
	}
}
