// Package object implements synchronous signals and slots with automatic
// connection lifetime management.
//
// A Node participates in an ownership tree and may own any number of typed
// Emitters. Connecting a Slot to an Emitter with a receiver Node ties the
// connection to both ends: it goes away when either the emitter's owner or
// the receiver is destroyed, whichever happens first, and it is never
// invoked after its receiver let go.
//
//	sender := object.New(nil)
//	receiver := object.New(nil)
//	changed := object.NewEmitter[int](sender)
//
//	changed.Connect(receiver, object.Func(func(ctx context.Context, v int) {
//		fmt.Println(v, object.Sender(ctx) == sender)
//	}))
//	changed.Emit(ctx, 5) // prints "5 true"
//	receiver.Destroy()
//	changed.Emit(ctx, 6) // prints nothing
//
// Dispatch is re-entrant: slots may emit, connect and disconnect. The node
// currently emitting travels in the context handed to each slot and is read
// back with Sender.
package object

//go:generate go run ../cmd/codegen --count 4 --out args_gen.go
