package object

import (
	"context"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Slot is the type-erased callback stored by a connection. Every shape of
// callable (closure, free function, bound method, forward into another
// emitter) is reduced to a single Invoke entry point.
type Slot[A any] interface {
	Invoke(ctx context.Context, arg A)
}

// Equaler is implemented by slots that can be compared by value. Only such
// slots can be used with Unique connections or DisconnectSlot.
type Equaler interface {
	Equal(other any) bool
}

// Releaser is implemented by slots that want to know when the connection
// holding them is deleted. Release runs exactly once per connection.
type Releaser interface {
	Release()
}

type validator interface {
	valid() bool
}

// Func wraps a closure. Closures have no identity in Go, so the resulting
// slot is not comparable.
func Func[A any](fn func(ctx context.Context, arg A)) Slot[A] {
	return funcSlot[A]{fn: fn}
}

type funcSlot[A any] struct {
	fn func(context.Context, A)
}

func (s funcSlot[A]) Invoke(ctx context.Context, arg A) {
	s.fn(ctx, arg)
}

func (s funcSlot[A]) valid() bool {
	return s.fn != nil
}

// Function wraps a named function. Two Function slots are equal when they
// wrap the same code; closures built from one literal compare equal too, so
// use Tagged for those.
func Function[A any](fn func(ctx context.Context, arg A)) Slot[A] {
	s := functionSlot[A]{fn: fn}
	if fn != nil {
		s.pc = reflect.ValueOf(fn).Pointer()
	}
	return s
}

type functionSlot[A any] struct {
	fn func(context.Context, A)
	pc uintptr
}

func (s functionSlot[A]) Invoke(ctx context.Context, arg A) {
	s.fn(ctx, arg)
}

func (s functionSlot[A]) valid() bool {
	return s.fn != nil
}

func (s functionSlot[A]) Equal(other any) bool {
	o, ok := other.(functionSlot[A])
	return ok && o.pc == s.pc
}

// Method binds fn to recv. fn is normally a method expression such as
// (*Widget).OnResize. Two Method slots are equal when both the receiver and
// the function match.
func Method[R comparable, A any](recv R, fn func(recv R, ctx context.Context, arg A)) Slot[A] {
	s := methodSlot[R, A]{recv: recv, fn: fn}
	if fn != nil {
		s.pc = reflect.ValueOf(fn).Pointer()
	}
	return s
}

type methodSlot[R comparable, A any] struct {
	recv R
	fn   func(R, context.Context, A)
	pc   uintptr
}

func (s methodSlot[R, A]) Invoke(ctx context.Context, arg A) {
	s.fn(s.recv, ctx, arg)
}

func (s methodSlot[R, A]) valid() bool {
	return s.fn != nil
}

func (s methodSlot[R, A]) Equal(other any) bool {
	o, ok := other.(methodSlot[R, A])
	return ok && o.pc == s.pc && o.recv == s.recv
}

// Tagged gives a closure an identity: two Tagged slots are equal when their
// tags are.
func Tagged[A any](tag string, fn func(ctx context.Context, arg A)) Slot[A] {
	return taggedSlot[A]{
		tag:  tag,
		hash: xxhash.Sum64String(tag),
		fn:   fn,
	}
}

type taggedSlot[A any] struct {
	tag  string
	hash uint64
	fn   func(context.Context, A)
}

func (s taggedSlot[A]) Invoke(ctx context.Context, arg A) {
	s.fn(ctx, arg)
}

func (s taggedSlot[A]) valid() bool {
	return s.fn != nil
}

func (s taggedSlot[A]) Equal(other any) bool {
	o, ok := other.(taggedSlot[A])
	return ok && o.hash == s.hash && o.tag == s.tag
}

// Forward re-emits every call into target, which then acts as sender for its
// own connections.
func Forward[A any](target *Emitter[A]) Slot[A] {
	return forwardSlot[A]{target: target}
}

type forwardSlot[A any] struct {
	target *Emitter[A]
}

func (s forwardSlot[A]) Invoke(ctx context.Context, arg A) {
	s.target.Emit(ctx, arg)
}

func (s forwardSlot[A]) valid() bool {
	return s.target != nil
}

func (s forwardSlot[A]) Equal(other any) bool {
	o, ok := other.(forwardSlot[A])
	return ok && o.target == s.target
}

func slotsEqual[A any](a, b Slot[A]) bool {
	eq, ok := a.(Equaler)
	if !ok {
		return false
	}
	return eq.Equal(b)
}

func comparableSlot[A any](s Slot[A]) bool {
	_, ok := s.(Equaler)
	return ok
}
