package object

import "sync/atomic"

const (
	refDeleted  = 0
	refReleased = 1
	refLive     = 2
)

// link is the untyped half of a connection. Receivers keep links to their
// inbound connections without knowing the emitted argument type.
//
// A link is held by two parties, the emitter side and the receiver side,
// and each of them calls release exactly once. Whichever call moves the
// counter to zero deletes the connection, so teardown is order independent
// and may race between an emitting goroutine and a destroying one.
type link struct {
	ref      atomic.Int32
	sender   *Node
	receiver *Node
	self     dropper
}

type dropper interface {
	drop()
}

func (l *link) live() bool {
	return l.ref.Load() == refLive
}

func (l *link) deleted() bool {
	return l.ref.Load() == refDeleted
}

// release gives up one side's hold. The first caller moves 2->1, the second
// moves 1->0 and deletes. It reports whether this call deleted the link.
func (l *link) release() bool {
	if l.ref.CompareAndSwap(refLive, refReleased) {
		return false
	}
	if l.ref.CompareAndSwap(refReleased, refDeleted) {
		l.self.drop()
		return true
	}
	return false
}

type connection[A any] struct {
	link
	slot Slot[A]
}

func newConnection[A any](sender, receiver *Node, slot Slot[A]) *connection[A] {
	c := &connection[A]{slot: slot}
	c.sender = sender
	c.receiver = receiver
	c.self = c
	c.ref.Store(refLive)
	return c
}

func (c *connection[A]) drop() {
	slot := c.slot
	c.slot = nil
	if r, ok := slot.(Releaser); ok {
		r.Release()
	}
}

// releaseFromEmitter drops the emitter's hold. A connection without a
// receiver is owned by the emitter alone and is deleted on the spot.
func (c *connection[A]) releaseFromEmitter() bool {
	if c.receiver == nil {
		if c.ref.Swap(refDeleted) != refDeleted {
			c.drop()
			return true
		}
		return false
	}
	return c.release()
}

func (c *connection[A]) matches(receiver *Node, slot Slot[A]) bool {
	if c.receiver != receiver {
		return false
	}
	return slot == nil || slotsEqual(c.slot, slot)
}
