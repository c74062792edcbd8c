package object

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotparty/pkg/tombstone"
)

type Mode int

const (
	// Auto is the default mode. Dispatch is always synchronous, so it
	// behaves like Direct.
	Auto Mode = iota
	// Direct invokes the slot on the emitting goroutine.
	Direct
	// Unique refuses to store a second connection for an equal
	// (receiver, slot) pair. The slot must implement Equaler.
	Unique
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Direct:
		return "direct"
	case Unique:
		return "unique"
	default:
		return "unknown"
	}
}

// compactRatio is the tombstone share above which the connection list is
// compacted once the outermost Emit returns.
const compactRatio = 5

// Emitter is a typed signal owned by a Node. Connections fire in the order
// they were made. Emit may be re-entered from inside a slot, and slots may
// connect or disconnect on the emitter they are called from:
//   - connections made while an Emit is running wait in a side buffer and
//     fire from the next top-level Emit on;
//   - connections removed while an Emit is running stop firing at once,
//     their slot is left as a tombstone until the outermost Emit returns.
//
// An Emitter is meant to be driven from one goroutine. The only concurrent
// operation it tolerates is a receiver being destroyed on another goroutine
// while it emits.
type Emitter[A any] struct {
	owner   *Node
	conns   tombstone.List[*connection[A]]
	pending []*connection[A]
	nested  int
}

// NewEmitter creates an emitter owned by owner. Destroying the owner
// disconnects the emitter. owner may be nil for a free-standing emitter,
// whose slots then see no sender.
func NewEmitter[A any](owner *Node) *Emitter[A] {
	e := &Emitter[A]{owner: owner}
	if owner != nil {
		owner.addEmitter(e)
	}
	return e
}

func (e *Emitter[A]) Owner() *Node {
	return e.owner
}

// Connect adds slot in Auto mode and reports whether it succeeded.
func (e *Emitter[A]) Connect(receiver *Node, slot Slot[A]) bool {
	return e.TryConnect(receiver, slot, Auto) == nil
}

func (e *Emitter[A]) ConnectMode(receiver *Node, slot Slot[A], mode Mode) bool {
	return e.TryConnect(receiver, slot, mode) == nil
}

// ConnectForward re-emits every call into target. The forward is torn down
// when target's owner is destroyed.
func (e *Emitter[A]) ConnectForward(target *Emitter[A]) bool {
	if target == nil {
		return false
	}
	return e.TryConnect(target.owner, Forward(target), Unique) == nil
}

// TryConnect is Connect with the failure reason. When receiver is not nil
// the connection is dropped automatically once receiver is destroyed.
func (e *Emitter[A]) TryConnect(receiver *Node, slot Slot[A], mode Mode) error {
	if err := bind(slot, mode); err != nil {
		return err
	}
	if e.owner != nil && e.owner.IsDestroyed() {
		return ErrSenderDestroyed
	}
	if receiver != nil && receiver.IsDestroyed() {
		return ErrReceiverDestroyed
	}
	if mode == Unique && e.findLive(receiver, slot) {
		return nil
	}

	c := newConnection(e.owner, receiver, slot)
	if receiver != nil {
		receiver.addInbound(&c.link)
	}
	if e.nested == 0 {
		e.conns.Append(c, e.keep)
	} else {
		e.pending = append(e.pending, c)
	}
	return nil
}

// Emit calls every live slot in connection order with arg. Inside the slots
// Sender(ctx) returns the emitter's owner.
func (e *Emitter[A]) Emit(ctx context.Context, arg A) {
	withSender(ctx, e.owner, func(ctx context.Context) {
		e.enter()
		defer e.leave()

		for i := 0; i < e.conns.Len(); i++ {
			c := e.conns.At(i)
			if c == nil {
				continue
			}
			if c.live() {
				c.slot.Invoke(ctx, arg)
				continue
			}
			// the receiver let go, finish the release from this side
			if c.releaseFromEmitter() {
				e.conns.Clear(i)
			}
		}
	})
}

func (e *Emitter[A]) enter() {
	e.nested++
	e.conns.Pin()
}

func (e *Emitter[A]) leave() {
	e.conns.Unpin()
	e.nested--
	if e.nested > 0 {
		return
	}

	if n := e.conns.Len(); n > 0 && e.conns.Tombstones()*compactRatio > n {
		e.conns.Compact(nil)
	}
	if len(e.pending) > 0 {
		pending := e.pending
		e.pending = nil
		for _, c := range pending {
			e.conns.Append(c, e.keep)
		}
	}
}

// keep reports whether c stays in the list during a sweep. Connections the
// receiver already released are released from this side before they go.
func (e *Emitter[A]) keep(c *connection[A]) bool {
	if c.live() {
		return true
	}
	c.releaseFromEmitter()
	return false
}

// DisconnectAll releases every connection of this emitter and reports
// whether there was any.
func (e *Emitter[A]) DisconnectAll() bool {
	removed := false
	for i := 0; i < e.conns.Len(); i++ {
		c := e.conns.At(i)
		if c == nil {
			continue
		}
		c.releaseFromEmitter()
		e.conns.Clear(i)
		removed = true
	}
	for _, c := range e.pending {
		c.releaseFromEmitter()
		removed = true
	}
	e.pending = nil
	if e.nested == 0 {
		e.conns.Reset()
	}
	return removed
}

// DisconnectReceiver releases every live connection whose receiver is
// receiver. A nil receiver selects the connections made without one.
func (e *Emitter[A]) DisconnectReceiver(receiver *Node) bool {
	return e.disconnect(receiver, nil)
}

// DisconnectSlot releases the first live connection to receiver whose slot
// equals slot. It returns false for slots that do not implement Equaler.
func (e *Emitter[A]) DisconnectSlot(receiver *Node, slot Slot[A]) bool {
	if slot == nil || !comparableSlot(slot) {
		return false
	}
	return e.disconnect(receiver, slot)
}

func (e *Emitter[A]) disconnect(receiver *Node, slot Slot[A]) bool {
	removed := false
	for i := 0; i < e.conns.Len(); i++ {
		c := e.conns.At(i)
		if c == nil || !c.live() || !c.matches(receiver, slot) {
			continue
		}
		c.releaseFromEmitter()
		e.conns.Clear(i)
		if slot != nil {
			return true
		}
		removed = true
	}

	n := 0
	for _, c := range e.pending {
		if (slot == nil || !removed) && c.live() && c.matches(receiver, slot) {
			c.releaseFromEmitter()
			removed = true
			continue
		}
		e.pending[n] = c
		n++
	}
	clear(e.pending[n:])
	e.pending = e.pending[:n]
	return removed
}

func (e *Emitter[A]) findLive(receiver *Node, slot Slot[A]) bool {
	for i := 0; i < e.conns.Len(); i++ {
		if c := e.conns.At(i); c != nil && c.live() && c.matches(receiver, slot) {
			return true
		}
	}
	for _, c := range e.pending {
		if c.live() && c.matches(receiver, slot) {
			return true
		}
	}
	return false
}

// Len counts the live connections, including those waiting for the current
// Emit to return.
func (e *Emitter[A]) Len() int {
	n := 0
	for i := 0; i < e.conns.Len(); i++ {
		if c := e.conns.At(i); c != nil && c.live() {
			n++
		}
	}
	for _, c := range e.pending {
		if c.live() {
			n++
		}
	}
	return n
}

// Receivers returns the distinct receivers of the live connections.
func (e *Emitter[A]) Receivers() mapset.Set[*Node] {
	set := mapset.NewThreadUnsafeSet[*Node]()
	for i := 0; i < e.conns.Len(); i++ {
		if c := e.conns.At(i); c != nil && c.live() && c.receiver != nil {
			set.Add(c.receiver)
		}
	}
	for _, c := range e.pending {
		if c.live() && c.receiver != nil {
			set.Add(c.receiver)
		}
	}
	return set
}
