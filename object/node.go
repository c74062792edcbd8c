package object

import (
	"context"
	"errors"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotparty/pkg/tombstone"
)

var ErrOwnershipCycle = errors.New("object: node can't be owned by itself or one of its descendants")

type ownedEmitter interface {
	DisconnectAll() bool
}

// Node takes part in an ownership tree and in signal dispatch. A node owns
// its children and the emitters created on it. Destroying a node destroys
// its children, detaches it from its parent and tears down every connection
// that points at it or starts from one of its emitters.
//
// Embed *Node in types that emit or receive:
//
//	type Button struct {
//		*object.Node
//		Clicked *object.Emitter[int]
//	}
type Node struct {
	parent    *Node
	children  tombstone.List[*Node]
	inbound   tombstone.List[*link]
	emitters  []ownedEmitter
	destroyed *Emitter[*Node]
	dead      atomic.Bool
}

// New creates a node owned by parent. A nil or destroyed parent yields a
// root node.
func New(parent *Node) *Node {
	n := &Node{}
	n.destroyed = NewEmitter[*Node](n)
	if parent != nil && !parent.IsDestroyed() {
		parent.adopt(n)
	}
	return n
}

// Destroyed fires once, with the node itself, right before the node is torn
// down.
func (n *Node) Destroyed() *Emitter[*Node] {
	return n.destroyed
}

func (n *Node) IsDestroyed() bool {
	return n.dead.Load()
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the owned nodes in the order they were adopted.
func (n *Node) Children() []*Node {
	return n.children.Values()
}

// SetParent moves n under p, or makes it a root when p is nil. Reparenting
// into n's own subtree panics with ErrOwnershipCycle.
func (n *Node) SetParent(p *Node) {
	if p == n.parent || n.IsDestroyed() {
		return
	}
	if p != nil && p.within(n) {
		panic(ErrOwnershipCycle)
	}
	n.detach()
	if p != nil && !p.IsDestroyed() {
		p.adopt(n)
	}
}

func (n *Node) adopt(child *Node) {
	child.parent = n
	n.children.Append(child, nil)
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	if !n.parent.children.Remove(n) {
		panic("object: node missing from its parent's children")
	}
	n.parent = nil
}

// within reports whether n is root or one of its descendants.
func (n *Node) within(root *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == root {
			return true
		}
	}
	return false
}

// Destroy tears n down. It is safe to call more than once and from inside a
// slot; only the first call has an effect.
//
// Destroy may run on another goroutine than the one emitting into n: a
// connection caught half way is finished by whichever side lets go last.
func (n *Node) Destroy() {
	if !n.dead.CompareAndSwap(false, true) {
		return
	}

	n.destroyed.Emit(context.Background(), n)

	n.children.Pin()
	for i := 0; i < n.children.Len(); i++ {
		child := n.children.At(i)
		if child == nil {
			continue
		}
		n.children.Clear(i)
		child.parent = nil
		child.Destroy()
	}
	n.children.Unpin()
	n.children.Reset()

	n.detach()
	n.DisconnectAll()

	for _, e := range n.emitters {
		e.DisconnectAll()
	}
	n.emitters = nil
}

// Disconnect releases, from the receiving side, every connection that
// sender's emitters made to n.
func (n *Node) Disconnect(sender *Node) bool {
	if sender == nil {
		return false
	}
	removed := false
	for i := 0; i < n.inbound.Len(); i++ {
		l := n.inbound.At(i)
		if l == nil || l.sender != sender {
			continue
		}
		if l.live() {
			removed = true
		}
		l.release()
		n.inbound.Clear(i)
	}
	return removed
}

// DisconnectAll releases every connection made to n.
func (n *Node) DisconnectAll() bool {
	removed := false
	for i := 0; i < n.inbound.Len(); i++ {
		l := n.inbound.At(i)
		if l == nil {
			continue
		}
		if l.live() {
			removed = true
		}
		l.release()
		n.inbound.Clear(i)
	}
	n.inbound.Reset()
	return removed
}

// Senders returns the distinct owners of emitters connected to n.
func (n *Node) Senders() mapset.Set[*Node] {
	set := mapset.NewThreadUnsafeSet[*Node]()
	for i := 0; i < n.inbound.Len(); i++ {
		if l := n.inbound.At(i); l != nil && l.live() && l.sender != nil {
			set.Add(l.sender)
		}
	}
	return set
}

func (n *Node) addInbound(l *link) {
	n.inbound.Append(l, keepInbound)
}

func (n *Node) addEmitter(e ownedEmitter) {
	n.emitters = append(n.emitters, e)
}

// keepInbound sweeps links whose emitter side already let go, finishing the
// release from the receiving side.
func keepInbound(l *link) bool {
	if l.live() {
		return true
	}
	l.release()
	return false
}
