package object

import "context"

type senderKey struct{}

// Sender returns the node whose emitter is dispatching the call that ctx was
// handed to, or nil outside of a slot.
func Sender(ctx context.Context) *Node {
	if ctx == nil {
		return nil
	}
	n, _ := ctx.Value(senderKey{}).(*Node)
	return n
}

// withSender runs body with n as the current sender. The caller's context is
// left untouched, so the previous sender is back in scope on every exit
// path, panics included.
func withSender(ctx context.Context, n *Node, body func(ctx context.Context)) {
	if ctx == nil {
		ctx = context.Background()
	}
	body(context.WithValue(ctx, senderKey{}, n))
}
