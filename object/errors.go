package object

import (
	"errors"
	"fmt"
)

var (
	ErrNilSlot           = errors.New("slot is nil")
	ErrSlotNotComparable = errors.New("slot does not implement Equaler")
	ErrReceiverDestroyed = errors.New("receiver is destroyed")
	ErrSenderDestroyed   = errors.New("emitter owner is destroyed")
)

// BindingError reports a slot rejected before any connection was created.
type BindingError struct {
	Mode Mode
	Err  error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("can't bind slot in %s mode: %v", e.Mode, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

func bind[A any](slot Slot[A], mode Mode) error {
	if slot == nil {
		return &BindingError{Mode: mode, Err: ErrNilSlot}
	}
	if v, ok := slot.(validator); ok && !v.valid() {
		return &BindingError{Mode: mode, Err: ErrNilSlot}
	}
	if mode == Unique && !comparableSlot(slot) {
		return &BindingError{Mode: mode, Err: ErrSlotNotComparable}
	}
	return nil
}
