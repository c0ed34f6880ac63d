package ctl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownState is wrapped by every error caused by a reference to a
	// state that was never registered with AddState.
	ErrUnknownState = errors.New("unknown state")
	// ErrDuplicateState is returned by AddState when the id is already taken.
	ErrDuplicateState = errors.New("duplicate state")
)

// UnknownStateError reports a reference to an unregistered state.
// Op names the structure operation that received the bad id.
type UnknownStateError struct {
	Op    string
	State any
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrUnknownState, e.State)
}

func (e *UnknownStateError) Unwrap() error {
	return ErrUnknownState
}
