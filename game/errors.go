package game

import (
	"errors"
	"fmt"
)

// ErrDeckExhausted is returned when a card must be drawn but both piles are
// empty. Unreachable with normal deck sizes; never retried.
var ErrDeckExhausted = errors.New("ran out of cards")

// DecodeError reports a malformed 2-character card code.
type DecodeError struct {
	Code string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid card code %q", e.Code)
}

// IllegalActionError reports an action that is not in the current
// legal-action list. The action is rejected before any state mutation.
type IllegalActionError struct {
	Action Action
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action: %s", e.Action)
}
