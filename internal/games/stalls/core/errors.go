package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when an offer needs a resource in stock
	// and the inventory holds none.
	ErrInvalidState = errors.New("no resource kind has positive stock")

	// ErrGenerationExhausted is returned when every re-roll within the
	// attempt cap produced a dead offer.
	ErrGenerationExhausted = errors.New("offer generation retry cap exceeded")

	// ErrUnknownTransition matches every *UnknownTransitionError.
	ErrUnknownTransition = errors.New("unknown stall transition")

	// ErrGameOver is returned when an action reaches a finished session.
	ErrGameOver = errors.New("game is over")
)

// UnknownTransitionError reports a walk between two stalls that has no
// tabulated path.
type UnknownTransitionError struct {
	From, To int
}

func (e *UnknownTransitionError) Error() string {
	return fmt.Sprintf("unknown stall transition %d -> %d", e.From, e.To)
}

// Is makes errors.Is(err, ErrUnknownTransition) match.
func (e *UnknownTransitionError) Is(target error) bool {
	return target == ErrUnknownTransition
}
