package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMarbles indicates a world with nothing to simulate.
	ErrNoMarbles = errors.New("sim: world has no marbles")

	// ErrNoPaths indicates a world with no curves to follow.
	ErrNoPaths = errors.New("sim: world has no paths")

	// ErrInvalidState indicates a marble reached a non-finite position.
	ErrInvalidState = errors.New("sim: marble state invalid (NaN or Inf)")
)

// SimError wraps an error with the tick and marble it occurred on.
type SimError struct {
	Tick    int
	Marble  int
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("tick %d, marble %d: %v", e.Tick, e.Marble, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
