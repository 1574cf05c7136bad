package entity

import (
	"errors"
	"fmt"
)

// Domain errors for quantum number validation.
var (
	// ErrPrincipalTooSmall indicates a principal quantum number below 1.
	ErrPrincipalTooSmall = errors.New("entity: principal quantum number n must be >= 1")

	// ErrAngularNegative indicates a negative angular momentum quantum number.
	ErrAngularNegative = errors.New("entity: angular momentum quantum number l must be >= 0")

	// ErrAngularTooLarge indicates l >= n, which has no bound hydrogen state.
	ErrAngularTooLarge = errors.New("entity: angular momentum quantum number l must be < n")
)

// State is a hydrogen quantum state (n, l). Immutable value type.
type State struct {
	N int
	L int
}

func NewState(n, l int) (State, error) {
	st := State{N: n, L: l}
	if err := st.Validate(); err != nil {
		return State{}, err
	}
	return st, nil
}

// Validate checks n >= 1 and 0 <= l < n.
func (s State) Validate() error {
	if s.N < 1 {
		return fmt.Errorf("%w: got n=%d", ErrPrincipalTooSmall, s.N)
	}
	if s.L < 0 {
		return fmt.Errorf("%w: got l=%d", ErrAngularNegative, s.L)
	}
	if s.L >= s.N {
		return fmt.Errorf("%w: got n=%d, l=%d", ErrAngularTooLarge, s.N, s.L)
	}
	return nil
}

// Energy returns the state's energy level in eV, -13.6/n².
// Degenerate in l for the idealized non-relativistic hydrogen atom.
func (s State) Energy() float64 {
	return -13.6 / float64(s.N*s.N)
}

func (s State) Label() string {
	return fmt.Sprintf("n=%d, l=%d", s.N, s.L)
}
