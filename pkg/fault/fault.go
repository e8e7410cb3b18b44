// Package fault classifies domain errors into the two kinds callers can act
// on: invalid input (fix the request and retry) and state conflicts (wait for
// the domain state to change). Sentinel errors from the domain model packages
// are wrapped once, at declaration, so errors.Is keeps working on the
// sentinel while errors.As recovers the kind.
package fault

import "errors"

type Kind string

const (
	KindInput    Kind = "input"
	KindConflict Kind = "state_conflict"
)

// Error pairs a domain error with its kind.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// Input marks err as malformed or semantically invalid caller input.
func Input(err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindInput, err: err}
}

// Conflict marks err as an operation rejected by current domain state.
func Conflict(err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindConflict, err: err}
}

// KindOf reports the kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.kind
	}
	return ""
}

func IsInput(err error) bool { return KindOf(err) == KindInput }

func IsConflict(err error) bool { return KindOf(err) == KindConflict }
