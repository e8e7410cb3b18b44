package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-engine/pkg/fault"
)

var (
	// ErrMemberNotFound is returned when no member exists for the identifier.
	ErrMemberNotFound = fault.Input(errors.New("member not found"))

	// ErrDuplicateEmail is returned when registering a member whose email is
	// already taken.
	ErrDuplicateEmail = fault.Conflict(errors.New("a member with this email is already registered"))

	// ErrMemberInactive is returned when an operation requires an active
	// membership.
	ErrMemberInactive = fault.Conflict(errors.New("member is not active"))

	// ErrNegativeFineBalance is returned when a balance adjustment would
	// push outstanding fines below zero.
	ErrNegativeFineBalance = fault.Conflict(errors.New("fine balance cannot go negative"))

	// ErrInvalidPaymentAmount is returned when a fine payment is zero or
	// negative.
	ErrInvalidPaymentAmount = fault.Input(errors.New("payment amount must be positive"))

	// ErrPaymentExceedsBalance is returned when a fine payment is larger
	// than the outstanding balance.
	ErrPaymentExceedsBalance = fault.Input(errors.New("payment exceeds outstanding fine balance"))
)

// NewMemberNotFoundError decorates ErrMemberNotFound with the identifier.
func NewMemberNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrMemberNotFound, id)
}

// NewDuplicateEmailError decorates ErrDuplicateEmail with the email.
func NewDuplicateEmailError(email string) error {
	return fmt.Errorf("%w: email=%s", ErrDuplicateEmail, email)
}

// IsNotFoundError checks if err means the member does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrMemberNotFound)
}
