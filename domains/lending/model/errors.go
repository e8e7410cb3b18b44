package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-engine/pkg/fault"
)

var (
	// ErrLoanNotFound is returned when no loan exists for the identifier.
	ErrLoanNotFound = fault.Input(errors.New("loan not found"))

	// ErrLoanNotActive is returned when returning or renewing a loan that
	// has already been returned.
	ErrLoanNotActive = fault.Conflict(errors.New("loan is not active"))

	// ErrNoCopiesAvailable is returned when borrowing a book with no copies
	// on the shelf.
	ErrNoCopiesAvailable = fault.Conflict(errors.New("no copies available"))

	// ErrFineLimitExceeded is returned when a member's outstanding fines
	// block borrowing, regardless of availability.
	ErrFineLimitExceeded = fault.Conflict(errors.New("outstanding fines block borrowing"))

	// ErrLoanLimitReached is returned when a member is at the active-loan
	// ceiling for their membership type.
	ErrLoanLimitReached = fault.Conflict(errors.New("active loan limit reached"))

	// ErrDuplicateActiveLoan is returned when a member already holds this
	// book on an active loan.
	ErrDuplicateActiveLoan = fault.Conflict(errors.New("member already holds an active loan for this book"))

	// ErrRenewalLimitReached is returned when a loan has used up its
	// renewals.
	ErrRenewalLimitReached = fault.Conflict(errors.New("renewal limit reached"))

	// ErrReservationPending is returned when renewing a loan on a book with
	// an active reservation; waiting reservations take priority.
	ErrReservationPending = fault.Conflict(errors.New("an active reservation blocks renewal"))

	// ErrLoanOverdue is returned when renewing a loan past its due date.
	ErrLoanOverdue = fault.Conflict(errors.New("overdue loan cannot be renewed"))

	// ErrReservationNotFound is returned when no reservation exists for the
	// identifier.
	ErrReservationNotFound = fault.Input(errors.New("reservation not found"))

	// ErrCopiesStillAvailable is returned when reserving a book that can be
	// borrowed right away.
	ErrCopiesStillAvailable = fault.Conflict(errors.New("copies are available, borrow instead of reserving"))

	// ErrDuplicateReservation is returned when a member already has an
	// active reservation for this book.
	ErrDuplicateReservation = fault.Conflict(errors.New("member already has an active reservation for this book"))

	// ErrAlreadyOnLoan is returned when a member tries to reserve a book
	// they currently hold.
	ErrAlreadyOnLoan = fault.Conflict(errors.New("member already holds this book on loan"))
)

// NewLoanNotFoundError decorates ErrLoanNotFound with the identifier.
func NewLoanNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrLoanNotFound, id)
}

// NewReservationNotFoundError decorates ErrReservationNotFound with the
// identifier.
func NewReservationNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrReservationNotFound, id)
}
