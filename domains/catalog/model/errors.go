package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-engine/pkg/fault"
)

var (
	// ErrBookNotFound is returned when no book exists for the identifier.
	ErrBookNotFound = fault.Input(errors.New("book not found"))

	// ErrInvalidISBN is returned when the ISBN fails checksum validation.
	ErrInvalidISBN = fault.Input(errors.New("invalid ISBN: checksum failed"))

	// ErrDuplicateISBN is returned when registering a book whose ISBN already
	// exists in the catalog.
	ErrDuplicateISBN = fault.Conflict(errors.New("a book with this ISBN is already registered"))

	// ErrBookInactive is returned when an operation requires an active book.
	ErrBookInactive = fault.Conflict(errors.New("book is not active"))

	// ErrCopiesOnLoan is returned when deactivating a book while copies are
	// still lent out.
	ErrCopiesOnLoan = fault.Conflict(errors.New("book has copies on loan"))

	// ErrAvailabilityOutOfRange is returned when an availability adjustment
	// would leave available copies below zero or above total copies.
	ErrAvailabilityOutOfRange = fault.Conflict(errors.New("available copies would leave the range [0, total copies]"))
)

// NewBookNotFoundError decorates ErrBookNotFound with the identifier.
func NewBookNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrBookNotFound, id)
}

// NewDuplicateISBNError decorates ErrDuplicateISBN with the ISBN.
func NewDuplicateISBNError(isbn string) error {
	return fmt.Errorf("%w: isbn=%s", ErrDuplicateISBN, isbn)
}

// IsNotFoundError checks if err means the book does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrBookNotFound)
}
