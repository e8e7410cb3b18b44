package service

import (
	"context"

	"github.com/google/uuid"

	"library-engine/domains/catalog/model"
)

// Service defines the business logic for the catalog. The lending core only
// consumes GetBook and AdjustAvailability; the rest serves registration and
// presentation layers.
type Service interface {
	// RegisterBook validates and stores a new title. All copies start
	// available. Returns ErrInvalidISBN on a failed checksum and
	// ErrDuplicateISBN when the ISBN already exists.
	RegisterBook(ctx context.Context, req model.RegisterBookRequest) (*model.Book, error)

	// GetBook returns a copy of the book record.
	// Returns ErrBookNotFound when no such book exists.
	GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// FindByISBN looks a book up by ISBN in any accepted format.
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Search matches the query case-insensitively against title, author and
	// ISBN of active books.
	Search(ctx context.Context, query string) ([]model.Book, error)

	// AdjustAvailability moves available copies by delta (negative on
	// borrow, positive on return). Returns ErrAvailabilityOutOfRange when
	// the result would violate 0 <= available <= total.
	AdjustAvailability(ctx context.Context, id uuid.UUID, delta int) error

	// AddCopies grows both total and available copies by n.
	AddCopies(ctx context.Context, id uuid.UUID, n int) (*model.Book, error)

	// DeactivateBook retires a title. Returns ErrCopiesOnLoan while any copy
	// is lent out. Deactivating an inactive book is a no-op.
	DeactivateBook(ctx context.Context, id uuid.UUID) error

	// ActivateBook puts a title back in circulation. Activating an active
	// book is a no-op.
	ActivateBook(ctx context.Context, id uuid.UUID) error

	// TagBook adds a tag to the book. Adding a present tag is a no-op.
	TagBook(ctx context.Context, id uuid.UUID, tag string) error

	// UntagBook removes a tag from the book. Removing an absent tag is a
	// no-op.
	UntagBook(ctx context.Context, id uuid.UUID, tag string) error

	// CountActive returns the number of active titles.
	CountActive(ctx context.Context) (int, error)

	// CountByCategory returns active title counts per category.
	CountByCategory(ctx context.Context) (map[model.Category]int, error)
}
