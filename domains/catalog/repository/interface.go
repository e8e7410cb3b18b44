package repository

import (
	"context"

	"github.com/google/uuid"

	"library-engine/domains/catalog/model"
)

// Repository defines the contract for catalog storage. Implementations own
// the book records; callers receive copies and persist changes through
// Update, never by mutating a shared pointer.
type Repository interface {
	// Create stores a new book.
	// Returns ErrDuplicateISBN when the ISBN already exists.
	Create(ctx context.Context, book *model.Book) error

	// GetByID retrieves a book by identifier.
	// Returns ErrBookNotFound when no such book exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetByISBN retrieves a book by its normalized ISBN.
	// Returns ErrBookNotFound when no such book exists.
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Update replaces the stored record for book.ID.
	// Returns ErrBookNotFound when no such book exists.
	Update(ctx context.Context, book *model.Book) error

	// Search returns active books whose title, author or ISBN contains the
	// query, case-insensitively, in registration order.
	Search(ctx context.Context, query string) ([]model.Book, error)

	// CountActive returns the number of active books.
	CountActive(ctx context.Context) (int, error)

	// CountActiveByCategory returns per-category counts of active books.
	CountActiveByCategory(ctx context.Context) (map[model.Category]int, error)
}
