package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"library-engine/domains/member/model"
)

// Repository defines the contract for membership storage. Email uniqueness
// is enforced here; callers receive copies and persist through Update.
type Repository interface {
	// Create stores a new member.
	// Returns ErrDuplicateEmail when the email already exists.
	Create(ctx context.Context, member *model.Member) error

	// GetByID retrieves a member by identifier.
	// Returns ErrMemberNotFound when no such member exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Member, error)

	// GetByEmail retrieves a member by email.
	// Returns ErrMemberNotFound when no such member exists.
	GetByEmail(ctx context.Context, email string) (*model.Member, error)

	// Update replaces the stored record for member.ID.
	// Returns ErrMemberNotFound when no such member exists.
	Update(ctx context.Context, member *model.Member) error

	// CountActive returns the number of active members.
	CountActive(ctx context.Context) (int, error)

	// TotalOutstandingFines sums fine balances across all members.
	TotalOutstandingFines(ctx context.Context) (decimal.Decimal, error)
}
