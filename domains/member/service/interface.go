package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"library-engine/domains/member/model"
)

// Service defines the business logic for membership. The lending core only
// consumes GetMember, AdjustFineBalance, AddLoyaltyPoints and
// IncrementBorrowCount.
type Service interface {
	// RegisterMember validates and enrolls a patron.
	// Returns ErrDuplicateEmail when the email is taken.
	RegisterMember(ctx context.Context, req model.RegisterMemberRequest) (*model.Member, error)

	// GetMember returns a copy of the member record.
	// Returns ErrMemberNotFound when no such member exists.
	GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error)

	// FindByEmail looks a member up by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*model.Member, error)

	// AdjustFineBalance moves the outstanding fine balance by delta.
	// Returns ErrNegativeFineBalance when the result would go below zero.
	AdjustFineBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	// AddLoyaltyPoints awards n loyalty points.
	AddLoyaltyPoints(ctx context.Context, id uuid.UUID, n int) error

	// IncrementBorrowCount bumps the lifetime borrow counter.
	IncrementBorrowCount(ctx context.Context, id uuid.UUID) error

	// PayFine settles part or all of the member's outstanding fines and
	// awards loyalty points equal to the whole units paid.
	// Returns ErrInvalidPaymentAmount for non-positive amounts and
	// ErrPaymentExceedsBalance when amount is larger than the balance.
	PayFine(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Member, error)

	// DeactivateMember suspends a membership. Deactivating an inactive
	// member is a no-op.
	DeactivateMember(ctx context.Context, id uuid.UUID) error

	// ActivateMember reinstates a membership. Activating an active member
	// is a no-op.
	ActivateMember(ctx context.Context, id uuid.UUID) error

	// CountActive returns the number of active members.
	CountActive(ctx context.Context) (int, error)

	// TotalOutstandingFines sums fine balances across all members.
	TotalOutstandingFines(ctx context.Context) (decimal.Decimal, error)
}
