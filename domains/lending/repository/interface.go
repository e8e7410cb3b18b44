package repository

import (
	"context"

	"github.com/google/uuid"

	"library-engine/domains/lending/model"
)

// LoanRepository defines the contract for the loan ledger. Loans are kept in
// creation order; that order defines "encounter order" for aggregates.
type LoanRepository interface {
	// Create appends a new loan to the ledger.
	Create(ctx context.Context, loan *model.Loan) error

	// GetByID retrieves a loan by identifier.
	// Returns ErrLoanNotFound when no such loan exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error)

	// Update replaces the stored record for loan.ID.
	// Returns ErrLoanNotFound when no such loan exists.
	Update(ctx context.Context, loan *model.Loan) error

	// HasActiveByMemberAndBook reports whether the member currently holds
	// the book on an active loan.
	HasActiveByMemberAndBook(ctx context.Context, memberID, bookID uuid.UUID) (bool, error)

	// CountActiveByMember returns the member's number of active loans.
	CountActiveByMember(ctx context.Context, memberID uuid.UUID) (int, error)

	// ListActive returns all active loans in creation order.
	ListActive(ctx context.Context) ([]model.Loan, error)

	// ListByMember returns the member's full loan history in creation order.
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]model.Loan, error)

	// CountActive returns the number of active loans.
	CountActive(ctx context.Context) (int, error)

	// CountsByBook returns historical loan counts per book, ordered by the
	// book's first appearance in the ledger.
	CountsByBook(ctx context.Context) ([]model.BookLoanCount, error)
}

// ReservationRepository defines the contract for the reservation queue.
// Creation order is the promotion order.
type ReservationRepository interface {
	// Create appends a new reservation to the queue.
	Create(ctx context.Context, reservation *model.Reservation) error

	// GetByID retrieves a reservation by identifier.
	// Returns ErrReservationNotFound when no such reservation exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)

	// Update replaces the stored record for reservation.ID.
	// Returns ErrReservationNotFound when no such reservation exists.
	Update(ctx context.Context, reservation *model.Reservation) error

	// FindOpenByMemberAndBook returns the member's queued or ready
	// reservation for the book, or (nil, nil) when none exists.
	FindOpenByMemberAndBook(ctx context.Context, memberID, bookID uuid.UUID) (*model.Reservation, error)

	// HasActiveByBook reports whether any active reservation exists for the
	// book.
	HasActiveByBook(ctx context.Context, bookID uuid.UUID) (bool, error)

	// OldestActiveByBook returns the earliest-created active reservation for
	// the book, or (nil, nil) when none exists.
	OldestActiveByBook(ctx context.Context, bookID uuid.UUID) (*model.Reservation, error)
}
