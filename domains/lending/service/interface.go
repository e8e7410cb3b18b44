package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodel "library-engine/domains/catalog/model"
	"library-engine/domains/lending/model"
	membermodel "library-engine/domains/member/model"
)

// Catalog is the narrow view of the catalog the lending core consumes.
type Catalog interface {
	GetBook(ctx context.Context, id uuid.UUID) (*catalogmodel.Book, error)
	AdjustAvailability(ctx context.Context, id uuid.UUID, delta int) error
}

// Membership is the narrow view of membership the lending core consumes.
type Membership interface {
	GetMember(ctx context.Context, id uuid.UUID) (*membermodel.Member, error)
	AdjustFineBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	AddLoyaltyPoints(ctx context.Context, id uuid.UUID, n int) error
	IncrementBorrowCount(ctx context.Context, id uuid.UUID) error
}

// Service is the loan lifecycle and reservation hand-off engine.
type Service interface {
	// Borrow lends a copy of the book to the member. Preconditions, checked
	// in order, each with its own error: member exists and is active; book
	// exists, is active and has copies; outstanding fines are under the
	// ceiling; the member is under their type's active-loan limit; the
	// member does not already hold this book. A successful borrow cancels
	// the member's active reservation for the book, if any.
	Borrow(ctx context.Context, memberID, bookID uuid.UUID) (*model.Loan, error)

	// Return closes an active loan and reports the fine assessed. The copy
	// goes back on the shelf, the fine (if any) lands on the member's
	// balance, loyalty points are awarded and the oldest waiting
	// reservation for the book is promoted.
	Return(ctx context.Context, loanID uuid.UUID) (decimal.Decimal, error)

	// Renew extends an active loan's due date by one loan period measured
	// from the previous due date. Fails once the renewal limit is used up,
	// while any reservation is waiting on the book, or when the loan is
	// already overdue.
	Renew(ctx context.Context, loanID uuid.UUID) (time.Time, error)

	// GetLoan returns a copy of the loan record.
	GetLoan(ctx context.Context, loanID uuid.UUID) (*model.Loan, error)

	// Reserve places a claim on the next free copy of a fully lent-out
	// book. Fails while copies are available, on a duplicate active
	// reservation, or when the member already holds the book.
	Reserve(ctx context.Context, memberID, bookID uuid.UUID) (*model.Reservation, error)

	// CancelReservation cancels a reservation regardless of its current
	// status; cancelling a ready or already-cancelled reservation is a
	// designed no-op.
	CancelReservation(ctx context.Context, reservationID uuid.UUID) error

	// GetReservation returns a copy of the reservation record.
	GetReservation(ctx context.Context, reservationID uuid.UUID) (*model.Reservation, error)

	// MemberLoans returns the member's loan history, oldest first.
	MemberLoans(ctx context.Context, memberID uuid.UUID) ([]model.Loan, error)

	// OverdueLoans returns active loans past their due date, each annotated
	// with whole days overdue and the fine a return right now would cost.
	OverdueLoans(ctx context.Context) ([]model.OverdueLoan, error)

	// CountActive returns the number of active loans.
	CountActive(ctx context.Context) (int, error)

	// TopBorrowed returns up to n books ranked by historical loan count,
	// ties broken by the order books first appear in the ledger.
	TopBorrowed(ctx context.Context, n int) ([]model.BookLoanCount, error)
}
