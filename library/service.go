// Package library composes the catalog, membership and lending services
// into the public library operations. Every operation takes identifiers,
// never entity pointers; entity ownership stays inside the domain services.
//
// The engine is synchronous and in-memory. Individual repository operations
// are safe for concurrent use, but mutating operations perform
// read-then-write sequences across repositories, so concurrent callers must
// serialize operations that touch the same member or book.
package library

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"library-engine/config"
	catalogmodel "library-engine/domains/catalog/model"
	catalogrepo "library-engine/domains/catalog/repository"
	catalogservice "library-engine/domains/catalog/service"
	lendingmodel "library-engine/domains/lending/model"
	lendingrepo "library-engine/domains/lending/repository"
	lendingservice "library-engine/domains/lending/service"
	membermodel "library-engine/domains/member/model"
	memberrepo "library-engine/domains/member/repository"
	memberservice "library-engine/domains/member/service"
	"library-engine/pkg/clock"
	"library-engine/pkg/logger"
)

// Service is the orchestrator and the module's public surface.
type Service struct {
	catalog catalogservice.Service
	members memberservice.Service
	lending lendingservice.Service
}

// New wires a Service on fresh in-memory repositories. The clock is
// injected so due dates, fines and hold expiries are testable against a
// fixed instant; pass clock.NewSystem() in production.
func New(cfg *config.Config, clk clock.Clock) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	logger.Init(cfg.App.Environment)

	catalog := catalogservice.NewService(catalogrepo.NewMemoryRepository(), clk)
	members := memberservice.NewService(memberrepo.NewMemoryRepository(), clk)
	lending := lendingservice.NewService(
		lendingrepo.NewMemoryLoanRepository(),
		lendingrepo.NewMemoryReservationRepository(),
		catalog,
		members,
		cfg.Policy,
		clk,
	)

	return &Service{
		catalog: catalog,
		members: members,
		lending: lending,
	}
}

// RegisterBook adds a title to the catalog.
func (s *Service) RegisterBook(ctx context.Context, req catalogmodel.RegisterBookRequest) (*catalogmodel.Book, error) {
	return s.catalog.RegisterBook(ctx, req)
}

// RegisterMember enrolls a patron.
func (s *Service) RegisterMember(ctx context.Context, req membermodel.RegisterMemberRequest) (*membermodel.Member, error) {
	return s.members.RegisterMember(ctx, req)
}

// Borrow lends a copy of the book to the member.
func (s *Service) Borrow(ctx context.Context, memberID, bookID uuid.UUID) (*lendingmodel.Loan, error) {
	return s.lending.Borrow(ctx, memberID, bookID)
}

// ReturnLoan closes an active loan and reports the fine assessed.
func (s *Service) ReturnLoan(ctx context.Context, loanID uuid.UUID) (decimal.Decimal, error) {
	return s.lending.Return(ctx, loanID)
}

// RenewLoan extends an active loan and returns the new due date.
func (s *Service) RenewLoan(ctx context.Context, loanID uuid.UUID) (time.Time, error) {
	return s.lending.Renew(ctx, loanID)
}

// ReserveBook places a claim on the next free copy of a lent-out book.
func (s *Service) ReserveBook(ctx context.Context, memberID, bookID uuid.UUID) (*lendingmodel.Reservation, error) {
	return s.lending.Reserve(ctx, memberID, bookID)
}

// CancelReservation cancels a reservation; repeat cancels are no-ops.
func (s *Service) CancelReservation(ctx context.Context, reservationID uuid.UUID) error {
	return s.lending.CancelReservation(ctx, reservationID)
}

// PayFine settles part or all of a member's outstanding fines and awards
// loyalty points equal to the whole units paid.
func (s *Service) PayFine(ctx context.Context, memberID uuid.UUID, amount decimal.Decimal) (*membermodel.Member, error) {
	return s.members.PayFine(ctx, memberID, amount)
}

// SearchBooks matches the query case-insensitively against title, author
// and ISBN of active books.
func (s *Service) SearchBooks(ctx context.Context, query string) ([]catalogmodel.Book, error) {
	return s.catalog.Search(ctx, query)
}

// OverdueLoans returns active loans past their due date with days overdue
// and the fine a return right now would cost.
func (s *Service) OverdueLoans(ctx context.Context) ([]lendingmodel.OverdueLoan, error) {
	return s.lending.OverdueLoans(ctx)
}

// MemberLoans returns the member's loan history, oldest first.
func (s *Service) MemberLoans(ctx context.Context, memberID uuid.UUID) ([]lendingmodel.Loan, error) {
	return s.lending.MemberLoans(ctx, memberID)
}

// GetBook returns a copy of the book record.
func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*catalogmodel.Book, error) {
	return s.catalog.GetBook(ctx, id)
}

// GetMember returns a copy of the member record.
func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*membermodel.Member, error) {
	return s.members.GetMember(ctx, id)
}

// GetLoan returns a copy of the loan record.
func (s *Service) GetLoan(ctx context.Context, id uuid.UUID) (*lendingmodel.Loan, error) {
	return s.lending.GetLoan(ctx, id)
}

// GetReservation returns a copy of the reservation record.
func (s *Service) GetReservation(ctx context.Context, id uuid.UUID) (*lendingmodel.Reservation, error) {
	return s.lending.GetReservation(ctx, id)
}

// Catalog exposes the full catalog service for administration.
func (s *Service) Catalog() catalogservice.Service { return s.catalog }

// Members exposes the full membership service for administration.
func (s *Service) Members() memberservice.Service { return s.members }
