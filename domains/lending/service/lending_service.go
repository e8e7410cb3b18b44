package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"library-engine/config"
	catalogmodel "library-engine/domains/catalog/model"
	"library-engine/domains/lending/model"
	"library-engine/domains/lending/policy"
	"library-engine/domains/lending/repository"
	membermodel "library-engine/domains/member/model"
	"library-engine/pkg/clock"
	"library-engine/pkg/logger"
)

// LendingService owns loans and reservations. Catalog and membership state
// is reached only through the narrow Catalog and Membership interfaces.
type LendingService struct {
	loans        repository.LoanRepository
	reservations repository.ReservationRepository
	catalog      Catalog
	members      Membership
	fines        *policy.FinePolicy
	cfg          config.PolicyConfig
	clk          clock.Clock
	log          zerolog.Logger
}

// NewService creates a new lending service.
func NewService(
	loans repository.LoanRepository,
	reservations repository.ReservationRepository,
	catalog Catalog,
	members Membership,
	cfg config.PolicyConfig,
	clk clock.Clock,
) Service {
	return &LendingService{
		loans:        loans,
		reservations: reservations,
		catalog:      catalog,
		members:      members,
		fines:        policy.FromConfig(cfg),
		cfg:          cfg,
		clk:          clk,
		log:          logger.Component("lending"),
	}
}

// Borrow implements Service.Borrow
func (s *LendingService) Borrow(ctx context.Context, memberID, bookID uuid.UUID) (*model.Loan, error) {
	member, err := s.members.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, fmt.Errorf("%w: member_id=%s", membermodel.ErrMemberInactive, memberID)
	}

	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !book.IsActive {
		return nil, fmt.Errorf("%w: book_id=%s", catalogmodel.ErrBookInactive, bookID)
	}
	if book.AvailableCopies <= 0 {
		return nil, fmt.Errorf("%w: book_id=%s", model.ErrNoCopiesAvailable, bookID)
	}

	// Fines at or over the ceiling block borrowing regardless of
	// availability.
	if member.OutstandingFines.GreaterThanOrEqual(s.cfg.MaxFine) {
		return nil, fmt.Errorf("%w: balance=%s, ceiling=%s",
			model.ErrFineLimitExceeded, member.OutstandingFines, s.cfg.MaxFine)
	}

	activeLoans, err := s.loans.CountActiveByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if limit := s.loanLimitFor(member.Type); activeLoans >= limit {
		return nil, fmt.Errorf("%w: active=%d, limit=%d for %s members",
			model.ErrLoanLimitReached, activeLoans, limit, member.Type)
	}

	alreadyHolds, err := s.loans.HasActiveByMemberAndBook(ctx, memberID, bookID)
	if err != nil {
		return nil, err
	}
	if alreadyHolds {
		return nil, fmt.Errorf("%w: book_id=%s", model.ErrDuplicateActiveLoan, bookID)
	}

	now := s.clk.Now()
	loan := &model.Loan{
		ID:       uuid.New(),
		MemberID: memberID,
		BookID:   bookID,
		LoanDate: now,
		DueDate:  now.AddDate(0, 0, s.cfg.LoanPeriodDays),
		Status:   model.LoanStatusActive,
		Fine:     decimal.Zero,
	}

	if err := s.loans.Create(ctx, loan); err != nil {
		return nil, err
	}
	if err := s.catalog.AdjustAvailability(ctx, bookID, -1); err != nil {
		return nil, err
	}
	if err := s.members.IncrementBorrowCount(ctx, memberID); err != nil {
		return nil, err
	}

	// A borrow subsumes the member's own waiting reservation.
	if err := s.cancelSubsumedReservation(ctx, memberID, bookID); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("loan_id", loan.ID.String()).
		Str("member_id", memberID.String()).
		Str("book_id", bookID.String()).
		Time("due_date", loan.DueDate).
		Msg("loan created")

	return loan, nil
}

// Return implements Service.Return
func (s *LendingService) Return(ctx context.Context, loanID uuid.UUID) (decimal.Decimal, error) {
	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		return decimal.Zero, err
	}
	if loan.Status != model.LoanStatusActive {
		return decimal.Zero, fmt.Errorf("%w: loan_id=%s, status=%s", model.ErrLoanNotActive, loanID, loan.Status)
	}

	member, err := s.members.GetMember(ctx, loan.MemberID)
	if err != nil {
		return decimal.Zero, err
	}

	now := s.clk.Now()
	loan.ReturnDate = &now
	loan.Status = model.LoanStatusReturned
	loan.Fine = s.fines.Assess(loan, member.Type, now)

	if err := s.loans.Update(ctx, loan); err != nil {
		return decimal.Zero, err
	}
	if err := s.catalog.AdjustAvailability(ctx, loan.BookID, 1); err != nil {
		return decimal.Zero, err
	}
	if loan.Fine.IsPositive() {
		if err := s.members.AdjustFineBalance(ctx, loan.MemberID, loan.Fine); err != nil {
			return decimal.Zero, err
		}
	}
	if err := s.members.AddLoyaltyPoints(ctx, loan.MemberID, s.cfg.ReturnLoyaltyPoints); err != nil {
		return decimal.Zero, err
	}

	// Hand the freed copy to the oldest waiting reservation.
	if err := s.promoteNext(ctx, loan.BookID); err != nil {
		return decimal.Zero, err
	}

	s.log.Info().
		Str("loan_id", loan.ID.String()).
		Str("fine", loan.Fine.StringFixed(2)).
		Msg("loan returned")

	return loan.Fine, nil
}

// Renew implements Service.Renew
func (s *LendingService) Renew(ctx context.Context, loanID uuid.UUID) (time.Time, error) {
	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		return time.Time{}, err
	}
	if loan.Status != model.LoanStatusActive {
		return time.Time{}, fmt.Errorf("%w: loan_id=%s, status=%s", model.ErrLoanNotActive, loanID, loan.Status)
	}
	if loan.Renewals >= s.cfg.RenewalLimit {
		return time.Time{}, fmt.Errorf("%w: renewals=%d", model.ErrRenewalLimitReached, loan.Renewals)
	}

	// Waiting reservations take first-come priority over renewals.
	reserved, err := s.reservations.HasActiveByBook(ctx, loan.BookID)
	if err != nil {
		return time.Time{}, err
	}
	if reserved {
		return time.Time{}, fmt.Errorf("%w: book_id=%s", model.ErrReservationPending, loan.BookID)
	}

	if s.clk.Now().After(loan.DueDate) {
		return time.Time{}, fmt.Errorf("%w: due=%s", model.ErrLoanOverdue, loan.DueDate.Format(time.RFC3339))
	}

	loan.Renewals++
	// The extension is measured from the previous due date, not from now.
	loan.DueDate = loan.DueDate.AddDate(0, 0, s.cfg.LoanPeriodDays)

	if err := s.loans.Update(ctx, loan); err != nil {
		return time.Time{}, err
	}

	s.log.Info().
		Str("loan_id", loan.ID.String()).
		Int("renewals", loan.Renewals).
		Time("due_date", loan.DueDate).
		Msg("loan renewed")

	return loan.DueDate, nil
}

// GetLoan implements Service.GetLoan
func (s *LendingService) GetLoan(ctx context.Context, loanID uuid.UUID) (*model.Loan, error) {
	return s.loans.GetByID(ctx, loanID)
}

// MemberLoans implements Service.MemberLoans
func (s *LendingService) MemberLoans(ctx context.Context, memberID uuid.UUID) ([]model.Loan, error) {
	if _, err := s.members.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	return s.loans.ListByMember(ctx, memberID)
}

// OverdueLoans implements Service.OverdueLoans
func (s *LendingService) OverdueLoans(ctx context.Context) ([]model.OverdueLoan, error) {
	active, err := s.loans.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	var overdue []model.OverdueLoan
	for i := range active {
		loan := active[i]
		if !loan.IsOverdue(now) {
			continue
		}

		member, err := s.members.GetMember(ctx, loan.MemberID)
		if err != nil {
			return nil, err
		}

		overdue = append(overdue, model.OverdueLoan{
			Loan:        loan,
			DaysOverdue: policy.DaysLate(loan.DueDate, now),
			Fine:        s.fines.Assess(&loan, member.Type, now),
		})
	}
	return overdue, nil
}

// CountActive implements Service.CountActive
func (s *LendingService) CountActive(ctx context.Context) (int, error) {
	return s.loans.CountActive(ctx)
}

// TopBorrowed implements Service.TopBorrowed
func (s *LendingService) TopBorrowed(ctx context.Context, n int) ([]model.BookLoanCount, error) {
	counts, err := s.loans.CountsByBook(ctx)
	if err != nil {
		return nil, err
	}

	// Stable sort keeps ledger encounter order for equal counts.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Loans > counts[j].Loans
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts, nil
}

func (s *LendingService) loanLimitFor(memberType membermodel.Type) int {
	switch memberType {
	case membermodel.TypeStudent:
		return s.cfg.StudentLoanLimit
	case membermodel.TypeProfessor:
		return s.cfg.ProfessorLoanLimit
	case membermodel.TypeVIP:
		return s.cfg.VIPLoanLimit
	default:
		return s.cfg.RegularLoanLimit
	}
}
