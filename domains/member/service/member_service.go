package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"library-engine/domains/member/model"
	"library-engine/domains/member/repository"
	"library-engine/pkg/clock"
	"library-engine/pkg/fault"
	"library-engine/pkg/logger"
)

type MemberService struct {
	repo repository.Repository
	clk  clock.Clock
	log  zerolog.Logger
}

// NewService creates a new membership service.
func NewService(repo repository.Repository, clk clock.Clock) Service {
	return &MemberService{
		repo: repo,
		clk:  clk,
		log:  logger.Component("membership"),
	}
}

// RegisterMember implements Service.RegisterMember
func (s *MemberService) RegisterMember(ctx context.Context, req model.RegisterMemberRequest) (*model.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, fault.Input(err)
	}

	member := &model.Member{
		ID:               uuid.New(),
		Name:             req.Name,
		Email:            req.Email,
		Type:             req.Type,
		IsActive:         true,
		OutstandingFines: decimal.Zero,
		JoinedAt:         s.clk.Now(),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("member_id", member.ID.String()).
		Str("type", member.Type.String()).
		Msg("member registered")

	return member, nil
}

// GetMember implements Service.GetMember
func (s *MemberService) GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByEmail implements Service.FindByEmail
func (s *MemberService) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	return s.repo.GetByEmail(ctx, email)
}

// AdjustFineBalance implements Service.AdjustFineBalance
func (s *MemberService) AdjustFineBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	next := member.OutstandingFines.Add(delta)
	if next.IsNegative() {
		return fmt.Errorf("%w: balance=%s, delta=%s",
			model.ErrNegativeFineBalance, member.OutstandingFines, delta)
	}

	member.OutstandingFines = next
	return s.repo.Update(ctx, member)
}

// AddLoyaltyPoints implements Service.AddLoyaltyPoints
func (s *MemberService) AddLoyaltyPoints(ctx context.Context, id uuid.UUID, n int) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	member.LoyaltyPoints += n
	return s.repo.Update(ctx, member)
}

// IncrementBorrowCount implements Service.IncrementBorrowCount
func (s *MemberService) IncrementBorrowCount(ctx context.Context, id uuid.UUID) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	member.BorrowCount++
	return s.repo.Update(ctx, member)
}

// PayFine implements Service.PayFine
func (s *MemberService) PayFine(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Member, error) {
	if err := (model.PayFineRequest{Amount: amount}).Validate(); err != nil {
		return nil, err
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if amount.GreaterThan(member.OutstandingFines) {
		return nil, fmt.Errorf("%w: amount=%s, balance=%s",
			model.ErrPaymentExceedsBalance, amount, member.OutstandingFines)
	}

	member.OutstandingFines = member.OutstandingFines.Sub(amount)
	member.LoyaltyPoints += int(amount.IntPart())

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("member_id", member.ID.String()).
		Str("paid", amount.StringFixed(2)).
		Str("balance", member.OutstandingFines.StringFixed(2)).
		Msg("fine paid")

	return member, nil
}

// DeactivateMember implements Service.DeactivateMember
func (s *MemberService) DeactivateMember(ctx context.Context, id uuid.UUID) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !member.IsActive {
		return nil
	}

	member.IsActive = false
	return s.repo.Update(ctx, member)
}

// ActivateMember implements Service.ActivateMember
func (s *MemberService) ActivateMember(ctx context.Context, id uuid.UUID) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if member.IsActive {
		// Activating an active member is a designed no-op.
		return nil
	}

	member.IsActive = true
	return s.repo.Update(ctx, member)
}

// CountActive implements Service.CountActive
func (s *MemberService) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}

// TotalOutstandingFines implements Service.TotalOutstandingFines
func (s *MemberService) TotalOutstandingFines(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalOutstandingFines(ctx)
}
