package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	catalogmodel "library-engine/domains/catalog/model"
	"library-engine/domains/lending/model"
	membermodel "library-engine/domains/member/model"
)

// Reserve implements Service.Reserve
func (s *LendingService) Reserve(ctx context.Context, memberID, bookID uuid.UUID) (*model.Reservation, error) {
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
	if book.AvailableCopies > 0 {
		return nil, fmt.Errorf("%w: available=%d", model.ErrCopiesStillAvailable, book.AvailableCopies)
	}

	existing, err := s.reservations.FindOpenByMemberAndBook(ctx, memberID, bookID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: reservation_id=%s", model.ErrDuplicateReservation, existing.ID)
	}

	alreadyHolds, err := s.loans.HasActiveByMemberAndBook(ctx, memberID, bookID)
	if err != nil {
		return nil, err
	}
	if alreadyHolds {
		return nil, fmt.Errorf("%w: book_id=%s", model.ErrAlreadyOnLoan, bookID)
	}

	reservation := &model.Reservation{
		ID:         uuid.New(),
		MemberID:   memberID,
		BookID:     bookID,
		ReservedAt: s.clk.Now(),
		Status:     model.ReservationStatusActive,
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("reservation_id", reservation.ID.String()).
		Str("member_id", memberID.String()).
		Str("book_id", bookID.String()).
		Msg("reservation placed")

	return reservation, nil
}

// CancelReservation implements Service.CancelReservation
func (s *LendingService) CancelReservation(ctx context.Context, reservationID uuid.UUID) error {
	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	// No status guard: cancelling a ready or cancelled reservation is a
	// designed idempotent no-op.
	reservation.Status = model.ReservationStatusCancelled
	reservation.ExpiresAt = nil
	return s.reservations.Update(ctx, reservation)
}

// GetReservation implements Service.GetReservation
func (s *LendingService) GetReservation(ctx context.Context, reservationID uuid.UUID) (*model.Reservation, error) {
	return s.reservations.GetByID(ctx, reservationID)
}

// cancelSubsumedReservation closes the member's own queued reservation or
// ready hold once they borrow the book: the loan supersedes it either way.
func (s *LendingService) cancelSubsumedReservation(ctx context.Context, memberID, bookID uuid.UUID) error {
	reservation, err := s.reservations.FindOpenByMemberAndBook(ctx, memberID, bookID)
	if err != nil {
		return err
	}
	if reservation == nil {
		return nil
	}

	reservation.Status = model.ReservationStatusCancelled
	reservation.ExpiresAt = nil
	return s.reservations.Update(ctx, reservation)
}

// promoteNext moves the oldest waiting reservation for the book to ready
// with a pickup window. At most one reservation is promoted per freed copy.
func (s *LendingService) promoteNext(ctx context.Context, bookID uuid.UUID) error {
	reservation, err := s.reservations.OldestActiveByBook(ctx, bookID)
	if err != nil {
		return err
	}
	if reservation == nil {
		return nil
	}

	expires := s.clk.Now().AddDate(0, 0, s.cfg.HoldExpiryDays)
	reservation.Status = model.ReservationStatusReady
	reservation.ExpiresAt = &expires

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return err
	}

	s.log.Info().
		Str("reservation_id", reservation.ID.String()).
		Str("book_id", bookID.String()).
		Time("expires_at", expires).
		Msg("reservation promoted to ready")

	return nil
}
