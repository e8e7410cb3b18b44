package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"library-engine/domains/lending/model"
)

// MemoryReservationRepository is the in-memory reservation queue. Creation
// order doubles as the promotion order.
type MemoryReservationRepository struct {
	mu           sync.RWMutex
	reservations map[uuid.UUID]*model.Reservation
	order        []uuid.UUID
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{
		reservations: make(map[uuid.UUID]*model.Reservation),
	}
}

func (r *MemoryReservationRepository) Create(_ context.Context, reservation *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneReservation(reservation)
	r.reservations[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *MemoryReservationRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservation, ok := r.reservations[id]
	if !ok {
		return nil, model.NewReservationNotFoundError(id)
	}
	return cloneReservation(reservation), nil
}

func (r *MemoryReservationRepository) Update(_ context.Context, reservation *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[reservation.ID]; !ok {
		return model.NewReservationNotFoundError(reservation.ID)
	}
	r.reservations[reservation.ID] = cloneReservation(reservation)
	return nil
}

func (r *MemoryReservationRepository) FindOpenByMemberAndBook(_ context.Context, memberID, bookID uuid.UUID) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		reservation := r.reservations[id]
		open := reservation.Status == model.ReservationStatusActive ||
			reservation.Status == model.ReservationStatusReady
		if open && reservation.MemberID == memberID && reservation.BookID == bookID {
			return cloneReservation(reservation), nil
		}
	}
	return nil, nil
}

func (r *MemoryReservationRepository) HasActiveByBook(_ context.Context, bookID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reservation := range r.reservations {
		if reservation.Status == model.ReservationStatusActive && reservation.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryReservationRepository) OldestActiveByBook(_ context.Context, bookID uuid.UUID) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		reservation := r.reservations[id]
		if reservation.Status == model.ReservationStatusActive && reservation.BookID == bookID {
			return cloneReservation(reservation), nil
		}
	}
	return nil, nil
}

func cloneReservation(reservation *model.Reservation) *model.Reservation {
	clone := *reservation
	if reservation.ExpiresAt != nil {
		expires := *reservation.ExpiresAt
		clone.ExpiresAt = &expires
	}
	return &clone
}
