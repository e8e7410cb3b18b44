package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents a reservation's place in the hand-off
// protocol: active (waiting), ready (a copy is held) or cancelled.
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusReady     ReservationStatus = "ready"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusActive, ReservationStatusReady, ReservationStatusCancelled:
		return true
	}
	return false
}

func (s ReservationStatus) String() string {
	return string(s)
}

// Reservation is a member's claim on the next free copy of a book.
// ExpiresAt is set only when the reservation is promoted to ready.
type Reservation struct {
	ID       uuid.UUID `json:"id"`
	MemberID uuid.UUID `json:"member_id"`
	BookID   uuid.UUID `json:"book_id"`

	ReservedAt time.Time         `json:"reserved_at"`
	Status     ReservationStatus `json:"status"`
	ExpiresAt  *time.Time        `json:"expires_at,omitempty"`
}
