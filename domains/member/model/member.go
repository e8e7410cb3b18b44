package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents the membership tier. Loan limits and fine discounts hang
// off it.
type Type string

const (
	TypeRegular   Type = "regular"
	TypeStudent   Type = "student"
	TypeProfessor Type = "professor"
	TypeVIP       Type = "vip"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRegular, TypeStudent, TypeProfessor, TypeVIP:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Member is a library patron. OutstandingFines and LoyaltyPoints never go
// negative; BorrowCount counts lifetime borrows.
type Member struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Type  Type      `json:"type"`

	IsActive bool `json:"is_active"`

	OutstandingFines decimal.Decimal `json:"outstanding_fines"`
	LoyaltyPoints    int             `json:"loyalty_points"`
	BorrowCount      int             `json:"borrow_count"`

	JoinedAt time.Time `json:"joined_at"`
}
