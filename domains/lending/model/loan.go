package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents the loan state machine: a loan is created active and
// terminates only through return.
type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"
	LoanStatusReturned LoanStatus = "returned"
)

func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanStatusActive, LoanStatusReturned:
		return true
	}
	return false
}

func (s LoanStatus) String() string {
	return string(s)
}

// Loan records a book copy lent to a member. DueDate never decreases across
// renewals; Fine is set once, on return.
type Loan struct {
	ID       uuid.UUID `json:"id"`
	MemberID uuid.UUID `json:"member_id"`
	BookID   uuid.UUID `json:"book_id"`

	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`

	Renewals int             `json:"renewals"`
	Status   LoanStatus      `json:"status"`
	Fine     decimal.Decimal `json:"fine"`
}

// IsOverdue reports whether an active loan is past due at now.
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanStatusActive && now.After(l.DueDate)
}

// OverdueLoan annotates an active overdue loan with how late it is and the
// fine it would accrue if returned at the reference instant.
type OverdueLoan struct {
	Loan        Loan            `json:"loan"`
	DaysOverdue int             `json:"days_overdue"`
	Fine        decimal.Decimal `json:"fine"`
}

// BookLoanCount aggregates historical loans per book, in the order books
// first appear in the ledger.
type BookLoanCount struct {
	BookID uuid.UUID `json:"book_id"`
	Loans  int       `json:"loans"`
}
