// Package policy computes overdue fines. All arithmetic is decimal so
// amounts are exact; the clock is passed in so assessments are deterministic.
package policy

import (
	"time"

	"github.com/shopspring/decimal"

	"library-engine/config"
	lending "library-engine/domains/lending/model"
	member "library-engine/domains/member/model"
)

// FinePolicy prices late returns: a flat daily fine, a discount multiplier
// for students and a ceiling no single loan's fine can exceed.
type FinePolicy struct {
	dailyFine       decimal.Decimal
	studentDiscount decimal.Decimal
	maxFine         decimal.Decimal
}

func New(dailyFine, studentDiscount, maxFine decimal.Decimal) *FinePolicy {
	return &FinePolicy{
		dailyFine:       dailyFine,
		studentDiscount: studentDiscount,
		maxFine:         maxFine,
	}
}

// FromConfig builds the policy from the configured knobs.
func FromConfig(policy config.PolicyConfig) *FinePolicy {
	return New(policy.DailyFine, policy.StudentFineDiscount, policy.MaxFine)
}

// Assess computes the fine for a loan. The reference instant is the return
// date when set, otherwise now, so an active loan gets a live preview of
// what returning it right away would cost.
func (p *FinePolicy) Assess(loan *lending.Loan, memberType member.Type, now time.Time) decimal.Decimal {
	reference := now
	if loan.ReturnDate != nil {
		reference = *loan.ReturnDate
	}

	daysLate := DaysLate(loan.DueDate, reference)
	if daysLate <= 0 {
		return decimal.Zero
	}

	fine := p.dailyFine.Mul(decimal.NewFromInt(int64(daysLate)))
	if memberType == member.TypeStudent {
		fine = fine.Mul(p.studentDiscount)
	}

	return decimal.Min(fine, p.maxFine)
}

// DaysLate returns the whole-day difference between reference and due,
// never negative. A return within 24 hours of the due date costs nothing.
func DaysLate(due, reference time.Time) int {
	if !reference.After(due) {
		return 0
	}
	return int(reference.Sub(due).Hours() / 24)
}
