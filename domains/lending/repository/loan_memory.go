package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"library-engine/domains/lending/model"
)

// MemoryLoanRepository is the in-memory loan ledger.
type MemoryLoanRepository struct {
	mu    sync.RWMutex
	loans map[uuid.UUID]*model.Loan
	order []uuid.UUID
}

func NewMemoryLoanRepository() *MemoryLoanRepository {
	return &MemoryLoanRepository{
		loans: make(map[uuid.UUID]*model.Loan),
	}
}

func (r *MemoryLoanRepository) Create(_ context.Context, loan *model.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneLoan(loan)
	r.loans[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *MemoryLoanRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loan, ok := r.loans[id]
	if !ok {
		return nil, model.NewLoanNotFoundError(id)
	}
	return cloneLoan(loan), nil
}

func (r *MemoryLoanRepository) Update(_ context.Context, loan *model.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loans[loan.ID]; !ok {
		return model.NewLoanNotFoundError(loan.ID)
	}
	r.loans[loan.ID] = cloneLoan(loan)
	return nil
}

func (r *MemoryLoanRepository) HasActiveByMemberAndBook(_ context.Context, memberID, bookID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, loan := range r.loans {
		if loan.Status == model.LoanStatusActive && loan.MemberID == memberID && loan.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryLoanRepository) CountActiveByMember(_ context.Context, memberID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, loan := range r.loans {
		if loan.Status == model.LoanStatusActive && loan.MemberID == memberID {
			count++
		}
	}
	return count, nil
}

func (r *MemoryLoanRepository) ListActive(_ context.Context) ([]model.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []model.Loan
	for _, id := range r.order {
		if loan := r.loans[id]; loan.Status == model.LoanStatusActive {
			active = append(active, *cloneLoan(loan))
		}
	}
	return active, nil
}

func (r *MemoryLoanRepository) ListByMember(_ context.Context, memberID uuid.UUID) ([]model.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var history []model.Loan
	for _, id := range r.order {
		if loan := r.loans[id]; loan.MemberID == memberID {
			history = append(history, *cloneLoan(loan))
		}
	}
	return history, nil
}

func (r *MemoryLoanRepository) CountActive(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, loan := range r.loans {
		if loan.Status == model.LoanStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *MemoryLoanRepository) CountsByBook(_ context.Context) ([]model.BookLoanCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index := make(map[uuid.UUID]int)
	var counts []model.BookLoanCount
	for _, id := range r.order {
		loan := r.loans[id]
		pos, seen := index[loan.BookID]
		if !seen {
			pos = len(counts)
			index[loan.BookID] = pos
			counts = append(counts, model.BookLoanCount{BookID: loan.BookID})
		}
		counts[pos].Loans++
	}
	return counts, nil
}

func cloneLoan(loan *model.Loan) *model.Loan {
	clone := *loan
	if loan.ReturnDate != nil {
		returned := *loan.ReturnDate
		clone.ReturnDate = &returned
	}
	return &clone
}
