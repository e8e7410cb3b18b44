package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"library-engine/domains/member/model"
)

// MemoryRepository is the in-memory membership store. Emails are indexed
// lower-cased so uniqueness is case-insensitive.
type MemoryRepository struct {
	mu      sync.RWMutex
	members map[uuid.UUID]*model.Member
	byEmail map[string]uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		members: make(map[uuid.UUID]*model.Member),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) Create(_ context.Context, member *model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(member.Email)
	if _, exists := r.byEmail[key]; exists {
		return model.NewDuplicateEmailError(member.Email)
	}

	stored := *member
	r.members[stored.ID] = &stored
	r.byEmail[key] = stored.ID
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.members[id]
	if !ok {
		return nil, model.NewMemberNotFoundError(id)
	}
	clone := *member
	return &clone, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, fmt.Errorf("%w: email=%s", model.ErrMemberNotFound, email)
	}
	clone := *r.members[id]
	return &clone, nil
}

func (r *MemoryRepository) Update(_ context.Context, member *model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[member.ID]; !ok {
		return model.NewMemberNotFoundError(member.ID)
	}
	stored := *member
	r.members[stored.ID] = &stored
	return nil
}

func (r *MemoryRepository) CountActive(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, member := range r.members {
		if member.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) TotalOutstandingFines(_ context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, member := range r.members {
		total = total.Add(member.OutstandingFines)
	}
	return total, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
