package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"library-engine/domains/catalog/model"
)

// MemoryRepository is the in-memory catalog store. Registration order is
// preserved so search results and statistics are deterministic.
type MemoryRepository struct {
	mu     sync.RWMutex
	books  map[uuid.UUID]*model.Book
	byISBN map[string]uuid.UUID
	order  []uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		books:  make(map[uuid.UUID]*model.Book),
		byISBN: make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) Create(_ context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byISBN[book.ISBN]; exists {
		return model.NewDuplicateISBNError(book.ISBN)
	}

	stored := cloneBook(book)
	r.books[stored.ID] = stored
	r.byISBN[stored.ISBN] = stored.ID
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, model.NewBookNotFoundError(id)
	}
	return cloneBook(book), nil
}

func (r *MemoryRepository) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byISBN[isbn]
	if !ok {
		return nil, fmt.Errorf("%w: isbn=%s", model.ErrBookNotFound, isbn)
	}
	return cloneBook(r.books[id]), nil
}

func (r *MemoryRepository) Update(_ context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[book.ID]; !ok {
		return model.NewBookNotFoundError(book.ID)
	}
	r.books[book.ID] = cloneBook(book)
	return nil
}

func (r *MemoryRepository) Search(_ context.Context, query string) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	var matches []model.Book
	for _, id := range r.order {
		book := r.books[id]
		if !book.IsActive {
			continue
		}
		if needle == "" || matchesBook(book, needle) {
			matches = append(matches, *cloneBook(book))
		}
	}
	return matches, nil
}

func (r *MemoryRepository) CountActive(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, book := range r.books {
		if book.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) CountActiveByCategory(_ context.Context) (map[model.Category]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[model.Category]int)
	for _, book := range r.books {
		if book.IsActive {
			counts[book.Category]++
		}
	}
	return counts, nil
}

func matchesBook(book *model.Book, needle string) bool {
	return strings.Contains(strings.ToLower(book.Title), needle) ||
		strings.Contains(strings.ToLower(book.Author), needle) ||
		strings.Contains(strings.ToLower(book.ISBN), needle)
}

func cloneBook(book *model.Book) *model.Book {
	clone := *book
	if book.Tags != nil {
		clone.Tags = append([]string(nil), book.Tags...)
	}
	return &clone
}
