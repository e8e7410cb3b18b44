package library

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodel "library-engine/domains/catalog/model"
)

const topBorrowedLimit = 5

// Statistics aggregates the library's current state.
type Statistics struct {
	ActiveBooks   int `json:"active_books"`
	ActiveMembers int `json:"active_members"`
	ActiveLoans   int `json:"active_loans"`
	OverdueLoans  int `json:"overdue_loans"`

	TotalOutstandingFines decimal.Decimal `json:"total_outstanding_fines"`

	BooksByCategory map[catalogmodel.Category]int `json:"books_by_category"`
	TopBorrowed     []TopBorrowedBook             `json:"top_borrowed"`
}

// TopBorrowedBook ranks a title by historical loan count.
type TopBorrowedBook struct {
	BookID uuid.UUID `json:"book_id"`
	Title  string    `json:"title"`
	Loans  int       `json:"loans"`
}

// Statistics assembles aggregate counts, per-category counts and the
// top-5 most-borrowed books (ties broken by ledger encounter order).
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	activeBooks, err := s.catalog.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	activeMembers, err := s.members.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	activeLoans, err := s.lending.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	overdue, err := s.lending.OverdueLoans(ctx)
	if err != nil {
		return nil, err
	}

	totalFines, err := s.members.TotalOutstandingFines(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.catalog.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.lending.TopBorrowed(ctx, topBorrowedLimit)
	if err != nil {
		return nil, err
	}

	topBorrowed := make([]TopBorrowedBook, 0, len(counts))
	for _, count := range counts {
		book, err := s.catalog.GetBook(ctx, count.BookID)
		if err != nil {
			return nil, err
		}
		topBorrowed = append(topBorrowed, TopBorrowedBook{
			BookID: count.BookID,
			Title:  book.Title,
			Loans:  count.Loans,
		})
	}

	return &Statistics{
		ActiveBooks:           activeBooks,
		ActiveMembers:         activeMembers,
		ActiveLoans:           activeLoans,
		OverdueLoans:          len(overdue),
		TotalOutstandingFines: totalFines,
		BooksByCategory:       byCategory,
		TopBorrowed:           topBorrowed,
	}, nil
}
