package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"library-engine/domains/catalog/model"
	"library-engine/domains/catalog/repository"
	"library-engine/pkg/clock"
	"library-engine/pkg/fault"
	"library-engine/pkg/logger"
)

type CatalogService struct {
	repo repository.Repository
	clk  clock.Clock
	log  zerolog.Logger
}

// NewService creates a new catalog service.
func NewService(repo repository.Repository, clk clock.Clock) Service {
	return &CatalogService{
		repo: repo,
		clk:  clk,
		log:  logger.Component("catalog"),
	}
}

// RegisterBook implements Service.RegisterBook
func (s *CatalogService) RegisterBook(ctx context.Context, req model.RegisterBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, fault.Input(err)
	}

	book := &model.Book{
		ID:              uuid.New(),
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            model.NormalizeISBN(req.ISBN),
		Category:        req.Category,
		Pages:           req.Pages,
		Tags:            req.Tags,
		TotalCopies:     req.Copies,
		AvailableCopies: req.Copies,
		IsActive:        true,
		AddedAt:         s.clk.Now(),
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("book_id", book.ID.String()).
		Str("isbn", book.ISBN).
		Int("copies", book.TotalCopies).
		Msg("book registered")

	return book, nil
}

// GetBook implements Service.GetBook
func (s *CatalogService) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByISBN implements Service.FindByISBN
func (s *CatalogService) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	return s.repo.GetByISBN(ctx, model.NormalizeISBN(isbn))
}

// Search implements Service.Search
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.Book, error) {
	return s.repo.Search(ctx, query)
}

// AdjustAvailability implements Service.AdjustAvailability
func (s *CatalogService) AdjustAvailability(ctx context.Context, id uuid.UUID, delta int) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	next := book.AvailableCopies + delta
	if next < 0 || next > book.TotalCopies {
		return fmt.Errorf("%w: available=%d, delta=%d, total=%d",
			model.ErrAvailabilityOutOfRange, book.AvailableCopies, delta, book.TotalCopies)
	}

	book.AvailableCopies = next
	return s.repo.Update(ctx, book)
}

// AddCopies implements Service.AddCopies
func (s *CatalogService) AddCopies(ctx context.Context, id uuid.UUID, n int) (*model.Book, error) {
	if n <= 0 {
		return nil, fault.Input(fmt.Errorf("copies to add must be positive, got %d", n))
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.TotalCopies += n
	book.AvailableCopies += n
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// DeactivateBook implements Service.DeactivateBook
func (s *CatalogService) DeactivateBook(ctx context.Context, id uuid.UUID) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !book.IsActive {
		return nil
	}
	if book.AvailableCopies < book.TotalCopies {
		return fmt.Errorf("%w: %d of %d copies out",
			model.ErrCopiesOnLoan, book.TotalCopies-book.AvailableCopies, book.TotalCopies)
	}

	book.IsActive = false
	return s.repo.Update(ctx, book)
}

// ActivateBook implements Service.ActivateBook
func (s *CatalogService) ActivateBook(ctx context.Context, id uuid.UUID) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book.IsActive {
		return nil
	}

	book.IsActive = true
	return s.repo.Update(ctx, book)
}

// TagBook implements Service.TagBook
func (s *CatalogService) TagBook(ctx context.Context, id uuid.UUID, tag string) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book.HasTag(tag) {
		return nil
	}

	book.Tags = append(book.Tags, tag)
	return s.repo.Update(ctx, book)
}

// UntagBook implements Service.UntagBook
func (s *CatalogService) UntagBook(ctx context.Context, id uuid.UUID, tag string) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !book.HasTag(tag) {
		// Removing an absent tag is a designed no-op.
		return nil
	}

	tags := make([]string, 0, len(book.Tags)-1)
	for _, t := range book.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	book.Tags = tags
	return s.repo.Update(ctx, book)
}

// CountActive implements Service.CountActive
func (s *CatalogService) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}

// CountByCategory implements Service.CountByCategory
func (s *CatalogService) CountByCategory(ctx context.Context) (map[model.Category]int, error) {
	return s.repo.CountActiveByCategory(ctx)
}
