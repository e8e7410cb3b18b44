package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-engine/domains/catalog/model"
	"library-engine/domains/catalog/repository"
	"library-engine/domains/catalog/service"
	"library-engine/pkg/clock"
	"library-engine/pkg/fault"
)

var startTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newCatalog() service.Service {
	return service.NewService(repository.NewMemoryRepository(), clock.NewFixed(startTime))
}

func validRequest() model.RegisterBookRequest {
	return model.RegisterBookRequest{
		Title:    "Nineteen Eighty-Four",
		Author:   "George Orwell",
		ISBN:     "978-0451524935",
		Category: model.CategoryFiction,
		Pages:    328,
		Copies:   3,
	}
}

func TestRegisterBook(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	book, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "9780451524935", book.ISBN, "ISBN must be stored normalized")
	assert.Equal(t, 3, book.TotalCopies)
	assert.Equal(t, 3, book.AvailableCopies, "all copies start on the shelf")
	assert.True(t, book.IsActive)
	assert.Equal(t, startTime, book.AddedAt)
}

func TestRegisterBook_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.RegisterBookRequest)
	}{
		{"missing title", func(r *model.RegisterBookRequest) { r.Title = "" }},
		{"missing author", func(r *model.RegisterBookRequest) { r.Author = "" }},
		{"bad ISBN checksum", func(r *model.RegisterBookRequest) { r.ISBN = "978-0451524936" }},
		{"unknown category", func(r *model.RegisterBookRequest) { r.Category = "astrology" }},
		{"zero pages", func(r *model.RegisterBookRequest) { r.Pages = 0 }},
		{"zero copies", func(r *model.RegisterBookRequest) { r.Copies = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newCatalog()
			req := validRequest()
			tt.mutate(&req)

			_, err := catalog.RegisterBook(ctx, req)
			require.Error(t, err)
			assert.True(t, fault.IsInput(err), "validation failures are input errors, got: %v", err)
		})
	}
}

func TestRegisterBook_DuplicateISBN(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	_, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	// Same ISBN in a different accepted format still collides.
	req := validRequest()
	req.ISBN = "9780451524935"
	_, err = catalog.RegisterBook(ctx, req)

	require.ErrorIs(t, err, model.ErrDuplicateISBN)
	assert.True(t, fault.IsConflict(err))
}

func TestAdjustAvailability_Invariant(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	book, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, catalog.AdjustAvailability(ctx, book.ID, -3))

	err = catalog.AdjustAvailability(ctx, book.ID, -1)
	require.ErrorIs(t, err, model.ErrAvailabilityOutOfRange)

	require.NoError(t, catalog.AdjustAvailability(ctx, book.ID, 3))

	err = catalog.AdjustAvailability(ctx, book.ID, 1)
	require.ErrorIs(t, err, model.ErrAvailabilityOutOfRange, "available must never exceed total")
}

func TestFindByISBN_AcceptsAnyFormat(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	registered, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	found, err := catalog.FindByISBN(ctx, "978-0-451-52493-5")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	_, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	second := model.RegisterBookRequest{
		Title:    "Clean Code",
		Author:   "Robert C. Martin",
		ISBN:     "9780132350884",
		Category: model.CategoryNonfiction,
		Pages:    464,
		Copies:   1,
	}
	cleanCode, err := catalog.RegisterBook(ctx, second)
	require.NoError(t, err)

	byTitle, err := catalog.Search(ctx, "eighty")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Nineteen Eighty-Four", byTitle[0].Title)

	byAuthor, err := catalog.Search(ctx, "MARTIN")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, cleanCode.ID, byAuthor[0].ID)

	byISBN, err := catalog.Search(ctx, "0451524935")
	require.NoError(t, err)
	assert.Len(t, byISBN, 1)

	none, err := catalog.Search(ctx, "haskell")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearch_ExcludesInactiveBooks(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	book, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, catalog.DeactivateBook(ctx, book.ID))

	results, err := catalog.Search(ctx, "orwell")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDeactivateBook_BlockedWhileCopiesOut(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	book, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, catalog.AdjustAvailability(ctx, book.ID, -1))

	err = catalog.DeactivateBook(ctx, book.ID)
	require.ErrorIs(t, err, model.ErrCopiesOnLoan)
	assert.True(t, fault.IsConflict(err))
}

func TestActivateBook_Idempotent(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	book, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	// Already active: a repeat activation is a no-op, not an error.
	require.NoError(t, catalog.ActivateBook(ctx, book.ID))

	require.NoError(t, catalog.DeactivateBook(ctx, book.ID))
	require.NoError(t, catalog.ActivateBook(ctx, book.ID))

	reloaded, err := catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsActive)
}

func TestTags_UntagAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	book, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, catalog.TagBook(ctx, book.ID, "dystopia"))
	require.NoError(t, catalog.TagBook(ctx, book.ID, "dystopia"), "repeat tagging is a no-op")

	reloaded, err := catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"dystopia"}, reloaded.Tags)

	require.NoError(t, catalog.UntagBook(ctx, book.ID, "not-there"), "removing an absent tag is a no-op")
	require.NoError(t, catalog.UntagBook(ctx, book.ID, "dystopia"))

	reloaded, err = catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Tags)
}

func TestAddCopies(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog()

	book, err := catalog.RegisterBook(ctx, validRequest())
	require.NoError(t, err)

	grown, err := catalog.AddCopies(ctx, book.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, grown.TotalCopies)
	assert.Equal(t, 5, grown.AvailableCopies)

	_, err = catalog.AddCopies(ctx, book.ID, 0)
	require.Error(t, err)
	assert.True(t, fault.IsInput(err))
}
