package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodel "library-engine/domains/catalog/model"
	"library-engine/domains/lending/model"
	membermodel "library-engine/domains/member/model"
	"library-engine/pkg/fault"
)

func TestReserve(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 1)
	holder := f.addMember(t, "paul@example.com", membermodel.TypeRegular)
	waiter := f.addMember(t, "leto@example.com", membermodel.TypeRegular)

	_, err := f.lending.Borrow(f.ctx, holder.ID, book.ID)
	require.NoError(t, err)

	res, err := f.lending.Reserve(f.ctx, waiter.ID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusActive, res.Status)
	assert.Equal(t, startTime, res.ReservedAt)
	assert.Nil(t, res.ExpiresAt, "a queued reservation has no expiry yet")
}

func TestReserve_CopiesStillAvailable(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 2)
	member := f.addMember(t, "paul@example.com", membermodel.TypeRegular)

	_, err := f.lending.Reserve(f.ctx, member.ID, book.ID)
	require.ErrorIs(t, err, model.ErrCopiesStillAvailable)
	assert.True(t, fault.IsConflict(err))
}

func TestReserve_Rejections(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 1)
	holder := f.addMember(t, "paul@example.com", membermodel.TypeRegular)
	waiter := f.addMember(t, "leto@example.com", membermodel.TypeRegular)

	_, err := f.lending.Borrow(f.ctx, holder.ID, book.ID)
	require.NoError(t, err)

	_, err = f.lending.Reserve(f.ctx, uuid.New(), book.ID)
	require.ErrorIs(t, err, membermodel.ErrMemberNotFound)

	_, err = f.lending.Reserve(f.ctx, waiter.ID, uuid.New())
	require.ErrorIs(t, err, catalogmodel.ErrBookNotFound)

	require.NoError(t, f.members.DeactivateMember(f.ctx, waiter.ID))
	_, err = f.lending.Reserve(f.ctx, waiter.ID, book.ID)
	require.ErrorIs(t, err, membermodel.ErrMemberInactive)
	require.NoError(t, f.members.ActivateMember(f.ctx, waiter.ID))

	// The current holder cannot queue behind their own loan.
	_, err = f.lending.Reserve(f.ctx, holder.ID, book.ID)
	require.ErrorIs(t, err, model.ErrAlreadyOnLoan)
	assert.True(t, fault.IsConflict(err))

	// One active reservation per member and book.
	_, err = f.lending.Reserve(f.ctx, waiter.ID, book.ID)
	require.NoError(t, err)
	_, err = f.lending.Reserve(f.ctx, waiter.ID, book.ID)
	require.ErrorIs(t, err, model.ErrDuplicateReservation)
	assert.True(t, fault.IsConflict(err))
}

func TestReturn_PromotesOldestReservation(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 1)
	holder := f.addMember(t, "paul@example.com", membermodel.TypeRegular)
	first := f.addMember(t, "leto@example.com", membermodel.TypeRegular)
	second := f.addMember(t, "chani@example.com", membermodel.TypeRegular)

	loan, err := f.lending.Borrow(f.ctx, holder.ID, book.ID)
	require.NoError(t, err)

	firstRes, err := f.lending.Reserve(f.ctx, first.ID, book.ID)
	require.NoError(t, err)
	secondRes, err := f.lending.Reserve(f.ctx, second.ID, book.ID)
	require.NoError(t, err)

	returnTime := startTime.AddDate(0, 0, 7)
	f.clk.Set(returnTime)
	_, err = f.lending.Return(f.ctx, loan.ID)
	require.NoError(t, err)

	promoted, err := f.lending.GetReservation(f.ctx, firstRes.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusReady, promoted.Status)
	require.NotNil(t, promoted.ExpiresAt)
	assert.Equal(t, returnTime.AddDate(0, 0, 3), *promoted.ExpiresAt)

	queued, err := f.lending.GetReservation(f.ctx, secondRes.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusActive, queued.Status, "only the oldest reservation is promoted")
	assert.Nil(t, queued.ExpiresAt)
}

func TestReturn_NoReservationToPromote(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 1)
	holder := f.addMember(t, "paul@example.com", membermodel.TypeRegular)
	waiter := f.addMember(t, "leto@example.com", membermodel.TypeRegular)

	loan, err := f.lending.Borrow(f.ctx, holder.ID, book.ID)
	require.NoError(t, err)

	res, err := f.lending.Reserve(f.ctx, waiter.ID, book.ID)
	require.NoError(t, err)
	require.NoError(t, f.lending.CancelReservation(f.ctx, res.ID))

	// Nothing left in the queue; the return simply restocks the copy.
	_, err = f.lending.Return(f.ctx, loan.ID)
	require.NoError(t, err)

	reloaded, err := f.catalog.GetBook(f.ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.AvailableCopies)
}

func TestBorrow_CancelsOwnActiveReservation(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 1)
	holder := f.addMember(t, "paul@example.com", membermodel.TypeRegular)
	first := f.addMember(t, "leto@example.com", membermodel.TypeRegular)
	second := f.addMember(t, "chani@example.com", membermodel.TypeRegular)

	loan, err := f.lending.Borrow(f.ctx, holder.ID, book.ID)
	require.NoError(t, err)
	_, err = f.lending.Reserve(f.ctx, first.ID, book.ID)
	require.NoError(t, err)
	secondRes, err := f.lending.Reserve(f.ctx, second.ID, book.ID)
	require.NoError(t, err)

	// The return promotes first's reservation and frees the copy; second's
	// reservation is still queued when second borrows.
	_, err = f.lending.Return(f.ctx, loan.ID)
	require.NoError(t, err)

	_, err = f.lending.Borrow(f.ctx, second.ID, book.ID)
	require.NoError(t, err)

	cancelled, err := f.lending.GetReservation(f.ctx, secondRes.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCancelled, cancelled.Status, "borrowing fulfils the member's own queued reservation")
}

func TestCancelReservation(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 1)
	holder := f.addMember(t, "paul@example.com", membermodel.TypeRegular)
	waiter := f.addMember(t, "leto@example.com", membermodel.TypeRegular)

	_, err := f.lending.Borrow(f.ctx, holder.ID, book.ID)
	require.NoError(t, err)
	res, err := f.lending.Reserve(f.ctx, waiter.ID, book.ID)
	require.NoError(t, err)

	require.NoError(t, f.lending.CancelReservation(f.ctx, res.ID))
	cancelled, err := f.lending.GetReservation(f.ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCancelled, cancelled.Status)

	// Cancelling again is a no-op, not an error.
	require.NoError(t, f.lending.CancelReservation(f.ctx, res.ID))

	err = f.lending.CancelReservation(f.ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrReservationNotFound)
	assert.True(t, fault.IsInput(err))
}

func TestCancelReservation_ReadyHold(t *testing.T) {
	f := newFixture()
	book := f.addBook(t, "Dune", 1)
	holder := f.addMember(t, "paul@example.com", membermodel.TypeRegular)
	waiter := f.addMember(t, "leto@example.com", membermodel.TypeRegular)

	loan, err := f.lending.Borrow(f.ctx, holder.ID, book.ID)
	require.NoError(t, err)
	res, err := f.lending.Reserve(f.ctx, waiter.ID, book.ID)
	require.NoError(t, err)
	_, err = f.lending.Return(f.ctx, loan.ID)
	require.NoError(t, err)

	// Declining a ready hold clears the expiry along with the status.
	require.NoError(t, f.lending.CancelReservation(f.ctx, res.ID))
	cancelled, err := f.lending.GetReservation(f.ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.ExpiresAt)
}
