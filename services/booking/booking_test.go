package booking

import (
	"testing"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo implements bookingRepo.BookingRepository in memory, including the
// conditional pending-only status update.
type fakeRepo struct {
	bookings map[string]*models.Booking
}

func newFakeRepo(bookings ...*models.Booking) *fakeRepo {
	r := &fakeRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) Create(b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetAll(statusFilter string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if statusFilter == "" || statusFilter == "all" || b.Status == statusFilter {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	if b.Status != models.BookingStatusPending {
		return bookingRepo.ErrNotPending
	}
	b.Status = status
	return nil
}

func pendingBooking(id string) *models.Booking {
	return &models.Booking{ID: id, Status: models.BookingStatusPending, Total: 145}
}

func TestUpdateStatusAcceptsPendingBooking(t *testing.T) {
	repo := newFakeRepo(pendingBooking("b1"))
	svc := &DefaultBookingService{Repo: repo}

	bk, err := svc.UpdateStatus("b1", models.BookingStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, bk.Status)

	// The decision sticks across repeated reads.
	again, err := svc.GetBooking("b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, again.Status)
}

func TestUpdateStatusRejectsUnknownID(t *testing.T) {
	repo := newFakeRepo(pendingBooking("b1"))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.UpdateStatus("nope", models.BookingStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)

	// No side effects on the existing booking.
	bk, _ := svc.GetBooking("b1")
	assert.Equal(t, models.BookingStatusPending, bk.Status)
}

func TestUpdateStatusRejectsInvalidTarget(t *testing.T) {
	repo := newFakeRepo(pendingBooking("b1"))
	svc := &DefaultBookingService{Repo: repo}

	for _, target := range []string{"pending", "done", ""} {
		_, err := svc.UpdateStatus("b1", target)
		assert.ErrorIs(t, err, ErrInvalidStatus, "target %q", target)
	}
}

func TestUpdateStatusTerminalIsFinal(t *testing.T) {
	repo := newFakeRepo(pendingBooking("b1"))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.UpdateStatus("b1", models.BookingStatusRejected)
	require.NoError(t, err)

	_, err = svc.UpdateStatus("b1", models.BookingStatusAccepted)
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	bk, _ := svc.GetBooking("b1")
	assert.Equal(t, models.BookingStatusRejected, bk.Status)
}

func TestListBookingsFilter(t *testing.T) {
	accepted := pendingBooking("b2")
	accepted.Status = models.BookingStatusAccepted
	repo := newFakeRepo(pendingBooking("b1"), accepted)
	svc := &DefaultBookingService{Repo: repo}

	all, err := svc.ListBookings("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.ListBookings(models.BookingStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b1", pending[0].ID)
}

func TestListBookingsEmptyIsNotNil(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeRepo()}

	bookings, err := svc.ListBookings("")
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}
