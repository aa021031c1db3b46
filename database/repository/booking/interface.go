package bookingRepo

import (
	"errors"

	"salonbook/models"
)

var (
	// ErrNotFound is returned when no booking matches the given ID.
	ErrNotFound = errors.New("booking not found")
	// ErrNotPending is returned when a status update targets a booking
	// that already left the pending state.
	ErrNotPending = errors.New("booking is not pending")
)

// BookingRepository defines methods for booking data access. Bookings are
// created once and only their status is ever mutated; there is no delete.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves bookings, newest first, optionally filtered by
	// status. An empty filter or "all" returns everything.
	GetAll(statusFilter string) ([]models.Booking, error)
	// UpdateStatus moves a pending booking to the target status. It fails
	// with ErrNotFound for unknown IDs and ErrNotPending when the booking
	// already reached a terminal status.
	UpdateStatus(id, status string) error
}
