package booking

import "salonbook/models"

// BookingService is the admin-facing side of the booking workflow: listing,
// inspection and the single allowed mutation, the status decision.
type BookingService interface {
	// ListBookings returns bookings newest first. Filter is a status value,
	// "all", or empty for everything.
	ListBookings(statusFilter string) ([]models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	// UpdateStatus decides a pending booking. Target must be accepted or
	// rejected; terminal bookings are never changed.
	UpdateStatus(id, status string) (*models.Booking, error)
}
