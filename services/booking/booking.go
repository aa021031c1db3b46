package booking

import (
	"errors"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService over the booking repository.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

func (s *DefaultBookingService) ListBookings(statusFilter string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll(statusFilter)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *DefaultBookingService) UpdateStatus(id, status string) (*models.Booking, error) {
	if status != models.BookingStatusAccepted && status != models.BookingStatusRejected {
		return nil, ErrInvalidStatus
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, bookingRepo.ErrNotPending):
			return nil, ErrAlreadyDecided
		}
		return nil, err
	}

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingID", id), zap.String("status", status))

	return s.GetBooking(id)
}
