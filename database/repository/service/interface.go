package svcRepo

import (
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no service matches the given ID.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all services.
	GetAll() ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// Update replaces an existing service record, options included.
	Update(service *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
