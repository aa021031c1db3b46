package packRepo

import (
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no package matches the given ID.
var ErrNotFound = errors.New("package not found")

// PackageRepository defines methods for package catalog data access.
type PackageRepository interface {
	// GetByID retrieves a package by its unique ID.
	GetByID(id string) (*models.Package, error)
	// GetAll retrieves all packages.
	GetAll() ([]models.Package, error)
	// Create inserts a new package record.
	Create(pkg *models.Package) error
	// Update replaces an existing package record.
	Update(pkg *models.Package) error
	// Delete removes a package record by its ID.
	Delete(id string) error
}
