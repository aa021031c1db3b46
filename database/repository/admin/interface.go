package adminRepo

import "salonbook/models"

// AdminRepository defines methods for admin account data access.
type AdminRepository interface {
	// GetByUsername retrieves an admin by username. Returns (nil, nil)
	// when no such admin exists.
	GetByUsername(username string) (*models.Admin, error)
	// Create inserts a new admin record.
	Create(admin *models.Admin) error
}
