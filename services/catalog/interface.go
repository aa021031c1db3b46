package catalog

import "salonbook/models"

// CatalogService owns the service and package catalog. All writes go through
// here so the cached list projections can be invalidated.
type CatalogService interface {
	ListServices() ([]models.Service, error)
	GetService(id string) (*models.Service, error)
	CreateService(svc *models.Service) (*models.Service, error)
	UpdateService(svc *models.Service) (*models.Service, error)
	DeleteService(id string) error
	SetServiceImage(id, imageURL string) (*models.Service, error)

	ListPackages() ([]models.Package, error)
	GetPackage(id string) (*models.Package, error)
	CreatePackage(pkg *models.Package) (*models.Package, error)
	UpdatePackage(pkg *models.Package) (*models.Package, error)
	DeletePackage(id string) error
	SetPackageImage(id, imageURL string) (*models.Package, error)
}
