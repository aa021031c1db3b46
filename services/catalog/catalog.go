package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	packRepo "salonbook/database/repository/pack"
	svcRepo "salonbook/database/repository/service"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Defaults applied when an admin adds a new catalog entry without filling
// the form in first.
const (
	defaultServiceName        = "New Service"
	defaultServiceDescription = "Service description"
	defaultPackageName        = "New Package"
	defaultPackageDescription = "Package description"
	defaultOptionName         = "Standard Option"
	defaultOptionPrice        = 1000
	defaultPackagePrice       = 2500
	defaultImage              = "https://via.placeholder.com/400x300"
)

const (
	servicesCacheKey = "catalog:services"
	packagesCacheKey = "catalog:packages"
	cacheTTL         = 5 * time.Minute
)

// DefaultCatalogService implements CatalogService over the two catalog
// repositories, with a read-through redis cache on the list projections.
// Every successful write drops the affected cache key, so reads after a
// write always see authoritative state.
type DefaultCatalogService struct {
	ServiceRepo svcRepo.ServiceRepository
	PackageRepo packRepo.PackageRepository
	Cache       ListCache
}

// --- Services ---

func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	var cached []models.Service
	if s.readCache(servicesCacheKey, &cached) {
		return cached, nil
	}

	services, err := s.ServiceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.Service{}
	}
	s.writeCache(servicesCacheKey, services)
	return services, nil
}

func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.ServiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, svcRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	if svc == nil {
		svc = &models.Service{}
	}
	applyServiceDefaults(svc)
	if err := validateService(svc); err != nil {
		return nil, err
	}

	svc.ID = uuid.New().String()
	assignOptionIDs(svc)

	if err := s.ServiceRepo.Create(svc); err != nil {
		return nil, err
	}
	s.invalidate(servicesCacheKey)
	return svc, nil
}

func (s *DefaultCatalogService) UpdateService(svc *models.Service) (*models.Service, error) {
	if svc == nil || svc.ID == "" {
		return nil, invalidInput("service id is required")
	}
	if svc.Options == nil {
		svc.Options = []models.Option{}
	}
	if err := validateService(svc); err != nil {
		return nil, err
	}
	assignOptionIDs(svc)

	if err := s.ServiceRepo.Update(svc); err != nil {
		if errors.Is(err, svcRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	s.invalidate(servicesCacheKey)
	return svc, nil
}

func (s *DefaultCatalogService) DeleteService(id string) error {
	if err := s.ServiceRepo.Delete(id); err != nil {
		if errors.Is(err, svcRepo.ErrNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	s.invalidate(servicesCacheKey)
	return nil
}

// SetServiceImage substitutes the uploaded image reference into the service.
func (s *DefaultCatalogService) SetServiceImage(id, imageURL string) (*models.Service, error) {
	svc, err := s.GetService(id)
	if err != nil {
		return nil, err
	}
	svc.Image = imageURL
	return s.UpdateService(svc)
}

// --- Packages ---

func (s *DefaultCatalogService) ListPackages() ([]models.Package, error) {
	var cached []models.Package
	if s.readCache(packagesCacheKey, &cached) {
		return cached, nil
	}

	packages, err := s.PackageRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if packages == nil {
		packages = []models.Package{}
	}
	s.writeCache(packagesCacheKey, packages)
	return packages, nil
}

func (s *DefaultCatalogService) GetPackage(id string) (*models.Package, error) {
	pkg, err := s.PackageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, packRepo.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *DefaultCatalogService) CreatePackage(pkg *models.Package) (*models.Package, error) {
	if pkg == nil {
		pkg = &models.Package{}
	}
	applyPackageDefaults(pkg)
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	pkg.ID = uuid.New().String()
	if err := s.PackageRepo.Create(pkg); err != nil {
		return nil, err
	}
	s.invalidate(packagesCacheKey)
	return pkg, nil
}

func (s *DefaultCatalogService) UpdatePackage(pkg *models.Package) (*models.Package, error) {
	if pkg == nil || pkg.ID == "" {
		return nil, invalidInput("package id is required")
	}
	if pkg.Features == nil {
		pkg.Features = []string{}
	}
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if err := s.PackageRepo.Update(pkg); err != nil {
		if errors.Is(err, packRepo.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	s.invalidate(packagesCacheKey)
	return pkg, nil
}

func (s *DefaultCatalogService) DeletePackage(id string) error {
	if err := s.PackageRepo.Delete(id); err != nil {
		if errors.Is(err, packRepo.ErrNotFound) {
			return ErrPackageNotFound
		}
		return err
	}
	s.invalidate(packagesCacheKey)
	return nil
}

// SetPackageImage substitutes the uploaded image reference into the package.
func (s *DefaultCatalogService) SetPackageImage(id, imageURL string) (*models.Package, error) {
	pkg, err := s.GetPackage(id)
	if err != nil {
		return nil, err
	}
	pkg.Image = imageURL
	return s.UpdatePackage(pkg)
}

// --- Defaults and validation ---

func applyServiceDefaults(svc *models.Service) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Description == "" {
		svc.Description = defaultServiceDescription
	}
	if svc.Image == "" {
		svc.Image = defaultImage
	}
	if len(svc.Options) == 0 {
		svc.Options = []models.Option{{Name: defaultOptionName, Price: defaultOptionPrice}}
	}
}

func applyPackageDefaults(pkg *models.Package) {
	// The price default applies only to a wholly blank form. A filled form
	// with price 0 is a deliberately free package and is stored as-is.
	if pkg.Name == "" && pkg.Description == "" && pkg.Image == "" &&
		pkg.Price == 0 && len(pkg.Features) == 0 {
		pkg.Price = defaultPackagePrice
	}
	if pkg.Name == "" {
		pkg.Name = defaultPackageName
	}
	if pkg.Description == "" {
		pkg.Description = defaultPackageDescription
	}
	if pkg.Image == "" {
		pkg.Image = defaultImage
	}
	if pkg.Features == nil {
		pkg.Features = []string{}
	}
}

func validateService(svc *models.Service) error {
	for _, opt := range svc.Options {
		if opt.Price < 0 {
			return invalidInput(fmt.Sprintf("option %q has a negative price", opt.Name))
		}
	}
	return nil
}

func validatePackage(pkg *models.Package) error {
	if pkg.Price < 0 {
		return invalidInput("package price must not be negative")
	}
	return nil
}

// assignOptionIDs gives every option a stable identity. IDs already present
// are kept so cart line-item keys survive unrelated edits.
func assignOptionIDs(svc *models.Service) {
	for i := range svc.Options {
		if svc.Options[i].ID == "" {
			svc.Options[i].ID = uuid.New().String()
		}
	}
}

// --- Cache helpers ---

func (s *DefaultCatalogService) readCache(key string, dest interface{}) bool {
	if s.Cache == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		utils.GetLogger().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		utils.GetLogger().Warn("catalog cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultCatalogService) writeCache(key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Set(ctx, key, string(data), cacheTTL); err != nil {
		utils.GetLogger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidate(key string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, key); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
