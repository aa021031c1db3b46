package catalog

import (
	"context"
	"testing"
	"time"

	packRepo "salonbook/database/repository/pack"
	svcRepo "salonbook/database/repository/service"
	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*models.Service{}}
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, svcRepo.ErrNotFound
	}
	cp := *svc
	return &cp, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(svc *models.Service) error {
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Update(svc *models.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return svcRepo.ErrNotFound
	}
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	if _, ok := r.services[id]; !ok {
		return svcRepo.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

type fakePackageRepo struct {
	packages map[string]*models.Package
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: map[string]*models.Package{}}
}

func (r *fakePackageRepo) GetByID(id string) (*models.Package, error) {
	pkg, ok := r.packages[id]
	if !ok {
		return nil, packRepo.ErrNotFound
	}
	cp := *pkg
	return &cp, nil
}

func (r *fakePackageRepo) GetAll() ([]models.Package, error) {
	var out []models.Package
	for _, pkg := range r.packages {
		out = append(out, *pkg)
	}
	return out, nil
}

func (r *fakePackageRepo) Create(pkg *models.Package) error {
	cp := *pkg
	r.packages[pkg.ID] = &cp
	return nil
}

func (r *fakePackageRepo) Update(pkg *models.Package) error {
	if _, ok := r.packages[pkg.ID]; !ok {
		return packRepo.ErrNotFound
	}
	cp := *pkg
	r.packages[pkg.ID] = &cp
	return nil
}

func (r *fakePackageRepo) Delete(id string) error {
	if _, ok := r.packages[id]; !ok {
		return packRepo.ErrNotFound
	}
	delete(r.packages, id)
	return nil
}

// fakeListCache implements ListCache in memory and records dropped keys.
type fakeListCache struct {
	entries map[string]string
	dropped []string
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{entries: map[string]string{}}
}

func (c *fakeListCache) Get(ctx context.Context, key string) (string, bool, error) {
	data, ok := c.entries[key]
	return data, ok, nil
}

func (c *fakeListCache) Set(ctx context.Context, key, data string, ttl time.Duration) error {
	c.entries[key] = data
	return nil
}

func (c *fakeListCache) Del(ctx context.Context, key string) error {
	c.dropped = append(c.dropped, key)
	delete(c.entries, key)
	return nil
}

// newCatalog runs without a cache so reads always hit the fake repos.
func newCatalog() (*DefaultCatalogService, *fakeServiceRepo, *fakePackageRepo) {
	sr := newFakeServiceRepo()
	pr := newFakePackageRepo()
	return &DefaultCatalogService{ServiceRepo: sr, PackageRepo: pr}, sr, pr
}

// newCachedCatalog wires the in-memory list cache in front of the repos.
func newCachedCatalog() (*DefaultCatalogService, *fakeServiceRepo, *fakeListCache) {
	sr := newFakeServiceRepo()
	cache := newFakeListCache()
	svc := &DefaultCatalogService{ServiceRepo: sr, PackageRepo: newFakePackageRepo(), Cache: cache}
	return svc, sr, cache
}

func TestCreateServiceAppliesDefaults(t *testing.T) {
	svc, _, _ := newCatalog()

	created, err := svc.CreateService(&models.Service{})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Service", created.Name)
	require.Len(t, created.Options, 1)
	assert.Equal(t, "Standard Option", created.Options[0].Name)
	assert.Equal(t, float64(1000), created.Options[0].Price)
	assert.NotEmpty(t, created.Options[0].ID)
}

func TestCreateServiceAssignsOptionIDs(t *testing.T) {
	svc, _, _ := newCatalog()

	created, err := svc.CreateService(&models.Service{
		Name: "Facial",
		Options: []models.Option{
			{Name: "Classic", Price: 65},
			{ID: "keep-me", Name: "Premium", Price: 120},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.Options[0].ID)
	assert.Equal(t, "keep-me", created.Options[1].ID, "existing option IDs must survive")
}

func TestCreateServiceRejectsNegativePrice(t *testing.T) {
	svc, sr, _ := newCatalog()

	_, err := svc.CreateService(&models.Service{
		Name:    "Facial",
		Options: []models.Option{{Name: "Classic", Price: -5}},
	})

	var verr *InvalidInputError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, sr.services)
}

func TestUpdateServiceUnknownID(t *testing.T) {
	svc, _, _ := newCatalog()

	_, err := svc.UpdateService(&models.Service{ID: "nope", Name: "Facial"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateServiceKeepsOptionIDsStable(t *testing.T) {
	svc, _, _ := newCatalog()

	created, err := svc.CreateService(&models.Service{
		Name:    "Facial",
		Options: []models.Option{{Name: "Classic", Price: 65}},
	})
	require.NoError(t, err)
	optID := created.Options[0].ID

	created.Options[0].Price = 75
	updated, err := svc.UpdateService(created)
	require.NoError(t, err)

	assert.Equal(t, optID, updated.Options[0].ID)
	assert.Equal(t, float64(75), updated.Options[0].Price)
}

func TestDeleteServiceUnknownID(t *testing.T) {
	svc, _, _ := newCatalog()
	assert.ErrorIs(t, svc.DeleteService("nope"), ErrServiceNotFound)
}

func TestSetServiceImage(t *testing.T) {
	svc, _, _ := newCatalog()

	created, err := svc.CreateService(&models.Service{Name: "Facial"})
	require.NoError(t, err)

	updated, err := svc.SetServiceImage(created.ID, "https://cdn.example.com/facial.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/facial.jpg", updated.Image)

	fetched, err := svc.GetService(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/facial.jpg", fetched.Image)
}

func TestCreatePackageAppliesDefaults(t *testing.T) {
	svc, _, _ := newCatalog()

	created, err := svc.CreatePackage(&models.Package{})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Package", created.Name)
	assert.Equal(t, float64(2500), created.Price)
	assert.NotNil(t, created.Features)
	assert.False(t, created.IsPopular)
}

func TestCreatePackageRejectsNegativePrice(t *testing.T) {
	svc, _, pr := newCatalog()

	_, err := svc.CreatePackage(&models.Package{Name: "Bridal", Price: -1})

	var verr *InvalidInputError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, pr.packages)
}

func TestGetPackageUnknownID(t *testing.T) {
	svc, _, _ := newCatalog()

	_, err := svc.GetPackage("nope")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestListServicesEmptyIsNotNil(t *testing.T) {
	svc, _, _ := newCatalog()

	services, err := svc.ListServices()
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}

func TestCreateFreePackageKeepsZeroPrice(t *testing.T) {
	svc, _, _ := newCatalog()

	created, err := svc.CreatePackage(&models.Package{Name: "Free Consultation", Price: 0})
	require.NoError(t, err)
	assert.Zero(t, created.Price, "a filled form with price 0 is a free package, not a blank form")
}

func TestListServicesReadsThroughCache(t *testing.T) {
	svc, sr, cache := newCachedCatalog()

	first, err := svc.ListServices()
	require.NoError(t, err)
	assert.Empty(t, first)
	assert.Contains(t, cache.entries, servicesCacheKey, "list must populate the cache")

	// A write bypassing the service is invisible until the key is dropped.
	sr.services["backdoor"] = &models.Service{ID: "backdoor", Name: "Facial"}
	second, err := svc.ListServices()
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestCatalogWritesDropServicesCacheKey(t *testing.T) {
	svc, _, cache := newCachedCatalog()

	_, err := svc.ListServices()
	require.NoError(t, err)

	created, err := svc.CreateService(&models.Service{Name: "Facial"})
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, servicesCacheKey, "create must drop the list key")

	// The list after the write serves the authoritative state.
	services, err := svc.ListServices()
	require.NoError(t, err)
	require.Len(t, services, 1)

	_, err = svc.UpdateService(created)
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, servicesCacheKey, "update must drop the list key")

	_, err = svc.ListServices()
	require.NoError(t, err)
	require.NoError(t, svc.DeleteService(created.ID))
	assert.NotContains(t, cache.entries, servicesCacheKey, "delete must drop the list key")
}

func TestPackageWritesDropPackagesCacheKey(t *testing.T) {
	svc, _, cache := newCachedCatalog()

	_, err := svc.ListPackages()
	require.NoError(t, err)
	require.Contains(t, cache.entries, packagesCacheKey)

	_, err = svc.CreatePackage(&models.Package{Name: "Bridal", Price: 200})
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, packagesCacheKey)
	assert.Contains(t, cache.dropped, packagesCacheKey)

	packages, err := svc.ListPackages()
	require.NoError(t, err)
	require.Len(t, packages, 1)
}

func TestFailedWriteLeavesCacheUntouched(t *testing.T) {
	svc, _, cache := newCachedCatalog()

	_, err := svc.ListServices()
	require.NoError(t, err)

	_, err = svc.CreateService(&models.Service{
		Name:    "Facial",
		Options: []models.Option{{Name: "Classic", Price: -5}},
	})
	require.Error(t, err)

	assert.Contains(t, cache.entries, servicesCacheKey, "a rejected write must not drop the key")
	assert.Empty(t, cache.dropped)
}
