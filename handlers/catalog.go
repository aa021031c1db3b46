package handlers

import (
	"errors"
	"net/http"

	"salonbook/models"
	"salonbook/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the service and package catalog endpoints.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// catalogError maps catalog service errors onto HTTP responses.
func catalogError(c *gin.Context, err error) {
	var invalid *catalog.InvalidInputError
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound), errors.Is(err, catalog.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
	default:
		zap.L().Error("catalog operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog operation failed"})
	}
}

// --- Services ---

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListServices()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Param("id"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreateService(&input)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Svc.UpdateService(&input)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Param("id")); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// --- Packages ---

func (h *CatalogHandler) ListPackagesHandler(c *gin.Context) {
	packages, err := h.Svc.ListPackages()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.Svc.GetPackage(c.Param("id"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *CatalogHandler) CreatePackageHandler(c *gin.Context) {
	var input models.Package
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreatePackage(&input)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdatePackageHandler(c *gin.Context) {
	var input models.Package
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Svc.UpdatePackage(&input)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeletePackageHandler(c *gin.Context) {
	if err := h.Svc.DeletePackage(c.Param("id")); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
