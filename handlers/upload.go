package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"salonbook/services/catalog"
	"salonbook/services/storage"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles the image upload side channel for catalog entries.
type UploadHandler struct {
	StorageSvc storage.StorageService
	Catalog    catalog.CatalogService
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(svc storage.StorageService, cat catalog.CatalogService) *UploadHandler {
	return &UploadHandler{StorageSvc: svc, Catalog: cat}
}

// uploadImage stores the multipart "image" field and returns its delivery URL.
func (h *UploadHandler) uploadImage(c *gin.Context, destFolder string) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image not provided", "details": err.Error()})
		return "", false
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
		return "", false
	}
	defer os.Remove(tempFilePath)

	imageURL, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "details": err.Error()})
		return "", false
	}
	return imageURL, true
}

// UploadServiceImageHandler replaces a service's image.
func (h *UploadHandler) UploadServiceImageHandler(c *gin.Context) {
	imageURL, ok := h.uploadImage(c, "salonbook/services")
	if !ok {
		return
	}

	if _, err := h.Catalog.SetServiceImage(c.Param("id"), imageURL); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// UploadPackageImageHandler replaces a package's image.
func (h *UploadHandler) UploadPackageImageHandler(c *gin.Context) {
	imageURL, ok := h.uploadImage(c, "salonbook/packages")
	if !ok {
		return
	}

	if _, err := h.Catalog.SetPackageImage(c.Param("id"), imageURL); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
