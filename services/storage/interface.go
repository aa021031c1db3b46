package storage

import "context"

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns its public delivery URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile deletes a previously uploaded file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
