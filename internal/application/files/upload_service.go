package files

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talenttrek/backend/internal/domain/shared"
	"github.com/talenttrek/backend/internal/infrastructure/config"
)

// AllowedResumeContentTypes is the whitelist of content types accepted for
// resume uploads.
var AllowedResumeContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// AllowedPhotoContentTypes is the whitelist of content types accepted for
// profile photo uploads. SVG is excluded because it can carry scripts.
var AllowedPhotoContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ObjectStorageService defines the interface for object storage operations.
// This interface is implemented by the infrastructure layer (S3, MinIO, etc.)
type ObjectStorageService interface {
	// Upload stores an object under the given key
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error

	// GenerateDownloadURL generates a presigned URL for downloading an object
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)

	// PublicURL returns the stable public URL for an object
	PublicURL(storageKey string) string
}

// UploadResult describes a stored object
type UploadResult struct {
	StorageKey string `json:"storage_key"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}

// UploadService handles resume and profile photo uploads. Files are
// stored under per-user prefixes with random names so uploads never
// collide or overwrite each other.
type UploadService struct {
	storage ObjectStorageService
	cfg     config.UploadsConfig
}

// NewUploadService creates a new UploadService
func NewUploadService(storage ObjectStorageService, cfg config.UploadsConfig) *UploadService {
	return &UploadService{
		storage: storage,
		cfg:     cfg,
	}
}

// UploadResume stores a resume for the given owner and returns its public URL
func (s *UploadService) UploadResume(ctx context.Context, ownerID uuid.UUID, fileName, contentType string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("EMPTY_FILE", "Uploaded file is empty")
	}
	if int64(len(data)) > s.cfg.MaxResumeSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE",
			fmt.Sprintf("Resume must not exceed %d bytes", s.cfg.MaxResumeSize))
	}
	if !AllowedResumeContentTypes[normalizeContentType(contentType)] {
		return nil, shared.NewDomainError("DISALLOWED_CONTENT_TYPE",
			"Resume must be a PDF or Word document")
	}

	storageKey := buildStorageKey("resumes", ownerID, fileName)
	if err := s.storage.Upload(ctx, storageKey, data, contentType); err != nil {
		return nil, shared.NewDomainError("UPLOAD_FAILED", "Failed to store resume")
	}

	return &UploadResult{
		StorageKey: storageKey,
		URL:        s.storage.PublicURL(storageKey),
		Size:       int64(len(data)),
	}, nil
}

// UploadPhoto stores a profile photo for the given owner and returns its public URL
func (s *UploadService) UploadPhoto(ctx context.Context, ownerID uuid.UUID, fileName, contentType string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("EMPTY_FILE", "Uploaded file is empty")
	}
	if int64(len(data)) > s.cfg.MaxPhotoSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE",
			fmt.Sprintf("Photo must not exceed %d bytes", s.cfg.MaxPhotoSize))
	}
	if !AllowedPhotoContentTypes[normalizeContentType(contentType)] {
		return nil, shared.NewDomainError("DISALLOWED_CONTENT_TYPE",
			"Photo must be a JPEG, PNG, GIF or WebP image")
	}

	storageKey := buildStorageKey("photos", ownerID, fileName)
	if err := s.storage.Upload(ctx, storageKey, data, contentType); err != nil {
		return nil, shared.NewDomainError("UPLOAD_FAILED", "Failed to store photo")
	}

	return &UploadResult{
		StorageKey: storageKey,
		URL:        s.storage.PublicURL(storageKey),
		Size:       int64(len(data)),
	}, nil
}

// DeleteObject removes a previously uploaded object
func (s *UploadService) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key is required")
	}
	return s.storage.DeleteObject(ctx, storageKey)
}

// buildStorageKey generates a collision-free key under the owner's prefix.
// Only the original file extension is kept; the name itself is replaced
// with a UUID so user input never reaches the storage path.
func buildStorageKey(prefix string, ownerID uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s/%s%s", prefix, ownerID, uuid.New(), ext)
}

func normalizeContentType(contentType string) string {
	// Strip parameters like "; charset=utf-8"
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
