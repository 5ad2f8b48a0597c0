package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	filesapp "github.com/talenttrek/backend/internal/application/files"
)

// UploadResponse represents a completed upload
type UploadResponse struct {
	StorageKey string `json:"storage_key"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}

type storeFunc func(ctx context.Context, ownerID uuid.UUID, fileName, contentType string, data []byte) (*filesapp.UploadResult, error)

// UploadHandler handles resume and profile photo uploads
type UploadHandler struct {
	BaseHandler
	uploadService *filesapp.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *filesapp.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadResume accepts a resume file (pdf/doc/docx) under the "file"
// multipart field and stores it under the user's prefix
func (h *UploadHandler) UploadResume(c *gin.Context) {
	h.upload(c, h.uploadService.UploadResume)
}

// UploadPhoto accepts a profile photo under the "file" multipart field
func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	h.upload(c, h.uploadService.UploadPhoto)
}

// UploadSignupResume accepts a resume before the account exists, during
// the signup flow. The file is stored under a fresh owner prefix and the
// returned URL is submitted with the signup request.
func (h *UploadHandler) UploadSignupResume(c *gin.Context) {
	h.uploadAs(c, uuid.New(), h.uploadService.UploadResume)
}

func (h *UploadHandler) upload(c *gin.Context, store storeFunc) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	h.uploadAs(c, userID, store)
}

func (h *UploadHandler) uploadAs(c *gin.Context, ownerID uuid.UUID, store storeFunc) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Multipart field 'file' is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Failed to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	result, err := store(c.Request.Context(), ownerID, fileHeader.Filename, contentType, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, UploadResponse{
		StorageKey: result.StorageKey,
		URL:        result.URL,
		Size:       result.Size,
	})
}
