package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	filesapp "github.com/talenttrek/backend/internal/application/files"
	"github.com/talenttrek/backend/internal/domain/identity"
	"github.com/talenttrek/backend/internal/infrastructure/config"
	"github.com/talenttrek/backend/internal/interfaces/http/dto"
)

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	args := m.Called(ctx, storageKey, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockObjectStorage) PublicURL(storageKey string) string {
	args := m.Called(storageKey)
	return args.String(0)
}

func setupUploadHandler(storage *MockObjectStorage) *UploadHandler {
	service := filesapp.NewUploadService(storage, config.UploadsConfig{
		MaxResumeSize: 5 * 1024 * 1024,
		MaxPhotoSize:  2 * 1024 * 1024,
	})
	return NewUploadHandler(service)
}

func multipartBody(t *testing.T, fieldName, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + fieldName + `"; filename="` + fileName + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadHandler_UploadResume_Success(t *testing.T) {
	storage := new(MockObjectStorage)
	handler := setupUploadHandler(storage)

	storage.On("Upload", mock.Anything, mock.AnythingOfType("string"), []byte("%PDF-1.7 data"), "application/pdf").Return(nil)
	storage.On("PublicURL", mock.AnythingOfType("string")).Return("https://files.example.com/resume.pdf")

	router := setupTestRouter(uuid.New(), identity.RoleStudent)
	router.POST("/uploads/resume", handler.UploadResume)

	body, contentType := multipartBody(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.7 data"))
	req := httptest.NewRequest(http.MethodPost, "/uploads/resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://files.example.com/resume.pdf", data["url"])
	storage.AssertExpectations(t)
}

func TestUploadHandler_UploadResume_DisallowedType(t *testing.T) {
	storage := new(MockObjectStorage)
	handler := setupUploadHandler(storage)

	router := setupTestRouter(uuid.New(), identity.RoleStudent)
	router.POST("/uploads/resume", handler.UploadResume)

	body, contentType := multipartBody(t, "file", "resume.exe", "application/octet-stream", []byte("MZ binary"))
	req := httptest.NewRequest(http.MethodPost, "/uploads/resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, dto.ErrCodeValidation)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadHandler_UploadPhoto_MissingFile(t *testing.T) {
	storage := new(MockObjectStorage)
	handler := setupUploadHandler(storage)

	router := setupTestRouter(uuid.New(), identity.RoleStudent)
	router.POST("/uploads/photo", handler.UploadPhoto)

	req := httptest.NewRequest(http.MethodPost, "/uploads/photo", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_Unauthenticated(t *testing.T) {
	storage := new(MockObjectStorage)
	handler := setupUploadHandler(storage)

	router := gin.New()
	router.POST("/uploads/resume", handler.UploadResume)

	body, contentType := multipartBody(t, "file", "resume.pdf", "application/pdf", []byte("%PDF-1.7 data"))
	req := httptest.NewRequest(http.MethodPost, "/uploads/resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
