package files

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talenttrek/backend/internal/domain/shared"
	"github.com/talenttrek/backend/internal/infrastructure/config"
)

// MockObjectStorageService is a mock implementation of ObjectStorageService
type MockObjectStorageService struct {
	mock.Mock
}

func (m *MockObjectStorageService) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	args := m.Called(ctx, storageKey, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorageService) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorageService) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockObjectStorageService) PublicURL(storageKey string) string {
	args := m.Called(storageKey)
	return args.String(0)
}

func newTestUploadService(storage ObjectStorageService) *UploadService {
	return NewUploadService(storage, config.UploadsConfig{
		MaxResumeSize: 5 * 1024 * 1024,
		MaxPhotoSize:  2 * 1024 * 1024,
	})
}

func TestUploadService_UploadResume(t *testing.T) {
	t.Run("stores PDF under the owner's prefix", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)
		ownerID := uuid.New()

		storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "resumes/"+ownerID.String()+"/") &&
				strings.HasSuffix(key, ".pdf")
		}), []byte("%PDF-1.7"), "application/pdf").Return(nil)
		storage.On("PublicURL", mock.Anything).Return("https://cdn.example.com/resume.pdf")

		result, err := svc.UploadResume(context.Background(), ownerID, "cv.pdf", "application/pdf", []byte("%PDF-1.7"))

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/resume.pdf", result.URL)
		assert.Equal(t, int64(8), result.Size)
		storage.AssertExpectations(t)
	})

	t.Run("rejects disallowed content type", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)

		_, err := svc.UploadResume(context.Background(), uuid.New(), "evil.html", "text/html", []byte("<script>"))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DISALLOWED_CONTENT_TYPE", domainErr.Code)
		storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects oversize resume", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := NewUploadService(storage, config.UploadsConfig{MaxResumeSize: 4, MaxPhotoSize: 4})

		_, err := svc.UploadResume(context.Background(), uuid.New(), "cv.pdf", "application/pdf", []byte("too large"))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FILE_TOO_LARGE", domainErr.Code)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)

		_, err := svc.UploadResume(context.Background(), uuid.New(), "cv.pdf", "application/pdf", nil)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_FILE", domainErr.Code)
	})

	t.Run("accepts content type with charset parameter", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)

		storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		storage.On("PublicURL", mock.Anything).Return("https://cdn.example.com/resume.pdf")

		_, err := svc.UploadResume(context.Background(), uuid.New(), "cv.pdf", "application/pdf; charset=binary", []byte("%PDF"))

		assert.NoError(t, err)
	})
}

func TestUploadService_UploadPhoto(t *testing.T) {
	t.Run("stores image under the photos prefix", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)
		ownerID := uuid.New()

		storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "photos/"+ownerID.String()+"/")
		}), mock.Anything, "image/png").Return(nil)
		storage.On("PublicURL", mock.Anything).Return("https://cdn.example.com/photo.png")

		result, err := svc.UploadPhoto(context.Background(), ownerID, "me.png", "image/png", []byte{0x89, 0x50})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/photo.png", result.URL)
		storage.AssertExpectations(t)
	})

	t.Run("rejects SVG", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)

		_, err := svc.UploadPhoto(context.Background(), uuid.New(), "pic.svg", "image/svg+xml", []byte("<svg>"))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DISALLOWED_CONTENT_TYPE", domainErr.Code)
	})
}

func TestUploadService_DeleteObject(t *testing.T) {
	t.Run("delegates to storage", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)

		storage.On("DeleteObject", mock.Anything, "resumes/a/b.pdf").Return(nil)

		err := svc.DeleteObject(context.Background(), "resumes/a/b.pdf")

		assert.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		storage := new(MockObjectStorageService)
		svc := newTestUploadService(storage)

		err := svc.DeleteObject(context.Background(), "")

		assert.Error(t, err)
	})
}
