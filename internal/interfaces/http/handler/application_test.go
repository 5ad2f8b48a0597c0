package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	boardapp "github.com/talenttrek/backend/internal/application/board"
	"github.com/talenttrek/backend/internal/domain/board"
	"github.com/talenttrek/backend/internal/domain/identity"
	"github.com/talenttrek/backend/internal/interfaces/http/dto"
)

type applicationHandlerMocks struct {
	applicationRepo *MockApplicationRepository
	jobRepo         *MockJobRepository
	companyRepo     *MockCompanyRepository
	userRepo        *MockUserRepository
}

func setupApplicationHandler() (*ApplicationHandler, applicationHandlerMocks) {
	mocks := applicationHandlerMocks{
		applicationRepo: new(MockApplicationRepository),
		jobRepo:         new(MockJobRepository),
		companyRepo:     new(MockCompanyRepository),
		userRepo:        new(MockUserRepository),
	}
	service := boardapp.NewApplicationService(
		mocks.applicationRepo,
		mocks.jobRepo,
		mocks.companyRepo,
		mocks.userRepo,
		zap.NewNop(),
	)
	return NewApplicationHandler(service), mocks
}

func newApplicationFixture(t *testing.T, jobID, applicantID uuid.UUID) *board.Application {
	t.Helper()
	application, err := board.NewApplication(jobID, applicantID, "I would love to join.")
	require.NoError(t, err)
	return application
}

func TestApplicationHandler_Apply_Success(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	applicantID := uuid.New()
	company := newCompanyFixture(t, uuid.New())
	job := newJobFixture(t, company.ID)

	mocks.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	mocks.applicationRepo.On("ExistsByJobAndApplicant", mock.Anything, job.ID, applicantID).Return(false, nil)
	mocks.applicationRepo.On("Save", mock.Anything, mock.AnythingOfType("*board.Application")).Return(nil)

	router := setupTestRouter(applicantID, identity.RoleStudent)
	router.POST("/jobs/:id/apply", handler.Apply)

	body, _ := json.Marshal(ApplyRequest{CoverLetter: "I would love to join."})
	req := httptest.NewRequest(http.MethodPost, "/jobs/"+job.ID.String()+"/apply", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.applicationRepo.AssertExpectations(t)
}

func TestApplicationHandler_Apply_ChunkedBodyKeepsCoverLetter(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	applicantID := uuid.New()
	company := newCompanyFixture(t, uuid.New())
	job := newJobFixture(t, company.ID)

	mocks.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	mocks.applicationRepo.On("ExistsByJobAndApplicant", mock.Anything, job.ID, applicantID).Return(false, nil)
	mocks.applicationRepo.On("Save", mock.Anything, mock.MatchedBy(func(a *board.Application) bool {
		return a.CoverLetter == "Sent without a length header."
	})).Return(nil)

	router := setupTestRouter(applicantID, identity.RoleStudent)
	router.POST("/jobs/:id/apply", handler.Apply)

	// Wrapping the reader hides its length, so the request arrives with
	// ContentLength -1 like a chunked upload.
	body, _ := json.Marshal(ApplyRequest{CoverLetter: "Sent without a length header."})
	req := httptest.NewRequest(http.MethodPost, "/jobs/"+job.ID.String()+"/apply", io.NopCloser(bytes.NewReader(body)))
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, int64(-1), req.ContentLength)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.applicationRepo.AssertExpectations(t)
}

func TestApplicationHandler_Apply_Duplicate(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	applicantID := uuid.New()
	company := newCompanyFixture(t, uuid.New())
	job := newJobFixture(t, company.ID)

	mocks.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	mocks.applicationRepo.On("ExistsByJobAndApplicant", mock.Anything, job.ID, applicantID).Return(true, nil)

	router := setupTestRouter(applicantID, identity.RoleStudent)
	router.POST("/jobs/:id/apply", handler.Apply)

	req := httptest.NewRequest(http.MethodPost, "/jobs/"+job.ID.String()+"/apply", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assertErrorCode(t, w, dto.ErrCodeConflict)
	mocks.applicationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestApplicationHandler_ListMyApplications(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	applicantID := uuid.New()
	company := newCompanyFixture(t, uuid.New())
	job := newJobFixture(t, company.ID)
	application := newApplicationFixture(t, job.ID, applicantID)

	mocks.applicationRepo.On("FindByApplicant", mock.Anything, applicantID).Return([]board.Application{*application}, nil)
	mocks.jobRepo.On("FindByIDs", mock.Anything, []uuid.UUID{job.ID}).Return([]board.Job{*job}, nil)
	mocks.companyRepo.On("FindByIDs", mock.Anything, []uuid.UUID{company.ID}).Return([]board.Company{*company}, nil)

	router := setupTestRouter(applicantID, identity.RoleStudent)
	router.GET("/applications", handler.ListMyApplications)

	req := httptest.NewRequest(http.MethodGet, "/applications", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	row, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Backend Engineer", row["job_title"])
	assert.Equal(t, "Acme Corp", row["company_name"])
}

func TestApplicationHandler_WithdrawApplication_Success(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	applicantID := uuid.New()
	application := newApplicationFixture(t, uuid.New(), applicantID)

	mocks.applicationRepo.On("FindByID", mock.Anything, application.ID).Return(application, nil)
	mocks.applicationRepo.On("Delete", mock.Anything, application.ID).Return(nil)

	router := setupTestRouter(applicantID, identity.RoleStudent)
	router.DELETE("/applications/:id", handler.WithdrawApplication)

	req := httptest.NewRequest(http.MethodDelete, "/applications/"+application.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.applicationRepo.AssertExpectations(t)
}

func TestApplicationHandler_WithdrawApplication_AfterReview(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	applicantID := uuid.New()
	application := newApplicationFixture(t, uuid.New(), applicantID)
	require.NoError(t, application.ChangeStatus(board.ApplicationStatusInterview))

	mocks.applicationRepo.On("FindByID", mock.Anything, application.ID).Return(application, nil)

	router := setupTestRouter(applicantID, identity.RoleStudent)
	router.DELETE("/applications/:id", handler.WithdrawApplication)

	req := httptest.NewRequest(http.MethodDelete, "/applications/"+application.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mocks.applicationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestApplicationHandler_ListApplications_Recruiter(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	recruiterID := uuid.New()
	company := newCompanyFixture(t, recruiterID)
	job := newJobFixture(t, company.ID)

	applicant, err := identity.NewUser("sam@example.com", "password1", identity.RoleStudent, "Sam Chen")
	require.NoError(t, err)
	application := newApplicationFixture(t, job.ID, applicant.ID)

	mocks.companyRepo.On("FindByRecruiter", mock.Anything, recruiterID).Return([]board.Company{*company}, nil)
	mocks.jobRepo.On("FindByCompanies", mock.Anything, []uuid.UUID{company.ID}, 0).Return([]board.Job{*job}, nil)
	mocks.applicationRepo.On("FindByJobs", mock.Anything, []uuid.UUID{job.ID}, mock.AnythingOfType("board.ApplicationFilter")).
		Return([]board.Application{*application}, int64(1), nil)
	mocks.userRepo.On("FindByIDs", mock.Anything, []uuid.UUID{applicant.ID}).Return([]*identity.User{applicant}, nil)

	router := setupTestRouter(recruiterID, identity.RoleRecruiter)
	router.GET("/applications", handler.ListApplications)

	req := httptest.NewRequest(http.MethodGet, "/applications?status=pending", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	row, ok := items[0].(map[string]any)
	require.True(t, ok)
	applicantRow, ok := row["applicant"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Sam Chen", applicantRow["full_name"])
}

func TestApplicationHandler_ListApplications_InvalidStatus(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	router := setupTestRouter(uuid.New(), identity.RoleRecruiter)
	router.GET("/applications", handler.ListApplications)

	req := httptest.NewRequest(http.MethodGet, "/applications?status=archived", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mocks.companyRepo.AssertNotCalled(t, "FindByRecruiter", mock.Anything, mock.Anything)
}

func TestApplicationHandler_UpdateApplicationStatus_Success(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	recruiterID := uuid.New()
	company := newCompanyFixture(t, recruiterID)
	job := newJobFixture(t, company.ID)
	application := newApplicationFixture(t, job.ID, uuid.New())

	mocks.applicationRepo.On("FindByID", mock.Anything, application.ID).Return(application, nil)
	mocks.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	mocks.companyRepo.On("FindByID", mock.Anything, company.ID).Return(company, nil)
	mocks.applicationRepo.On("Save", mock.Anything, mock.MatchedBy(func(a *board.Application) bool {
		return a.Status == board.ApplicationStatusInterview
	})).Return(nil)

	router := setupTestRouter(recruiterID, identity.RoleRecruiter)
	router.PUT("/applications/:id/status", handler.UpdateApplicationStatus)

	body, _ := json.Marshal(UpdateApplicationStatusRequest{Status: "interview"})
	req := httptest.NewRequest(http.MethodPut, "/applications/"+application.ID.String()+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.applicationRepo.AssertExpectations(t)
}

func TestApplicationHandler_UpdateApplicationStatus_InvalidStatus(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	router := setupTestRouter(uuid.New(), identity.RoleRecruiter)
	router.PUT("/applications/:id/status", handler.UpdateApplicationStatus)

	body, _ := json.Marshal(map[string]string{"status": "hired"})
	req := httptest.NewRequest(http.MethodPut, "/applications/"+uuid.New().String()+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mocks.applicationRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestApplicationHandler_Dashboard(t *testing.T) {
	handler, mocks := setupApplicationHandler()

	recruiterID := uuid.New()
	company := newCompanyFixture(t, recruiterID)
	job := newJobFixture(t, company.ID)

	applicant, err := identity.NewUser("sam@example.com", "password1", identity.RoleStudent, "Sam Chen")
	require.NoError(t, err)
	application := newApplicationFixture(t, job.ID, applicant.ID)

	mocks.companyRepo.On("FindByRecruiter", mock.Anything, recruiterID).Return([]board.Company{*company}, nil)
	mocks.jobRepo.On("FindByCompanies", mock.Anything, []uuid.UUID{company.ID}, 0).Return([]board.Job{*job}, nil)
	mocks.applicationRepo.On("CountByJobs", mock.Anything, []uuid.UUID{job.ID}).Return(int64(3), nil)
	mocks.applicationRepo.On("CountByJobsAndStatus", mock.Anything, []uuid.UUID{job.ID}, board.ApplicationStatusPending).Return(int64(2), nil)
	mocks.applicationRepo.On("FindByJobs", mock.Anything, []uuid.UUID{job.ID}, mock.AnythingOfType("board.ApplicationFilter")).
		Return([]board.Application{*application}, int64(3), nil)
	mocks.userRepo.On("FindByIDs", mock.Anything, []uuid.UUID{applicant.ID}).Return([]*identity.User{applicant}, nil)

	router := setupTestRouter(recruiterID, identity.RoleRecruiter)
	router.GET("/dashboard", handler.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["company_count"])
	assert.Equal(t, float64(1), data["job_count"])
	assert.Equal(t, float64(3), data["application_count"])
	assert.Equal(t, float64(2), data["pending_applications"])
}
