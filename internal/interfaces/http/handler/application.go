package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	boardapp "github.com/talenttrek/backend/internal/application/board"
	"github.com/talenttrek/backend/internal/interfaces/http/middleware"
)

// ApplicationHandler handles application submission, tracking and the
// recruiter's pipeline endpoints
type ApplicationHandler struct {
	BaseHandler
	applicationService *boardapp.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *boardapp.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply handles POST /jobs/:id/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	applicantID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	// The body is optional but may arrive chunked with an unknown
	// length, so bind unconditionally and treat an empty body as no
	// cover letter.
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.applicationService.Apply(c.Request.Context(), boardapp.ApplyInput{
		ApplicantID: applicantID,
		JobID:       jobID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toApplicationResponse(*info))
}

// ListMyApplications handles GET /applications for students
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	applicantID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	infos, err := h.applicationService.ListMyApplications(c.Request.Context(), applicantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toApplicationResponses(infos))
}

// WithdrawApplication handles DELETE /applications/:id
func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	applicantID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	if err := h.applicationService.WithdrawApplication(c.Request.Context(), boardapp.WithdrawApplicationInput{
		ApplicationID: applicationID,
		ApplicantID:   applicantID,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListApplications handles GET /applications for recruiters
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.applicationService.ListApplicationsForRecruiter(c.Request.Context(), boardapp.ListRecruiterApplicationsInput{
		RecruiterID: recruiterID,
		Status:      req.Status,
		Keyword:     req.Keyword,
		Page:        req.Page,
		PageSize:    req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toApplicationResponses(result.Items), result.Total, result.Page, result.PageSize)
}

// UpdateApplicationStatus handles PUT /applications/:id/status
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.applicationService.UpdateApplicationStatus(c.Request.Context(), boardapp.UpdateApplicationStatusInput{
		ApplicationID: applicationID,
		RecruiterID:   recruiterID,
		Status:        req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toApplicationResponse(*info))
}

// Dashboard handles GET /dashboard
func (h *ApplicationHandler) Dashboard(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.applicationService.RecruiterDashboard(c.Request.Context(), recruiterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DashboardResponse{
		CompanyCount:        info.CompanyCount,
		JobCount:            info.JobCount,
		ApplicationCount:    info.ApplicationCount,
		PendingApplications: info.PendingApplications,
		RecentJobs:          toJobResponses(info.RecentJobs),
		RecentApplications:  toApplicationResponses(info.RecentApplications),
	})
}
