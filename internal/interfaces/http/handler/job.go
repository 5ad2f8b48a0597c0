package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	boardapp "github.com/talenttrek/backend/internal/application/board"
	"github.com/talenttrek/backend/internal/interfaces/http/middleware"
)

// JobHandler handles job browsing and recruiter job management endpoints
type JobHandler struct {
	BaseHandler
	jobService *boardapp.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *boardapp.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// ListJobs handles GET /jobs with keyword and location filters
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.jobService.ListJobs(c.Request.Context(), boardapp.ListJobsInput{
		Keyword:   req.Keyword,
		Location:  req.Location,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toJobResponses(result.Items), result.Total, result.Page, result.PageSize)
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	info, err := h.jobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toJobResponse(*info))
}

// PostJob handles POST /jobs
func (h *JobHandler) PostJob(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.jobService.PostJob(c.Request.Context(), boardapp.PostJobInput{
		RecruiterID:  recruiterID,
		CompanyID:    req.CompanyID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       toDecimalPtr(req.Salary),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toJobResponse(*info))
}

// UpdateJob handles PUT /jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.jobService.UpdateJob(c.Request.Context(), boardapp.UpdateJobInput{
		JobID:        jobID,
		RecruiterID:  recruiterID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       toDecimalPtr(req.Salary),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toJobResponse(*info))
}

// DeleteJob handles DELETE /jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), boardapp.DeleteJobInput{
		JobID:       jobID,
		RecruiterID: recruiterID,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListCompanyJobs handles GET /companies/:id/jobs
func (h *JobHandler) ListCompanyJobs(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	infos, err := h.jobService.ListCompanyJobs(c.Request.Context(), companyID, recruiterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toJobResponses(infos))
}
