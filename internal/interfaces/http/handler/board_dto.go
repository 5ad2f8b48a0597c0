package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	boardapp "github.com/talenttrek/backend/internal/application/board"
)

// CreateCompanyRequest represents a company creation request
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Location    string `json:"location" binding:"omitempty,max=200"`
}

// UpdateCompanyRequest represents a partial company update
type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
}

// DeleteCompanyRequest carries the force flag as a query parameter
type DeleteCompanyRequest struct {
	Force bool `form:"force"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCompanyResponse(info boardapp.CompanyInfo) CompanyResponse {
	return CompanyResponse{
		ID:          info.ID,
		Name:        info.Name,
		Description: info.Description,
		Location:    info.Location,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// PostJobRequest represents a job posting request
type PostJobRequest struct {
	CompanyID    uuid.UUID `json:"company_id" binding:"required"`
	Title        string    `json:"title" binding:"required,min=1,max=200"`
	Description  string    `json:"description" binding:"required"`
	Requirements string    `json:"requirements" binding:"omitempty,max=10000"`
	Location     string    `json:"location" binding:"required,max=200"`
	Salary       *float64  `json:"salary" binding:"omitempty,gte=0"`
}

// UpdateJobRequest represents a job update request. All content fields
// are replaced; a null salary clears it.
type UpdateJobRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=200"`
	Description  string   `json:"description" binding:"required"`
	Requirements string   `json:"requirements" binding:"omitempty,max=10000"`
	Location     string   `json:"location" binding:"required,max=200"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
}

// ListJobsRequest represents the public job listing filter
type ListJobsRequest struct {
	Keyword   string `form:"keyword" binding:"omitempty,max=200"`
	Location  string `form:"location" binding:"omitempty,max=200"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=posted_at title location salary"`
	SortOrder string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// JobResponse represents a job posting in API responses
type JobResponse struct {
	ID              uuid.UUID        `json:"id"`
	CompanyID       uuid.UUID        `json:"company_id"`
	CompanyName     string           `json:"company_name,omitempty"`
	CompanyLocation string           `json:"company_location,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Requirements    string           `json:"requirements,omitempty"`
	Location        string           `json:"location"`
	Salary          *decimal.Decimal `json:"salary,omitempty"`
	PostedAt        time.Time        `json:"posted_at"`
}

func toJobResponse(info boardapp.JobInfo) JobResponse {
	return JobResponse{
		ID:              info.ID,
		CompanyID:       info.CompanyID,
		CompanyName:     info.CompanyName,
		CompanyLocation: info.CompanyLocation,
		Title:           info.Title,
		Description:     info.Description,
		Requirements:    info.Requirements,
		Location:        info.Location,
		Salary:          info.Salary,
		PostedAt:        info.PostedAt,
	}
}

func toJobResponses(infos []boardapp.JobInfo) []JobResponse {
	out := make([]JobResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, toJobResponse(info))
	}
	return out
}

// ApplyRequest represents an application submission. The job is
// addressed by the route; the body only carries the cover letter.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"omitempty,max=10000"`
}

// UpdateApplicationStatusRequest represents a pipeline move
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending interview accepted rejected"`
}

// ListApplicationsRequest represents the recruiter-side application filter
type ListApplicationsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending interview accepted rejected"`
	Keyword  string `form:"keyword" binding:"omitempty,max=200"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ApplicantResponse represents the applicant identity on an application
type ApplicantResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	ResumeURL       string    `json:"resume_url,omitempty"`
}

// ApplicationResponse represents an application in API responses
type ApplicationResponse struct {
	ID          uuid.UUID          `json:"id"`
	JobID       uuid.UUID          `json:"job_id"`
	JobTitle    string             `json:"job_title,omitempty"`
	CompanyName string             `json:"company_name,omitempty"`
	Status      string             `json:"status"`
	CoverLetter string             `json:"cover_letter,omitempty"`
	AppliedAt   time.Time          `json:"applied_at"`
	Applicant   *ApplicantResponse `json:"applicant,omitempty"`
}

func toApplicationResponse(info boardapp.ApplicationInfo) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          info.ID,
		JobID:       info.JobID,
		JobTitle:    info.JobTitle,
		CompanyName: info.CompanyName,
		Status:      info.Status.String(),
		CoverLetter: info.CoverLetter,
		AppliedAt:   info.AppliedAt,
	}
	if info.Applicant != nil {
		resp.Applicant = &ApplicantResponse{
			ID:              info.Applicant.ID,
			FullName:        info.Applicant.FullName,
			Email:           info.Applicant.Email,
			ProfilePhotoURL: info.Applicant.ProfilePhotoURL,
			ResumeURL:       info.Applicant.ResumeURL,
		}
	}
	return resp
}

func toApplicationResponses(infos []boardapp.ApplicationInfo) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, toApplicationResponse(info))
	}
	return out
}

// DashboardResponse aggregates the recruiter's board activity
type DashboardResponse struct {
	CompanyCount        int64                 `json:"company_count"`
	JobCount            int64                 `json:"job_count"`
	ApplicationCount    int64                 `json:"application_count"`
	PendingApplications int64                 `json:"pending_applications"`
	RecentJobs          []JobResponse         `json:"recent_jobs"`
	RecentApplications  []ApplicationResponse `json:"recent_applications"`
}
