package board

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/talenttrek/backend/internal/domain/board"
)

// CreateCompanyInput contains the input for creating a company
type CreateCompanyInput struct {
	RecruiterID uuid.UUID
	Name        string
	Description string
	Location    string
}

// UpdateCompanyInput contains the input for updating a company.
// Nil fields are left unchanged.
type UpdateCompanyInput struct {
	CompanyID   uuid.UUID
	RecruiterID uuid.UUID
	Name        *string
	Description *string
	Location    *string
}

// DeleteCompanyInput contains the input for deleting a company.
// Force also removes the company's jobs and their applications.
type DeleteCompanyInput struct {
	CompanyID   uuid.UUID
	RecruiterID uuid.UUID
	Force       bool
}

// CompanyInfo is the client representation of a company
type CompanyInfo struct {
	ID          uuid.UUID
	RecruiterID uuid.UUID
	Name        string
	Description string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCompanyInfo maps a domain company to its client representation
func NewCompanyInfo(c *board.Company) CompanyInfo {
	return CompanyInfo{
		ID:          c.ID,
		RecruiterID: c.RecruiterID,
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// PostJobInput contains the input for posting a job
type PostJobInput struct {
	RecruiterID  uuid.UUID
	CompanyID    uuid.UUID
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       *decimal.Decimal
}

// UpdateJobInput contains the input for updating a job posting.
// All content fields are replaced; a nil salary clears it.
type UpdateJobInput struct {
	JobID        uuid.UUID
	RecruiterID  uuid.UUID
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       *decimal.Decimal
}

// DeleteJobInput contains the input for deleting a job
type DeleteJobInput struct {
	JobID       uuid.UUID
	RecruiterID uuid.UUID
}

// ListJobsInput contains the filter options for the public job listing
type ListJobsInput struct {
	Keyword   string
	Location  string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// JobInfo is the client representation of a job posting. Company name
// and location are resolved from the owning company.
type JobInfo struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	CompanyName     string
	CompanyLocation string
	Title           string
	Description     string
	Requirements    string
	Location        string
	Salary          *decimal.Decimal
	PostedAt        time.Time
	UpdatedAt       time.Time
}

// NewJobInfo maps a domain job to its client representation
func NewJobInfo(j *board.Job, company *board.Company) JobInfo {
	info := JobInfo{
		ID:           j.ID,
		CompanyID:    j.CompanyID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Salary:       j.Salary,
		PostedAt:     j.PostedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if company != nil {
		info.CompanyName = company.Name
		info.CompanyLocation = company.Location
	}
	return info
}

// JobListResult is a page of job listings
type JobListResult struct {
	Items    []JobInfo
	Total    int64
	Page     int
	PageSize int
}

// ApplyInput contains the input for submitting an application
type ApplyInput struct {
	ApplicantID uuid.UUID
	JobID       uuid.UUID
	CoverLetter string
}

// WithdrawApplicationInput contains the input for withdrawing an application
type WithdrawApplicationInput struct {
	ApplicationID uuid.UUID
	ApplicantID   uuid.UUID
}

// UpdateApplicationStatusInput contains the input for a pipeline move
type UpdateApplicationStatusInput struct {
	ApplicationID uuid.UUID
	RecruiterID   uuid.UUID
	Status        string
}

// ListRecruiterApplicationsInput contains the filter options for the
// recruiter's application list
type ListRecruiterApplicationsInput struct {
	RecruiterID uuid.UUID
	Status      string
	Keyword     string
	Page        int
	PageSize    int
}

// ApplicantInfo is the identity summary attached to a recruiter-side
// application row
type ApplicantInfo struct {
	ID              uuid.UUID
	FullName        string
	Email           string
	ProfilePhotoURL string
	ResumeURL       string
}

// ApplicationInfo is the client representation of an application.
// Job and company names are resolved from their aggregates; Applicant
// is populated on recruiter-side views only.
type ApplicationInfo struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	JobTitle    string
	CompanyName string
	Status      board.ApplicationStatus
	CoverLetter string
	AppliedAt   time.Time
	UpdatedAt   time.Time
	Applicant   *ApplicantInfo
}

// NewApplicationInfo maps a domain application to its client representation
func NewApplicationInfo(a *board.Application, job *board.Job, company *board.Company) ApplicationInfo {
	info := ApplicationInfo{
		ID:          a.ID,
		JobID:       a.JobID,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if job != nil {
		info.JobTitle = job.Title
	}
	if company != nil {
		info.CompanyName = company.Name
	}
	return info
}

// ApplicationListResult is a page of recruiter-side application rows
type ApplicationListResult struct {
	Items    []ApplicationInfo
	Total    int64
	Page     int
	PageSize int
}

// DashboardInfo aggregates the recruiter's board activity
type DashboardInfo struct {
	CompanyCount        int64
	JobCount            int64
	ApplicationCount    int64
	PendingApplications int64
	RecentJobs          []JobInfo
	RecentApplications  []ApplicationInfo
}
