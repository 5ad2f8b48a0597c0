package board

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talenttrek/backend/internal/domain/shared"
)

// ApplicationStatus represents where an application sits in the
// recruiter's pipeline
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// ParseApplicationStatus parses and validates a status string
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ApplicationStatusPending:
		return ApplicationStatusPending, nil
	case ApplicationStatusInterview:
		return ApplicationStatusInterview, nil
	case ApplicationStatusAccepted:
		return ApplicationStatusAccepted, nil
	case ApplicationStatusRejected:
		return ApplicationStatusRejected, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", "Status must be one of pending, interview, accepted, rejected")
	}
}

// IsValid returns true if the status is one of the known statuses
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusInterview, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// String returns the status as a string
func (s ApplicationStatus) String() string {
	return string(s)
}

// Application represents a student's application to a job.
// A student may apply to a given job at most once.
type Application struct {
	shared.BaseAggregateRoot
	JobID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_applicant,priority:1"`
	ApplicantID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_applicant,priority:2"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	CoverLetter string            `gorm:"type:text"`
	AppliedAt   time.Time         `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Application) TableName() string {
	return "applications"
}

// NewApplication creates a new pending application
func NewApplication(jobID, applicantID uuid.UUID, coverLetter string) (*Application, error) {
	if jobID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_JOB", "Job ID cannot be empty")
	}
	if applicantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APPLICANT", "Applicant ID cannot be empty")
	}
	if len(coverLetter) > 10000 {
		return nil, shared.NewDomainError("INVALID_COVER_LETTER", "Cover letter cannot exceed 10000 characters")
	}

	application := &Application{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		JobID:             jobID,
		ApplicantID:       applicantID,
		Status:            ApplicationStatusPending,
		CoverLetter:       strings.TrimSpace(coverLetter),
		AppliedAt:         time.Now(),
	}

	application.AddDomainEvent(NewApplicationSubmittedEvent(application))

	return application, nil
}

// ChangeStatus moves the application to a new pipeline status
func (a *Application) ChangeStatus(status ApplicationStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of pending, interview, accepted, rejected")
	}
	if a.Status == status {
		return shared.NewDomainError("INVALID_STATE", "Application is already in this status")
	}

	oldStatus := a.Status
	a.Status = status
	a.Touch()
	a.IncrementVersion()

	a.AddDomainEvent(NewApplicationStatusChangedEvent(a, oldStatus, status))

	return nil
}

// CanWithdraw returns true while the application is still pending
func (a *Application) CanWithdraw() bool {
	return a.Status == ApplicationStatusPending
}

// IsOwnedBy returns true if the application belongs to the given applicant
func (a *Application) IsOwnedBy(applicantID uuid.UUID) bool {
	return a.ApplicantID == applicantID
}
