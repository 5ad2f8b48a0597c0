package board

import (
	"github.com/google/uuid"

	"github.com/talenttrek/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeCompany     = "Company"
	AggregateTypeJob         = "Job"
	AggregateTypeApplication = "Application"
)

// Board domain event types
const (
	EventTypeCompanyCreated           = "CompanyCreated"
	EventTypeJobPosted                = "JobPosted"
	EventTypeApplicationSubmitted     = "ApplicationSubmitted"
	EventTypeApplicationStatusChanged = "ApplicationStatusChanged"
)

// CompanyCreatedEvent is published when a recruiter creates a company
type CompanyCreatedEvent struct {
	shared.BaseDomainEvent
	RecruiterID uuid.UUID `json:"recruiter_id"`
	Name        string    `json:"name"`
}

// NewCompanyCreatedEvent creates a new CompanyCreatedEvent
func NewCompanyCreatedEvent(company *Company) *CompanyCreatedEvent {
	return &CompanyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyCreated, AggregateTypeCompany, company.ID),
		RecruiterID:     company.RecruiterID,
		Name:            company.Name,
	}
}

// JobPostedEvent is published when a job is posted
type JobPostedEvent struct {
	shared.BaseDomainEvent
	CompanyID uuid.UUID `json:"company_id"`
	Title     string    `json:"title"`
}

// NewJobPostedEvent creates a new JobPostedEvent
func NewJobPostedEvent(job *Job) *JobPostedEvent {
	return &JobPostedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobPosted, AggregateTypeJob, job.ID),
		CompanyID:       job.CompanyID,
		Title:           job.Title,
	}
}

// ApplicationSubmittedEvent is published when a student applies to a job
type ApplicationSubmittedEvent struct {
	shared.BaseDomainEvent
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
}

// NewApplicationSubmittedEvent creates a new ApplicationSubmittedEvent
func NewApplicationSubmittedEvent(application *Application) *ApplicationSubmittedEvent {
	return &ApplicationSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApplicationSubmitted, AggregateTypeApplication, application.ID),
		JobID:           application.JobID,
		ApplicantID:     application.ApplicantID,
	}
}

// ApplicationStatusChangedEvent is published when an application moves
// through the pipeline
type ApplicationStatusChangedEvent struct {
	shared.BaseDomainEvent
	JobID     uuid.UUID         `json:"job_id"`
	OldStatus ApplicationStatus `json:"old_status"`
	NewStatus ApplicationStatus `json:"new_status"`
}

// NewApplicationStatusChangedEvent creates a new ApplicationStatusChangedEvent
func NewApplicationStatusChangedEvent(application *Application, oldStatus, newStatus ApplicationStatus) *ApplicationStatusChangedEvent {
	return &ApplicationStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApplicationStatusChanged, AggregateTypeApplication, application.ID),
		JobID:           application.JobID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
