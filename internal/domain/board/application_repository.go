package board

import (
	"context"

	"github.com/google/uuid"
)

// ApplicationFilter contains filter options for querying applications
type ApplicationFilter struct {
	// Status filters to a single pipeline status when set
	Status *ApplicationStatus

	// Pagination
	Page     int
	PageSize int
}

// ApplicationRepository defines the interface for application persistence
type ApplicationRepository interface {
	// Save persists an application (create or update)
	Save(ctx context.Context, application *Application) error

	// Delete deletes an application by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an application by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Application, error)

	// FindByApplicant returns a student's applications, newest-first
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Application, error)

	// FindByJobs returns applications across a set of jobs, newest-first
	FindByJobs(ctx context.Context, jobIDs []uuid.UUID, filter ApplicationFilter) ([]Application, int64, error)

	// ExistsByJobAndApplicant checks if the student already applied to the job
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)

	// CountByJobs returns the number of applications across a set of jobs
	CountByJobs(ctx context.Context, jobIDs []uuid.UUID) (int64, error)

	// CountByJobsAndStatus returns the number of applications in a given
	// status across a set of jobs
	CountByJobsAndStatus(ctx context.Context, jobIDs []uuid.UUID, status ApplicationStatus) (int64, error)
}
