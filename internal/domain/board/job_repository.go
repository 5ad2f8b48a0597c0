package board

import (
	"context"

	"github.com/google/uuid"
)

// JobFilter contains filter options for querying jobs
type JobFilter struct {
	// Keyword matches against the job title
	Keyword string

	// Location substring match
	Location string

	// Sorting. SortBy is validated against a whitelist by the
	// repository; invalid values fall back to posted_at descending.
	SortBy    string
	SortOrder string

	// Pagination
	Page     int
	PageSize int
}

// JobRepository defines the interface for job persistence
type JobRepository interface {
	// Save persists a job (create or update)
	Save(ctx context.Context, job *Job) error

	// Delete deletes a job and its applications
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a job by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)

	// FindAll returns jobs newest-first with pagination
	FindAll(ctx context.Context, filter JobFilter) ([]Job, int64, error)

	// FindByCompany returns all jobs for a company, newest-first
	FindByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]Job, error)

	// FindByCompanies returns jobs across a set of companies, newest-first
	FindByCompanies(ctx context.Context, companyIDs []uuid.UUID, limit int) ([]Job, error)

	// FindByIDs finds jobs by a set of IDs in a single query
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Job, error)

	// CountByCompanies returns the number of jobs across a set of companies
	CountByCompanies(ctx context.Context, companyIDs []uuid.UUID) (int64, error)

	// ExistsByCompany reports whether a company still has job postings
	ExistsByCompany(ctx context.Context, companyID uuid.UUID) (bool, error)
}
