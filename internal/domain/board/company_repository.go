package board

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// Save persists a company (create or update)
	Save(ctx context.Context, company *Company) error

	// Delete deletes a company by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a company by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindByRecruiter returns all companies owned by a recruiter
	FindByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Company, error)

	// FindByIDs finds companies by a set of IDs in a single query
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Company, error)

	// CountByRecruiter returns the number of companies owned by a recruiter
	CountByRecruiter(ctx context.Context, recruiterID uuid.UUID) (int64, error)
}
