package board

import (
	"strings"

	"github.com/google/uuid"

	"github.com/talenttrek/backend/internal/domain/shared"
)

// Company represents a company profile owned by a recruiter.
// It is the aggregate root for company-related operations.
// A recruiter may own any number of companies.
type Company struct {
	shared.BaseAggregateRoot
	RecruiterID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company owned by the given recruiter
func NewCompany(recruiterID uuid.UUID, name, description, location string) (*Company, error) {
	if recruiterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECRUITER", "Recruiter ID cannot be empty")
	}
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	company := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RecruiterID:       recruiterID,
		Name:              strings.TrimSpace(name),
		Description:       strings.TrimSpace(description),
		Location:          strings.TrimSpace(location),
	}

	company.AddDomainEvent(NewCompanyCreatedEvent(company))

	return company, nil
}

// Update updates the company's profile fields
func (c *Company) Update(name, description, location string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Description = strings.TrimSpace(description)
	c.Location = strings.TrimSpace(location)
	c.Touch()
	c.IncrementVersion()

	return nil
}

// IsOwnedBy returns true if the company belongs to the given recruiter
func (c *Company) IsOwnedBy(recruiterID uuid.UUID) bool {
	return c.RecruiterID == recruiterID
}

func validateCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
