package board

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/talenttrek/backend/internal/domain/shared"
)

// Job represents a job posting attached to a company.
// Salary is optional; a nil salary means "not disclosed", never zero.
type Job struct {
	shared.BaseAggregateRoot
	CompanyID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Title        string           `gorm:"type:varchar(200);not null"`
	Description  string           `gorm:"type:text;not null"`
	Requirements string           `gorm:"type:text"`
	Location     string           `gorm:"type:varchar(200);not null"`
	Salary       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PostedAt     time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Job) TableName() string {
	return "jobs"
}

// NewJob creates a new job posting for a company
func NewJob(companyID uuid.UUID, title, description, requirements, location string, salary *decimal.Decimal) (*Job, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if err := validateJobTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Job description cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Job location cannot be empty")
	}
	if err := validateSalary(salary); err != nil {
		return nil, err
	}

	job := &Job{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyID:         companyID,
		Title:             strings.TrimSpace(title),
		Description:       strings.TrimSpace(description),
		Requirements:      strings.TrimSpace(requirements),
		Location:          strings.TrimSpace(location),
		Salary:            salary,
		PostedAt:          time.Now(),
	}

	job.AddDomainEvent(NewJobPostedEvent(job))

	return job, nil
}

// Update updates the job posting's fields
func (j *Job) Update(title, description, requirements, location string, salary *decimal.Decimal) error {
	if err := validateJobTitle(title); err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Job description cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return shared.NewDomainError("INVALID_LOCATION", "Job location cannot be empty")
	}
	if err := validateSalary(salary); err != nil {
		return err
	}

	j.Title = strings.TrimSpace(title)
	j.Description = strings.TrimSpace(description)
	j.Requirements = strings.TrimSpace(requirements)
	j.Location = strings.TrimSpace(location)
	j.Salary = salary
	j.Touch()
	j.IncrementVersion()

	return nil
}

func validateJobTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Job title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Job title cannot exceed 200 characters")
	}
	return nil
}

func validateSalary(salary *decimal.Decimal) error {
	if salary != nil && salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	return nil
}
