package board

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talenttrek/backend/internal/domain/board"
	"github.com/talenttrek/backend/internal/domain/shared"
)

// CompanyService handles company profile management for recruiters
type CompanyService struct {
	companyRepo board.CompanyRepository
	jobRepo     board.JobRepository
	logger      *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companyRepo board.CompanyRepository,
	jobRepo board.JobRepository,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		logger:      logger,
	}
}

// CreateCompany creates a new company owned by the recruiter
func (s *CompanyService) CreateCompany(ctx context.Context, input CreateCompanyInput) (*CompanyInfo, error) {
	company, err := board.NewCompany(input.RecruiterID, input.Name, input.Description, input.Location)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to create company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create company")
	}

	s.logger.Info("Company created",
		zap.String("company_id", company.ID.String()),
		zap.String("recruiter_id", input.RecruiterID.String()))

	info := NewCompanyInfo(company)
	return &info, nil
}

// UpdateCompany applies the non-nil fields of the input to the company
func (s *CompanyService) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*CompanyInfo, error) {
	company, err := s.findOwnedCompany(ctx, input.CompanyID, input.RecruiterID)
	if err != nil {
		return nil, err
	}

	name := company.Name
	description := company.Description
	location := company.Location
	if input.Name != nil {
		name = *input.Name
	}
	if input.Description != nil {
		description = *input.Description
	}
	if input.Location != nil {
		location = *input.Location
	}

	if err := company.Update(name, description, location); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to update company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update company")
	}

	info := NewCompanyInfo(company)
	return &info, nil
}

// DeleteCompany deletes a company. A company that still has job postings
// is only deleted when Force is set, in which case the jobs and their
// applications go with it.
func (s *CompanyService) DeleteCompany(ctx context.Context, input DeleteCompanyInput) error {
	company, err := s.findOwnedCompany(ctx, input.CompanyID, input.RecruiterID)
	if err != nil {
		return err
	}

	hasJobs, err := s.jobRepo.ExistsByCompany(ctx, company.ID)
	if err != nil {
		s.logger.Error("Failed to check company jobs", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete company")
	}

	if hasJobs {
		if !input.Force {
			return shared.NewDomainError("COMPANY_HAS_JOBS", "Company still has job postings. Delete them first or force the deletion")
		}
		jobs, err := s.jobRepo.FindByCompany(ctx, company.ID, 0)
		if err != nil {
			s.logger.Error("Failed to load company jobs", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete company")
		}
		for i := range jobs {
			if err := s.jobRepo.Delete(ctx, jobs[i].ID); err != nil {
				s.logger.Error("Failed to delete company job",
					zap.String("job_id", jobs[i].ID.String()),
					zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete company")
			}
		}
	}

	if err := s.companyRepo.Delete(ctx, company.ID); err != nil {
		s.logger.Error("Failed to delete company", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete company")
	}

	s.logger.Info("Company deleted",
		zap.String("company_id", company.ID.String()),
		zap.Bool("forced", input.Force))
	return nil
}

// ListMyCompanies returns the recruiter's companies, newest-first
func (s *CompanyService) ListMyCompanies(ctx context.Context, recruiterID uuid.UUID) ([]CompanyInfo, error) {
	companies, err := s.companyRepo.FindByRecruiter(ctx, recruiterID)
	if err != nil {
		s.logger.Error("Failed to list companies", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list companies")
	}

	infos := make([]CompanyInfo, 0, len(companies))
	for i := range companies {
		infos = append(infos, NewCompanyInfo(&companies[i]))
	}
	return infos, nil
}

// GetCompany returns one of the recruiter's companies
func (s *CompanyService) GetCompany(ctx context.Context, companyID, recruiterID uuid.UUID) (*CompanyInfo, error) {
	company, err := s.findOwnedCompany(ctx, companyID, recruiterID)
	if err != nil {
		return nil, err
	}

	info := NewCompanyInfo(company)
	return &info, nil
}

func (s *CompanyService) findOwnedCompany(ctx context.Context, companyID, recruiterID uuid.UUID) (*board.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
	}
	if !company.IsOwnedBy(recruiterID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Company belongs to another recruiter")
	}
	return company, nil
}
