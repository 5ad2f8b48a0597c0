package board

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talenttrek/backend/internal/domain/board"
	"github.com/talenttrek/backend/internal/domain/shared"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// JobService handles job postings and the public job listing
type JobService struct {
	jobRepo     board.JobRepository
	companyRepo board.CompanyRepository
	logger      *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(
	jobRepo board.JobRepository,
	companyRepo board.CompanyRepository,
	logger *zap.Logger,
) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// PostJob creates a job posting under one of the recruiter's companies
func (s *JobService) PostJob(ctx context.Context, input PostJobInput) (*JobInfo, error) {
	company, err := s.findOwnedCompany(ctx, input.CompanyID, input.RecruiterID)
	if err != nil {
		return nil, err
	}

	job, err := board.NewJob(company.ID, input.Title, input.Description, input.Requirements, input.Location, input.Salary)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		s.logger.Error("Failed to save job", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to post job")
	}

	s.logger.Info("Job posted",
		zap.String("job_id", job.ID.String()),
		zap.String("company_id", company.ID.String()))

	info := NewJobInfo(job, company)
	return &info, nil
}

// UpdateJob replaces a job posting's content fields
func (s *JobService) UpdateJob(ctx context.Context, input UpdateJobInput) (*JobInfo, error) {
	job, company, err := s.findOwnedJob(ctx, input.JobID, input.RecruiterID)
	if err != nil {
		return nil, err
	}

	if err := job.Update(input.Title, input.Description, input.Requirements, input.Location, input.Salary); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		s.logger.Error("Failed to update job", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update job")
	}

	info := NewJobInfo(job, company)
	return &info, nil
}

// DeleteJob deletes a job posting and its applications
func (s *JobService) DeleteJob(ctx context.Context, input DeleteJobInput) error {
	job, _, err := s.findOwnedJob(ctx, input.JobID, input.RecruiterID)
	if err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, job.ID); err != nil {
		s.logger.Error("Failed to delete job", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete job")
	}

	s.logger.Info("Job deleted", zap.String("job_id", job.ID.String()))
	return nil
}

// ListJobs returns the public job listing, newest-first. Company names
// are resolved with a single batched lookup.
func (s *JobService) ListJobs(ctx context.Context, input ListJobsInput) (*JobListResult, error) {
	filter := board.JobFilter{
		Keyword:   input.Keyword,
		Location:  input.Location,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Page:      normalizePage(input.Page),
		PageSize:  normalizePageSize(input.PageSize),
	}

	jobs, total, err := s.jobRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list jobs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list jobs")
	}

	companies, err := s.companiesByID(ctx, companyIDsOf(jobs))
	if err != nil {
		return nil, err
	}

	items := make([]JobInfo, 0, len(jobs))
	for i := range jobs {
		items = append(items, NewJobInfo(&jobs[i], companies[jobs[i].CompanyID]))
	}

	return &JobListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// GetJob returns a job's detail view
func (s *JobService) GetJob(ctx context.Context, jobID uuid.UUID) (*JobInfo, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, shared.NewDomainError("JOB_NOT_FOUND", "Job not found")
	}

	company, err := s.companyRepo.FindByID(ctx, job.CompanyID)
	if err != nil {
		s.logger.Warn("Job references missing company",
			zap.String("job_id", job.ID.String()),
			zap.String("company_id", job.CompanyID.String()))
		company = nil
	}

	info := NewJobInfo(job, company)
	return &info, nil
}

// ListCompanyJobs returns one company's postings for its owner
func (s *JobService) ListCompanyJobs(ctx context.Context, companyID, recruiterID uuid.UUID) ([]JobInfo, error) {
	company, err := s.findOwnedCompany(ctx, companyID, recruiterID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindByCompany(ctx, company.ID, 0)
	if err != nil {
		s.logger.Error("Failed to list company jobs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list jobs")
	}

	infos := make([]JobInfo, 0, len(jobs))
	for i := range jobs {
		infos = append(infos, NewJobInfo(&jobs[i], company))
	}
	return infos, nil
}

func (s *JobService) findOwnedCompany(ctx context.Context, companyID, recruiterID uuid.UUID) (*board.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
	}
	if !company.IsOwnedBy(recruiterID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Company belongs to another recruiter")
	}
	return company, nil
}

func (s *JobService) findOwnedJob(ctx context.Context, jobID, recruiterID uuid.UUID) (*board.Job, *board.Company, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, nil, shared.NewDomainError("JOB_NOT_FOUND", "Job not found")
	}

	company, err := s.findOwnedCompany(ctx, job.CompanyID, recruiterID)
	if err != nil {
		return nil, nil, err
	}
	return job, company, nil
}

func (s *JobService) companiesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*board.Company, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*board.Company{}, nil
	}

	companies, err := s.companyRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to resolve companies", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list jobs")
	}

	byID := make(map[uuid.UUID]*board.Company, len(companies))
	for i := range companies {
		byID[companies[i].ID] = &companies[i]
	}
	return byID, nil
}

func companyIDsOf(jobs []board.Job) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(jobs))
	ids := make([]uuid.UUID, 0, len(jobs))
	for i := range jobs {
		if _, ok := seen[jobs[i].CompanyID]; ok {
			continue
		}
		seen[jobs[i].CompanyID] = struct{}{}
		ids = append(ids, jobs[i].CompanyID)
	}
	return ids
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(size int) int {
	if size < 1 {
		return defaultPageSize
	}
	if size > maxPageSize {
		return maxPageSize
	}
	return size
}
