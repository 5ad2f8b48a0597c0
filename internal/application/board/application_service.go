package board

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talenttrek/backend/internal/domain/board"
	"github.com/talenttrek/backend/internal/domain/identity"
	"github.com/talenttrek/backend/internal/domain/shared"
)

const dashboardRecentLimit = 5

// ApplicationService handles the application pipeline on both sides of
// the board: students submitting and withdrawing, recruiters reviewing.
type ApplicationService struct {
	applicationRepo board.ApplicationRepository
	jobRepo         board.JobRepository
	companyRepo     board.CompanyRepository
	userRepo        identity.UserRepository
	logger          *zap.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo board.ApplicationRepository,
	jobRepo board.JobRepository,
	companyRepo board.CompanyRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// Apply submits a student's application to a job. A student may apply
// to a given job at most once.
func (s *ApplicationService) Apply(ctx context.Context, input ApplyInput) (*ApplicationInfo, error) {
	job, err := s.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, shared.NewDomainError("JOB_NOT_FOUND", "Job not found")
	}

	exists, err := s.applicationRepo.ExistsByJobAndApplicant(ctx, job.ID, input.ApplicantID)
	if err != nil {
		s.logger.Error("Failed to check existing application", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit application")
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_APPLIED", "You have already applied to this job")
	}

	application, err := board.NewApplication(job.ID, input.ApplicantID, input.CoverLetter)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Save(ctx, application); err != nil {
		// The unique index on (job_id, applicant_id) closes the race
		// between the existence check and the insert.
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_APPLIED", "You have already applied to this job")
		}
		s.logger.Error("Failed to save application", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit application")
	}

	s.logger.Info("Application submitted",
		zap.String("application_id", application.ID.String()),
		zap.String("job_id", job.ID.String()),
		zap.String("applicant_id", input.ApplicantID.String()))

	company, err := s.companyRepo.FindByID(ctx, job.CompanyID)
	if err != nil {
		company = nil
	}

	info := NewApplicationInfo(application, job, company)
	return &info, nil
}

// ListMyApplications returns the student's applications newest-first,
// with job and company names resolved through batched lookups.
func (s *ApplicationService) ListMyApplications(ctx context.Context, applicantID uuid.UUID) ([]ApplicationInfo, error) {
	applications, err := s.applicationRepo.FindByApplicant(ctx, applicantID)
	if err != nil {
		s.logger.Error("Failed to list applications", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list applications")
	}

	jobs, companies, err := s.resolveJobsAndCompanies(ctx, applications)
	if err != nil {
		return nil, err
	}

	infos := make([]ApplicationInfo, 0, len(applications))
	for i := range applications {
		job := jobs[applications[i].JobID]
		var company *board.Company
		if job != nil {
			company = companies[job.CompanyID]
		}
		infos = append(infos, NewApplicationInfo(&applications[i], job, company))
	}
	return infos, nil
}

// WithdrawApplication removes a student's pending application
func (s *ApplicationService) WithdrawApplication(ctx context.Context, input WithdrawApplicationInput) error {
	application, err := s.applicationRepo.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return shared.NewDomainError("APPLICATION_NOT_FOUND", "Application not found")
	}
	if !application.IsOwnedBy(input.ApplicantID) {
		return shared.NewDomainError("FORBIDDEN", "Application belongs to another student")
	}
	if !application.CanWithdraw() {
		return shared.NewDomainError("CANNOT_WITHDRAW", "Only pending applications can be withdrawn")
	}

	if err := s.applicationRepo.Delete(ctx, application.ID); err != nil {
		s.logger.Error("Failed to withdraw application", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to withdraw application")
	}

	s.logger.Info("Application withdrawn",
		zap.String("application_id", application.ID.String()))
	return nil
}

// ListApplicationsForRecruiter returns applications across all of the
// recruiter's companies' jobs, with applicant identities resolved in a
// single batched query.
func (s *ApplicationService) ListApplicationsForRecruiter(ctx context.Context, input ListRecruiterApplicationsInput) (*ApplicationListResult, error) {
	companies, err := s.companyRepo.FindByRecruiter(ctx, input.RecruiterID)
	if err != nil {
		s.logger.Error("Failed to load recruiter companies", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list applications")
	}

	jobs, err := s.jobRepo.FindByCompanies(ctx, companyIDsOfCompanies(companies), 0)
	if err != nil {
		s.logger.Error("Failed to load recruiter jobs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list applications")
	}
	if keyword := strings.TrimSpace(input.Keyword); keyword != "" {
		jobs = filterJobsByKeyword(jobs, keyword)
	}

	filter := board.ApplicationFilter{
		Page:     normalizePage(input.Page),
		PageSize: normalizePageSize(input.PageSize),
	}
	if input.Status != "" {
		status, err := board.ParseApplicationStatus(input.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	applications, total, err := s.applicationRepo.FindByJobs(ctx, jobIDsOf(jobs), filter)
	if err != nil {
		s.logger.Error("Failed to list applications", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list applications")
	}

	items, err := s.buildRecruiterRows(ctx, applications, jobs, companies)
	if err != nil {
		return nil, err
	}

	return &ApplicationListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// UpdateApplicationStatus moves an application through the pipeline.
// The recruiter must own the company the application's job belongs to.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, input UpdateApplicationStatusInput) (*ApplicationInfo, error) {
	status, err := board.ParseApplicationStatus(input.Status)
	if err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, shared.NewDomainError("APPLICATION_NOT_FOUND", "Application not found")
	}

	job, err := s.jobRepo.FindByID(ctx, application.JobID)
	if err != nil {
		return nil, shared.NewDomainError("JOB_NOT_FOUND", "Job not found")
	}
	company, err := s.companyRepo.FindByID(ctx, job.CompanyID)
	if err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
	}
	if !company.IsOwnedBy(input.RecruiterID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Application belongs to another recruiter's job")
	}

	if err := application.ChangeStatus(status); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Save(ctx, application); err != nil {
		s.logger.Error("Failed to update application status", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update application")
	}

	s.logger.Info("Application status changed",
		zap.String("application_id", application.ID.String()),
		zap.String("status", status.String()))

	info := NewApplicationInfo(application, job, company)
	return &info, nil
}

// RecruiterDashboard aggregates the recruiter's board activity with
// batched count and lookup queries.
func (s *ApplicationService) RecruiterDashboard(ctx context.Context, recruiterID uuid.UUID) (*DashboardInfo, error) {
	companies, err := s.companyRepo.FindByRecruiter(ctx, recruiterID)
	if err != nil {
		s.logger.Error("Failed to load recruiter companies", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}
	companyIDs := companyIDsOfCompanies(companies)

	jobs, err := s.jobRepo.FindByCompanies(ctx, companyIDs, 0)
	if err != nil {
		s.logger.Error("Failed to load recruiter jobs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}
	jobIDs := jobIDsOf(jobs)

	applicationCount, err := s.applicationRepo.CountByJobs(ctx, jobIDs)
	if err != nil {
		s.logger.Error("Failed to count applications", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}
	pendingCount, err := s.applicationRepo.CountByJobsAndStatus(ctx, jobIDs, board.ApplicationStatusPending)
	if err != nil {
		s.logger.Error("Failed to count pending applications", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}

	companiesByID := make(map[uuid.UUID]*board.Company, len(companies))
	for i := range companies {
		companiesByID[companies[i].ID] = &companies[i]
	}

	recentJobs := make([]JobInfo, 0, dashboardRecentLimit)
	for i := range jobs {
		if i == dashboardRecentLimit {
			break
		}
		recentJobs = append(recentJobs, NewJobInfo(&jobs[i], companiesByID[jobs[i].CompanyID]))
	}

	recentApplications, _, err := s.applicationRepo.FindByJobs(ctx, jobIDs, board.ApplicationFilter{
		Page:     1,
		PageSize: dashboardRecentLimit,
	})
	if err != nil {
		s.logger.Error("Failed to load recent applications", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}

	recentRows, err := s.buildRecruiterRows(ctx, recentApplications, jobs, companies)
	if err != nil {
		return nil, err
	}

	return &DashboardInfo{
		CompanyCount:        int64(len(companies)),
		JobCount:            int64(len(jobs)),
		ApplicationCount:    applicationCount,
		PendingApplications: pendingCount,
		RecentJobs:          recentJobs,
		RecentApplications:  recentRows,
	}, nil
}

// buildRecruiterRows joins applications with their jobs, companies and
// applicant identities. Applicants are fetched with one batched query.
func (s *ApplicationService) buildRecruiterRows(
	ctx context.Context,
	applications []board.Application,
	jobs []board.Job,
	companies []board.Company,
) ([]ApplicationInfo, error) {
	jobsByID := make(map[uuid.UUID]*board.Job, len(jobs))
	for i := range jobs {
		jobsByID[jobs[i].ID] = &jobs[i]
	}
	companiesByID := make(map[uuid.UUID]*board.Company, len(companies))
	for i := range companies {
		companiesByID[companies[i].ID] = &companies[i]
	}

	applicants, err := s.applicantsByID(ctx, applicantIDsOf(applications))
	if err != nil {
		return nil, err
	}

	rows := make([]ApplicationInfo, 0, len(applications))
	for i := range applications {
		job := jobsByID[applications[i].JobID]
		var company *board.Company
		if job != nil {
			company = companiesByID[job.CompanyID]
		}

		row := NewApplicationInfo(&applications[i], job, company)
		if applicant := applicants[applications[i].ApplicantID]; applicant != nil {
			row.Applicant = &ApplicantInfo{
				ID:              applicant.ID,
				FullName:        applicant.FullName,
				Email:           applicant.Email,
				ProfilePhotoURL: applicant.ProfilePhotoURL,
				ResumeURL:       applicant.ResumeURL,
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ApplicationService) applicantsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*identity.User, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*identity.User{}, nil
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to resolve applicants", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve applicants")
	}

	byID := make(map[uuid.UUID]*identity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

// resolveJobsAndCompanies batches the job and company lookups behind a
// student's application list.
func (s *ApplicationService) resolveJobsAndCompanies(ctx context.Context, applications []board.Application) (map[uuid.UUID]*board.Job, map[uuid.UUID]*board.Company, error) {
	jobIDs := make([]uuid.UUID, 0, len(applications))
	seen := make(map[uuid.UUID]struct{}, len(applications))
	for i := range applications {
		if _, ok := seen[applications[i].JobID]; ok {
			continue
		}
		seen[applications[i].JobID] = struct{}{}
		jobIDs = append(jobIDs, applications[i].JobID)
	}

	jobsByID := make(map[uuid.UUID]*board.Job, len(jobIDs))
	companiesByID := make(map[uuid.UUID]*board.Company)
	if len(jobIDs) == 0 {
		return jobsByID, companiesByID, nil
	}

	jobs, err := s.jobRepo.FindByIDs(ctx, jobIDs)
	if err != nil {
		s.logger.Error("Failed to resolve jobs", zap.Error(err))
		return nil, nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list applications")
	}
	for i := range jobs {
		jobsByID[jobs[i].ID] = &jobs[i]
	}

	companies, err := s.companyRepo.FindByIDs(ctx, companyIDsOf(jobs))
	if err != nil {
		s.logger.Error("Failed to resolve companies", zap.Error(err))
		return nil, nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list applications")
	}
	for i := range companies {
		companiesByID[companies[i].ID] = &companies[i]
	}

	return jobsByID, companiesByID, nil
}

func companyIDsOfCompanies(companies []board.Company) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(companies))
	for i := range companies {
		ids = append(ids, companies[i].ID)
	}
	return ids
}

func jobIDsOf(jobs []board.Job) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(jobs))
	for i := range jobs {
		ids = append(ids, jobs[i].ID)
	}
	return ids
}

func applicantIDsOf(applications []board.Application) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(applications))
	ids := make([]uuid.UUID, 0, len(applications))
	for i := range applications {
		if _, ok := seen[applications[i].ApplicantID]; ok {
			continue
		}
		seen[applications[i].ApplicantID] = struct{}{}
		ids = append(ids, applications[i].ApplicantID)
	}
	return ids
}

func filterJobsByKeyword(jobs []board.Job, keyword string) []board.Job {
	keyword = strings.ToLower(keyword)
	filtered := make([]board.Job, 0, len(jobs))
	for i := range jobs {
		if strings.Contains(strings.ToLower(jobs[i].Title), keyword) {
			filtered = append(filtered, jobs[i])
		}
	}
	return filtered
}
