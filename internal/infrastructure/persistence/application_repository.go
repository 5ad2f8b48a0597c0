package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talenttrek/backend/internal/domain/board"
	"github.com/talenttrek/backend/internal/domain/shared"
)

// GormApplicationRepository implements ApplicationRepository using GORM
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a new GormApplicationRepository
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Save creates or updates an application. The unique index on
// (job_id, applicant_id) surfaces duplicate submissions as ErrAlreadyExists.
func (r *GormApplicationRepository) Save(ctx context.Context, application *board.Application) error {
	if err := r.db.WithContext(ctx).Save(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes an application
func (r *GormApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&board.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an application by its ID
func (r *GormApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*board.Application, error) {
	var application board.Application
	if err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// FindByApplicant returns a student's applications, newest-first
func (r *GormApplicationRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]board.Application, error) {
	var applications []board.Application
	if err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// FindByJobs returns applications across a set of jobs, newest-first,
// with the total count before pagination
func (r *GormApplicationRepository) FindByJobs(ctx context.Context, jobIDs []uuid.UUID, filter board.ApplicationFilter) ([]board.Application, int64, error) {
	if len(jobIDs) == 0 {
		return []board.Application{}, 0, nil
	}

	var applications []board.Application
	var total int64

	query := r.db.WithContext(ctx).
		Model(&board.Application{}).
		Where("job_id IN ?", jobIDs)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("applied_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&applications).Error; err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

// ExistsByJobAndApplicant checks if the student already applied to the job
func (r *GormApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&board.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByJobs counts applications across a set of jobs
func (r *GormApplicationRepository) CountByJobs(ctx context.Context, jobIDs []uuid.UUID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&board.Application{}).
		Where("job_id IN ?", jobIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByJobsAndStatus counts applications in a given status across a set of jobs
func (r *GormApplicationRepository) CountByJobsAndStatus(ctx context.Context, jobIDs []uuid.UUID, status board.ApplicationStatus) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&board.Application{}).
		Where("job_id IN ? AND status = ?", jobIDs, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormApplicationRepository implements ApplicationRepository
var _ board.ApplicationRepository = (*GormApplicationRepository)(nil)
