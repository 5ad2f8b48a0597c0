package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talenttrek/backend/internal/domain/board"
	"github.com/talenttrek/backend/internal/domain/shared"
)

// GormJobRepository implements JobRepository using GORM
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GormJobRepository
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Save creates or updates a job
func (r *GormJobRepository) Save(ctx context.Context, job *board.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete deletes a job and its applications in one transaction
func (r *GormJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&board.Application{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&board.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a job by its ID
func (r *GormJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*board.Job, error) {
	var job board.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindAll returns jobs matching the filter, newest-first, with the total count
func (r *GormJobRepository) FindAll(ctx context.Context, filter board.JobFilter) ([]board.Job, int64, error) {
	var jobs []board.Job
	var total int64

	query := r.applyFilter(r.db.WithContext(ctx).Model(&board.Job{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(SortClause(filter.SortBy, JobSortFields, "posted_at", filter.SortOrder))
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// FindByCompany returns jobs for a company, newest-first
func (r *GormJobRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]board.Job, error) {
	var jobs []board.Job
	query := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("posted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByCompanies returns jobs across a set of companies, newest-first
func (r *GormJobRepository) FindByCompanies(ctx context.Context, companyIDs []uuid.UUID, limit int) ([]board.Job, error) {
	if len(companyIDs) == 0 {
		return []board.Job{}, nil
	}

	var jobs []board.Job
	query := r.db.WithContext(ctx).
		Where("company_id IN ?", companyIDs).
		Order("posted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByIDs finds multiple jobs by their IDs
func (r *GormJobRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]board.Job, error) {
	if len(ids) == 0 {
		return []board.Job{}, nil
	}

	var jobs []board.Job
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// CountByCompanies counts jobs across a set of companies
func (r *GormJobRepository) CountByCompanies(ctx context.Context, companyIDs []uuid.UUID) (int64, error) {
	if len(companyIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&board.Job{}).
		Where("company_id IN ?", companyIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCompany reports whether a company still has job postings
func (r *GormJobRepository) ExistsByCompany(ctx context.Context, companyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&board.Job{}).
		Where("company_id = ?", companyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies keyword and location filters to the query.
// Keywords match the title, the description, and the posting company's name.
func (r *GormJobRepository) applyFilter(query *gorm.DB, filter board.JobFilter) *gorm.DB {
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR company_id IN (SELECT id FROM companies WHERE name ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	return query
}

// Ensure GormJobRepository implements JobRepository
var _ board.JobRepository = (*GormJobRepository)(nil)
