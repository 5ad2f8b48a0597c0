package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talenttrek/backend/internal/domain/board"
	"github.com/talenttrek/backend/internal/domain/shared"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *board.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// Delete deletes a company
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&board.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*board.Company, error) {
	var company board.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindByRecruiter returns all companies owned by a recruiter
func (r *GormCompanyRepository) FindByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]board.Company, error) {
	var companies []board.Company
	if err := r.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByIDs finds multiple companies by their IDs
func (r *GormCompanyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]board.Company, error) {
	if len(ids) == 0 {
		return []board.Company{}, nil
	}

	var companies []board.Company
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// CountByRecruiter counts the companies owned by a recruiter
func (r *GormCompanyRepository) CountByRecruiter(ctx context.Context, recruiterID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&board.Company{}).
		Where("recruiter_id = ?", recruiterID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ board.CompanyRepository = (*GormCompanyRepository)(nil)
