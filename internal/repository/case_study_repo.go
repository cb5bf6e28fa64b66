package repository

import (
	"context"

	"marketingsite/internal/domain"

	"gorm.io/gorm"
)

type CaseStudyRepository struct {
	db *gorm.DB
}

func NewCaseStudyRepository(db *gorm.DB) *CaseStudyRepository {
	return &CaseStudyRepository{db: db}
}

func (r *CaseStudyRepository) Create(ctx context.Context, cs *domain.CaseStudy) error {
	return r.db.WithContext(ctx).Create(cs).Error
}

func (r *CaseStudyRepository) GetByID(ctx context.Context, id int64) (*domain.CaseStudy, error) {
	var cs domain.CaseStudy
	if err := r.db.WithContext(ctx).First(&cs, id).Error; err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *CaseStudyRepository) List(ctx context.Context, offset, limit int) ([]domain.CaseStudy, error) {
	var studies []domain.CaseStudy
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&studies).Error
	return studies, err
}

func (r *CaseStudyRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.CaseStudy, error) {
	if len(fields) > 0 {
		tx := r.db.WithContext(ctx).
			Model(&domain.CaseStudy{}).
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *CaseStudyRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.CaseStudy{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
