package repository

import (
	"context"

	"marketingsite/internal/domain"

	"gorm.io/gorm"
)

type InfoRepository struct {
	db *gorm.DB
}

func NewInfoRepository(db *gorm.DB) *InfoRepository {
	return &InfoRepository{db: db}
}

func (r *InfoRepository) Create(ctx context.Context, info *domain.Info) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *InfoRepository) GetByID(ctx context.Context, id int64) (*domain.Info, error) {
	var info domain.Info
	if err := r.db.WithContext(ctx).First(&info, id).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *InfoRepository) List(ctx context.Context, offset, limit int) ([]domain.Info, error) {
	var infos []domain.Info
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&infos).Error
	return infos, err
}

func (r *InfoRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Info, error) {
	var infos []domain.Info
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&infos).Error
	return infos, err
}

func (r *InfoRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Info, error) {
	if len(fields) > 0 {
		tx := r.db.WithContext(ctx).
			Model(&domain.Info{}).
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

func (r *InfoRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Info{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
