package repository

import (
	"context"

	"marketingsite/internal/domain"

	"gorm.io/gorm"
)

type MSPServiceRepository struct {
	db *gorm.DB
}

func NewMSPServiceRepository(db *gorm.DB) *MSPServiceRepository {
	return &MSPServiceRepository{db: db}
}

func (r *MSPServiceRepository) Create(ctx context.Context, svc *domain.MSPService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *MSPServiceRepository) GetByID(ctx context.Context, id int64) (*domain.MSPService, error) {
	var svc domain.MSPService
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *MSPServiceRepository) List(ctx context.Context, offset, limit int) ([]domain.MSPService, error) {
	var services []domain.MSPService
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&services).Error
	return services, err
}

func (r *MSPServiceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.MSPService, error) {
	var services []domain.MSPService
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&services).Error
	return services, err
}

func (r *MSPServiceRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.MSPService, error) {
	if len(fields) > 0 {
		tx := r.db.WithContext(ctx).
			Model(&domain.MSPService{}).
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

func (r *MSPServiceRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.MSPService{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
