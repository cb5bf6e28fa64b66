package repository

import (
	"context"

	"marketingsite/internal/domain"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, img *domain.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*domain.Image, error) {
	var img domain.Image
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) List(ctx context.Context, offset, limit int) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&images).Error
	return images, err
}

func (r *ImageRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&images).Error
	return images, err
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Image{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
