package repository

import (
	"context"

	"marketingsite/internal/domain"

	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, b *domain.Blog) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	var b domain.Blog
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	var b domain.Blog
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Blog{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *BlogRepository) List(ctx context.Context, offset, limit int) ([]domain.Blog, error) {
	var blogs []domain.Blog
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

func (r *BlogRepository) ListByType(ctx context.Context, blogType string) ([]domain.Blog, error) {
	var blogs []domain.Blog
	err := r.db.WithContext(ctx).
		Where("type = ?", blogType).
		Order("id ASC").
		Find(&blogs).Error
	return blogs, err
}

func (r *BlogRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Blog, error) {
	var blogs []domain.Blog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&blogs).Error
	return blogs, err
}

// Update applies only the given fields and refreshes updated_at, returning
// the stored row. gorm.ErrRecordNotFound when the id does not exist.
func (r *BlogRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Blog, error) {
	if len(fields) > 0 {
		tx := r.db.WithContext(ctx).
			Model(&domain.Blog{}).
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

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Blog{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
