package repository

import (
	"context"

	"marketingsite/internal/domain"

	"gorm.io/gorm"
)

type ContactSubmissionRepository struct {
	db *gorm.DB
}

func NewContactSubmissionRepository(db *gorm.DB) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{db: db}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *ContactSubmissionRepository) List(ctx context.Context, offset, limit int) ([]domain.ContactSubmission, error) {
	var subs []domain.ContactSubmission
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&subs).Error
	return subs, err
}
