package image

import (
	"context"
	"errors"
	"mime/multipart"

	"marketingsite/internal/domain"
	"marketingsite/internal/repository"
	"marketingsite/internal/storage"

	"gorm.io/gorm"
)

type Service struct {
	images *repository.ImageRepository
	store  *storage.Store
}

func NewService(images *repository.ImageRepository, store *storage.Store) *Service {
	return &Service{images: images, store: store}
}

// Create stores the file first and only then the row; a failed insert
// removes the file again so neither side is left orphaned.
func (s *Service) Create(ctx context.Context, userID int64, file *multipart.FileHeader) (*domain.Image, error) {
	path, err := s.store.Save(file, userID)
	if err != nil {
		return nil, err
	}

	img := &domain.Image{
		UserID:    userID,
		Image:     &path,
		ImageName: file.Filename,
	}
	if err := s.images.Create(ctx, img); err != nil {
		_ = s.store.Remove(path)
		return nil, err
	}
	return img, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Image, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return img, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.Image, error) {
	return s.images.List(ctx, skip, limit)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Image, error) {
	return s.images.ListByUser(ctx, userID)
}

// Delete is owner-only and removes both the row and the stored file; a file
// already gone out-of-band is not an error.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	img, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if img.UserID != userID {
		return ErrForbidden
	}

	if err := s.images.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if img.Image != nil {
		_ = s.store.Remove(*img.Image)
	}
	return nil
}
