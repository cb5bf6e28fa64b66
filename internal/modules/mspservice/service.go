package mspservice

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
	services *repository.MSPServiceRepository
	store    *storage.Store
}

func NewService(services *repository.MSPServiceRepository, store *storage.Store) *Service {
	return &Service{services: services, store: store}
}

func (s *Service) Create(ctx context.Context, userID int64, form CreateServiceForm, file *multipart.FileHeader) (*domain.MSPService, error) {
	var imagePath *string
	if file != nil {
		path, err := s.store.Save(file, userID)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	svc := &domain.MSPService{
		UserID:  userID,
		Name:    form.Name,
		Image:   imagePath,
		Content: form.Content,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		if imagePath != nil {
			_ = s.store.Remove(*imagePath)
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.MSPService, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.MSPService, error) {
	return s.services.List(ctx, skip, limit)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.MSPService, error) {
	return s.services.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id int64, form UpdateServiceForm, file *multipart.FileHeader) (*domain.MSPService, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if form.Name != nil {
		fields["name"] = *form.Name
	}
	if form.Content != nil {
		fields["content"] = *form.Content
	}

	if file != nil {
		path, err := s.store.Save(file, userID)
		if err != nil {
			return nil, err
		}
		fields["image"] = path
	} else if form.ImagePath != nil {
		if !s.store.IsStoredPath(*form.ImagePath) {
			return nil, storage.ErrInvalidPath
		}
		fields["image"] = *form.ImagePath
	}

	svc, err := s.services.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// A replaced image leaves no orphan behind.
	if newPath, ok := fields["image"].(string); ok {
		if existing.Image != nil && *existing.Image != newPath {
			_ = s.store.Remove(*existing.Image)
		}
	}
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	if err := s.services.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if existing.Image != nil {
		_ = s.store.Remove(*existing.Image)
	}
	return nil
}
