package blog

import (
	"context"
	"errors"
	"mime/multipart"

	"marketingsite/internal/domain"
	"marketingsite/internal/pkg/slug"
	"marketingsite/internal/repository"
	"marketingsite/internal/storage"

	"gorm.io/gorm"
)

const maxSlugAttempts = 10

type Service struct {
	blogs *repository.BlogRepository
	store *storage.Store
}

func NewService(blogs *repository.BlogRepository, store *storage.Store) *Service {
	return &Service{blogs: blogs, store: store}
}

// Create uploads the optional image, generates a unique slug and persists
// the post. If the insert loses a slug race (unique constraint), the slug is
// regenerated once and the insert retried; the uploaded file is removed when
// persistence ultimately fails.
func (s *Service) Create(ctx context.Context, userID int64, form CreateBlogForm, file *multipart.FileHeader) (*domain.Blog, error) {
	var imagePath *string
	if file != nil {
		path, err := s.store.Save(file, userID)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	b := &domain.Blog{
		UserID:           userID,
		Image:            imagePath,
		Heading:          form.Heading,
		ShortDescription: form.ShortDescription,
		Content:          form.Content,
		MetaTitle:        form.MetaTitle,
		MetaDescription:  form.MetaDescription,
		Type:             form.Type,
	}

	err := s.createWithSlug(ctx, b, form.Heading, form.Slug)
	if err != nil && imagePath != nil {
		_ = s.store.Remove(*imagePath)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) createWithSlug(ctx context.Context, b *domain.Blog, heading, override string) error {
	candidate, err := s.generateSlug(ctx, heading, override)
	if err != nil {
		return err
	}
	b.Slug = candidate

	createErr := s.blogs.Create(ctx, b)
	if createErr == nil {
		return nil
	}
	if !repository.IsUniqueViolation(createErr) {
		return createErr
	}

	// Lost the check-then-insert race: regenerate once and retry.
	candidate, err = s.generateSlug(ctx, heading, override)
	if err != nil {
		return err
	}
	b.Slug = candidate
	if retryErr := s.blogs.Create(ctx, b); retryErr != nil {
		if repository.IsUniqueViolation(retryErr) {
			return ErrSlugConflict
		}
		return retryErr
	}
	return nil
}

// generateSlug derives the candidate base from the override (normalized) or
// the heading (slugified), then resolves collisions by appending 6 random
// hex characters, bounded by maxSlugAttempts.
func (s *Service) generateSlug(ctx context.Context, heading, override string) (string, error) {
	base := slug.Normalize(override)
	if base == "" {
		base = slug.Make(heading)
	}
	if base == "" {
		base = "post"
	}

	candidate := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		exists, err := s.blogs.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + slug.Suffix(6)
	}
	return "", ErrSlugGeneration
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Blog, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBySlug(ctx context.Context, slugStr string) (*domain.Blog, error) {
	b, err := s.blogs.GetBySlug(ctx, slugStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.Blog, error) {
	return s.blogs.List(ctx, skip, limit)
}

// ListByType returns ErrNotFound when no post carries the type.
func (s *Service) ListByType(ctx context.Context, blogType string) ([]domain.Blog, error) {
	blogs, err := s.blogs.ListByType(ctx, blogType)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, ErrNotFound
	}
	return blogs, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Blog, error) {
	return s.blogs.ListByUser(ctx, userID)
}

// Update enforces ownership (fetched first, so an unknown id is NotFound
// before any ownership check) and applies only the fields present in the
// form. A freshly uploaded image wins over image_path; neither present
// leaves the stored image untouched.
func (s *Service) Update(ctx context.Context, userID, id int64, form UpdateBlogForm, file *multipart.FileHeader) (*domain.Blog, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if form.Heading != nil {
		fields["heading"] = *form.Heading
	}
	if form.ShortDescription != nil {
		fields["short_description"] = *form.ShortDescription
	}
	if form.Content != nil {
		fields["content"] = *form.Content
	}
	if form.MetaTitle != nil {
		fields["meta_title"] = *form.MetaTitle
	}
	if form.MetaDescription != nil {
		fields["meta_description"] = *form.MetaDescription
	}
	if form.Type != nil {
		fields["type"] = *form.Type
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

	updated, err := s.blogs.Update(ctx, id, fields)
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
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
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
