package casestudy

import (
	"context"
	"errors"
	"mime/multipart"

	"marketingsite/internal/domain"
	"marketingsite/internal/repository"
	"marketingsite/internal/storage"

	"gorm.io/gorm"
)

// Case studies carry no owner column, so any authenticated user may mutate
// them; there is no per-row ownership check.
type Service struct {
	studies *repository.CaseStudyRepository
	store   *storage.Store
}

func NewService(studies *repository.CaseStudyRepository, store *storage.Store) *Service {
	return &Service{studies: studies, store: store}
}

func (s *Service) Create(ctx context.Context, actorID int64, form CreateCaseStudyForm, file *multipart.FileHeader) (*domain.CaseStudy, error) {
	var imagePath *string
	if file != nil {
		path, err := s.store.Save(file, actorID)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	cs := &domain.CaseStudy{
		Image:            imagePath,
		Heading:          form.Heading,
		ShortDescription: form.ShortDescription,
		Content:          form.Content,
		MetaTitle:        form.MetaTitle,
		MetaDescription:  form.MetaDescription,
	}
	if err := s.studies.Create(ctx, cs); err != nil {
		if imagePath != nil {
			_ = s.store.Remove(*imagePath)
		}
		return nil, err
	}
	return cs, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.CaseStudy, error) {
	cs, err := s.studies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cs, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.CaseStudy, error) {
	return s.studies.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, actorID, id int64, form UpdateCaseStudyForm, file *multipart.FileHeader) (*domain.CaseStudy, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
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

	if file != nil {
		path, err := s.store.Save(file, actorID)
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

	cs, err := s.studies.Update(ctx, id, fields)
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
	return cs, nil
}

// Delete removes the row and, when one exists, the stored image file. A file
// already gone out-of-band is tolerated; a failed row delete aborts.
func (s *Service) Delete(ctx context.Context, id int64) error {
	cs, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studies.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if cs.Image != nil {
		_ = s.store.Remove(*cs.Image)
	}
	return nil
}
