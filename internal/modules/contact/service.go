package contact

import (
	"context"

	"marketingsite/internal/domain"
	"marketingsite/internal/repository"
)

type Service struct {
	submissions *repository.ContactSubmissionRepository
	hub         *Hub
}

func NewService(submissions *repository.ContactSubmissionRepository, hub *Hub) *Service {
	return &Service{submissions: submissions, hub: hub}
}

func (s *Service) Submit(ctx context.Context, form SubmitForm) (*domain.ContactSubmission, error) {
	sub := &domain.ContactSubmission{
		CompanyName:    form.CompanyName,
		NumEmployees:   form.NumEmployees,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		BusinessEmail:  form.BusinessEmail,
		PhoneNumber:    form.PhoneNumber,
		ReferralSource: form.ReferralSource,
		Message:        form.Message,
		ServicesNeeded: form.ServicesNeeded,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(NewLeadEvent(sub))
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.ContactSubmission, error) {
	return s.submissions.List(ctx, skip, limit)
}
