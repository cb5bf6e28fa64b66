package mspservice

import (
	"time"

	"marketingsite/internal/domain"
)

type CreateServiceForm struct {
	Name    string `form:"name" binding:"required"`
	Content string `form:"content" binding:"required"`
}

type UpdateServiceForm struct {
	Name      *string `form:"name"`
	Content   *string `form:"content"`
	ImagePath *string `form:"image_path"`
}

type ServiceResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Image       *string   `json:"image"`
	Content     string    `json:"content"`
	AuthorEmail *string   `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewServiceResponse(svc *domain.MSPService, authorEmail *string, baseURL string) ServiceResponse {
	resp := ServiceResponse{
		ID:          svc.ID,
		UserID:      svc.UserID,
		Name:        svc.Name,
		Image:       svc.Image,
		Content:     svc.Content,
		AuthorEmail: authorEmail,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
	if svc.Image != nil && *svc.Image != "" {
		abs := baseURL + *svc.Image
		resp.Image = &abs
	}
	return resp
}
