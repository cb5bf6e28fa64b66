package image

import (
	"time"

	"marketingsite/internal/domain"
)

type ImageResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Image       *string   `json:"image"`
	ImageName   string    `json:"imagename"`
	AuthorEmail *string   `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewImageResponse(img *domain.Image, authorEmail *string, baseURL string) ImageResponse {
	resp := ImageResponse{
		ID:          img.ID,
		UserID:      img.UserID,
		Image:       img.Image,
		ImageName:   img.ImageName,
		AuthorEmail: authorEmail,
		CreatedAt:   img.CreatedAt,
		UpdatedAt:   img.UpdatedAt,
	}
	if img.Image != nil && *img.Image != "" {
		abs := baseURL + *img.Image
		resp.Image = &abs
	}
	return resp
}
