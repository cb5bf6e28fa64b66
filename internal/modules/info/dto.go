package info

import (
	"time"

	"marketingsite/internal/domain"
)

type CreateInfoForm struct {
	Name    string `form:"name" binding:"required"`
	Content string `form:"content" binding:"required"`
}

type UpdateInfoForm struct {
	Name      *string `form:"name"`
	Content   *string `form:"content"`
	ImagePath *string `form:"image_path"`
}

type InfoResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Image       *string   `json:"image"`
	Content     string    `json:"content"`
	AuthorEmail *string   `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewInfoResponse(info *domain.Info, authorEmail *string, baseURL string) InfoResponse {
	resp := InfoResponse{
		ID:          info.ID,
		UserID:      info.UserID,
		Name:        info.Name,
		Image:       info.Image,
		Content:     info.Content,
		AuthorEmail: authorEmail,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
	if info.Image != nil && *info.Image != "" {
		abs := baseURL + *info.Image
		resp.Image = &abs
	}
	return resp
}
