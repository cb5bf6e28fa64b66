package casestudy

import (
	"time"

	"marketingsite/internal/domain"
)

type CreateCaseStudyForm struct {
	Heading          string  `form:"heading" binding:"required"`
	ShortDescription string  `form:"short_description" binding:"required"`
	Content          string  `form:"content" binding:"required"`
	MetaTitle        *string `form:"meta_title"`
	MetaDescription  *string `form:"meta_description"`
}

type UpdateCaseStudyForm struct {
	Heading          *string `form:"heading"`
	ShortDescription *string `form:"short_description"`
	Content          *string `form:"content"`
	MetaTitle        *string `form:"meta_title"`
	MetaDescription  *string `form:"meta_description"`
	ImagePath        *string `form:"image_path"`
}

type CaseStudyResponse struct {
	ID               int64     `json:"id"`
	Image            *string   `json:"image"`
	Heading          string    `json:"heading"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	MetaTitle        *string   `json:"meta_title"`
	MetaDescription  *string   `json:"meta_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewCaseStudyResponse(cs *domain.CaseStudy, baseURL string) CaseStudyResponse {
	resp := CaseStudyResponse{
		ID:               cs.ID,
		Image:            cs.Image,
		Heading:          cs.Heading,
		ShortDescription: cs.ShortDescription,
		Content:          cs.Content,
		MetaTitle:        cs.MetaTitle,
		MetaDescription:  cs.MetaDescription,
		CreatedAt:        cs.CreatedAt,
		UpdatedAt:        cs.UpdatedAt,
	}
	if cs.Image != nil && *cs.Image != "" {
		abs := baseURL + *cs.Image
		resp.Image = &abs
	}
	return resp
}
