package blog

import (
	"time"

	"marketingsite/internal/domain"
)

type CreateBlogForm struct {
	Heading          string  `form:"heading" binding:"required"`
	ShortDescription string  `form:"short_description" binding:"required"`
	Content          string  `form:"content" binding:"required"`
	MetaTitle        *string `form:"meta_title"`
	MetaDescription  *string `form:"meta_description"`
	Type             string  `form:"type" binding:"required"`
	Slug             string  `form:"slug"`
}

// UpdateBlogForm is a partial update: nil fields are left untouched.
// ImagePath lets the frontend re-send an existing stored path instead of
// re-uploading the file.
type UpdateBlogForm struct {
	Heading          *string `form:"heading"`
	ShortDescription *string `form:"short_description"`
	Content          *string `form:"content"`
	MetaTitle        *string `form:"meta_title"`
	MetaDescription  *string `form:"meta_description"`
	Type             *string `form:"type"`
	ImagePath        *string `form:"image_path"`
}

type BlogResponse struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Image            *string   `json:"image"`
	Heading          string    `json:"heading"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	MetaTitle        *string   `json:"meta_title"`
	MetaDescription  *string   `json:"meta_description"`
	Type             string    `json:"type"`
	Slug             string    `json:"slug"`
	AuthorEmail      *string   `json:"author_email"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewBlogResponse maps every persisted field explicitly and rewrites the
// stored image path to an absolute URL. Paths are stored relative; the
// rewrite happens only here.
func NewBlogResponse(b *domain.Blog, authorEmail *string, baseURL string) BlogResponse {
	return BlogResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		Image:            absoluteImageURL(b.Image, baseURL),
		Heading:          b.Heading,
		ShortDescription: b.ShortDescription,
		Content:          b.Content,
		MetaTitle:        b.MetaTitle,
		MetaDescription:  b.MetaDescription,
		Type:             b.Type,
		Slug:             b.Slug,
		AuthorEmail:      authorEmail,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func absoluteImageURL(stored *string, baseURL string) *string {
	if stored == nil || *stored == "" {
		return stored
	}
	abs := baseURL + *stored
	return &abs
}
