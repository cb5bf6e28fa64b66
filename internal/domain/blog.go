package domain

import "time"

type Blog struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	UserID           int64     `json:"user_id" gorm:"not null;index"`
	Image            *string   `json:"image" gorm:"size:255"`
	Heading          string    `json:"heading" gorm:"size:255;not null"`
	ShortDescription string    `json:"short_description" gorm:"size:512;not null"`
	Content          string    `json:"content" gorm:"type:text;not null"`
	MetaTitle        *string   `json:"meta_title" gorm:"size:255"`
	MetaDescription  *string   `json:"meta_description" gorm:"size:512"`
	Type             string    `json:"type" gorm:"not null"`
	Slug             string    `json:"slug" gorm:"uniqueIndex;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Blog) TableName() string { return "blogs" }
