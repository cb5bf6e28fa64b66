package domain

import "time"

// CaseStudy carries no owner column: any authenticated user may mutate it.
type CaseStudy struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Image            *string   `json:"image" gorm:"size:255"`
	Heading          string    `json:"heading" gorm:"size:255;not null"`
	ShortDescription string    `json:"short_description" gorm:"size:512;not null"`
	Content          string    `json:"content" gorm:"type:text;not null"`
	MetaTitle        *string   `json:"meta_title" gorm:"size:255"`
	MetaDescription  *string   `json:"meta_description" gorm:"size:512"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (CaseStudy) TableName() string { return "case_studies" }
