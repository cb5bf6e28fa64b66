package domain

import "time"

// Info is a "what we do" card on the marketing site.
type Info struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Image     *string   `json:"image" gorm:"size:255"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Info) TableName() string { return "infos" }
