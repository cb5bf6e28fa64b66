package domain

import "time"

type Image struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Image     *string   `json:"image" gorm:"size:255"`
	ImageName string    `json:"imagename" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Image) TableName() string { return "images" }
