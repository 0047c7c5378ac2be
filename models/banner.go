package models

import "time"

type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:191;not null" json:"title"`
	ImageURL  string    `gorm:"size:255;not null" json:"image_url"`
	LinkURL   *string   `gorm:"size:255" json:"link_url,omitempty"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	Status    string    `gorm:"size:20;not null;default:'Active'" json:"status"` // Active | Inactive
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (Banner) TableName() string {
	return "banners"
}
