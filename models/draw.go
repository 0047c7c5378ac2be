package models

import "time"

// Draw statuses. A draw is created upcoming or active, accepts ticket
// purchases while active, and is finished exactly once by winner selection.
const (
	DrawStatusUpcoming  = "upcoming"
	DrawStatusActive    = "active"
	DrawStatusCompleted = "completed"
)

type Draw struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Title               string    `gorm:"size:191;not null" json:"title"`
	Description         *string   `gorm:"type:text" json:"description,omitempty"`
	GoldWeightGrams     float64   `gorm:"type:decimal(10,3);not null" json:"gold_weight_grams"`
	PriceTiers          []float64 `gorm:"serializer:json;not null" json:"price_tiers"`
	TotalSlots          int       `gorm:"not null" json:"total_slots"`
	CurrentParticipants int       `gorm:"not null;default:0" json:"current_participants"`
	StartAt             time.Time `json:"start_at"`
	EndAt               time.Time `json:"end_at"`
	Status              string    `gorm:"size:20;not null;default:'upcoming';index" json:"status"`
	BannerURL           *string   `gorm:"type:varchar(255)" json:"banner_url,omitempty"`

	// Winner fields are set together by the completion transition and are
	// never written by anything else.
	WinnerUserID       *uint   `gorm:"index" json:"winner_user_id,omitempty"`
	WinnerTicketNumber *int    `json:"winner_ticket_number,omitempty"`
	WinnerName         *string `gorm:"size:200" json:"winner_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (Draw) TableName() string {
	return "draws"
}

// HasPriceTier reports whether price matches one of the draw's configured tiers.
func (d *Draw) HasPriceTier(price float64) bool {
	for _, t := range d.PriceTiers {
		if t == price {
			return true
		}
	}
	return false
}
