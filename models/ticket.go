package models

import "time"

// Ticket is a user's claim on one number within one draw. Rows are created
// once by a successful purchase and never updated. The two composite unique
// indexes are the authority for "one entry per user per draw" and "one claim
// per number per draw"; racing purchases are resolved by the database, not
// by the application.
type Ticket struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	DrawID uint    `gorm:"not null;uniqueIndex:uniq_draw_user,priority:1;uniqueIndex:uniq_draw_number,priority:1" json:"draw_id"`
	UserID uint    `gorm:"not null;uniqueIndex:uniq_draw_user,priority:2;index" json:"user_id"`
	Number int     `gorm:"not null;uniqueIndex:uniq_draw_number,priority:2" json:"number"`
	Price  float64 `gorm:"type:decimal(15,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Draw *Draw `gorm:"foreignKey:DrawID" json:"draw,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}
