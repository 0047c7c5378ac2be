package models

import "time"

const (
	NotificationRoleUser  = "user"
	NotificationRoleAdmin = "admin"
)

// Notification supports two addressing modes: targeted rows carry a user id,
// role-broadcast rows carry a NULL user id and are matched by role at read
// time. Draw-result fan-out always creates targeted rows so every entrant
// gets exactly one visible entry.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Role      string    `gorm:"size:10;not null;default:'user';index" json:"role"`
	Title     string    `gorm:"size:191;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Read      bool      `gorm:"column:is_read;not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
