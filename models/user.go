package models

import (
	"strings"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Balance   float64   `gorm:"type:decimal(15,2);default:0" json:"balance"`
	Status    string    `gorm:"size:20;not null;default:'Active'" json:"status"` // Active | Suspended
	Avatar    *string   `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName resolves a human-readable name for the user: composed
// first+last name when present, otherwise the local part of the email,
// otherwise a fixed placeholder.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "Anonymous Winner"
}
