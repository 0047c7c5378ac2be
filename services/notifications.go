package services

import (
	"fmt"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"

	"gorm.io/gorm"
)

// NotifyWinner creates the single "you won" notification for the winning user.
func NotifyWinner(db *gorm.DB, userID uint, drawTitle string, ticketNumber int) error {
	uid := userID
	n := models.Notification{
		UserID:  &uid,
		Role:    models.NotificationRoleUser,
		Title:   "Congratulations, you won!",
		Message: fmt.Sprintf("Your ticket #%d won the %q draw. The prize will be credited to your account shortly.", ticketNumber, drawTitle),
	}
	return db.Create(&n).Error
}

// NotifyLosers creates one "results" notification per non-winning entrant in
// a single batch insert. The caller is responsible for excluding the winner
// from userIDs. Partial failure is acceptable; this layer is best-effort and
// never rolled back against the draw result.
func NotifyLosers(db *gorm.DB, userIDs []uint, drawTitle, winnerName string, winningTicketNumber int) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]models.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		uid := id
		rows = append(rows, models.Notification{
			UserID:  &uid,
			Role:    models.NotificationRoleUser,
			Title:   "Draw results",
			Message: fmt.Sprintf("The %q draw has ended. %s won with ticket #%d. Better luck next time!", drawTitle, winnerName, winningTicketNumber),
		})
	}
	return db.Create(&rows).Error
}

// NotifyTicketPurchased confirms a purchase to the buyer.
func NotifyTicketPurchased(db *gorm.DB, userID uint, drawTitle string, ticketNumber int) error {
	uid := userID
	n := models.Notification{
		UserID:  &uid,
		Role:    models.NotificationRoleUser,
		Title:   "Ticket confirmed",
		Message: fmt.Sprintf("You entered the %q draw with ticket #%d. Good luck!", drawTitle, ticketNumber),
	}
	return db.Create(&n).Error
}

// BroadcastToRole creates a single role-addressed notification visible to
// every current holder of the role. Used by the admin surface; draw-result
// fan-out never relies on this.
func BroadcastToRole(db *gorm.DB, role, title, message string) (*models.Notification, error) {
	n := models.Notification{
		UserID:  nil,
		Role:    role,
		Title:   title,
		Message: message,
	}
	if err := db.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}
