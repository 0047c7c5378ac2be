package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"

	"gorm.io/gorm"
)

// PickWinnerResult is returned to the caller after a successful completion.
type PickWinnerResult struct {
	WinnerID            uint        `json:"winner_id"`
	WinnerName          string      `json:"winner_name"`
	WinningTicketNumber int         `json:"winning_ticket_number"`
	Draw                models.Draw `json:"draw"`
}

// PickWinner chooses one ticket uniformly at random from the draw's roster,
// persists the completion in a single guarded update and fans out result
// notifications. One ticket per user is enforced by the ledger, so uniform
// per ticket is uniform per user.
//
// The status guard makes a second invocation fail with ErrAlreadyCompleted
// instead of silently re-randomizing; the draw's winner fields are written
// exactly once. Notification failures are logged and swallowed - the
// completed draw is the source of truth, not the inbox.
func PickWinner(db *gorm.DB, drawID uint) (*PickWinnerResult, error) {
	var draw models.Draw
	if err := db.First(&draw, drawID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDrawNotFound
		}
		return nil, err
	}
	if draw.Status == models.DrawStatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	tickets, err := ListTicketsForDraw(db, drawID)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, ErrNoParticipants
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	winning := tickets[rnd.Intn(len(tickets))]

	winnerName := resolveWinnerName(db, winning.UserID)

	// All winner fields and the status flip in one update; the status
	// predicate loses cleanly if someone else completed the draw first.
	res := db.Model(&models.Draw{}).
		Where("id = ? AND status <> ?", drawID, models.DrawStatusCompleted).
		Updates(map[string]interface{}{
			"status":               models.DrawStatusCompleted,
			"winner_user_id":       winning.UserID,
			"winner_ticket_number": winning.Number,
			"winner_name":          winnerName,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrWinnerPersistFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyCompleted
	}

	if err := NotifyWinner(db, winning.UserID, draw.Title, winning.Number); err != nil {
		log.Printf("[winner] draw=%d winner notification failed for user=%d: %v", drawID, winning.UserID, err)
	}
	losers := make([]uint, 0, len(tickets)-1)
	for _, t := range tickets {
		if t.UserID != winning.UserID {
			losers = append(losers, t.UserID)
		}
	}
	if err := NotifyLosers(db, losers, draw.Title, winnerName, winning.Number); err != nil {
		log.Printf("[winner] draw=%d results fan-out failed (%d recipients): %v", drawID, len(losers), err)
	}

	var updated models.Draw
	if err := db.First(&updated, drawID).Error; err != nil {
		// The completion committed; fall back to the in-memory copy.
		updated = draw
		updated.Status = models.DrawStatusCompleted
		updated.WinnerUserID = &winning.UserID
		updated.WinnerTicketNumber = &winning.Number
		updated.WinnerName = &winnerName
	}

	return &PickWinnerResult{
		WinnerID:            winning.UserID,
		WinnerName:          winnerName,
		WinningTicketNumber: winning.Number,
		Draw:                updated,
	}, nil
}

// resolveWinnerName denormalizes the winner's display name onto the draw so
// result screens never need a join against a possibly-deleted profile.
func resolveWinnerName(db *gorm.DB, userID uint) string {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return "Anonymous Winner"
	}
	return user.DisplayName()
}
