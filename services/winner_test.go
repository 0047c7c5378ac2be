package services

import (
	"errors"
	"testing"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
)

func TestPickWinner_CompletesDrawAndFansOut(t *testing.T) {
	db := newTestDB(t)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{10})

	entrants := []models.User{
		seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100),
		seedUser(t, db, "", "", "omar@example.com", 100),
		seedUser(t, db, "Lina", "", "lina@example.com", 100),
	}
	for i, u := range entrants {
		if _, err := PurchaseTicket(db, d.ID, u.ID, i+1, 10); err != nil {
			t.Fatalf("purchase for %s: %v", u.Email, err)
		}
	}

	result, err := PickWinner(db, d.ID)
	if err != nil {
		t.Fatalf("pick winner: %v", err)
	}
	if result.WinnerID == 0 || result.WinnerName == "" {
		t.Fatalf("incomplete result %+v", result)
	}

	var draw models.Draw
	if err := db.First(&draw, d.ID).Error; err != nil {
		t.Fatalf("reload draw: %v", err)
	}
	if draw.Status != models.DrawStatusCompleted {
		t.Fatalf("expected completed status, got %s", draw.Status)
	}
	if draw.WinnerUserID == nil || *draw.WinnerUserID != result.WinnerID {
		t.Fatalf("winner user id not persisted: %+v", draw)
	}
	if draw.WinnerTicketNumber == nil || *draw.WinnerTicketNumber != result.WinningTicketNumber {
		t.Fatalf("winner ticket number not persisted: %+v", draw)
	}
	if draw.WinnerName == nil || *draw.WinnerName != result.WinnerName {
		t.Fatalf("winner name not persisted: %+v", draw)
	}

	// Fan-out: one "you won", one "results" row per losing entrant
	var winRows int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND title = ?", result.WinnerID, "Congratulations, you won!").
		Count(&winRows)
	if winRows != 1 {
		t.Fatalf("expected 1 winner notification, got %d", winRows)
	}
	var resultRows int64
	db.Model(&models.Notification{}).Where("title = ?", "Draw results").Count(&resultRows)
	if resultRows != int64(len(entrants)-1) {
		t.Fatalf("expected %d results notifications, got %d", len(entrants)-1, resultRows)
	}
	var winnerResultRows int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND title = ?", result.WinnerID, "Draw results").
		Count(&winnerResultRows)
	if winnerResultRows != 0 {
		t.Fatalf("winner must not receive a results notification")
	}
}

func TestPickWinner_NoParticipants(t *testing.T) {
	db := newTestDB(t)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{10})

	if _, err := PickWinner(db, d.ID); !errors.Is(err, ErrNoParticipants) {
		t.Fatalf("expected ErrNoParticipants, got %v", err)
	}

	var draw models.Draw
	db.First(&draw, d.ID)
	if draw.Status != models.DrawStatusActive || draw.WinnerUserID != nil {
		t.Fatalf("empty draw must stay untouched, got %+v", draw)
	}
	var rows int64
	db.Model(&models.Notification{}).Count(&rows)
	if rows != 0 {
		t.Fatalf("expected no notifications, got %d", rows)
	}
}

func TestPickWinner_AlreadyCompleted(t *testing.T) {
	db := newTestDB(t)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{10})
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)
	if _, err := PurchaseTicket(db, d.ID, u.ID, 1, 10); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	first, err := PickWinner(db, d.ID)
	if err != nil {
		t.Fatalf("first pick: %v", err)
	}

	if _, err := PickWinner(db, d.ID); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted on repeat, got %v", err)
	}

	// Repeat attempts must not rewrite the winner or duplicate notifications
	var draw models.Draw
	db.First(&draw, d.ID)
	if draw.WinnerUserID == nil || *draw.WinnerUserID != first.WinnerID {
		t.Fatalf("winner changed on repeat call: %+v", draw)
	}
	var rows int64
	db.Model(&models.Notification{}).Count(&rows)
	if rows != 1 {
		t.Fatalf("expected 1 notification total, got %d", rows)
	}
}

func TestPickWinner_DrawNotFound(t *testing.T) {
	db := newTestDB(t)
	if _, err := PickWinner(db, 4242); !errors.Is(err, ErrDrawNotFound) {
		t.Fatalf("expected ErrDrawNotFound, got %v", err)
	}
}

func TestPickWinner_NameFallsBackToEmailLocalPart(t *testing.T) {
	db := newTestDB(t)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{10})
	u := seedUser(t, db, "", "", "lucky.winner@example.com", 100)
	if _, err := PurchaseTicket(db, d.ID, u.ID, 1, 10); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	result, err := PickWinner(db, d.ID)
	if err != nil {
		t.Fatalf("pick winner: %v", err)
	}
	if result.WinnerName != "lucky.winner" {
		t.Fatalf("expected email local part as winner name, got %q", result.WinnerName)
	}
}
