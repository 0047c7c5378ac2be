package services

import (
	"testing"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
)

func TestNotifyLosers_BatchInsert(t *testing.T) {
	db := newTestDB(t)
	ids := []uint{}
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		u := seedUser(t, db, "", "", email, 0)
		ids = append(ids, u.ID)
	}

	if err := NotifyLosers(db, ids, "1g Gold Bar", "Sara Haddad", 7); err != nil {
		t.Fatalf("notify losers: %v", err)
	}

	var rows []models.Notification
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != len(ids) {
		t.Fatalf("expected %d rows, got %d", len(ids), len(rows))
	}
	for _, n := range rows {
		if n.UserID == nil {
			t.Fatalf("results rows must be targeted, got broadcast row %d", n.ID)
		}
		if n.Role != models.NotificationRoleUser {
			t.Fatalf("unexpected role %q", n.Role)
		}
	}
}

func TestNotifyLosers_EmptyIsNoop(t *testing.T) {
	db := newTestDB(t)
	if err := NotifyLosers(db, nil, "1g Gold Bar", "Sara Haddad", 7); err != nil {
		t.Fatalf("expected nil for empty recipient list, got %v", err)
	}
	var count int64
	db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestBroadcastToRole(t *testing.T) {
	db := newTestDB(t)
	n, err := BroadcastToRole(db, models.NotificationRoleUser, "Maintenance", "Back at 02:00 UTC")
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if n.UserID != nil {
		t.Fatalf("broadcast rows carry no user id, got %v", *n.UserID)
	}
	if n.ID == 0 {
		t.Fatalf("expected persisted row")
	}
}
