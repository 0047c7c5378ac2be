package services

import (
	"errors"
	"testing"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
)

func TestPurchaseTicket_Success(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{5, 10, 20})

	ticket, err := PurchaseTicket(db, d.ID, u.ID, 7, 10)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if ticket.Number != 7 || ticket.DrawID != d.ID || ticket.UserID != u.ID {
		t.Fatalf("unexpected ticket %+v", ticket)
	}

	var user models.User
	if err := db.First(&user, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.Balance != 90 {
		t.Fatalf("expected balance 90 after debit, got %v", user.Balance)
	}

	var draw models.Draw
	if err := db.First(&draw, d.ID).Error; err != nil {
		t.Fatalf("reload draw: %v", err)
	}
	if draw.CurrentParticipants != 1 {
		t.Fatalf("expected 1 participant, got %d", draw.CurrentParticipants)
	}

	var trxCount int64
	db.Model(&models.Transaction{}).
		Where("user_id = ? AND transaction_flow = ? AND transaction_type = ?", u.ID, "debit", "ticket").
		Count(&trxCount)
	if trxCount != 1 {
		t.Fatalf("expected 1 ledger debit, got %d", trxCount)
	}
}

func TestPurchaseTicket_NumberTakenAndAlreadyEntered(t *testing.T) {
	db := newTestDB(t)
	u1 := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)
	u2 := seedUser(t, db, "Omar", "Khalil", "omar@example.com", 100)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{5, 10, 20})

	if _, err := PurchaseTicket(db, d.ID, u1.ID, 7, 10); err != nil {
		t.Fatalf("first purchase: %v", err)
	}

	// Another user wants the same number
	if _, err := PurchaseTicket(db, d.ID, u2.ID, 7, 10); !errors.Is(err, ErrNumberTaken) {
		t.Fatalf("expected ErrNumberTaken, got %v", err)
	}

	// The first user tries a second entry with a free number
	if _, err := PurchaseTicket(db, d.ID, u1.ID, 8, 10); !errors.Is(err, ErrAlreadyEntered) {
		t.Fatalf("expected ErrAlreadyEntered, got %v", err)
	}

	// Failed purchases must not leak debits or counter bumps
	var u2Reloaded models.User
	db.First(&u2Reloaded, u2.ID)
	if u2Reloaded.Balance != 100 {
		t.Fatalf("expected rejected buyer to keep balance 100, got %v", u2Reloaded.Balance)
	}
	var draw models.Draw
	db.First(&draw, d.ID)
	if draw.CurrentParticipants != 1 {
		t.Fatalf("expected participant count 1 after rejections, got %d", draw.CurrentParticipants)
	}
}

func TestPurchaseTicket_DrawClosed(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)

	for _, status := range []string{models.DrawStatusUpcoming, models.DrawStatusCompleted} {
		d := seedDraw(t, db, status, 100, []float64{10})
		if _, err := PurchaseTicket(db, d.ID, u.ID, 1, 10); !errors.Is(err, ErrDrawClosed) {
			t.Fatalf("status %s: expected ErrDrawClosed, got %v", status, err)
		}
	}
}

func TestPurchaseTicket_DrawNotFound(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)

	if _, err := PurchaseTicket(db, 9999, u.ID, 1, 10); !errors.Is(err, ErrDrawNotFound) {
		t.Fatalf("expected ErrDrawNotFound, got %v", err)
	}
}

func TestPurchaseTicket_InvalidNumber(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)
	d := seedDraw(t, db, models.DrawStatusActive, 50, []float64{10})

	for _, n := range []int{0, -3, 51} {
		if _, err := PurchaseTicket(db, d.ID, u.ID, n, 10); !errors.Is(err, ErrInvalidTicketNumber) {
			t.Fatalf("number %d: expected ErrInvalidTicketNumber, got %v", n, err)
		}
	}
}

func TestPurchaseTicket_InvalidPrice(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{5, 10, 20})

	for _, p := range []float64{0, 7, 15, -10} {
		if _, err := PurchaseTicket(db, d.ID, u.ID, 3, p); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("price %v: expected ErrInvalidPrice, got %v", p, err)
		}
	}
}

func TestPurchaseTicket_InsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 5)
	d := seedDraw(t, db, models.DrawStatusActive, 100, []float64{10})

	if _, err := PurchaseTicket(db, d.ID, u.ID, 3, 10); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	var count int64
	db.Model(&models.Ticket{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no tickets after failed debit, got %d", count)
	}
}

func TestListTicketsForDraw_Empty(t *testing.T) {
	db := newTestDB(t)
	d := seedDraw(t, db, models.DrawStatusActive, 10, []float64{10})

	tickets, err := ListTicketsForDraw(db, d.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tickets == nil || len(tickets) != 0 {
		t.Fatalf("expected empty slice, got %v", tickets)
	}
}

func TestListTicketsForDraw_StableAcrossReads(t *testing.T) {
	db := newTestDB(t)
	d := seedDraw(t, db, models.DrawStatusActive, 10, []float64{10})
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		u := seedUser(t, db, "", "", email, 100)
		if _, err := PurchaseTicket(db, d.ID, u.ID, i+1, 10); err != nil {
			t.Fatalf("purchase %s: %v", email, err)
		}
	}

	first, err := ListTicketsForDraw(db, d.ID)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := ListTicketsForDraw(db, d.ID)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 tickets on both reads, got %d and %d", len(first), len(second))
	}
	ids := map[uint]bool{}
	for _, tk := range first {
		ids[tk.ID] = true
	}
	for _, tk := range second {
		if !ids[tk.ID] {
			t.Fatalf("second read returned unseen ticket %d", tk.ID)
		}
	}
}

func TestListTicketsForUser(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "Sara", "Haddad", "sara@example.com", 100)
	d1 := seedDraw(t, db, models.DrawStatusActive, 10, []float64{10})
	d2 := seedDraw(t, db, models.DrawStatusActive, 10, []float64{5})

	if _, err := PurchaseTicket(db, d1.ID, u.ID, 1, 10); err != nil {
		t.Fatalf("purchase d1: %v", err)
	}
	if _, err := PurchaseTicket(db, d2.ID, u.ID, 2, 5); err != nil {
		t.Fatalf("purchase d2: %v", err)
	}

	tickets, err := ListTicketsForUser(db, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	for _, tk := range tickets {
		if tk.Draw == nil {
			t.Fatalf("expected preloaded draw on ticket %d", tk.ID)
		}
	}
}
