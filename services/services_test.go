package services

import (
	"testing"
	"time"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Draw{},
		&models.Ticket{},
		&models.Transaction{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, first, last, email string, balance float64) models.User {
	t.Helper()
	u := models.User{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  "x",
		Balance:   balance,
		Status:    "Active",
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedDraw(t *testing.T, db *gorm.DB, status string, slots int, tiers []float64) models.Draw {
	t.Helper()
	d := models.Draw{
		Title:           "1g Gold Bar",
		GoldWeightGrams: 1,
		PriceTiers:      tiers,
		TotalSlots:      slots,
		StartAt:         time.Now().Add(-time.Hour),
		EndAt:           time.Now().Add(time.Hour),
		Status:          status,
	}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed draw: %v", err)
	}
	return d
}
