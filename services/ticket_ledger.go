package services

import (
	"errors"
	"fmt"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"gorm.io/gorm"
)

// ListTicketsForDraw returns all tickets of a draw, in no particular order.
// An empty draw yields an empty slice, not an error.
func ListTicketsForDraw(db *gorm.DB, drawID uint) ([]models.Ticket, error) {
	tickets := []models.Ticket{}
	if err := db.Where("draw_id = ?", drawID).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListTicketsForUser returns a user's ticket history, newest first.
func ListTicketsForUser(db *gorm.DB, userID uint) ([]models.Ticket, error) {
	tickets := []models.Ticket{}
	if err := db.Preload("Draw").Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// PurchaseTicket records a ticket purchase atomically: the ticket row, the
// wallet debit, the ledger entry and the participant counter either all
// commit or nothing changes. The caller chooses the number; the price is
// mandatory and must match one of the draw's configured tiers.
//
// The ticket table's composite unique indexes are the safety net for racing
// purchases; a duplicate-key rejection is re-queried to tell "already
// entered" apart from "number taken". The loser of a race gets a clean
// typed error, never a silent renumber.
func PurchaseTicket(db *gorm.DB, drawID, userID uint, number int, price float64) (*models.Ticket, error) {
	var draw models.Draw
	if err := db.First(&draw, drawID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDrawNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPurchaseFailed, err)
	}

	if draw.Status != models.DrawStatusActive {
		return nil, ErrDrawClosed
	}
	if number < 1 || number > draw.TotalSlots {
		return nil, ErrInvalidTicketNumber
	}
	if !draw.HasPriceTier(price) {
		return nil, ErrInvalidPrice
	}

	ticket := models.Ticket{
		DrawID: drawID,
		UserID: userID,
		Number: number,
		Price:  price,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Conditional debit doubles as the balance check; no row means the
		// wallet cannot cover the price.
		res := tx.Model(&models.User{}).
			Where("id = ? AND balance >= ?", userID, price).
			UpdateColumn("balance", gorm.Expr("balance - ?", price))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}

		// Counter is maintained by the store, not by client math.
		if err := tx.Model(&models.Draw{}).
			Where("id = ?", drawID).
			UpdateColumn("current_participants", gorm.Expr("current_participants + 1")).Error; err != nil {
			return err
		}

		msg := fmt.Sprintf("Ticket #%d for draw %q", number, draw.Title)
		trx := models.Transaction{
			UserID:          userID,
			Amount:          price,
			Charge:          0,
			OrderID:         utils.GenerateOrderID(userID),
			TransactionFlow: "debit",
			TransactionType: "ticket",
			Message:         &msg,
			Status:          "Success",
		}
		return tx.Create(&trx).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientBalance):
			return nil, ErrInsufficientBalance
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, classifyDuplicate(db, drawID, userID)
		default:
			return nil, fmt.Errorf("%w: %v", ErrPurchaseFailed, err)
		}
	}

	return &ticket, nil
}

// classifyDuplicate decides which uniqueness constraint rejected the insert.
// If the user already holds a ticket in the draw the cause is AlreadyEntered,
// otherwise the number itself was taken.
func classifyDuplicate(db *gorm.DB, drawID, userID uint) error {
	var count int64
	if err := db.Model(&models.Ticket{}).
		Where("draw_id = ? AND user_id = ?", drawID, userID).
		Count(&count).Error; err == nil && count > 0 {
		return ErrAlreadyEntered
	}
	return ErrNumberTaken
}
