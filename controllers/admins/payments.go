package admins

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func GetPaymentSettings(w http.ResponseWriter, r *http.Request) {
	var ps models.PaymentSettings
	if err := database.DB.Take(&ps).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Payment settings not configured yet"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{"payment_settings": ps}})
}

type UpdatePaymentSettingsRequest struct {
	GatewayAPIKey  *string  `json:"GATEWAY_API_KEY" validate:"omitempty,max=191"`
	GatewayProject *string  `json:"GATEWAY_PROJECT" validate:"omitempty,max=191"`
	BankName       *string  `json:"BANK_NAME" validate:"omitempty,max=100"`
	BankCode       *string  `json:"BANK_CODE" validate:"omitempty,max=50"`
	AccountNumber  *string  `json:"ACCOUNT_NUMBER" validate:"omitempty,max=100"`
	AccountName    *string  `json:"ACCOUNT_NAME" validate:"omitempty,max=100"`
	TopupAmount    *float64 `json:"TOPUP_AMOUNT" validate:"omitempty,gte=0"`
}

func UpdatePaymentSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentSettingsRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	var ps models.PaymentSettings
	if err := db.Take(&ps).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	if req.GatewayAPIKey != nil {
		ps.GatewayAPIKey = *req.GatewayAPIKey
	}
	if req.GatewayProject != nil {
		ps.GatewayProject = *req.GatewayProject
	}
	if req.BankName != nil {
		ps.BankName = *req.BankName
	}
	if req.BankCode != nil {
		ps.BankCode = *req.BankCode
	}
	if req.AccountNumber != nil {
		ps.AccountNumber = *req.AccountNumber
	}
	if req.AccountName != nil {
		ps.AccountName = *req.AccountName
	}
	if req.TopupAmount != nil {
		ps.TopupAmount = *req.TopupAmount
	}

	if err := db.Save(&ps).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Update failed"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Payment settings updated", Data: map[string]interface{}{"payment_settings": ps}})
}

// ListPendingTopups shows credit transactions waiting for confirmation.
func ListPendingTopups(w http.ResponseWriter, r *http.Request) {
	var rows []models.Transaction
	if err := database.DB.
		Where("transaction_type = ? AND status = ?", "topup", "Pending").
		Order("created_at ASC").
		Limit(200).
		Find(&rows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{"transactions": rows}})
}

type ResolveTopupRequest struct {
	Status string `json:"status" validate:"required,oneof=Success Failed"`
}

// ResolveTopup confirms or rejects a pending top-up. Confirmation credits the
// wallet and flips the ledger row in one transaction.
func ResolveTopup(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid transaction id"})
		return
	}

	var req ResolveTopupRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	var txn models.Transaction
	if err := db.First(&txn, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Transaction not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	if txn.TransactionType != "topup" || txn.Status != "Pending" {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Transaction is not a pending top-up"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// guard against a concurrent resolve
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", txn.ID, "Pending").
			Update("status", req.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("transaction already resolved")
		}
		if req.Status == "Success" {
			if err := tx.Model(&models.User{}).
				Where("id = ?", txn.UserID).
				Update("balance", gorm.Expr("balance + ?", txn.Amount)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[admin-payments] resolve topup id=%d: %v", id, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to resolve top-up"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Top-up resolved"})
}
