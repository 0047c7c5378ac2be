package users

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"gorm.io/gorm"
)

// BalanceHandler returns the user's current wallet balance.
func BalanceHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.Select("id, balance").First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"balance": user.Balance},
	})
}

// TransactionsHandler lists the user's wallet ledger, newest first.
func TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	var rows []models.Transaction
	if err := database.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"transactions": rows},
	})
}

type TopupRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// TopupHandler records a pending credit in the ledger. No payment gateway is
// wired yet; an admin confirms the transfer and flips the row to Success.
func TopupHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req TopupRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var setting models.Setting
	if err := database.DB.Model(&models.Setting{}).Select("min_topup, max_topup").Take(&setting).Error; err == nil {
		if setting.MinTopup > 0 && req.Amount < setting.MinTopup {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Amount is below the minimum top-up"})
			return
		}
		if setting.MaxTopup > 0 && req.Amount > setting.MaxTopup {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Amount is above the maximum top-up"})
			return
		}
	}

	msg := "Wallet top-up"
	txn := models.Transaction{
		UserID:          uid,
		Amount:          req.Amount,
		OrderID:         utils.GenerateOrderID(uid),
		TransactionFlow: "credit",
		TransactionType: "topup",
		Message:         &msg,
		Status:          "Pending",
	}
	if err := database.DB.Create(&txn).Error; err != nil {
		log.Printf("[wallet] create topup transaction user=%d: %v", uid, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Top-up created, waiting for confirmation",
		Data:    map[string]interface{}{"transaction": txn},
	})
}
