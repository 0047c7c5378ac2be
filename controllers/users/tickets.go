package users

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/services"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"github.com/gorilla/mux"
)

type PurchaseTicketRequest struct {
	Number int     `json:"number" validate:"required,min=1"`
	Price  float64 `json:"price" validate:"required,gt=0"`
}

// PurchaseTicketHandler buys one numbered ticket in a draw for the
// authenticated user. The ledger decides every conflict; this handler only
// translates its errors to HTTP.
func PurchaseTicketHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	idStr := mux.Vars(r)["id"]
	drawID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || drawID == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid draw id"})
		return
	}

	var req PurchaseTicketRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	ticket, err := services.PurchaseTicket(db, uint(drawID), uid, req.Number, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDrawNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Draw not found"})
		case errors.Is(err, services.ErrDrawClosed):
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "This draw is not open for entries"})
		case errors.Is(err, services.ErrInvalidTicketNumber):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Ticket number is out of range for this draw"})
		case errors.Is(err, services.ErrInvalidPrice):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Price does not match any tier for this draw"})
		case errors.Is(err, services.ErrAlreadyEntered):
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "You have already entered this draw"})
		case errors.Is(err, services.ErrNumberTaken):
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "This number has already been taken"})
		case errors.Is(err, services.ErrInsufficientBalance):
			utils.WriteJSON(w, http.StatusPaymentRequired, utils.APIResponse{Success: false, Message: "Insufficient balance, please top up your wallet"})
		default:
			log.Printf("[tickets] purchase failed draw=%d user=%d: %v", drawID, uid, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Purchase failed, please try again"})
		}
		return
	}

	// Best-effort purchase receipt in the inbox
	var draw models.Draw
	if err := db.First(&draw, ticket.DrawID).Error; err == nil {
		if err := services.NotifyTicketPurchased(db, uid, draw.Title, ticket.Number); err != nil {
			log.Printf("[tickets] purchase notification failed draw=%d user=%d: %v", drawID, uid, err)
		}
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Ticket purchased, good luck!",
		Data:    map[string]interface{}{"ticket": ticket},
	})
}

// MyTicketsHandler lists the authenticated user's tickets, newest first.
func MyTicketsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	tickets, err := services.ListTicketsForUser(database.DB, uid)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"tickets": tickets},
	})
}
