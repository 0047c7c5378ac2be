package admins

import (
	"log"
	"net/http"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/services"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"
)

type BroadcastRequest struct {
	Role    string `json:"role" validate:"required,oneof=user admin"`
	Title   string `json:"title" validate:"required,max=191"`
	Message string `json:"message" validate:"required"`
}

// Broadcast creates one role-addressed notification visible to every account
// with that role.
func Broadcast(w http.ResponseWriter, r *http.Request) {
	var req BroadcastRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	n, err := services.BroadcastToRole(database.DB, req.Role, req.Title, req.Message)
	if err != nil {
		log.Printf("[admin-notifications] broadcast role=%s: %v", req.Role, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Broadcast failed"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Broadcast sent",
		Data:    map[string]interface{}{"notification": n},
	})
}

// ListNotifications returns recent notifications for auditing, including
// targeted draw-result rows.
func ListNotifications(w http.ResponseWriter, r *http.Request) {
	var rows []models.Notification
	if err := database.DB.Order("created_at DESC").Limit(200).Find(&rows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{"notifications": rows}})
}
