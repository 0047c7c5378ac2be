package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/services"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// ListDrawsHandler returns draws, optionally filtered by ?status=
func ListDrawsHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	q := db.Model(&models.Draw{}).Order("created_at DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		switch status {
		case models.DrawStatusUpcoming, models.DrawStatusActive, models.DrawStatusCompleted:
			q = q.Where("status = ?", status)
		default:
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid status filter"})
			return
		}
	}

	var draws []models.Draw
	if err := q.Find(&draws).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"draws": draws},
	})
}

// GetDrawHandler returns one draw with its taken numbers so the client can
// render the number picker.
func GetDrawHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid draw id"})
		return
	}

	db := database.DB
	var draw models.Draw
	if err := db.First(&draw, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Draw not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	tickets, err := services.ListTicketsForDraw(db, draw.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	taken := make([]int, 0, len(tickets))
	for _, t := range tickets {
		taken = append(taken, t.Number)
	}

	resp := map[string]interface{}{
		"draw":          draw,
		"taken_numbers": taken,
	}

	if uid, ok := utils.GetUserID(r); ok {
		var mine models.Ticket
		if err := db.Where("draw_id = ? AND user_id = ?", draw.ID, uid).First(&mine).Error; err == nil {
			resp["my_ticket"] = mine
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    resp,
	})
}
