package admins

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/services"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type CreateDrawRequest struct {
	Title           string    `json:"title" validate:"required,max=191"`
	Description     *string   `json:"description"`
	GoldWeightGrams float64   `json:"gold_weight_grams" validate:"required,gt=0"`
	PriceTiers      []float64 `json:"price_tiers" validate:"required,min=1,dive,gt=0"`
	TotalSlots      int       `json:"total_slots" validate:"required,min=2"`
	StartAt         time.Time `json:"start_at" validate:"required"`
	EndAt           time.Time `json:"end_at" validate:"required,gtfield=StartAt"`
	BannerURL       *string   `json:"banner_url" validate:"omitempty,url"`
	Status          string    `json:"status" validate:"omitempty,oneof=upcoming active"`
}

func CreateDraw(w http.ResponseWriter, r *http.Request) {
	var req CreateDrawRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	status := req.Status
	if status == "" {
		status = models.DrawStatusUpcoming
	}

	draw := models.Draw{
		Title:           req.Title,
		Description:     req.Description,
		GoldWeightGrams: req.GoldWeightGrams,
		PriceTiers:      req.PriceTiers,
		TotalSlots:      req.TotalSlots,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		Status:          status,
		BannerURL:       req.BannerURL,
	}
	if err := database.DB.Create(&draw).Error; err != nil {
		log.Printf("[admin-draws] create draw: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create draw"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Draw created",
		Data:    map[string]interface{}{"draw": draw},
	})
}

type UpdateDrawRequest struct {
	Title           *string    `json:"title" validate:"omitempty,max=191"`
	Description     *string    `json:"description"`
	GoldWeightGrams *float64   `json:"gold_weight_grams" validate:"omitempty,gt=0"`
	PriceTiers      *[]float64 `json:"price_tiers" validate:"omitempty,min=1,dive,gt=0"`
	TotalSlots      *int       `json:"total_slots" validate:"omitempty,min=2"`
	StartAt         *time.Time `json:"start_at"`
	EndAt           *time.Time `json:"end_at"`
	BannerURL       *string    `json:"banner_url" validate:"omitempty,url"`
	Status          *string    `json:"status" validate:"omitempty,oneof=upcoming active"`
}

// UpdateDraw edits a draw that has not completed. Completed draws are frozen;
// their winner fields are written once by winner selection and never touched
// again.
func UpdateDraw(w http.ResponseWriter, r *http.Request) {
	id, ok := drawIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateDrawRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	var draw models.Draw
	if err := db.First(&draw, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Draw not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	if draw.Status == models.DrawStatusCompleted {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Completed draws cannot be edited"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.GoldWeightGrams != nil {
		updates["gold_weight_grams"] = *req.GoldWeightGrams
	}
	if req.TotalSlots != nil {
		if *req.TotalSlots < draw.CurrentParticipants {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Total slots cannot be below the current number of entries"})
			return
		}
		updates["total_slots"] = *req.TotalSlots
	}
	if req.StartAt != nil {
		updates["start_at"] = *req.StartAt
	}
	if req.EndAt != nil {
		updates["end_at"] = *req.EndAt
	}
	if req.BannerURL != nil {
		updates["banner_url"] = *req.BannerURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.PriceTiers != nil {
		draw.PriceTiers = *req.PriceTiers
		if err := db.Model(&draw).Select("price_tiers").Updates(&draw).Error; err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Update failed"})
			return
		}
	}
	if len(updates) > 0 {
		if err := db.Model(&draw).Updates(updates).Error; err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Update failed"})
			return
		}
	}

	if err := db.First(&draw, id).Error; err == nil {
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Draw updated", Data: map[string]interface{}{"draw": draw}})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Draw updated"})
}

// DeleteDraw removes a draw without entries. Draws that already sold tickets
// cannot be deleted.
func DeleteDraw(w http.ResponseWriter, r *http.Request) {
	id, ok := drawIDFromPath(w, r)
	if !ok {
		return
	}

	db := database.DB
	var draw models.Draw
	if err := db.First(&draw, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Draw not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	var entries int64
	db.Model(&models.Ticket{}).Where("draw_id = ?", draw.ID).Count(&entries)
	if entries > 0 {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Draws with entries cannot be deleted"})
		return
	}

	if err := db.Delete(&draw).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Delete failed"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Draw deleted"})
}

// ListDrawTickets returns the full roster for one draw with user details.
func ListDrawTickets(w http.ResponseWriter, r *http.Request) {
	id, ok := drawIDFromPath(w, r)
	if !ok {
		return
	}

	db := database.DB
	var draw models.Draw
	if err := db.First(&draw, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Draw not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	var tickets []models.Ticket
	if err := db.Where("draw_id = ?", draw.ID).
		Preload("User").
		Order("number ASC").
		Find(&tickets).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"draw":    draw,
			"tickets": tickets,
		},
	})
}

// PickWinner completes the draw by selecting a winner at random. The
// selection service guards against double completion; a repeat call returns
// a conflict instead of re-rolling.
func PickWinner(w http.ResponseWriter, r *http.Request) {
	id, ok := drawIDFromPath(w, r)
	if !ok {
		return
	}

	result, err := services.PickWinner(database.DB, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDrawNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Draw not found"})
		case errors.Is(err, services.ErrNoParticipants):
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "No participants in this draw"})
		case errors.Is(err, services.ErrAlreadyCompleted):
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "This draw has already been completed"})
		case errors.Is(err, services.ErrWinnerPersistFailed):
			log.Printf("[admin-draws] winner persist failed draw=%d: %v", id, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to save the winner, please retry"})
		default:
			log.Printf("[admin-draws] pick winner draw=%d: %v", id, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return
	}

	// Best-effort realtime hint for connected clients
	if err := utils.PublishDrawCompleted(result.Draw.ID, result.WinnerName, result.WinningTicketNumber); err != nil {
		log.Printf("[admin-draws] publish draw completed draw=%d: %v", id, err)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Winner selected",
		Data:    map[string]interface{}{"result": result},
	})
}

func drawIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid draw id"})
		return 0, false
	}
	return uint(id), true
}
