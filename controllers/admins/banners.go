package admins

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type BannerRequest struct {
	Title    string  `json:"title" validate:"required,max=191"`
	ImageURL string  `json:"image_url" validate:"required,url,max=255"`
	LinkURL  *string `json:"link_url" validate:"omitempty,url,max=255"`
	Position int     `json:"position" validate:"min=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func ListBanners(w http.ResponseWriter, r *http.Request) {
	var banners []models.Banner
	if err := database.DB.Order("position ASC, id ASC").Find(&banners).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{"banners": banners}})
}

func CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req BannerRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}
	banner := models.Banner{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		Status:   status,
	}
	if err := database.DB.Create(&banner).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create banner"})
		return
	}
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Banner created", Data: map[string]interface{}{"banner": banner}})
}

func UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := bannerIDFromPath(w, r)
	if !ok {
		return
	}

	var req BannerRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	var banner models.Banner
	if err := db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Banner not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	banner.Title = req.Title
	banner.ImageURL = req.ImageURL
	banner.LinkURL = req.LinkURL
	banner.Position = req.Position
	if req.Status != "" {
		banner.Status = req.Status
	}
	if err := db.Save(&banner).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Update failed"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Banner updated", Data: map[string]interface{}{"banner": banner}})
}

func DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := bannerIDFromPath(w, r)
	if !ok {
		return
	}

	res := database.DB.Delete(&models.Banner{}, id)
	if res.Error != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Banner not found"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Banner deleted"})
}

func bannerIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid banner id"})
		return 0, false
	}
	return uint(id), true
}
