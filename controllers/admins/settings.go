package admins

import (
	"errors"
	"net/http"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"gorm.io/gorm"
)

func GetSettings(w http.ResponseWriter, r *http.Request) {
	setting, err := models.GetSetting(database.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Settings not configured yet"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{"settings": setting}})
}

type UpdateSettingsRequest struct {
	Name           *string  `json:"name" validate:"omitempty,max=100"`
	Company        *string  `json:"company" validate:"omitempty,max=100"`
	Logo           *string  `json:"logo" validate:"omitempty,url,max=255"`
	MinTopup       *float64 `json:"min_topup" validate:"omitempty,gte=0"`
	MaxTopup       *float64 `json:"max_topup" validate:"omitempty,gte=0"`
	Maintenance    *bool    `json:"maintenance"`
	ClosedRegister *bool    `json:"closed_register"`
	LinkCS         *string  `json:"link_cs" validate:"omitempty,max=255"`
	LinkGroup      *string  `json:"link_group" validate:"omitempty,max=255"`
	LinkApp        *string  `json:"link_app" validate:"omitempty,max=255"`
}

// UpdateSettings upserts the single settings row.
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	var setting models.Setting
	if err := db.Take(&setting).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
			return
		}
		// first write creates the row
	}

	if req.Name != nil {
		setting.Name = *req.Name
	}
	if req.Company != nil {
		setting.Company = *req.Company
	}
	if req.Logo != nil {
		setting.Logo = *req.Logo
	}
	if req.MinTopup != nil {
		setting.MinTopup = *req.MinTopup
	}
	if req.MaxTopup != nil {
		setting.MaxTopup = *req.MaxTopup
	}
	if req.Maintenance != nil {
		setting.Maintenance = *req.Maintenance
	}
	if req.ClosedRegister != nil {
		setting.ClosedRegister = *req.ClosedRegister
	}
	if req.LinkCS != nil {
		setting.LinkCS = *req.LinkCS
	}
	if req.LinkGroup != nil {
		setting.LinkGroup = *req.LinkGroup
	}
	if req.LinkApp != nil {
		setting.LinkApp = *req.LinkApp
	}

	if err := db.Save(&setting).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Update failed"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Settings updated", Data: map[string]interface{}{"settings": setting}})
}
