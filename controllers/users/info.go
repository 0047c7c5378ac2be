package users

import (
	"errors"
	"net/http"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"gorm.io/gorm"
)

func InfoHandler(w http.ResponseWriter, r *http.Request) {
	// Auth middleware sets user ID in context; use that
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB
	var user models.User
	if err := db.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	var setting models.Setting
	err := db.Model(&models.Setting{}).
		Select("name, company, logo, min_topup, max_topup, link_cs, link_group, link_app").
		Take(&setting).Error
	healthy := err == nil

	var ticketCount int64
	db.Model(&models.Ticket{}).Where("user_id = ?", user.ID).Count(&ticketCount)

	var winCount int64
	db.Model(&models.Draw{}).Where("winner_user_id = ?", user.ID).Count(&winCount)

	var unread int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", user.ID, false).Count(&unread)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"user": map[string]interface{}{
				"first_name":   user.FirstName,
				"last_name":    user.LastName,
				"name":         user.DisplayName(),
				"email":        user.Email,
				"balance":      user.Balance,
				"avatar":       utils.GetStringValue(user.Avatar),
				"ticket_count": ticketCount,
				"win_count":    winCount,
				"unread_count": unread,
			},
			"application": map[string]interface{}{
				"name":       setting.Name,
				"company":    setting.Company,
				"logo":       setting.Logo,
				"min_topup":  setting.MinTopup,
				"max_topup":  setting.MaxTopup,
				"link_cs":    setting.LinkCS,
				"link_group": setting.LinkGroup,
				"link_app":   setting.LinkApp,
				"healthy":    healthy,
			},
		},
	})
}
