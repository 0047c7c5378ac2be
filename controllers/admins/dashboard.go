package admins

import (
	"net/http"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"
)

// Dashboard returns the headline numbers for the admin home screen.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var totalUsers, activeDraws, completedDraws, totalTickets int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Draw{}).Where("status = ?", models.DrawStatusActive).Count(&activeDraws)
	db.Model(&models.Draw{}).Where("status = ?", models.DrawStatusCompleted).Count(&completedDraws)
	db.Model(&models.Ticket{}).Count(&totalTickets)

	var ticketRevenue float64
	db.Model(&models.Ticket{}).Select("COALESCE(SUM(price),0)").Scan(&ticketRevenue)

	var pendingTopups int64
	db.Model(&models.Transaction{}).
		Where("transaction_type = ? AND status = ?", "topup", "Pending").
		Count(&pendingTopups)

	var recentDraws []models.Draw
	db.Order("created_at DESC").Limit(5).Find(&recentDraws)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"total_users":     totalUsers,
			"active_draws":    activeDraws,
			"completed_draws": completedDraws,
			"total_tickets":   totalTickets,
			"ticket_revenue":  ticketRevenue,
			"pending_topups":  pendingTopups,
			"recent_draws":    recentDraws,
		},
	})
}
