package routes

import (
	"net/http"
	"time"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/controllers/admins"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"

	"github.com/gorilla/mux"
)

func SetAdminRoutes(api *mux.Router) {
	// Rate limiter for admin login: 5 attempts per IP per minute
	adminLoginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	// Public admin routes
	api.Handle("/admin/login", adminLoginLimiter.Middleware(http.HandlerFunc(admins.Login))).Methods(http.MethodPost)

	// Protected admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware)

	// Dashboard stats
	adminRouter.Handle("/dashboard", http.HandlerFunc(admins.Dashboard)).Methods(http.MethodGet)

	// Draw management
	adminRouter.Handle("/draws", http.HandlerFunc(admins.CreateDraw)).Methods(http.MethodPost)
	adminRouter.Handle("/draws/{id:[0-9]+}", http.HandlerFunc(admins.UpdateDraw)).Methods(http.MethodPut)
	adminRouter.Handle("/draws/{id:[0-9]+}", http.HandlerFunc(admins.DeleteDraw)).Methods(http.MethodDelete)
	adminRouter.Handle("/draws/{id:[0-9]+}/tickets", http.HandlerFunc(admins.ListDrawTickets)).Methods(http.MethodGet)
	adminRouter.Handle("/draws/{id:[0-9]+}/pick-winner", http.HandlerFunc(admins.PickWinner)).Methods(http.MethodPost)

	// User management
	adminRouter.Handle("/users", http.HandlerFunc(admins.ListUsers)).Methods(http.MethodGet)
	adminRouter.Handle("/users/{id:[0-9]+}/status", http.HandlerFunc(admins.UpdateUserStatus)).Methods(http.MethodPut)

	// Banner management
	adminRouter.Handle("/banners", http.HandlerFunc(admins.ListBanners)).Methods(http.MethodGet)
	adminRouter.Handle("/banners", http.HandlerFunc(admins.CreateBanner)).Methods(http.MethodPost)
	adminRouter.Handle("/banners/{id:[0-9]+}", http.HandlerFunc(admins.UpdateBanner)).Methods(http.MethodPut)
	adminRouter.Handle("/banners/{id:[0-9]+}", http.HandlerFunc(admins.DeleteBanner)).Methods(http.MethodDelete)

	// Media management
	adminRouter.Handle("/media", http.HandlerFunc(admins.UploadMedia)).Methods(http.MethodPost)
	adminRouter.Handle("/media", http.HandlerFunc(admins.ListMedia)).Methods(http.MethodGet)
	adminRouter.Handle("/media/{id:[0-9]+}", http.HandlerFunc(admins.DeleteMedia)).Methods(http.MethodDelete)

	// Notifications
	adminRouter.Handle("/notifications", http.HandlerFunc(admins.ListNotifications)).Methods(http.MethodGet)
	adminRouter.Handle("/notifications/broadcast", http.HandlerFunc(admins.Broadcast)).Methods(http.MethodPost)

	// Settings
	adminRouter.Handle("/settings", http.HandlerFunc(admins.GetSettings)).Methods(http.MethodGet)
	adminRouter.Handle("/settings", http.HandlerFunc(admins.UpdateSettings)).Methods(http.MethodPut)

	// Payments
	adminRouter.Handle("/payments/settings", http.HandlerFunc(admins.GetPaymentSettings)).Methods(http.MethodGet)
	adminRouter.Handle("/payments/settings", http.HandlerFunc(admins.UpdatePaymentSettings)).Methods(http.MethodPut)
	adminRouter.Handle("/payments/topups", http.HandlerFunc(admins.ListPendingTopups)).Methods(http.MethodGet)
	adminRouter.Handle("/payments/topups/{id:[0-9]+}", http.HandlerFunc(admins.ResolveTopup)).Methods(http.MethodPut)
}
