package routes

import (
	"net/http"
	"time"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/controllers/auth"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/controllers/users"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers all user-facing routes on the given subrouter
func UsersRoutes(api *mux.Router) {
	// Login/register: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// Session traffic: 120 reads, 60 writes per user per minute
	userLimiter := middleware.NewUserRateLimiter(120, 60, 60)

	// Register & Login
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)
	api.Handle("/logout-all", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutAllHandler)))).Methods(http.MethodPost)

	// Account
	api.Handle("/users/info", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.InfoHandler)))).Methods(http.MethodGet)
	api.Handle("/users/profile", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateProfileHandler)))).Methods(http.MethodPut)
	api.Handle("/users/change-password", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ChangePasswordHandler)))).Methods(http.MethodPost)

	// Draws: listing and detail are public, entering requires auth
	api.Handle("/draws", userLimiter.Middleware(http.HandlerFunc(users.ListDrawsHandler))).Methods(http.MethodGet)
	api.Handle("/draws/{id:[0-9]+}", userLimiter.Middleware(http.HandlerFunc(users.GetDrawHandler))).Methods(http.MethodGet)
	api.Handle("/draws/{id:[0-9]+}/tickets", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.PurchaseTicketHandler)))).Methods(http.MethodPost)
	api.Handle("/users/tickets", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.MyTicketsHandler)))).Methods(http.MethodGet)

	// Wallet
	api.Handle("/users/wallet", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.BalanceHandler)))).Methods(http.MethodGet)
	api.Handle("/users/wallet/transactions", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.TransactionsHandler)))).Methods(http.MethodGet)
	api.Handle("/users/wallet/topup", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.TopupHandler)))).Methods(http.MethodPost)

	// Notifications
	api.Handle("/users/notifications", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListNotificationsHandler)))).Methods(http.MethodGet)
	api.Handle("/users/notifications/read-all", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.MarkAllNotificationsReadHandler)))).Methods(http.MethodPost)
	api.Handle("/users/notifications/{id:[0-9]+}/read", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.MarkNotificationReadHandler)))).Methods(http.MethodPost)
	api.Handle("/users/notifications/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.DeleteNotificationHandler)))).Methods(http.MethodDelete)
}
