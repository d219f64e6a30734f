package http

import (
	"net/http"

	"med-adherence-api/internal/delivery/http/handler"
	"med-adherence-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	scheduleHandler     *handler.ScheduleHandler
	activityHandler     *handler.ActivityHandler
	adherenceHandler    *handler.AdherenceHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	recoveryMiddleware  *middleware.RecoveryMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	scheduleHandler *handler.ScheduleHandler,
	activityHandler *handler.ActivityHandler,
	adherenceHandler *handler.AdherenceHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		scheduleHandler:     scheduleHandler,
		activityHandler:     activityHandler,
		adherenceHandler:    adherenceHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		recoveryMiddleware:  recoveryMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/token", r.authHandler.Token).Methods(http.MethodPost)
	auth.HandleFunc("/token/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Everything below requires authentication
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// User management: reads for any authenticated actor, writes admin-only
	protected.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)

	admin := api.PathPrefix("/users").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Medication schedules (object-level RBAC in the usecases)
	protected.HandleFunc("/schedules", r.scheduleHandler.ListSchedules).Methods(http.MethodGet)
	protected.HandleFunc("/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{id}", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	protected.HandleFunc("/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)

	// Dose activities
	protected.HandleFunc("/activities", r.activityHandler.ListActivities).Methods(http.MethodGet)
	protected.HandleFunc("/activities", r.activityHandler.CreateActivity).Methods(http.MethodPost)
	protected.HandleFunc("/activities/{id}", r.activityHandler.GetActivity).Methods(http.MethodGet)
	protected.HandleFunc("/activities/{id}", r.activityHandler.UpdateActivity).Methods(http.MethodPut)
	protected.HandleFunc("/activities/{id}", r.activityHandler.DeleteActivity).Methods(http.MethodDelete)

	// Adherence analytics
	protected.HandleFunc("/patients/{id}/adherence/summary", r.adherenceHandler.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/adherence/history", r.adherenceHandler.History).Methods(http.MethodGet)

	// Notifications
	protected.HandleFunc("/notifications", r.notificationHandler.ListNotifications).Methods(http.MethodGet)
	protected.HandleFunc("/notifications", r.notificationHandler.SendNotification).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/send", r.notificationHandler.SendNotification).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.recoveryMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
