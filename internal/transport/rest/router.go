package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"pulsecheck/internal/service"
	"pulsecheck/internal/transport/rest/handler"
	"pulsecheck/internal/transport/rest/middleware"
	"pulsecheck/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	ClientService    *service.ClientService
	AccessService    *service.AccessService
	ResponseService  *service.ResponseService
	AnalyticsService *service.AnalyticsService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	clientHandler := handler.NewClientHandler(c.ClientService)
	surveyHandler := handler.NewSurveyHandler(c.ClientService, c.AccessService, c.ResponseService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService, c.ResponseService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/survey/client-info", surveyHandler.ClientInfo).Methods("GET", "OPTIONS")
	v1.HandleFunc("/survey/validate-access", surveyHandler.ValidateAccess).Methods("POST", "OPTIONS")
	v1.HandleFunc("/survey/submit", surveyHandler.Submit).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/clients/{clientId}", wsHandler.AdminWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/check-access", authHandler.CheckAccess).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/clients", clientHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/clients", clientHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/clients/{id}", clientHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/clients/{id}", clientHandler.Update).Methods("PATCH", "OPTIONS")
	adminRoutes.HandleFunc("/clients/{id}", clientHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/clients/{id}/responses", analyticsHandler.ListResponses).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/clients/{id}/responses/export", analyticsHandler.ExportResponses).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/clients/{id}/analytics", analyticsHandler.GetReport).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PATCH, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
