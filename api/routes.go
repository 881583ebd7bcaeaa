package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akash-insiders/community-hub/internal/auth"
	"github.com/akash-insiders/community-hub/internal/config"
	"github.com/akash-insiders/community-hub/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, repo *sqlite.SQLiteRepo, authSvc *auth.Service) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	if cfg.Metrics {
		r.Use(MetricsMiddleware)
		r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(authSvc, cfg.Env != "development")
	profilesHandler := NewProfilesHandler(repo, repo)
	statsHandler := NewStatsHandler(repo)
	pagesHandler, err := NewPagesHandler(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	// Open endpoints
	r.HandleFunc("/healthz", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/api/admin/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/admin/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/api/profiles", profilesHandler.CreateProfile).Methods("POST")

	// Protected admin API
	adminAPI := r.PathPrefix("/api").Subrouter()
	adminAPI.Use(CookieAuthMiddleware(authSvc))
	adminAPI.HandleFunc("/profiles", profilesHandler.ListProfiles).Methods("GET")
	adminAPI.HandleFunc("/admin/stats", statsHandler.Stats).Methods("GET")

	// Pages
	r.HandleFunc("/", pagesHandler.Index).Methods("GET")
	r.HandleFunc("/admin", pagesHandler.AdminLogin).Methods("GET")

	dashboard := r.PathPrefix("/admin/dashboard").Subrouter()
	dashboard.Use(DashboardGateMiddleware(authSvc))
	dashboard.HandleFunc("", pagesHandler.AdminDashboard).Methods("GET")

	return r, nil
}
