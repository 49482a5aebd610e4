// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/drawlab/server/cliparse"
	"github.com/drawlab/server/configstore"
	"github.com/drawlab/server/handlers"
	"github.com/drawlab/server/middleware"
	"github.com/drawlab/server/stimuli"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, set *stimuli.Set) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	store := configstore.New(cfg.ConfigDir)
	configHandler := handlers.NewConfigHandler(store, set, cfg)
	recordHandler := handlers.NewRecordHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Config serving
	mux.HandleFunc("GET /configs", middleware.WithLogging(configHandler.ListConfigs))
	mux.HandleFunc("GET /configs/active", middleware.WithLogging(configHandler.GetActiveConfig))
	mux.HandleFunc("GET /stimuli", middleware.WithLogging(configHandler.GetStimuli))

	// Participant submissions
	mux.HandleFunc("POST /records", middleware.WithLogging(recordHandler.SubmitRecord))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("drawlab API v1"))
	})

	return mux
}
