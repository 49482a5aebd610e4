// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/drawlab/server/cliparse"
	"github.com/drawlab/server/configstore"
	"github.com/drawlab/server/middleware"
	"github.com/drawlab/server/models"
	"github.com/drawlab/server/stimuli"
)

type ConfigHandler struct {
	store    *configstore.Store
	resolver *configstore.Resolver
	sessions *configstore.SessionCache
	stimuli  *stimuli.Set
	cfg      cliparse.Config
}

// NewConfigHandler serves generated configs. set may be nil when no stimuli
// set could be loaded at startup; only the /stimuli endpoint needs it.
func NewConfigHandler(store *configstore.Store, set *stimuli.Set, cfg cliparse.Config) *ConfigHandler {
	return &ConfigHandler{
		store:    store,
		resolver: configstore.NewResolver(store),
		sessions: configstore.NewSessionCache(),
		stimuli:  set,
		cfg:      cfg,
	}
}

// ListConfigs handles GET /configs
func (h *ConfigHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.Summaries()
	if err != nil {
		slog.Error("failed to list configs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list configs")
		return
	}
	if summaries == nil {
		summaries = []models.ConfigSummary{}
	}
	middleware.JSONResponse(w, http.StatusOK, models.ListConfigsResponse{Configs: summaries})
}

// GetActiveConfig handles GET /configs/active
// Resolves a config for the session's experiment/condition (or picks one at
// random), pins the selection to the session, and annotates the returned
// copy with the participant's identifiers.
func (h *ConfigHandler) GetActiveConfig(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	experimentID := query.Get(models.ParamExperimentID)
	condition := query.Get(models.ParamCondition)
	sessionID := query.Get(models.ParamSessionID)

	var doc *models.ConfigDocument
	if sessionID != "" {
		doc, _ = h.sessions.Get(sessionID)
	}
	if doc == nil {
		resolved, err := h.resolver.Resolve(experimentID, condition)
		if err != nil {
			if errors.Is(err, configstore.ErrConfigNotFound) || errors.Is(err, configstore.ErrNoMatchingConfig) {
				middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
				return
			}
			slog.Error("failed to resolve config", "error", err,
				"experiment_id", experimentID, "condition", condition)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to resolve config")
			return
		}
		if sessionID != "" {
			h.sessions.Put(sessionID, *resolved)
		}
		doc = resolved
	}

	// Annotate a copy, not the cached document.
	served := *doc
	served.Metadata.UserID = query.Get(models.ParamProlificPID)
	served.Metadata.StudyID = query.Get(models.ParamStudyID)
	served.Metadata.SessionID = sessionID
	served.Metadata.RunID = uuid.NewString()

	slog.Info("config served",
		"experiment_id", served.Metadata.ExperimentID,
		"condition", served.Metadata.Condition,
		"user_id", served.Metadata.UserID,
		"run_id", served.Metadata.RunID,
	)

	middleware.JSONResponse(w, http.StatusOK, served)
}

// GetStimuli handles GET /stimuli
// Returns the stimulus groups of one condition from the loaded stimuli set.
func (h *ConfigHandler) GetStimuli(w http.ResponseWriter, r *http.Request) {
	if h.stimuli == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No stimuli set loaded")
		return
	}

	condition := r.URL.Query().Get(models.ParamCondition)
	if condition == "" {
		condition = r.URL.Query().Get("group_id")
	}
	if condition == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "condition is required")
		return
	}

	if !h.stimuli.HasCondition(condition) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown condition: "+condition)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ConditionStimuli{
		Condition: condition,
		Train:     h.stimuli.TrainGroups(condition),
		Test:      h.stimuli.TestGroups(condition),
	})
}
