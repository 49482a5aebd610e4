// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/drawlab/server/cliparse"
	"github.com/drawlab/server/db"
	"github.com/drawlab/server/middleware"
	"github.com/drawlab/server/models"
)

type RecordHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRecordHandler(database *sql.DB, cfg cliparse.Config) *RecordHandler {
	return &RecordHandler{db: database, cfg: cfg}
}

// SubmitRecord handles POST /records
// Accepts a participant's completed config document (responses merged in)
// and persists it. Missing identifiers and duplicate submissions are
// expected outcomes reported as SubmitResult values; only persistence
// failures surface as server errors.
func (h *RecordHandler) SubmitRecord(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	var doc models.ConfigDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID := doc.Metadata.UserID
	if userID == "" {
		// Rejected before touching the store.
		middleware.JSONResponse(w, http.StatusBadRequest, models.SubmitResult{
			Success: false,
			Message: "Missing participant identifier",
		})
		return
	}

	experimentID := doc.Metadata.ExperimentID
	if userID == models.AdminUserID {
		experimentID = models.AdminExperimentID
	}
	if experimentID == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.SubmitResult{
			Success: false,
			Message: "Missing experiment identifier",
		})
		return
	}

	exists, err := db.RecordExists(h.db, experimentID, userID)
	if err != nil {
		slog.Error("failed to check participant record", "error", err,
			"experiment_id", experimentID, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		slog.Info("duplicate submission rejected",
			"experiment_id", experimentID, "user_id", userID)
		middleware.JSONResponse(w, http.StatusOK, models.SubmitResult{
			Success: false,
			Message: "User already completed experiment",
		})
		return
	}

	rec := db.Record{
		ExperimentID: experimentID,
		UserID:       userID,
		Condition:    doc.Metadata.Condition,
		Completed:    doc.Metadata.Completed,
		Document:     body,
	}
	if err := db.UpsertRecord(h.db, rec); err != nil {
		slog.Error("failed to store participant record", "error", err,
			"experiment_id", experimentID, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store record")
		return
	}

	slog.Info("record stored",
		"experiment_id", experimentID,
		"user_id", userID,
		"condition", doc.Metadata.Condition,
		"completed", doc.Metadata.Completed,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResult{
		Success: true,
		Message: "Successfully updated record",
	})
}
