// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one participant's stored document for one experiment.
type Record struct {
	ExperimentID string
	UserID       string
	Condition    string
	Completed    bool
	Document     []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecordExists reports whether a participant already has a COMPLETED record
// for an experiment. Incomplete or abandoned attempts do not block re-entry.
func RecordExists(db *sql.DB, experimentID, userID string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM participant_record
			WHERE experiment_id = $1 AND user_id = $2 AND completed
		)
	`, experimentID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check participant record: %w", err)
	}
	return exists, nil
}

// UpsertRecord writes a participant's document, replacing any prior row for
// the same (experiment, participant) pair. Callers guard completed records
// with RecordExists first; this is a plain last-write-wins upsert.
func UpsertRecord(db *sql.DB, rec Record) error {
	now := time.Now()
	_, err := db.Exec(`
		INSERT INTO participant_record
			(experiment_id, user_id, condition, completed, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (experiment_id, user_id) DO UPDATE SET
			condition = EXCLUDED.condition,
			completed = EXCLUDED.completed,
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at
	`, rec.ExperimentID, rec.UserID, rec.Condition, rec.Completed, string(rec.Document), now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert participant record: %w", err)
	}
	return nil
}

// UpdateRecord merges partial top-level fields into a stored document. The
// completed column is refreshed from the merged document's metadata.
func UpdateRecord(db *sql.DB, experimentID, userID string, fields map[string]json.RawMessage) error {
	rec, err := FetchRecord(db, experimentID, userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no record for participant %q in experiment %q", userID, experimentID)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return fmt.Errorf("failed to parse stored document: %w", err)
	}
	for key, value := range fields {
		doc[key] = value
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode merged document: %w", err)
	}

	completed := rec.Completed
	if meta, ok := doc["metadata"]; ok {
		var m struct {
			Completed bool `json:"completed"`
		}
		if err := json.Unmarshal(meta, &m); err == nil {
			completed = m.Completed
		}
	}

	_, err = db.Exec(`
		UPDATE participant_record
		SET document = $1, completed = $2, updated_at = $3
		WHERE experiment_id = $4 AND user_id = $5
	`, string(merged), completed, time.Now(), experimentID, userID)
	if err != nil {
		return fmt.Errorf("failed to update participant record: %w", err)
	}
	return nil
}

// FetchRecord loads a participant's record, or nil if none exists.
func FetchRecord(db *sql.DB, experimentID, userID string) (*Record, error) {
	var rec Record
	var document string
	err := db.QueryRow(`
		SELECT experiment_id, user_id, condition, completed, document, created_at, updated_at
		FROM participant_record
		WHERE experiment_id = $1 AND user_id = $2
	`, experimentID, userID).Scan(
		&rec.ExperimentID, &rec.UserID, &rec.Condition, &rec.Completed,
		&document, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participant record: %w", err)
	}
	rec.Document = []byte(document)
	return &rec, nil
}
