// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Participant records: one document per participant per experiment.
-- The document column holds the full submitted config JSON, responses
-- included; completed mirrors the document's metadata.completed flag so the
-- duplicate guard is one indexed lookup.
CREATE TABLE IF NOT EXISTS participant_record (
    experiment_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    condition TEXT,
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    document TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (experiment_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_participant_record_completed
    ON participant_record(experiment_id, completed);
`
