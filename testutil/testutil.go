// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/drawlab/server/cliparse"
	dbpkg "github.com/drawlab/server/db"
	"github.com/drawlab/server/experiment"
	"github.com/drawlab/server/models"
	"github.com/drawlab/server/stimuli"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. A single connection keeps the memory database alive for the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := dbpkg.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:         8001,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
		ConfigDir:    t.TempDir(),
		StimuliDir:   t.TempDir(),
		StimuliSet:   "test_stimuli",
	}
}

// ScenarioStimuliSet is a small two-condition stimuli set with a shared
// test group, matching the shape generated sets use in production.
func ScenarioStimuliSet() *stimuli.Set {
	return &stimuli.Set{
		Train: map[string][][]string{
			"A": {{"img1", "img2"}, {"img3", "img4"}},
			"B": {{"img5", "img6"}, {"img7", "img8"}},
		},
		Test: map[string][][]string{
			"all": {{"img9", "img10"}},
		},
	}
}

// MakeTestDocument builds a minimal config document for an experiment and
// condition, with one image phase.
func MakeTestDocument(experimentID, condition string) models.ConfigDocument {
	doc := models.ConfigDocument{
		Metadata: models.Metadata{
			ExperimentID: experimentID,
			Condition:    condition,
			StimuliSet:   "test_stimuli",
			Timestamp:    "2025-01-01T00-00-00-000000",
		},
	}
	doc.AddPhase("phase_1", models.PhaseConfig{
		Images:       models.StimulusRefs([]string{"img1", "img2"}),
		UIComponents: []string{models.ComponentImages, models.ComponentDraw},
	})
	return doc
}

// WriteTestConfig writes a minimal generated config into dir under the
// standard layout and returns it.
func WriteTestConfig(t *testing.T, dir, experimentID, stimuliSet, condition string, batch, shuffle int) models.ConfigDocument {
	t.Helper()

	doc := MakeTestDocument(experimentID, condition)
	path := experiment.ConfigPath(experimentID, stimuliSet, condition, batch, shuffle)
	doc.Metadata.FullConfigPath = path

	writeJSONFile(t, filepath.Join(dir, path), doc)
	return doc
}

// SeedRecord inserts a participant record directly.
func SeedRecord(t *testing.T, conn *sql.DB, experimentID, userID string, completed bool) {
	t.Helper()

	doc := MakeTestDocument(experimentID, "A")
	doc.Metadata.UserID = userID
	doc.Metadata.Completed = completed
	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to encode test record: %v", err)
	}
	err = dbpkg.UpsertRecord(conn, dbpkg.Record{
		ExperimentID: experimentID,
		UserID:       userID,
		Condition:    "A",
		Completed:    completed,
		Document:     body,
	})
	if err != nil {
		t.Fatalf("Failed to seed test record: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

func writeJSONFile(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
