// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drawlab/server/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "drawlab API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg, testutil.ScenarioStimuliSet())

	// Handlers may return 400/404 without data; only 405 means the route is
	// missing.
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/configs"},
		{"GET", "/configs/active"},
		{"GET", "/stimuli"},
		{"POST", "/records"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg, nil)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/configs"},
		{"PUT", "/stimuli"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestEndToEndSubmission(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	experimentID := "1_no_provided_language__a_train-images__draw-describe-sample-interleave"
	testutil.WriteTestConfig(t, cfg.ConfigDir, experimentID, "testset", "A", 0, 0)

	mux := NewRouter(db, cfg, testutil.ScenarioStimuliSet())

	// Fetch the active config the way the frontend does.
	req := httptest.NewRequest("GET",
		"/configs/active?experiment_id="+experimentID+"&condition=A&PROLIFIC_PID=P1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Submit it back completed.
	doc := testutil.MakeTestDocument(experimentID, "A")
	doc.Metadata.UserID = "P1"
	doc.Metadata.Completed = true

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/records", doc, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// A second completed submission is rejected.
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/records", doc, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	testutil.AssertJSON(t, w, &result)
	if result.Success {
		t.Error("second completed submission should be rejected")
	}
}
