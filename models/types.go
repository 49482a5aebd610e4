// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package models

// UI component tags a phase may ask the client to render.
const (
	ComponentImages       = "images"
	ComponentDraw         = "draw"
	ComponentDescribe     = "describe"
	ComponentDescriptions = "descriptions"
)

// Participant identifier query parameters (Prolific naming).
const (
	ParamProlificPID  = "PROLIFIC_PID"
	ParamStudyID      = "STUDY_ID"
	ParamSessionID    = "SESSION_ID"
	ParamExperimentID = "experiment_id"
	ParamCondition    = "condition"
)

// Submissions from AdminUserID are diverted to AdminExperimentID so that
// smoke-test runs never pollute real experiment data.
const (
	AdminUserID       = "admin"
	AdminExperimentID = "test"
)

// Response types

// SubmitResult is the outcome of a record submission. Duplicate submissions
// and missing identifiers are expected end-user conditions, so they surface
// here with Success=false rather than as server faults.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConfigSummary is one entry of the config-list endpoint.
type ConfigSummary struct {
	Path     string   `json:"path"`
	Metadata Metadata `json:"metadata"`
}

type ListConfigsResponse struct {
	Configs []ConfigSummary `json:"configs"`
}

// ConditionStimuli is the stimulus listing served for a single condition.
type ConditionStimuli struct {
	Condition string     `json:"condition"`
	Train     [][]string `json:"train"`
	Test      [][]string `json:"test"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
