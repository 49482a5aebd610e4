// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package models

import (
	"encoding/json"
	"fmt"
)

// Metadata describes one generated config and, once a config has been served,
// the participant it was served to.
type Metadata struct {
	ExperimentID   string `json:"experiment_id"`
	Description    string `json:"description,omitempty"`
	Timestamp      string `json:"timestamp"`
	StimuliSet     string `json:"stimuli_set"`
	LanguageSet    string `json:"language_set,omitempty"`
	Condition      string `json:"condition"`
	FullConfigPath string `json:"full_config_path"`

	// Participant annotations, set at serve time. Never written by the
	// generator.
	UserID    string `json:"user_id,omitempty"`
	StudyID   string `json:"study_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	RunID     string `json:"run_id,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}

// PhaseConfig is one phase of a served config. Images entries are nil for
// sampling phases, which collect freely generated content instead of
// replaying fixed stimuli. Descriptions, when present, align index-for-index
// with Images.
type PhaseConfig struct {
	Images       []*string `json:"images"`
	UIComponents []string  `json:"ui_components"`
	Descriptions []string  `json:"descriptions,omitempty"`
	Sampling     bool      `json:"sampling,omitempty"`

	// Participant responses, present only on submitted documents.
	Strokes          []json.RawMessage `json:"strokes,omitempty"`
	UserDescriptions []string          `json:"user_descriptions,omitempty"`
}

// ConfigDocument is the full unit served to one participant for one run.
// On the wire each phase appears as a top-level key alongside "metadata" and
// "phases", so the type carries a custom JSON codec.
type ConfigDocument struct {
	Metadata     Metadata
	Phases       []string
	PhaseConfigs map[string]PhaseConfig
}

// Phase returns the config for a named phase.
func (d *ConfigDocument) Phase(name string) (PhaseConfig, bool) {
	pc, ok := d.PhaseConfigs[name]
	return pc, ok
}

// AddPhase appends a phase to the document, preserving order.
func (d *ConfigDocument) AddPhase(name string, pc PhaseConfig) {
	if d.PhaseConfigs == nil {
		d.PhaseConfigs = make(map[string]PhaseConfig)
	}
	d.Phases = append(d.Phases, name)
	d.PhaseConfigs[name] = pc
}

func (d ConfigDocument) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Phases)+2)
	out["metadata"] = d.Metadata
	out["phases"] = d.Phases
	for _, name := range d.Phases {
		pc, ok := d.PhaseConfigs[name]
		if !ok {
			return nil, fmt.Errorf("phase %q listed but has no config", name)
		}
		out[name] = pc
	}
	return json.Marshal(out)
}

func (d *ConfigDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if meta, ok := raw["metadata"]; ok {
		if err := json.Unmarshal(meta, &d.Metadata); err != nil {
			return fmt.Errorf("invalid metadata: %w", err)
		}
	}
	d.Phases = nil
	if phases, ok := raw["phases"]; ok {
		if err := json.Unmarshal(phases, &d.Phases); err != nil {
			return fmt.Errorf("invalid phases list: %w", err)
		}
	}
	d.PhaseConfigs = make(map[string]PhaseConfig, len(d.Phases))
	for _, name := range d.Phases {
		body, ok := raw[name]
		if !ok {
			return fmt.Errorf("phase %q listed but has no config", name)
		}
		var pc PhaseConfig
		if err := json.Unmarshal(body, &pc); err != nil {
			return fmt.Errorf("invalid config for phase %q: %w", name, err)
		}
		d.PhaseConfigs[name] = pc
	}
	return nil
}

// StimulusRefs converts stimulus ids to the nullable form used by
// PhaseConfig.Images. Values are copied so later in-place shuffles of the
// source slice cannot reach into an already-built document.
func StimulusRefs(ids []string) []*string {
	refs := make([]*string, len(ids))
	for i, id := range ids {
		id := id
		refs[i] = &id
	}
	return refs
}

// NullImages returns n nil image placeholders for a sampling phase.
func NullImages(n int) []*string {
	return make([]*string, n)
}

// ImageIDs returns the non-nil stimulus ids of a phase, in order.
func ImageIDs(images []*string) []string {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		if img != nil {
			ids = append(ids, *img)
		}
	}
	return ids
}
