// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package models

import (
	"encoding/json"
	"testing"
)

func sampleDocument() ConfigDocument {
	doc := ConfigDocument{
		Metadata: Metadata{
			ExperimentID: "1_no_provided_language__a_train-images__draw-describe-sample-interleave",
			Condition:    "A",
			StimuliSet:   "testset",
			Timestamp:    "2025-06-01T12-00-00-000000",
		},
	}
	doc.AddPhase("phase_1", PhaseConfig{
		Images:       StimulusRefs([]string{"img1", "img2"}),
		UIComponents: []string{ComponentImages, ComponentDraw},
	})
	doc.AddPhase("phase_2", PhaseConfig{
		Images:       NullImages(3),
		UIComponents: []string{ComponentDraw, ComponentDescribe},
		Sampling:     true,
	})
	return doc
}

func TestConfigDocument_MarshalShape(t *testing.T) {
	data, err := json.Marshal(sampleDocument())
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}

	// Phases appear as top-level keys next to metadata and phases.
	for _, key := range []string{"metadata", "phases", "phase_1", "phase_2"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected top-level key %q, got keys %v", key, keysOf(raw))
		}
	}

	var phase1 map[string]json.RawMessage
	if err := json.Unmarshal(raw["phase_1"], &phase1); err != nil {
		t.Fatal(err)
	}
	if _, ok := phase1["sampling"]; ok {
		t.Error("sampling=false should be omitted")
	}
}

func TestConfigDocument_RoundTrip(t *testing.T) {
	original := sampleDocument()
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	var decoded ConfigDocument
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Metadata != original.Metadata {
		t.Errorf("metadata changed in round trip: %+v != %+v", decoded.Metadata, original.Metadata)
	}
	if len(decoded.Phases) != 2 || decoded.Phases[0] != "phase_1" || decoded.Phases[1] != "phase_2" {
		t.Errorf("phase order not preserved: %v", decoded.Phases)
	}

	pc, ok := decoded.Phase("phase_2")
	if !ok {
		t.Fatal("phase_2 missing after round trip")
	}
	if !pc.Sampling {
		t.Error("sampling flag lost")
	}
	for i, img := range pc.Images {
		if img != nil {
			t.Errorf("sampling image %d should be null, got %q", i, *img)
		}
	}
}

func TestConfigDocument_ResponsesSurvive(t *testing.T) {
	body := []byte(`{
		"metadata": {"experiment_id": "test", "user_id": "P1", "completed": true},
		"phases": ["phase_1"],
		"phase_1": {
			"images": ["img1"],
			"ui_components": ["images", "draw", "describe"],
			"strokes": [[[0, 0], [10, 12]]],
			"user_descriptions": ["a squiggle"]
		}
	}`)

	var doc ConfigDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatal(err)
	}

	pc, _ := doc.Phase("phase_1")
	if len(pc.Strokes) != 1 {
		t.Fatalf("expected 1 stroke array, got %d", len(pc.Strokes))
	}
	if len(pc.UserDescriptions) != 1 || pc.UserDescriptions[0] != "a squiggle" {
		t.Errorf("user descriptions lost: %v", pc.UserDescriptions)
	}
	if !doc.Metadata.Completed {
		t.Error("completed flag lost")
	}

	// And they survive re-encoding.
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	var again ConfigDocument
	if err := json.Unmarshal(data, &again); err != nil {
		t.Fatal(err)
	}
	pc, _ = again.Phase("phase_1")
	if len(pc.Strokes) != 1 {
		t.Error("strokes lost in re-encode")
	}
}

func TestConfigDocument_MissingPhaseFails(t *testing.T) {
	var doc ConfigDocument
	err := json.Unmarshal([]byte(`{"metadata": {}, "phases": ["phase_1"]}`), &doc)
	if err == nil {
		t.Error("expected error for phase listed without config")
	}

	bad := ConfigDocument{Phases: []string{"phase_1"}}
	if _, err := json.Marshal(bad); err == nil {
		t.Error("expected error marshaling phase without config")
	}
}

func keysOf(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
