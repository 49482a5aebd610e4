// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package configstore

import (
	"errors"
	"testing"

	"github.com/drawlab/server/testutil"
)

func TestResolver_ExactLookup(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTestConfig(t, dir, testExperimentID, "testset", "A", 0, 0)
	testutil.WriteTestConfig(t, dir, testExperimentID, "testset", "A", 1, 0)
	testutil.WriteTestConfig(t, dir, testExperimentID, "testset", "B", 0, 0)

	resolver := NewResolver(New(dir))

	doc, err := resolver.Resolve(testExperimentID, "A")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if doc.Metadata.Condition != "A" {
		t.Errorf("expected condition A, got %q", doc.Metadata.Condition)
	}
	// An exact lookup serves the first batch of the first shuffle.
	want := testExperimentID + "_testset/A/batch_0_shuffle_0.json"
	if doc.Metadata.FullConfigPath != want {
		t.Errorf("expected path %q, got %q", want, doc.Metadata.FullConfigPath)
	}
}

func TestResolver_ExactLookupMiss(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTestConfig(t, dir, testExperimentID, "testset", "A", 0, 0)

	resolver := NewResolver(New(dir))

	_, err := resolver.Resolve(testExperimentID, "C")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}

	_, err = resolver.Resolve("unknown_experiment", "A")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestResolver_RandomFiltersByCondition(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTestConfig(t, dir, testExperimentID, "testset", "A", 0, 0)
	testutil.WriteTestConfig(t, dir, testExperimentID, "testset", "B", 0, 0)

	resolver := NewResolver(New(dir))

	for i := 0; i < 10; i++ {
		doc, err := resolver.Resolve("", "B")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if doc.Metadata.Condition != "B" {
			t.Errorf("expected condition B, got %q", doc.Metadata.Condition)
		}
	}
}

func TestResolver_RandomFiltersByExperiment(t *testing.T) {
	dir := t.TempDir()
	other := "0_baselines_priors__a_train-none__draw-describe-sample-interleave"
	testutil.WriteTestConfig(t, dir, testExperimentID, "testset", "A", 0, 0)
	testutil.WriteTestConfig(t, dir, other, "testset", "all", 0, 0)

	resolver := NewResolver(New(dir))

	for i := 0; i < 10; i++ {
		doc, err := resolver.Resolve(other, "")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if doc.Metadata.ExperimentID != other {
			t.Errorf("expected experiment %q, got %q", other, doc.Metadata.ExperimentID)
		}
	}
}

func TestResolver_NoMatchingConfig(t *testing.T) {
	resolver := NewResolver(New(t.TempDir()))

	_, err := resolver.Resolve("", "")
	if !errors.Is(err, ErrNoMatchingConfig) {
		t.Errorf("expected ErrNoMatchingConfig, got %v", err)
	}
}
