// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package stimuli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mini.json", `{
		"train": {"A": [["img1", "img2"]], "B": [["img3", "img4"]]},
		"test": {"all": [["img5"]]}
	}`)

	set, err := LoadSet(dir, "mini")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"img1", "img2"}}, set.TrainGroups("A"))
	assert.Equal(t, [][]string{{"img5"}}, set.Test["all"])
}

func TestLoadSet_Missing(t *testing.T) {
	_, err := LoadSet(t.TempDir(), "nope")
	assert.Error(t, err)
}

func TestLoadSet_BadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"train": [}`)

	_, err := LoadSet(dir, "broken")
	assert.Error(t, err)
}

func TestConditionsSorted(t *testing.T) {
	set := &Set{Train: map[string][][]string{"C": nil, "A": nil, "B": nil}}
	assert.Equal(t, []string{"A", "B", "C"}, set.Conditions())
}

func TestTestGroups_IncludesShared(t *testing.T) {
	set := &Set{
		Test: map[string][][]string{
			"A":   {{"a1"}},
			"all": {{"s1", "s2"}},
		},
	}

	assert.Equal(t, [][]string{{"a1"}, {"s1", "s2"}}, set.TestGroups("A"))
	// Conditions without their own groups still get the shared ones.
	assert.Equal(t, [][]string{{"s1", "s2"}}, set.TestGroups("B"))
	// The shared condition itself is not doubled.
	assert.Equal(t, [][]string{{"s1", "s2"}}, set.TestGroups("all"))
}

func TestHasCondition(t *testing.T) {
	set := &Set{
		Train: map[string][][]string{"A": {{"a1"}}},
		Test:  map[string][][]string{"all": {{"s1"}}},
	}

	assert.True(t, set.HasCondition("A"))
	assert.True(t, set.HasCondition("all"), "test-only conditions count")
	assert.False(t, set.HasCondition("Z"))
}

func TestAllTestStimuli(t *testing.T) {
	set := &Set{
		Test: map[string][][]string{
			"B": {{"b1"}, {"b2"}},
			"A": {{"a1", "a2"}},
		},
	}

	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, set.AllTestStimuli())
}

func TestLanguageSetDescription(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lang.json", `{
		"A": {"img1": ["a tall shape", "something tall"], "img2": []}
	}`)

	lang, err := LoadLanguageSet(dir, "lang")
	require.NoError(t, err)

	d, ok := lang.Description("A", "img1")
	require.True(t, ok)
	assert.Equal(t, "a tall shape", d)

	_, ok = lang.Description("A", "img2")
	assert.False(t, ok, "empty candidate list has no description")
	_, ok = lang.Description("A", "img3")
	assert.False(t, ok)
	_, ok = lang.Description("B", "img1")
	assert.False(t, ok)
}
