// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package stimuli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ConditionAll is the reserved test condition whose stimulus groups are
// shared by every experimental condition.
const ConditionAll = "all"

// Set is the declarative dataset of all available task stimuli, partitioned
// by role (train/test) and condition. Each inner group is one phase's worth
// of stimulus ids, in presentation order.
type Set struct {
	Train map[string][][]string `json:"train"`
	Test  map[string][][]string `json:"test"`
}

// LanguageSet maps condition -> stimulus id -> candidate descriptions,
// ordered by preference.
type LanguageSet map[string]map[string][]string

// LoadSet reads {dir}/{name}.json.
func LoadSet(dir, name string) (*Set, error) {
	path := filepath.Join(dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stimuli set %q: %w", path, err)
	}
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse stimuli set %q: %w", path, err)
	}
	return &set, nil
}

// LoadLanguageSet reads {dir}/{name}.json.
func LoadLanguageSet(dir, name string) (LanguageSet, error) {
	path := filepath.Join(dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language set %q: %w", path, err)
	}
	var set LanguageSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse language set %q: %w", path, err)
	}
	return set, nil
}

// Conditions returns the experimental conditions, taken from the train role.
// Sorted so generation order is reproducible.
func (s *Set) Conditions() []string {
	conditions := make([]string, 0, len(s.Train))
	for condition := range s.Train {
		conditions = append(conditions, condition)
	}
	sort.Strings(conditions)
	return conditions
}

// HasCondition reports whether a condition appears in either role.
func (s *Set) HasCondition(condition string) bool {
	if _, ok := s.Train[condition]; ok {
		return true
	}
	_, ok := s.Test[condition]
	return ok
}

// TrainGroups returns the per-phase stimulus groups for a condition's train
// role.
func (s *Set) TrainGroups(condition string) [][]string {
	return s.Train[condition]
}

// TestGroups returns the test groups for a condition followed by the groups
// of the shared "all" condition.
func (s *Set) TestGroups(condition string) [][]string {
	var groups [][]string
	groups = append(groups, s.Test[condition]...)
	if condition != ConditionAll {
		groups = append(groups, s.Test[ConditionAll]...)
	}
	return groups
}

// AllTestStimuli pools every test stimulus across all conditions into one
// flat list, in sorted-condition order.
func (s *Set) AllTestStimuli() []string {
	conditions := make([]string, 0, len(s.Test))
	for condition := range s.Test {
		conditions = append(conditions, condition)
	}
	sort.Strings(conditions)

	var pooled []string
	for _, condition := range conditions {
		for _, group := range s.Test[condition] {
			pooled = append(pooled, group...)
		}
	}
	return pooled
}

// Description returns the preferred (first) candidate description for a
// stimulus under a condition.
func (l LanguageSet) Description(condition, stimulus string) (string, bool) {
	candidates, ok := l[condition][stimulus]
	if !ok || len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}
