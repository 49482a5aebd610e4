// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package experiment

import "sort"

// generatorFunc lays out the phases of one experiment family.
type generatorFunc func(g *Generator, experimentID string) ([]GeneratedConfig, error)

// registry maps experiment ids to their generators. Populated once here and
// never mutated; lookups of unknown ids fail with ErrConfigurationNotFound.
var registry = map[string]generatorFunc{
	"0_baselines_priors__a_train-none__draw-describe-sample-interleave":                   generateBaselinePriors,
	"1_no_provided_language__a_train-images__draw-describe-sample-interleave":             generateTrainTest,
	"2_provided_language__a_train-images-descriptions__draw-describe-sample-interleave":   generateTrainTest,
	"3_producing_language__a_train-images-describe__draw-describe-sample-interleave":      generateTrainTest,
	"3_producing_language__a_train-images-draw-describe__draw-describe-sample-interleave": generateTrainTest,
}

// IsRegistered reports whether an experiment id has a generator.
func IsRegistered(experimentID string) bool {
	_, ok := registry[experimentID]
	return ok
}

// Registered returns all registered experiment ids, sorted.
func Registered() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
