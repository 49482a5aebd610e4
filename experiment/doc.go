// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package experiment generates per-participant experiment configurations.

# Experiment Identifiers

An experiment id encodes its behavior in three __-delimited segments:

	1_no_provided_language__a_train-images__draw-describe-sample-interleave
	└─ prefix ──────────┘  └─ train ────┘  └─ test ─────────────────────┘

ParseDescriptor turns the id into a typed Descriptor once, at generation
time. The train segment names the UI components of train phases; the test
segment names two test components, whether a free-generation ("sample")
phase follows, and the presentation order — only "interleave" is
implemented, anything else aborts with ErrUnimplementedBehavior.

# Registry

Each registered id maps to a generator function for its family:

	generateBaselinePriors  pooled test stimuli, no training
	generateTrainTest       per-condition train phases + test phases

The registry is built once at package init and never mutated. Unregistered
lookups fail with ErrConfigurationNotFound.

# Generation

	g := experiment.New(params, stimuliSet, languageSet)
	configs, err := g.Generate(experimentID)

One ConfigDocument is produced per (condition, shuffle, batch). Phase
stimulus groups are shuffled in place with an RNG seeded once per Generator,
so output is reproducible for a fixed seed, stimuli set, and params — only
the metadata timestamps differ between runs.

# Batching

Batch sizes are numeric or the "all" sentinel (one batch holding the whole
phase). A condition's batch count is the maximum over its phases of
ceil(stimuli/size); a batch whose offset falls past the end of a smaller
phase aborts generation rather than emitting an empty batch.
*/
package experiment
