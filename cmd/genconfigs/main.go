// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

// Command genconfigs generates experiment config JSON files offline, one per
// (condition, shuffle, batch), ready for the server's config store.
//
// Usage:
//
//	genconfigs -experiments 0_baselines_priors__a_train-none__draw-describe-sample-interleave \
//	    -output_dir static/configs \
//	    -input_stimuli_set_dir static/stimuli_sets \
//	    -stimuli_set train_images_test_common_s12_s13_neurips_2020 \
//	    -shuffles_per_stimuli_set 1 -seed 0
//
// The run fails with a non-zero exit if any requested experiment id is
// unregistered or any config cannot be generated or written.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/drawlab/server/configstore"
	"github.com/drawlab/server/experiment"
	"github.com/drawlab/server/stimuli"
)

func main() {
	_ = godotenv.Load()

	var (
		experimentsFlag   = flag.String("experiments", "", "Comma-separated experiment ids to generate configs for (required)")
		outputDir         = flag.String("output_dir", "static/configs", "Top level directory under which configs are written")
		stimuliDir        = flag.String("input_stimuli_set_dir", "static/stimuli_sets", "Directory where stimuli sets are stored")
		stimuliSet        = flag.String("stimuli_set", "train_images_test_common_s12_s13_neurips_2020", "Stimuli set containing the full dataset of stimuli to generate under")
		languageDir       = flag.String("input_language_set_dir", "static/language_sets", "Directory where language sets are stored")
		languageSet       = flag.String("language_set", "", "Language set of provided descriptions (optional)")
		trainBatchSize    = flag.String("train_batch_size_per_phase", experiment.BatchSizeAll, "How many stimuli to show per train phase, or \"all\"")
		testBatchSize     = flag.String("test_batch_size", experiment.BatchSizeAll, "How many stimuli to show per test phase, or \"all\"")
		samplingBatchSize = flag.Int("sampling_batch_size", experiment.DefaultSamplingBatchSize, "How many free-generation slots per sampling phase")
		shuffles          = flag.Int("shuffles_per_stimuli_set", 1, "How many complete shuffles to generate for the stimuli set")
		seed              = flag.Int64("seed", 0, "Random seed")
	)
	flag.Parse()

	experiments := splitList(*experimentsFlag)
	if len(experiments) == 0 {
		slog.Error("no experiments requested (use -experiments)", "registered", experiment.Registered())
		os.Exit(1)
	}
	for _, id := range experiments {
		if !experiment.IsRegistered(id) {
			slog.Error("experiment config not found", "experiment_id", id, "registered", experiment.Registered())
			os.Exit(1)
		}
	}

	params, err := buildParams(*stimuliSet, *languageSet, *trainBatchSize, *testBatchSize, *samplingBatchSize, *shuffles, *seed)
	if err != nil {
		slog.Error("invalid batching parameters", "error", err)
		os.Exit(1)
	}

	set, err := stimuli.LoadSet(*stimuliDir, *stimuliSet)
	if err != nil {
		slog.Error("failed to load stimuli set", "error", err)
		os.Exit(1)
	}

	var language stimuli.LanguageSet
	if *languageSet != "" {
		language, err = stimuli.LoadLanguageSet(*languageDir, *languageSet)
		if err != nil {
			slog.Error("failed to load language set", "error", err)
			os.Exit(1)
		}
	}

	gen := experiment.New(params, set, language)
	store := configstore.New(*outputDir)

	total := 0
	for _, id := range experiments {
		configs, err := gen.Generate(id)
		if err != nil {
			slog.Error("config generation failed", "experiment_id", id, "error", err)
			os.Exit(1)
		}
		for _, cfg := range configs {
			slog.Info("Writing out config", "path", cfg.Path)
			if err := store.Write(cfg); err != nil {
				slog.Error("failed to write config", "path", cfg.Path, "error", err)
				os.Exit(1)
			}
		}
		total += len(configs)
	}
	slog.Info("Generation complete", "experiments", len(experiments), "configs", total, "output_dir", *outputDir)
}

func buildParams(stimuliSet, languageSet, trainBatch, testBatch string, samplingBatch, shuffles int, seed int64) (experiment.Params, error) {
	params := experiment.DefaultParams(stimuliSet)
	params.LanguageSetName = languageSet
	params.SamplingBatchSize = samplingBatch
	params.Shuffles = shuffles
	params.Seed = seed

	var err error
	if params.TrainBatchSize, err = experiment.ParseBatchSize(trainBatch); err != nil {
		return experiment.Params{}, err
	}
	if params.TestBatchSize, err = experiment.ParseBatchSize(testBatch); err != nil {
		return experiment.Params{}, err
	}
	return params, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
