// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package experiment

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/drawlab/server/models"
	"github.com/drawlab/server/stimuli"
)

// GeneratedConfig is one output document and its path relative to the
// config-store root.
type GeneratedConfig struct {
	Path string
	Doc  models.ConfigDocument
}

// Generator produces the full set of config documents for registered
// experiments over one stimuli set. The RNG is seeded once per Generator so
// a run is reproducible for a fixed seed; shuffles mutate the stimuli set's
// groups in place.
type Generator struct {
	params   Params
	stimuli  *stimuli.Set
	language stimuli.LanguageSet
	rng      *rand.Rand
	now      func() time.Time
}

// New builds a generator for one run. language may be nil for experiments
// that never show provided descriptions.
func New(params Params, set *stimuli.Set, language stimuli.LanguageSet) *Generator {
	if params.SamplingBatchSize <= 0 {
		params.SamplingBatchSize = DefaultSamplingBatchSize
	}
	if params.Shuffles <= 0 {
		params.Shuffles = 1
	}
	return &Generator{
		params:   params,
		stimuli:  set,
		language: language,
		rng:      rand.New(rand.NewSource(params.Seed)),
		now:      time.Now,
	}
}

// Generate produces one config document per (condition, shuffle, batch) for
// the given experiment. Unregistered ids fail with ErrConfigurationNotFound.
func (g *Generator) Generate(experimentID string) ([]GeneratedConfig, error) {
	fn, ok := registry[experimentID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfigurationNotFound, experimentID)
	}
	return fn(g, experimentID)
}

const trainTestDescription = "Train phases per condition followed by test phases, " +
	"with UI behaviors taken from the experiment id. Test tasks may include a trailing free-generation phase."

// generateTrainTest is the general train/test family: per-condition train
// phases, per-condition test phases (plus the shared "all" test groups), and
// an optional trailing sampling phase. Train phase counts are taken per
// condition and assumed uniform across conditions.
func generateTrainTest(g *Generator, experimentID string) ([]GeneratedConfig, error) {
	desc, err := ParseDescriptor(experimentID)
	if err != nil {
		return nil, err
	}
	providedLanguage := slices.Contains(desc.TrainComponents, models.ComponentDescriptions)
	if providedLanguage && g.language == nil {
		return nil, fmt.Errorf("experiment %q shows provided descriptions but no language set was loaded", experimentID)
	}

	var configs []GeneratedConfig
	for _, condition := range g.stimuli.Conditions() {
		trainGroups := g.stimuli.TrainGroups(condition)
		testGroups := g.stimuli.TestGroups(condition)
		nBatches := g.batchCount(trainGroups, testGroups)

		for shuffle := 0; shuffle < g.params.Shuffles; shuffle++ {
			for _, group := range trainGroups {
				g.shuffle(group)
			}
			for _, group := range testGroups {
				g.shuffle(group)
			}

			docs := g.newShells(experimentID, trainTestDescription, condition, nBatches, shuffle)
			phase := 0
			for _, group := range trainGroups {
				phase++
				for b := range docs {
					images, err := batchOf(group, b, g.params.TrainBatchSize)
					if err != nil {
						return nil, fmt.Errorf("condition %q %s: %w", condition, phaseName(phase), err)
					}
					pc := models.PhaseConfig{
						Images:       models.StimulusRefs(images),
						UIComponents: desc.TrainComponents,
					}
					if providedLanguage {
						pc.Descriptions, err = g.describeAll(condition, images)
						if err != nil {
							return nil, err
						}
					}
					docs[b].Doc.AddPhase(phaseName(phase), pc)
				}
			}
			for _, group := range testGroups {
				phase++
				for b := range docs {
					images, err := batchOf(group, b, g.params.TestBatchSize)
					if err != nil {
						return nil, fmt.Errorf("condition %q %s: %w", condition, phaseName(phase), err)
					}
					docs[b].Doc.AddPhase(phaseName(phase), models.PhaseConfig{
						Images:       models.StimulusRefs(images),
						UIComponents: desc.TestComponents,
					})
				}
			}
			if desc.Sample {
				phase++
				for b := range docs {
					docs[b].Doc.AddPhase(phaseName(phase), models.PhaseConfig{
						Images:       models.NullImages(g.params.SamplingBatchSize),
						UIComponents: desc.TestComponents,
						Sampling:     true,
					})
				}
			}
			configs = append(configs, docs...)
		}
	}
	return configs, nil
}

const baselinePriorsDescription = "Baseline priors without learning. Uses the draw, describe, " +
	"and free-generation testing behaviors. Only contains a testing phase for testing tasks."

// generateBaselinePriors pools every test stimulus across conditions under
// the shared "all" condition: one viewing phase with the test behaviors,
// then a free-generation phase.
func generateBaselinePriors(g *Generator, experimentID string) ([]GeneratedConfig, error) {
	desc, err := ParseDescriptor(experimentID)
	if err != nil {
		return nil, err
	}
	pooled := g.stimuli.AllTestStimuli()
	nBatches := g.params.TestBatchSize.Batches(len(pooled))
	if nBatches < 1 {
		nBatches = 1
	}

	var configs []GeneratedConfig
	for shuffle := 0; shuffle < g.params.Shuffles; shuffle++ {
		g.shuffle(pooled)

		docs := g.newShells(experimentID, baselinePriorsDescription, stimuli.ConditionAll, nBatches, shuffle)
		for b := range docs {
			images, err := batchOf(pooled, b, g.params.TestBatchSize)
			if err != nil {
				return nil, fmt.Errorf("condition %q %s: %w", stimuli.ConditionAll, phaseName(1), err)
			}
			docs[b].Doc.AddPhase(phaseName(1), models.PhaseConfig{
				Images:       models.StimulusRefs(images),
				UIComponents: append([]string{models.ComponentImages}, desc.TestComponents...),
			})
			docs[b].Doc.AddPhase(phaseName(2), models.PhaseConfig{
				Images:       models.NullImages(g.params.SamplingBatchSize),
				UIComponents: desc.TestComponents,
				Sampling:     true,
			})
		}
		configs = append(configs, docs...)
	}
	return configs, nil
}

// batchCount is the per-condition batch count: the widest phase under its
// batch size wins, so every stimulus of every phase lands in some batch.
func (g *Generator) batchCount(trainGroups, testGroups [][]string) int {
	n := 1
	for _, group := range trainGroups {
		if c := g.params.TrainBatchSize.Batches(len(group)); c > n {
			n = c
		}
	}
	for _, group := range testGroups {
		if c := g.params.TestBatchSize.Batches(len(group)); c > n {
			n = c
		}
	}
	return n
}

// newShells initializes one empty document per batch, metadata filled in.
func (g *Generator) newShells(experimentID, description, condition string, nBatches, shuffle int) []GeneratedConfig {
	meta := models.Metadata{
		ExperimentID: experimentID,
		Description:  description,
		Timestamp:    escapeTimestamp(g.now()),
		StimuliSet:   g.params.StimuliSetName,
		LanguageSet:  g.params.LanguageSetName,
		Condition:    condition,
	}
	shells := make([]GeneratedConfig, nBatches)
	for b := range shells {
		m := meta
		m.FullConfigPath = ConfigPath(experimentID, g.params.StimuliSetName, condition, b, shuffle)
		shells[b] = GeneratedConfig{Path: m.FullConfigPath, Doc: models.ConfigDocument{Metadata: m}}
	}
	return shells
}

// batchOf copies the batch-th slice of a phase's stimulus group. An offset
// at or past the end of the group aborts: emitting an empty or wrapped
// batch would silently shortchange a participant.
func batchOf(group []string, batch int, size BatchSize) ([]string, error) {
	width := size.width(len(group))
	start := batch * width
	if start >= len(group) {
		return nil, fmt.Errorf("%w: batch %d starts at offset %d but the phase has %d stimuli (wraparound unsupported)",
			ErrUnimplementedBehavior, batch, start, len(group))
	}
	end := start + width
	if end > len(group) {
		end = len(group)
	}
	out := make([]string, end-start)
	copy(out, group[start:end])
	return out, nil
}

// describeAll looks up the preferred description for each image, in order.
func (g *Generator) describeAll(condition string, images []string) ([]string, error) {
	descriptions := make([]string, len(images))
	for i, img := range images {
		d, ok := g.language.Description(condition, img)
		if !ok {
			return nil, fmt.Errorf("no description for stimulus %q under condition %q in language set %q",
				img, condition, g.params.LanguageSetName)
		}
		descriptions[i] = d
	}
	return descriptions, nil
}

func (g *Generator) shuffle(group []string) {
	g.rng.Shuffle(len(group), func(i, j int) {
		group[i], group[j] = group[j], group[i]
	})
}

func phaseName(n int) string {
	return fmt.Sprintf("phase_%d", n)
}

// ConfigPath is the store-relative path of one generated document:
// {experiment}_{stimuliSet}/{condition}/batch_{b}_shuffle_{s}.json
func ConfigPath(experimentID, stimuliSetName, condition string, batch, shuffle int) string {
	dir := fmt.Sprintf("%s_%s", experimentID, stimuliSetName)
	name := fmt.Sprintf("batch_%d_shuffle_%d.json", batch, shuffle)
	return filepath.Join(dir, condition, name)
}

// escapeTimestamp formats a timestamp with ":" and "." escaped so it can be
// embedded in filenames and database keys.
func escapeTimestamp(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05.000000")
	s = strings.ReplaceAll(s, ":", "-")
	return strings.ReplaceAll(s, ".", "-")
}
