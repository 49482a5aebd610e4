// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package experiment

import (
	"fmt"
	"strconv"
)

// BatchSizeAll is the CLI sentinel that collapses a phase to a single batch
// holding every stimulus.
const BatchSizeAll = "all"

// DefaultSamplingBatchSize is how many free-generation slots a sampling
// phase offers when not configured.
const DefaultSamplingBatchSize = 10

// BatchSize is a per-phase batch width: either a fixed stimulus count or the
// "all" sentinel.
type BatchSize struct {
	n   int
	all bool
}

// AllStimuli returns the batch size that keeps a whole phase in one batch.
func AllStimuli() BatchSize {
	return BatchSize{all: true}
}

// FixedBatchSize returns a batch size of n stimuli per batch.
func FixedBatchSize(n int) BatchSize {
	return BatchSize{n: n}
}

// ParseBatchSize parses a CLI batch-size value: a positive integer or "all".
func ParseBatchSize(s string) (BatchSize, error) {
	if s == BatchSizeAll {
		return AllStimuli(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return BatchSize{}, fmt.Errorf("batch size must be a positive integer or %q, got %q", BatchSizeAll, s)
	}
	return FixedBatchSize(n), nil
}

func (b BatchSize) IsAll() bool {
	return b.all
}

func (b BatchSize) String() string {
	if b.all {
		return BatchSizeAll
	}
	return strconv.Itoa(b.n)
}

// Batches returns how many batches a phase of total stimuli splits into:
// ceil(total/size), or exactly 1 for the "all" sentinel.
func (b BatchSize) Batches(total int) int {
	if b.all {
		return 1
	}
	return (total + b.n - 1) / b.n
}

// width is the effective batch width for a phase of total stimuli.
func (b BatchSize) width(total int) int {
	if b.all {
		return total
	}
	return b.n
}

// Params are the batching knobs of one generation run.
type Params struct {
	StimuliSetName    string
	LanguageSetName   string
	TrainBatchSize    BatchSize
	TestBatchSize     BatchSize
	SamplingBatchSize int
	Shuffles          int
	Seed              int64
}

// DefaultParams mirrors the batch CLI defaults: whole-phase batches, one
// shuffle, seed 0.
func DefaultParams(stimuliSetName string) Params {
	return Params{
		StimuliSetName:    stimuliSetName,
		TrainBatchSize:    AllStimuli(),
		TestBatchSize:     AllStimuli(),
		SamplingBatchSize: DefaultSamplingBatchSize,
		Shuffles:          1,
	}
}
