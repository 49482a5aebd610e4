// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package experiment

import (
	"fmt"
	"strings"

	"github.com/drawlab/server/models"
)

// Descriptor is the typed form of an experiment identifier such as
//
//	1_no_provided_language__a_train-images__draw-describe-sample-interleave
//
// Identifiers carry three double-underscore-delimited segments: a prefix, a
// train-behavior segment (the dash-tokens after the "train" keyword), and a
// test-behavior segment of exactly four dash-tokens
// (component-component-sampletag-interleavetag).
type Descriptor struct {
	ID              string
	Prefix          string
	TrainComponents []string
	TestComponents  []string

	// Sample is true when the identifier asks for a trailing free-generation
	// phase.
	Sample bool
}

const (
	trainKeyword    = "train"
	sampleToken     = "sample"
	interleaveToken = "interleave"
	noneToken       = "none"
)

// ParseDescriptor parses an experiment identifier. It is a pure function of
// the id string; parsing the same id twice yields identical descriptors.
func ParseDescriptor(id string) (*Descriptor, error) {
	segments := strings.Split(id, "__")
	if len(segments) < 3 {
		return nil, fmt.Errorf("experiment id %q must have prefix, train, and test segments", id)
	}

	train, err := parseTrainSegment(id)
	if err != nil {
		return nil, err
	}

	test, sample, err := parseTestSegment(id, segments[len(segments)-1])
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		ID:              id,
		Prefix:          segments[0],
		TrainComponents: train,
		TestComponents:  test,
		Sample:          sample,
	}, nil
}

// parseTrainSegment extracts the UI components named between the "train"
// keyword and the next "__".
func parseTrainSegment(id string) ([]string, error) {
	idx := strings.Index(id, trainKeyword)
	if idx < 0 {
		return nil, fmt.Errorf("experiment id %q has no %q segment", id, trainKeyword)
	}
	segment := id[idx+len(trainKeyword):]
	if cut := strings.Index(segment, "__"); cut >= 0 {
		segment = segment[:cut]
	}
	segment = strings.TrimPrefix(segment, "-")
	if segment == "" || segment == noneToken {
		return nil, nil
	}

	var components []string
	for _, token := range strings.Split(segment, "-") {
		component, err := normalizeComponent(token)
		if err != nil {
			return nil, fmt.Errorf("experiment id %q: %w", id, err)
		}
		components = append(components, component)
	}
	return components, nil
}

// parseTestSegment parses the final segment into two components, a sampling
// tag, and the interleave tag. Anything other than interleaved presentation
// is unimplemented and must fail fast.
func parseTestSegment(id, segment string) (components []string, sample bool, err error) {
	tokens := strings.Split(segment, "-")
	if len(tokens) != 4 {
		return nil, false, fmt.Errorf("experiment id %q: test segment %q must have exactly four dash-tokens", id, segment)
	}
	if tokens[3] != interleaveToken {
		return nil, false, fmt.Errorf("%w: test ordering %q in experiment id %q (only %q is supported)",
			ErrUnimplementedBehavior, tokens[3], id, interleaveToken)
	}
	for _, token := range tokens[:2] {
		component, cerr := normalizeComponent(token)
		if cerr != nil {
			return nil, false, fmt.Errorf("experiment id %q: %w", id, cerr)
		}
		components = append(components, component)
	}
	return components, tokens[2] == sampleToken, nil
}

// normalizeComponent maps identifier tokens to UI component tags. The short
// forms are the abbreviations used by earlier experiment ids (train-im-dr).
func normalizeComponent(token string) (string, error) {
	switch token {
	case models.ComponentImages, "im":
		return models.ComponentImages, nil
	case models.ComponentDraw, "dr":
		return models.ComponentDraw, nil
	case models.ComponentDescribe, "de":
		return models.ComponentDescribe, nil
	case models.ComponentDescriptions:
		return models.ComponentDescriptions, nil
	default:
		return "", fmt.Errorf("unknown ui component token %q", token)
	}
}
