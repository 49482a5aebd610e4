// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package experiment

import "errors"

var (
	// ErrConfigurationNotFound reports a lookup of an experiment id with no
	// registered generator. Fatal for a batch run; a 4xx for the server.
	ErrConfigurationNotFound = errors.New("experiment configuration not found")

	// ErrUnimplementedBehavior reports an identifier or batching layout that
	// asks for behavior the generator does not support. Generation aborts
	// rather than emitting a partial config.
	ErrUnimplementedBehavior = errors.New("experiment behavior not implemented")
)
