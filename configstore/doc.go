// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

/*
Package configstore persists generated configs and resolves them for
incoming sessions.

# Layout

Configs live as JSON files under a root directory:

	{root}/{experiment}_{stimuliSet}/{condition}/batch_{b}_shuffle_{s}.json

The tree is written once by the batch generator and treated as read-only by
the server; readers never contend with a writer in steady state.

# Resolution

The Resolver implements the session-assignment rules:

  - experiment id and condition both present: exact lookup of the first
    generated batch (batch_0_shuffle_0.json); ErrConfigNotFound if absent.
  - otherwise: filter all persisted configs by whichever key is present and
    pick uniformly at random; ErrNoMatchingConfig if the filter is empty.

# Session Pinning

SessionCache keeps one resolved config per participant session id, so
repeated requests within a session replay the same selection instead of
re-rolling the random choice.
*/
package configstore
